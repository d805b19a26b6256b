package anim

import "errors"

// Load-time integrity errors. A SpriteType or PoseSequence that trips one of
// these is never constructed.
var (
	ErrEmptySequence   = errors.New("empty pose sequence")
	ErrInvalidDuration = errors.New("pose duration must be positive")
	ErrInvalidImageID  = errors.New("image id must be non-negative")
	ErrDuplicateImage  = errors.New("duplicate image id")
	ErrDuplicateState  = errors.New("duplicate animation state")
	ErrInvalidSize     = errors.New("frame size must be positive")
)

var (
	// ErrUnknownState is returned when a sprite is asked to play a state its
	// type does not define.
	ErrUnknownState = errors.New("unknown animation state")

	// ErrAssetMissing is returned when the current pose references an image
	// id the sprite type has no pixels for.
	ErrAssetMissing = errors.New("image missing from sprite type")
)
