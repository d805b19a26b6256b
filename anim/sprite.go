package anim

import (
	"fmt"
	"image"
)

// Sprite is a positioned instance of a SpriteType playing one animation
// state. Each sprite owns its cursor and position; only the type is shared.
type Sprite struct {
	kind   *SpriteType
	state  string
	cursor Cursor

	x, y   float64
	vx, vy float64 // units per ms
}

// NewSprite creates a sprite of type t at the origin, playing state from its
// first pose.
func NewSprite(t *SpriteType, state string) (*Sprite, error) {
	seq, ok := t.State(state)
	if !ok {
		return nil, fmt.Errorf("anim: type %q: state %q: %w", t.Name(), state, ErrUnknownState)
	}
	return &Sprite{
		kind:   t,
		state:  state,
		cursor: NewCursor(seq),
	}, nil
}

// Tick integrates position by velocity and advances the animation by the
// same delta.
func (s *Sprite) Tick(deltaMs float64) {
	if !(deltaMs > 0) {
		return
	}
	s.x += s.vx * deltaMs
	s.y += s.vy * deltaMs
	s.cursor.Advance(deltaMs)
}

// SetState switches the sprite to another state of its type, restarting at
// that state's first pose.
func (s *Sprite) SetState(name string) error {
	seq, ok := s.kind.State(name)
	if !ok {
		return fmt.Errorf("anim: type %q: state %q: %w", s.kind.Name(), name, ErrUnknownState)
	}
	s.state = name
	s.cursor.Retarget(seq)
	return nil
}

// CurrentImage returns the pixels of the current pose.
func (s *Sprite) CurrentImage() (image.Image, error) {
	id := s.cursor.ImageID()
	img, ok := s.kind.Image(id)
	if !ok {
		return nil, fmt.Errorf("anim: type %q state %q pose %d: image %d: %w",
			s.kind.Name(), s.state, s.cursor.PoseIndex(), id, ErrAssetMissing)
	}
	return img, nil
}

func (s *Sprite) Type() *SpriteType { return s.kind }

func (s *Sprite) State() string { return s.state }

// Cursor returns a copy of the sprite's animation cursor.
func (s *Sprite) Cursor() Cursor { return s.cursor }

func (s *Sprite) Position() (x, y float64) { return s.x, s.y }

func (s *Sprite) SetPosition(x, y float64) {
	s.x = x
	s.y = y
}

func (s *Sprite) Velocity() (vx, vy float64) { return s.vx, s.vy }

// SetVelocity sets the velocity in units per millisecond of animation time.
func (s *Sprite) SetVelocity(vx, vy float64) {
	s.vx = vx
	s.vy = vy
}
