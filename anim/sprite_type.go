package anim

import (
	"fmt"
	"image"
	"sort"
)

// ImageDef pairs an authored image id with its decoded pixels.
type ImageDef struct {
	ID    int
	Image image.Image
}

// StateDef is one authored animation state.
type StateDef struct {
	Name  string
	Poses []Pose
}

// TypeDef is the already-parsed description of a sprite type, as produced by
// a loader. NewSpriteType validates it.
type TypeDef struct {
	Name   string
	Width  int
	Height int
	Images []ImageDef
	States []StateDef
}

// SpriteType is an immutable catalog entry shared by every sprite of that
// type.
type SpriteType struct {
	name   string
	width  int
	height int
	images map[int]image.Image
	states map[string]*PoseSequence
	order  []string
}

// NewSpriteType builds a SpriteType from def. It fails outright on the first
// integrity error rather than returning a partially usable type.
//
// Image ids referenced by poses are not cross-checked here; a missing image
// surfaces as ErrAssetMissing when the pose is displayed.
func NewSpriteType(def TypeDef) (*SpriteType, error) {
	if def.Width <= 0 || def.Height <= 0 {
		return nil, fmt.Errorf("anim: type %q: %dx%d: %w", def.Name, def.Width, def.Height, ErrInvalidSize)
	}

	t := &SpriteType{
		name:   def.Name,
		width:  def.Width,
		height: def.Height,
		images: make(map[int]image.Image, len(def.Images)),
		states: make(map[string]*PoseSequence, len(def.States)),
		order:  make([]string, 0, len(def.States)),
	}

	for _, img := range def.Images {
		if img.ID < 0 {
			return nil, fmt.Errorf("anim: type %q: image %d: %w", def.Name, img.ID, ErrInvalidImageID)
		}
		if _, ok := t.images[img.ID]; ok {
			return nil, fmt.Errorf("anim: type %q: image %d: %w", def.Name, img.ID, ErrDuplicateImage)
		}
		t.images[img.ID] = img.Image
	}

	for _, st := range def.States {
		if _, ok := t.states[st.Name]; ok {
			return nil, fmt.Errorf("anim: type %q: state %q: %w", def.Name, st.Name, ErrDuplicateState)
		}
		seq, err := NewPoseSequence(st.Name, st.Poses)
		if err != nil {
			return nil, fmt.Errorf("anim: type %q: %w", def.Name, err)
		}
		t.states[st.Name] = seq
		t.order = append(t.order, st.Name)
	}

	return t, nil
}

func (t *SpriteType) Name() string { return t.name }

func (t *SpriteType) Width() int { return t.width }

func (t *SpriteType) Height() int { return t.height }

// Image returns the pixels registered for id.
func (t *SpriteType) Image(id int) (image.Image, bool) {
	img, ok := t.images[id]
	return img, ok
}

// ImageIDs returns the registered image ids in ascending order.
func (t *SpriteType) ImageIDs() []int {
	ids := make([]int, 0, len(t.images))
	for id := range t.images {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// State returns the pose sequence for the named animation state.
func (t *SpriteType) State(name string) (*PoseSequence, bool) {
	seq, ok := t.states[name]
	return seq, ok
}

// StateNames returns the state names in authored order.
func (t *SpriteType) StateNames() []string {
	return append([]string(nil), t.order...)
}
