package scene

import (
	"errors"
	"image"
	"sync"
	"time"

	"github.com/milk9111/spriteviewer/anim"
)

// Frame is what a renderer needs to draw one sprite, read in a single pass.
type Frame struct {
	TypeName    string
	State       string
	X, Y        float64
	Width       int
	Height      int
	PoseIndex   int
	ImageID     int
	RemainingMs float64
	Image       image.Image
}

// Options configures a Scene. Zero values fall back to defaults.
type Options struct {
	Time TimeProvider

	// Where newly selected sprites appear, and how they move.
	SpawnX, SpawnY       float64
	VelocityX, VelocityY float64

	// SpeedStep is the fractional change applied by SpeedUp and SlowDown.
	SpeedStep float64
	MinSpeed  float64
	MaxSpeed  float64
}

const (
	defaultSpeedStep = 0.10
	defaultMinSpeed  = 0.05
	defaultMaxSpeed  = 20
)

// Scene drives every active sprite from one Clock and is the command surface
// the UI talks to. Ticks and reads may come from different goroutines; each
// tick is applied under one write lock so Frames never sees half of it.
type Scene struct {
	mu      sync.RWMutex
	clock   *Clock
	sprites []*anim.Sprite
	halted  map[*anim.Sprite]error
	kind    *anim.SpriteType

	opts Options

	// haltCheck runs between the snapshot read and the halt write in Frames.
	haltCheck func()
}

// New creates a paused, empty scene.
func New(opts Options) *Scene {
	if opts.Time == nil {
		opts.Time = SystemTime{}
	}
	if opts.SpeedStep <= 0 {
		opts.SpeedStep = defaultSpeedStep
	}
	if opts.MinSpeed <= 0 {
		opts.MinSpeed = defaultMinSpeed
	}
	if opts.MaxSpeed < opts.MinSpeed {
		opts.MaxSpeed = defaultMaxSpeed
	}
	return &Scene{
		clock:  NewClock(opts.Time),
		halted: make(map[*anim.Sprite]error),
		opts:   opts,
	}
}

// ErrNoSpriteType is returned by SelectState before any type is selected.
var ErrNoSpriteType = errors.New("no sprite type selected")

// SelectSpriteType makes t the selected type and clears the scene in
// preparation for picking one of its states.
func (s *Scene) SelectSpriteType(t *anim.SpriteType) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.kind = t
	s.sprites = nil
	s.halted = make(map[*anim.Sprite]error)
}

// SelectedType returns the type chosen by the last SelectSpriteType or
// SelectAnimationState, or nil.
func (s *Scene) SelectedType() *anim.SpriteType {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.kind
}

// SelectState is SelectAnimationState for the selected type.
func (s *Scene) SelectState(state string) error {
	t := s.SelectedType()
	if t == nil {
		return ErrNoSpriteType
	}
	return s.SelectAnimationState(t, state)
}

// SelectAnimationState replaces the active sprite with a fresh sprite of t
// playing state, placed at the spawn point, and starts playback.
func (s *Scene) SelectAnimationState(t *anim.SpriteType, state string) error {
	sp, err := anim.NewSprite(t, state)
	if err != nil {
		return err
	}
	sp.SetPosition(s.opts.SpawnX, s.opts.SpawnY)
	sp.SetVelocity(s.opts.VelocityX, s.opts.VelocityY)

	s.mu.Lock()
	s.kind = t
	s.sprites = []*anim.Sprite{sp}
	s.halted = make(map[*anim.Sprite]error)
	s.clock.Start()
	s.mu.Unlock()
	return nil
}

// Add places another sprite in the scene alongside the existing ones.
func (s *Scene) Add(sp *anim.Sprite) {
	if sp == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sprites = append(s.sprites, sp)
}

// Clear removes every sprite. Clock state is untouched.
func (s *Scene) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sprites = nil
	s.halted = make(map[*anim.Sprite]error)
}

func (s *Scene) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sprites)
}

// Play starts the clock, or resumes it after Pause.
func (s *Scene) Play() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clock.Start()
}

func (s *Scene) Pause() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clock.Pause()
}

// TogglePlay pauses a running scene and resumes a paused one.
func (s *Scene) TogglePlay() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.clock.Running() {
		s.clock.Pause()
	} else {
		s.clock.Resume()
	}
}

func (s *Scene) Playing() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.clock.Running()
}

func (s *Scene) SetSpeedScale(factor float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.clock.SetSpeedScale(factor)
}

func (s *Scene) SpeedScale() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.clock.SpeedScale()
}

// SpeedUp multiplies the speed scale by 1+SpeedStep, capped at MaxSpeed.
func (s *Scene) SpeedUp() error {
	return s.stepSpeed(1 + s.opts.SpeedStep)
}

// SlowDown divides the speed scale by 1+SpeedStep, floored at MinSpeed, so
// it exactly undoes SpeedUp.
func (s *Scene) SlowDown() error {
	return s.stepSpeed(1 / (1 + s.opts.SpeedStep))
}

func (s *Scene) stepSpeed(mul float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := s.clock.SpeedScale() * mul
	if next > s.opts.MaxSpeed {
		next = s.opts.MaxSpeed
	}
	if next < s.opts.MinSpeed {
		next = s.opts.MinSpeed
	}
	return s.clock.SetSpeedScale(next)
}

// Update ticks the scene at the time provider's current time.
func (s *Scene) Update() {
	s.Tick(s.clock.Now())
}

// Tick advances every active sprite by the scaled time since the previous
// tick. Nothing happens while paused. Sprites halted by a missing asset are
// skipped.
func (s *Scene) Tick(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delta, ok := s.clock.Tick(now)
	if !ok {
		return
	}
	for _, sp := range s.sprites {
		if _, stopped := s.halted[sp]; stopped {
			continue
		}
		sp.Tick(delta)
	}
}

// Frames returns a consistent snapshot of every drawable sprite. A sprite
// whose current image is missing is halted: it stops ticking, yields no
// frame, and its error is returned on this and every later call until it is
// replaced.
func (s *Scene) Frames() ([]Frame, error) {
	s.mu.RLock()
	frames := make([]Frame, 0, len(s.sprites))
	var errs []error
	var failed map[*anim.Sprite]error
	for _, sp := range s.sprites {
		if err, stopped := s.halted[sp]; stopped {
			errs = append(errs, err)
			continue
		}
		img, err := sp.CurrentImage()
		if err != nil {
			if failed == nil {
				failed = make(map[*anim.Sprite]error)
			}
			failed[sp] = err
			errs = append(errs, err)
			continue
		}
		x, y := sp.Position()
		cur := sp.Cursor()
		t := sp.Type()
		frames = append(frames, Frame{
			TypeName:    t.Name(),
			State:       sp.State(),
			X:           x,
			Y:           y,
			Width:       t.Width(),
			Height:      t.Height(),
			PoseIndex:   cur.PoseIndex(),
			ImageID:     cur.ImageID(),
			RemainingMs: cur.RemainingMs(),
			Image:       img,
		})
	}
	s.mu.RUnlock()

	if len(failed) > 0 {
		if s.haltCheck != nil {
			s.haltCheck()
		}
		s.mu.Lock()
		for sp := range failed {
			if _, ok := s.halted[sp]; ok || !s.contains(sp) {
				continue
			}
			// A tick may have run since the read; halt only if the sprite
			// still shows a missing image.
			if _, err := sp.CurrentImage(); err != nil {
				s.halted[sp] = err
			}
		}
		s.mu.Unlock()
	}

	return frames, errors.Join(errs...)
}

// contains reports whether sp is still active. Callers hold s.mu.
func (s *Scene) contains(sp *anim.Sprite) bool {
	for _, other := range s.sprites {
		if other == sp {
			return true
		}
	}
	return false
}
