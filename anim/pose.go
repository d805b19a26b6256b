package anim

import "fmt"

// Pose is one still frame of an animation and how long it stays on screen.
type Pose struct {
	ImageID    int
	DurationMs int
}

// PoseSequence is the ordered, looping list of poses for one animation state.
// It is read-only once built.
type PoseSequence struct {
	name    string
	poses   []Pose
	totalMs int
}

// NewPoseSequence validates poses and copies them into a new sequence.
func NewPoseSequence(name string, poses []Pose) (*PoseSequence, error) {
	if len(poses) == 0 {
		return nil, fmt.Errorf("anim: state %q: %w", name, ErrEmptySequence)
	}
	total := 0
	for i, p := range poses {
		if p.DurationMs <= 0 {
			return nil, fmt.Errorf("anim: state %q pose %d: duration %d: %w", name, i, p.DurationMs, ErrInvalidDuration)
		}
		if p.ImageID < 0 {
			return nil, fmt.Errorf("anim: state %q pose %d: image %d: %w", name, i, p.ImageID, ErrInvalidImageID)
		}
		total += p.DurationMs
	}
	return &PoseSequence{
		name:    name,
		poses:   append([]Pose(nil), poses...),
		totalMs: total,
	}, nil
}

func (s *PoseSequence) Name() string { return s.name }

func (s *PoseSequence) Len() int { return len(s.poses) }

// At returns the pose at index i. It panics if i is out of range.
func (s *PoseSequence) At(i int) Pose { return s.poses[i] }

// TotalMs is the duration of one full loop of the sequence.
func (s *PoseSequence) TotalMs() int { return s.totalMs }
