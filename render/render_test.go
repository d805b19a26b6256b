package render

import (
	"image"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/spriteviewer/scene"
)

func fakeRegistry(calls *int) *Registry {
	r := NewRegistry()
	r.convert = func(image.Image) *ebiten.Image {
		*calls++
		return &ebiten.Image{}
	}
	return r
}

func TestRegistryCachesPerTypeAndID(t *testing.T) {
	var calls int
	r := fakeRegistry(&calls)
	src := image.NewNRGBA(image.Rect(0, 0, 2, 2))

	a := r.Image("box_man", 0, src)
	if again := r.Image("box_man", 0, src); again != a {
		t.Fatalf("expected cached image for the same key")
	}
	if other := r.Image("blob", 0, src); other == a {
		t.Fatalf("expected a separate image for another type")
	}
	if calls != 2 || r.Len() != 2 {
		t.Fatalf("expected 2 uploads, got calls=%d len=%d", calls, r.Len())
	}
	if r.Image("box_man", 1, nil) != nil {
		t.Fatalf("expected nil for nil source")
	}

	r.Reset()
	if r.Len() != 0 {
		t.Fatalf("expected empty registry after Reset")
	}
	r.Image("box_man", 0, src)
	if calls != 3 {
		t.Fatalf("expected re-upload after Reset, got %d calls", calls)
	}
}

func TestFrameGeoM(t *testing.T) {
	cases := []struct {
		name       string
		frame      scene.Frame
		imgW, imgH int
		corner     [2]float64
	}{
		{
			name:   "native_size",
			frame:  scene.Frame{X: 300, Y: 100, Width: 32, Height: 48},
			imgW:   32,
			imgH:   48,
			corner: [2]float64{332, 148},
		},
		{
			name:   "stretched",
			frame:  scene.Frame{X: 10, Y: 20, Width: 64, Height: 32},
			imgW:   32,
			imgH:   32,
			corner: [2]float64{74, 52},
		},
		{
			name:   "unknown_size",
			frame:  scene.Frame{X: 5, Y: 6},
			imgW:   8,
			imgH:   8,
			corner: [2]float64{13, 14},
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			m := FrameGeoM(c.frame, c.imgW, c.imgH)
			x, y := m.Apply(0, 0)
			if x != c.frame.X || y != c.frame.Y {
				t.Fatalf("origin at (%v,%v), want (%v,%v)", x, y, c.frame.X, c.frame.Y)
			}
			x, y = m.Apply(float64(c.imgW), float64(c.imgH))
			if x != c.corner[0] || y != c.corner[1] {
				t.Fatalf("corner at (%v,%v), want %v", x, y, c.corner)
			}
		})
	}
}
