package data

import (
	"testing"

	"github.com/milk9111/spriteviewer/catalog"
)

func TestSampleSpriteTypesLoad(t *testing.T) {
	c, err := catalog.Load(SpriteTypes(), ListFile)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := map[string][]string{
		"box_man": {"IDLE", "WALKING", "BLINKING"},
		"blob":    {"WOBBLE", "BOUNCE"},
	}
	if c.Len() != len(want) {
		t.Fatalf("expected %d types, got %v", len(want), c.Names())
	}
	for name, states := range want {
		st, ok := c.Type(name)
		if !ok {
			t.Fatalf("missing type %s", name)
		}
		got := st.StateNames()
		if len(got) != len(states) {
			t.Fatalf("%s: expected states %v, got %v", name, states, got)
		}
		for i := range states {
			if got[i] != states[i] {
				t.Fatalf("%s: expected states %v, got %v", name, states, got)
			}
		}
		for _, id := range st.ImageIDs() {
			img, _ := st.Image(id)
			if b := img.Bounds(); b.Dx() != st.Width() || b.Dy() != st.Height() {
				t.Fatalf("%s image %d is %dx%d, want %dx%d", name, id, b.Dx(), b.Dy(), st.Width(), st.Height())
			}
		}
	}
}
