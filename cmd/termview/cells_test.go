package main

import (
	"image"
	"image/color"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

func TestFitCells(t *testing.T) {
	cases := []struct {
		name             string
		w, h             int
		maxCols, maxRows int
		cols, rows       int
	}{
		{"fits", 32, 48, 80, 40, 32, 24},
		{"odd_height", 4, 5, 80, 40, 4, 3},
		{"narrow_terminal", 32, 48, 16, 40, 16, 12},
		{"short_terminal", 32, 48, 80, 12, 16, 12},
		{"empty_image", 0, 10, 80, 40, 0, 0},
		{"no_room", 32, 48, 0, 0, 0, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cols, rows := fitCells(c.w, c.h, c.maxCols, c.maxRows)
			if cols != c.cols || rows != c.rows {
				t.Fatalf("fitCells(%d,%d,%d,%d) = %d,%d want %d,%d",
					c.w, c.h, c.maxCols, c.maxRows, cols, rows, c.cols, c.rows)
			}
		})
	}
}

func TestSampleCells(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 4))
	red := color.NRGBA{R: 255, A: 255}
	blue := color.NRGBA{B: 255, A: 255}
	for x := 0; x < 2; x++ {
		img.Set(x, 0, red)
		img.Set(x, 1, blue)
		img.Set(x, 3, color.NRGBA{R: 255, G: 255, B: 255, A: 128})
	}
	bg := colorful.Color{R: 0, G: 0, B: 0}

	grid := sampleCells(img, 2, 2, bg)
	if len(grid) != 2 || len(grid[0]) != 2 {
		t.Fatalf("unexpected grid size %dx%d", len(grid), len(grid[0]))
	}
	if grid[0][0].top != tcell.NewRGBColor(255, 0, 0) || grid[0][1].bottom != tcell.NewRGBColor(0, 0, 255) {
		t.Fatalf("unexpected first row %+v", grid[0])
	}
	if grid[1][0].top != tcell.NewRGBColor(0, 0, 0) {
		t.Fatalf("transparent pixel should show the background, got %v", grid[1][0].top)
	}
	r, g, b := grid[1][0].bottom.RGB()
	if r < 120 || r > 135 || r != g || g != b {
		t.Fatalf("expected half blended white, got %d,%d,%d", r, g, b)
	}
}
