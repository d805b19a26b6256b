package main

import (
	"image"
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// halfBlock draws the upper pixel as foreground and the lower one as
// background, giving two pixel rows per terminal row.
const halfBlock = '▀'

type cell struct {
	top, bottom tcell.Color
}

// fitCells returns the cell grid for a w x h image inside maxCols x maxRows,
// keeping the aspect ratio and never upscaling.
func fitCells(w, h, maxCols, maxRows int) (cols, rows int) {
	if w <= 0 || h <= 0 || maxCols <= 0 || maxRows <= 0 {
		return 0, 0
	}
	scale := math.Min(1, math.Min(float64(maxCols)/float64(w), float64(2*maxRows)/float64(h)))
	cols = max(1, int(float64(w)*scale))
	rows = max(1, int(math.Ceil(float64(h)*scale/2)))
	return min(cols, maxCols), min(rows, maxRows)
}

// sampleCells downsamples img onto a cols x rows grid by nearest neighbour.
// Translucent pixels are blended over bg.
func sampleCells(img image.Image, cols, rows int, bg colorful.Color) [][]cell {
	b := img.Bounds()
	grid := make([][]cell, rows)
	for cy := range rows {
		grid[cy] = make([]cell, cols)
		for cx := range cols {
			x := b.Min.X + cx*b.Dx()/cols
			top := b.Min.Y + (2*cy)*b.Dy()/(2*rows)
			bottom := b.Min.Y + (2*cy+1)*b.Dy()/(2*rows)
			grid[cy][cx] = cell{
				top:    blend(img.At(x, top), bg),
				bottom: blend(img.At(x, bottom), bg),
			}
		}
	}
	return grid
}

func blend(c color.Color, bg colorful.Color) tcell.Color {
	_, _, _, a := c.RGBA()
	var out colorful.Color
	switch a {
	case 0:
		out = bg
	case 0xffff:
		out, _ = colorful.MakeColor(c)
	default:
		fg, _ := colorful.MakeColor(c)
		out = bg.BlendRgb(fg, float64(a)/0xffff)
	}
	r, g, bl := out.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(bl))
}
