package render

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/spriteviewer/scene"
)

// FrameGeoM places an imgW x imgH image at the frame position, stretched to
// the sprite type's declared size.
func FrameGeoM(f scene.Frame, imgW, imgH int) ebiten.GeoM {
	var m ebiten.GeoM
	if imgW > 0 && imgH > 0 && f.Width > 0 && f.Height > 0 && (imgW != f.Width || imgH != f.Height) {
		m.Scale(float64(f.Width)/float64(imgW), float64(f.Height)/float64(imgH))
	}
	m.Translate(f.X, f.Y)
	return m
}

// DrawFrames blits every frame onto dst.
func DrawFrames(dst *ebiten.Image, r *Registry, frames []scene.Frame) {
	for _, f := range frames {
		img := r.Image(f.TypeName, f.ImageID, f.Image)
		if img == nil {
			continue
		}
		b := img.Bounds()
		op := &ebiten.DrawImageOptions{}
		op.GeoM = FrameGeoM(f, b.Dx(), b.Dy())
		op.Filter = ebiten.FilterNearest
		dst.DrawImage(img, op)
	}
}
