package ebitenui

import (
	"image"
	"image/color"
	"image/draw"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/vector"
)

const iconSize = 24

var (
	iconOnce sync.Once
	iconImg  *ebiten.Image
)

// arrowIcon rasterizes the upward arrow glyph once and reuses it.
func arrowIcon() *ebiten.Image {
	iconOnce.Do(func() {
		iconImg = ebiten.NewImageFromImage(rasterizeArrow(iconSize, color.White))
	})
	return iconImg
}

// rasterizeArrow renders a filled upward arrow (head plus stem) at the
// given square size.
func rasterizeArrow(size int, fill color.Color) image.Image {
	s := float32(size)
	r := vector.NewRasterizer(size, size)

	// Head: triangle across the upper half.
	r.MoveTo(s*0.5, s*0.10)
	r.LineTo(s*0.15, s*0.45)
	r.LineTo(s*0.85, s*0.45)
	r.ClosePath()

	// Stem: narrow rectangle down to the base.
	r.MoveTo(s*0.42, s*0.40)
	r.LineTo(s*0.58, s*0.40)
	r.LineTo(s*0.58, s*0.90)
	r.LineTo(s*0.42, s*0.90)
	r.ClosePath()

	mask := image.NewAlpha(image.Rect(0, 0, size, size))
	r.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})

	out := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.DrawMask(out, out.Bounds(), image.NewUniform(fill), image.Point{}, mask, image.Point{}, draw.Over)
	return out
}
