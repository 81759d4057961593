package images

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// Outline describes the dashed selection rectangle drawn over the page.
type Outline struct {
	Color color.NRGBA
	Width int // stroke width in pixels, grows inward
	Dash  int // length of each dash and gap; 0 draws a solid line
}

// DefaultOutline is a red 2px outline dashed 5 on / 5 off.
var DefaultOutline = Outline{Color: color.NRGBA{R: 255, A: 255}, Width: 2, Dash: 5}

// ComposeSurface renders the display surface: a w x h background filled with
// bg, page pasted at offset, and the selection outline when sel is non-empty.
// Anything outside the surface is clipped.
func ComposeSurface(page image.Image, w, h int, offset image.Point, sel image.Rectangle, bg color.Color, o Outline) *image.NRGBA {
	dst := imaging.New(max(w, 1), max(h, 1), bg)
	if page != nil {
		dst = imaging.Paste(dst, page, offset)
	}
	if !sel.Empty() {
		DrawDashedRect(dst, sel, o)
	}
	return dst
}

// DrawDashedRect strokes r on dst in place. The dash phase runs continuously
// around the perimeter starting at the top-left corner.
func DrawDashedRect(dst *image.NRGBA, r image.Rectangle, o Outline) {
	r = r.Canon()
	if r.Empty() {
		return
	}
	width := max(o.Width, 1)
	bounds := dst.Bounds()
	on := func(step int) bool {
		if o.Dash <= 0 {
			return true
		}
		return (step/o.Dash)%2 == 0
	}
	plot := func(x, y int) {
		if (image.Point{X: x, Y: y}).In(bounds) {
			dst.SetNRGBA(x, y, o.Color)
		}
	}
	x0, y0, x1, y1 := r.Min.X, r.Min.Y, r.Max.X-1, r.Max.Y-1
	step := 0
	for x := x0; x <= x1; x, step = x+1, step+1 { // top
		if on(step) {
			for k := 0; k < width; k++ {
				plot(x, y0+k)
			}
		}
	}
	for y := y0; y <= y1; y, step = y+1, step+1 { // right
		if on(step) {
			for k := 0; k < width; k++ {
				plot(x1-k, y)
			}
		}
	}
	for x := x1; x >= x0; x, step = x-1, step+1 { // bottom
		if on(step) {
			for k := 0; k < width; k++ {
				plot(x, y1-k)
			}
		}
	}
	for y := y1; y >= y0; y, step = y-1, step+1 { // left
		if on(step) {
			for k := 0; k < width; k++ {
				plot(x0+k, y)
			}
		}
	}
}
