package selection

import (
	"errors"
	"math"
)

// ErrInvalidSelection reports a save attempt without a usable selection.
var ErrInvalidSelection = errors.New("invalid selection")

// Mode enumerates the interaction states of a pointer gesture.
type Mode int

const (
	ModeIdle Mode = iota
	ModeCreating
	ModeMoving
	ModeResizing
)

func (m Mode) String() string {
	switch m {
	case ModeIdle:
		return "idle"
	case ModeCreating:
		return "creating"
	case ModeMoving:
		return "moving"
	case ModeResizing:
		return "resizing"
	default:
		return "unknown"
	}
}

// Corner identifies a rectangle corner grabbed for resizing.
type Corner int

const (
	CornerNone Corner = iota
	CornerNW
	CornerNE
	CornerSW
	CornerSE
)

func (c Corner) String() string {
	switch c {
	case CornerNW:
		return "nw"
	case CornerNE:
		return "ne"
	case CornerSW:
		return "sw"
	case CornerSE:
		return "se"
	default:
		return "none"
	}
}

// Point is a position in display or source space.
type Point struct {
	X float64
	Y float64
}

// Rect is an axis-aligned rectangle given by two opposite corners.
// It is not necessarily normalized; call Normalize before reading extents.
type Rect struct {
	X1, Y1 float64
	X2, Y2 float64
}

// Normalize returns the rectangle with X1<=X2 and Y1<=Y2.
func (r Rect) Normalize() Rect {
	return Rect{
		X1: math.Min(r.X1, r.X2),
		Y1: math.Min(r.Y1, r.Y2),
		X2: math.Max(r.X1, r.X2),
		Y2: math.Max(r.Y1, r.Y2),
	}
}

func (r Rect) Width() float64  { return math.Abs(r.X2 - r.X1) }
func (r Rect) Height() float64 { return math.Abs(r.Y2 - r.Y1) }

// Empty reports whether either extent is zero.
func (r Rect) Empty() bool { return r.Width() == 0 || r.Height() == 0 }

// Contains reports whether p lies strictly inside the normalized rectangle.
func (r Rect) Contains(p Point) bool {
	n := r.Normalize()
	return n.X1 < p.X && p.X < n.X2 && n.Y1 < p.Y && p.Y < n.Y2
}

// DisplayTransform maps source-image pixels onto the display surface.
// Scale is display pixels per source pixel; Offset is the display position
// of the source origin.
type DisplayTransform struct {
	Scale   float64
	OffsetX float64
	OffsetY float64
}

// FitTransform centres a srcW x srcH image on a surfW x surfH surface,
// scaled to fit and shrunk by margin (e.g. 0.95).
func FitTransform(srcW, srcH, surfW, surfH int, margin float64) DisplayTransform {
	if srcW <= 0 || srcH <= 0 || surfW <= 0 || surfH <= 0 {
		return DisplayTransform{Scale: 1}
	}
	if margin <= 0 || margin > 1 {
		margin = 1
	}
	scale := math.Min(float64(surfW)/float64(srcW), float64(surfH)/float64(srcH)) * margin
	w, h := DisplaySize(srcW, srcH, scale)
	return DisplayTransform{
		Scale:   scale,
		OffsetX: float64((surfW - w) / 2),
		OffsetY: float64((surfH - h) / 2),
	}
}

// DisplaySize is the integer size of a srcW x srcH image drawn at scale.
func DisplaySize(srcW, srcH int, scale float64) (int, int) {
	w, h := int(float64(srcW)*scale), int(float64(srcH)*scale)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return w, h
}

// ToSource converts a display point to source coordinates.
func (t DisplayTransform) ToSource(p Point) Point {
	s := t.scale()
	return Point{X: (p.X - t.OffsetX) / s, Y: (p.Y - t.OffsetY) / s}
}

// ToDisplay converts a source point to display coordinates.
func (t DisplayTransform) ToDisplay(p Point) Point {
	s := t.scale()
	return Point{X: p.X*s + t.OffsetX, Y: p.Y*s + t.OffsetY}
}

// RectToSource converts both corners of r to source coordinates.
func (t DisplayTransform) RectToSource(r Rect) Rect {
	a := t.ToSource(Point{r.X1, r.Y1})
	b := t.ToSource(Point{r.X2, r.Y2})
	return Rect{X1: a.X, Y1: a.Y, X2: b.X, Y2: b.Y}
}

// RectToDisplay converts both corners of r to display coordinates.
func (t DisplayTransform) RectToDisplay(r Rect) Rect {
	a := t.ToDisplay(Point{r.X1, r.Y1})
	b := t.ToDisplay(Point{r.X2, r.Y2})
	return Rect{X1: a.X, Y1: a.Y, X2: b.X, Y2: b.Y}
}

func (t DisplayTransform) scale() float64 {
	if t.Scale <= 0 {
		return 1
	}
	return t.Scale
}
