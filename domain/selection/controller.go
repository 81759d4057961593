package selection

import (
	"fmt"
	"image"
	"log/slog"
	"math"
)

const (
	// DefaultHandleTolerance is the corner hit radius in display pixels.
	DefaultHandleTolerance = 10.0
	// DefaultMinSize is the smallest crop side, in source pixels, that Save accepts.
	DefaultMinSize = 5.0
)

// Options configures the aspect constraint and corner hit-testing.
type Options struct {
	AspectRatio     float64 // width / height
	HandleTolerance float64 // display pixels
}

// Controller turns pointer gestures into an aspect-constrained crop rectangle.
// It is driven synchronously from the host event loop and holds no display
// resources, so it can be exercised headlessly.
type Controller struct {
	logger *slog.Logger
	opts   Options

	transform        DisplayTransform
	boundsW, boundsH float64

	mode   Mode
	corner Corner
	anchor Point // press point (creating) or fixed opposite corner (resizing)
	grab   Point // pointer offset from the top-left while moving
	live   *Rect // display coordinates, present during a gesture

	committed *Rect // source coordinates
}

// NewController returns an idle controller with no selection.
func NewController(logger *slog.Logger, opts Options) *Controller {
	if opts.AspectRatio <= 0 {
		opts.AspectRatio = 1.5
	}
	if opts.HandleTolerance <= 0 {
		opts.HandleTolerance = DefaultHandleTolerance
	}
	return &Controller{logger: logger, opts: opts, transform: DisplayTransform{Scale: 1}}
}

// SetTransform installs the display transform and surface bounds. A changed
// transform invalidates the selection since its display projection moved.
func (c *Controller) SetTransform(t DisplayTransform, surfaceW, surfaceH int) {
	changed := t != c.transform
	c.transform = t
	c.boundsW, c.boundsH = float64(surfaceW), float64(surfaceH)
	if changed {
		c.Reset()
	}
}

// Transform returns the current display transform.
func (c *Controller) Transform() DisplayTransform { return c.transform }

// Mode reports the current interaction state.
func (c *Controller) Mode() Mode { return c.mode }

// Corner reports the corner being dragged while resizing.
func (c *Controller) Corner() Corner { return c.corner }

// Anchor reports the fixed gesture point (meaningful while creating or resizing).
func (c *Controller) Anchor() Point { return c.anchor }

// Committed returns the committed selection in source coordinates.
func (c *Controller) Committed() (Rect, bool) {
	if c.committed == nil {
		return Rect{}, false
	}
	return *c.committed, true
}

// Live returns the rectangle to draw in display coordinates: the gesture
// rectangle while a button is held, otherwise the committed selection.
func (c *Controller) Live() (Rect, bool) {
	if c.live != nil {
		return *c.live, true
	}
	if c.committed != nil {
		return c.transform.RectToDisplay(*c.committed), true
	}
	return Rect{}, false
}

// Begin handles a pointer press at display coordinates (x, y).
func (c *Controller) Begin(x, y float64) {
	p := Point{X: x, Y: y}
	if c.committed != nil {
		d := c.transform.RectToDisplay(*c.committed).Normalize()
		if corner, anchor, ok := c.hitCorner(d, p); ok {
			c.live = &d
			c.corner = corner
			c.anchor = anchor
			c.transition(ModeResizing)
			return
		}
		if d.Contains(p) {
			c.live = &d
			c.corner = CornerNone
			c.grab = Point{X: x - d.X1, Y: y - d.Y1}
			c.transition(ModeMoving)
			return
		}
	}
	c.committed = nil
	c.corner = CornerNone
	c.anchor = p
	c.live = &Rect{X1: x, Y1: y, X2: x, Y2: y}
	c.transition(ModeCreating)
}

// hitCorner tests corners in NW, NE, SW, SE order and returns the diagonally
// opposite corner as the resize anchor.
func (c *Controller) hitCorner(d Rect, p Point) (Corner, Point, bool) {
	tol := c.opts.HandleTolerance
	near := func(cx, cy float64) bool {
		return math.Abs(p.X-cx) < tol && math.Abs(p.Y-cy) < tol
	}
	switch {
	case near(d.X1, d.Y1):
		return CornerNW, Point{d.X2, d.Y2}, true
	case near(d.X2, d.Y1):
		return CornerNE, Point{d.X1, d.Y2}, true
	case near(d.X1, d.Y2):
		return CornerSW, Point{d.X2, d.Y1}, true
	case near(d.X2, d.Y2):
		return CornerSE, Point{d.X1, d.Y1}, true
	}
	return CornerNone, Point{}, false
}

// Drag handles pointer motion with the button held.
func (c *Controller) Drag(x, y float64) {
	if c.live == nil {
		return
	}
	switch c.mode {
	case ModeCreating:
		c.dragCreate(x, y)
	case ModeMoving:
		c.dragMove(x, y)
	case ModeResizing:
		c.dragResize(x, y)
	}
}

func (c *Controller) dragCreate(x, y float64) {
	ratio := c.opts.AspectRatio
	dx, dy := x-c.anchor.X, y-c.anchor.Y
	w, h := math.Abs(dx), math.Abs(dy)
	if w > h*ratio {
		h = w / ratio
	} else {
		w = h * ratio
	}
	c.live = &Rect{
		X1: c.anchor.X, Y1: c.anchor.Y,
		X2: c.anchor.X + w*sign(dx), Y2: c.anchor.Y + h*sign(dy),
	}
}

func (c *Controller) dragMove(x, y float64) {
	cur := c.live.Normalize()
	w, h := cur.Width(), cur.Height()
	x1, y1 := x-c.grab.X, y-c.grab.Y
	if x1+w > c.boundsW {
		x1 = c.boundsW - w
	}
	if y1+h > c.boundsH {
		y1 = c.boundsH - h
	}
	// Left/top win when the rectangle is larger than the surface.
	if x1 < 0 {
		x1 = 0
	}
	if y1 < 0 {
		y1 = 0
	}
	c.live = &Rect{X1: x1, Y1: y1, X2: x1 + w, Y2: y1 + h}
}

func (c *Controller) dragResize(x, y float64) {
	dx, dy := x-c.anchor.X, y-c.anchor.Y
	w := math.Abs(dx)
	h := w / c.opts.AspectRatio
	c.live = &Rect{
		X1: c.anchor.X, Y1: c.anchor.Y,
		X2: c.anchor.X + w*sign(dx), Y2: c.anchor.Y + h*sign(dy),
	}
}

// End finalizes the gesture and commits the selection in source coordinates.
// Degenerate rectangles are not committed.
func (c *Controller) End(x, y float64) {
	if c.live == nil {
		c.transition(ModeIdle)
		return
	}
	d := c.live.Normalize()
	c.live = nil
	c.corner = CornerNone
	if d.Empty() {
		c.committed = nil
		if c.logger != nil {
			c.logger.Debug("selection discarded", "reason", "degenerate")
		}
		c.transition(ModeIdle)
		return
	}
	src := c.transform.RectToSource(d)
	c.committed = &src
	if c.logger != nil {
		c.logger.Debug("selection committed",
			"x1", src.X1, "y1", src.Y1, "x2", src.X2, "y2", src.Y2)
	}
	c.transition(ModeIdle)
}

// Rotate drops the selection because the source dimensions changed.
func (c *Controller) Rotate() { c.Reset() }

// Reset clears both the gesture and the committed selection.
func (c *Controller) Reset() {
	c.live = nil
	c.committed = nil
	c.corner = CornerNone
	c.transition(ModeIdle)
}

// CropRect returns the committed selection clamped to an imgW x imgH source
// and rounded to whole pixels. Selections missing, degenerate or not larger
// than minSize on both axes fail with ErrInvalidSelection.
func (c *Controller) CropRect(imgW, imgH int, minSize float64) (image.Rectangle, error) {
	if c.committed == nil {
		return image.Rectangle{}, fmt.Errorf("%w: no selection", ErrInvalidSelection)
	}
	r := c.committed.Normalize()
	x1 := math.Max(0, r.X1)
	y1 := math.Max(0, r.Y1)
	x2 := math.Min(float64(imgW), r.X2)
	y2 := math.Min(float64(imgH), r.Y2)
	if x2 <= x1+minSize || y2 <= y1+minSize {
		return image.Rectangle{}, fmt.Errorf("%w: selection too small (%.0fx%.0f)", ErrInvalidSelection, math.Max(0, x2-x1), math.Max(0, y2-y1))
	}
	return image.Rect(int(math.Round(x1)), int(math.Round(y1)), int(math.Round(x2)), int(math.Round(y2))), nil
}

func (c *Controller) transition(next Mode) {
	prev := c.mode
	if prev == next {
		return
	}
	c.mode = next
	if c.logger != nil {
		c.logger.Debug("selection state transition", "from", prev.String(), "to", next.String(), "corner", c.corner.String())
	}
}

func sign(v float64) float64 {
	if v >= 0 {
		return 1
	}
	return -1
}
