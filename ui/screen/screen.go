package screen

import (
	"fmt"
	"image"
	"regexp"
	"strconv"
	"strings"

	"github.com/vova616/screenshot"
)

// Fallback is used when the screen size cannot be queried.
var Fallback = image.Rect(0, 0, 1920, 1080)

// Bounds returns the rectangle of the primary screen.
func Bounds() (image.Rectangle, error) {
	r, err := screenshot.ScreenRect()
	if err != nil {
		return Fallback, err
	}
	if r.Empty() {
		return Fallback, fmt.Errorf("empty screen rectangle %v", r)
	}
	return r, nil
}

// WindowRect sizes a w x h window to fit on scr, leaving margin pixels on each
// side, and centres it.
func WindowRect(w, h int, scr image.Rectangle, margin int) image.Rectangle {
	maxW := scr.Dx() - 2*margin
	maxH := scr.Dy() - 2*margin
	if maxW > 0 && w > maxW {
		w = maxW
	}
	if maxH > 0 && h > maxH {
		h = maxH
	}
	x := scr.Min.X + (scr.Dx()-w)/2
	y := scr.Min.Y + (scr.Dy()-h)/2
	return image.Rect(x, y, x+w, y+h)
}

// Geometry formats r as a Tk geometry string "WxH+X+Y".
func Geometry(r image.Rectangle) string {
	return fmt.Sprintf("%dx%d+%d+%d", r.Dx(), r.Dy(), r.Min.X, r.Min.Y)
}

// geomRe matches window geometry strings in the format "WIDTHxHEIGHT+X+Y"
var geomRe = regexp.MustCompile(`^(\d+)x(\d+)\+(-?\d+)\+(-?\d+)$`)

// ParseGeometry parses a Tk geometry string into a rectangle.
func ParseGeometry(g string) (image.Rectangle, bool) {
	m := geomRe.FindStringSubmatch(strings.TrimSpace(g))
	if len(m) != 5 {
		return image.Rectangle{}, false
	}
	w, _ := strconv.Atoi(m[1])
	h, _ := strconv.Atoi(m[2])
	x, _ := strconv.Atoi(m[3])
	y, _ := strconv.Atoi(m[4])
	if w <= 0 || h <= 0 {
		return image.Rectangle{}, false
	}
	return image.Rect(x, y, x+w, y+h), true
}
