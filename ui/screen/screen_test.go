package screen

import (
	"image"
	"testing"
)

func TestWindowRect_FitsAndCentres(t *testing.T) {
	cases := []struct {
		name   string
		w, h   int
		scr    image.Rectangle
		margin int
		want   image.Rectangle
	}{
		{"fits", 1400, 900, image.Rect(0, 0, 1920, 1080), 0, image.Rect(260, 90, 1660, 990)},
		{"capped", 1400, 900, image.Rect(0, 0, 1280, 720), 20, image.Rect(20, 20, 1260, 700)},
		{"offset screen", 800, 600, image.Rect(1920, 0, 3840, 1080), 0, image.Rect(2480, 240, 3280, 840)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := WindowRect(c.w, c.h, c.scr, c.margin); got != c.want {
				t.Fatalf("want %v got %v", c.want, got)
			}
		})
	}
}

func TestGeometry_RoundTrip(t *testing.T) {
	r := image.Rect(260, 90, 1660, 990)
	g := Geometry(r)
	if g != "1400x900+260+90" {
		t.Fatalf("unexpected geometry %q", g)
	}
	back, ok := ParseGeometry(" " + g + " ")
	if !ok || back != r {
		t.Fatalf("parse mismatch: %v ok=%v", back, ok)
	}
}

func TestParseGeometry_Rejects(t *testing.T) {
	for _, g := range []string{"", "1400x900", "0x10+0+0", "axb+1+2"} {
		if _, ok := ParseGeometry(g); ok {
			t.Fatalf("expected %q to be rejected", g)
		}
	}
}
