package export

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
)

// stripes returns a w x h image: red left of splitX, blue elsewhere.
func stripes(w, h, splitX int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := color.NRGBA{B: 255, A: 255}
			if x < splitX {
				c = color.NRGBA{R: 255, A: 255}
			}
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func TestExporter_WritesFixedSizePNG(t *testing.T) {
	out := filepath.Join(t.TempDir(), "doc.png")
	e := NewExporter(nil, 600, 400)
	n, err := e.Export(stripes(3000, 2000, 1500), image.Rect(250, 250, 1000, 750), out)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if n <= 0 {
		t.Fatalf("expected non-empty file, got %d bytes", n)
	}
	img, err := imaging.Open(out)
	if err != nil {
		t.Fatalf("open output: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 600 || b.Dy() != 400 {
		t.Fatalf("expected 600x400, got %v", b)
	}
	// crop lies entirely in the red half
	if r, g, b, _ := img.At(300, 200).RGBA(); r>>8 < 250 || g>>8 > 5 || b>>8 > 5 {
		t.Fatalf("expected red centre pixel, got %d,%d,%d", r>>8, g>>8, b>>8)
	}
}

func TestExporter_OverwritesExisting(t *testing.T) {
	out := filepath.Join(t.TempDir(), "doc.png")
	if err := os.WriteFile(out, []byte("stale"), 0o644); err != nil {
		t.Fatalf("seed: %v", err)
	}
	e := NewExporter(nil, 60, 40)
	if _, err := e.Export(stripes(300, 200, 100), image.Rect(0, 0, 150, 100), out); err != nil {
		t.Fatalf("export: %v", err)
	}
	img, err := imaging.Open(out)
	if err != nil {
		t.Fatalf("expected overwritten PNG, got %v", err)
	}
	if b := img.Bounds(); b.Dx() != 60 || b.Dy() != 40 {
		t.Fatalf("unexpected bounds %v", b)
	}
}

func TestExporter_RejectsCropOutsideImage(t *testing.T) {
	out := filepath.Join(t.TempDir(), "doc.png")
	e := NewExporter(nil, 60, 40)
	if _, err := e.Export(stripes(100, 100, 50), image.Rect(200, 200, 300, 300), out); err == nil {
		t.Fatalf("expected error for crop outside image")
	}
	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Fatalf("no file should be written, stat err=%v", err)
	}
}
