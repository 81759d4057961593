package assets

import (
	"bytes"
	"image/png"
	"testing"
)

func TestPlaceholderPNG_Decodes(t *testing.T) {
	img, err := png.Decode(bytes.NewReader(PlaceholderPNG))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 320 || b.Dy() != 200 {
		t.Fatalf("unexpected placeholder bounds %v", b)
	}
}
