package model

import (
	"image"
	"image/color"
	"testing"

	"github.com/soocke/pdf-cropper-go/domain/document"
)

func TestSessionModel_QueueLifecycle(t *testing.T) {
	m := NewSessionModel([]document.Document{
		{Path: "in/a.pdf", Name: "a.pdf"},
		{Path: "in/b.pdf", Name: "b.pdf"},
	})
	if m.Done() {
		t.Fatalf("fresh session should not be done")
	}
	doc, ok := m.Current()
	if !ok || doc.Name != "a.pdf" {
		t.Fatalf("expected a.pdf, got %+v ok=%v", doc, ok)
	}
	if i, n := m.Position(); i != 1 || n != 2 {
		t.Fatalf("expected position 1/2, got %d/%d", i, n)
	}

	m.SetImage(image.NewNRGBA(image.Rect(0, 0, 4, 2)))
	m.MarkSaved()
	m.Advance()
	if m.Image() != nil {
		t.Fatalf("advance should drop the bitmap")
	}
	if doc, _ := m.Current(); doc.Name != "b.pdf" {
		t.Fatalf("expected b.pdf, got %s", doc.Name)
	}

	m.MarkSkipped()
	m.Advance()
	if !m.Done() {
		t.Fatalf("expected done after last document")
	}
	if _, ok := m.Current(); ok {
		t.Fatalf("Current should report false when done")
	}
	m.Advance() // no-op past the end
	if i, _ := m.Position(); i != 3 {
		t.Fatalf("advance past end must not move, position %d", i)
	}

	st := m.Stats()
	if st.Saved != 1 || st.Skipped != 1 || st.Failed != 0 || st.Processed() != 2 {
		t.Fatalf("unexpected stats %+v", st)
	}
}

func TestSessionModel_EmptyQueue(t *testing.T) {
	m := NewSessionModel(nil)
	if !m.Done() || m.Len() != 0 {
		t.Fatalf("empty session should be done")
	}
	var zero *SessionModel
	if !zero.Done() || zero.Image() != nil || zero.Stats() != (Stats{}) {
		t.Fatalf("nil model should behave as empty")
	}
}

func TestSessionModel_RotateClockwise(t *testing.T) {
	m := NewSessionModel([]document.Document{{Path: "a.pdf", Name: "a.pdf"}})
	if m.Rotate() {
		t.Fatalf("rotate without bitmap should report false")
	}
	src := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	red := color.NRGBA{R: 255, A: 255}
	src.SetNRGBA(0, 0, red) // top-left
	m.SetImage(src)
	if !m.Rotate() {
		t.Fatalf("rotate should succeed")
	}
	b := m.Image().Bounds()
	if b.Dx() != 2 || b.Dy() != 3 {
		t.Fatalf("expected 2x3 after rotation, got %v", b)
	}
	// clockwise: top-left moves to top-right
	if got := color.NRGBAModel.Convert(m.Image().At(1, 0)).(color.NRGBA); got != red {
		t.Fatalf("expected red at top-right, got %+v", got)
	}
}
