package model

import (
	"image"

	"github.com/disintegration/imaging"

	"github.com/soocke/pdf-cropper-go/domain/document"
)

// Stats counts the outcome of every document visited so far.
type Stats struct {
	Saved   int
	Skipped int
	Failed  int
}

// Processed is the number of documents that left the queue.
func (s Stats) Processed() int { return s.Saved + s.Skipped + s.Failed }

// SessionModel tracks the document queue, the bitmap of the current document
// and per-session outcome counters. It is decoupled from the UI; presenters
// read it and update views. The zero value is an empty, finished session.
type SessionModel struct {
	docs  []document.Document
	index int
	img   image.Image
	stats Stats
}

// NewSessionModel returns a SessionModel positioned at the first document.
func NewSessionModel(docs []document.Document) *SessionModel {
	return &SessionModel{docs: docs}
}

// Len is the number of documents in the queue.
func (m *SessionModel) Len() int {
	if m == nil {
		return 0
	}
	return len(m.docs)
}

// Done reports whether the queue is exhausted.
func (m *SessionModel) Done() bool {
	return m == nil || m.index >= len(m.docs)
}

// Current returns the current document; ok is false once Done.
func (m *SessionModel) Current() (document.Document, bool) {
	if m.Done() {
		return document.Document{}, false
	}
	return m.docs[m.index], true
}

// Position returns the 1-based index of the current document and the total.
func (m *SessionModel) Position() (int, int) {
	if m == nil {
		return 0, 0
	}
	return m.index + 1, len(m.docs)
}

// Advance moves to the next document and drops the current bitmap.
func (m *SessionModel) Advance() {
	if m.Done() {
		return
	}
	m.index++
	m.img = nil
}

// Image returns the bitmap of the current document (nil before it is loaded).
func (m *SessionModel) Image() image.Image {
	if m == nil {
		return nil
	}
	return m.img
}

// SetImage replaces the bitmap of the current document.
func (m *SessionModel) SetImage(img image.Image) {
	if m == nil {
		return
	}
	m.img = img
}

// Rotate turns the current bitmap 90 degrees clockwise. It reports false when
// no bitmap is loaded.
func (m *SessionModel) Rotate() bool {
	if m == nil || m.img == nil {
		return false
	}
	m.img = imaging.Rotate270(m.img)
	return true
}

func (m *SessionModel) MarkSaved()   { m.stats.Saved++ }
func (m *SessionModel) MarkSkipped() { m.stats.Skipped++ }
func (m *SessionModel) MarkFailed()  { m.stats.Failed++ }

// Stats returns a copy of the counters.
func (m *SessionModel) Stats() Stats {
	if m == nil {
		return Stats{}
	}
	return m.stats
}
