package view

import (
	"fmt"

	"github.com/soocke/pdf-cropper-go/ui/model"
	"github.com/soocke/pdf-cropper-go/ui/theme"

	//lint:ignore ST1001 Dot import for concise Tk widget DSL.
	. "modernc.org/tk9.0"
)

// SessionStats shows per-session outcome counters.
type SessionStats interface {
	SetStats(s model.Stats, total int)
}

type sessionStats struct {
	savedLbl     *TLabelWidget
	skippedLbl   *TLabelWidget
	failedLbl    *TLabelWidget
	remainingLbl *TLabelWidget
}

// NewSessionStats creates the counter labels in a single row of parent,
// starting at column startCol.
func NewSessionStats(parent *FrameWidget, row, startCol int) SessionStats {
	s := &sessionStats{}
	for i, lbl := range []**TLabelWidget{&s.savedLbl, &s.skippedLbl, &s.failedLbl, &s.remainingLbl} {
		*lbl = TLabel(Style(theme.StyleStatsLabel), Width(14))
		Grid(*lbl, In(parent), Row(row), Column(startCol+i), Sticky("w"), Padx("0.2m"))
	}
	s.SetStats(model.Stats{}, 0)
	return s
}

func (s *sessionStats) SetStats(st model.Stats, total int) {
	if s == nil || s.savedLbl == nil {
		return
	}
	s.savedLbl.Configure(Txt(fmt.Sprintf("Saved: %d", st.Saved)))
	s.skippedLbl.Configure(Txt(fmt.Sprintf("Skipped: %d", st.Skipped)))
	s.failedLbl.Configure(Txt(fmt.Sprintf("Failed: %d", st.Failed)))
	s.remainingLbl.Configure(Txt(fmt.Sprintf("Remaining: %d", max(total-st.Processed(), 0))))
}
