package view

import (
	"image"
	"log/slog"

	"github.com/soocke/pdf-cropper-go/ui/model"
	"github.com/soocke/pdf-cropper-go/ui/theme"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// Actions are the operator commands bound to buttons and keys.
type Actions struct {
	Save   func()
	Rotate func()
	Skip   func()
	Quit   func()
}

// RootView composes the top-level application layout and wires UI callbacks.
// It owns high-level subviews but exposes minimal exported fields for presenters.
type RootView struct {
	logger *slog.Logger

	// Subviews
	Stats   SessionStats
	Surface Surface

	// Widgets
	StatusLabel *TLabelWidget

	closed bool
}

// UI abstracts the view operations needed by the crop presenter.
type UI interface {
	Render(frame image.Image)
	SetStatus(text string)
	SetStats(stats model.Stats, total int)
	Info(title, msg string)
	Warn(title, msg string)
	Error(title, msg string)
	Close()
}

var _ UI = (*RootView)(nil)

func NewRootView(logger *slog.Logger) *RootView {
	return &RootView{logger: logger}
}

// Build constructs the layout: status row, display surface, then the button
// and counter row. Keys s/n/r/q and Escape mirror the buttons.
func (rv *RootView) Build(actions Actions, handlers SurfaceHandlers) {
	if rv == nil {
		return
	}
	const cols = 2
	rv.StatusLabel = TLabel(Style(theme.StyleStatusLabel), Txt("Loading..."))
	Grid(rv.StatusLabel, Row(0), Column(0), Columnspan(cols), Sticky("we"), Padx("0.4m"), Pady("0.3m"))

	rv.Surface = NewSurface(rv.logger, 1, cols, handlers)
	GridRowConfigure(App, 1, Weight(1))
	GridColumnConfigure(App, 0, Weight(1))

	btnFrame := Frame()
	Grid(btnFrame, Row(2), Column(0), Sticky("w"), Padx("0.3m"), Pady("0.3m"))
	buttons := []struct {
		text, style string
		fn          func()
	}{
		{"Save & Next (S)", theme.StyleSaveButton, actions.Save},
		{"Rotate (R)", theme.StyleRotateButton, actions.Rotate},
		{"Skip (N)", theme.StyleSkipButton, actions.Skip},
		{"Quit (Q)", theme.StyleQuitButton, actions.Quit},
	}
	for i, b := range buttons {
		if b.fn == nil {
			continue
		}
		btn := TButton(Style(b.style), Txt(b.text), Command(b.fn))
		Grid(btn, In(btnFrame), Row(0), Column(i), Sticky("we"), Padx("0.4m"), Pady("0.2m"))
	}

	statsFrame := Frame()
	Grid(statsFrame, Row(2), Column(1), Sticky("e"), Padx("0.3m"), Pady("0.3m"))
	rv.Stats = NewSessionStats(statsFrame, 0, 0)

	bindKeys(actions.Save, "s", "S")
	bindKeys(actions.Skip, "n", "N")
	bindKeys(actions.Rotate, "r", "R")
	bindKeys(actions.Quit, "q", "Q", "Escape")
}

func bindKeys(fn func(), keys ...string) {
	if fn == nil {
		return
	}
	for _, k := range keys {
		Bind(App, "<KeyPress-"+k+">", Command(fn))
	}
}

// Render shows a composed frame on the surface.
func (rv *RootView) Render(frame image.Image) {
	if rv != nil && !rv.closed && rv.Surface != nil {
		rv.Surface.Render(frame)
	}
}

// SetStatus updates the status line.
func (rv *RootView) SetStatus(text string) {
	if rv != nil && !rv.closed && rv.StatusLabel != nil {
		rv.StatusLabel.Configure(Txt(text))
	}
}

// SetStats updates the outcome counters.
func (rv *RootView) SetStats(stats model.Stats, total int) {
	if rv != nil && !rv.closed && rv.Stats != nil {
		rv.Stats.SetStats(stats, total)
	}
}

func (rv *RootView) Info(title, msg string)  { rv.message("info", title, msg) }
func (rv *RootView) Warn(title, msg string)  { rv.message("warning", title, msg) }
func (rv *RootView) Error(title, msg string) { rv.message("error", title, msg) }

func (rv *RootView) message(icon, title, msg string) {
	if rv == nil || rv.closed {
		return
	}
	if rv.logger != nil {
		rv.logger.Debug("message box", "icon", icon, "title", title, "msg", msg)
	}
	MessageBox(Icon(icon), Title(title), Msg(msg))
}

// Close tears down the window, which ends App.Wait.
func (rv *RootView) Close() {
	if rv == nil || rv.closed {
		return
	}
	rv.closed = true
	Destroy(App)
}
