package theme

// Palette constants and SetDark for the cropper window. Action buttons use
// a slightly darker shade in dark mode.

import (
	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

const (
	ColorBg        = "#f7f9fb" // app background
	ColorText      = "#1e293b"
	ColorTextMuted = "#64748b"
	ColorSave      = "#4CAF50"
	ColorSaveHi    = "#43A047"
	ColorRotate    = "#2196F3"
	ColorRotateHi  = "#1E88E5"
	ColorSkip      = "#f44336"
	ColorSkipHi    = "#E53935"
)

// PaletteSnapshot represents resolved colors for the active mode.
type PaletteSnapshot struct {
	AppBg     string
	Text      string
	TextMuted string
}

// CurrentPalette returns colors for the current dark/light mode.
func CurrentPalette() PaletteSnapshot {
	if darkMode {
		return PaletteSnapshot{AppBg: "#0f172a", Text: "#f1f5f9", TextMuted: "#94a3b8"}
	}
	return PaletteSnapshot{AppBg: ColorBg, Text: ColorText, TextMuted: ColorTextMuted}
}

// style names used with Style("save.TButton") etc.
const (
	StyleSaveButton   = "save.TButton"
	StyleRotateButton = "rotate.TButton"
	StyleSkipButton   = "skip.TButton"
	StyleQuitButton   = "quit.TButton"
	StyleStatusLabel  = "status.TLabel"
	StyleStatsLabel   = "stats.TLabel"
)

var darkMode bool

// SetDark selects the mode and applies styles. Returns new mode value.
func SetDark(dark bool) bool {
	darkMode = dark
	applyStyles(darkMode)
	return darkMode
}

func actionButton(style, bg string) {
	StyleConfigure(style,
		Background(bg),
		Foreground("white"),
		Padding("6p 4p"),
		Borderwidth(1),
		Relief("raised"),
	)
}

func applyStyles(dark bool) {
	_ = ActivateTheme("azure light") // baseline metrics
	p := CurrentPalette()
	App.Configure(Background(p.AppBg))

	if dark {
		actionButton(StyleSaveButton, ColorSaveHi)
		actionButton(StyleRotateButton, ColorRotateHi)
		actionButton(StyleSkipButton, ColorSkipHi)
	} else {
		actionButton(StyleSaveButton, ColorSave)
		actionButton(StyleRotateButton, ColorRotate)
		actionButton(StyleSkipButton, ColorSkip)
	}
	StyleConfigure(StyleQuitButton, Padding("6p 4p"), Borderwidth(1), Relief("raised"))

	StyleConfigure(StyleStatusLabel,
		Foreground(p.Text),
		Background(p.AppBg),
		Padding("4p 2p"),
	)
	StyleConfigure(StyleStatsLabel,
		Foreground(p.TextMuted),
		Background(p.AppBg),
		Padding("2p 1p"),
	)
}
