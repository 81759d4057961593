package app

import (
	"fmt"
	"log/slog"
	"time"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"

	"github.com/soocke/pdf-cropper-go/config"
	"github.com/soocke/pdf-cropper-go/debug"
	"github.com/soocke/pdf-cropper-go/ui/screen"
	"github.com/soocke/pdf-cropper-go/ui/theme"
	"github.com/soocke/pdf-cropper-go/ui/view"
)

const (
	// first load waits for the window to map
	startDelay = 100 * time.Millisecond
	// initial guess for the status and button rows; the surface reports its
	// real size once mapped
	chromeHeight = 110
	chromeWidth  = 16
	screenMargin = 40
	memInterval  = 30 * time.Second
)

type app struct {
	config    *config.Config
	logger    *slog.Logger
	container *AppContainer
	root      *view.RootView
	afterID   string
	stopMem   chan struct{}
}

// NewApp sizes the window, builds the components and lays out the UI.
func NewApp(title string, cfg *config.Config, logger *slog.Logger) (*app, error) {
	a := &app{config: cfg, logger: logger, stopMem: make(chan struct{})}

	scr, err := screen.Bounds()
	if err != nil {
		logger.Warn("screen size unavailable, using fallback", "err", err, "fallback", scr.String())
	}
	win := screen.WindowRect(cfg.WindowWidth, cfg.WindowHeight, scr, screenMargin)
	surfW := max(win.Dx()-chromeWidth, 1)
	surfH := max(win.Dy()-chromeHeight, 1)

	a.root = view.NewRootView(logger)
	c, err := BuildContainer(cfg, logger, a.root, surfW, surfH)
	if err != nil {
		return nil, err
	}
	a.container = c

	App.WmTitle(title)
	WmProtocol(App, "WM_DELETE_WINDOW", a.exitHandler)
	WmGeometry(App, screen.Geometry(win))
	theme.SetDark(cfg.DarkMode)

	p := c.Presenter
	a.root.Build(view.Actions{
		Save:   p.Save,
		Rotate: p.Rotate,
		Skip:   p.Skip,
		Quit:   a.exitHandler,
	}, view.SurfaceHandlers{
		Press:   p.Press,
		Drag:    p.Drag,
		Release: p.Release,
		Resize:  a.surfaceResized,
	})
	logger.Info("window ready", "geometry", screen.Geometry(win), "surface", fmt.Sprintf("%dx%d", surfW, surfH))
	return a, nil
}

// Start schedules the first document and blocks in the Tk event loop until
// the window closes.
func (a *app) Start() {
	if a.config.Debug {
		debug.StartMemLogger(memInterval, a.logger, a.stopMem)
	}
	a.afterID = TclAfter(startDelay, func() {
		a.afterID = ""
		if a.container.InputCreated {
			a.root.Info("Info", fmt.Sprintf("Created input folder %q. Add PDF files there and restart.", a.config.InputDir))
		}
		a.container.Presenter.Start()
	})
	App.Wait()
	close(a.stopMem)
	st := a.container.Session.Stats()
	a.logger.Info("exiting", "saved", st.Saved, "skipped", st.Skipped, "failed", st.Failed)
}

// surfaceResized refits the page to the label's real size.
func (a *app) surfaceResized(w, h int) {
	if win, ok := screen.ParseGeometry(WmGeometry(App)); ok {
		a.logger.Debug("surface resized", "surface", fmt.Sprintf("%dx%d", w, h), "window", screen.Geometry(win))
	}
	a.container.Presenter.Resize(w, h)
}

func (a *app) exitHandler() {
	if a.afterID != "" {
		TclAfterCancel(a.afterID)
		a.afterID = ""
	}
	a.container.Presenter.Quit()
	a.root.Close()
}
