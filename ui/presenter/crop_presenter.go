package presenter

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"math"
	"path/filepath"

	"github.com/dustin/go-humanize"

	"github.com/soocke/pdf-cropper-go/domain/document"
	"github.com/soocke/pdf-cropper-go/domain/selection"
	"github.com/soocke/pdf-cropper-go/ui/images"
	"github.com/soocke/pdf-cropper-go/ui/model"
)

// Operator-facing messages.
const (
	MsgNoDocuments   = "No PDF files found"
	MsgAllProcessed  = "All files processed!"
	MsgNoSelection   = "Please draw a selection box first."
	MsgSmallSelected = "Selection too small."
)

// Exporter writes the cropped region of src to path.
type Exporter interface {
	Export(src image.Image, r image.Rectangle, path string) (int64, error)
}

// CropView is the narrow surface the presenter drives.
type CropView interface {
	Render(frame image.Image)
	SetStatus(text string)
	SetStats(stats model.Stats, total int)
	Info(title, msg string)
	Warn(title, msg string)
	Error(title, msg string)
	Close()
}

// CropOptions tunes presentation and export.
type CropOptions struct {
	OutputDir    string
	MinSelection float64
	FitMargin    float64
	Background   color.Color
	Outline      images.Outline

	// OnRasterized runs after every successful page render (debug hooks).
	OnRasterized func(doc document.Document)
}

// CropPresenter drives the crop session: it loads each document, routes
// pointer gestures to the selection controller and handles save, skip,
// rotate and quit.
type CropPresenter struct {
	session  *model.SessionModel
	sel      *selection.Controller
	raster   document.Rasterizer
	exporter Exporter
	view     CropView
	logger   *slog.Logger
	opts     CropOptions

	surfW, surfH int
	display      image.Image // current page scaled to the transform
	closed       bool
}

// NewCropPresenter wires the presenter. The surface size is the initial
// display area in pixels.
func NewCropPresenter(logger *slog.Logger, session *model.SessionModel, sel *selection.Controller, raster document.Rasterizer, exporter Exporter, view CropView, opts CropOptions, surfW, surfH int) *CropPresenter {
	if opts.Background == nil {
		opts.Background = color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff}
	}
	if opts.Outline.Width == 0 {
		opts.Outline = images.DefaultOutline
	}
	if opts.MinSelection < 0 {
		opts.MinSelection = selection.DefaultMinSize
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &CropPresenter{
		session:  session,
		sel:      sel,
		raster:   raster,
		exporter: exporter,
		view:     view,
		logger:   logger,
		opts:     opts,
		surfW:    surfW,
		surfH:    surfH,
	}
}

// Closed reports whether the session has ended.
func (p *CropPresenter) Closed() bool { return p == nil || p.closed }

// Start begins the session with the first document.
func (p *CropPresenter) Start() {
	if p == nil || p.view == nil || p.closed {
		return
	}
	if p.session.Len() == 0 {
		p.logger.Info("no documents to process")
		p.view.Info("Info", MsgNoDocuments)
		p.close()
		return
	}
	p.logger.Info("session started", "documents", p.session.Len())
	p.loadCurrent()
}

// loadCurrent rasterizes documents until one succeeds or the queue ends.
func (p *CropPresenter) loadCurrent() {
	p.display = nil
	p.sel.Reset()
	for !p.session.Done() {
		doc, _ := p.session.Current()
		i, n := p.session.Position()
		p.view.SetStatus(fmt.Sprintf("Loading [%d/%d]: %s", i, n, doc.Name))
		img, err := p.raster.Rasterize(doc.Path)
		if err != nil {
			if errors.Is(err, document.ErrEngineUnavailable) {
				p.logger.Error("rasterization engine unavailable", "err", err)
				p.view.Error("Error", fmt.Sprintf("Cannot render PDFs: %v\nInstall poppler or set POPPLER_PATH.", err))
				p.close()
				return
			}
			p.logger.Warn("document failed, skipping", "path", doc.Path, "err", err)
			p.session.MarkFailed()
			p.session.Advance()
			p.pushStats()
			continue
		}
		p.session.SetImage(img)
		if p.opts.OnRasterized != nil {
			p.opts.OnRasterized(doc)
		}
		p.view.SetStatus(fmt.Sprintf("Processing [%d/%d]: %s", i, n, doc.Name))
		p.pushStats()
		p.refit()
		return
	}
	st := p.session.Stats()
	p.logger.Info("session finished", "saved", st.Saved, "skipped", st.Skipped, "failed", st.Failed)
	p.view.Info("Done", MsgAllProcessed)
	p.close()
}

// refit recomputes the display transform for the current bitmap and surface.
func (p *CropPresenter) refit() {
	img := p.session.Image()
	if img == nil {
		p.display = nil
		p.redraw()
		return
	}
	b := img.Bounds()
	t := selection.FitTransform(b.Dx(), b.Dy(), p.surfW, p.surfH, p.opts.FitMargin)
	w, h := selection.DisplaySize(b.Dx(), b.Dy(), t.Scale)
	p.display = images.ScaleTo(img, w, h)
	p.sel.SetTransform(t, p.surfW, p.surfH)
	p.redraw()
}

func (p *CropPresenter) redraw() {
	if p.closed {
		return
	}
	t := p.sel.Transform()
	var outline image.Rectangle
	if r, ok := p.sel.Live(); ok {
		r = r.Normalize()
		outline = image.Rect(round(r.X1), round(r.Y1), round(r.X2), round(r.Y2))
	}
	frame := images.ComposeSurface(p.display, p.surfW, p.surfH, image.Pt(round(t.OffsetX), round(t.OffsetY)), outline, p.opts.Background, p.opts.Outline)
	p.view.Render(frame)
}

func (p *CropPresenter) pushStats() {
	_, n := p.session.Position()
	p.view.SetStats(p.session.Stats(), n)
}

func (p *CropPresenter) ready() bool {
	return p != nil && !p.closed && p.session.Image() != nil
}

// Press, Drag and Release forward pointer events in surface coordinates.
func (p *CropPresenter) Press(x, y float64) {
	if !p.ready() {
		return
	}
	p.sel.Begin(x, y)
	p.redraw()
}

func (p *CropPresenter) Drag(x, y float64) {
	if !p.ready() || p.sel.Mode() == selection.ModeIdle {
		return
	}
	p.sel.Drag(x, y)
	p.redraw()
}

func (p *CropPresenter) Release(x, y float64) {
	if !p.ready() {
		return
	}
	p.sel.End(x, y)
	p.redraw()
}

// Save exports the committed selection and moves to the next document.
func (p *CropPresenter) Save() {
	if !p.ready() {
		return
	}
	img := p.session.Image()
	doc, _ := p.session.Current()
	b := img.Bounds()
	r, err := p.sel.CropRect(b.Dx(), b.Dy(), p.opts.MinSelection)
	if err != nil {
		msg := MsgSmallSelected
		if _, ok := p.sel.Committed(); !ok {
			msg = MsgNoSelection
		}
		p.logger.Debug("save rejected", "doc", doc.Name, "err", err)
		p.view.Warn("Warning", msg)
		return
	}
	out := filepath.Join(p.opts.OutputDir, doc.OutputName())
	n, err := p.exporter.Export(img, r.Add(b.Min), out)
	if err != nil {
		p.logger.Error("export failed", "doc", doc.Name, "path", out, "err", err)
		p.view.Error("Error", fmt.Sprintf("Could not save %s: %v", out, err))
		return
	}
	p.logger.Info("document saved", "doc", doc.Name, "path", out, "size", humanize.Bytes(uint64(max(n, 0))))
	p.session.MarkSaved()
	p.next()
}

// Skip leaves the current document without output.
func (p *CropPresenter) Skip() {
	if !p.ready() {
		return
	}
	doc, _ := p.session.Current()
	p.logger.Info("document skipped", "doc", doc.Name)
	p.session.MarkSkipped()
	p.next()
}

func (p *CropPresenter) next() {
	p.session.Advance()
	p.pushStats()
	p.loadCurrent()
}

// Rotate turns the page clockwise; the selection is discarded.
func (p *CropPresenter) Rotate() {
	if !p.ready() {
		return
	}
	if !p.session.Rotate() {
		return
	}
	p.sel.Rotate()
	p.refit()
}

// Quit ends the session immediately.
func (p *CropPresenter) Quit() {
	if p == nil || p.closed {
		return
	}
	st := p.session.Stats()
	p.logger.Info("session quit", "saved", st.Saved, "skipped", st.Skipped, "failed", st.Failed)
	p.close()
}

// Resize updates the surface size and refits the page.
func (p *CropPresenter) Resize(w, h int) {
	if p == nil || p.closed || w <= 0 || h <= 0 || (w == p.surfW && h == p.surfH) {
		return
	}
	p.surfW, p.surfH = w, h
	p.refit()
}

func (p *CropPresenter) close() {
	if p.closed {
		return
	}
	p.closed = true
	p.view.Close()
}

func round(v float64) int { return int(math.Round(v)) }
