package app

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/soocke/pdf-cropper-go/config"
	"github.com/soocke/pdf-cropper-go/debug"
	"github.com/soocke/pdf-cropper-go/domain/document"
	"github.com/soocke/pdf-cropper-go/domain/export"
	"github.com/soocke/pdf-cropper-go/domain/selection"
	"github.com/soocke/pdf-cropper-go/ui/images"
	"github.com/soocke/pdf-cropper-go/ui/model"
	"github.com/soocke/pdf-cropper-go/ui/presenter"
)

// AppContainer assembles models, services, presenters and the root view.
type AppContainer struct {
	Config     *config.Config
	Logger     *slog.Logger
	Session    *model.SessionModel
	Selection  *selection.Controller
	Rasterizer *document.Poppler
	Exporter   *export.Exporter
	UI         presenter.CropView

	Presenter *presenter.CropPresenter

	// InputCreated is set when the input folder did not exist and was created.
	InputCreated bool
}

// BuildContainer prepares the folders, discovers the documents and constructs
// all components. ui is the view the presenter drives; surfW x surfH is the
// display surface size in pixels.
func BuildContainer(cfg *config.Config, logger *slog.Logger, ui presenter.CropView, surfW, surfH int) (*AppContainer, error) {
	c := &AppContainer{Config: cfg, Logger: logger, UI: ui}

	created, err := document.PrepareDirs(cfg.InputDir, cfg.OutputDir)
	if err != nil {
		return nil, fmt.Errorf("prepare folders: %w", err)
	}
	c.InputCreated = created
	if created {
		logger.Info("input folder created", "dir", cfg.InputDir)
	}
	docs, err := document.Discover(cfg.InputDir)
	if err != nil {
		return nil, fmt.Errorf("discover documents: %w", err)
	}
	logger.Info("documents discovered", "dir", cfg.InputDir, "count", len(docs))

	c.Session = model.NewSessionModel(docs)
	c.Selection = selection.NewController(logger, selection.Options{
		AspectRatio:     cfg.AspectRatio(),
		HandleTolerance: cfg.HandleTolerancePx,
	})
	c.Rasterizer = document.NewPoppler(logger, cfg.PopplerPath, cfg.DPI, time.Duration(cfg.RasterTimeoutSeconds)*time.Second)
	if err := c.Rasterizer.Available(); err != nil {
		// reported to the operator when the first document loads
		logger.Warn("pdftoppm not found", "poppler_path", cfg.PopplerPath, "err", err)
	}
	c.Exporter = export.NewExporter(logger, cfg.TargetWidth, cfg.TargetHeight)

	opts := presenter.CropOptions{
		OutputDir:    cfg.OutputDir,
		MinSelection: cfg.MinSelectionPx,
		FitMargin:    cfg.FitMargin,
		Outline:      images.DefaultOutline,
	}
	if cfg.Debug {
		opts.OnRasterized = func(doc document.Document) {
			debug.LogMemStats(logger, "rasterized", "doc", doc.Name)
		}
	}
	c.Presenter = presenter.NewCropPresenter(logger, c.Session, c.Selection, c.Rasterizer, c.Exporter, ui, opts, surfW, surfH)
	return c, nil
}
