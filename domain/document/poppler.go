package document

import (
	"context"
	"errors"
	"fmt"
	"image"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/disintegration/imaging"
)

const (
	DefaultDPI     = 300
	defaultTimeout = 2 * time.Minute
)

// Rasterizer turns the first page of a PDF into a full-resolution bitmap.
// Implementations return an error wrapping ErrEngineUnavailable when the
// engine is missing and a *DocumentError for per-document failures.
type Rasterizer interface {
	Rasterize(path string) (image.Image, error)
}

// Poppler rasterizes with poppler's pdftoppm.
type Poppler struct {
	BinDir  string // directory holding pdftoppm; empty searches PATH
	DPI     int
	Timeout time.Duration

	logger *slog.Logger
	pages  func(path string) (int, error)
}

// NewPoppler returns a pdftoppm-backed Rasterizer.
func NewPoppler(logger *slog.Logger, binDir string, dpi int, timeout time.Duration) *Poppler {
	if dpi <= 0 {
		dpi = DefaultDPI
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Poppler{BinDir: binDir, DPI: dpi, Timeout: timeout, logger: logger, pages: PageCount}
}

// Available reports whether pdftoppm can be located.
func (p *Poppler) Available() error {
	_, err := p.binary()
	return err
}

func (p *Poppler) binary() (string, error) {
	name := "pdftoppm"
	if runtime.GOOS == "windows" {
		name += ".exe"
	}
	if p.BinDir != "" {
		path := filepath.Join(p.BinDir, name)
		st, err := os.Stat(path)
		if err != nil || st.IsDir() {
			return "", fmt.Errorf("%w: %s not found, check the poppler path", ErrEngineUnavailable, path)
		}
		return path, nil
	}
	path, err := exec.LookPath(name)
	if err != nil {
		return "", fmt.Errorf("%w: pdftoppm not found on PATH, install poppler: %v", ErrEngineUnavailable, err)
	}
	return path, nil
}

// Rasterize renders page 1 of the PDF at path.
func (p *Poppler) Rasterize(path string) (image.Image, error) {
	bin, err := p.binary()
	if err != nil {
		return nil, err
	}
	if p.pages != nil {
		if n, perr := p.pages(path); perr != nil {
			// poppler copes with files the page tree reader rejects
			p.debug("page tree probe failed", "path", path, "error", perr)
		} else if n == 0 {
			return nil, &DocumentError{Path: path, Err: errors.New("document has no pages")}
		}
	}

	tmp, err := os.MkdirTemp("", "pdf-cropper-*")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp directory: %w", err)
	}
	defer os.RemoveAll(tmp)

	start := time.Now()
	ctx, cancel := context.WithTimeout(context.Background(), p.Timeout)
	defer cancel()
	outBase := filepath.Join(tmp, "page")
	cmd := exec.CommandContext(ctx, bin,
		"-png", "-singlefile",
		"-f", "1", "-l", "1",
		"-r", strconv.Itoa(p.DPI),
		path, outBase)
	if out, err := cmd.CombinedOutput(); err != nil {
		msg := strings.TrimSpace(string(out))
		return nil, &DocumentError{Path: path, Err: fmt.Errorf("pdftoppm failed: %w: %s", err, msg)}
	}

	img, err := imaging.Open(outBase + ".png")
	if err != nil {
		return nil, &DocumentError{Path: path, Err: fmt.Errorf("failed to read converted image: %w", err)}
	}
	if p.logger != nil {
		b := img.Bounds()
		p.logger.Info("document rasterized", "path", path, "width", b.Dx(), "height", b.Dy(), "dpi", p.DPI, "elapsed", time.Since(start))
	}
	return img, nil
}

func (p *Poppler) debug(msg string, args ...any) {
	if p.logger != nil {
		p.logger.Debug(msg, args...)
	}
}

var _ Rasterizer = (*Poppler)(nil)
