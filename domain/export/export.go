package export

import (
	"errors"
	"fmt"
	"image"
	"log/slog"
	"os"

	"github.com/disintegration/imaging"
	"github.com/dustin/go-humanize"
)

const (
	DefaultWidth  = 600
	DefaultHeight = 400
)

// Exporter crops a source bitmap and writes it as a fixed-size PNG.
type Exporter struct {
	Width  int
	Height int
	Filter imaging.ResampleFilter

	logger *slog.Logger
}

// NewExporter returns an Exporter producing width x height PNGs resampled
// with Lanczos.
func NewExporter(logger *slog.Logger, width, height int) *Exporter {
	if width <= 0 || height <= 0 {
		width, height = DefaultWidth, DefaultHeight
	}
	return &Exporter{Width: width, Height: height, Filter: imaging.Lanczos, logger: logger}
}

// Export crops r out of src, resizes it to the target size and saves it to
// path as PNG, replacing any existing file. It returns the written size.
func (e *Exporter) Export(src image.Image, r image.Rectangle, path string) (int64, error) {
	if src == nil {
		return 0, errors.New("no source image")
	}
	in := r.Intersect(src.Bounds())
	if in.Empty() {
		return 0, fmt.Errorf("crop %v outside image bounds %v", r, src.Bounds())
	}
	cropped := imaging.Crop(src, in)
	resized := imaging.Resize(cropped, e.Width, e.Height, e.Filter)
	if err := imaging.Save(resized, path); err != nil {
		return 0, fmt.Errorf("failed to save %s: %w", path, err)
	}
	st, err := os.Stat(path)
	if err != nil {
		return 0, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if e.logger != nil {
		e.logger.Info("image saved", "path", path, "crop", in.String(), "size", humanize.Bytes(uint64(st.Size())))
	}
	return st.Size(), nil
}
