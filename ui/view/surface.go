package view

import (
	"image"
	"log/slog"
	"strconv"

	"github.com/soocke/pdf-cropper-go/assets"
	"github.com/soocke/pdf-cropper-go/ui/images"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// SurfaceHandlers receive button-1 gestures in frame pixel coordinates and
// the label's size whenever the layout changes it.
type SurfaceHandlers struct {
	Press   func(x, y float64)
	Drag    func(x, y float64)
	Release func(x, y float64)
	Resize  func(w, h int)
}

// Surface shows composed frames on a borderless label. The image is anchored
// at the top-left corner so event coordinates equal frame pixel coordinates.
type Surface interface {
	Render(frame image.Image)
}

type surface struct {
	logger    *slog.Logger
	label     *LabelWidget
	prevPhoto *Img // disposed before replacement to avoid piling up pixel data
}

// NewSurface creates the display label at row, spanning cols columns, and binds
// pointer gestures and size changes.
func NewSurface(logger *slog.Logger, row, cols int, h SurfaceHandlers) Surface {
	photo := NewPhoto(Data(assets.PlaceholderPNG))
	lbl := Label(Image(photo), Anchor("nw"), Borderwidth(0), Padx(0), Pady(0))
	Grid(lbl, Row(row), Column(0), Columnspan(cols), Sticky("nsew"))
	s := &surface{logger: logger, label: lbl, prevPhoto: photo}
	bindPointer(lbl, "<ButtonPress-1>", h.Press)
	bindPointer(lbl, "<B1-Motion>", h.Drag)
	bindPointer(lbl, "<ButtonRelease-1>", h.Release)
	if h.Resize != nil {
		Bind(lbl, "<Configure>", Command(func(e *Event) {
			w, _ := strconv.Atoi(e.Width)
			ht, _ := strconv.Atoi(e.Height)
			h.Resize(w, ht)
		}))
	}
	return s
}

func bindPointer(w *LabelWidget, seq string, fn func(x, y float64)) {
	if fn == nil {
		return
	}
	Bind(w, seq, Command(func(e *Event) {
		fn(float64(e.X), float64(e.Y))
	}))
}

func (s *surface) Render(frame image.Image) {
	if s == nil || s.label == nil || frame == nil {
		return
	}
	pngBytes, err := images.EncodePNG(frame)
	if err != nil {
		if s.logger != nil {
			s.logger.Error("frame encode failed", "bounds", frame.Bounds().String(), "err", err)
		}
		return
	}
	if s.prevPhoto != nil {
		s.prevPhoto.Delete()
	}
	s.prevPhoto = NewPhoto(Data(pngBytes))
	s.label.Configure(Image(s.prevPhoto))
}
