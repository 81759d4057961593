package app

import (
	"image"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/soocke/pdf-cropper-go/config"
	"github.com/soocke/pdf-cropper-go/ui/model"
)

type nopView struct{ infos []string }

func (v *nopView) Render(image.Image)        {}
func (v *nopView) SetStatus(string)          {}
func (v *nopView) SetStats(model.Stats, int) {}
func (v *nopView) Info(_, msg string)        { v.infos = append(v.infos, msg) }
func (v *nopView) Warn(string, string)       {}
func (v *nopView) Error(string, string)      {}
func (v *nopView) Close()                    {}

func discardLogger() *slog.Logger { return slog.New(slog.NewTextHandler(io.Discard, nil)) }

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	root := t.TempDir()
	cfg := config.DefaultConfig()
	cfg.InputDir = filepath.Join(root, "in")
	cfg.OutputDir = filepath.Join(root, "out")
	cfg.PopplerPath = filepath.Join(root, "no-poppler")
	return cfg
}

func TestBuildContainer_CreatesInputFolder(t *testing.T) {
	cfg := testConfig(t)
	view := &nopView{}
	c, err := BuildContainer(cfg, discardLogger(), view, 800, 600)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if !c.InputCreated || c.Session.Len() != 0 {
		t.Fatalf("expected created empty input, got created=%v len=%d", c.InputCreated, c.Session.Len())
	}
	if _, err := os.Stat(cfg.OutputDir); err != nil {
		t.Fatalf("output folder missing: %v", err)
	}
	c.Presenter.Start()
	if len(view.infos) != 1 || !c.Presenter.Closed() {
		t.Fatalf("empty session should notify and close, infos=%v", view.infos)
	}
	if entries, _ := os.ReadDir(cfg.OutputDir); len(entries) != 0 {
		t.Fatalf("no output expected, found %d files", len(entries))
	}
}

func TestBuildContainer_DiscoversDocuments(t *testing.T) {
	cfg := testConfig(t)
	if err := os.MkdirAll(cfg.InputDir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	for _, n := range []string{"a.pdf", "b.PDF", "c.txt"} {
		if err := os.WriteFile(filepath.Join(cfg.InputDir, n), []byte("%PDF-1.4\n"), 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
	}
	c, err := BuildContainer(cfg, discardLogger(), &nopView{}, 800, 600)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if c.InputCreated || c.Session.Len() != 2 {
		t.Fatalf("expected 2 documents in existing folder, got created=%v len=%d", c.InputCreated, c.Session.Len())
	}
	if c.Exporter.Width != 600 || c.Exporter.Height != 400 {
		t.Fatalf("unexpected exporter size %dx%d", c.Exporter.Width, c.Exporter.Height)
	}
}
