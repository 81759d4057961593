package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.TargetWidth != 600 || cfg.TargetHeight != 400 || cfg.DPI != 300 {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
	if cfg.AspectRatio() != 1.5 {
		t.Fatalf("expected ratio 1.5, got %v", cfg.AspectRatio())
	}
}

func TestSaveLoad_PreservesValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")
	cfg := DefaultConfig()
	cfg.InputDir = "pdfs"
	cfg.PopplerPath = "/opt/poppler/bin"
	cfg.DPI = 150
	if err := cfg.Save(path); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.InputDir != "pdfs" || got.PopplerPath != "/opt/poppler/bin" || got.DPI != 150 {
		t.Fatalf("round trip lost values: %+v", got)
	}
}

func TestLoad_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := Load(path)
	if err == nil {
		t.Fatalf("expected decode error")
	}
	if cfg == nil || cfg.DPI != 300 {
		t.Fatalf("expected defaults alongside error, got %+v", cfg)
	}
}

func TestValidate_ClampsOutOfRange(t *testing.T) {
	cfg := &Config{DPI: 5, FitMargin: 3, TargetWidth: -1, HandleTolerancePx: -2, MinSelectionPx: -1}
	_ = cfg.Validate()
	if cfg.DPI != 300 || cfg.FitMargin != 0.95 || cfg.TargetWidth != 600 || cfg.TargetHeight != 400 {
		t.Fatalf("values not clamped: %+v", cfg)
	}
	if cfg.HandleTolerancePx != 10 || cfg.MinSelectionPx != 5 {
		t.Fatalf("selection values not clamped: %+v", cfg)
	}
	if cfg.InputDir != "input_pdfs" || cfg.OutputDir != "output_images" {
		t.Fatalf("folders not defaulted: %+v", cfg)
	}
}

func TestApplyEnv_DotenvAndEnvironment(t *testing.T) {
	envPath := filepath.Join(t.TempDir(), ".env")
	content := "PDFCROP_INPUT_DIR=scans\nPOPPLER_PATH=/usr/local/poppler\nPDFCROP_DPI=200\n"
	if err := os.WriteFile(envPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	for _, k := range []string{EnvInputDir, EnvPoppler, EnvDPI} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
	// already-set variables win over the .env file
	t.Setenv(EnvOutputDir, "crops")
	t.Setenv(EnvDebug, "true")

	cfg := DefaultConfig()
	if err := cfg.ApplyEnv(envPath); err != nil {
		t.Fatalf("apply env: %v", err)
	}
	if cfg.InputDir != "scans" || cfg.PopplerPath != "/usr/local/poppler" || cfg.DPI != 200 {
		t.Fatalf(".env values not applied: %+v", cfg)
	}
	if cfg.OutputDir != "crops" || !cfg.Debug {
		t.Fatalf("environment values not applied: %+v", cfg)
	}
}
