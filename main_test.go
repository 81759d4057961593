package main

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/soocke/pdf-cropper-go/config"
)

func TestApplyFlags_OverridesOnlyGiven(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.PopplerPath = "/from/env"
	applyFlags(cfg, cliFlags{input: "scans", debug: true})
	if cfg.InputDir != "scans" || cfg.OutputDir != "output_images" || cfg.PopplerPath != "/from/env" || !cfg.Debug {
		t.Fatalf("unexpected config %+v", cfg)
	}
}

func TestLoadConfig_Precedence(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.json")
	file := config.DefaultConfig()
	file.InputDir = "from-file"
	file.OutputDir = "from-file-out"
	file.DPI = 150
	if err := file.Save(cfgPath); err != nil {
		t.Fatalf("save: %v", err)
	}
	envPath := filepath.Join(dir, ".env")
	if err := os.WriteFile(envPath, []byte("PDFCROP_OUTPUT_DIR=from-env\n"), 0o644); err != nil {
		t.Fatalf("write env: %v", err)
	}
	for _, k := range []string{config.EnvInputDir, config.EnvOutputDir, config.EnvPoppler, config.EnvDPI, config.EnvDebug} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}

	cfg, path, warnings := loadConfig(cliFlags{configPath: cfgPath, envFile: envPath, poppler: "/from/flag"})
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings %v", warnings)
	}
	if path != cfgPath {
		t.Fatalf("expected path %s, got %s", cfgPath, path)
	}
	if cfg.InputDir != "from-file" || cfg.DPI != 150 {
		t.Fatalf("file values lost: %+v", cfg)
	}
	if cfg.OutputDir != "from-env" {
		t.Fatalf("env should override file, got %s", cfg.OutputDir)
	}
	if cfg.PopplerPath != "/from/flag" {
		t.Fatalf("flag should override, got %s", cfg.PopplerPath)
	}
}

func TestNewLogger_RespectsLevel(t *testing.T) {
	logger := NewLogger(slog.LevelWarn)
	if logger.Enabled(context.Background(), slog.LevelInfo) {
		t.Fatalf("info should be disabled at warn level")
	}
	if !logger.Enabled(context.Background(), slog.LevelError) {
		t.Fatalf("error should be enabled at warn level")
	}
}
