package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/speedata/optionparser"

	"github.com/soocke/pdf-cropper-go/app"
	"github.com/soocke/pdf-cropper-go/config"
)

const defaultEnvFile = ".env"

// cliFlags holds command-line overrides; empty values leave the config alone.
type cliFlags struct {
	configPath string
	envFile    string
	input      string
	output     string
	poppler    string
	debug      bool
	saveConfig bool
}

func parseFlags() (cliFlags, error) {
	var f cliFlags
	op := optionparser.NewOptionParser()
	op.Banner = "Crop the first page of every PDF in a folder to a fixed-size PNG.\nUsage: pdf-cropper [options]"
	op.On("--config FILE", "Read configuration from FILE", &f.configPath)
	op.On("--env FILE", "Load environment overrides from FILE (default .env)", &f.envFile)
	op.On("--input DIR", "Folder containing the PDF files", &f.input)
	op.On("--output DIR", "Folder receiving the PNG files", &f.output)
	op.On("--poppler DIR", "Folder containing pdftoppm", &f.poppler)
	op.On("--debug", "Enable debug logging and memory statistics", &f.debug)
	op.On("--save-config", "Write the effective configuration to the config file", &f.saveConfig)
	op.On("-h", "--help", "Show this help", func() { op.Help(); os.Exit(0) })
	if err := op.Parse(); err != nil {
		return f, err
	}
	if len(op.Extra) > 0 {
		return f, fmt.Errorf("unexpected arguments: %v", op.Extra)
	}
	return f, nil
}

// applyFlags overrides cfg with the flags that were given.
func applyFlags(cfg *config.Config, f cliFlags) {
	if f.input != "" {
		cfg.InputDir = f.input
	}
	if f.output != "" {
		cfg.OutputDir = f.output
	}
	if f.poppler != "" {
		cfg.PopplerPath = f.poppler
	}
	if f.debug {
		cfg.Debug = true
	}
	_ = cfg.Validate()
}

// loadConfig resolves the effective configuration:
// defaults < config file < environment (.env) < flags.
func loadConfig(f cliFlags) (cfg *config.Config, path string, warnings []error) {
	path = f.configPath
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			warnings = append(warnings, fmt.Errorf("config path: %w", err))
		}
		path = p
	}
	var err error
	if path != "" {
		cfg, err = config.Load(path)
		if err != nil {
			warnings = append(warnings, fmt.Errorf("load config %s: %w", path, err))
		}
	} else {
		cfg = config.DefaultConfig()
	}
	envFile := f.envFile
	if envFile == "" {
		envFile = defaultEnvFile
	}
	if err := cfg.ApplyEnv(envFile); err != nil {
		warnings = append(warnings, fmt.Errorf("load env %s: %w", envFile, err))
	}
	applyFlags(cfg, f)
	return cfg, path, warnings
}

func run() int {
	flags, err := parseFlags()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}
	cfg, path, warnings := loadConfig(flags)

	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	logger := NewLogger(level)
	for _, w := range warnings {
		logger.Warn("configuration", "err", w)
	}
	if flags.saveConfig && path != "" {
		if err := cfg.Save(path); err != nil {
			logger.Error("save config", "path", path, "err", err)
		} else {
			logger.Info("config saved", "path", path)
		}
	}
	logger.Info("starting", "input", cfg.InputDir, "output", cfg.OutputDir, "dpi", cfg.DPI, "target", fmt.Sprintf("%dx%d", cfg.TargetWidth, cfg.TargetHeight))

	application, err := app.NewApp("PDF Cropper", cfg, logger)
	if err != nil {
		logger.Error("startup failed", "err", err)
		return 1
	}
	application.Start()
	return 0
}

func main() {
	os.Exit(run())
}
