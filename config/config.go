package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/adrg/xdg"
	"github.com/joho/godotenv"
)

const appDirName = "pdf-cropper"

// Environment variables read by ApplyEnv (also from a .env file).
const (
	EnvInputDir  = "PDFCROP_INPUT_DIR"
	EnvOutputDir = "PDFCROP_OUTPUT_DIR"
	EnvPoppler   = "POPPLER_PATH"
	EnvDPI       = "PDFCROP_DPI"
	EnvDebug     = "PDFCROP_DEBUG"
)

// Config holds runtime configuration for the cropper.
// Fields may be loaded from a JSON file, overridden by the environment and
// finally by command-line flags.
type Config struct {
	Debug bool `json:"debug"`

	// Folders
	InputDir  string `json:"input_dir"`
	OutputDir string `json:"output_dir"`

	// Rasterization
	PopplerPath          string `json:"poppler_path"` // directory containing pdftoppm; empty uses PATH
	DPI                  int    `json:"dpi"`
	RasterTimeoutSeconds int    `json:"raster_timeout_seconds"`

	// Output image
	TargetWidth  int `json:"target_width"`
	TargetHeight int `json:"target_height"`

	// Selection behaviour
	MinSelectionPx    float64 `json:"min_selection_px"`
	HandleTolerancePx float64 `json:"handle_tolerance_px"`
	FitMargin         float64 `json:"fit_margin"`

	// Window
	WindowWidth  int  `json:"window_width"`
	WindowHeight int  `json:"window_height"`
	DarkMode     bool `json:"dark_mode"`
}

// DefaultConfig returns a Config populated with standard defaults.
func DefaultConfig() *Config {
	return &Config{
		Debug:                false,
		InputDir:             "input_pdfs",
		OutputDir:            "output_images",
		PopplerPath:          "",
		DPI:                  300,
		RasterTimeoutSeconds: 120,
		TargetWidth:          600,
		TargetHeight:         400,
		MinSelectionPx:       5,
		HandleTolerancePx:    10,
		FitMargin:            0.95,
		WindowWidth:          1400,
		WindowHeight:         900,
	}
}

// AspectRatio is the fixed width/height ratio of every selection.
func (c *Config) AspectRatio() float64 {
	return float64(c.TargetWidth) / float64(c.TargetHeight)
}

// Validate clamps/normalizes values to safe ranges.
func (c *Config) Validate() error {
	d := DefaultConfig()
	if strings.TrimSpace(c.InputDir) == "" {
		c.InputDir = d.InputDir
	}
	if strings.TrimSpace(c.OutputDir) == "" {
		c.OutputDir = d.OutputDir
	}
	if c.DPI < 36 || c.DPI > 1200 {
		c.DPI = d.DPI
	}
	if c.RasterTimeoutSeconds <= 0 {
		c.RasterTimeoutSeconds = d.RasterTimeoutSeconds
	}
	if c.TargetWidth <= 0 || c.TargetHeight <= 0 {
		c.TargetWidth, c.TargetHeight = d.TargetWidth, d.TargetHeight
	}
	if c.MinSelectionPx < 0 {
		c.MinSelectionPx = d.MinSelectionPx
	}
	if c.HandleTolerancePx <= 0 {
		c.HandleTolerancePx = d.HandleTolerancePx
	}
	if c.FitMargin <= 0 || c.FitMargin > 1 {
		c.FitMargin = d.FitMargin
	}
	if c.WindowWidth < 400 {
		c.WindowWidth = d.WindowWidth
	}
	if c.WindowHeight < 300 {
		c.WindowHeight = d.WindowHeight
	}
	return nil
}

// DefaultPath returns the per-user config file location, creating its
// parent directory when needed.
func DefaultPath() (string, error) {
	return xdg.ConfigFile(filepath.Join(appDirName, "config.json"))
}

// Load attempts to read configuration from the given JSON file path. If the file does not
// exist it returns DefaultConfig(). On JSON error it returns defaults with the error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	defer f.Close()
	dec := json.NewDecoder(f)
	if err := dec.Decode(cfg); err != nil {
		return DefaultConfig(), err
	}
	_ = cfg.Validate()
	return cfg, nil
}

// Save writes the configuration to the given path in JSON format.
func (c *Config) Save(path string) error {
	_ = c.Validate()
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(c)
}

// ApplyEnv loads envPath (if it exists) into the process environment without
// overriding variables already set, then applies the recognised variables.
func (c *Config) ApplyEnv(envPath string) error {
	if envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			if err := godotenv.Load(envPath); err != nil {
				return err
			}
		}
	}
	if v := strings.TrimSpace(os.Getenv(EnvInputDir)); v != "" {
		c.InputDir = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvOutputDir)); v != "" {
		c.OutputDir = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvPoppler)); v != "" {
		c.PopplerPath = v
	}
	if v := os.Getenv(EnvDPI); v != "" {
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil && n > 0 {
			c.DPI = n
		}
	}
	if v := os.Getenv(EnvDebug); v != "" {
		if b, err := strconv.ParseBool(strings.TrimSpace(v)); err == nil {
			c.Debug = b
		}
	}
	return c.Validate()
}
