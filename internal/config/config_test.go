package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Graphics.Width != 800 {
		t.Errorf("expected width 800, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.Height != 600 {
		t.Errorf("expected height 600, got %d", cfg.Graphics.Height)
	}
	if cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen to be false by default")
	}
	if !cfg.Graphics.VSync {
		t.Error("expected vsync to be true by default")
	}

	if cfg.Water.GridWidth != 200 || cfg.Water.GridDepth != 200 {
		t.Errorf("expected 200x200 grid, got %dx%d", cfg.Water.GridWidth, cfg.Water.GridDepth)
	}
	if cfg.Water.Width != 300.0 || cfg.Water.Depth != 200.0 {
		t.Errorf("expected 300x200 extent, got %gx%g", cfg.Water.Width, cfg.Water.Depth)
	}
	if cfg.Water.Thickness != 2.0 {
		t.Errorf("expected thickness 2, got %g", cfg.Water.Thickness)
	}
	if cfg.Water.TimeStep != 0.05 {
		t.Errorf("expected time step 0.05, got %g", cfg.Water.TimeStep)
	}

	if cfg.Recording.Duration != 16.0 {
		t.Errorf("expected recording duration 16, got %g", cfg.Recording.Duration)
	}
	if cfg.Recording.FramePrefix != "frame_" {
		t.Errorf("expected frame prefix 'frame_', got %q", cfg.Recording.FramePrefix)
	}
	if cfg.Recording.VideoOutput != "simulation.mp4" {
		t.Errorf("expected video output simulation.mp4, got %q", cfg.Recording.VideoOutput)
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate, got %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
graphics:
  width: 1280
  height: 720
  fullscreen: true
  vsync: false

water:
  grid_width: 64
  grid_depth: 48
  width: 100.0
  depth: 80.0
  thickness: 1.5
  time_step: 0.02

recording:
  output_dir: "captures"
  frame_prefix: "shot_"
  duration: 8.0
  video_output: "waves.mp4"

logging:
  level: "debug"
  log_file: "sim.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Graphics.Width != 1280 {
		t.Errorf("expected width 1280, got %d", cfg.Graphics.Width)
	}
	if !cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen to be true")
	}
	if cfg.Graphics.VSync {
		t.Error("expected vsync to be false")
	}

	if cfg.Water.GridWidth != 64 || cfg.Water.GridDepth != 48 {
		t.Errorf("expected 64x48 grid, got %dx%d", cfg.Water.GridWidth, cfg.Water.GridDepth)
	}
	if cfg.Water.Thickness != 1.5 {
		t.Errorf("expected thickness 1.5, got %g", cfg.Water.Thickness)
	}

	if cfg.Recording.OutputDir != "captures" {
		t.Errorf("expected output dir 'captures', got %q", cfg.Recording.OutputDir)
	}
	if cfg.Recording.FramePrefix != "shot_" {
		t.Errorf("expected frame prefix 'shot_', got %q", cfg.Recording.FramePrefix)
	}
	if cfg.Recording.Duration != 8.0 {
		t.Errorf("expected duration 8, got %g", cfg.Recording.Duration)
	}
	if cfg.Recording.VideoOutput != "waves.mp4" {
		t.Errorf("expected video output waves.mp4, got %q", cfg.Recording.VideoOutput)
	}

	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "sim.log" {
		t.Errorf("expected log file 'sim.log', got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `
water:
  grid_width: not a number
  invalid syntax here
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	if err := loadFromFile(cfg, "/nonexistent/path/config.yaml"); err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"grid width below 2", func(c *Config) { c.Water.GridWidth = 1 }},
		{"grid depth below 2", func(c *Config) { c.Water.GridDepth = 0 }},
		{"negative extent", func(c *Config) { c.Water.Width = -10 }},
		{"zero depth extent", func(c *Config) { c.Water.Depth = 0 }},
		{"zero thickness", func(c *Config) { c.Water.Thickness = 0 }},
		{"negative time step", func(c *Config) { c.Water.TimeStep = -0.05 }},
		{"zero duration", func(c *Config) { c.Recording.Duration = 0 }},
		{"empty video output", func(c *Config) { c.Recording.VideoOutput = "" }},
		{"zero window width", func(c *Config) { c.Graphics.Width = 0 }},
		{"negative window height", func(c *Config) { c.Graphics.Height = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}

func TestSaveTo(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "nested", "config.yaml")

	cfg := Default()
	cfg.Water.GridWidth = 123

	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("reload: %v", err)
	}
	if loaded.Water.GridWidth != 123 {
		t.Errorf("round trip lost grid width: got %d", loaded.Water.GridWidth)
	}
}
