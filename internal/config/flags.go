package config

import "flag"

var (
	flagConfig     = flag.String("config", "", "Path to config file")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging")
	flagWidth      = flag.Int("width", 0, "Window width")
	flagHeight     = flag.Int("height", 0, "Window height")
	flagFullscreen = flag.Bool("fullscreen", false, "Run in fullscreen mode")
	flagGrid       = flag.Int("grid", 0, "Water grid resolution (both axes)")
	flagOutputDir  = flag.String("output-dir", "", "Directory for captured frames")
	flagVideo      = flag.String("video", "", "Encoded video filename")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagWidth > 0 {
		cfg.Graphics.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Graphics.Height = *flagHeight
	}
	if *flagFullscreen {
		cfg.Graphics.Fullscreen = true
	}
	if *flagGrid > 0 {
		cfg.Water.GridWidth = *flagGrid
		cfg.Water.GridDepth = *flagGrid
	}
	if *flagOutputDir != "" {
		cfg.Recording.OutputDir = *flagOutputDir
	}
	if *flagVideo != "" {
		cfg.Recording.VideoOutput = *flagVideo
	}
}
