// Package config handles simulator configuration loading and management.
package config

// Config holds all simulator settings.
type Config struct {
	Graphics  GraphicsConfig  `yaml:"graphics"`
	Water     WaterConfig     `yaml:"water"`
	Recording RecordingConfig `yaml:"recording"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// GraphicsConfig holds display settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
}

// WaterConfig holds the water volume parameters. Grid counts are vertices
// per axis; extents and thickness are world units.
type WaterConfig struct {
	GridWidth int     `yaml:"grid_width"`
	GridDepth int     `yaml:"grid_depth"`
	Width     float32 `yaml:"width"`
	Depth     float32 `yaml:"depth"`
	Thickness float32 `yaml:"thickness"`
	TimeStep  float32 `yaml:"time_step"` // simulation time advanced per frame
}

// RecordingConfig holds frame capture and encoding settings.
type RecordingConfig struct {
	OutputDir   string  `yaml:"output_dir"`
	FramePrefix string  `yaml:"frame_prefix"`
	Duration    float32 `yaml:"duration"` // simulation-time units
	VideoOutput string  `yaml:"video_output"`
	FFmpegPath  string  `yaml:"ffmpeg_path"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      800,
			Height:     600,
			Fullscreen: false,
			VSync:      true,
		},
		Water: WaterConfig{
			GridWidth: 200,
			GridDepth: 200,
			Width:     300.0,
			Depth:     200.0,
			Thickness: 2.0,
			TimeStep:  0.05,
		},
		Recording: RecordingConfig{
			OutputDir:   "",
			FramePrefix: "frame_",
			Duration:    16.0,
			VideoOutput: "simulation.mp4",
			FFmpegPath:  "",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
