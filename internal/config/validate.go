package config

import "fmt"

// Validate checks the configuration for values that would produce degenerate
// geometry or an unusable window. Called once at startup so bad settings are
// rejected before any GL state exists.
func (c *Config) Validate() error {
	if c.Graphics.Width <= 0 || c.Graphics.Height <= 0 {
		return fmt.Errorf("graphics: window size %dx%d must be positive", c.Graphics.Width, c.Graphics.Height)
	}
	if c.Water.GridWidth < 2 || c.Water.GridDepth < 2 {
		return fmt.Errorf("water: grid resolution %dx%d must be at least 2x2", c.Water.GridWidth, c.Water.GridDepth)
	}
	if c.Water.Width <= 0 || c.Water.Depth <= 0 {
		return fmt.Errorf("water: extent %gx%g must be positive", c.Water.Width, c.Water.Depth)
	}
	if c.Water.Thickness <= 0 {
		return fmt.Errorf("water: thickness %g must be positive", c.Water.Thickness)
	}
	if c.Water.TimeStep <= 0 {
		return fmt.Errorf("water: time step %g must be positive", c.Water.TimeStep)
	}
	if c.Recording.Duration <= 0 {
		return fmt.Errorf("recording: duration %g must be positive", c.Recording.Duration)
	}
	if c.Recording.VideoOutput == "" {
		return fmt.Errorf("recording: video output name must not be empty")
	}
	return nil
}
