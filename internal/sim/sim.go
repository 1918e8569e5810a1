// Package sim implements the main simulation loop: time advancement, mesh
// update, GPU upload, draw and frame capture, all on one thread.
package sim

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/Faultbox/toonwave/internal/capture"
	"github.com/Faultbox/toonwave/internal/config"
	"github.com/Faultbox/toonwave/internal/engine/heightfield"
	"github.com/Faultbox/toonwave/internal/engine/input"
	"github.com/Faultbox/toonwave/internal/engine/renderer"
	"github.com/Faultbox/toonwave/internal/engine/volume"
	"github.com/Faultbox/toonwave/internal/engine/window"
)

// Sim is the simulator instance.
type Sim struct {
	cfg     *config.Config
	running bool

	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input

	mesh     *volume.Mesh
	recorder *capture.Recorder

	simTime  float32
	timeStep float32
}

// New creates a simulator instance. Window and GL context creation, shader
// compilation and mesh construction all happen here, so any backend or
// configuration failure surfaces before the loop starts.
func New(cfg *config.Config) (*Sim, error) {
	slog.Info("initializing simulator",
		"grid", fmt.Sprintf("%dx%d", cfg.Water.GridWidth, cfg.Water.GridDepth),
		"extent", fmt.Sprintf("%gx%g", cfg.Water.Width, cfg.Water.Depth),
	)

	s := &Sim{
		cfg:      cfg,
		timeStep: cfg.Water.TimeStep,
	}

	mesh, err := volume.New(
		cfg.Water.GridWidth, cfg.Water.GridDepth,
		cfg.Water.Width, cfg.Water.Depth, cfg.Water.Thickness,
		heightfield.Default(),
	)
	if err != nil {
		return nil, fmt.Errorf("building water volume: %w", err)
	}
	s.mesh = mesh

	s.window, err = window.New(window.Config{
		Title:      "toonwave",
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Renderer needs the GL context the window created.
	s.renderer, err = renderer.New(renderer.Config{
		Width:  cfg.Graphics.Width,
		Height: cfg.Graphics.Height,
	}, s.mesh)
	if err != nil {
		s.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	s.input = input.New()

	sink := capture.NewSink(cfg.Recording.OutputDir, cfg.Recording.FramePrefix)
	encoder := &capture.FFmpeg{
		Binary: cfg.Recording.FFmpegPath,
		Output: cfg.Recording.VideoOutput,
	}
	s.recorder = capture.NewRecorder(s.renderer, sink, encoder, cfg.Recording.Duration)

	slog.Info("simulator initialized")
	return s, nil
}

// Run starts the main loop. Each iteration strictly serializes
// update -> upload -> draw -> capture -> swap, since the upload reads the
// buffer the update just wrote and the capture reads the frame just drawn.
func (s *Sim) Run() error {
	s.running = true

	frameCount := 0
	fpsTimer := time.Now()

	slog.Info("starting simulation loop")

	for s.running {
		if s.input.Update() {
			s.running = false
			break
		}

		for _, event := range s.input.Events() {
			switch event.Type {
			case input.EventQuit:
				s.running = false
			case input.EventStartRecording:
				s.recorder.Start(s.simTime)
			case input.EventWindowResize:
				s.renderer.Resize(event.Width, event.Height)
			}
		}

		s.simTime += s.timeStep

		s.mesh.UpdateWaves(s.simTime)
		s.renderer.UploadVertices()
		s.renderer.Draw()

		// Capture reads the back buffer, so it must run after the draw
		// and before the swap.
		s.recorder.Tick(s.simTime)

		s.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			slog.Debug("fps", "count", frameCount, "sim_time", s.simTime)
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

// Close cleans up simulator resources.
func (s *Sim) Close() {
	slog.Info("closing simulator")

	if s.renderer != nil {
		s.renderer.Close()
	}
	if s.window != nil {
		s.window.Close()
	}
}
