// Package input polls SDL2 events and adapts them to the handful of
// abstract events the simulator reacts to. Nothing above this package sees
// SDL types.
package input

import (
	"github.com/veandco/go-sdl2/sdl"
)

// EventType identifies a simulator-level input event.
type EventType int

const (
	EventNone EventType = iota
	// EventQuit requests process termination (window close or Escape).
	EventQuit
	// EventStartRecording arms the frame recorder (S key). A no-op if a
	// recording is already running; the recorder enforces that.
	EventStartRecording
	// EventWindowResize carries the new drawable size.
	EventWindowResize
)

// Event represents a processed input event.
type Event struct {
	Type   EventType
	Width  int
	Height int
}

// Input handles all input processing.
type Input struct {
	events []Event
}

// New creates a new input handler.
func New() *Input {
	return &Input{
		events: make([]Event, 0, 16),
	}
}

// Update polls SDL events and converts them to simulator events.
// Returns true if the simulator should quit.
func (i *Input) Update() bool {
	i.events = i.events[:0] // Clear previous events

	quit := false
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			i.events = append(i.events, Event{Type: EventQuit})
			quit = true

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_RESIZED {
				i.events = append(i.events, Event{
					Type:   EventWindowResize,
					Width:  int(e.Data1),
					Height: int(e.Data2),
				})
			}

		case *sdl.KeyboardEvent:
			if e.Type != sdl.KEYDOWN || e.Repeat != 0 {
				continue
			}
			switch e.Keysym.Scancode {
			case sdl.SCANCODE_ESCAPE:
				i.events = append(i.events, Event{Type: EventQuit})
				quit = true
			case sdl.SCANCODE_S:
				i.events = append(i.events, Event{Type: EventStartRecording})
			}
		}
	}

	return quit
}

// Events returns the events from the last Update.
func (i *Input) Events() []Event {
	return i.events
}
