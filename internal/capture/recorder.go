package capture

import (
	"log/slog"
)

// Surface is the render-surface collaborator: it hands back the most
// recently drawn frame as a bottom-up RGB buffer with its dimensions.
type Surface interface {
	ReadFramePixels() (pixels []byte, width, height int)
}

// Encoder turns a finished frame sequence into a video. Submission is
// fire-and-forget; the recorder never waits on the result.
type Encoder interface {
	Submit(pattern string, fps float64) error
}

// Completion summarizes a finished recording.
type Completion struct {
	Frames int
	FPS    float64
}

// Recorder is a two-state machine gating frame capture. It starts inactive;
// Start arms it, and it disarms itself once the configured span of
// simulation time has elapsed, submitting the encode job on the way out.
type Recorder struct {
	surface  Surface
	writer   FrameWriter
	encoder  Encoder
	duration float32

	active     bool
	startTime  float32
	frameCount int
}

// NewRecorder wires a recorder to its collaborators. duration is in
// simulation-time units, not wall clock.
func NewRecorder(surface Surface, writer FrameWriter, encoder Encoder, duration float32) *Recorder {
	return &Recorder{
		surface:  surface,
		writer:   writer,
		encoder:  encoder,
		duration: duration,
	}
}

// Active reports whether a recording is in progress.
func (r *Recorder) Active() bool {
	return r.active
}

// FrameCount returns the number of frames captured so far in the current
// (or most recent) recording.
func (r *Recorder) FrameCount() int {
	return r.frameCount
}

// Start arms the recorder at the given simulation time. Starting while a
// recording is already in progress is a no-op.
func (r *Recorder) Start(now float32) {
	if r.active {
		return
	}
	r.active = true
	r.startTime = now
	r.frameCount = 0
	slog.Info("recording started", "duration", r.duration)
}

// Tick captures one frame if a recording is active, then checks whether the
// recording span has elapsed. On completion it returns the summary and
// submits the encode job; otherwise it returns nil. Tick while inactive
// does nothing.
func (r *Recorder) Tick(now float32) *Completion {
	if !r.active {
		return nil
	}

	pixels, width, height := r.surface.ReadFramePixels()
	if _, err := r.writer.WriteFrame(pixels, width, height, r.frameCount); err != nil {
		// A dropped frame leaves a hole in the sequence but should not
		// kill the recording.
		slog.Warn("frame write failed", "frame", r.frameCount, "error", err)
	}
	r.frameCount++

	if now-r.startTime < r.duration {
		return nil
	}

	r.active = false
	done := &Completion{
		Frames: r.frameCount,
		FPS:    float64(r.frameCount) / float64(r.duration),
	}
	slog.Info("recording finished", "frames", done.Frames, "fps", done.FPS)

	if err := r.encoder.Submit(r.writer.Pattern(), done.FPS); err != nil {
		// Encode failures are tolerated: the stills stay on disk.
		slog.Warn("encode submission failed", "error", err)
	}
	return done
}
