package capture

import (
	"errors"
	"math"
	"testing"
)

type fakeSurface struct {
	reads int
}

func (f *fakeSurface) ReadFramePixels() ([]byte, int, int) {
	f.reads++
	return make([]byte, 2*2*3), 2, 2
}

type fakeWriter struct {
	frames []int
	fail   bool
}

func (f *fakeWriter) WriteFrame(pixels []byte, width, height, seq int) (string, error) {
	f.frames = append(f.frames, seq)
	if f.fail {
		return "", errors.New("disk full")
	}
	return "frame.png", nil
}

func (f *fakeWriter) Pattern() string {
	return "frame_%04d.png"
}

type fakeEncoder struct {
	submissions int
	pattern     string
	fps         float64
}

func (f *fakeEncoder) Submit(pattern string, fps float64) error {
	f.submissions++
	f.pattern = pattern
	f.fps = fps
	return nil
}

func newTestRecorder() (*Recorder, *fakeSurface, *fakeWriter, *fakeEncoder) {
	surface := &fakeSurface{}
	writer := &fakeWriter{}
	encoder := &fakeEncoder{}
	return NewRecorder(surface, writer, encoder, 16.0), surface, writer, encoder
}

func TestStartArmsRecorder(t *testing.T) {
	r, _, _, _ := newTestRecorder()

	if r.Active() {
		t.Fatal("recorder should start inactive")
	}

	r.Start(5.0)
	if !r.Active() {
		t.Error("Start should activate the recorder")
	}
	if r.FrameCount() != 0 {
		t.Errorf("frame counter = %d after Start, want 0", r.FrameCount())
	}
}

func TestStartWhileActiveIsNoOp(t *testing.T) {
	r, _, _, _ := newTestRecorder()

	r.Start(0)
	r.Tick(0.05)
	r.Tick(0.10)

	// A second trigger must not reset the counter or the start time.
	r.Start(0.10)
	if r.FrameCount() != 2 {
		t.Errorf("frame counter = %d after redundant Start, want 2", r.FrameCount())
	}

	// Completion still measured from the original start time.
	if done := r.Tick(16.0); done == nil {
		t.Error("expected completion at 16 units from the original start")
	}
}

func TestTickWhileInactiveDoesNothing(t *testing.T) {
	r, surface, writer, encoder := newTestRecorder()

	if done := r.Tick(1.0); done != nil {
		t.Error("inactive tick returned a completion")
	}
	if surface.reads != 0 || len(writer.frames) != 0 || encoder.submissions != 0 {
		t.Error("inactive tick touched collaborators")
	}
}

func TestCaptureSequenceAndCompletion(t *testing.T) {
	r, surface, writer, encoder := newTestRecorder()

	r.Start(2.0)

	// 0.5 units per tick: 31 ticks stay below the 16-unit span, the 32nd
	// reaches it.
	now := float32(2.0)
	for i := 0; i < 31; i++ {
		now += 0.5
		if done := r.Tick(now); done != nil {
			t.Fatalf("tick %d (t=%g): premature completion", i, now)
		}
	}

	now += 0.5 // t = 18.0, elapsed = 16.0
	done := r.Tick(now)
	if done == nil {
		t.Fatal("expected completion once 16 units elapsed")
	}

	if r.Active() {
		t.Error("recorder still active after completion")
	}
	if done.Frames != 32 {
		t.Errorf("completion frames = %d, want 32", done.Frames)
	}
	wantFPS := 32.0 / 16.0
	if math.Abs(done.FPS-wantFPS) > 1e-9 {
		t.Errorf("completion fps = %g, want %g", done.FPS, wantFPS)
	}

	if surface.reads != 32 {
		t.Errorf("surface read %d times, want 32", surface.reads)
	}
	for i, seq := range writer.frames {
		if seq != i {
			t.Fatalf("frame %d written with sequence %d", i, seq)
		}
	}

	if encoder.submissions != 1 {
		t.Fatalf("encoder submissions = %d, want 1", encoder.submissions)
	}
	if encoder.pattern != "frame_%04d.png" {
		t.Errorf("encode pattern = %q", encoder.pattern)
	}
	if math.Abs(encoder.fps-wantFPS) > 1e-9 {
		t.Errorf("encode fps = %g, want %g", encoder.fps, wantFPS)
	}
}

func TestCompletionExactlyAtDuration(t *testing.T) {
	r, _, _, _ := newTestRecorder()

	r.Start(0)
	if done := r.Tick(15.999); done != nil {
		t.Error("completed before the duration elapsed")
	}
	done := r.Tick(16.0)
	if done == nil {
		t.Fatal("expected completion at exactly the duration")
	}
	if done.Frames != 2 {
		t.Errorf("frames = %d, want 2", done.Frames)
	}
}

func TestWriteFailureDoesNotStopRecording(t *testing.T) {
	surface := &fakeSurface{}
	writer := &fakeWriter{fail: true}
	encoder := &fakeEncoder{}
	r := NewRecorder(surface, writer, encoder, 16.0)

	r.Start(0)
	r.Tick(1)
	r.Tick(2)

	if !r.Active() {
		t.Error("recording aborted by a frame write failure")
	}
	if r.FrameCount() != 2 {
		t.Errorf("frame counter = %d, want 2 (failed writes still advance)", r.FrameCount())
	}
}

func TestRestartAfterCompletion(t *testing.T) {
	r, _, writer, encoder := newTestRecorder()

	r.Start(0)
	r.Tick(16.0)
	if r.Active() {
		t.Fatal("first recording should be done")
	}

	r.Start(20.0)
	if !r.Active() {
		t.Fatal("recorder should rearm after completion")
	}
	if r.FrameCount() != 0 {
		t.Errorf("frame counter = %d after rearm, want 0", r.FrameCount())
	}

	r.Tick(36.0)
	if encoder.submissions != 2 {
		t.Errorf("encoder submissions = %d, want 2", encoder.submissions)
	}
	if got := writer.frames[len(writer.frames)-1]; got != 0 {
		t.Errorf("second recording first sequence = %d, want 0", got)
	}
}
