package capture

import (
	"fmt"
	"log/slog"
	"os/exec"
)

// FFmpeg submits encode jobs to an external ffmpeg binary. The invocation
// is fire-and-forget: the process is started, its exit status is logged by
// a reaping goroutine and otherwise ignored.
type FFmpeg struct {
	// Binary is the ffmpeg executable, "ffmpeg" if empty.
	Binary string
	// Output is the video filename to produce.
	Output string
}

// Submit starts the encode of a numbered image sequence at the given frame
// rate. Returns an error only if the process cannot be started; a failing
// encode leaves the stills on disk and is reported at debug level.
func (e *FFmpeg) Submit(pattern string, fps float64) error {
	binary := e.Binary
	if binary == "" {
		binary = "ffmpeg"
	}

	cmd := exec.Command(binary,
		"-y",
		"-framerate", fmt.Sprintf("%.2f", fps),
		"-i", pattern,
		"-c:v", "libx264",
		"-pix_fmt", "yuv420p",
		e.Output,
	)

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("starting %s: %w", binary, err)
	}
	slog.Info("encode job submitted", "output", e.Output, "fps", fps)

	// Reap the process so it does not linger as a zombie. The status is
	// logged but never acted on.
	go func() {
		if err := cmd.Wait(); err != nil {
			slog.Debug("encoder exited with error", "error", err)
			return
		}
		slog.Debug("encoder finished", "output", e.Output)
	}()

	return nil
}
