// Package capture persists rendered frames as a numbered PNG sequence and
// drives the recording state machine that hands the sequence to an external
// video encoder.
package capture

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
)

// Sink writes raw framebuffer readbacks as sequentially numbered PNG stills.
// The input buffer is bottom-up RGB (OpenGL readback convention); the file
// on disk is top-down.
type Sink struct {
	outputDir string
	prefix    string
}

// NewSink creates a frame sink writing prefix<seq>.png files under outputDir.
func NewSink(outputDir, prefix string) *Sink {
	return &Sink{
		outputDir: outputDir,
		prefix:    prefix,
	}
}

// Filename returns the artifact name for a sequence number, zero-padded to
// four digits so lexicographic and numeric order agree.
func (s *Sink) Filename(seq int) string {
	name := fmt.Sprintf("%s%04d.png", s.prefix, seq)
	if s.outputDir != "" {
		name = filepath.Join(s.outputDir, name)
	}
	return name
}

// Pattern returns the printf-style filename pattern consumed by the encoder.
func (s *Sink) Pattern() string {
	name := s.prefix + "%04d.png"
	if s.outputDir != "" {
		name = filepath.Join(s.outputDir, name)
	}
	return name
}

// WriteFrame flips a bottom-up RGB buffer (3 bytes per pixel, tightly
// packed) into top-down row order and writes it as a PNG still. Returns the
// path of the written file.
func (s *Sink) WriteFrame(pixels []byte, width, height, seq int) (string, error) {
	if len(pixels) != width*height*3 {
		return "", fmt.Errorf("pixel data size mismatch: expected %d, got %d", width*height*3, len(pixels))
	}

	if s.outputDir != "" {
		if err := os.MkdirAll(s.outputDir, 0755); err != nil {
			return "", fmt.Errorf("creating output dir: %w", err)
		}
	}

	// Flip vertically during copy: readback row 0 is the bottom of the
	// image, PNG row 0 is the top.
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	rowSize := width * 3
	for y := 0; y < height; y++ {
		src := pixels[(height-1-y)*rowSize : (height-y)*rowSize]
		dst := img.Pix[y*img.Stride:]
		for x := 0; x < width; x++ {
			dst[x*4+0] = src[x*3+0]
			dst[x*4+1] = src[x*3+1]
			dst[x*4+2] = src[x*3+2]
			dst[x*4+3] = 0xff
		}
	}

	filename := s.Filename(seq)
	file, err := os.Create(filename)
	if err != nil {
		return "", fmt.Errorf("creating file: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return "", fmt.Errorf("encoding PNG: %w", err)
	}

	return filename, nil
}

// FrameWriter is the sink interface the recorder depends on.
type FrameWriter interface {
	WriteFrame(pixels []byte, width, height, seq int) (string, error)
	Pattern() string
}
