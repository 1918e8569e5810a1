// Package renderer draws the water volume with a quantized toon lighting
// model and owns all GPU-resident buffers.
package renderer

import (
	"fmt"
	"unsafe"

	"go.uber.org/zap"

	"github.com/Faultbox/toonwave/internal/engine/shader"
	"github.com/Faultbox/toonwave/internal/engine/volume"
	"github.com/Faultbox/toonwave/internal/logger"
	"github.com/Faultbox/toonwave/pkg/math"
	"github.com/go-gl/gl/v3.3-core/gl"
)

// Config holds renderer configuration.
type Config struct {
	Width  int
	Height int
}

// Renderer handles all OpenGL rendering for the water volume.
type Renderer struct {
	config Config
	aspect float32

	program uint32

	// Uniform locations
	locModel      int32
	locView       int32
	locProj       int32
	locCamPos     int32
	locLightPos   int32
	locSteps      int32
	locDarkColor  int32
	locLightColor int32

	vao uint32
	vbo uint32
	ebo uint32

	mesh *volume.Mesh

	// Fixed scene constants
	cameraPos  math.Vec3
	lightPos   math.Vec3
	toonSteps  int32
	darkColor  math.Vec3
	lightColor math.Vec3
}

// New creates a renderer for the given mesh and uploads its initial
// geometry. Must be called after the OpenGL context exists. The index
// buffer is uploaded here once and never touched again; only vertex data is
// re-uploaded per frame.
func New(cfg Config, mesh *volume.Mesh) (*Renderer, error) {
	r := &Renderer{
		config:     cfg,
		aspect:     float32(cfg.Width) / float32(cfg.Height),
		mesh:       mesh,
		cameraPos:  math.Vec3{X: 0, Y: 50, Z: 100},
		lightPos:   math.Vec3{X: 80, Y: 80, Z: 80},
		toonSteps:  3,
		darkColor:  math.Vec3{X: 0, Y: 0, Z: 0.5},
		lightColor: math.Vec3{X: 0.3, Y: 0.6, Z: 1.0},
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	version := gl.GoStr(gl.GetString(gl.VERSION))
	rendererName := gl.GoStr(gl.GetString(gl.RENDERER))
	logger.Info("OpenGL initialized",
		zap.String("version", version),
		zap.String("renderer", rendererName),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.ClearColor(0.3, 0.5, 1.0, 1.0)
	gl.Viewport(0, 0, int32(cfg.Width), int32(cfg.Height))

	var err error
	r.program, err = shader.CompileProgram(toonVertexShader, toonFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("toon shader: %w", err)
	}

	r.locModel = shader.GetUniform(r.program, "uModel")
	r.locView = shader.GetUniform(r.program, "uView")
	r.locProj = shader.GetUniform(r.program, "uProj")
	r.locCamPos = shader.GetUniform(r.program, "uCamPos")
	r.locLightPos = shader.GetUniform(r.program, "uLightPos")
	r.locSteps = shader.GetUniform(r.program, "uSteps")
	r.locDarkColor = shader.GetUniform(r.program, "uDarkColor")
	r.locLightColor = shader.GetUniform(r.program, "uLightColor")

	r.createBuffers()

	return r, nil
}

// createBuffers sets up the VAO, the dynamic vertex buffer and the static
// index buffer for the mesh.
func (r *Renderer) createBuffers() {
	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	// Vertex data changes every frame.
	gl.BufferData(gl.ARRAY_BUFFER, r.mesh.VertexBytes(), unsafe.Pointer(&r.mesh.Vertices[0]), gl.DYNAMIC_DRAW)

	// location 0: position, location 1: normal (interleaved, 24-byte stride)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, volume.VertexStride, 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, volume.VertexStride, 3*4)
	gl.EnableVertexAttribArray(1)

	gl.GenBuffers(1, &r.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)
	// Topology never changes after construction.
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, r.mesh.IndexBytes(), unsafe.Pointer(&r.mesh.Indices[0]), gl.STATIC_DRAW)

	gl.BindVertexArray(0)
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	logger.Info("closing renderer")
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
	}
	if r.ebo != 0 {
		gl.DeleteBuffers(1, &r.ebo)
	}
	if r.program != 0 {
		gl.DeleteProgram(r.program)
	}
}

// Resize handles window resize. A zero height is ignored.
func (r *Renderer) Resize(width, height int) {
	if height == 0 {
		return
	}
	r.config.Width = width
	r.config.Height = height
	r.aspect = float32(width) / float32(height)
	gl.Viewport(0, 0, int32(width), int32(height))
}

// UploadVertices copies the full current vertex buffer into GPU storage.
// Called every frame after the mesh update, before Draw.
func (r *Renderer) UploadVertices() {
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, r.mesh.VertexBytes(), unsafe.Pointer(&r.mesh.Vertices[0]))
}

// Draw clears the frame and renders the water volume with the toon shader.
func (r *Renderer) Draw() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	gl.UseProgram(r.program)

	model := math.Identity()
	view := math.LookAt(r.cameraPos, math.Vec3{}, math.Vec3{X: 0, Y: 1, Z: 0})
	proj := math.Perspective(math.Radians(45), r.aspect, 0.1, 500)

	gl.UniformMatrix4fv(r.locModel, 1, false, &model[0])
	gl.UniformMatrix4fv(r.locView, 1, false, &view[0])
	gl.UniformMatrix4fv(r.locProj, 1, false, &proj[0])

	gl.Uniform3f(r.locCamPos, r.cameraPos.X, r.cameraPos.Y, r.cameraPos.Z)
	gl.Uniform3f(r.locLightPos, r.lightPos.X, r.lightPos.Y, r.lightPos.Z)
	gl.Uniform1i(r.locSteps, r.toonSteps)
	gl.Uniform3f(r.locDarkColor, r.darkColor.X, r.darkColor.Y, r.darkColor.Z)
	gl.Uniform3f(r.locLightColor, r.lightColor.X, r.lightColor.Y, r.lightColor.Z)

	gl.BindVertexArray(r.vao)
	gl.DrawElements(gl.TRIANGLES, int32(len(r.mesh.Indices)), gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
}

// ReadFramePixels reads back the current framebuffer as a tightly packed
// bottom-up RGB buffer. Only called while a recording is active.
func (r *Renderer) ReadFramePixels() ([]byte, int, int) {
	width, height := r.config.Width, r.config.Height
	pixels := make([]byte, width*height*3)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGB, gl.UNSIGNED_BYTE, unsafe.Pointer(&pixels[0]))
	return pixels, width, height
}
