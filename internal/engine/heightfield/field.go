// Package heightfield evaluates the procedural water surface: a closed-form
// function mapping a horizontal position and a simulation time to an
// elevation. The mesh in internal/engine/volume samples it every frame.
package heightfield

import (
	gomath "math"

	"github.com/Faultbox/toonwave/pkg/math"
)

// Wave is a single traveling plane wave.
type Wave struct {
	Dir       math.Vec2 // propagation direction, unit length
	Amplitude float32
	Frequency float32 // angular frequency
	Speed     float32
}

// Field is a sum of traveling plane waves. The zero value is a flat surface.
type Field struct {
	Waves []Wave
}

// Default returns the two-wave field the simulator ships with.
func Default() *Field {
	return &Field{
		Waves: []Wave{
			{Dir: math.Vec2{X: 1.0, Y: 0.2}.Normalize(), Amplitude: 0.6, Frequency: 0.8, Speed: 0.3},
			{Dir: math.Vec2{X: 0.2, Y: 1.0}.Normalize(), Amplitude: 0.3, Frequency: 0.6, Speed: 0.2},
		},
	}
}

// Height returns the surface elevation at (x, z) at simulation time t.
//
// Each wave contributes A*sin(f * dot(dir, (x - s*t, z - s*t))). The time
// term is subtracted from both components before the dot product instead of
// being projected along the wave direction. That is not a physical
// propagation model, but it is the established look of the simulation, so it
// stays.
func (f *Field) Height(x, z, t float32) float32 {
	var y float32
	for _, w := range f.Waves {
		shift := w.Speed * t
		phase := w.Frequency * w.Dir.Dot(math.Vec2{X: x - shift, Y: z - shift})
		y += w.Amplitude * float32(gomath.Sin(float64(phase)))
	}
	return y
}

// Normal estimates the upward surface normal at (x, z) from the local slope,
// using central finite differences with the given sample step.
func (f *Field) Normal(x, z, t, step float32) math.Vec3 {
	dx := (f.Height(x+step, z, t) - f.Height(x-step, z, t)) / (2 * step)
	dz := (f.Height(x, z+step, t) - f.Height(x, z-step, t)) / (2 * step)
	return math.Vec3{X: -dx, Y: 1, Z: -dz}.Normalize()
}
