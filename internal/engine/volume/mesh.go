// Package volume builds and animates the water volume mesh: an animated top
// surface, a bottom surface offset by the water thickness, and four side
// walls closing the gap, forming a watertight solid.
package volume

import (
	"fmt"

	"github.com/Faultbox/toonwave/internal/engine/heightfield"
	"github.com/Faultbox/toonwave/pkg/math"
)

// Vertex is an interleaved position+normal vertex, 24 bytes, matching the
// GPU attribute layout (location 0 = position, location 1 = normal).
type Vertex struct {
	Position [3]float32
	Normal   [3]float32
}

// VertexStride is the byte size of one Vertex.
const VertexStride = 6 * 4

// Mesh is the water volume. Topology (index buffer, x/z coordinates) is
// fixed at construction; UpdateWaves rewrites only elevations and normals
// in place. Vertices are laid out as two contiguous blocks: top surface in
// [0, W*D), bottom surface in [W*D, 2*W*D). The side walls reference the
// edge vertices of those blocks, so they follow the surfaces automatically.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32

	gridW, gridD int
	width, depth float32
	thickness    float32

	topStart    int
	bottomStart int

	field *heightfield.Field
}

// New validates the grid configuration and builds the mesh topology at rest
// (flat surface, t has not been applied yet).
func New(gridW, gridD int, width, depth, thickness float32, field *heightfield.Field) (*Mesh, error) {
	if gridW < 2 || gridD < 2 {
		return nil, fmt.Errorf("grid resolution %dx%d: both dimensions must be at least 2", gridW, gridD)
	}
	if width <= 0 || depth <= 0 {
		return nil, fmt.Errorf("extent %gx%g: width and depth must be positive", width, depth)
	}
	if thickness <= 0 {
		return nil, fmt.Errorf("thickness %g: must be positive", thickness)
	}
	if field == nil {
		field = heightfield.Default()
	}

	m := &Mesh{
		gridW:     gridW,
		gridD:     gridD,
		width:     width,
		depth:     depth,
		thickness: thickness,
		field:     field,
	}
	m.build()
	return m, nil
}

// build creates the vertex blocks and the index buffer. Called once.
func (m *Mesh) build() {
	m.topStart = 0
	m.bottomStart = m.gridW * m.gridD
	m.Vertices = make([]Vertex, 2*m.gridW*m.gridD)

	// Top surface on a uniform grid centered on the origin.
	for z := 0; z < m.gridD; z++ {
		for x := 0; x < m.gridW; x++ {
			fx := float32(x) / float32(m.gridW-1)
			fz := float32(z) / float32(m.gridD-1)
			m.Vertices[m.topStart+x+z*m.gridW] = Vertex{
				Position: [3]float32{fx*m.width - 0.5*m.width, 0, fz*m.depth - 0.5*m.depth},
				Normal:   [3]float32{0, 1, 0},
			}
		}
	}

	// Bottom surface: same x/z, offset down by the thickness.
	for i := 0; i < m.gridW*m.gridD; i++ {
		top := m.Vertices[m.topStart+i]
		m.Vertices[m.bottomStart+i] = Vertex{
			Position: [3]float32{top.Position[0], -m.thickness, top.Position[2]},
			Normal:   [3]float32{0, -1, 0},
		}
	}

	// Top surface triangles, wound for upward-facing normals.
	for z := 0; z < m.gridD-1; z++ {
		for x := 0; x < m.gridW-1; x++ {
			i0 := uint32(m.topStart + x + z*m.gridW)
			i1 := uint32(m.topStart + (x + 1) + z*m.gridW)
			i2 := uint32(m.topStart + x + (z+1)*m.gridW)
			i3 := uint32(m.topStart + (x + 1) + (z+1)*m.gridW)
			m.Indices = append(m.Indices, i0, i1, i2, i1, i3, i2)
		}
	}

	// Bottom surface triangles, reversed winding so they face down.
	for z := 0; z < m.gridD-1; z++ {
		for x := 0; x < m.gridW-1; x++ {
			i0 := uint32(m.bottomStart + x + z*m.gridW)
			i1 := uint32(m.bottomStart + (x + 1) + z*m.gridW)
			i2 := uint32(m.bottomStart + x + (z+1)*m.gridW)
			i3 := uint32(m.bottomStart + (x + 1) + (z+1)*m.gridW)
			m.Indices = append(m.Indices, i0, i2, i1, i1, i2, i3)
		}
	}

	// Side wall quads join corresponding top/bottom edge vertices. The two
	// variants wind in opposite directions so every wall faces outward.
	quad := func(topA, topB, bottomA, bottomB uint32) {
		m.Indices = append(m.Indices, topA, topB, bottomA, topB, bottomB, bottomA)
	}
	quadFlipped := func(topA, topB, bottomA, bottomB uint32) {
		m.Indices = append(m.Indices, topB, topA, bottomB, topA, bottomA, bottomB)
	}

	// Left wall (x = 0) and right wall (x = gridW-1).
	for z := 0; z < m.gridD-1; z++ {
		topA := uint32(m.topStart + z*m.gridW)
		topB := uint32(m.topStart + (z+1)*m.gridW)
		quad(topA, topB, topA+uint32(m.bottomStart), topB+uint32(m.bottomStart))

		topA = uint32(m.topStart + (m.gridW - 1) + z*m.gridW)
		topB = uint32(m.topStart + (m.gridW - 1) + (z+1)*m.gridW)
		quadFlipped(topA, topB, topA+uint32(m.bottomStart), topB+uint32(m.bottomStart))
	}

	// Front wall (z = 0) and back wall (z = gridD-1).
	for x := 0; x < m.gridW-1; x++ {
		topA := uint32(m.topStart + x)
		topB := uint32(m.topStart + x + 1)
		quadFlipped(topA, topB, topA+uint32(m.bottomStart), topB+uint32(m.bottomStart))

		topA = uint32(m.topStart + x + (m.gridD-1)*m.gridW)
		topB = uint32(m.topStart + x + 1 + (m.gridD-1)*m.gridW)
		quad(topA, topB, topA+uint32(m.bottomStart), topB+uint32(m.bottomStart))
	}
}

// UpdateWaves recomputes every vertex elevation and normal for simulation
// time t. Full O(W*D) pass, no incremental update.
func (m *Mesh) UpdateWaves(t float32) {
	// Top surface elevation from the height field.
	for i := 0; i < m.gridW*m.gridD; i++ {
		v := &m.Vertices[m.topStart+i]
		v.Position[1] = m.field.Height(v.Position[0], v.Position[2], t)
	}

	// Bottom surface trails the top by the constant thickness.
	for i := 0; i < m.gridW*m.gridD; i++ {
		m.Vertices[m.bottomStart+i].Position[1] = m.Vertices[m.topStart+i].Position[1] - m.thickness
	}

	// Normals from central finite differences over grid neighbors. The
	// border ring is skipped, so border vertices keep whatever normal they
	// last had.
	m.surfaceNormals(m.topStart, false)
	m.surfaceNormals(m.bottomStart, true)
}

// surfaceNormals recomputes interior normals for one vertex block. A bottom
// surface gets its slopes mirrored so the normal points down and outward.
func (m *Mesh) surfaceNormals(start int, bottom bool) {
	for z := 1; z < m.gridD-1; z++ {
		for x := 1; x < m.gridW-1; x++ {
			idx := start + x + z*m.gridW
			dx := (m.Vertices[idx+1].Position[1] - m.Vertices[idx-1].Position[1]) * 0.5
			dz := (m.Vertices[idx+m.gridW].Position[1] - m.Vertices[idx-m.gridW].Position[1]) * 0.5

			var n math.Vec3
			if bottom {
				n = math.Vec3{X: dx, Y: -1, Z: dz}.Normalize()
			} else {
				n = math.Vec3{X: -dx, Y: 1, Z: -dz}.Normalize()
			}
			m.Vertices[idx].Normal = [3]float32{n.X, n.Y, n.Z}
		}
	}
}

// GridSize returns the grid resolution (width count, depth count).
func (m *Mesh) GridSize() (int, int) {
	return m.gridW, m.gridD
}

// Thickness returns the vertical distance between the surfaces at rest.
func (m *Mesh) Thickness() float32 {
	return m.thickness
}

// VertexBytes returns the byte size of the full vertex buffer.
func (m *Mesh) VertexBytes() int {
	return len(m.Vertices) * VertexStride
}

// IndexBytes returns the byte size of the index buffer.
func (m *Mesh) IndexBytes() int {
	return len(m.Indices) * 4
}
