// Package geometry generates the procedural meshes of the orbital diagram:
// flat-shaded UV spheres, ring annuli, and the unit orbit outline.
//
// Generators return plain slices with no dependency on a graphics context.
// They do not validate their arguments; configuration is checked upstream.
package geometry

import "github.com/pengfeiw/solar-system/pkg/math"

// Mesh is a triangle soup ready for GPU upload.
// Vertices and Normals hold x,y,z per vertex, TexCoords holds u,v per vertex.
// Every three vertices form one triangle, in draw order.
type Mesh struct {
	Vertices  []float32
	Normals   []float32
	TexCoords []float32
}

// VertexCount returns the number of vertices (the draw call count).
func (m Mesh) VertexCount() int {
	return len(m.Vertices) / 3
}

// Empty reports whether the mesh has no vertices.
func (m Mesh) Empty() bool {
	return len(m.Vertices) == 0
}

// WithConstantNormal returns a copy of m whose normals are all n.
func (m Mesh) WithConstantNormal(n math.Vec3) Mesh {
	count := m.VertexCount()
	normals := make([]float32, 0, count*3)
	for i := 0; i < count; i++ {
		normals = n.Append(normals)
	}
	m.Normals = normals
	return m
}

// Vertex returns vertex i as a point.
func (m Mesh) Vertex(i int) math.Vec3 {
	return math.Vec3{X: m.Vertices[i*3], Y: m.Vertices[i*3+1], Z: m.Vertices[i*3+2]}
}

// Normal returns the normal of vertex i.
func (m Mesh) Normal(i int) math.Vec3 {
	return math.Vec3{X: m.Normals[i*3], Y: m.Normals[i*3+1], Z: m.Normals[i*3+2]}
}

// ScreenQuad returns a two-triangle quad covering normalized device
// coordinates, used for the star-field backdrop.
func ScreenQuad() Mesh {
	return Mesh{
		Vertices: []float32{
			-1, 1, 0, // top-left
			-1, -1, 0, // bottom-left
			1, 1, 0, // top-right
			-1, -1, 0, // bottom-left
			1, 1, 0, // top-right
			1, -1, 0, // bottom-right
		},
		TexCoords: []float32{
			0, 1,
			0, 0,
			1, 1,
			0, 0,
			1, 1,
			1, 0,
		},
	}
}
