package renderer

import (
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/pengfeiw/solar-system/internal/engine/geometry"
)

// Primitive selects how a MeshBuffer is drawn.
type Primitive uint32

const (
	Triangles Primitive = gl.TRIANGLES
	LineStrip Primitive = gl.LINE_STRIP
)

// floatsPerVertex is the interleaved layout: position, normal, texcoord.
const floatsPerVertex = 3 + 3 + 2

// MeshBuffer is a mesh resident on the GPU.
// A buffer built from an empty mesh owns no GL objects and draws nothing.
type MeshBuffer struct {
	vao       uint32
	vbo       uint32
	count     int32
	primitive Primitive
}

// Count returns the number of vertices drawn.
func (mb *MeshBuffer) Count() int32 {
	return mb.count
}

// Delete releases the GL objects.
func (mb *MeshBuffer) Delete() {
	if mb.vbo != 0 {
		gl.DeleteBuffers(1, &mb.vbo)
		mb.vbo = 0
	}
	if mb.vao != 0 {
		gl.DeleteVertexArrays(1, &mb.vao)
		mb.vao = 0
	}
	mb.count = 0
}

func (mb *MeshBuffer) draw() {
	if mb == nil || mb.count == 0 {
		return
	}
	gl.BindVertexArray(mb.vao)
	gl.DrawArrays(uint32(mb.primitive), 0, mb.count)
	gl.BindVertexArray(0)
}

// Upload copies m to the GPU. Vertex count is len(m.Vertices)/3.
func Upload(m geometry.Mesh, p Primitive) *MeshBuffer {
	mb := &MeshBuffer{primitive: p}
	if m.Empty() {
		return mb
	}

	vertices := interleave(m)

	gl.GenVertexArrays(1, &mb.vao)
	gl.BindVertexArray(mb.vao)

	gl.GenBuffers(1, &mb.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, mb.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, unsafe.Pointer(&vertices[0]), gl.STATIC_DRAW)

	stride := int32(floatsPerVertex * 4)
	// Position
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)
	// Normal
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, 3*4)
	gl.EnableVertexAttribArray(1)
	// TexCoord
	gl.VertexAttribPointerWithOffset(2, 2, gl.FLOAT, false, stride, 6*4)
	gl.EnableVertexAttribArray(2)

	gl.BindVertexArray(0)
	mb.count = int32(m.VertexCount())
	return mb
}

// interleave packs m into position/normal/texcoord records.
// Missing normals or texcoords are zero-filled.
func interleave(m geometry.Mesh) []float32 {
	n := m.VertexCount()
	out := make([]float32, n*floatsPerVertex)
	for i := 0; i < n; i++ {
		dst := out[i*floatsPerVertex:]
		copy(dst[0:3], m.Vertices[i*3:i*3+3])
		if len(m.Normals) >= (i+1)*3 {
			copy(dst[3:6], m.Normals[i*3:i*3+3])
		}
		if len(m.TexCoords) >= (i+1)*2 {
			copy(dst[6:8], m.TexCoords[i*2:i*2+2])
		}
	}
	return out
}
