package mesh

import (
	"github.com/go-gl/gl/v4.1-core/gl"
)

// Attribute locations shared with the shaders.
const (
	PositionLocation = 0
	UVLocation       = 1
)

// Mesh is an uploaded indexed triangle mesh.
type Mesh struct {
	vao        uint32
	vbo        uint32
	ebo        uint32
	indexCount int32
}

// Upload creates GPU buffers for g. Must be called on the GL thread.
func Upload(g Grid) *Mesh {
	m := &Mesh{indexCount: int32(len(g.Indices))}
	verts := g.Interleaved()
	stride := int32(vertexFloats * 4)

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(verts)*4, gl.Ptr(verts), gl.STATIC_DRAW)

	gl.VertexAttribPointerWithOffset(PositionLocation, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(PositionLocation)
	gl.VertexAttribPointerWithOffset(UVLocation, 2, gl.FLOAT, false, stride, 3*4)
	gl.EnableVertexAttribArray(UVLocation)

	gl.GenBuffers(1, &m.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(g.Indices)*4, gl.Ptr(g.Indices), gl.STATIC_DRAW)

	gl.BindVertexArray(0)
	return m
}

// Draw issues the draw call. The caller binds the program.
func (m *Mesh) Draw() {
	if m.vao == 0 {
		return
	}
	gl.BindVertexArray(m.vao)
	gl.DrawElementsWithOffset(gl.TRIANGLES, m.indexCount, gl.UNSIGNED_INT, 0)
	gl.BindVertexArray(0)
}

// Destroy releases the GPU buffers.
func (m *Mesh) Destroy() {
	if m.vao != 0 {
		gl.DeleteVertexArrays(1, &m.vao)
		m.vao = 0
	}
	if m.vbo != 0 {
		gl.DeleteBuffers(1, &m.vbo)
		m.vbo = 0
	}
	if m.ebo != 0 {
		gl.DeleteBuffers(1, &m.ebo)
		m.ebo = 0
	}
}
