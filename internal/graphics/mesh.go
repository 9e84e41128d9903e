package graphics

import (
	"gl-demos/internal/geometry"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Attribute locations shared by the lit shaders
const (
	AttribPosition = 0
	AttribColor    = 1
	AttribNormal   = 2
)

// IndexedMesh is a VAO with separate position/color/normal buffers and an
// 8-bit element buffer, drawn as a triangle list.
type IndexedMesh struct {
	vao        uint32
	buffers    [3]uint32
	ebo        uint32
	indexCount int32
}

// NewBoxMesh uploads a box once; every draw reuses the same buffers
func NewBoxMesh(b *geometry.Box) *IndexedMesh {
	m := &IndexedMesh{indexCount: int32(len(b.Indices))}

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(3, &m.buffers[0])
	uploadAttribute(m.buffers[0], AttribPosition, b.Positions)
	uploadAttribute(m.buffers[1], AttribColor, b.Colors)
	uploadAttribute(m.buffers[2], AttribNormal, b.Normals)

	gl.GenBuffers(1, &m.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(b.Indices), gl.Ptr(b.Indices), gl.STATIC_DRAW)

	// The element buffer binding is VAO state; unbind the VAO first
	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, 0)
	return m
}

func uploadAttribute(vbo uint32, location uint32, data []float32) {
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(location)
	gl.VertexAttribPointerWithOffset(location, 3, gl.FLOAT, false, 0, 0)
}

// Draw issues one indexed triangle draw
func (m *IndexedMesh) Draw() {
	gl.BindVertexArray(m.vao)
	gl.DrawElements(gl.TRIANGLES, m.indexCount, gl.UNSIGNED_BYTE, nil)
	gl.BindVertexArray(0)
}

// Dispose releases the GL objects
func (m *IndexedMesh) Dispose() {
	if m.vao == 0 {
		return
	}
	gl.DeleteVertexArrays(1, &m.vao)
	gl.DeleteBuffers(3, &m.buffers[0])
	gl.DeleteBuffers(1, &m.ebo)
	m.vao = 0
}

// CreateInterleavedVAO uploads interleaved float vertices and describes each
// attribute by its component count, in location order. It returns the vertex count.
func CreateInterleavedVAO(vao, vbo *uint32, vertices []float32, components ...int32) int32 {
	var stride int32
	for _, c := range components {
		stride += c
	}

	gl.GenVertexArrays(1, vao)
	gl.GenBuffers(1, vbo)

	gl.BindVertexArray(*vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, *vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)

	var offset int32
	for i, c := range components {
		gl.EnableVertexAttribArray(uint32(i))
		gl.VertexAttribPointerWithOffset(uint32(i), c, gl.FLOAT, false, stride*4, uintptr(offset*4))
		offset += c
	}

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	return int32(len(vertices)) / stride
}
