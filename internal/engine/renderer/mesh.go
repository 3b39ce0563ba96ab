package renderer

import (
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/terraview/internal/engine/terrain"
)

const (
	vertexStride = int32(unsafe.Sizeof(terrain.Vertex{}))
	normalOffset = uintptr(unsafe.Offsetof(terrain.Vertex{}.Normal))
)

// gpuMesh is a terrain mesh resident on the GPU.
type gpuMesh struct {
	vao, vbo, ebo uint32
	indexCount    int32
	generation    uint64
}

func newGPUMesh() *gpuMesh {
	m := &gpuMesh{}
	gl.GenVertexArrays(1, &m.vao)
	gl.GenBuffers(1, &m.vbo)
	gl.GenBuffers(1, &m.ebo)

	gl.BindVertexArray(m.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)

	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, vertexStride, 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, vertexStride, normalOffset)
	gl.EnableVertexAttribArray(1)

	gl.BindVertexArray(0)
	return m
}

// upload replaces the buffer contents with mesh.
func (m *gpuMesh) upload(mesh *terrain.Mesh, generation uint64) {
	m.generation = generation
	m.indexCount = int32(len(mesh.Indices))
	if len(mesh.Vertices) == 0 || len(mesh.Indices) == 0 {
		m.indexCount = 0
		return
	}

	verts := mesh.Interleave()

	gl.BindVertexArray(m.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(verts)*int(vertexStride), unsafe.Pointer(&verts[0]), gl.STATIC_DRAW)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(mesh.Indices)*4, unsafe.Pointer(&mesh.Indices[0]), gl.STATIC_DRAW)
	gl.BindVertexArray(0)
}

func (m *gpuMesh) draw() {
	if m.indexCount == 0 {
		return
	}
	gl.BindVertexArray(m.vao)
	gl.DrawElementsWithOffset(gl.TRIANGLES, m.indexCount, gl.UNSIGNED_INT, 0)
	gl.BindVertexArray(0)
}

func (m *gpuMesh) destroy() {
	if m.vao != 0 {
		gl.DeleteVertexArrays(1, &m.vao)
	}
	if m.vbo != 0 {
		gl.DeleteBuffers(1, &m.vbo)
	}
	if m.ebo != 0 {
		gl.DeleteBuffers(1, &m.ebo)
	}
	*m = gpuMesh{}
}

// lineBatch holds position-only GL_LINES geometry.
type lineBatch struct {
	vao, vbo    uint32
	vertexCount int32
}

func newLineBatch() *lineBatch {
	l := &lineBatch{}
	gl.GenVertexArrays(1, &l.vao)
	gl.GenBuffers(1, &l.vbo)

	gl.BindVertexArray(l.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, l.vbo)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 3*4, 0)
	gl.EnableVertexAttribArray(0)
	gl.BindVertexArray(0)
	return l
}

func (l *lineBatch) upload(vertices []float32) {
	l.vertexCount = int32(len(vertices) / 3)
	if l.vertexCount == 0 {
		return
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, l.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, unsafe.Pointer(&vertices[0]), gl.DYNAMIC_DRAW)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
}

func (l *lineBatch) draw() {
	if l.vertexCount == 0 {
		return
	}
	gl.BindVertexArray(l.vao)
	gl.DrawArrays(gl.LINES, 0, l.vertexCount)
	gl.BindVertexArray(0)
}

func (l *lineBatch) destroy() {
	if l.vao != 0 {
		gl.DeleteVertexArrays(1, &l.vao)
	}
	if l.vbo != 0 {
		gl.DeleteBuffers(1, &l.vbo)
	}
	*l = lineBatch{}
}
