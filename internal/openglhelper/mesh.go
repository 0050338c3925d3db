package openglhelper

import (
	"fmt"

	"github.com/go-gl/gl/v4.6-core/gl"

	"github.com/leterax/go-lights/pkg/scene"
)

// VertexLayout lists the float count of each interleaved vertex attribute,
// in attribute location order.
type VertexLayout []int32

// Common layouts
var (
	LayoutPosition = VertexLayout{3}
	LayoutLit      = VertexLayout{3, 3, 2, 3} // position, normal, uv, tangent
)

// Stride returns the number of floats per vertex.
func (l VertexLayout) Stride() int {
	stride := 0
	for _, size := range l {
		stride += int(size)
	}
	return stride
}

// Mesh is a vertex array with its buffers. Meshes without indices are
// drawn as plain triangle lists.
type Mesh struct {
	vao   *VertexArrayObject
	vbo   *BufferObject
	ebo   *BufferObject
	count int32
}

// NewMesh uploads vertices laid out as layout, plus optional indices.
func NewMesh(vertices []float32, layout VertexLayout, indices []uint32) (*Mesh, error) {
	stride := layout.Stride()
	if stride == 0 || len(vertices) == 0 || len(vertices)%stride != 0 {
		return nil, fmt.Errorf("mesh: %d floats do not fit a stride of %d", len(vertices), stride)
	}

	vao := NewVAO()
	vao.Bind()

	vbo := NewVBO(vertices)

	var ebo *BufferObject
	count := int32(len(vertices) / stride)
	if len(indices) > 0 {
		ebo = NewEBO(indices)
		count = int32(len(indices))
	}

	offset := 0
	for i, size := range layout {
		vao.SetVertexAttribPointer(uint32(i), size, gl.FLOAT, false, int32(stride*float32Size), offset*float32Size)
		offset += int(size)
	}

	vao.Unbind()

	return &Mesh{vao: vao, vbo: vbo, ebo: ebo, count: count}, nil
}

// Draw renders the mesh with whatever program is bound.
func (m *Mesh) Draw(_ scene.Program) {
	m.vao.Bind()
	if m.ebo != nil {
		gl.DrawElements(gl.TRIANGLES, m.count, gl.UNSIGNED_INT, nil)
	} else {
		gl.DrawArrays(gl.TRIANGLES, 0, m.count)
	}
	m.vao.Unbind()
}

// Delete releases all resources
func (m *Mesh) Delete() {
	m.vao.Delete()
	m.vbo.Delete()
	if m.ebo != nil {
		m.ebo.Delete()
	}
}
