// Package mesh uploads vertex data to the GPU and issues draw calls.
package mesh

import (
	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/paperboard/gl-labs/internal/geom"
)

const (
	bytesFloat32 = 4 // a float32 is 4 bytes
	bytesUint32  = 4 // a uint32 is 4 bytes
)

// Mesh owns a vertex array with its vertex buffer and optional index
// buffer. Attribute i of the layout is bound to location i.
type Mesh struct {
	vao uint32
	vbo uint32
	ebo uint32

	count   int32
	indexed bool
}

// New uploads d. The data must already be valid; see geom.Data.Validate.
func New(d geom.Data) (*Mesh, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	m := &Mesh{count: int32(d.Count()), indexed: len(d.Indices) > 0}

	gl.GenVertexArrays(1, &m.vao)
	gl.GenBuffers(1, &m.vbo) // for vertex buffer
	gl.BindVertexArray(m.vao)

	// copy vertex data to VBO
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(d.Vertices)*bytesFloat32, gl.Ptr(d.Vertices), gl.STATIC_DRAW)

	// copy index data to EBO, recorded in the VAO
	if m.indexed {
		gl.GenBuffers(1, &m.ebo)
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(d.Indices)*bytesUint32, gl.Ptr(d.Indices), gl.STATIC_DRAW)
	}

	// interleaved attributes in layout order
	stride := int32(d.Layout.Stride() * bytesFloat32)
	for i, size := range d.Layout {
		gl.VertexAttribPointer(uint32(i), int32(size), gl.FLOAT, false, stride, gl.PtrOffset(d.Layout.Offset(i)*bytesFloat32))
		gl.EnableVertexAttribArray(uint32(i))
	}

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	return m, nil
}

// Draw submits the whole mesh with the given primitive mode, e.g.
// gl.TRIANGLES or gl.LINE_LOOP.
func (m *Mesh) Draw(mode uint32) {
	gl.BindVertexArray(m.vao)
	if m.indexed {
		gl.DrawElements(mode, m.count, gl.UNSIGNED_INT, gl.PtrOffset(0))
	} else {
		gl.DrawArrays(mode, 0, m.count)
	}
	gl.BindVertexArray(0)
}

// Delete releases the GL objects.
func (m *Mesh) Delete() {
	gl.DeleteVertexArrays(1, &m.vao)
	gl.DeleteBuffers(1, &m.vbo)
	if m.indexed {
		gl.DeleteBuffers(1, &m.ebo)
	}
}

// Set is a group of named meshes that are deleted together.
type Set map[string]*Mesh

// NewSet uploads every entry of shapes. On error the meshes uploaded so far
// are deleted.
func NewSet(shapes map[string]geom.Data) (Set, error) {
	set := make(Set, len(shapes))
	for name, d := range shapes {
		m, err := New(d)
		if err != nil {
			set.Delete()
			return nil, &ShapeError{Name: name, Err: err}
		}
		set[name] = m
	}
	return set, nil
}

// Delete releases every mesh in the set.
func (s Set) Delete() {
	for _, m := range s {
		m.Delete()
	}
}

// ShapeError reports which shape failed to upload.
type ShapeError struct {
	Name string
	Err  error
}

func (e *ShapeError) Error() string { return "mesh " + e.Name + ": " + e.Err.Error() }

func (e *ShapeError) Unwrap() error { return e.Err }
