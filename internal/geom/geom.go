// Package geom builds interleaved vertex data for the lab scenes.
//
// Vertex data is a flat float32 slice; Layout gives the number of
// components of each attribute, in attribute-location order.
package geom

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

// common layouts
var (
	LayoutPos2      = Layout{2}    // x,y
	LayoutPos3      = Layout{3}    // x,y,z
	LayoutPos3Color = Layout{3, 3} // x,y,z r,g,b
)

// Layout lists attribute sizes in floats.
type Layout []int

// Stride returns the floats per vertex.
func (l Layout) Stride() int {
	n := 0
	for _, c := range l {
		n += c
	}
	return n
}

// Offset returns the float offset of attribute i within a vertex.
func (l Layout) Offset(i int) int {
	n := 0
	for _, c := range l[:i] {
		n += c
	}
	return n
}

// Data is CPU-side vertex and optional index data.
type Data struct {
	Vertices []float32
	Indices  []uint32
	Layout   Layout
}

// VertexCount returns the number of whole vertices.
func (d Data) VertexCount() int {
	stride := d.Layout.Stride()
	if stride == 0 {
		return 0
	}
	return len(d.Vertices) / stride
}

// Count returns the number of elements a draw call submits: the index
// count when indexed, otherwise the vertex count.
func (d Data) Count() int {
	if len(d.Indices) > 0 {
		return len(d.Indices)
	}
	return d.VertexCount()
}

// Validate checks the data is a whole number of vertices and every index
// refers to one of them.
func (d Data) Validate() error {
	stride := d.Layout.Stride()
	if stride == 0 {
		return fmt.Errorf("empty vertex layout")
	}
	if len(d.Vertices)%stride != 0 {
		return fmt.Errorf("%d floats is not a multiple of stride %d", len(d.Vertices), stride)
	}
	n := uint32(d.VertexCount())
	for i, idx := range d.Indices {
		if idx >= n {
			return fmt.Errorf("index %d at %d out of range for %d vertices", idx, i, n)
		}
	}
	return nil
}

// Positions returns a copy of d keeping only the first attribute, for
// shaders that take their color from a uniform.
func (d Data) Positions() Data {
	if len(d.Layout) == 0 {
		return d
	}
	stride, n := d.Layout.Stride(), d.Layout[0]
	out := Data{
		Vertices: make([]float32, 0, d.VertexCount()*n),
		Layout:   Layout{n},
	}
	for i := 0; i+stride <= len(d.Vertices); i += stride {
		out.Vertices = append(out.Vertices, d.Vertices[i:i+n]...)
	}
	if len(d.Indices) > 0 {
		out.Indices = append([]uint32(nil), d.Indices...)
	}
	return out
}

// boxIndices winds the 8 corners of a box (front face first, then back
// face, each counter-clockwise from bottom-left) into 12 triangles.
var boxIndices = []uint32{
	0, 1, 2, 2, 3, 0, // front
	1, 5, 6, 6, 2, 1, // right
	5, 4, 7, 7, 6, 5, // back
	4, 0, 3, 3, 7, 4, // left
	3, 2, 6, 6, 7, 3, // top
	4, 5, 1, 1, 0, 4, // bottom
}

// Box returns an indexed, single-colored box spanning min to max.
func Box(min, max, color mgl32.Vec3) Data {
	corners := [8]mgl32.Vec3{
		{min[0], min[1], max[2]},
		{max[0], min[1], max[2]},
		{max[0], max[1], max[2]},
		{min[0], max[1], max[2]},
		{min[0], min[1], min[2]},
		{max[0], min[1], min[2]},
		{max[0], max[1], min[2]},
		{min[0], max[1], min[2]},
	}
	vertices := make([]float32, 0, len(corners)*6)
	for _, c := range corners {
		vertices = append(vertices, c[0], c[1], c[2], color[0], color[1], color[2])
	}
	return Data{
		Vertices: vertices,
		Indices:  append([]uint32(nil), boxIndices...),
		Layout:   LayoutPos3Color,
	}
}

// Face colors of Cube, in face order.
type FaceColors [6]mgl32.Vec3

// DefaultFaceColors are red, green, blue, yellow, cyan and magenta.
var DefaultFaceColors = FaceColors{
	{1, 0, 0},
	{0, 1, 0},
	{0, 0, 1},
	{1, 1, 0},
	{0, 1, 1},
	{1, 0, 1},
}

// Cube returns a cube from the origin to (size, size, size) with four
// vertices per face so each face carries its own color. Faces are back
// (z=0), right (x=size), front (z=size), left (x=0), top (y=size) and
// bottom (y=0).
func Cube(size float32, colors FaceColors) Data {
	s := size
	faces := [6][4]mgl32.Vec3{
		{{0, 0, 0}, {s, 0, 0}, {s, s, 0}, {0, s, 0}},
		{{s, 0, 0}, {s, s, 0}, {s, 0, s}, {s, s, s}},
		{{0, 0, s}, {s, 0, s}, {s, s, s}, {0, s, s}},
		{{0, 0, s}, {0, s, s}, {0, s, 0}, {0, 0, 0}},
		{{s, s, s}, {s, s, 0}, {0, s, 0}, {0, s, s}},
		{{0, 0, 0}, {s, 0, 0}, {s, 0, s}, {0, 0, s}},
	}
	// per-face winding; the right face lists its corners in zig-zag order
	winding := [6][6]uint32{
		{0, 3, 2, 2, 1, 0},
		{0, 1, 3, 3, 2, 0},
		{0, 1, 2, 2, 3, 0},
		{0, 1, 2, 2, 3, 0},
		{0, 1, 2, 2, 3, 0},
		{0, 1, 2, 2, 3, 0},
	}

	d := Data{Layout: LayoutPos3Color}
	for f, corners := range faces {
		base := uint32(len(d.Vertices) / 6)
		c := colors[f]
		for _, p := range corners {
			d.Vertices = append(d.Vertices, p[0], p[1], p[2], c[0], c[1], c[2])
		}
		for _, i := range winding[f] {
			d.Indices = append(d.Indices, base+i)
		}
	}
	return d
}

// Rect returns a 4-vertex rectangle at depth z for a triangle fan, listed
// top-left, top-right, bottom-right, bottom-left.
func Rect(left, top, right, bottom, z float32, color mgl32.Vec3) Data {
	r, g, b := color[0], color[1], color[2]
	return Data{
		Vertices: []float32{
			left, top, z, r, g, b,
			right, top, z, r, g, b,
			right, bottom, z, r, g, b,
			left, bottom, z, r, g, b,
		},
		Layout: LayoutPos3Color,
	}
}

// Triangle returns a single flat-colored triangle.
func Triangle(a, b, c, color mgl32.Vec3) Data {
	d := Data{Layout: LayoutPos3Color}
	for _, p := range [3]mgl32.Vec3{a, b, c} {
		d.Vertices = append(d.Vertices, p[0], p[1], p[2], color[0], color[1], color[2])
	}
	return d
}

// ReadPoints2D reads whitespace separated "x y" pairs, one per line.
// Blank lines and lines starting with '#' are skipped.
func ReadPoints2D(r io.Reader) (Data, error) {
	d := Data{Layout: LayoutPos2}
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Fields(text)
		if len(fields) != 2 {
			return Data{}, fmt.Errorf("line %d: want 2 coordinates, got %d", line, len(fields))
		}
		for _, f := range fields {
			v, err := strconv.ParseFloat(f, 32)
			if err != nil {
				return Data{}, fmt.Errorf("line %d: %w", line, err)
			}
			d.Vertices = append(d.Vertices, float32(v))
		}
	}
	if err := sc.Err(); err != nil {
		return Data{}, err
	}
	return d, nil
}
