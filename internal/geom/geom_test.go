package geom

import (
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLayout(t *testing.T) {
	assert.Equal(t, 6, LayoutPos3Color.Stride())
	assert.Equal(t, 0, LayoutPos3Color.Offset(0))
	assert.Equal(t, 3, LayoutPos3Color.Offset(1))
	assert.Equal(t, 2, LayoutPos2.Stride())
	assert.Equal(t, 0, Layout{}.Stride())
}

func TestBox(t *testing.T) {
	d := Box(mgl32.Vec3{-0.2, -0.2, -0.2}, mgl32.Vec3{0.2, 0.2, 0.2}, mgl32.Vec3{1, 0, 0})
	require.NoError(t, d.Validate())

	assert.Equal(t, 8, d.VertexCount())
	assert.Equal(t, 36, d.Count())

	// first vertex is the front bottom-left corner
	assert.Equal(t, []float32{-0.2, -0.2, 0.2, 1, 0, 0}, d.Vertices[:6])
	// last vertex is the back top-left corner
	assert.Equal(t, []float32{-0.2, 0.2, -0.2, 1, 0, 0}, d.Vertices[42:])
}

func TestBoxIndicesAreCopied(t *testing.T) {
	a := Box(mgl32.Vec3{}, mgl32.Vec3{1, 1, 1}, mgl32.Vec3{})
	a.Indices[0] = 7
	b := Box(mgl32.Vec3{}, mgl32.Vec3{1, 1, 1}, mgl32.Vec3{})
	assert.Equal(t, uint32(0), b.Indices[0])
}

func TestCube(t *testing.T) {
	d := Cube(0.5, DefaultFaceColors)
	require.NoError(t, d.Validate())

	assert.Equal(t, 24, d.VertexCount())
	assert.Equal(t, 36, d.Count())
	assert.Equal(t, []uint32{0, 3, 2, 2, 1, 0, 4, 5, 7, 7, 6, 4}, d.Indices[:12])
	assert.Equal(t, []uint32{20, 21, 22, 22, 23, 20}, d.Indices[30:])

	// every coordinate lies on the cube
	for i := 0; i < len(d.Vertices); i += 6 {
		for _, v := range d.Vertices[i : i+3] {
			assert.True(t, v == 0 || v == 0.5, "vertex %d coordinate %v", i/6, v)
		}
	}
	// right face is green
	assert.Equal(t, []float32{0, 1, 0}, d.Vertices[4*6+3:4*6+6])
}

func TestPositionsDropsColor(t *testing.T) {
	c := Cube(0.5, DefaultFaceColors)
	d := c.Positions()
	require.NoError(t, d.Validate())

	assert.Equal(t, LayoutPos3, d.Layout)
	assert.Equal(t, c.VertexCount(), d.VertexCount())
	assert.Equal(t, c.Indices, d.Indices)
	for v := 0; v < d.VertexCount(); v++ {
		assert.Equal(t, c.Vertices[v*6:v*6+3], d.Vertices[v*3:v*3+3], "vertex %d", v)
	}

	// indices are copied
	d.Indices[0] = 9
	assert.Equal(t, uint32(0), c.Indices[0])
}

func TestRectAndTriangle(t *testing.T) {
	r := Rect(-0.4, 0.2, 0.4, -0.5, 0, mgl32.Vec3{1, 1, 1})
	require.NoError(t, r.Validate())
	assert.Equal(t, 4, r.Count())
	assert.Equal(t, []float32{0.4, -0.5, 0}, r.Vertices[12:15])

	tri := Triangle(mgl32.Vec3{0, 0.6, 0}, mgl32.Vec3{-0.4, 0.2, 0}, mgl32.Vec3{0.4, 0.2, 0}, mgl32.Vec3{1, 0, 0})
	require.NoError(t, tri.Validate())
	assert.Equal(t, 3, tri.Count())
}

func TestValidate(t *testing.T) {
	assert.Error(t, Data{Vertices: []float32{1}}.Validate())
	assert.Error(t, Data{Vertices: []float32{1, 2, 3}, Layout: LayoutPos2}.Validate())
	assert.Error(t, Data{Vertices: []float32{1, 2}, Indices: []uint32{1}, Layout: LayoutPos2}.Validate())
	assert.NoError(t, Data{Vertices: []float32{1, 2}, Indices: []uint32{0}, Layout: LayoutPos2}.Validate())
}

func TestReadPoints2D(t *testing.T) {
	src := `# outline
-0.87246 0.56064

-0.85541   0.57323
`
	d, err := ReadPoints2D(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, 2, d.Count())
	assert.Equal(t, []float32{-0.87246, 0.56064, -0.85541, 0.57323}, d.Vertices)

	_, err = ReadPoints2D(strings.NewReader("1 2 3\n"))
	assert.Error(t, err)

	_, err = ReadPoints2D(strings.NewReader("1 x\n"))
	assert.Error(t, err)
}
