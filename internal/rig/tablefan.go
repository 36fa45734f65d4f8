package rig

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/paperboard/gl-labs/internal/geom"
	"github.com/paperboard/gl-labs/internal/transform"
)

// table fan shapes
const (
	ShapeStand = "stand"
	ShapeTable = "table"
	ShapeHub   = "hub"
	ShapeBlade = "blade"
)

const tableFanBlades = 4

// TableFanShapes returns the vertex-colored boxes the table fan is built
// from. The stand, table and hub are modelled in place; the blade grows
// up from the origin and is rotated about Z.
func TableFanShapes() map[string]geom.Data {
	return map[string]geom.Data{
		ShapeHub:   geom.Box(mgl32.Vec3{-0.2, -0.2, -0.2}, mgl32.Vec3{0.2, 0.2, 0.2}, mgl32.Vec3{1, 0, 0}),
		ShapeBlade: geom.Box(mgl32.Vec3{-0.1, 0, -0.05}, mgl32.Vec3{0.1, 1, 0.05}, mgl32.Vec3{0, 0.8, 0}),
		ShapeStand: geom.Box(mgl32.Vec3{-0.1, -2, -0.1}, mgl32.Vec3{0.1, 0, 0.1}, mgl32.Vec3{0.3, 0.3, 0.3}),
		ShapeTable: geom.Box(mgl32.Vec3{-1.5, -2.1, -0.75}, mgl32.Vec3{1.5, -2, 0.75}, mgl32.Vec3{0.6, 0.3, 0}),
	}
}

// TableFan is a fan on a stand whose four blades spin about the Z axis.
type TableFan struct {
	Blades Spinner

	parts  []Part
	blades [tableFanBlades]*transform.Node
}

// NewTableFan returns a stopped fan that spins at speed degrees per second.
func NewTableFan(speed float32) *TableFan {
	f := &TableFan{Blades: Spinner{Speed: speed}}

	f.parts = []Part{
		{Name: "stand", Shape: ShapeStand, Node: transform.New()},
		{Name: "table", Shape: ShapeTable, Node: transform.New()},
		{Name: "hub", Shape: ShapeHub, Node: transform.New()},
	}
	for i := range f.blades {
		f.blades[i] = transform.New()
		f.parts = append(f.parts, Part{
			Name:  fmt.Sprintf("blade%d", i),
			Shape: ShapeBlade,
			Node:  f.blades[i],
		})
	}
	f.pose()
	return f
}

// Update advances the blades by dt seconds.
func (f *TableFan) Update(dt float32) {
	f.Blades.Advance(dt)
	f.pose()
}

func (f *TableFan) pose() {
	for i, b := range f.blades {
		b.SetRotation(transform.AxisZ, f.Blades.Angle+float32(i)*90)
	}
}

// Parts returns the draw list in draw order.
func (f *TableFan) Parts() []Part { return f.parts }
