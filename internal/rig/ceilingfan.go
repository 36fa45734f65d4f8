package rig

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/paperboard/gl-labs/internal/transform"
)

// ShapeCube is the 0.5 unit cube every part of the ceiling fan scene is
// scaled from.
const ShapeCube = "cube"

var (
	gray      = mgl32.Vec4{0.4, 0.4, 0.4, 1}
	steel     = mgl32.Vec4{0.7, 0.8, 0.9, 1}
	wood      = mgl32.Vec4{0.9, 0.8, 0.7, 1}
	black     = mgl32.Vec4{0, 0, 0, 1}
	white     = mgl32.Vec4{1, 1, 1, 1}
	armsPivot = mgl32.Vec3{0.25, 0.25, 0}
	fanPivot  = mgl32.Vec3{0.16, 1.85, 3.05}
)

// CeilingScene is a table fan with four arms spinning about Z and a
// ceiling fan spinning about Y, mounted on a common root that can be moved
// around the scene.
type CeilingScene struct {
	Arms    Spinner
	Ceiling Spinner

	root    *transform.Node
	arms    *transform.Node
	ceiling *transform.Node
	parts   []Part
}

// NewCeilingScene returns the scene with both fans stopped. Both spin at
// speed degrees per second once toggled on.
func NewCeilingScene(speed float32) *CeilingScene {
	s := &CeilingScene{
		Arms:    Spinner{Speed: speed},
		Ceiling: Spinner{Speed: speed},
		root:    transform.New(),
	}
	s.arms = transform.New().Under(s.root).Around(armsPivot[0], armsPivot[1], armsPivot[2])
	s.ceiling = transform.New().Under(s.root).Around(fanPivot[0], fanPivot[1], fanPivot[2])

	part := func(name string, parent *transform.Node, color mgl32.Vec4) *transform.Node {
		n := transform.New().Under(parent)
		s.parts = append(s.parts, Part{Name: name, Shape: ShapeCube, Node: n, Color: color})
		return n
	}

	// table fan
	part("arms hub", s.arms, gray)
	part("right arm", s.arms, steel).At(0.25, 0.1, 0.1).Scaled(2.5, 0.6, 0.6)
	part("left arm", s.arms, steel).At(-1, 0.1, 0.1).Scaled(2.5, 0.6, 0.6)
	part("upper arm", s.arms, steel).At(0.12, 0.25, 0.1).Scaled(0.6, 2.5, 0.6)
	part("lower arm", s.arms, steel).At(0.12, -1, 0.1).Scaled(0.6, 2.5, 0.6)

	// stand and table
	part("pole", s.root, gray).At(0.2, -1.6, -0.4).Scaled(0.3, 4, 0.3)
	part("neck", s.root, gray).At(0.2, 0.2, -0.4).Scaled(0.3, 0.3, 1)
	part("table", s.root, wood).At(-0.7, -1.6, -1).Scaled(4, 0.2, 3)

	// ceiling fan
	part("rod", s.root, black).At(0.12, 2, 3).Scaled(0.2, 0.6, 0.2)
	part("motor", s.ceiling, white).At(-0.09, 1.6, 2.8).Scaled(1, 0.6, 1)
	part("left blade", s.ceiling, black).At(-1, 1.7, 2.9).Scaled(2.5, 0.2, 0.6)
	part("right blade", s.ceiling, black).At(0.1, 1.7, 2.9).Scaled(2.5, 0.2, 0.6)
	part("back blade", s.ceiling, black).At(0, 1.7, 2.9).Rotated(transform.AxisY, 90).Scaled(2, 0.2, 0.6)
	part("front blade", s.ceiling, black).At(0.32, 1.7, 2.9).Rotated(transform.AxisY, -90).Scaled(2.5, 0.2, 0.6)

	return s
}

// Move translates the whole scene by delta.
func (s *CeilingScene) Move(delta mgl32.Vec3) {
	s.root.Position = s.root.Position.Add(delta)
}

// Offset returns the accumulated translation.
func (s *CeilingScene) Offset() mgl32.Vec3 { return s.root.Position }

// Update advances both fans by dt seconds.
func (s *CeilingScene) Update(dt float32) {
	s.Arms.Advance(dt)
	s.Ceiling.Advance(dt)
	s.arms.SetRotation(transform.AxisZ, s.Arms.Angle)
	s.ceiling.SetRotation(transform.AxisY, s.Ceiling.Angle)
}

// Parts returns the draw list in draw order.
func (s *CeilingScene) Parts() []Part { return s.parts }
