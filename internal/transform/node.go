// Package transform composes per-object model matrices from a position,
// rotation and scale, optionally rotating about a pivot and inheriting a
// parent node's transform.
package transform

import "github.com/go-gl/mathgl/mgl32"

var (
	AxisX = mgl32.Vec3{1, 0, 0}
	AxisY = mgl32.Vec3{0, 1, 0}
	AxisZ = mgl32.Vec3{0, 0, 1}
)

// Node is one link in a transform hierarchy.
//
// Matrix() = Parent · T(Position) · T(Pivot) · R(Rotation) · T(-Pivot) · S(Scale)
//
// A zero Rotation and a zero Scale are treated as identity so a literal
// Node{Position: p} is a plain translation.
type Node struct {
	Position mgl32.Vec3
	Rotation mgl32.Quat
	Scale    mgl32.Vec3
	Pivot    mgl32.Vec3
	Parent   *Node
}

// New returns an identity node.
func New() *Node {
	return &Node{
		Rotation: mgl32.QuatIdent(),
		Scale:    mgl32.Vec3{1, 1, 1},
	}
}

// At sets the node position.
func (n *Node) At(x, y, z float32) *Node {
	n.Position = mgl32.Vec3{x, y, z}
	return n
}

// Scaled sets the node scale.
func (n *Node) Scaled(x, y, z float32) *Node {
	n.Scale = mgl32.Vec3{x, y, z}
	return n
}

// Around sets the pivot the rotation is applied about.
func (n *Node) Around(x, y, z float32) *Node {
	n.Pivot = mgl32.Vec3{x, y, z}
	return n
}

// Under attaches the node to parent.
func (n *Node) Under(parent *Node) *Node {
	n.Parent = parent
	return n
}

// Rotated replaces the rotation with degrees about axis.
func (n *Node) Rotated(axis mgl32.Vec3, degrees float32) *Node {
	n.SetRotation(axis, degrees)
	return n
}

// SetRotation replaces the rotation with degrees about axis.
func (n *Node) SetRotation(axis mgl32.Vec3, degrees float32) {
	n.Rotation = mgl32.QuatRotate(mgl32.DegToRad(degrees), axis.Normalize())
}

// Local returns the node's own transform, without its parent.
func (n *Node) Local() mgl32.Mat4 {
	m := mgl32.Translate3D(n.Position[0], n.Position[1], n.Position[2])

	rot := n.Rotation
	if rot == (mgl32.Quat{}) {
		rot = mgl32.QuatIdent()
	}
	if n.Pivot == (mgl32.Vec3{}) {
		m = m.Mul4(rot.Mat4())
	} else {
		m = m.Mul4(mgl32.Translate3D(n.Pivot[0], n.Pivot[1], n.Pivot[2])).
			Mul4(rot.Mat4()).
			Mul4(mgl32.Translate3D(-n.Pivot[0], -n.Pivot[1], -n.Pivot[2]))
	}

	scale := n.Scale
	if scale == (mgl32.Vec3{}) {
		scale = mgl32.Vec3{1, 1, 1}
	}
	return m.Mul4(mgl32.Scale3D(scale[0], scale[1], scale[2]))
}

// Matrix returns the model matrix, composing every ancestor.
func (n *Node) Matrix() mgl32.Mat4 {
	if n.Parent == nil {
		return n.Local()
	}
	return n.Parent.Matrix().Mul4(n.Local())
}
