package transform

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

const tol = 1e-5

func rotate(deg float32, axis mgl32.Vec3) mgl32.Mat4 {
	return mgl32.HomogRotate3D(mgl32.DegToRad(deg), axis)
}

func TestZeroNodeIsIdentity(t *testing.T) {
	var n Node
	m := n.Matrix()
	id := mgl32.Ident4()
	assert.InDeltaSlice(t, id[:], m[:], tol)

	m = New().Matrix()
	assert.InDeltaSlice(t, id[:], m[:], tol)
}

func TestTranslateRotateScale(t *testing.T) {
	n := New().At(0, -0.05, 0).Rotated(AxisZ, 35).Scaled(1.1, 0.3, 1)

	want := mgl32.Translate3D(0, -0.05, 0).
		Mul4(rotate(35, AxisZ)).
		Mul4(mgl32.Scale3D(1.1, 0.3, 1))
	got := n.Matrix()
	assert.InDeltaSlice(t, want[:], got[:], tol)
}

func TestRotationAboutPivot(t *testing.T) {
	n := New().Around(0.25, 0.25, 0).Rotated(AxisZ, 90)

	// the pivot itself does not move
	p := n.Matrix().Mul4x1(mgl32.Vec4{0.25, 0.25, 0, 1})
	assert.InDeltaSlice(t, []float32{0.25, 0.25, 0, 1}, p[:], tol)

	// a point right of the pivot swings above it
	q := n.Matrix().Mul4x1(mgl32.Vec4{0.75, 0.25, 0, 1})
	assert.InDeltaSlice(t, []float32{0.25, 0.75, 0, 1}, q[:], tol)
}

func TestParentChainMatchesHandWrittenProduct(t *testing.T) {
	fan := New().At(0.3, -0.2, 1.5)
	hub := New().Under(fan).Around(0.16, 1.85, 3.05).Rotated(AxisY, 42)
	blade := New().Under(hub).At(0.32, 1.7, 2.9).Rotated(AxisY, -90).Scaled(2.5, 0.2, 0.6)

	want := mgl32.Translate3D(0.3, -0.2, 1.5).
		Mul4(mgl32.Translate3D(0.16, 1.85, 3.05)).
		Mul4(rotate(42, AxisY)).
		Mul4(mgl32.Translate3D(-0.16, -1.85, -3.05)).
		Mul4(mgl32.Translate3D(0.32, 1.7, 2.9)).
		Mul4(rotate(-90, AxisY)).
		Mul4(mgl32.Scale3D(2.5, 0.2, 0.6))
	got := blade.Matrix()
	assert.InDeltaSlice(t, want[:], got[:], tol)
}

func TestLocalIgnoresParent(t *testing.T) {
	parent := New().At(10, 0, 0)
	child := New().Under(parent).At(1, 2, 3)

	local := child.Local()
	want := mgl32.Translate3D(1, 2, 3)
	assert.InDeltaSlice(t, want[:], local[:], tol)

	world := child.Matrix()
	want = mgl32.Translate3D(11, 2, 3)
	assert.InDeltaSlice(t, want[:], world[:], tol)
}

func TestSetRotationNormalizesAxis(t *testing.T) {
	a := New()
	a.SetRotation(mgl32.Vec3{0, 0, 5}, 30)
	b := New().Rotated(AxisZ, 30)

	ma, mb := a.Matrix(), b.Matrix()
	assert.InDeltaSlice(t, mb[:], ma[:], tol)
}
