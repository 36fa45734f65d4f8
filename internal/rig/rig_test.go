package rig

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-4

func rotate(deg float32, axis mgl32.Vec3) mgl32.Mat4 {
	return mgl32.HomogRotate3D(mgl32.DegToRad(deg), axis)
}

func findPart(t *testing.T, parts []Part, name string) Part {
	t.Helper()
	for _, p := range parts {
		if p.Name == name {
			return p
		}
	}
	require.FailNow(t, "missing part", name)
	return Part{}
}

func TestSpinner(t *testing.T) {
	s := Spinner{Speed: 90}

	s.Advance(1)
	assert.Zero(t, s.Angle, "stopped spinner does not move")

	s.Toggle()
	s.Advance(1)
	assert.InDelta(t, 90, s.Angle, tol)

	s.Advance(3.5)
	assert.InDelta(t, 45, s.Angle, tol, "wraps past 360")

	s.Speed = -90
	s.Advance(1)
	assert.InDelta(t, 315, s.Angle, tol, "wraps below 0")

	s.Toggle()
	s.Advance(10)
	assert.InDelta(t, 315, s.Angle, tol)
}

func TestSpinnerLargeStep(t *testing.T) {
	s := Spinner{Speed: 10000, On: true}
	for i := 0; i < 100; i++ {
		s.Advance(0.016)
		require.GreaterOrEqual(t, s.Angle, float32(0))
		require.Less(t, s.Angle, float32(360))
	}
}

func TestTableFanShapes(t *testing.T) {
	shapes := TableFanShapes()
	for _, p := range NewTableFan(1).Parts() {
		d, ok := shapes[p.Shape]
		require.True(t, ok, p.Shape)
		assert.NoError(t, d.Validate())
		assert.Equal(t, 36, d.Count())
	}
}

func TestTableFanBlades(t *testing.T) {
	f := NewTableFan(90)
	parts := f.Parts()
	require.Len(t, parts, 7)

	f.Blades.Toggle()
	f.Update(0.5)

	for i := 0; i < 4; i++ {
		p := parts[3+i]
		assert.Equal(t, ShapeBlade, p.Shape)
		want := rotate(45+float32(i)*90, mgl32.Vec3{0, 0, 1})
		got := p.Model()
		assert.InDeltaSlice(t, want[:], got[:], tol, p.Name)
	}

	// the stand never moves
	stand := parts[0].Model()
	id := mgl32.Ident4()
	assert.InDeltaSlice(t, id[:], stand[:], tol)
}

func TestCeilingSceneMatchesChainedTransforms(t *testing.T) {
	s := NewCeilingScene(12)
	s.Arms.Toggle()
	s.Ceiling.Toggle()
	s.Update(2.5)
	s.Move(mgl32.Vec3{0.5, -0.25, 1})

	assert.InDelta(t, 30, s.Arms.Angle, tol)
	assert.InDelta(t, 30, s.Ceiling.Angle, tol)

	fan := mgl32.Translate3D(0.5, -0.25, 1)
	armsRot := mgl32.Translate3D(0.25, 0.25, 0).
		Mul4(rotate(30, mgl32.Vec3{0, 0, 1})).
		Mul4(mgl32.Translate3D(-0.25, -0.25, 0))
	ceilingRot := mgl32.Translate3D(0.16, 1.85, 3.05).
		Mul4(rotate(30, mgl32.Vec3{0, 1, 0})).
		Mul4(mgl32.Translate3D(-0.16, -1.85, -3.05))

	tests := map[string]mgl32.Mat4{
		"arms hub": fan.Mul4(armsRot),
		"right arm": fan.Mul4(armsRot).
			Mul4(mgl32.Translate3D(0.25, 0.1, 0.1)).
			Mul4(mgl32.Scale3D(2.5, 0.6, 0.6)),
		"table": fan.
			Mul4(mgl32.Translate3D(-0.7, -1.6, -1)).
			Mul4(mgl32.Scale3D(4, 0.2, 3)),
		"rod": fan.
			Mul4(mgl32.Translate3D(0.12, 2, 3)).
			Mul4(mgl32.Scale3D(0.2, 0.6, 0.2)),
		"front blade": fan.Mul4(ceilingRot).
			Mul4(mgl32.Translate3D(0.32, 1.7, 2.9)).
			Mul4(rotate(-90, mgl32.Vec3{0, 1, 0})).
			Mul4(mgl32.Scale3D(2.5, 0.2, 0.6)),
	}
	for name, want := range tests {
		t.Run(name, func(t *testing.T) {
			got := findPart(t, s.Parts(), name).Model()
			assert.InDeltaSlice(t, want[:], got[:], tol)
		})
	}
}

func TestCeilingSceneColorsAndShapes(t *testing.T) {
	s := NewCeilingScene(12)
	require.Len(t, s.Parts(), 14)
	for _, p := range s.Parts() {
		assert.Equal(t, ShapeCube, p.Shape)
		assert.Equal(t, float32(1), p.Color[3], p.Name)
	}
	assert.Equal(t, white, findPart(t, s.Parts(), "motor").Color)
}

func TestCeilingSceneMoveAccumulates(t *testing.T) {
	s := NewCeilingScene(12)
	s.Move(mgl32.Vec3{1, 0, 0})
	s.Move(mgl32.Vec3{0, 0, -2})
	assert.Equal(t, mgl32.Vec3{1, 0, -2}, s.Offset())
}
