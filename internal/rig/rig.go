// Package rig holds the animated fan models drawn by the 3D labs. A rig is
// a tree of transform nodes plus the per-part shape and color; the labs
// map shapes to meshes and submit one draw per part.
package rig

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/paperboard/gl-labs/internal/transform"
)

// Part is one draw call.
type Part struct {
	Name  string
	Shape string
	Node  *transform.Node
	Color mgl32.Vec4
}

// Model returns the part's model matrix.
func (p Part) Model() mgl32.Mat4 { return p.Node.Matrix() }

// Spinner is an angle in degrees advanced at Speed degrees per second
// while On.
type Spinner struct {
	Angle float32
	Speed float32
	On    bool
}

// Toggle starts or stops the spinner.
func (s *Spinner) Toggle() { s.On = !s.On }

// Advance moves the angle by Speed*dt when on, keeping it in [0, 360).
func (s *Spinner) Advance(dt float32) {
	if !s.On {
		return
	}
	s.Angle = wrapDegrees(s.Angle + s.Speed*dt)
}

func wrapDegrees(a float32) float32 {
	a = math32.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	return a
}
