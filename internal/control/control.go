// Package control advances per-frame state: frame timing and the mapping
// from polled input to camera movement.
package control

import (
	"github.com/paperboard/gl-labs/internal/camera"
	"github.com/paperboard/gl-labs/internal/input"
)

// Clock measures the time between frames from a monotonic seconds counter.
type Clock struct {
	last    float64
	started bool
}

// Tick records now and returns the seconds elapsed since the previous tick.
// The first tick returns 0.
func (c *Clock) Tick(now float64) float32 {
	if !c.started {
		c.started = true
		c.last = now
		return 0
	}
	dt := now - c.last
	c.last = now
	return float32(dt)
}

// CameraBindings maps keys to camera movement.
type CameraBindings struct {
	Forward  input.Key
	Backward input.Key
	Left     input.Key
	Right    input.Key
	Up       input.Key
	Down     input.Key
}

// Keys lists every bound key, for input.Poller.Watch.
func (b CameraBindings) Keys() []input.Key {
	return []input.Key{b.Forward, b.Backward, b.Left, b.Right, b.Up, b.Down}
}

// ApplyCamera moves and turns cam from one frame of input. Movement is
// scaled by dt, mouse look keeps the pitch constrained and scrolling zooms.
func ApplyCamera(cam *camera.Camera, f input.Frame, b CameraBindings, dt float32) {
	moves := []struct {
		key input.Key
		dir camera.Direction
	}{
		{b.Forward, camera.Forward},
		{b.Backward, camera.Backward},
		{b.Left, camera.Left},
		{b.Right, camera.Right},
		{b.Up, camera.Up},
		{b.Down, camera.Down},
	}
	for _, m := range moves {
		if f.Held(m.key) {
			cam.ProcessKeyboard(m.dir, dt)
		}
	}

	if f.CursorDX != 0 || f.CursorDY != 0 {
		cam.ProcessMouseMovement(f.CursorDX, f.CursorDY, true)
	}
	// one zoom step per event so the clamp applies between events
	for _, e := range f.Events {
		if e.Kind == input.Scroll {
			cam.ProcessMouseScroll(float32(e.Y))
		}
	}
}

// Axis returns +1, -1 or 0 depending on which of two opposing keys is held.
func Axis(f input.Frame, positive, negative input.Key) float32 {
	var v float32
	if f.Held(positive) {
		v++
	}
	if f.Held(negative) {
		v--
	}
	return v
}
