// Package camera implements a free-look (fly) camera driven by
// per-frame keyboard, mouse and scroll deltas.
package camera

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Direction is a keyboard movement direction relative to the camera basis.
type Direction int

const (
	Forward Direction = iota
	Backward
	Left
	Right
	Up
	Down
)

func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	case Down:
		return "down"
	}
	return "unknown"
}

// default camera values
const (
	DefaultYaw         float32 = -90
	DefaultPitch       float32 = 0
	DefaultSpeed       float32 = 2.5
	DefaultSensitivity float32 = 0.1
	DefaultZoom        float32 = 45

	MaxPitch float32 = 89
	MinZoom  float32 = 1
	MaxZoom  float32 = 45
)

// Camera holds the viewer position and orientation. Yaw and Pitch are in
// degrees; Front, Up and Right are derived from them and always form an
// orthonormal basis.
type Camera struct {
	Position mgl32.Vec3
	Front    mgl32.Vec3
	Up       mgl32.Vec3
	Right    mgl32.Vec3
	WorldUp  mgl32.Vec3

	Yaw   float32
	Pitch float32

	MovementSpeed    float32
	MouseSensitivity float32
	Zoom             float32 // vertical field of view in degrees
}

// Option configures a Camera in New.
type Option func(*Camera)

// WithYawPitch sets the initial orientation in degrees.
func WithYawPitch(yaw, pitch float32) Option {
	return func(c *Camera) {
		c.Yaw = yaw
		c.Pitch = pitch
	}
}

// WithWorldUp sets the world vertical axis used to derive Right.
func WithWorldUp(up mgl32.Vec3) Option {
	return func(c *Camera) { c.WorldUp = up }
}

// WithSpeed sets the movement speed in units per second.
func WithSpeed(speed float32) Option {
	return func(c *Camera) { c.MovementSpeed = speed }
}

// WithSensitivity sets the degrees turned per unit of cursor movement.
func WithSensitivity(sensitivity float32) Option {
	return func(c *Camera) { c.MouseSensitivity = sensitivity }
}

// WithZoom sets the initial field of view, clamped to [MinZoom, MaxZoom].
func WithZoom(zoom float32) Option {
	return func(c *Camera) { c.Zoom = clamp(zoom, MinZoom, MaxZoom) }
}

// New returns a camera at position looking down -Z with the default tuning.
func New(position mgl32.Vec3, opts ...Option) *Camera {
	c := &Camera{
		Position:         position,
		WorldUp:          mgl32.Vec3{0, 1, 0},
		Yaw:              DefaultYaw,
		Pitch:            DefaultPitch,
		MovementSpeed:    DefaultSpeed,
		MouseSensitivity: DefaultSensitivity,
		Zoom:             DefaultZoom,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.updateVectors()
	return c
}

// ViewMatrix returns the world-to-eye transform.
func (c *Camera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Position.Add(c.Front), c.Up)
}

// Projection returns a perspective projection using Zoom as the vertical
// field of view.
func (c *Camera) Projection(aspect, near, far float32) mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.Zoom), aspect, near, far)
}

// ProcessKeyboard moves the camera along its basis by MovementSpeed*deltaTime.
func (c *Camera) ProcessKeyboard(direction Direction, deltaTime float32) {
	velocity := c.MovementSpeed * deltaTime
	switch direction {
	case Forward:
		c.Position = c.Position.Add(c.Front.Mul(velocity))
	case Backward:
		c.Position = c.Position.Sub(c.Front.Mul(velocity))
	case Left:
		c.Position = c.Position.Sub(c.Right.Mul(velocity))
	case Right:
		c.Position = c.Position.Add(c.Right.Mul(velocity))
	case Up:
		c.Position = c.Position.Add(c.Up.Mul(velocity))
	case Down:
		c.Position = c.Position.Sub(c.Up.Mul(velocity))
	}
}

// ProcessMouseMovement turns the camera by the given cursor offsets. With
// constrainPitch the pitch stays within [-89, 89] so the view never flips.
func (c *Camera) ProcessMouseMovement(xOffset, yOffset float32, constrainPitch bool) {
	c.Yaw += xOffset * c.MouseSensitivity
	c.Pitch += yOffset * c.MouseSensitivity

	if constrainPitch {
		c.Pitch = clamp(c.Pitch, -MaxPitch, MaxPitch)
	}

	c.updateVectors()
}

// ProcessMouseScroll narrows or widens the field of view. The camera does
// not move.
func (c *Camera) ProcessMouseScroll(yOffset float32) {
	c.Zoom = clamp(c.Zoom-yOffset, MinZoom, MaxZoom)
}

func (c *Camera) updateVectors() {
	yaw := mgl32.DegToRad(c.Yaw)
	pitch := mgl32.DegToRad(c.Pitch)

	front := mgl32.Vec3{
		math32.Cos(yaw) * math32.Cos(pitch),
		math32.Sin(pitch),
		math32.Sin(yaw) * math32.Cos(pitch),
	}
	c.Front = front.Normalize()
	c.Right = c.Front.Cross(c.WorldUp).Normalize()
	c.Up = c.Right.Cross(c.Front).Normalize()
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
