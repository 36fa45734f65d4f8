// Package app opens the lab window and runs the frame loop:
//
//	read input -> advance state by the frame time -> draw -> present
//
// Run must be called from the main goroutine with the OS thread locked
// (runtime.LockOSThread in the program's init).
package app

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/paperboard/gl-labs/internal/camera"
	"github.com/paperboard/gl-labs/internal/config"
	"github.com/paperboard/gl-labs/internal/control"
	"github.com/paperboard/gl-labs/internal/input"
	"github.com/paperboard/gl-labs/internal/shader"
)

// Scene is one lab's content.
type Scene interface {
	// Load uploads geometry and compiles shaders. It runs once, after the
	// GL context is current.
	Load(s *State) error
	// Update advances the scene by s.DeltaTime.
	Update(s *State, f input.Frame)
	Draw(s *State)
	Delete()
}

// State is the application state owned by the frame loop and handed to the
// scene every frame.
type State struct {
	Config config.Config
	Camera *camera.Camera

	Time      float64 // seconds since the window library started
	DeltaTime float32 // seconds since the previous frame

	// framebuffer size in pixels
	Width  int
	Height int

	window *glfw.Window
}

// Aspect returns the framebuffer aspect ratio.
func (s *State) Aspect() float32 {
	if s.Height == 0 {
		return s.Config.Window.Aspect()
	}
	return float32(s.Width) / float32(s.Height)
}

// Projection returns the camera perspective for the current framebuffer.
func (s *State) Projection() mgl32.Mat4 {
	return s.Camera.Projection(s.Aspect(), s.Config.Camera.Near, s.Config.Camera.Far)
}

// Close asks the loop to stop after the current frame.
func (s *State) Close() {
	if s.window != nil {
		s.window.SetShouldClose(true)
	}
}

// NewState builds the state for cfg, including its camera.
func NewState(cfg config.Config) *State {
	cc := cfg.Camera
	return &State{
		Config: cfg,
		Camera: camera.New(mgl32.Vec3(cc.Position),
			camera.WithYawPitch(cc.Yaw, cc.Pitch),
			camera.WithSpeed(cc.Speed),
			camera.WithSensitivity(cc.Sensitivity),
			camera.WithZoom(cc.Zoom),
		),
		Width:  cfg.Window.Width,
		Height: cfg.Window.Height,
	}
}

// KeyEscape closes every lab.
var KeyEscape = input.Key(glfw.KeyEscape)

// DefaultCameraBindings are WASD plus E/R for up/down.
var DefaultCameraBindings = control.CameraBindings{
	Forward:  input.Key(glfw.KeyW),
	Backward: input.Key(glfw.KeyS),
	Left:     input.Key(glfw.KeyA),
	Right:    input.Key(glfw.KeyD),
	Up:       input.Key(glfw.KeyE),
	Down:     input.Key(glfw.KeyR),
}

type options struct {
	camera   bool
	bindings control.CameraBindings
	keys     []input.Key
}

// Option configures Run.
type Option func(*options)

// WithCamera enables keyboard movement, mouse look and scroll zoom.
func WithCamera(b control.CameraBindings) Option {
	return func(o *options) {
		o.camera = true
		o.bindings = b
	}
}

// WithKeys adds keys the scene reads from input.Frame.
func WithKeys(keys ...input.Key) Option {
	return func(o *options) { o.keys = append(o.keys, keys...) }
}

type windowSource struct {
	w *glfw.Window
}

func (s windowSource) KeyDown(k input.Key) bool {
	return s.w.GetKey(glfw.Key(k)) == glfw.Press
}

func (s windowSource) CursorPos() (x, y float64) {
	return s.w.GetCursorPos()
}

func glfwBool(b bool) int {
	if b {
		return glfw.True
	}
	return glfw.False
}

// Run opens the window described by cfg and drives scene until the window
// is closed. Window and GL initialization failures are returned.
func Run(cfg config.Config, scene Scene, opts ...Option) error {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	// initialize glfw
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("failed to initialize glfw: %w", err)
	}
	defer glfw.Terminate()

	// use OpenGL v3.3 core
	glfw.WindowHint(glfw.Resizable, glfwBool(cfg.Window.Resizable))
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	// create window handle
	window, err := glfw.CreateWindow(cfg.Window.Width, cfg.Window.Height, cfg.Window.Title, nil, nil)
	if err != nil {
		return fmt.Errorf("failed to create window: %w", err)
	}
	defer window.Destroy()
	window.MakeContextCurrent()

	// initialize OpenGL
	if err := gl.Init(); err != nil {
		return fmt.Errorf("failed to initialize OpenGL: %w", err)
	}
	slog.Info("context ready", "title", cfg.Window.Title, "gl", gl.GoStr(gl.GetString(gl.VERSION)))

	// callbacks only queue; the frame loop drains them
	poller := input.NewPoller(KeyEscape)
	poller.Watch(o.keys...)
	window.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		poller.PushResize(width, height)
	})
	window.SetScrollCallback(func(_ *glfw.Window, xoff, yoff float64) {
		poller.PushScroll(xoff, yoff)
	})
	if o.camera {
		poller.Watch(o.bindings.Keys()...)
		poller.TrackCursor = true
		if cfg.Window.CaptureCursor {
			window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
		}
	}

	state := NewState(cfg)
	state.window = window
	state.Width, state.Height = window.GetFramebufferSize()
	gl.Viewport(0, 0, int32(state.Width), int32(state.Height))

	if cfg.Scene.Wireframe {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	}

	if err := loadScene(scene, state); err != nil {
		return err
	}
	defer scene.Delete()

	src := windowSource{w: window}
	var clock control.Clock

	// run gameloop
	for !window.ShouldClose() {

		// per-frame time
		state.Time = glfw.GetTime()
		state.DeltaTime = clock.Tick(state.Time)

		// input
		frame := poller.Poll(src)
		state.apply(frame, o)

		// simulation
		scene.Update(state, frame)

		// draw into buffer
		cc := cfg.Scene.ClearColor
		gl.ClearColor(cc[0], cc[1], cc[2], cc[3])
		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
		scene.Draw(state)

		// check for accumulated OpenGL errors
		if err := shader.CheckError(); err != nil {
			return fmt.Errorf("draw %q: %w", cfg.Window.Title, err)
		}

		// render buffer to screen
		window.SwapBuffers()

		// glfw events?
		glfw.PollEvents()

	}

	return nil
}

func (s *State) apply(f input.Frame, o options) {
	if f.Held(KeyEscape) {
		s.Close()
	}

	if w, h, ok := f.Resized(); ok {
		s.Width, s.Height = w, h
		gl.Viewport(0, 0, int32(w), int32(h))
		slog.Debug("framebuffer resized", "width", w, "height", h)
	}

	if o.camera {
		control.ApplyCamera(s.Camera, f, o.bindings, s.DeltaTime)
	}
}

// SetupLogging installs the default structured logger on stderr.
func SetupLogging(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

// loadScene loads scene into s. A failed Load is followed by Delete so
// whatever it uploaded before failing is released.
func loadScene(scene Scene, s *State) error {
	if err := scene.Load(s); err != nil {
		scene.Delete()
		return fmt.Errorf("failed to load scene: %w", err)
	}
	return nil
}
