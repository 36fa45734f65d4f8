// Command lab8-ceilingfan draws a table fan and a ceiling fan built from one
// cube mesh, with a free-look camera.
//
//	W/S/A/D/E/R  move the camera
//	mouse        look around
//	scroll       zoom
//	I/K J/L O/P  move both fans along z, x and y
//	F            start/stop the table fan
//	G            start/stop the ceiling fan
//	Esc          quit
package main

import (
	_ "embed"
	"flag"
	"log"
	"log/slog"
	"runtime"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/paperboard/gl-labs/internal/app"
	"github.com/paperboard/gl-labs/internal/config"
	"github.com/paperboard/gl-labs/internal/control"
	"github.com/paperboard/gl-labs/internal/geom"
	"github.com/paperboard/gl-labs/internal/input"
	"github.com/paperboard/gl-labs/internal/mesh"
	"github.com/paperboard/gl-labs/internal/rig"
	"github.com/paperboard/gl-labs/internal/shader"
)

var (
	//go:embed shaders/scene.vert
	vertexShader string

	//go:embed shaders/scene.frag
	fragmentShader string
)

var (
	keyAway          = input.Key(glfw.KeyI)
	keyToward        = input.Key(glfw.KeyK)
	keyLeft          = input.Key(glfw.KeyJ)
	keyRight         = input.Key(glfw.KeyL)
	keyRaise         = input.Key(glfw.KeyO)
	keyLower         = input.Key(glfw.KeyP)
	keyToggleTable   = input.Key(glfw.KeyF)
	keyToggleCeiling = input.Key(glfw.KeyG)
)

func init() {
	// glfw must be on main thread
	runtime.LockOSThread()
}

func main() {

	configPath := flag.String("config", "", "YAML settings file")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	app.SetupLogging(*verbose)

	cfg, err := config.Load(*configPath, defaults())
	if err != nil {
		log.Fatalln("failed to load config:", err)
	}

	err = app.Run(cfg, &ceilingFan{scene: rig.NewCeilingScene(cfg.Scene.RotationSpeed)},
		app.WithCamera(app.DefaultCameraBindings),
		app.WithKeys(
			keyAway, keyToward, keyLeft, keyRight, keyRaise, keyLower,
			keyToggleTable, keyToggleCeiling,
		),
	)
	if err != nil {
		log.Fatalln(err)
	}

}

func defaults() config.Config {
	cfg := config.Default()
	cfg.Window.Title = "Ceiling and Table Fan"
	cfg.Window.CaptureCursor = true
	cfg.Camera.Position = [3]float32{0, 0, 7}
	cfg.Scene.RotationSpeed = 12
	cfg.Scene.TranslateSpeed = 1
	return cfg
}

type ceilingFan struct {
	scene   *rig.CeilingScene
	program *shader.Program
	cube    *mesh.Mesh
}

func (c *ceilingFan) Load(*app.State) error {

	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	var err error
	// color comes from the uniform
	c.cube, err = mesh.New(geom.Cube(0.5, geom.DefaultFaceColors).Positions())
	if err != nil {
		return &mesh.ShapeError{Name: rig.ShapeCube, Err: err}
	}

	c.program, err = shader.New(vertexShader, fragmentShader)
	return err

}

func (c *ceilingFan) Update(s *app.State, f input.Frame) {
	if f.Pressed(keyToggleTable) {
		c.scene.Arms.Toggle()
		slog.Debug("table fan toggled", "spinning", c.scene.Arms.On)
	}
	if f.Pressed(keyToggleCeiling) {
		c.scene.Ceiling.Toggle()
		slog.Debug("ceiling fan toggled", "spinning", c.scene.Ceiling.On)
	}

	step := s.Config.Scene.TranslateSpeed * s.DeltaTime
	move := mgl32.Vec3{
		control.Axis(f, keyRight, keyLeft),
		control.Axis(f, keyRaise, keyLower),
		control.Axis(f, keyToward, keyAway),
	}
	if move != (mgl32.Vec3{}) {
		c.scene.Move(move.Mul(step))
	}

	c.scene.Update(s.DeltaTime)
}

func (c *ceilingFan) Draw(s *app.State) {
	c.program.Use()
	c.program.SetMat4("projection", s.Projection())
	c.program.SetMat4("view", s.Camera.ViewMatrix())

	for _, p := range c.scene.Parts() {
		c.program.SetMat4("model", p.Model())
		c.program.SetVec4("color", p.Color)
		c.cube.Draw(gl.TRIANGLES)
	}
}

func (c *ceilingFan) Delete() {
	if c.cube != nil {
		c.cube.Delete()
	}
	if c.program != nil {
		c.program.Delete()
	}
}
