// Command lab7-tablefan draws a table fan with a free-look camera.
//
//	W/S/A/D/E/R  move the camera
//	mouse        look around
//	scroll       zoom
//	F            start/stop the blades
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

	"github.com/paperboard/gl-labs/internal/app"
	"github.com/paperboard/gl-labs/internal/config"
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

var keyToggleFan = input.Key(glfw.KeyF)

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

	err = app.Run(cfg, &tableFan{fan: rig.NewTableFan(cfg.Scene.RotationSpeed)},
		app.WithCamera(app.DefaultCameraBindings),
		app.WithKeys(keyToggleFan),
	)
	if err != nil {
		log.Fatalln(err)
	}

}

func defaults() config.Config {
	cfg := config.Default()
	cfg.Window.Title = "3D Table Fan"
	cfg.Window.CaptureCursor = true
	cfg.Camera.Position = [3]float32{0, 0, 5}
	cfg.Scene.RotationSpeed = 720
	return cfg
}

type tableFan struct {
	fan     *rig.TableFan
	program *shader.Program
	meshes  mesh.Set
}

func (t *tableFan) Load(*app.State) error {

	// hide faces behind nearer ones
	gl.Enable(gl.DEPTH_TEST)

	var err error
	t.meshes, err = mesh.NewSet(rig.TableFanShapes())
	if err != nil {
		return err
	}

	t.program, err = shader.New(vertexShader, fragmentShader)
	return err

}

func (t *tableFan) Update(s *app.State, f input.Frame) {
	if f.Pressed(keyToggleFan) {
		t.fan.Blades.Toggle()
		slog.Debug("fan toggled", "spinning", t.fan.Blades.On)
	}
	t.fan.Update(s.DeltaTime)
}

func (t *tableFan) Draw(s *app.State) {
	t.program.Use()
	t.program.SetMat4("projection", s.Projection())
	t.program.SetMat4("view", s.Camera.ViewMatrix())

	for _, p := range t.fan.Parts() {
		t.program.SetMat4("model", p.Model())
		t.meshes[p.Shape].Draw(gl.TRIANGLES)
	}
}

func (t *tableFan) Delete() {
	t.meshes.Delete()
	if t.program != nil {
		t.program.Delete()
	}
}
