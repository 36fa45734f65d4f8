// Command lab5-outline draws a 2D outline as a single line loop.
package main

import (
	"bytes"
	_ "embed"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"runtime"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/paperboard/gl-labs/internal/app"
	"github.com/paperboard/gl-labs/internal/config"
	"github.com/paperboard/gl-labs/internal/geom"
	"github.com/paperboard/gl-labs/internal/input"
	"github.com/paperboard/gl-labs/internal/mesh"
	"github.com/paperboard/gl-labs/internal/shader"
)

var (
	//go:embed assets/outline.txt
	outlinePoints []byte

	//go:embed shaders/outline.vert
	vertexShader string

	//go:embed shaders/outline.frag
	fragmentShader string
)

var lineColor = mgl32.Vec4{1, 0.9, 0.3, 1}

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

	if err := app.Run(cfg, &outline{}); err != nil {
		log.Fatalln(err)
	}

}

func defaults() config.Config {
	cfg := config.Default()
	cfg.Window.Title = "Outline"
	cfg.Scene.ClearColor = [4]float32{0, 0, 0, 0}
	return cfg
}

type outline struct {
	program *shader.Program
	line    *mesh.Mesh
}

func (o *outline) Load(*app.State) error {

	// blend the line color with the background
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	points, err := geom.ReadPoints2D(bytes.NewReader(outlinePoints))
	if err != nil {
		return fmt.Errorf("outline points: %w", err)
	}
	slog.Debug("outline loaded", "points", points.Count())

	o.line, err = mesh.New(points)
	if err != nil {
		return err
	}

	o.program, err = shader.New(vertexShader, fragmentShader)
	return err

}

func (o *outline) Update(*app.State, input.Frame) {}

func (o *outline) Draw(*app.State) {
	o.program.Use()
	o.program.SetVec4("lineColor", lineColor)
	o.line.Draw(gl.LINE_LOOP)
}

func (o *outline) Delete() {
	if o.line != nil {
		o.line.Delete()
	}
	if o.program != nil {
		o.program.Delete()
	}
}
