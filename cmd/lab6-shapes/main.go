// Command lab6-shapes draws a flat-shaded house: a triangle roof, a framed
// wall and a tilted green board.
package main

import (
	_ "embed"
	"flag"
	"log"
	"runtime"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/paperboard/gl-labs/internal/app"
	"github.com/paperboard/gl-labs/internal/config"
	"github.com/paperboard/gl-labs/internal/geom"
	"github.com/paperboard/gl-labs/internal/input"
	"github.com/paperboard/gl-labs/internal/mesh"
	"github.com/paperboard/gl-labs/internal/shader"
	"github.com/paperboard/gl-labs/internal/transform"
)

var (
	//go:embed shaders/shapes.vert
	vertexShader string

	//go:embed shaders/shapes.frag
	fragmentShader string
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

	if err := app.Run(cfg, newShapes()); err != nil {
		log.Fatalln(err)
	}

}

func defaults() config.Config {
	cfg := config.Default()
	cfg.Window.Width = 1000
	cfg.Window.Height = 700
	cfg.Window.Title = "OpenGL Structure"
	cfg.Scene.ClearColor = [4]float32{0.1, 0.1, 0.1, 1}
	return cfg
}

// shape is one draw: a mesh, how to assemble it and where to put it.
type shape struct {
	name string
	mode uint32
	node *transform.Node
	data geom.Data

	mesh *mesh.Mesh
}

type shapes struct {
	program *shader.Program
	list    []*shape
}

func newShapes() *shapes {
	white := mgl32.Vec3{1, 1, 1}
	dark := mgl32.Vec3{0.1, 0.1, 0.1}
	red := mgl32.Vec3{1, 0, 0}
	green := mgl32.Vec3{0, 1, 0}

	return &shapes{list: []*shape{
		{
			name: "roof",
			mode: gl.TRIANGLES,
			node: transform.New(),
			data: geom.Triangle(mgl32.Vec3{0, 0.6, 0}, mgl32.Vec3{-0.4, 0.2, 0}, mgl32.Vec3{0.4, 0.2, 0}, red),
		},
		{
			name: "wall",
			mode: gl.TRIANGLE_FAN,
			node: transform.New(),
			data: geom.Rect(-0.4, 0.2, 0.4, -0.5, 0, white),
		},
		{
			name: "window",
			mode: gl.TRIANGLE_FAN,
			node: transform.New(),
			data: geom.Rect(-0.3, 0.1, 0.3, -0.4, 0, dark),
		},
		{
			name: "board",
			mode: gl.TRIANGLE_FAN,
			node: transform.New().At(0, -0.05, 0).Rotated(transform.AxisZ, 35).Scaled(1.1, 0.3, 1),
			data: geom.Rect(-0.35, -0.1, 0.24, -0.5, 0, green),
		},
	}}
}

func (s *shapes) Load(*app.State) error {

	var err error
	for _, sh := range s.list {
		sh.mesh, err = mesh.New(sh.data)
		if err != nil {
			return &mesh.ShapeError{Name: sh.name, Err: err}
		}
	}

	s.program, err = shader.New(vertexShader, fragmentShader)
	return err

}

func (s *shapes) Update(*app.State, input.Frame) {}

func (s *shapes) Draw(*app.State) {
	s.program.Use()
	for _, sh := range s.list {
		s.program.SetMat4("transform", sh.node.Matrix())
		sh.mesh.Draw(sh.mode)
	}
}

func (s *shapes) Delete() {
	for _, sh := range s.list {
		if sh.mesh != nil {
			sh.mesh.Delete()
		}
	}
	if s.program != nil {
		s.program.Delete()
	}
}
