// Package config loads lab settings from an optional YAML file.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds window, camera and scene settings for one lab.
type Config struct {
	Window Window `yaml:"window"`
	Camera Camera `yaml:"camera"`
	Scene  Scene  `yaml:"scene"`
}

type Window struct {
	Width         int    `yaml:"width"`
	Height        int    `yaml:"height"`
	Title         string `yaml:"title"`
	Resizable     bool   `yaml:"resizable"`
	CaptureCursor bool   `yaml:"capture_cursor"`
}

type Camera struct {
	Position    [3]float32 `yaml:"position"`
	Yaw         float32    `yaml:"yaw"`
	Pitch       float32    `yaml:"pitch"`
	Speed       float32    `yaml:"speed"`
	Sensitivity float32    `yaml:"sensitivity"`
	Zoom        float32    `yaml:"zoom"`
	Near        float32    `yaml:"near"`
	Far         float32    `yaml:"far"`
}

type Scene struct {
	ClearColor     [4]float32 `yaml:"clear_color"`
	RotationSpeed  float32    `yaml:"rotation_speed"`  // degrees per second
	TranslateSpeed float32    `yaml:"translate_speed"` // units per second
	Wireframe      bool       `yaml:"wireframe"`
}

// Default returns the settings shared by every lab. Labs override the
// fields their scene needs before loading a file on top.
func Default() Config {
	return Config{
		Window: Window{
			Width:  800,
			Height: 600,
			Title:  "LearnOpenGL",
		},
		Camera: Camera{
			Position:    [3]float32{0, 0, 3},
			Yaw:         -90,
			Pitch:       0,
			Speed:       2.5,
			Sensitivity: 0.1,
			Zoom:        45,
			Near:        0.1,
			Far:         100,
		},
		Scene: Scene{
			ClearColor:     [4]float32{0.2, 0.3, 0.3, 1},
			RotationSpeed:  90,
			TranslateSpeed: 1,
		},
	}
}

// Load reads path over base. An empty path returns base unchanged; fields
// missing from the file keep their base values.
func Load(path string, base Config) (Config, error) {
	if path == "" {
		return base, base.Validate()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("read config: %w", err)
	}

	cfg, err := Parse(data, base)
	if err != nil {
		return base, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML data over base and validates the result.
func Parse(data []byte, base Config) (Config, error) {
	cfg := base
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return base, fmt.Errorf("parse yaml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return base, err
	}
	return cfg, nil
}

// Validate reports settings that would produce an unusable window or
// projection.
func (c Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}
	if c.Camera.Near <= 0 {
		errs = append(errs, fmt.Errorf("camera near plane %v must be positive", c.Camera.Near))
	}
	if c.Camera.Far <= c.Camera.Near {
		errs = append(errs, fmt.Errorf("camera far plane %v must be beyond near plane %v", c.Camera.Far, c.Camera.Near))
	}
	if c.Camera.Zoom < 1 || c.Camera.Zoom > 45 {
		errs = append(errs, fmt.Errorf("camera zoom %v outside [1, 45]", c.Camera.Zoom))
	}
	if c.Camera.Speed < 0 || c.Camera.Sensitivity < 0 {
		errs = append(errs, errors.New("camera speed and sensitivity must not be negative"))
	}
	return errors.Join(errs...)
}

// Aspect returns the configured window aspect ratio.
func (w Window) Aspect() float32 {
	return float32(w.Width) / float32(w.Height)
}
