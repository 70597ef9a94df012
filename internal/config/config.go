// Package config handles orrery configuration loading and management.
package config

import (
	"errors"
	"fmt"
	gomath "math"
)

// ErrInvalid is returned by Validate for unusable settings.
var ErrInvalid = errors.New("invalid config")

// Config holds all application settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Scene    SceneConfig    `yaml:"scene"`
	Assets   AssetsConfig   `yaml:"assets"`
	Debug    DebugConfig    `yaml:"debug"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display and projection settings.
type GraphicsConfig struct {
	Width      int     `yaml:"width"`
	Height     int     `yaml:"height"`
	Fullscreen bool    `yaml:"fullscreen"`
	VSync      bool    `yaml:"vsync"`
	FOVDegrees float32 `yaml:"fov_degrees"`
	Near       float32 `yaml:"near"`
	Far        float32 `yaml:"far"`
}

// SceneConfig is the static body table plus animation tuning.
type SceneConfig struct {
	Sun     BodyConfig   `yaml:"sun"`
	Planets []BodyConfig `yaml:"planets"`
	Sphere  SphereConfig `yaml:"sphere"`
	Rates   RatesConfig  `yaml:"rates"`
	Camera  CameraConfig `yaml:"camera"`
	Seed    uint64       `yaml:"seed"` // 0 draws orbital phases from entropy
}

// BodyConfig describes one celestial body.
// The sun has no revolution speed; every planet must have one.
type BodyConfig struct {
	Name            string      `yaml:"name"`
	Diameter        float32     `yaml:"diameter"`
	Center          []float32   `yaml:"center"`
	RotationSpeed   float32     `yaml:"rotation_speed"`
	RevolutionSpeed *float32    `yaml:"revolution_speed,omitempty"`
	Texture         string      `yaml:"texture"`
	Ring            *RingConfig `yaml:"ring,omitempty"`
}

// RingConfig describes a planetary ring. A ring missing any of its three
// values is treated as absent.
type RingConfig struct {
	OuterRadius *float32  `yaml:"outer_radius,omitempty"`
	InnerRadius *float32  `yaml:"inner_radius,omitempty"`
	Axis        []float32 `yaml:"axis,omitempty"` // Euler X, Y, Z in radians
}

// Complete reports whether all three ring values are present.
func (r *RingConfig) Complete() bool {
	return r != nil && r.OuterRadius != nil && r.InnerRadius != nil && len(r.Axis) == 3
}

// SphereConfig holds the UV sphere subdivision used for every body.
type SphereConfig struct {
	Horizontal int `yaml:"horizontal"`
	Vertical   int `yaml:"vertical"`
}

// RatesConfig converts elapsed milliseconds into radians.
type RatesConfig struct {
	Revolution float32 `yaml:"revolution"`
	Spin       float32 `yaml:"spin"`
}

// CameraConfig holds the dolly approach settings.
type CameraConfig struct {
	StepX   float32 `yaml:"step_x"`
	StepY   float32 `yaml:"step_y"`
	TargetX float32 `yaml:"target_x"`
	TargetY float32 `yaml:"target_y"`
	Z       float32 `yaml:"z"`
}

// AssetsConfig holds texture locations.
type AssetsConfig struct {
	TextureDir     string `yaml:"texture_dir"`
	Background     string `yaml:"background"`
	MaxTextureSize int    `yaml:"max_texture_size"`
}

// DebugConfig holds developer settings.
type DebugConfig struct {
	ShowFPS       bool   `yaml:"show_fps"`
	ScreenshotDir string `yaml:"screenshot_dir"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

func ptr(v float32) *float32 {
	return &v
}

// Default returns a Config with the built-in solar system.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
			FOVDegrees: 45,
			Near:       0.1,
			Far:        1000,
		},
		Scene: SceneConfig{
			Sun: BodyConfig{
				Name:          "Sun",
				Diameter:      30,
				Center:        []float32{0, 0, 0},
				RotationSpeed: 0.2,
				Texture:       "sun.jpg",
			},
			Planets: DefaultPlanets(),
			Sphere: SphereConfig{
				Horizontal: 100,
				Vertical:   100,
			},
			Rates: RatesConfig{
				Revolution: 0.0001,
				Spin:       0.001,
			},
			Camera: CameraConfig{
				StepX:   0.25,
				StepY:   0.7,
				TargetX: 60,
				TargetY: -250,
				Z:       90,
			},
		},
		Assets: AssetsConfig{
			TextureDir:     "assets/textures",
			Background:     "background.jpg",
			MaxTextureSize: 4096,
		},
		Debug: DebugConfig{
			ShowFPS:       false,
			ScreenshotDir: "screenshots",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// DefaultPlanets returns the eight planets in orbital order.
func DefaultPlanets() []BodyConfig {
	planet := func(name string, diameter, distance, revolution float32, texture string) BodyConfig {
		return BodyConfig{
			Name:            name,
			Diameter:        diameter,
			Center:          []float32{distance, 0, 0},
			RotationSpeed:   0.2,
			RevolutionSpeed: ptr(revolution),
			Texture:         texture,
		}
	}

	saturn := planet("Saturn", 9, 88, 0.96, "saturn.jpg")
	saturn.Ring = &RingConfig{
		OuterRadius: ptr(10),
		InnerRadius: ptr(8),
		Axis:        []float32{gomath.Pi * 0.25, gomath.Pi * 0.45, 0},
	}

	return []BodyConfig{
		planet("Mercury", 3, 20.5, 4.7, "mercury.jpg"),
		planet("Venus", 8, 30, 3.5, "venus.jpg"),
		planet("Earth", 7, 42, 3.0, "earth.jpg"),
		planet("Mars", 6, 54, 2.4, "mars.jpg"),
		planet("Jupiter", 14, 70, 1.3, "jupiter.jpg"),
		saturn,
		planet("Uranus", 10, 105, 0.7, "uranus.jpg"),
		planet("Neptune", 12, 125, 0.55, "neptune.jpg"),
	}
}

// Validate checks the settings the generators and renderer rely on.
// Body tables are validated when the scene is built.
func (c *Config) Validate() error {
	g := c.Graphics
	if g.Width <= 0 || g.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, g.Width, g.Height)
	}
	if g.FOVDegrees <= 0 || g.FOVDegrees >= 180 {
		return fmt.Errorf("%w: fov_degrees %v", ErrInvalid, g.FOVDegrees)
	}
	if g.Near <= 0 || g.Far <= g.Near {
		return fmt.Errorf("%w: clip range %v..%v", ErrInvalid, g.Near, g.Far)
	}

	s := c.Scene
	if s.Sphere.Horizontal < 2 || s.Sphere.Vertical < 2 {
		return fmt.Errorf("%w: sphere segments %dx%d, need at least 2x2",
			ErrInvalid, s.Sphere.Horizontal, s.Sphere.Vertical)
	}
	if s.Camera.StepX <= 0 || s.Camera.StepY <= 0 {
		return fmt.Errorf("%w: camera steps must be positive", ErrInvalid)
	}
	if c.Assets.MaxTextureSize < 0 {
		return fmt.Errorf("%w: max_texture_size %d", ErrInvalid, c.Assets.MaxTextureSize)
	}
	return nil
}
