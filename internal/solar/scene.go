// Package solar holds the orbital diagram's scene model and the per-frame
// transform computation for every body and ring.
package solar

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/pengfeiw/solar-system/internal/config"
	"github.com/pengfeiw/solar-system/internal/logger"
	"github.com/pengfeiw/solar-system/pkg/math"
)

var (
	// ErrInvalidBody is returned for a body the generators cannot draw.
	ErrInvalidBody = errors.New("invalid body")
	// ErrInvalidRing is returned for a complete ring with unusable radii.
	ErrInvalidRing = errors.New("invalid ring")
)

// Ring is a flat annulus around a planet, tilted by Axis (Euler X, Y, Z in
// radians). OuterRadius > InnerRadius > 0.
type Ring struct {
	OuterRadius float32
	InnerRadius float32
	Axis        math.Vec3
}

// Body is one celestial body. RevolutionSpeed is nil for the sun.
type Body struct {
	Name            string
	Diameter        float32
	Center          math.Vec3 // orbital reference point
	RotationSpeed   float32
	RevolutionSpeed *float32
	Texture         string
	Ring            *Ring
}

// Radius returns half the diameter.
func (b Body) Radius() float32 {
	return b.Diameter / 2
}

// Revolves reports whether the body orbits the sun.
func (b Body) Revolves() bool {
	return b.RevolutionSpeed != nil
}

// Scene is the immutable body table for one session.
// Phases[i] is the fixed orbital phase of Planets[i].
type Scene struct {
	Sun     Body
	Planets []Body
	Phases  []float32
}

// NewScene validates the configured bodies and draws one orbital phase per
// planet from phase. A ring with missing values is dropped with a warning.
func NewScene(cfg config.SceneConfig, phase PhaseFunc) (*Scene, error) {
	sun, err := newBody(cfg.Sun)
	if err != nil {
		return nil, fmt.Errorf("sun: %w", err)
	}
	if sun.Revolves() {
		return nil, fmt.Errorf("sun: %w: revolution speed must be absent", ErrInvalidBody)
	}

	s := &Scene{
		Sun:     sun,
		Planets: make([]Body, 0, len(cfg.Planets)),
		Phases:  make([]float32, 0, len(cfg.Planets)),
	}

	for i, pc := range cfg.Planets {
		p, err := newBody(pc)
		if err != nil {
			return nil, fmt.Errorf("planet %d (%s): %w", i, pc.Name, err)
		}
		if !p.Revolves() {
			return nil, fmt.Errorf("planet %d (%s): %w: revolution speed is required", i, pc.Name, ErrInvalidBody)
		}
		s.Planets = append(s.Planets, p)
		s.Phases = append(s.Phases, phase())
	}

	logger.Info("scene built",
		zap.String("sun", s.Sun.Name),
		zap.Int("planets", len(s.Planets)),
	)
	return s, nil
}

func newBody(bc config.BodyConfig) (Body, error) {
	if bc.Diameter <= 0 {
		return Body{}, fmt.Errorf("%w: diameter %v", ErrInvalidBody, bc.Diameter)
	}

	b := Body{
		Name:          bc.Name,
		Diameter:      bc.Diameter,
		RotationSpeed: bc.RotationSpeed,
		Texture:       bc.Texture,
	}
	if bc.RevolutionSpeed != nil {
		rev := *bc.RevolutionSpeed
		b.RevolutionSpeed = &rev
	}

	switch len(bc.Center) {
	case 0:
	case 3:
		b.Center = math.Vec3{X: bc.Center[0], Y: bc.Center[1], Z: bc.Center[2]}
	default:
		return Body{}, fmt.Errorf("%w: center has %d components", ErrInvalidBody, len(bc.Center))
	}

	if bc.Ring == nil {
		return b, nil
	}
	if !bc.Ring.Complete() {
		logger.Warn("ignoring incomplete ring", zap.String("body", bc.Name))
		return b, nil
	}

	outer, inner := *bc.Ring.OuterRadius, *bc.Ring.InnerRadius
	if inner <= 0 || outer <= inner {
		return Body{}, fmt.Errorf("%w: radii outer=%v inner=%v", ErrInvalidRing, outer, inner)
	}
	b.Ring = &Ring{
		OuterRadius: outer,
		InnerRadius: inner,
		Axis:        math.Vec3{X: bc.Ring.Axis[0], Y: bc.Ring.Axis[1], Z: bc.Ring.Axis[2]},
	}
	return b, nil
}

// OrbitModels returns, per planet, the scale that stretches the unit orbit
// outline to the planet's distance from the sun.
func (s *Scene) OrbitModels() []math.Mat4 {
	models := make([]math.Mat4, len(s.Planets))
	for i, p := range s.Planets {
		d := p.Center.Distance(s.Sun.Center)
		models[i] = math.Scale(d, d, 1)
	}
	return models
}
