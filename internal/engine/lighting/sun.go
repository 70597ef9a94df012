// Package lighting provides lighting utilities for 3D rendering.
package lighting

import "github.com/pengfeiw/solar-system/pkg/math"

// Sun is a point light with a constant ambient floor.
type Sun struct {
	Position math.Vec3
	Color    math.Vec3
	Ambient  float32
}

// DefaultSun returns a white light at the origin with a dim ambient term.
func DefaultSun() Sun {
	return Sun{
		Color:   math.Vec3{X: 1, Y: 1, Z: 1},
		Ambient: 0.1,
	}
}

// Intensity returns the light factor at a surface point with normal n,
// matching the planet fragment shader: ambient plus clamped Lambert diffuse.
func (s Sun) Intensity(point, normal math.Vec3) float32 {
	dir := s.Position.Sub(point).Normalize()
	diffuse := max(normal.Normalize().Dot(dir), 0)
	return s.Ambient + diffuse
}
