package solar

import (
	"time"

	"github.com/pengfeiw/solar-system/pkg/math"
)

// Composer turns elapsed time into model matrices.
// Rates are radians per millisecond per unit of body speed.
type Composer struct {
	RevolutionRate float32
	SpinRate       float32
}

// DefaultComposer returns the diagram's standard animation rates.
func DefaultComposer() Composer {
	return Composer{RevolutionRate: 0.0001, SpinRate: 0.001}
}

func (c Composer) angle(rate, speed float32, elapsed time.Duration) float32 {
	ms := float64(elapsed) / float64(time.Millisecond)
	return float32(ms * float64(rate) * float64(speed))
}

// placement is the shared prefix of the body and ring transforms:
// revolution about the sun, then the fixed phase, then the move out to the
// body's center. The sun skips both rotations.
func (c Composer) placement(b Body, phase float32, elapsed time.Duration) math.Mat4 {
	m := math.Identity()
	if b.Revolves() {
		m = m.Mul(math.RotateZ(c.angle(c.RevolutionRate, *b.RevolutionSpeed, elapsed)))
		m = m.Mul(math.RotateZ(phase))
	}
	return m.Mul(math.Translate(b.Center))
}

// BodyTransform returns the model matrix of b: its orbital placement followed
// by the axial spin in local space.
func (c Composer) BodyTransform(b Body, phase float32, elapsed time.Duration) math.Mat4 {
	m := c.placement(b, phase, elapsed)
	return m.Mul(math.RotateZ(c.angle(c.SpinRate, b.RotationSpeed, elapsed)))
}

// RingTransform returns the model matrix of b's ring: the body's placement
// followed by the fixed tilt, Z then Y then X. It reports false if b has no
// ring.
func (c Composer) RingTransform(b Body, phase float32, elapsed time.Duration) (math.Mat4, bool) {
	if b.Ring == nil {
		return math.Identity(), false
	}
	axis := b.Ring.Axis
	m := c.placement(b, phase, elapsed)
	m = m.Mul(math.RotateZ(axis.Z))
	m = m.Mul(math.RotateY(axis.Y))
	m = m.Mul(math.RotateX(axis.X))
	return m, true
}
