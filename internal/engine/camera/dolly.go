// Package camera provides the view-side state of the orbital diagram.
package camera

import (
	"github.com/pengfeiw/solar-system/pkg/math"
)

// DollyState is the camera's current position on its approach.
// The zero value is the starting position.
type DollyState struct {
	X, Y float32
}

// Dolly moves the camera from (0, 0) toward its resting position, one fixed
// step per frame on each axis. X increases toward TargetX and Y decreases
// toward TargetY; neither axis overshoots, and a state at the target stays put.
type Dolly struct {
	StepX, StepY     float32
	TargetX, TargetY float32

	// Z is the fixed camera height above the orbital plane.
	Z float32
}

// NewDolly returns the default approach used by the diagram.
func NewDolly() Dolly {
	return Dolly{
		StepX:   0.25,
		StepY:   0.7,
		TargetX: 60,
		TargetY: -250,
		Z:       90,
	}
}

// Advance returns the state one frame later.
func (d Dolly) Advance(s DollyState) DollyState {
	return DollyState{
		X: min(s.X+d.StepX, d.TargetX),
		Y: max(s.Y-d.StepY, d.TargetY),
	}
}

// Done reports whether s has reached the resting position.
func (d Dolly) Done(s DollyState) bool {
	return s.X == d.TargetX && s.Y == d.TargetY
}

// Eye returns the camera position for s.
func (d Dolly) Eye(s DollyState) math.Vec3 {
	return math.Vec3{X: s.X, Y: s.Y, Z: d.Z}
}

// View returns the view matrix for s, looking at the origin with +Y up.
func (d Dolly) View(s DollyState) math.Mat4 {
	return math.LookAt(d.Eye(s), math.Vec3{}, math.Vec3{Y: 1})
}
