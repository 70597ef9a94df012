package geometry

import (
	gomath "math"

	"github.com/pengfeiw/solar-system/pkg/math"
)

// RingSegments is the fixed angular resolution of a ring annulus.
const RingSegments = 200

// RingNormal is the normal supplied for every ring vertex.
var RingNormal = math.Vec3{Y: 1}

// Ring builds a flat annulus in the XY plane between innerRadius and
// outerRadius. The texture's u axis runs once around the ring and v runs from
// the inner edge (0) to the outer edge (1).
//
// The result carries no normals; callers attach them with WithConstantNormal.
// Requires 0 < innerRadius < outerRadius.
func Ring(outerRadius, innerRadius float32) Mesh {
	outer := make([]math.Vec3, RingSegments)
	inner := make([]math.Vec3, RingSegments)
	for i := 0; i < RingSegments; i++ {
		sin, cos := gomath.Sincos(float64(i) / RingSegments * 2 * gomath.Pi)
		outer[i] = math.Vec3{X: float32(cos) * outerRadius, Y: float32(sin) * outerRadius}
		inner[i] = math.Vec3{X: float32(cos) * innerRadius, Y: float32(sin) * innerRadius}
	}

	m := Mesh{
		Vertices:  make([]float32, 0, RingSegments*18),
		TexCoords: make([]float32, 0, RingSegments*12),
	}

	step := float32(1) / RingSegments
	for i := 0; i < RingSegments-1; i++ {
		m.ringSegment(outer[i], inner[i], outer[i+1], inner[i+1], float32(i)*step, float32(i+1)*step)
	}

	// The closing segment is emitted explicitly so it maps u from 1 back to 0
	// instead of repeating the first segment's coordinates.
	last := RingSegments - 1
	m.ringSegment(outer[last], inner[last], outer[0], inner[0], 1, 0)

	return m
}

func (m *Mesh) ringSegment(o0, i0, o1, i1 math.Vec3, u0, u1 float32) {
	m.Vertices = o0.Append(m.Vertices)
	m.Vertices = i0.Append(m.Vertices)
	m.Vertices = o1.Append(m.Vertices)

	m.Vertices = i0.Append(m.Vertices)
	m.Vertices = o1.Append(m.Vertices)
	m.Vertices = i1.Append(m.Vertices)

	m.TexCoords = append(m.TexCoords,
		u0, 1,
		u0, 0,
		u1, 1,
		u0, 0,
		u1, 1,
		u1, 0,
	)
}
