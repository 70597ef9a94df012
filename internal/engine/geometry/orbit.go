package geometry

import (
	gomath "math"

	"github.com/pengfeiw/solar-system/pkg/math"
)

// OrbitSamples is the number of distinct points on the orbit outline.
const OrbitSamples = 1000

// OrbitPath returns the unit circle in the XY plane sampled at OrbitSamples
// equally spaced angles, followed by a copy of the first point so the result
// draws as a closed line strip. Callers scale it per body at draw time.
func OrbitPath() []math.Vec3 {
	points := make([]math.Vec3, 0, OrbitSamples+1)
	for i := 0; i < OrbitSamples; i++ {
		sin, cos := gomath.Sincos(float64(i) / OrbitSamples * 2 * gomath.Pi)
		points = append(points, math.Vec3{X: float32(cos), Y: float32(sin)})
	}
	return append(points, points[0])
}

// Flatten converts points into packed x,y,z scalars.
func Flatten(points []math.Vec3) []float32 {
	out := make([]float32, 0, len(points)*3)
	for _, p := range points {
		out = p.Append(out)
	}
	return out
}

// PathMesh wraps a point sequence as a position-only mesh for line drawing.
func PathMesh(points []math.Vec3) Mesh {
	return Mesh{Vertices: Flatten(points)}
}
