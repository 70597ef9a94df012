package geometry

import (
	gomath "math"

	"github.com/pengfeiw/solar-system/pkg/math"
)

// Sphere builds a UV sphere of the given radius centered on the origin.
//
// The sphere is cut into horizontal latitude bands from the north pole (+Y)
// to the south pole, each sampled at vertical longitude points. Every band
// quad becomes two triangles with flat face normals, so the result shades
// faceted. Triangles touching a pole are degenerate on one side of the quad
// and borrow the normal of their partner.
//
// Requires horizontal >= 2, vertical >= 2, radius > 0.
func Sphere(horizontal, vertical int, radius float32) Mesh {
	quads := horizontal * vertical
	b := sphereBuilder{
		mesh: Mesh{
			Vertices:  make([]float32, 0, quads*18),
			Normals:   make([]float32, 0, quads*18),
			TexCoords: make([]float32, 0, quads*12),
		},
	}

	north := math.Vec3{Y: radius}
	south := math.Vec3{Y: -radius}

	top := repeatPoint(north, vertical)
	h, v := float32(horizontal), float32(vertical)

	for i := 0; i < horizontal; i++ {
		var bottom []math.Vec3
		if i == horizontal-1 {
			bottom = repeatPoint(south, vertical)
		} else {
			bottom = latitudeRing(i+1, horizontal, vertical, radius)
		}

		vTop := 1 - float32(i)/h
		vBottom := 1 - float32(i+1)/h

		for j := 0; j < vertical-1; j++ {
			b.quad(top[j], bottom[j], top[j+1], bottom[j+1],
				float32(j)/v, float32(j+1)/v, vTop, vBottom)
		}

		// Closing quad back to the first longitude sample.
		last := vertical - 1
		b.quad(top[last], bottom[last], top[0], bottom[0], 1-1/v, 1, vTop, vBottom)

		top = bottom
	}

	return b.mesh
}

// latitudeRing samples the interior ring at band boundary i.
func latitudeRing(i, horizontal, vertical int, radius float32) []math.Vec3 {
	angle := float64(i) * gomath.Pi / float64(horizontal)
	y := float32(gomath.Cos(angle)) * radius
	xz := float32(gomath.Sin(angle)) * radius

	points := make([]math.Vec3, vertical)
	for j := range points {
		sin, cos := gomath.Sincos(float64(j) * 2 * gomath.Pi / float64(vertical))
		points[j] = math.Vec3{X: float32(cos) * xz, Y: y, Z: float32(sin) * xz}
	}
	return points
}

func repeatPoint(p math.Vec3, n int) []math.Vec3 {
	points := make([]math.Vec3, n)
	for i := range points {
		points[i] = p
	}
	return points
}

type sphereBuilder struct {
	mesh Mesh
}

// quad emits the two triangles a,b,c and b,c,d where a,c lie on the upper
// ring and b,d on the lower one.
func (sb *sphereBuilder) quad(a, b, c, d math.Vec3, u0, u1, vTop, vBottom float32) {
	n1 := faceNormal(a, b, c)
	n2 := faceNormal(b, c, d)

	// Pole quads collapse one of their triangles to a line.
	switch {
	case n1 == (math.Vec3{}) && n2 == (math.Vec3{}):
		n1 = a.Add(b).Add(c).Normalize()
		n2 = b.Add(c).Add(d).Normalize()
	case n1 == (math.Vec3{}):
		n1 = n2
	case n2 == (math.Vec3{}):
		n2 = n1
	}

	n1 = outward(n1, a.Add(b).Add(c))
	n2 = outward(n2, b.Add(c).Add(d))

	sb.vertex(a, n1, u0, vTop)
	sb.vertex(b, n1, u0, vBottom)
	sb.vertex(c, n1, u1, vTop)

	sb.vertex(b, n2, u0, vBottom)
	sb.vertex(c, n2, u1, vTop)
	sb.vertex(d, n2, u1, vBottom)
}

func (sb *sphereBuilder) vertex(p, n math.Vec3, u, v float32) {
	sb.mesh.Vertices = p.Append(sb.mesh.Vertices)
	sb.mesh.Normals = n.Append(sb.mesh.Normals)
	sb.mesh.TexCoords = append(sb.mesh.TexCoords, u, v)
}

// faceNormal returns the unit normal of triangle a,b,c from its first two
// edges, or the zero vector for a degenerate triangle.
func faceNormal(a, b, c math.Vec3) math.Vec3 {
	n := b.Sub(a).Cross(c.Sub(b))
	if n.Length() < 1e-12 {
		return math.Vec3{}
	}
	return n.Normalize()
}

// outward flips n if it points toward the center, judged against the
// direction of the triangle centroid.
func outward(n, centroid math.Vec3) math.Vec3 {
	if n.Dot(centroid) < 0 {
		return n.Negate()
	}
	return n
}
