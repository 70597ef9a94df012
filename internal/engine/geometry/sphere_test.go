package geometry

import (
	"testing"

	"github.com/pengfeiw/solar-system/pkg/math"
)

func TestSphereLayout(t *testing.T) {
	tests := []struct {
		h, v   int
		radius float32
	}{
		{2, 2, 1},
		{2, 3, 0.5},
		{3, 4, 2},
		{10, 12, 7},
		{100, 100, 15},
	}

	for _, tt := range tests {
		m := Sphere(tt.h, tt.v, tt.radius)

		if len(m.Vertices)%9 != 0 {
			t.Errorf("Sphere(%d, %d): %d vertex scalars is not whole triangles", tt.h, tt.v, len(m.Vertices))
		}
		if len(m.Vertices) != len(m.Normals) {
			t.Errorf("Sphere(%d, %d): %d vertex scalars, %d normal scalars", tt.h, tt.v, len(m.Vertices), len(m.Normals))
		}
		if len(m.TexCoords)*3 != len(m.Vertices)*2 {
			t.Errorf("Sphere(%d, %d): %d texcoord scalars for %d vertices", tt.h, tt.v, len(m.TexCoords), m.VertexCount())
		}
		if want := 18 * tt.h * tt.v; len(m.Vertices) != want {
			t.Errorf("Sphere(%d, %d): got %d vertex scalars, want %d", tt.h, tt.v, len(m.Vertices), want)
		}
	}
}

func TestSphereVerticesOnSurface(t *testing.T) {
	for _, radius := range []float32{0.5, 1, 3.5, 15} {
		m := Sphere(12, 16, radius)
		for i := 0; i < m.VertexCount(); i++ {
			l := m.Vertex(i).Length()
			if abs(l-radius) > 1e-4 {
				t.Fatalf("radius %v: vertex %d at distance %v", radius, i, l)
			}
		}
	}
}

func TestSphereNormalsUnitAndOutward(t *testing.T) {
	for _, dims := range [][2]int{{2, 3}, {5, 7}, {100, 100}} {
		m := Sphere(dims[0], dims[1], 4.5)
		for tri := 0; tri < m.VertexCount()/3; tri++ {
			base := tri * 3
			centroid := m.Vertex(base).Add(m.Vertex(base + 1)).Add(m.Vertex(base + 2))
			for k := 0; k < 3; k++ {
				n := m.Normal(base + k)
				if abs(n.Length()-1) > 1e-4 {
					t.Fatalf("%v: normal %d has length %v", dims, base+k, n.Length())
				}
				if n.Dot(centroid) < 0 {
					t.Fatalf("%v: triangle %d normal %v points inward", dims, tri, n)
				}
			}
		}
	}
}

func TestSphereNormalsAreFlat(t *testing.T) {
	m := Sphere(6, 8, 1)
	for tri := 0; tri < m.VertexCount()/3; tri++ {
		n := m.Normal(tri * 3)
		if m.Normal(tri*3+1) != n || m.Normal(tri*3+2) != n {
			t.Fatalf("triangle %d has differing vertex normals", tri)
		}
	}
}

func TestSphereTexCoordsInRange(t *testing.T) {
	m := Sphere(9, 11, 2)
	for i, c := range m.TexCoords {
		if c < 0 || c > 1 {
			t.Fatalf("texcoord scalar %d = %v, want within [0, 1]", i, c)
		}
	}

	// The first vertex is the north pole at the top of the texture.
	if m.TexCoords[0] != 0 || m.TexCoords[1] != 1 {
		t.Errorf("first texcoord = (%v, %v), want (0, 1)", m.TexCoords[0], m.TexCoords[1])
	}
	// The last vertex is the south pole at the bottom-right corner.
	n := len(m.TexCoords)
	if m.TexCoords[n-2] != 1 || m.TexCoords[n-1] != 0 {
		t.Errorf("last texcoord = (%v, %v), want (1, 0)", m.TexCoords[n-2], m.TexCoords[n-1])
	}
}

func TestSpherePoles(t *testing.T) {
	m := Sphere(4, 6, 3)
	if got := m.Vertex(0); got != (math.Vec3{Y: 3}) {
		t.Errorf("first vertex = %v, want north pole", got)
	}
	if got := m.Vertex(m.VertexCount() - 1); got != (math.Vec3{Y: -3}) {
		t.Errorf("last vertex = %v, want south pole", got)
	}
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
