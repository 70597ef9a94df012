package geometry

import (
	"testing"

	"github.com/pengfeiw/solar-system/pkg/math"
)

func TestRingSizes(t *testing.T) {
	m := Ring(10, 8)
	if len(m.Vertices) != 3600 {
		// 200 segments x 2 triangles x 3 vertices = 1200 vertices of 3 scalars.
		t.Errorf("got %d vertex scalars, want 3600", len(m.Vertices))
	}
	if m.VertexCount() != 1200 {
		t.Errorf("got %d vertices, want 1200", m.VertexCount())
	}
	if len(m.TexCoords) != 2400 {
		t.Errorf("got %d texcoord scalars, want 2400", len(m.TexCoords))
	}
	if len(m.Normals) != 0 {
		t.Errorf("ring should not compute normals, got %d scalars", len(m.Normals))
	}
}

func TestRingVerticesOnEdges(t *testing.T) {
	const outer, inner = 10, 8
	m := Ring(outer, inner)
	for i := 0; i < m.VertexCount(); i++ {
		p := m.Vertex(i)
		if p.Z != 0 {
			t.Fatalf("vertex %d leaves the XY plane: %v", i, p)
		}
		l := p.Length()
		if abs(l-outer) > 1e-4 && abs(l-inner) > 1e-4 {
			t.Fatalf("vertex %d at radius %v, want %v or %v", i, l, outer, inner)
		}
	}
}

func TestRingTexCoords(t *testing.T) {
	m := Ring(10, 8)
	for i := 0; i < m.VertexCount(); i++ {
		u, v := m.TexCoords[i*2], m.TexCoords[i*2+1]
		if u < 0 || u > 1 {
			t.Fatalf("vertex %d u = %v, want within [0, 1]", i, u)
		}
		onOuter := abs(m.Vertex(i).Length()-10) < 1e-4
		if onOuter && v != 1 {
			t.Fatalf("outer vertex %d has v = %v, want 1", i, v)
		}
		if !onOuter && v != 0 {
			t.Fatalf("inner vertex %d has v = %v, want 0", i, v)
		}
	}

	// The closing segment runs u from 1 back to 0.
	last := len(m.TexCoords) - 12
	if m.TexCoords[last] != 1 || m.TexCoords[last+4] != 0 {
		t.Errorf("closing segment u = (%v, %v), want (1, 0)", m.TexCoords[last], m.TexCoords[last+4])
	}
}

func TestRingClosesOnFirstSample(t *testing.T) {
	m := Ring(10, 8)
	n := m.VertexCount()
	// The final triangle ends on inner[0]; the closing pair uses outer[0].
	if got, want := m.Vertex(n-1), m.Vertex(1); got != want {
		t.Errorf("last vertex %v, want inner[0] %v", got, want)
	}
	if got, want := m.Vertex(n-2), m.Vertex(0); got != want {
		t.Errorf("closing outer vertex %v, want outer[0] %v", got, want)
	}
}

func TestWithConstantNormal(t *testing.T) {
	m := Ring(3, 1).WithConstantNormal(RingNormal)
	if len(m.Normals) != len(m.Vertices) {
		t.Fatalf("got %d normal scalars for %d vertex scalars", len(m.Normals), len(m.Vertices))
	}
	for i := 0; i < m.VertexCount(); i++ {
		if m.Normal(i) != (math.Vec3{Y: 1}) {
			t.Fatalf("normal %d = %v, want (0, 1, 0)", i, m.Normal(i))
		}
	}
}
