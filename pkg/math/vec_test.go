package math

import (
	"testing"
)

func TestVec3Cross(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}
	got := x.Cross(y)
	want := Vec3{0, 0, 1}
	if got != want {
		t.Errorf("Vec3.Cross() = %v, want %v", got, want)
	}
}

func TestVec3Normalize(t *testing.T) {
	n := Vec3{3, 4, 12}.Normalize()
	l := n.Length()
	if l < 0.9999 || l > 1.0001 {
		t.Errorf("Vec3.Normalize().Length() = %v, want ~1", l)
	}
	if (Vec3{}).Normalize() != (Vec3{}) {
		t.Error("normalizing the zero vector should return the zero vector")
	}
}

func TestVec3Distance(t *testing.T) {
	got := Vec3{42, 0, 0}.Distance(Vec3{})
	if got != 42 {
		t.Errorf("Vec3.Distance() = %v, want 42", got)
	}
}

func TestVec3Append(t *testing.T) {
	got := Vec3{1, 2, 3}.Append([]float32{0})
	want := []float32{0, 1, 2, 3}
	if len(got) != len(want) {
		t.Fatalf("Append length = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Append[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}
