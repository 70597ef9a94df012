package math

import (
	"math"
	"testing"
)

func TestIdentity(t *testing.T) {
	m := Identity()
	if m[0] != 1 || m[5] != 1 || m[10] != 1 || m[15] != 1 {
		t.Error("Identity diagonal should be 1")
	}
	if m[1] != 0 || m[4] != 0 {
		t.Error("Identity off-diagonal should be 0")
	}
}

func TestMulIdentity(t *testing.T) {
	m := Translate(Vec3{1, 2, 3})
	result := m.Mul(Identity())
	if result != m {
		t.Errorf("M * I should equal M: got %v, want %v", result, m)
	}
	result = Identity().Mul(m)
	if result != m {
		t.Errorf("I * M should equal M: got %v, want %v", result, m)
	}
}

func TestTranslate(t *testing.T) {
	m := Translate(Vec3{5, 10, 15})
	if m[12] != 5 || m[13] != 10 || m[14] != 15 {
		t.Errorf("Translate: got (%f, %f, %f), want (5, 10, 15)", m[12], m[13], m[14])
	}
}

func TestTransformPointScale(t *testing.T) {
	got := Scale(2, 2, 2).TransformPoint(Vec3{1, 2, 3})
	want := Vec3{2, 4, 6}
	if got != want {
		t.Errorf("TransformPoint with scale: got %v, want %v", got, want)
	}
}

func TestRotateZeroIsExactIdentity(t *testing.T) {
	for name, m := range map[string]Mat4{
		"x": RotateX(0),
		"y": RotateY(0),
		"z": RotateZ(0),
	} {
		if m != Identity() {
			t.Errorf("Rotate%s(0) = %v, want exact identity", name, m)
		}
	}
}

func TestRotations90(t *testing.T) {
	half := float32(math.Pi / 2)
	tests := []struct {
		name string
		m    Mat4
		in   Vec3
		want Vec3
	}{
		{"z turns x to y", RotateZ(half), Vec3{1, 0, 0}, Vec3{0, 1, 0}},
		{"y turns x to -z", RotateY(half), Vec3{1, 0, 0}, Vec3{0, 0, -1}},
		{"x turns y to z", RotateX(half), Vec3{0, 1, 0}, Vec3{0, 0, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.m.TransformPoint(tt.in)
			if got.Distance(tt.want) > 1e-6 {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMulOrderAppliesRightFirst(t *testing.T) {
	// Rotate then translate: the point is rotated in local space first.
	m := Translate(Vec3{10, 0, 0}).Mul(RotateZ(float32(math.Pi / 2)))
	got := m.TransformPoint(Vec3{1, 0, 0})
	want := Vec3{10, 1, 0}
	if got.Distance(want) > 1e-6 {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestTransformDirectionIgnoresTranslation(t *testing.T) {
	got := Translate(Vec3{4, 5, 6}).TransformDirection(Vec3{0, 1, 0})
	if got != (Vec3{0, 1, 0}) {
		t.Errorf("got %v, want (0, 1, 0)", got)
	}
}

func TestPerspective(t *testing.T) {
	m := Perspective(float32(math.Pi/4), 1, 0.1, 1000)
	if m[0] == 0 || m[5] == 0 {
		t.Error("Perspective should have non-zero elements")
	}
	if m[15] != 0 {
		t.Errorf("Perspective [15] should be 0, got %f", m[15])
	}
	if m[11] != -1 {
		t.Errorf("Perspective [11] should be -1, got %f", m[11])
	}
}

func TestLookAtMapsEyeToOrigin(t *testing.T) {
	eye := Vec3{60, -250, 90}
	m := LookAt(eye, Vec3{}, Vec3{0, 1, 0})
	got := m.TransformPoint(eye)
	if got.Length() > 1e-3 {
		t.Errorf("eye in view space: got %v, want origin", got)
	}
	// The target lies straight ahead on -Z.
	target := m.TransformPoint(Vec3{})
	if abs(target.X) > 1e-3 || abs(target.Y) > 1e-3 || target.Z >= 0 {
		t.Errorf("target in view space: got %v, want (0, 0, -d)", target)
	}
}

func TestApproxEqual(t *testing.T) {
	a := Identity()
	b := Identity()
	b[12] = 1e-5
	if !a.ApproxEqual(b, 1e-4) {
		t.Error("expected matrices to be approximately equal")
	}
	if a.ApproxEqual(b, 1e-6) {
		t.Error("expected matrices to differ at tight tolerance")
	}
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
