package solar

import (
	"time"

	"github.com/pengfeiw/solar-system/internal/engine/camera"
	"github.com/pengfeiw/solar-system/internal/engine/geometry"
	"github.com/pengfeiw/solar-system/pkg/math"
)

// FrameState is everything that changes between frames. The frame loop owns
// the only copy and replaces it with Step.
type FrameState struct {
	Count   uint64
	Elapsed time.Duration
	Dolly   camera.DollyState
}

// Step advances s by one frame at the given elapsed session time.
func Step(s FrameState, elapsed time.Duration, d camera.Dolly) FrameState {
	return FrameState{
		Count:   s.Count + 1,
		Elapsed: elapsed,
		Dolly:   d.Advance(s.Dolly),
	}
}

// RingPose is the ring model matrix of one planet. Present is false for a
// planet without a ring; the entry still occupies the planet's index.
type RingPose struct {
	Model   math.Mat4
	Present bool
}

// Poses holds every model matrix for one frame.
// Planets and Rings are index-aligned with Scene.Planets.
type Poses struct {
	Sun     math.Mat4
	Planets []math.Mat4
	Rings   []RingPose
}

// Poses computes the model matrices of all bodies at elapsed.
func (s *Scene) Poses(c Composer, elapsed time.Duration) Poses {
	p := Poses{
		Sun:     c.BodyTransform(s.Sun, 0, elapsed),
		Planets: make([]math.Mat4, len(s.Planets)),
		Rings:   make([]RingPose, len(s.Planets)),
	}
	for i, b := range s.Planets {
		p.Planets[i] = c.BodyTransform(b, s.Phases[i], elapsed)
		p.Rings[i].Model, p.Rings[i].Present = c.RingTransform(b, s.Phases[i], elapsed)
	}
	return p
}

// Meshes is the geometry of a scene, generated once at startup.
// Planets and Rings are index-aligned with Scene.Planets; a planet without a
// ring has an empty mesh in Rings.
type Meshes struct {
	Sun     geometry.Mesh
	Planets []geometry.Mesh
	Rings   []geometry.Mesh
	Orbit   geometry.Mesh
}

// BuildMeshes generates every mesh of the scene at the given sphere
// subdivision.
func (s *Scene) BuildMeshes(horizontal, vertical int) Meshes {
	m := Meshes{
		Sun:     geometry.Sphere(horizontal, vertical, s.Sun.Radius()),
		Planets: make([]geometry.Mesh, len(s.Planets)),
		Rings:   make([]geometry.Mesh, len(s.Planets)),
		Orbit:   geometry.PathMesh(geometry.OrbitPath()),
	}
	for i, b := range s.Planets {
		m.Planets[i] = geometry.Sphere(horizontal, vertical, b.Radius())
		if b.Ring != nil {
			m.Rings[i] = geometry.Ring(b.Ring.OuterRadius, b.Ring.InnerRadius).
				WithConstantNormal(geometry.RingNormal)
		}
	}
	return m
}
