package gjk

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func nearVec(a, b mgl64.Vec3, epsilon float64) bool {
	return a.Sub(b).Len() < epsilon
}

func TestSolver_SinglePoint(t *testing.T) {
	solver := &Solver{}
	solver.Reset()

	point := mgl64.Vec3{2, 1, 0}
	solver.AddSupportPoint(point)

	if got := solver.ClosestPoint(); got != point {
		t.Errorf("Expected closest point %v, got %v", point, got)
	}
	if got := solver.MaxLengthSquared(); got != 5 {
		t.Errorf("Expected max length squared 5, got %v", got)
	}
	if solver.FullSimplex() {
		t.Error("Single point must not be a full simplex")
	}
}

func TestSolver_Segment(t *testing.T) {
	t.Run("closest point interior to segment", func(t *testing.T) {
		solver := &Solver{}
		solver.Reset()

		solver.AddSupportPoint(mgl64.Vec3{2, 1, 0})
		solver.AddSupportPoint(mgl64.Vec3{2, -1, 0})

		expected := mgl64.Vec3{2, 0, 0}
		if got := solver.ClosestPoint(); !nearVec(got, expected, 1e-12) {
			t.Errorf("Expected closest point %v, got %v", expected, got)
		}
		if got := solver.MaxLengthSquared(); got != 5 {
			t.Errorf("Expected max length squared 5, got %v", got)
		}
	})

	t.Run("collinear points collapse to the nearer vertex", func(t *testing.T) {
		solver := &Solver{}
		solver.Reset()

		solver.AddSupportPoint(mgl64.Vec3{5, 0, 0})
		collapsed := solver.AddSupportPoint(mgl64.Vec3{1, 0, 0})

		if !collapsed {
			t.Error("Expected simplex to collapse to the new vertex")
		}
		expected := mgl64.Vec3{1, 0, 0}
		if got := solver.ClosestPoint(); !nearVec(got, expected, 1e-12) {
			t.Errorf("Expected closest point %v, got %v", expected, got)
		}
		if got := solver.MaxLengthSquared(); got != 1 {
			t.Errorf("Expected max length squared 1, got %v", got)
		}
	})
}

func TestSolver_Triangle(t *testing.T) {
	solver := &Solver{}
	solver.Reset()

	// Triangle in the plane x=1 whose centroid is the projection of the origin.
	solver.AddSupportPoint(mgl64.Vec3{1, 1, 1})
	solver.AddSupportPoint(mgl64.Vec3{1, -1, 1})
	solver.AddSupportPoint(mgl64.Vec3{1, 0, -2})

	got := solver.ClosestPoint()
	expected := mgl64.Vec3{1, 0, 0}
	if !nearVec(got, expected, 1e-9) {
		t.Errorf("Expected closest point %v, got %v", expected, got)
	}
	if solver.FullSimplex() {
		t.Error("Triangle must not be a full simplex")
	}
}

func TestSolver_TetrahedronEnclosesOrigin(t *testing.T) {
	solver := &Solver{}
	solver.Reset()

	// Regular tetrahedron centered on the origin.
	solver.AddSupportPoint(mgl64.Vec3{1, 1, 1})
	solver.AddSupportPoint(mgl64.Vec3{1, -1, -1})
	solver.AddSupportPoint(mgl64.Vec3{-1, 1, -1})
	solver.AddSupportPoint(mgl64.Vec3{-1, -1, 1})

	if !solver.FullSimplex() {
		t.Error("Expected full simplex for tetrahedron enclosing the origin")
	}
	if got := solver.ClosestPoint(); got.Len() > 1e-9 {
		t.Errorf("Expected closest point at the origin, got %v", got)
	}
	if got := solver.MaxLengthSquared(); math.Abs(got-3) > 1e-12 {
		t.Errorf("Expected max length squared 3, got %v", got)
	}
}

func TestSolver_ReducesAwayNonContributingVertices(t *testing.T) {
	solver := &Solver{}
	solver.Reset()

	// The first vertex is far from the origin; after the closer pair arrives
	// the closest point must lie on the near edge, unaffected by the far one.
	solver.AddSupportPoint(mgl64.Vec3{10, 10, 0})
	solver.AddSupportPoint(mgl64.Vec3{1, 1, 0})
	solver.AddSupportPoint(mgl64.Vec3{1, -1, 0})

	got := solver.ClosestPoint()
	expected := mgl64.Vec3{1, 0, 0}
	if !nearVec(got, expected, 1e-9) {
		t.Errorf("Expected closest point %v, got %v", expected, got)
	}
	if got := solver.MaxLengthSquared(); got > 2+1e-12 {
		t.Errorf("Expected discarded vertex to drop out of the scale reference, got %v", got)
	}
}

func TestSolver_Reset(t *testing.T) {
	solver := &Solver{}
	solver.Reset()

	solver.AddSupportPoint(mgl64.Vec3{1, 1, 1})
	solver.AddSupportPoint(mgl64.Vec3{1, -1, -1})
	solver.AddSupportPoint(mgl64.Vec3{-1, 1, -1})
	solver.AddSupportPoint(mgl64.Vec3{-1, -1, 1})
	solver.Reset()

	if solver.FullSimplex() {
		t.Error("Reset must clear the full-simplex state")
	}
	if got := solver.MaxLengthSquared(); got != 0 {
		t.Errorf("Reset must clear the scale reference, got %v", got)
	}

	// A reset solver must behave like a fresh one.
	point := mgl64.Vec3{3, 0, 0}
	solver.AddSupportPoint(point)
	if got := solver.ClosestPoint(); got != point {
		t.Errorf("Expected closest point %v after reset, got %v", point, got)
	}
}

func TestSolverPool(t *testing.T) {
	solver := SolverPool.Get().(*Solver)
	solver.Reset()

	solver.AddSupportPoint(mgl64.Vec3{1, 0, 0})
	if got := solver.ClosestPoint(); got != (mgl64.Vec3{1, 0, 0}) {
		t.Errorf("Pooled solver misbehaved, got closest point %v", got)
	}

	SolverPool.Put(solver)
}
