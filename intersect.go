package bounding

import (
	"math"

	"github.com/akmonengine/bounding/gjk"
	"github.com/go-gl/mathgl/mgl64"
)

const (
	// DefaultIntersectionEpsilon is the relative-improvement floor of the
	// intersection loop: when an iteration shrinks the squared distance to
	// the origin by less than this fraction, convergence has stalled and the
	// shapes are separated. It also detects a near-zero seed direction.
	DefaultIntersectionEpsilon = 1e-5

	// DefaultGJKScale converts the longest simplex vertex length into the
	// squared distance below which the simplex is treated as having reached
	// the origin. Scaling by the shape size avoids a fixed epsilon that is
	// too strict for large shapes and too loose for small ones.
	DefaultGJKScale = 4e-5

	// DefaultMaxIterations bounds the support loop. GJK typically converges
	// in well under ten iterations; the cap only guards against cycling on
	// degenerate floating-point input.
	DefaultMaxIterations = 32
)

// SupportShape is the capability the intersection loop queries: the shape's
// extreme point along a direction. Implementations must be pure functions of
// shape state. Frustum, Box and Sphere all provide it.
type SupportShape interface {
	SupportMapping(direction mgl64.Vec3) mgl64.Vec3
}

// Intersector runs the GJK support loop between two convex shapes. The zero
// value is unusable; start from NewIntersector and adjust fields to tune
// sensitivity.
type Intersector struct {
	// Epsilon is the relative-progress floor declaring separation.
	Epsilon float64
	// Scale maps the simplex extent to the "reached the origin" threshold.
	Scale float64
	// MaxIterations caps the loop against floating-point cycling.
	MaxIterations int
}

// NewIntersector returns an intersector with the default thresholds.
func NewIntersector() Intersector {
	return Intersector{
		Epsilon:       DefaultIntersectionEpsilon,
		Scale:         DefaultGJKScale,
		MaxIterations: DefaultMaxIterations,
	}
}

var defaultIntersector = NewIntersector()

// Intersects reports whether two convex shapes overlap.
//
// seed is the initial search direction, normally a vertex of a minus a
// vertex of b; a near-zero seed is replaced with a fixed axis so the sphere
// support mapping is never queried with a zero direction.
//
// The loop has three exits: a support point failing to pass the origin is a
// separating-axis witness (no intersection), stalled convergence means the
// origin was never enclosed (no intersection), and a full simplex or a
// closest point within Scale of the origin means intersection.
func (it Intersector) Intersects(a, b SupportShape, seed mgl64.Vec3) bool {
	solver := gjk.SolverPool.Get().(*gjk.Solver)
	defer gjk.SolverPool.Put(solver)
	solver.Reset()

	d := seed
	if d.LenSqr() < it.Epsilon {
		d = mgl64.Vec3{1, 0, 0}
	}

	prevDistSq := math.MaxFloat64
	for i := 0; i < it.MaxIterations; i++ {
		w := a.SupportMapping(d.Mul(-1)).Sub(b.SupportMapping(d))

		if d.Dot(w) > 0 {
			return false // separating axis found
		}

		solver.AddSupportPoint(w)
		d = solver.ClosestPoint()
		distSq := d.LenSqr()

		if prevDistSq-distSq <= it.Epsilon*prevDistSq {
			return false // no more progress and the origin was never enclosed
		}

		if solver.FullSimplex() || distSq < it.Scale*solver.MaxLengthSquared() {
			return true
		}
		if distSq == 0 {
			return true // simplex touches the origin exactly
		}

		prevDistSq = distSq
	}

	// Cap reached without a verdict: only possible on degenerate input.
	// Without an enclosing simplex there is no evidence of intersection.
	return false
}
