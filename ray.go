package bounding

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Ray is a line through Position along Direction. Direction does not need
// to be unit length; parametric distances returned by intersection queries
// are in units of its length.
type Ray struct {
	Position  mgl64.Vec3
	Direction mgl64.Vec3
}

// At returns the point at parametric distance t along the ray.
func (r Ray) At(t float64) mgl64.Vec3 {
	return r.Position.Add(r.Direction.Mul(t))
}

// IntersectsBox performs a slab test against an axis-aligned box. It returns
// the entry distance (clamped to zero when the ray starts inside) and whether
// the ray hits the box at t >= 0.
func (r Ray) IntersectsBox(b Box) (float64, bool) {
	tMin := math.Inf(-1)
	tMax := math.Inf(1)

	for i := 0; i < 3; i++ {
		if math.Abs(r.Direction[i]) < parallelEpsilon {
			// Parallel to this slab: must already be inside it.
			if r.Position[i] < b.Min[i] || r.Position[i] > b.Max[i] {
				return 0, false
			}
			continue
		}

		inv := 1 / r.Direction[i]
		tNear := (b.Min[i] - r.Position[i]) * inv
		tFar := (b.Max[i] - r.Position[i]) * inv
		if tNear > tFar {
			tNear, tFar = tFar, tNear
		}

		tMin = math.Max(tMin, tNear)
		tMax = math.Min(tMax, tFar)
		if tMin > tMax {
			return 0, false
		}
	}

	if tMax < 0 {
		return 0, false // box is behind the ray
	}
	return math.Max(tMin, 0), true
}
