package bounding

import (
	"errors"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// ErrParallelPlanes is returned when two planes have no intersection line.
var ErrParallelPlanes = errors.New("bounding: planes are parallel")

// ErrParallelRay is returned when a ray never crosses a plane.
var ErrParallelRay = errors.New("bounding: ray is parallel to plane")

// parallelEpsilon bounds the squared cross product (or the dot product)
// below which two directions are treated as parallel.
const parallelEpsilon = 1e-12

// PlaneIntersection classifies a volume against a plane.
type PlaneIntersection int

const (
	// PlaneFront means the volume lies entirely on the side the normal points to.
	PlaneFront PlaneIntersection = iota
	// PlaneBack means the volume lies entirely inside the half-space.
	PlaneBack
	// PlaneIntersecting means the plane cuts through the volume.
	PlaneIntersecting
)

func (pi PlaneIntersection) String() string {
	switch pi {
	case PlaneFront:
		return "Front"
	case PlaneBack:
		return "Back"
	case PlaneIntersecting:
		return "Intersecting"
	}
	return "Unknown"
}

// Plane represents the half-space Normal·P + Distance <= 0.
// Normal must be unit length before the plane is used in containment tests
// or frustum assembly; construct raw and call Normalize.
type Plane struct {
	Normal   mgl64.Vec3
	Distance float64
}

// Normalize returns the plane scaled so its normal has unit length. The
// represented half-space is unchanged. Degenerate if Normal is zero; the
// caller must not normalize a zero plane.
func (p Plane) Normalize() Plane {
	invLen := 1 / p.Normal.Len()
	return Plane{
		Normal:   p.Normal.Mul(invLen),
		Distance: p.Distance * invLen,
	}
}

// DotCoordinate returns Normal·point + Distance, the signed distance from
// the plane for a unit normal. Negative values are inside the half-space.
func (p Plane) DotCoordinate(point mgl64.Vec3) float64 {
	return p.Normal.Dot(point) + p.Distance
}

// ClassifySphere locates a sphere relative to the plane.
func (p Plane) ClassifySphere(s Sphere) PlaneIntersection {
	d := p.DotCoordinate(s.Center)
	switch {
	case d > s.Radius:
		return PlaneFront
	case d < -s.Radius:
		return PlaneBack
	}
	return PlaneIntersecting
}

// ClassifyBox locates an axis-aligned box relative to the plane by testing
// the two corners extreme along the normal.
func (p Plane) ClassifyBox(b Box) PlaneIntersection {
	// near: corner deepest inside the half-space; far: corner furthest out.
	var near, far mgl64.Vec3
	for i := 0; i < 3; i++ {
		if p.Normal[i] >= 0 {
			near[i] = b.Min[i]
			far[i] = b.Max[i]
		} else {
			near[i] = b.Max[i]
			far[i] = b.Min[i]
		}
	}

	if p.DotCoordinate(near) > 0 {
		return PlaneFront
	}
	if p.DotCoordinate(far) < 0 {
		return PlaneBack
	}
	return PlaneIntersecting
}

// IntersectionLine computes the line where two non-parallel planes meet.
// The direction is cross(a.Normal, b.Normal); the position is the solution
// of the two plane equations closest to the origin along that direction.
// Both planes must be normalized. Returns ErrParallelPlanes when the planes
// share a normal direction.
func IntersectionLine(a, b Plane) (Ray, error) {
	direction := a.Normal.Cross(b.Normal)
	lenSq := direction.LenSqr()
	// Negated comparison so NaN normals (zero plane fed through Normalize)
	// are rejected rather than propagated.
	if !(lenSq > parallelEpsilon) {
		return Ray{}, ErrParallelPlanes
	}

	position := b.Normal.Mul(-a.Distance).
		Add(a.Normal.Mul(b.Distance)).
		Cross(direction).
		Mul(1 / lenSq)

	return Ray{Position: position, Direction: direction}, nil
}

// IntersectionPoint computes where a ray crosses a plane. Returns
// ErrParallelRay when the ray direction lies in the plane.
func IntersectionPoint(p Plane, r Ray) (mgl64.Vec3, error) {
	denom := p.Normal.Dot(r.Direction)
	if !(math.Abs(denom) > parallelEpsilon) {
		return mgl64.Vec3{}, ErrParallelRay
	}

	t := -(p.Normal.Dot(r.Position) + p.Distance) / denom
	return r.Position.Add(r.Direction.Mul(t)), nil
}
