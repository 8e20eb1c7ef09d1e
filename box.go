package bounding

import "github.com/go-gl/mathgl/mgl64"

// Box is an axis-aligned bounding box in world space.
// Invariant: Min <= Max componentwise.
type Box struct {
	Min mgl64.Vec3
	Max mgl64.Vec3
}

// NewBoxFromPoints returns the smallest box containing every point.
// Returns a zero box when points is empty.
func NewBoxFromPoints(points []mgl64.Vec3) Box {
	if len(points) == 0 {
		return Box{}
	}

	b := Box{Min: points[0], Max: points[0]}
	for _, p := range points[1:] {
		for i := 0; i < 3; i++ {
			b.Min[i] = min(b.Min[i], p[i])
			b.Max[i] = max(b.Max[i], p[i])
		}
	}
	return b
}

// Corners returns the 8 corners, enumerated by sign combination: bit 0
// selects Max.X, bit 1 Max.Y, bit 2 Max.Z.
func (b Box) Corners() [8]mgl64.Vec3 {
	var corners [8]mgl64.Vec3
	for i := range corners {
		corner := b.Min
		if i&1 != 0 {
			corner[0] = b.Max[0]
		}
		if i&2 != 0 {
			corner[1] = b.Max[1]
		}
		if i&4 != 0 {
			corner[2] = b.Max[2]
		}
		corners[i] = corner
	}
	return corners
}

// Center returns the box midpoint.
func (b Box) Center() mgl64.Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

// SupportMapping returns the corner extreme along direction: the Max
// component where the direction component is positive, Min otherwise.
func (b Box) SupportMapping(direction mgl64.Vec3) mgl64.Vec3 {
	support := b.Min
	for i := 0; i < 3; i++ {
		if direction[i] > 0 {
			support[i] = b.Max[i]
		}
	}
	return support
}

// ContainsPoint checks if a point is inside the box.
func (b Box) ContainsPoint(point mgl64.Vec3) bool {
	return point.X() >= b.Min.X() && point.X() <= b.Max.X() &&
		point.Y() >= b.Min.Y() && point.Y() <= b.Max.Y() &&
		point.Z() >= b.Min.Z() && point.Z() <= b.Max.Z()
}

// Intersects checks if two boxes overlap.
func (b Box) Intersects(other Box) bool {
	// Boxes overlap if they overlap on all three axes
	return b.Max.X() >= other.Min.X() && b.Min.X() <= other.Max.X() &&
		b.Max.Y() >= other.Min.Y() && b.Min.Y() <= other.Max.Y() &&
		b.Max.Z() >= other.Min.Z() && b.Min.Z() <= other.Max.Z()
}

// IntersectsSphere checks the sphere against the closest point of the box
// to its center.
func (b Box) IntersectsSphere(s Sphere) bool {
	var closest mgl64.Vec3
	for i := 0; i < 3; i++ {
		closest[i] = mgl64.Clamp(s.Center[i], b.Min[i], b.Max[i])
	}
	return closest.Sub(s.Center).LenSqr() <= s.Radius*s.Radius
}
