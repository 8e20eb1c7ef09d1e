package bounding

import "github.com/go-gl/mathgl/mgl64"

// Sphere is a bounding sphere in world space. Radius must be >= 0.
type Sphere struct {
	Center mgl64.Vec3
	Radius float64
}

// SupportMapping returns the surface point extreme along direction.
// direction must be non-zero.
func (s Sphere) SupportMapping(direction mgl64.Vec3) mgl64.Vec3 {
	return s.Center.Add(direction.Normalize().Mul(s.Radius))
}

// ContainsPoint checks if a point is inside the sphere.
func (s Sphere) ContainsPoint(point mgl64.Vec3) bool {
	return point.Sub(s.Center).LenSqr() <= s.Radius*s.Radius
}

// Intersects checks if two spheres overlap.
func (s Sphere) Intersects(other Sphere) bool {
	sum := s.Radius + other.Radius
	return other.Center.Sub(s.Center).LenSqr() <= sum*sum
}

// IntersectsBox checks if the sphere overlaps an axis-aligned box.
func (s Sphere) IntersectsBox(b Box) bool {
	return b.IntersectsSphere(s)
}

// ContainsBox classifies a box against the sphere: Contains when every
// corner is inside, Disjoint when the volumes do not overlap at all.
func (s Sphere) ContainsBox(b Box) Containment {
	if !s.IntersectsBox(b) {
		return Disjoint
	}
	for _, corner := range b.Corners() {
		if !s.ContainsPoint(corner) {
			return Intersects
		}
	}
	return Contains
}
