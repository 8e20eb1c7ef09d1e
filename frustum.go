// Package bounding provides 3D bounding volumes (frustum, axis-aligned box,
// sphere) and convex intersection queries between them.
//
// The frustum is the structural backbone: a 4×4 clip transform is expanded
// into six half-space planes and eight corner points, and all frustum
// queries run over those. Pairwise intersection of frustums, boxes and
// spheres goes through a shared GJK support-mapping loop (see Intersector
// and the gjk subpackage); containment is a tri-state refinement built from
// boolean intersection plus per-corner half-space tests.
//
// All types are plain values computed synchronously. A Frustum is immutable
// between SetMatrix calls; callers mutating a shared frustum concurrently
// with readers must provide their own synchronization.
package bounding

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// ErrDegenerateTransform is returned when a transform produces parallel
// opposite frustum planes, which cannot happen for a valid projection.
var ErrDegenerateTransform = errors.New("bounding: degenerate frustum transform")

// Frustum plane indices, in derivation order.
const (
	PlaneNear = iota
	PlaneFar
	PlaneLeft
	PlaneRight
	PlaneTop
	PlaneBottom
)

// Containment classifies how one volume relates to another.
type Containment int

const (
	// Disjoint means the volumes do not touch.
	Disjoint Containment = iota
	// Intersects means the volumes overlap without full enclosure.
	Intersects
	// Contains means the first volume fully encloses the second.
	Contains
)

func (c Containment) String() string {
	switch c {
	case Disjoint:
		return "Disjoint"
	case Intersects:
		return "Intersects"
	case Contains:
		return "Contains"
	}
	return "Unknown"
}

// Frustum is the convex volume carved out of space by a view×projection
// transform: six inward-facing half-spaces and their eight corner points.
// Planes and corners are recomputed wholesale by SetMatrix and are always
// mutually consistent - every corner lies on exactly three planes.
//
// The zero value is unusable; construct with New. Accessors return copies,
// never aliases of internal state.
type Frustum struct {
	matrix  mgl64.Mat4
	planes  [6]Plane
	corners [8]mgl64.Vec3
	ready   bool
}

// New builds a frustum from a combined view×projection transform in the
// convention documented on PerspectiveFOV and LookAt (row-vector, depth in
// [0, 1]). Returns ErrDegenerateTransform when the transform is not a valid
// projection.
func New(transform mgl64.Mat4) (*Frustum, error) {
	f := &Frustum{}
	if err := f.SetMatrix(transform); err != nil {
		return nil, err
	}
	return f, nil
}

// SetMatrix replaces the transform and rebuilds all planes and corners.
// On error the frustum keeps its previous state.
func (f *Frustum) SetMatrix(transform mgl64.Mat4) error {
	planes := extractPlanes(transform)
	corners, err := assembleCorners(&planes)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDegenerateTransform, err)
	}

	f.matrix = transform
	f.planes = planes
	f.corners = corners
	f.ready = true
	return nil
}

// Matrix returns the transform the frustum was built from.
func (f *Frustum) Matrix() mgl64.Mat4 {
	f.mustBeReady()
	return f.matrix
}

// Planes returns the six planes indexed by PlaneNear..PlaneBottom.
// Normals point out of the frustum; a point is inside a plane when its
// DotCoordinate is <= 0.
func (f *Frustum) Planes() [6]Plane {
	f.mustBeReady()
	return f.planes
}

// Corners returns the eight corner points. Corners 0-3 are the near face,
// 4-7 the far face; each face runs top-left, top-right, bottom-right,
// bottom-left as seen from inside.
func (f *Frustum) Corners() [8]mgl64.Vec3 {
	f.mustBeReady()
	return f.corners
}

// SupportMapping returns the corner extreme along direction. Ties go to the
// first corner reaching the maximum, which is deterministic because the
// corner order is fixed.
func (f *Frustum) SupportMapping(direction mgl64.Vec3) mgl64.Vec3 {
	f.mustBeReady()

	best := 0
	bestDot := f.corners[0].Dot(direction)
	for i := 1; i < len(f.corners); i++ {
		if dot := f.corners[i].Dot(direction); dot > bestDot {
			best = i
			bestDot = dot
		}
	}
	return f.corners[best]
}

// IntersectsBox reports whether the frustum and an axis-aligned box overlap.
func (f *Frustum) IntersectsBox(b Box) bool {
	f.mustBeReady()

	seed := f.corners[0].Sub(b.Min)
	if seed.LenSqr() < DefaultIntersectionEpsilon {
		seed = f.corners[0].Sub(b.Max)
	}
	return defaultIntersector.Intersects(f, b, seed)
}

// IntersectsFrustum reports whether two frustums overlap.
func (f *Frustum) IntersectsFrustum(other *Frustum) bool {
	f.mustBeReady()
	other.mustBeReady()

	seed := f.corners[0].Sub(other.corners[0])
	if seed.LenSqr() < DefaultIntersectionEpsilon {
		// Same leading corner (e.g. identical frustums): any other corner
		// difference is a usable non-zero seed.
		seed = f.corners[0].Sub(other.corners[1])
	}
	return defaultIntersector.Intersects(f, other, seed)
}

// IntersectsSphere reports whether the frustum and a sphere overlap.
func (f *Frustum) IntersectsSphere(s Sphere) bool {
	f.mustBeReady()

	seed := f.corners[0].Sub(s.Center)
	return defaultIntersector.Intersects(f, s, seed)
}

// ContainsPoint classifies a point against the frustum. Points on the
// boundary (within the intersection epsilon) count as contained.
func (f *Frustum) ContainsPoint(point mgl64.Vec3) Containment {
	f.mustBeReady()

	for _, p := range f.planes {
		if p.DotCoordinate(point) > DefaultIntersectionEpsilon {
			return Disjoint
		}
	}
	return Contains
}

// ContainsBox classifies a box against the frustum: Contains when every
// corner of the box is inside every plane, Disjoint when the volumes do not
// overlap at all.
func (f *Frustum) ContainsBox(b Box) Containment {
	f.mustBeReady()

	if !f.IntersectsBox(b) {
		return Disjoint
	}
	for _, corner := range b.Corners() {
		if f.ContainsPoint(corner) == Disjoint {
			return Intersects
		}
	}
	return Contains
}

// ContainsFrustum classifies another frustum against this one.
func (f *Frustum) ContainsFrustum(other *Frustum) Containment {
	f.mustBeReady()
	other.mustBeReady()

	if !f.IntersectsFrustum(other) {
		return Disjoint
	}
	for _, corner := range other.corners {
		if f.ContainsPoint(corner) == Disjoint {
			return Intersects
		}
	}
	return Contains
}

// ContainsSphere classifies a sphere against the frustum using per-plane
// signed distances: outside any plane by more than the radius is Disjoint,
// inside every plane by more than the radius is Contains.
func (f *Frustum) ContainsSphere(s Sphere) Containment {
	f.mustBeReady()

	inside := 0
	for _, p := range f.planes {
		d := p.DotCoordinate(s.Center)
		if d > s.Radius {
			return Disjoint
		}
		if d < -s.Radius {
			inside++
		}
	}

	if inside == len(f.planes) {
		return Contains
	}
	return Intersects
}

func (f *Frustum) mustBeReady() {
	if !f.ready {
		panic("bounding: frustum used before construction; use New or SetMatrix")
	}
}

// extractPlanes derives the six clip planes from the transform's rows and
// columns (Gribb/Hartmann extraction for the row-vector, zero-to-one depth
// convention), normals pointing out of the frustum. Each plane is
// normalized so corner assembly and distance tests can rely on unit
// normals.
func extractPlanes(m mgl64.Mat4) [6]Plane {
	var planes [6]Plane

	planes[PlaneNear] = Plane{
		Normal:   mgl64.Vec3{-m.At(0, 2), -m.At(1, 2), -m.At(2, 2)},
		Distance: -m.At(3, 2),
	}
	planes[PlaneFar] = Plane{
		Normal:   mgl64.Vec3{m.At(0, 2) - m.At(0, 3), m.At(1, 2) - m.At(1, 3), m.At(2, 2) - m.At(2, 3)},
		Distance: m.At(3, 2) - m.At(3, 3),
	}
	planes[PlaneLeft] = Plane{
		Normal:   mgl64.Vec3{-m.At(0, 3) - m.At(0, 0), -m.At(1, 3) - m.At(1, 0), -m.At(2, 3) - m.At(2, 0)},
		Distance: -m.At(3, 3) - m.At(3, 0),
	}
	planes[PlaneRight] = Plane{
		Normal:   mgl64.Vec3{m.At(0, 0) - m.At(0, 3), m.At(1, 0) - m.At(1, 3), m.At(2, 0) - m.At(2, 3)},
		Distance: m.At(3, 0) - m.At(3, 3),
	}
	planes[PlaneTop] = Plane{
		Normal:   mgl64.Vec3{m.At(0, 1) - m.At(0, 3), m.At(1, 1) - m.At(1, 3), m.At(2, 1) - m.At(2, 3)},
		Distance: m.At(3, 1) - m.At(3, 3),
	}
	planes[PlaneBottom] = Plane{
		Normal:   mgl64.Vec3{-m.At(0, 3) - m.At(0, 1), -m.At(1, 3) - m.At(1, 1), -m.At(2, 3) - m.At(2, 1)},
		Distance: -m.At(3, 3) - m.At(3, 1),
	}

	for i := range planes {
		planes[i] = planes[i].Normalize()
	}
	return planes
}

// assembleCorners intersects plane triples into the eight corners. The
// corner order is fixed: 0-3 near face, 4-7 far face, and later code
// (support mapping, containment) depends on it.
func assembleCorners(planes *[6]Plane) ([8]mgl64.Vec3, error) {
	var corners [8]mgl64.Vec3

	edges := [4]struct {
		a, b     int // planes meeting at a vertical frustum edge
		top, bot int // corner indices filled from that edge
	}{
		{PlaneNear, PlaneLeft, 0, 3},
		{PlaneRight, PlaneNear, 1, 2},
		{PlaneLeft, PlaneFar, 4, 7},
		{PlaneFar, PlaneRight, 5, 6},
	}

	for _, e := range edges {
		line, err := IntersectionLine(planes[e.a], planes[e.b])
		if err != nil {
			return corners, err
		}

		top, err := IntersectionPoint(planes[PlaneTop], line)
		if err != nil {
			return corners, err
		}
		bottom, err := IntersectionPoint(planes[PlaneBottom], line)
		if err != nil {
			return corners, err
		}

		corners[e.top] = top
		corners[e.bot] = bottom
	}

	return corners, nil
}
