// Package gjk implements the distance sub-problem of the Gilbert-Johnson-Keerthi
// (GJK) algorithm for convex shape proximity queries.
//
// The Solver maintains a simplex of up to 4 vertices in Minkowski-difference
// space. Each call to AddSupportPoint inserts a new support point, then runs
// Johnson's sub-algorithm to reduce the simplex to the smallest feature
// (point, segment, triangle or tetrahedron) containing the point closest to
// the origin. The caller drives the outer loop: it picks search directions
// from ClosestPoint and declares intersection when FullSimplex holds or the
// closest point has effectively reached the origin.
//
// Johnson's sub-algorithm is implemented with the bit-mask determinant table:
// each subset of the 4 vertex slots is a 4-bit mask, and the cofactors Δ of
// every subset are filled incrementally as vertices arrive. The accepted
// sub-simplex is the first subset containing the new vertex whose cofactors
// are positive for every member and non-positive for every excluded vertex.
//
// References:
//   - Gilbert, Johnson, Keerthi: "A Fast Procedure for Computing the Distance
//     Between Complex Objects in Three-Dimensional Space" (1988)
//   - Van den Bergen: "Collision Detection in Interactive 3D Environments" (2003)
package gjk

import (
	"sync"

	"github.com/go-gl/mathgl/mgl64"
)

// bitsToIndices maps a 4-bit vertex-slot membership mask to the packed list
// of its slots. Each entry stores slot+1 in three bits, lowest slot first;
// a zero group terminates the list. Iteration pattern:
//
//	for bits := bitsToIndices[mask]; bits != 0; bits >>= 3 {
//	    slot := (bits & 7) - 1
//	    ...
//	}
var bitsToIndices = [16]int{0, 1, 2, 17, 3, 25, 26, 209, 4, 33, 34, 273, 35, 281, 282, 2257}

// fullMask is the membership mask of a complete 4-vertex simplex.
const fullMask = 0b1111

// Solver holds the per-query simplex state. It is not safe for concurrent
// use; give each query its own instance (see SolverPool) and call Reset
// before the first AddSupportPoint.
type Solver struct {
	closestPoint mgl64.Vec3
	maxLengthSq  float64
	simplexBits  int

	verts        [4]mgl64.Vec3
	vertLengthSq [4]float64

	// edges[i][j] = verts[i] - verts[j], filled for every pair of live slots.
	edges        [4][4]mgl64.Vec3
	edgeLengthSq [4][4]float64

	// det[mask][i] is the Johnson cofactor Δ_i of the sub-simplex mask.
	// Entries for slots still in the simplex stay valid across calls, so the
	// incremental fill in updateDeterminant only touches subsets involving
	// the newly inserted vertex.
	det [16][4]float64
}

// SolverPool recycles solvers across queries. Callers must Reset a pooled
// solver before use; no state survives a Reset.
var SolverPool = sync.Pool{
	New: func() interface{} {
		return &Solver{}
	},
}

// Reset empties the simplex, discarding all cached state.
func (s *Solver) Reset() {
	s.simplexBits = 0
	s.maxLengthSq = 0
	s.closestPoint = mgl64.Vec3{}
}

// FullSimplex reports whether the simplex is a tetrahedron enclosing the
// origin. This is the definitive intersection signal: Johnson's rule only
// retains all four vertices when every face cofactor is positive, i.e. the
// origin lies strictly inside.
func (s *Solver) FullSimplex() bool {
	return s.simplexBits == fullMask
}

// ClosestPoint returns the point of the current simplex nearest the origin.
// Only valid after at least one AddSupportPoint since the last Reset.
func (s *Solver) ClosestPoint() mgl64.Vec3 {
	return s.closestPoint
}

// MaxLengthSquared returns the squared length of the longest simplex vertex.
// Callers use it as a scale reference to derive size-relative convergence
// thresholds instead of a fixed absolute epsilon.
func (s *Solver) MaxLengthSquared() float64 {
	return s.maxLengthSq
}

// AddSupportPoint inserts a new Minkowski-difference vertex and reduces the
// simplex to the minimal feature containing the closest point to the origin.
// ClosestPoint and MaxLengthSquared are recomputed for the reduced simplex.
//
// The return value reports whether the simplex collapsed to the new vertex
// alone; drivers normally ignore it and watch FullSimplex and ClosestPoint.
func (s *Solver) AddSupportPoint(v mgl64.Vec3) bool {
	// First free slot: lowest slot absent from the membership mask.
	slot := (bitsToIndices[s.simplexBits^fullMask] & 7) - 1

	s.verts[slot] = v
	s.vertLengthSq[slot] = v.LenSqr()

	for bits := bitsToIndices[s.simplexBits]; bits != 0; bits >>= 3 {
		i := (bits & 7) - 1
		edge := s.verts[i].Sub(v)
		s.edges[i][slot] = edge
		s.edges[slot][i] = edge.Mul(-1)
		lenSq := edge.LenSqr()
		s.edgeLengthSq[i][slot] = lenSq
		s.edgeLengthSq[slot][i] = lenSq
	}

	s.updateDeterminant(slot)
	return s.updateSimplex(slot)
}

// updateDeterminant fills the cofactor table for every sub-simplex that
// includes the new vertex. Cofactors of subsets built purely from previous
// vertices are already cached from earlier calls.
//
// Where two recursion expansions are algebraically equivalent, the operand
// vertex with the shortest edge to the target is chosen, which keeps the
// dot products small and the table numerically conditioned.
func (s *Solver) updateDeterminant(slot int) {
	slotBit := 1 << slot
	s.det[slotBit][slot] = 1

	indices := bitsToIndices[s.simplexBits]
	outer := indices
	seen := 0
	for ; outer != 0; outer >>= 3 {
		i := (outer & 7) - 1
		iBit := 1 << i
		pair := iBit | slotBit

		// Segment {i, slot}.
		s.det[pair][i] = s.edges[slot][i].Dot(s.verts[slot])
		s.det[pair][slot] = s.edges[i][slot].Dot(s.verts[i])

		// Triangles {i, j, slot} for every j handled before i.
		inner := indices
		for k := 0; k < seen; k++ {
			j := (inner & 7) - 1
			jBit := 1 << j
			tri := pair | jBit

			ref := slot
			if s.edgeLengthSq[i][j] < s.edgeLengthSq[slot][j] {
				ref = i
			}
			s.det[tri][j] = s.det[pair][i]*s.edges[ref][j].Dot(s.verts[i]) +
				s.det[pair][slot]*s.edges[ref][j].Dot(s.verts[slot])

			ref = slot
			if s.edgeLengthSq[j][i] < s.edgeLengthSq[slot][i] {
				ref = j
			}
			s.det[tri][i] = s.det[jBit|slotBit][j]*s.edges[ref][i].Dot(s.verts[j]) +
				s.det[jBit|slotBit][slot]*s.edges[ref][i].Dot(s.verts[slot])

			ref = j
			if s.edgeLengthSq[i][slot] < s.edgeLengthSq[j][slot] {
				ref = i
			}
			s.det[tri][slot] = s.det[iBit|jBit][j]*s.edges[ref][slot].Dot(s.verts[j]) +
				s.det[iBit|jBit][i]*s.edges[ref][slot].Dot(s.verts[i])

			inner >>= 3
		}
		seen++
	}

	// Tetrahedron cofactors once all four slots are live.
	if s.simplexBits|slotBit == fullMask {
		ref := s.shortestEdge(0, 1, 2, 3)
		s.det[fullMask][0] = s.det[0b1110][1]*s.edges[ref][0].Dot(s.verts[1]) +
			s.det[0b1110][2]*s.edges[ref][0].Dot(s.verts[2]) +
			s.det[0b1110][3]*s.edges[ref][0].Dot(s.verts[3])

		ref = s.shortestEdge(1, 0, 2, 3)
		s.det[fullMask][1] = s.det[0b1101][0]*s.edges[ref][1].Dot(s.verts[0]) +
			s.det[0b1101][2]*s.edges[ref][1].Dot(s.verts[2]) +
			s.det[0b1101][3]*s.edges[ref][1].Dot(s.verts[3])

		ref = s.shortestEdge(2, 0, 1, 3)
		s.det[fullMask][2] = s.det[0b1011][0]*s.edges[ref][2].Dot(s.verts[0]) +
			s.det[0b1011][1]*s.edges[ref][2].Dot(s.verts[1]) +
			s.det[0b1011][3]*s.edges[ref][2].Dot(s.verts[3])

		ref = s.shortestEdge(3, 0, 1, 2)
		s.det[fullMask][3] = s.det[0b0111][0]*s.edges[ref][3].Dot(s.verts[0]) +
			s.det[0b0111][1]*s.edges[ref][3].Dot(s.verts[1]) +
			s.det[0b0111][2]*s.edges[ref][3].Dot(s.verts[2])
	}
}

// shortestEdge returns whichever of a, b, c has the shortest edge to slot to.
func (s *Solver) shortestEdge(to, a, b, c int) int {
	if s.edgeLengthSq[a][to] < s.edgeLengthSq[b][to] {
		if s.edgeLengthSq[a][to] < s.edgeLengthSq[c][to] {
			return a
		}
		return c
	}
	if s.edgeLengthSq[b][to] < s.edgeLengthSq[c][to] {
		return b
	}
	return c
}

// updateSimplex picks the sub-simplex supporting the closest point. Candidate
// masks always include the new vertex; previous vertices are kept only when
// Johnson's rule says they contribute. The loop covers every candidate that
// keeps at least one previous vertex; the final check is the new vertex
// alone. Returns true when the simplex collapsed to the new vertex.
func (s *Solver) updateSimplex(slot int) bool {
	allBits := s.simplexBits | 1<<slot
	slotBit := 1 << slot

	for sub := s.simplexBits; sub != 0; sub-- {
		if sub&allBits != sub {
			continue
		}
		if s.satisfiesRule(sub|slotBit, allBits) {
			s.simplexBits = sub | slotBit
			s.closestPoint = s.computeClosestPoint()
			return false
		}
	}

	if s.satisfiesRule(slotBit, allBits) {
		s.simplexBits = slotBit
		s.closestPoint = s.verts[slot]
		s.maxLengthSq = s.vertLengthSq[slot]
		return true
	}

	// No candidate satisfied the rule: numerically degenerate input. The
	// simplex is left unchanged so the driver's stall detection can terminate.
	return false
}

// computeClosestPoint evaluates the barycentric combination of the current
// sub-simplex given by its cofactors, refreshing maxLengthSq along the way.
func (s *Solver) computeClosestPoint() mgl64.Vec3 {
	var weighted mgl64.Vec3
	var sum float64

	s.maxLengthSq = 0
	for bits := bitsToIndices[s.simplexBits]; bits != 0; bits >>= 3 {
		i := (bits & 7) - 1
		d := s.det[s.simplexBits][i]
		sum += d
		weighted = weighted.Add(s.verts[i].Mul(d))
		s.maxLengthSq = max(s.maxLengthSq, s.vertLengthSq[i])
	}

	return weighted.Mul(1 / sum)
}

// satisfiesRule checks Johnson's acceptance criterion for candidate mask
// xBits against the full vertex set yBits: every member cofactor must be
// positive, and extending the candidate by any excluded vertex must not
// produce a positive cofactor for that vertex.
func (s *Solver) satisfiesRule(xBits, yBits int) bool {
	for bits := bitsToIndices[yBits]; bits != 0; bits >>= 3 {
		i := (bits & 7) - 1
		iBit := 1 << i

		if xBits&iBit != 0 {
			if s.det[xBits][i] <= 0 {
				return false
			}
		} else if s.det[xBits|iBit][i] > 0 {
			return false
		}
	}

	return true
}
