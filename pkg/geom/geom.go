package geom

import (
	"math"
	"sort"

	v2 "github.com/deadsy/sdfx/vec/v2"
)

// roundDigits is the decimal precision applied to intersection points
// before deduplication.
const roundDigits = 4

// parallelEps is the determinant threshold below which two lines are
// treated as parallel and their intersection skipped.
const parallelEps = 1e-9

// Segment is one edge of a candidate unit polygon or of the outer
// floor rectangle, described by its two endpoints.
type Segment struct {
	A, B v2.Vec
}

// Round truncates v to the fixed decimal precision used for
// intersection-point deduplication.
func Round(v float64) float64 {
	const scale = 1e4 // 10^roundDigits
	return math.Round(v*scale) / scale
}

// RoundPoint rounds both coordinates of p.
func RoundPoint(p v2.Vec) v2.Vec {
	return v2.Vec{X: Round(p.X), Y: Round(p.Y)}
}

// LineIntersect computes the intersection of the infinite lines
// through s and t. The segments are extended in both directions; the
// returned point need not lie on either segment. ok is false when the
// lines are parallel.
func LineIntersect(s, t Segment) (p v2.Vec, ok bool) {
	d1 := s.B.Sub(s.A)
	d2 := t.B.Sub(t.A)

	det := d1.X*d2.Y - d1.Y*d2.X
	if math.Abs(det) < parallelEps {
		return v2.Vec{}, false
	}

	w := t.A.Sub(s.A)
	u := (w.X*d2.Y - w.Y*d2.X) / det
	return s.A.Add(d1.MulScalar(u)), true
}

// Centroid returns the arithmetic mean of the given points. It returns
// the zero vector for an empty slice.
func Centroid(points []v2.Vec) v2.Vec {
	if len(points) == 0 {
		return v2.Vec{}
	}
	var sum v2.Vec
	for _, p := range points {
		sum = sum.Add(p)
	}
	return sum.MulScalar(1 / float64(len(points)))
}

// SegmentCentroid returns the arithmetic mean of all segment
// endpoints. Shared polygon corners count once per segment that uses
// them, matching the reference behavior for closed edge loops.
func SegmentCentroid(segments []Segment) v2.Vec {
	if len(segments) == 0 {
		return v2.Vec{}
	}
	var sum v2.Vec
	for _, s := range segments {
		sum = sum.Add(s.A)
		sum = sum.Add(s.B)
	}
	return sum.MulScalar(1 / float64(2*len(segments)))
}

// SameSide reports whether p and ref lie on the same side of the
// infinite line through edge, within Tolerance. Points on the line
// count as being on both sides, so boundary intersection points are
// never rejected.
//
// For a vertical edge the x coordinates are compared directly;
// otherwise the line's y is evaluated at both points' x positions and
// the signed offsets must agree.
func SameSide(p, ref v2.Vec, edge Segment) bool {
	dx := edge.B.X - edge.A.X
	if RoughCompare(dx, 0, Equal) {
		return (RoughCompare(p.X, edge.A.X, LessEqual) && RoughCompare(ref.X, edge.A.X, LessEqual)) ||
			(RoughCompare(p.X, edge.A.X, GreaterEqual) && RoughCompare(ref.X, edge.A.X, GreaterEqual))
	}

	m := (edge.B.Y - edge.A.Y) / dx
	b := edge.A.Y - m*edge.A.X

	lineAtP := m*p.X + b
	lineAtRef := m*ref.X + b

	return (RoughCompare(p.Y, lineAtP, LessEqual) && RoughCompare(ref.Y, lineAtRef, LessEqual)) ||
		(RoughCompare(p.Y, lineAtP, GreaterEqual) && RoughCompare(ref.Y, lineAtRef, GreaterEqual))
}

// InRect reports whether p lies within [0,w]x[0,l], within Tolerance.
func InRect(p v2.Vec, w, l float64) bool {
	return RoughCompare(p.X, 0, GreaterEqual) && RoughCompare(p.X, w, LessEqual) &&
		RoughCompare(p.Y, 0, GreaterEqual) && RoughCompare(p.Y, l, LessEqual)
}

// angleAround returns the angle of p around c, remapped so that a
// convex point set sorts into a single strictly increasing sweep.
// The quadrant correction mirrors arctan's limited range: points left
// of the center gain a half turn, points straight below gain a full
// turn.
func angleAround(p, c v2.Vec) float64 {
	ang := math.Atan((p.Y - c.Y) / (p.X - c.X))
	if p.X < c.X {
		ang += math.Pi
	} else if p.Y < c.Y {
		ang += 2 * math.Pi
	}
	return ang
}

// SortCCW orders points counter-clockwise by angle around their
// centroid. The input slice is sorted in place and returned. The
// ordering is deterministic for a convex point set.
func SortCCW(points []v2.Vec) []v2.Vec {
	c := Centroid(points)
	sort.Slice(points, func(i, j int) bool {
		return angleAround(points[i], c) < angleAround(points[j], c)
	})
	return points
}
