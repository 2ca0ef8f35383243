// Package geom provides the 2D geometric primitives used to build
// non-axis-aligned floor units: tolerant floating-point comparison,
// infinite line intersection, convex point filtering, and angular
// vertex ordering.
package geom

import "math"

// Tolerance is the absolute slop used by RoughCompare. Intersection
// points computed from floating-point line equations land slightly off
// the exact boundary; without slop they would be spuriously rejected
// or duplicated during boundary filtering.
const Tolerance = 0.001

// CompareKind selects the relation tested by RoughCompare.
type CompareKind int

const (
	Equal CompareKind = iota
	NotEqual
	LessEqual
	GreaterEqual
	Less
	Greater
)

// RoughCompare reports whether a and b satisfy the given relation
// within Tolerance. Equal means |a-b| <= Tolerance; LessEqual and
// GreaterEqual additionally accept values within Tolerance past the
// strict boundary.
func RoughCompare(a, b float64, kind CompareKind) bool {
	switch kind {
	case Equal:
		return math.Abs(a-b) <= Tolerance
	case NotEqual:
		return math.Abs(a-b) > Tolerance
	case LessEqual:
		return a <= b+Tolerance
	case GreaterEqual:
		return a >= b-Tolerance
	case Less:
		return a < b
	case Greater:
		return a > b
	}
	return false
}
