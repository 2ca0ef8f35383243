package floor

import (
	v2 "github.com/deadsy/sdfx/vec/v2"
	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/chazu/floorgen/pkg/geom"
)

// outerEdges returns the four edges of the floor rectangle. Every
// candidate board is clipped against these.
func (b *builder) outerEdges() []geom.Segment {
	w, l := b.cfg.Width, b.cfg.Length
	return []geom.Segment{
		{A: v2.Vec{X: 0, Y: 0}, B: v2.Vec{X: 0, Y: l}},
		{A: v2.Vec{X: 0, Y: 0}, B: v2.Vec{X: w, Y: 0}},
		{A: v2.Vec{X: w, Y: 0}, B: v2.Vec{X: w, Y: l}},
		{A: v2.Vec{X: w, Y: l}, B: v2.Vec{X: 0, Y: l}},
	}
}

// cornerPoints computes the clipped polygon of a candidate unit whose
// edges need not be axis-aligned. Every pair of lines in candidate
// edges plus the outer rectangle is intersected (as infinite lines);
// a point survives if it is new after rounding, lies on the same side
// of every candidate edge as the candidate centroid, and falls within
// the outer rectangle. Fewer than 3 survivors means the unit is fully
// clipped away.
func (b *builder) cornerPoints(edges []geom.Segment) []v2.Vec {
	segments := make([]geom.Segment, 0, len(edges)+4)
	segments = append(segments, edges...)
	segments = append(segments, b.outerEdges()...)

	center := geom.SegmentCentroid(edges)

	var out []v2.Vec
	for i := 0; i < len(segments)-1; i++ {
		for j := i + 1; j < len(segments); j++ {
			p, ok := geom.LineIntersect(segments[i], segments[j])
			if !ok {
				continue
			}
			p = geom.RoundPoint(p)

			if containsPoint(out, p) {
				continue
			}
			if !geom.InRect(p, b.cfg.Width, b.cfg.Length) {
				continue
			}
			inside := true
			for _, e := range edges {
				if !geom.SameSide(p, center, e) {
					inside = false
					break
				}
			}
			if inside {
				out = append(out, p)
			}
		}
	}
	return out
}

func containsPoint(pts []v2.Vec, p v2.Vec) bool {
	for _, q := range pts {
		if q.X == p.X && q.Y == p.Y {
			return true
		}
	}
	return false
}

// addBoundedPrism builds one non-axis-aligned unit: the candidate
// edges are clipped against the floor rectangle, the surviving corner
// points are ordered counter-clockwise, and the polygon is extruded
// from z=0 to z=t. Degenerate or fully clipped candidates emit
// nothing.
func (b *builder) addBoundedPrism(edges []geom.Segment, t float64, matID uint32) {
	points := b.cornerPoints(edges)
	if len(points) < 3 {
		return
	}

	// The survivors' own centroid is the robust sort pivot; the edge
	// centroid can fall outside the clipped region.
	points = geom.SortCCW(points)

	p := uint32(b.buf.VertexCount())
	for _, pt := range points {
		b.buf.AppendVertex(v3.Vec{X: pt.X, Y: pt.Y, Z: 0})
		b.buf.AppendVertex(v3.Vec{X: pt.X, Y: pt.Y, Z: t})
	}

	n := uint32(len(points))
	top := make([]uint32, 0, n)
	bot := make([]uint32, 0, n)

	// Side quads between consecutive points, closing the loop from the
	// last point back to the first.
	for i := uint32(0); i < n; i++ {
		lo := p + 2*i
		hi := lo + 1
		nextLo := p + 2*((i+1)%n)
		nextHi := nextLo + 1
		b.buf.AppendFace(lo, nextLo, nextHi, hi)

		bot = append(bot, lo)
		top = append(top, hi)
	}

	// Top face keeps the counter-clockwise order (outward +z normal);
	// bottom face is reversed to point down.
	b.buf.AppendFace(top...)
	for i, j := 0, len(bot)-1; i < j; i, j = i+1, j-1 {
		bot[i], bot[j] = bot[j], bot[i]
	}
	b.buf.AppendFace(bot...)

	for i := uint32(0); i < n+2; i++ {
		b.buf.AppendMaterial(matID)
	}
}
