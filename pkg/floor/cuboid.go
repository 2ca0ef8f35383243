package floor

import (
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// addCuboid emits one axis-aligned board or tile as a hexahedron:
// 8 vertices and 6 outward-wound quad faces, all tagged with matID.
//
// With clip set, a unit whose origin already falls outside
// [0,width)x[0,length) is silently skipped; this is how the tiling
// loops terminate rows and columns. A unit that starts inside but
// overhangs the far edge is shrunk to fit, producing the partial
// boards and tiles at the floor boundary.
func (b *builder) addCuboid(x, y, z, w, l, t float64, clip bool, matID uint32) {
	if clip && (x < 0 || y < 0 || x >= b.cfg.Width || y >= b.cfg.Length) {
		return
	}
	if clip && x+w > b.cfg.Width {
		w = b.cfg.Width - x
	}
	if clip && y+l > b.cfg.Length {
		l = b.cfg.Length - y
	}

	p := uint32(b.buf.VertexCount())

	b.buf.AppendVertex(v3.Vec{X: x, Y: y, Z: z})
	b.buf.AppendVertex(v3.Vec{X: x, Y: y, Z: z + t})
	b.buf.AppendVertex(v3.Vec{X: x + w, Y: y, Z: z})
	b.buf.AppendVertex(v3.Vec{X: x + w, Y: y, Z: z + t})
	b.buf.AppendVertex(v3.Vec{X: x, Y: y + l, Z: z})
	b.buf.AppendVertex(v3.Vec{X: x, Y: y + l, Z: z + t})
	b.buf.AppendVertex(v3.Vec{X: x + w, Y: y + l, Z: z})
	b.buf.AppendVertex(v3.Vec{X: x + w, Y: y + l, Z: z + t})

	// Face order: front (y), right (x+w), top (z+t), back (y+l),
	// left (x), bottom (z).
	b.buf.AppendFace(p, p+2, p+3, p+1)
	b.buf.AppendFace(p+2, p+6, p+7, p+3)
	b.buf.AppendFace(p+1, p+3, p+7, p+5)
	b.buf.AppendFace(p+6, p+4, p+5, p+7)
	b.buf.AppendFace(p, p+1, p+5, p+4)
	b.buf.AppendFace(p, p+4, p+6, p+2)

	for i := 0; i < 6; i++ {
		b.buf.AppendMaterial(matID)
	}
}
