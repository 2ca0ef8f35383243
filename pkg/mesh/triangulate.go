package mesh

import (
	"github.com/deadsy/sdfx/sdf"
)

// Triangles fan-triangulates every face into render triangles. Faces
// are convex by construction (cuboid quads and sorted convex polygons)
// so a fan from the first vertex is always valid. The winding of each
// source face is preserved.
func (b *Buffer) Triangles() []*sdf.Triangle3 {
	var tris []*sdf.Triangle3
	for _, f := range b.Faces {
		for i := 1; i+1 < len(f); i++ {
			t := sdf.Triangle3{
				b.Vertices[f[0]],
				b.Vertices[f[i]],
				b.Vertices[f[i+1]],
			}
			tris = append(tris, &t)
		}
	}
	return tris
}
