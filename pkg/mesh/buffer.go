// Package mesh provides the append-only buffers that accumulate the
// geometry of one generation pass: vertices, faces, and per-face
// material ids. A Buffer is created empty, populated by exactly one
// pass, handed to a mesh sink, and discarded.
package mesh

import (
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Face is an ordered loop of vertex indices, wound counter-clockwise
// when viewed from outside the solid.
type Face []uint32

// Buffer owns the three parallel mesh buffers. It is not safe for
// concurrent use; each generation pass owns its Buffer exclusively.
type Buffer struct {
	Vertices    []v3.Vec
	Faces       []Face
	MaterialIDs []uint32
}

// NewBuffer returns an empty Buffer.
func NewBuffer() *Buffer {
	return &Buffer{}
}

// AppendVertex adds a vertex and returns its index.
func (b *Buffer) AppendVertex(p v3.Vec) uint32 {
	b.Vertices = append(b.Vertices, p)
	return uint32(len(b.Vertices) - 1)
}

// AppendFace adds a face. All indices must reference vertices already
// present in the buffer; callers snapshot VertexCount before emitting
// a vertex batch and build indices from that base.
func (b *Buffer) AppendFace(indices ...uint32) {
	b.Faces = append(b.Faces, Face(indices))
}

// AppendMaterial adds one material id to the per-face material buffer.
func (b *Buffer) AppendMaterial(id uint32) {
	b.MaterialIDs = append(b.MaterialIDs, id)
}

// VertexCount returns the number of vertices appended so far.
func (b *Buffer) VertexCount() int {
	return len(b.Vertices)
}

// FaceCount returns the number of faces appended so far.
func (b *Buffer) FaceCount() int {
	return len(b.Faces)
}

// IsEmpty reports whether the buffer holds no geometry.
func (b *Buffer) IsEmpty() bool {
	return len(b.Vertices) == 0
}
