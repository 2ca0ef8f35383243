package mesh

import "fmt"

// Validate checks the structural invariants of the buffer: every face
// has at least 3 indices, every index references an existing vertex,
// and the material buffer is parallel to the face buffer. A violation
// is a programmer error in a builder, never a data-dependent runtime
// condition.
func (b *Buffer) Validate() error {
	if len(b.MaterialIDs) != len(b.Faces) {
		return fmt.Errorf("mesh: %d material ids for %d faces", len(b.MaterialIDs), len(b.Faces))
	}

	n := uint32(len(b.Vertices))
	for i, f := range b.Faces {
		if len(f) < 3 {
			return fmt.Errorf("mesh: face %d has %d indices, need at least 3", i, len(f))
		}
		for _, idx := range f {
			if idx >= n {
				return fmt.Errorf("mesh: face %d references vertex %d, only %d vertices exist", i, idx, n)
			}
		}
	}
	return nil
}
