// Package export writes generated floor meshes to common interchange
// formats.
package export

import (
	"fmt"

	"github.com/deadsy/sdfx/render"

	"github.com/chazu/floorgen/pkg/mesh"
)

// SaveSTL writes buf to path as a binary STL file. STL carries no
// material information, so the grout bed and the floor units come out
// as one solid; quads and polygon caps are fan-triangulated.
func SaveSTL(path string, buf *mesh.Buffer) error {
	if err := buf.Validate(); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	if err := render.SaveSTL(path, buf.Triangles()); err != nil {
		return fmt.Errorf("export: save %s: %w", path, err)
	}
	return nil
}
