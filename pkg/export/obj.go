package export

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/chazu/floorgen/pkg/mesh"
)

// WriteOBJ writes buf to w as a Wavefront OBJ. Faces keep their
// original n-gon form, and runs of faces sharing a material id are
// grouped under usemtl statements so hosts can assign the floor and
// grout materials separately.
func WriteOBJ(w io.Writer, buf *mesh.Buffer) error {
	if err := buf.Validate(); err != nil {
		return fmt.Errorf("export: %w", err)
	}

	bw := bufio.NewWriter(w)

	for _, v := range buf.Vertices {
		fmt.Fprintf(bw, "v %g %g %g\n", v.X, v.Y, v.Z)
	}

	curMat := uint32(0)
	haveMat := false
	for i, f := range buf.Faces {
		if id := buf.MaterialIDs[i]; !haveMat || id != curMat {
			fmt.Fprintf(bw, "usemtl mat_%d\n", id)
			curMat, haveMat = id, true
		}
		fmt.Fprint(bw, "f")
		for _, idx := range f {
			// OBJ indices are 1-based.
			fmt.Fprintf(bw, " %d", idx+1)
		}
		fmt.Fprintln(bw)
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("export: write obj: %w", err)
	}
	return nil
}

// SaveOBJ writes buf to path as a Wavefront OBJ file.
func SaveOBJ(path string, buf *mesh.Buffer) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: save %s: %w", path, err)
	}
	defer f.Close()

	if err := WriteOBJ(f, buf); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("export: save %s: %w", path, err)
	}
	return nil
}
