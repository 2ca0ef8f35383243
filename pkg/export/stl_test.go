package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/chazu/floorgen/pkg/mesh"
)

func TestSaveSTL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "floor.stl")
	if err := SaveSTL(path, quadBuffer(t)); err != nil {
		t.Fatalf("SaveSTL() returned %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat %s: %v", path, err)
	}
	// Binary STL: 80-byte header, 4-byte count, 50 bytes per triangle.
	// The quad fans into two triangles plus the lone triangle face.
	if want := int64(80 + 4 + 3*50); info.Size() != want {
		t.Errorf("STL file is %d bytes, want %d", info.Size(), want)
	}
}

func TestSaveSTLInvalidBuffer(t *testing.T) {
	buf := mesh.NewBuffer()
	buf.AppendFace(0, 1, 2)
	buf.AppendMaterial(0)

	path := filepath.Join(t.TempDir(), "bad.stl")
	if err := SaveSTL(path, buf); err == nil {
		t.Error("SaveSTL() = nil error for invalid buffer")
	}
}
