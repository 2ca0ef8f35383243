package floor

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/chazu/floorgen/pkg/mesh"
)

// testConfig is a small floor that every pattern covers in a handful
// of units, keeping the buffers easy to reason about.
func testConfig(m Material) Config {
	cfg := DefaultConfig()
	cfg.Material = m
	cfg.Width = 1.2
	cfg.Length = 0.9
	cfg.Thickness = 0.02
	cfg.Spacing = 0.004
	cfg.BoardWidth = 0.15
	cfg.BoardLength = 0.6
	cfg.ShortBoardLength = 0.3
	cfg.TileWidth = 0.3
	cfg.TileLength = 0.2
	cfg.MortarDepth = 0.005
	return cfg
}

func checkBounds(t *testing.T, buf *mesh.Buffer, cfg Config) {
	t.Helper()
	const slack = 1e-4
	maxZ := cfg.Thickness
	if cfg.VaryThickness {
		maxZ *= 1 + cfg.ThicknessVariance/100
	}
	for i, v := range buf.Vertices {
		if v.X < -slack || v.X > cfg.Width+slack {
			t.Fatalf("vertex %d x = %v, outside [0, %v]", i, v.X, cfg.Width)
		}
		if v.Y < -slack || v.Y > cfg.Length+slack {
			t.Fatalf("vertex %d y = %v, outside [0, %v]", i, v.Y, cfg.Length)
		}
		if v.Z < -slack || v.Z > maxZ+slack {
			t.Fatalf("vertex %d z = %v, outside [0, %v]", i, v.Z, maxZ)
		}
	}
}

func TestGenerateWoodStyles(t *testing.T) {
	styles := []WoodStyle{WoodRegular, WoodParquet, WoodHerringbone, WoodHerringboneParquet}
	for _, style := range styles {
		t.Run(style.String(), func(t *testing.T) {
			cfg := testConfig(Wood)
			cfg.WoodStyle = style

			buf, err := Generate(cfg, rand.New(rand.NewSource(1)))
			if err != nil {
				t.Fatalf("Generate() returned %v", err)
			}
			if buf.IsEmpty() {
				t.Fatal("Generate() produced an empty buffer")
			}
			if err := buf.Validate(); err != nil {
				t.Fatalf("buffer invalid: %v", err)
			}
			checkBounds(t, buf, cfg)

			for i, id := range buf.MaterialIDs {
				if id != MatIDFloor {
					t.Fatalf("face %d material = %d, wood floors use only %d", i, id, MatIDFloor)
				}
			}
		})
	}
}

func TestGenerateTileStyles(t *testing.T) {
	styles := []TileStyle{TileRegular, TileHopscotch, TileSteppingStone, TileHexagon, TileWindmill}
	for _, style := range styles {
		t.Run(style.String(), func(t *testing.T) {
			cfg := testConfig(Tile)
			cfg.TileStyle = style

			buf, err := Generate(cfg, rand.New(rand.NewSource(1)))
			if err != nil {
				t.Fatalf("Generate() returned %v", err)
			}
			if err := buf.Validate(); err != nil {
				t.Fatalf("buffer invalid: %v", err)
			}
			checkBounds(t, buf, cfg)

			// The grout bed is always laid first: one cuboid with
			// the grout material under everything else.
			for i := 0; i < 6; i++ {
				if buf.MaterialIDs[i] != MatIDGrout {
					t.Fatalf("face %d material = %d, want grout bed %d", i, buf.MaterialIDs[i], MatIDGrout)
				}
			}
			if buf.FaceCount() <= 6 {
				t.Fatal("no tiles generated beyond the grout bed")
			}
			for i := 6; i < len(buf.MaterialIDs); i++ {
				if buf.MaterialIDs[i] != MatIDFloor {
					t.Fatalf("face %d material = %d, want %d", i, buf.MaterialIDs[i], MatIDFloor)
				}
			}
		})
	}
}

func TestGenerateDeterministic(t *testing.T) {
	cfg := testConfig(Wood)
	cfg.VaryThickness = true
	cfg.VaryWidth = true
	cfg.VaryLength = true

	a, err := Generate(cfg, rand.New(rand.NewSource(7)))
	if err != nil {
		t.Fatalf("Generate() returned %v", err)
	}
	b, err := Generate(cfg, rand.New(rand.NewSource(7)))
	if err != nil {
		t.Fatalf("Generate() returned %v", err)
	}
	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("same seed produced different buffers (-first +second):\n%s", diff)
	}
}

func TestGenerateErrors(t *testing.T) {
	t.Run("invalid config", func(t *testing.T) {
		cfg := testConfig(Wood)
		cfg.Width = 0
		if _, err := Generate(cfg, nil); err == nil {
			t.Error("Generate() = nil error for zero width")
		}
	})
	t.Run("unknown wood style", func(t *testing.T) {
		cfg := testConfig(Wood)
		cfg.WoodStyle = WoodStyle(42)
		if _, err := Generate(cfg, nil); err == nil {
			t.Error("Generate() = nil error for unknown wood style")
		}
	})
	t.Run("unknown tile style", func(t *testing.T) {
		cfg := testConfig(Tile)
		cfg.TileStyle = TileStyle(42)
		if _, err := Generate(cfg, nil); err == nil {
			t.Error("Generate() = nil error for unknown tile style")
		}
	})
}

func TestThicknessVariance(t *testing.T) {
	cfg := testConfig(Wood)
	cfg.VaryThickness = true
	cfg.ThicknessVariance = 25

	b := &builder{cfg: cfg, buf: mesh.NewBuffer(), rng: rand.New(rand.NewSource(3))}
	lo, hi := cfg.Thickness*0.75, cfg.Thickness*1.25
	for i := 0; i < 100; i++ {
		z := b.thickness()
		if z < lo || z > hi {
			t.Fatalf("thickness() = %v, outside [%v, %v]", z, lo, hi)
		}
	}
}
