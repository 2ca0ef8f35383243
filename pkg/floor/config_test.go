package floor

import (
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestDefaultConfigValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() on defaults returned %v", err)
	}

	cfg.Material = Tile
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() on tile defaults returned %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"zero width", func(c *Config) { c.Width = 0 }, "width"},
		{"negative length", func(c *Config) { c.Length = -1 }, "length"},
		{"zero thickness", func(c *Config) { c.Thickness = 0 }, "thickness"},
		{"negative spacing", func(c *Config) { c.Spacing = -0.01 }, "spacing"},
		{"zero board width", func(c *Config) { c.BoardWidth = 0 }, "board_width"},
		{"zero short board length", func(c *Config) { c.ShortBoardLength = 0 }, "short_board_length"},
		{"variance over 100", func(c *Config) { c.LengthVariance = 101 }, "length_variance"},
		{"negative offset", func(c *Config) {
			c.Material = Tile
			c.Offset = -5
		}, "offset"},
		{"max boards zero", func(c *Config) { c.MaxBoards = 0 }, "max_boards"},
		{"boards in group zero", func(c *Config) {
			c.WoodStyle = WoodParquet
			c.BoardsInGroup = 0
		}, "boards_in_group"},
		{"mortar deeper than tile", func(c *Config) {
			c.Material = Tile
			c.MortarDepth = c.Thickness
		}, "mortar_depth"},
		{"unknown material", func(c *Config) { c.Material = Material(42) }, "material"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() = nil, want error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() = %q, want mention of %q", err, tt.wantErr)
			}
		})
	}
}

func TestConfigTileFieldsIgnoredForWood(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TileWidth = 0
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v, tile dimensions should not apply to wood", err)
	}
}

func TestConfigYAML(t *testing.T) {
	src := `
material: tile
tile_style: stepping_stone
width: 3.0
length: 2.0
tile_width: 0.25
offset_tiles: true
`
	cfg := DefaultConfig()
	if err := yaml.Unmarshal([]byte(src), &cfg); err != nil {
		t.Fatalf("Unmarshal() returned %v", err)
	}
	if cfg.Material != Tile || cfg.TileStyle != TileSteppingStone {
		t.Errorf("material/style = %v/%v", cfg.Material, cfg.TileStyle)
	}
	if cfg.Width != 3.0 || cfg.TileWidth != 0.25 || !cfg.OffsetTiles {
		t.Errorf("fields not applied: %+v", cfg)
	}
	// Untouched fields keep their defaults.
	if cfg.Thickness != DefaultConfig().Thickness {
		t.Errorf("thickness = %v, want default", cfg.Thickness)
	}

	t.Run("bad style", func(t *testing.T) {
		var c Config
		if err := yaml.Unmarshal([]byte("wood_style: chevron"), &c); err == nil {
			t.Error("Unmarshal() = nil error for unknown style")
		}
	})
}

func TestStyleStrings(t *testing.T) {
	if got := WoodHerringboneParquet.String(); got != "herringbone_parquet" {
		t.Errorf("WoodHerringboneParquet.String() = %q", got)
	}
	if got := TileSteppingStone.String(); got != "stepping_stone" {
		t.Errorf("TileSteppingStone.String() = %q", got)
	}
	if got := Tile.String(); got != "tile" {
		t.Errorf("Tile.String() = %q", got)
	}
	if got := WoodStyle(9).String(); got != "WoodStyle(9)" {
		t.Errorf("WoodStyle(9).String() = %q", got)
	}
}
