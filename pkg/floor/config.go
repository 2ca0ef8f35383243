// Package floor generates watertight floor-surface meshes from a
// small set of numeric parameters: wood boards or tile courses laid
// out in one of several named patterns over a rectangular extent.
package floor

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Length unit conversions. The default parameter set mirrors common
// imperial flooring dimensions expressed in meters.
const (
	Foot = 0.3048
	Inch = 0.0254
)

// Material selects the family of patterns a floor is built from.
type Material int

const (
	Wood Material = iota
	Tile
)

func (m Material) String() string {
	switch m {
	case Wood:
		return "wood"
	case Tile:
		return "tile"
	}
	return fmt.Sprintf("Material(%d)", int(m))
}

// MarshalYAML encodes the material as its name.
func (m Material) MarshalYAML() (interface{}, error) {
	return m.String(), nil
}

// UnmarshalYAML decodes a material from its name.
func (m *Material) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	switch s {
	case "wood":
		*m = Wood
	case "tile":
		*m = Tile
	default:
		return fmt.Errorf("unknown material %q", s)
	}
	return nil
}

// WoodStyle names one wood-board layout.
type WoodStyle int

const (
	WoodRegular WoodStyle = iota
	WoodParquet
	WoodHerringbone
	WoodHerringboneParquet
)

func (s WoodStyle) String() string {
	switch s {
	case WoodRegular:
		return "regular"
	case WoodParquet:
		return "parquet"
	case WoodHerringbone:
		return "herringbone"
	case WoodHerringboneParquet:
		return "herringbone_parquet"
	}
	return fmt.Sprintf("WoodStyle(%d)", int(s))
}

// MarshalYAML encodes the style as its name.
func (s WoodStyle) MarshalYAML() (interface{}, error) {
	return s.String(), nil
}

// UnmarshalYAML decodes a style from its name.
func (s *WoodStyle) UnmarshalYAML(value *yaml.Node) error {
	var name string
	if err := value.Decode(&name); err != nil {
		return err
	}
	switch name {
	case "regular":
		*s = WoodRegular
	case "parquet":
		*s = WoodParquet
	case "herringbone":
		*s = WoodHerringbone
	case "herringbone_parquet":
		*s = WoodHerringboneParquet
	default:
		return fmt.Errorf("unknown wood style %q", name)
	}
	return nil
}

// TileStyle names one tile layout.
type TileStyle int

const (
	TileRegular TileStyle = iota
	TileHopscotch
	TileSteppingStone
	TileHexagon
	TileWindmill
)

func (s TileStyle) String() string {
	switch s {
	case TileRegular:
		return "regular"
	case TileHopscotch:
		return "hopscotch"
	case TileSteppingStone:
		return "stepping_stone"
	case TileHexagon:
		return "hexagon"
	case TileWindmill:
		return "windmill"
	}
	return fmt.Sprintf("TileStyle(%d)", int(s))
}

// MarshalYAML encodes the style as its name.
func (s TileStyle) MarshalYAML() (interface{}, error) {
	return s.String(), nil
}

// UnmarshalYAML decodes a style from its name.
func (s *TileStyle) UnmarshalYAML(value *yaml.Node) error {
	var name string
	if err := value.Decode(&name); err != nil {
		return err
	}
	switch name {
	case "regular":
		*s = TileRegular
	case "hopscotch":
		*s = TileHopscotch
	case "stepping_stone":
		*s = TileSteppingStone
	case "hexagon":
		*s = TileHexagon
	case "windmill":
		*s = TileWindmill
	default:
		return fmt.Errorf("unknown tile style %q", name)
	}
	return nil
}

// Config is the immutable-per-run parameter set consumed by the
// pattern generators. Lengths are meters, variances are percentages
// in [0,100]. The zero value is not usable; start from DefaultConfig.
type Config struct {
	Material  Material  `yaml:"material"`
	WoodStyle WoodStyle `yaml:"wood_style"`
	TileStyle TileStyle `yaml:"tile_style"`

	// Outer floor extent and nominal unit thickness.
	Width     float64 `yaml:"width"`     // x
	Length    float64 `yaml:"length"`    // y
	Thickness float64 `yaml:"thickness"` // z

	// Gap between units in both directions; parquet, herringbone, and
	// all tile styles use this single value.
	Spacing float64 `yaml:"spacing"`

	VaryThickness     bool    `yaml:"vary_thickness"`
	ThicknessVariance float64 `yaml:"thickness_variance"`

	// Wood parameters.
	BoardWidth       float64 `yaml:"board_width"`
	VaryWidth        bool    `yaml:"vary_width"`
	WidthVariance    float64 `yaml:"width_variance"`
	WidthSpacing     float64 `yaml:"width_spacing"`
	BoardLength      float64 `yaml:"board_length"`
	ShortBoardLength float64 `yaml:"short_board_length"`
	VaryLength       bool    `yaml:"vary_length"`
	LengthVariance   float64 `yaml:"length_variance"`
	LengthSpacing    float64 `yaml:"length_spacing"`
	MaxBoards        int     `yaml:"max_boards"`
	BoardsInGroup    int     `yaml:"boards_in_group"`

	// Tile parameters.
	TileWidth      float64 `yaml:"tile_width"`
	TileLength     float64 `yaml:"tile_length"`
	MortarDepth    float64 `yaml:"mortar_depth"`
	OffsetTiles    bool    `yaml:"offset_tiles"`
	RandomOffset   bool    `yaml:"random_offset"`
	Offset         float64 `yaml:"offset"`
	OffsetVariance float64 `yaml:"offset_variance"`
}

// DefaultConfig returns the standard parameter set: a 20x8 ft wood
// floor of regular 6 in x 8 ft boards, 1 in thick, 1/8 in gaps.
func DefaultConfig() Config {
	return Config{
		Material:  Wood,
		WoodStyle: WoodRegular,
		TileStyle: TileRegular,

		Width:     20 * Foot,
		Length:    8 * Foot,
		Thickness: 1 * Inch,
		Spacing:   0.125 * Inch,

		ThicknessVariance: 50,

		BoardWidth:       6 * Inch,
		WidthVariance:    50,
		WidthSpacing:     0.125 * Inch,
		BoardLength:      8 * Foot,
		ShortBoardLength: 2 * Foot,
		LengthVariance:   50,
		LengthSpacing:    0.125 * Inch,
		MaxBoards:        2,
		BoardsInGroup:    4,

		TileWidth:      1 * Foot,
		TileLength:     8 * Inch,
		MortarDepth:    0.25 * Inch,
		Offset:         50,
		OffsetVariance: 50,
	}
}

// Validate checks the configuration invariants: positive extents and
// unit dimensions, non-negative spacing, percentages within [0,100].
func (c Config) Validate() error {
	type dim struct {
		name  string
		value float64
	}

	positive := []dim{
		{"width", c.Width},
		{"length", c.Length},
		{"thickness", c.Thickness},
	}
	switch c.Material {
	case Wood:
		positive = append(positive,
			dim{"board_width", c.BoardWidth},
			dim{"board_length", c.BoardLength},
			dim{"short_board_length", c.ShortBoardLength},
		)
	case Tile:
		positive = append(positive,
			dim{"tile_width", c.TileWidth},
			dim{"tile_length", c.TileLength},
		)
	default:
		return fmt.Errorf("floor: unknown material %d", int(c.Material))
	}
	for _, d := range positive {
		if d.value <= 0 {
			return fmt.Errorf("floor: %s is %.4f, must be positive", d.name, d.value)
		}
	}

	nonNegative := []dim{
		{"spacing", c.Spacing},
		{"width_spacing", c.WidthSpacing},
		{"length_spacing", c.LengthSpacing},
		{"mortar_depth", c.MortarDepth},
	}
	for _, d := range nonNegative {
		if d.value < 0 {
			return fmt.Errorf("floor: %s is %.4f, must not be negative", d.name, d.value)
		}
	}

	percentages := []dim{
		{"thickness_variance", c.ThicknessVariance},
		{"width_variance", c.WidthVariance},
		{"length_variance", c.LengthVariance},
		{"offset", c.Offset},
		{"offset_variance", c.OffsetVariance},
	}
	for _, d := range percentages {
		if d.value < 0 || d.value > 100 {
			return fmt.Errorf("floor: %s is %.4f, must be within [0,100]", d.name, d.value)
		}
	}

	if c.Material == Wood {
		if c.MaxBoards < 1 {
			return fmt.Errorf("floor: max_boards is %d, must be at least 1", c.MaxBoards)
		}
		if c.WoodStyle == WoodParquet && c.BoardsInGroup < 1 {
			return fmt.Errorf("floor: boards_in_group is %d, must be at least 1", c.BoardsInGroup)
		}
	}
	if c.Material == Tile && c.MortarDepth >= c.Thickness {
		return fmt.Errorf("floor: mortar_depth %.4f must be less than thickness %.4f", c.MortarDepth, c.Thickness)
	}

	return nil
}
