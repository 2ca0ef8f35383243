package floor

import (
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Manipulator describes an on-canvas control tied to one editable
// numeric field. Origin and AxisEnd span the axis the control drags
// along, LabelOffset positions the value label relative to the axis.
type Manipulator struct {
	Field       string
	Origin      v3.Vec
	AxisEnd     v3.Vec
	LabelOffset v3.Vec
}

// Manipulators returns the control descriptors for cfg: overall width
// and length, plus the unit length and unit width of the active
// material. The unit controls sit at the tile or board scale so a host
// can edit pattern parameters in place.
func Manipulators(cfg Config) []Manipulator {
	ms := []Manipulator{
		{
			Field:       "width",
			Origin:      v3.Vec{},
			AxisEnd:     v3.Vec{X: cfg.Width},
			LabelOffset: v3.Vec{X: 0.5},
		},
		{
			Field:       "length",
			Origin:      v3.Vec{},
			AxisEnd:     v3.Vec{Y: cfg.Length},
			LabelOffset: v3.Vec{X: -0.5},
		},
	}

	if cfg.Material == Wood {
		ms = append(ms,
			Manipulator{
				Field:       "board_length",
				Origin:      v3.Vec{},
				AxisEnd:     v3.Vec{Y: cfg.BoardLength},
				LabelOffset: v3.Vec{X: -0.2},
			},
			Manipulator{
				Field:       "board_width",
				Origin:      v3.Vec{Z: cfg.Thickness},
				AxisEnd:     v3.Vec{X: cfg.BoardWidth, Z: cfg.Thickness},
				LabelOffset: v3.Vec{X: -0.2},
			},
		)
	} else {
		ms = append(ms,
			Manipulator{
				Field:       "tile_length",
				Origin:      v3.Vec{},
				AxisEnd:     v3.Vec{Y: cfg.TileLength},
				LabelOffset: v3.Vec{X: -0.2},
			},
			Manipulator{
				Field:       "tile_width",
				Origin:      v3.Vec{Z: cfg.Thickness},
				AxisEnd:     v3.Vec{X: cfg.TileWidth, Z: cfg.Thickness},
				LabelOffset: v3.Vec{X: -0.2},
			},
		)
	}

	return ms
}
