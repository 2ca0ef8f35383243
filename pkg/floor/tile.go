package floor

import (
	"math"

	v2 "github.com/deadsy/sdfx/vec/v2"

	"github.com/chazu/floorgen/pkg/geom"
)

var cos30 = math.Cos(math.Pi / 6)

// tileGrout lays a single slab under the whole floor, recessed from
// the tile surface by the mortar depth.
func (b *builder) tileGrout() {
	cfg := b.cfg
	b.addCuboid(0, 0, 0, cfg.Width, cfg.Length, cfg.Thickness-cfg.MortarDepth, true, MatIDGrout)
}

// tileRegular lays a plain grid. Alternating rows can be offset by a
// fixed percentage of the tile width, or by a random amount around
// half the tile length.
func (b *builder) tileRegular() {
	cfg := b.cfg
	sp := cfg.Spacing
	tw, tl := cfg.TileWidth, cfg.TileLength

	off := false
	o := cfg.Offset / 100

	curY := 0.0
	for curY < cfg.Length {
		tl2 := tl
		if curY < cfg.Length && cfg.Length < curY+tl {
			tl2 = cfg.Length - curY
		}

		curX := 0.0
		for curX < cfg.Width {
			tw2 := tw
			switch {
			case curX < cfg.Width && cfg.Width < curX+tw:
				tw2 = cfg.Width - curX
			case curX == 0 && off && cfg.OffsetTiles && !cfg.RandomOffset && o > 0:
				// offset 0 means no stagger; emitting the zero-width
				// tile would pin the cursor at x=0
				tw2 = tw * o
			case curX == 0 && cfg.OffsetTiles && cfg.RandomOffset:
				v := tl * 0.0049 * cfg.OffsetVariance
				tw2 = b.uniform(tl/2-v, tl/2+v)
			}

			b.addCuboid(curX, curY, 0, tw2, tl2, cfg.Thickness, true, MatIDFloor)
			curX += tw2 + sp
		}

		curY += tl2 + sp
		off = !off
	}
}

// tileHopscotch lays a large tile with a small tile on its upper-right
// corner, stepping the cursor down and back up so the next large tile
// sits directly below the previous small one. Rows cycle through three
// phases before repeating.
func (b *builder) tileHopscotch() {
	cfg := b.cfg
	th := cfg.Thickness
	sp := cfg.Spacing

	tw, tl := cfg.TileWidth, cfg.TileLength
	stw := (tw - sp) / 2
	stl := (tl - sp) / 2

	row := 0
	curY := 0.0
	preY := curY
	for curY < cfg.Length || (row == 2 && curY-stl-sp < cfg.Length) {
		curX := 0.0
		stepBack := true

		if row == 1 {
			curX = stw + sp
		}

		for curX < cfg.Width {
			if row == 0 || row == 1 {
				if curY < 0 {
					b.addCuboid(curX, 0, 0, tw, tl+curY, th, true, MatIDFloor)
				} else {
					b.addCuboid(curX, curY, 0, tw, tl, th, true, MatIDFloor)
				}
				b.addCuboid(curX+tw+sp, curY+stl+sp, 0, stw, stl, th, true, MatIDFloor)

				if stepBack {
					curX += tw + sp
					curY -= stl + sp
				} else {
					curX += tw + stw + 2*sp
					curY += stl + sp
				}
				stepBack = !stepBack
			} else {
				if curX == 0 {
					// half-width large tile to stagger the row
					b.addCuboid(curX, curY, 0, stw, tl, th, true, MatIDFloor)
					b.addCuboid(curX+stw+sp, curY+stl+sp, 0, stw, stl, th, true, MatIDFloor)
					b.addCuboid(curX, curY-sp-stl, 0, stw, stl, th, true, MatIDFloor)
					curX += 2*stw + tw + 3*sp
				} else {
					b.addCuboid(curX, curY, 0, tw, tl, th, true, MatIDFloor)
					b.addCuboid(curX+tw+sp, curY+stl+sp, 0, stw, stl, th, true, MatIDFloor)
					curX += 2*tw + 3*sp + stw
				}
			}
		}

		if row == 0 || row == 2 {
			curY = preY + tl + sp
		} else {
			curY = preY + stl + sp
		}
		preY = curY

		row = (row + 1) % 3
	}
}

// tileSteppingStone alternates a row of large tiles, each with two
// small tiles stacked beside it, with a row of small tiles.
func (b *builder) tileSteppingStone() {
	cfg := b.cfg
	th := cfg.Thickness
	sp := cfg.Spacing

	tw, tl := cfg.TileWidth, cfg.TileLength
	stw := (tw - sp) / 2
	stl := (tl - sp) / 2

	row := 0
	curY := 0.0
	for curY < cfg.Length {
		curX := 0.0
		for curX < cfg.Width {
			if row == 0 {
				b.addCuboid(curX, curY, 0, tw, tl, th, true, MatIDFloor)
				b.addCuboid(curX+tw+sp, curY, 0, stw, stl, th, true, MatIDFloor)
				b.addCuboid(curX+tw+sp, curY+stl+sp, 0, stw, stl, th, true, MatIDFloor)
				curX += tw + stw + 2*sp
			} else {
				b.addCuboid(curX, curY, 0, stw, stl, th, true, MatIDFloor)
				b.addCuboid(curX+stw+sp, curY, 0, stw, stl, th, true, MatIDFloor)
				curX += tw + sp
			}
		}

		if row == 0 {
			curY += tl + sp
		} else {
			curY += stl + sp
		}
		row = (row + 1) % 2
	}
}

// tileWindmill lays five tiles per cell: four rectangles pinwheeled
// around a small square in the middle.
func (b *builder) tileWindmill() {
	cfg := b.cfg
	th := cfg.Thickness
	sp := cfg.Spacing

	tw, tl := cfg.TileWidth, cfg.TileLength
	stw := (tw - sp) / 2
	stl := (tl - sp) / 2

	curY := 0.0
	for curY < cfg.Length {
		curX := 0.0
		for curX < cfg.Width {
			// bottom, right, top, left, then the center square
			b.addCuboid(curX, curY, 0, tw, stl, th, true, MatIDFloor)
			b.addCuboid(curX+tw+sp, curY, 0, stw, tl, th, true, MatIDFloor)
			b.addCuboid(curX+stw+sp, curY+tl+sp, 0, tw, stl, th, true, MatIDFloor)
			b.addCuboid(curX, curY+stl+sp, 0, stw, tl, th, true, MatIDFloor)
			b.addCuboid(curX+stw+sp, curY+stl+sp, 0, stw, stl, th, true, MatIDFloor)

			curX += tw + stw + 2*sp
		}
		curY += tl + stl + 2*sp
	}
}

// tileHexagon lays pointy-top hexagons sized so each spans the tile
// width flat-to-flat. Odd rows shift left by half a column so the
// hexagons nest, and edge tiles are clipped by the boundary builder.
func (b *builder) tileHexagon() {
	cfg := b.cfg
	sp := cfg.Spacing
	tw := cfg.TileWidth

	r := (tw / 2) / cos30
	colPitch := tw + sp
	rowPitch := 1.5*r + sp*cos30

	row := 0
	for cy := 0.0; cy-r < cfg.Length; cy += rowPitch {
		cx := 0.0
		if row%2 == 1 {
			cx = -colPitch / 2
		}

		for ; cx-tw/2 < cfg.Width; cx += colPitch {
			b.addBoundedPrism(hexEdges(cx, cy, r), cfg.Thickness, MatIDFloor)
		}
		row++
	}
}

// hexEdges builds the six boundary segments of a pointy-top hexagon
// centered at (cx, cy) with circumradius r.
func hexEdges(cx, cy, r float64) []geom.Segment {
	var pts [6]v2.Vec
	for i := 0; i < 6; i++ {
		a := math.Pi/6 + float64(i)*math.Pi/3
		pts[i] = v2.Vec{X: cx + r*math.Cos(a), Y: cy + r*math.Sin(a)}
	}

	edges := make([]geom.Segment, 6)
	for i := 0; i < 6; i++ {
		edges[i] = geom.Segment{A: pts[i], B: pts[(i+1)%6]}
	}
	return edges
}
