package floor

import (
	"math"

	v2 "github.com/deadsy/sdfx/vec/v2"

	"github.com/chazu/floorgen/pkg/geom"
)

// woodRegular lays row-major boards: columns advance across the
// width, boards advance along the length. Width, length, and
// thickness are randomized per board when the corresponding vary flag
// is set. When length varies, a column is capped at max_boards and
// the final board stretches to the far edge.
func (b *builder) woodRegular() {
	cfg := b.cfg
	bw, bl := cfg.BoardWidth, cfg.BoardLength

	curX := 0.0
	for curX < cfg.Width {
		bw2 := bw
		if cfg.VaryWidth {
			bw2 = b.vary(bw, cfg.WidthVariance)
		}
		if curX+bw2 > cfg.Width {
			bw2 = cfg.Width - curX
		}

		curY := 0.0
		counter := 1
		for curY < cfg.Length {
			t := b.thickness()

			bl2 := bl
			if cfg.VaryLength {
				bl2 = b.vary(bl, cfg.LengthVariance)
			}
			if (counter >= cfg.MaxBoards && cfg.VaryLength) || curY+bl2 > cfg.Length {
				bl2 = cfg.Length - curY
			}

			b.addCuboid(curX, curY, 0, bw2, bl2, t, true, MatIDFloor)
			curY += bl2 + cfg.LengthSpacing
			counter++
		}

		curX += bw2 + cfg.WidthSpacing
	}
}

// woodParquet lays square groups of boards_in_group short boards in a
// basket-weave: orientation alternates between length-wise and
// width-wise both down each column and across successive columns.
func (b *builder) woodParquet() {
	cfg := b.cfg
	sp := cfg.Spacing

	// The group is square: its side is the combined width of the
	// grouped boards plus their gaps, and also each board's length.
	bl := cfg.BoardWidth*float64(cfg.BoardsInGroup) + sp*float64(cfg.BoardsInGroup-1)

	startLengthwise := true
	curX := 0.0
	for curX < cfg.Width {
		lengthwise := startLengthwise

		curY := 0.0
		for curY < cfg.Length {
			if lengthwise {
				x := curX
				for i := 0; i < cfg.BoardsInGroup; i++ {
					b.addCuboid(x, curY, 0, cfg.BoardWidth, bl, b.thickness(), true, MatIDFloor)
					x += cfg.BoardWidth + sp
				}
			} else {
				y := curY
				for i := 0; i < cfg.BoardsInGroup; i++ {
					b.addCuboid(curX, y, 0, bl, cfg.BoardWidth, b.thickness(), true, MatIDFloor)
					y += cfg.BoardWidth + sp
				}
			}

			curY += bl + sp
			lengthwise = !lengthwise
		}

		startLengthwise = !startLengthwise
		curX += bl + sp
	}
}

// cos45 doubles as sin(45°).
var cos45 = math.Cos(math.Pi / 4)

// woodHerringbone lays 45-degree boards with mitred (vertical-cut)
// ends. Each chevron pair is a rising parallelogram followed by a
// falling one; both are clipped against the floor rectangle through
// the boundary builder. Rows start one board-projection below the
// floor so the bottom sawtooth is filled.
func (b *builder) woodHerringbone() {
	cfg := b.cfg
	sp := cfg.Spacing

	// Projections onto the axes: the board width spans widthDif
	// vertically, one board runs xDif across and yDif up, and the gap
	// measures spDif along the vertical.
	widthDif := cfg.BoardWidth / cos45
	xDif := cfg.ShortBoardLength * cos45
	yDif := cfg.ShortBoardLength * cos45
	totalYDif := widthDif + yDif
	spDif := sp / cos45

	curY := -yDif
	for curY < cfg.Length {
		curX := 0.0
		rising := true

		for curX < cfg.Width {
			var edges []geom.Segment
			if rising {
				edges = quadEdges(
					v2.Vec{X: curX, Y: curY},
					v2.Vec{X: curX + xDif, Y: curY + yDif},
					v2.Vec{X: curX + xDif, Y: curY + totalYDif},
					v2.Vec{X: curX, Y: curY + widthDif},
				)
			} else {
				edges = quadEdges(
					v2.Vec{X: curX, Y: curY + yDif},
					v2.Vec{X: curX + xDif, Y: curY},
					v2.Vec{X: curX + xDif, Y: curY + widthDif},
					v2.Vec{X: curX, Y: curY + totalYDif},
				)
			}
			b.addBoundedPrism(edges, b.thickness(), MatIDFloor)

			curX += xDif + sp
			rising = !rising
		}

		curY += widthDif + spDif
	}
}

// woodHerringboneParquet lays 45-degree boards with square
// (perpendicular-cut) ends: true rotated rectangles. Each board's end
// face butts the long side of the next board, so a chevron chain
// drifts upward as it runs across the floor, and successive chains
// are offset along the board normal rather than straight up. The
// increments are asymmetric by construction; the boundary builder
// clips everything that leaves the rectangle.
func (b *builder) woodHerringboneParquet() {
	cfg := b.cfg
	sp := cfg.Spacing

	// Axis projections of the board length, board width, and gap.
	run := cfg.ShortBoardLength * cos45
	side := cfg.BoardWidth * cos45
	gap := sp * cos45

	// A chevron pair advances pairAdv in x; successive chains are
	// offset rowOff along the board normal.
	pairAdv := 2*run - side + 2*gap
	rowOff := side + gap

	// A chain rises by side per pair, so the first chain must start
	// low enough for its far end to still cover the bottom edge.
	pairs := math.Ceil((cfg.Width + 2*run) / pairAdv)
	maxDrift := pairs * side

	startY := -(maxDrift + run + side)
	for i := 0; ; i++ {
		curX := -float64(i) * rowOff
		curY := startY + float64(i)*rowOff
		if curY > cfg.Length {
			break
		}

		// Fast-forward over chevron pairs entirely left of the floor,
		// keeping the chain's drift intact.
		for curX < -(pairAdv + side) {
			curX += pairAdv
			curY += side
		}

		for curX-side < cfg.Width && curY <= cfg.Length {
			// Rising rectangle from (curX, curY).
			b.addBoundedPrism(quadEdges(
				v2.Vec{X: curX, Y: curY},
				v2.Vec{X: curX + run, Y: curY + run},
				v2.Vec{X: curX + run - side, Y: curY + run + side},
				v2.Vec{X: curX - side, Y: curY + side},
			), b.thickness(), MatIDFloor)

			// Falling rectangle whose long side butts the rising
			// board's end face.
			fx := curX + run - side + gap
			fy := curY + run + side + gap
			b.addBoundedPrism(quadEdges(
				v2.Vec{X: fx, Y: fy},
				v2.Vec{X: fx + run, Y: fy - run},
				v2.Vec{X: fx + run + side, Y: fy - run + side},
				v2.Vec{X: fx + side, Y: fy + side},
			), b.thickness(), MatIDFloor)

			curX += pairAdv
			curY += side
		}
	}
}

// quadEdges builds the closed edge loop of a four-cornered board.
func quadEdges(p0, p1, p2, p3 v2.Vec) []geom.Segment {
	return []geom.Segment{
		{A: p0, B: p1},
		{A: p1, B: p2},
		{A: p2, B: p3},
		{A: p3, B: p0},
	}
}
