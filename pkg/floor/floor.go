package floor

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/chazu/floorgen/pkg/mesh"
)

// Material slots referenced by the generators. Slot 0 is the primary
// board/tile material; slot 1 is the grout bed under tile patterns.
const (
	MatIDFloor uint32 = 0
	MatIDGrout uint32 = 1
)

// builder drives one generation pass. It owns the output buffer and
// the random source for the duration of the pass; nothing is shared
// across passes.
type builder struct {
	cfg Config
	buf *mesh.Buffer
	rng *rand.Rand
}

// woodGenerators maps each wood style to its tiling routine.
var woodGenerators = map[WoodStyle]func(*builder){
	WoodRegular:            (*builder).woodRegular,
	WoodParquet:            (*builder).woodParquet,
	WoodHerringbone:        (*builder).woodHerringbone,
	WoodHerringboneParquet: (*builder).woodHerringboneParquet,
}

// tileGenerators maps each tile style to its tiling routine. The
// grout bed is emitted separately before the style runs.
var tileGenerators = map[TileStyle]func(*builder){
	TileRegular:       (*builder).tileRegular,
	TileHopscotch:     (*builder).tileHopscotch,
	TileSteppingStone: (*builder).tileSteppingStone,
	TileHexagon:       (*builder).tileHexagon,
	TileWindmill:      (*builder).tileWindmill,
}

// Generate runs one full generation pass and returns the populated
// mesh buffers. Variance draws come from rng; pass nil for a
// time-seeded source, or a seeded one for reproducible geometry. Any
// parameter change requires a fresh call; buffers are never mutated
// incrementally.
func Generate(cfg Config, rng *rand.Rand) (*mesh.Buffer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	b := &builder{cfg: cfg, buf: mesh.NewBuffer(), rng: rng}

	switch cfg.Material {
	case Wood:
		gen, ok := woodGenerators[cfg.WoodStyle]
		if !ok {
			return nil, fmt.Errorf("floor: unknown wood style %d", int(cfg.WoodStyle))
		}
		gen(b)
	case Tile:
		gen, ok := tileGenerators[cfg.TileStyle]
		if !ok {
			return nil, fmt.Errorf("floor: unknown tile style %d", int(cfg.TileStyle))
		}
		b.tileGrout()
		gen(b)
	}

	return b.buf, nil
}

// thickness returns the unit thickness for the next board or tile,
// randomized within thickness_variance percent when vary_thickness is
// set.
func (b *builder) thickness() float64 {
	t := b.cfg.Thickness
	if !b.cfg.VaryThickness {
		return t
	}
	off := b.cfg.ThicknessVariance / 100
	return b.uniform(t*(1-off), t*(1+off))
}

// uniform draws from [lo, hi).
func (b *builder) uniform(lo, hi float64) float64 {
	return lo + b.rng.Float64()*(hi-lo)
}

// vary randomizes v within variance percent, scaled back slightly so
// the result never reaches a degenerate zero dimension at 100%.
func (b *builder) vary(v, variance float64) float64 {
	d := v * (variance / 100) * 0.99
	return b.uniform(v-d, v+d)
}
