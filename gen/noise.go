package gen

import (
	"hash/fnv"

	"github.com/ojrac/opensimplex-go"

	"github.com/lixenwraith/worldstream/component"
	"github.com/lixenwraith/worldstream/parameter"
)

// HashSeed folds a seed string into the 32-bit noise seed (FNV-1a)
func HashSeed(seed string) uint32 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(seed))
	return h.Sum32()
}

// Field is a deterministic terrain noise field
// Sampling is pure over (seed, x, y); a Field is safe for concurrent reads
type Field struct {
	seed  string
	noise opensimplex.Noise
}

// NewField builds the noise field for a seed string
func NewField(seed string) *Field {
	return &Field{
		seed:  seed,
		noise: opensimplex.New(int64(HashSeed(seed))),
	}
}

// Seed returns the seed string the field was built from
func (f *Field) Seed() string {
	return f.seed
}

// Sample returns noise at cell (x, y) in [-1, 1]
func (f *Field) Sample(x, y int) float64 {
	return f.noise.Eval2(float64(x)/parameter.NoiseScale, float64(y)/parameter.NoiseScale)
}

// Classify maps the cell at (x, y) to its terrain variant
// Never returns TerrainAir
func (f *Field) Classify(x, y int) component.TerrainVariant {
	return ClassifySample(f.Sample(x, y))
}

// ClassifySample applies the terrain thresholds to a raw noise sample
func ClassifySample(v float64) component.TerrainVariant {
	switch {
	case v < parameter.WaterThreshold:
		return component.TerrainWater
	case v < parameter.DirtThreshold:
		return component.TerrainDirt
	default:
		return component.TerrainGrass
	}
}
