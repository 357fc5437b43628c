package component

import "github.com/lixenwraith/worldstream/parameter"

// TerrainVariant classifies a terrain cell
type TerrainVariant uint8

const (
	// TerrainAir is the pool default, never produced by generation
	TerrainAir TerrainVariant = iota
	TerrainDirt
	TerrainGrass
	TerrainWater
)

var terrainNames = [...]string{
	TerrainAir:   "air",
	TerrainDirt:  "dirt",
	TerrainGrass: "grass",
	TerrainWater: "water",
}

func (v TerrainVariant) String() string {
	if int(v) < len(terrainNames) {
		return terrainNames[v]
	}
	return "unknown"
}

// SpriteIndex maps a variant to its sprite sheet slot
func (v TerrainVariant) SpriteIndex() int {
	switch v {
	case TerrainGrass:
		return parameter.SpriteGrass
	case TerrainDirt:
		return parameter.SpriteDirt
	case TerrainWater:
		return parameter.SpriteWater
	default:
		return parameter.SpriteAir
	}
}

// TerrainComponent marks a pooled cell of the streamed terrain window
type TerrainComponent struct {
	Variant TerrainVariant
}
