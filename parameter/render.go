package parameter

// TileSize is the edge length of one world cell in render pixels
const TileSize = 32.0

// Sprite sheet indexes
const (
	SpriteGrass  = 0
	SpritePlayer = 1
	SpriteDirt   = 3
	SpriteWater  = 4
	SpriteAir    = 5

	SpriteCount = 6
)

// Draw layers, lower is drawn first
const (
	LayerTerrain uint8 = 0
	LayerActor   uint8 = 1
)
