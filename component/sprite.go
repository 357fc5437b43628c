package component

// SpriteComponent selects the sprite sheet slot drawn at the entity's render transform
type SpriteComponent struct {
	Index int
	Layer uint8 // Draw order, lower first
}
