package component

import "github.com/go-gl/mathgl/mgl32"

// PositionComponent is the logical location of an entity in world (tile) units
// Source of truth for every projection
type PositionComponent struct {
	Vec mgl32.Vec3
}

// NewPosition creates a position on the ground plane
func NewPosition(x, y float32) PositionComponent {
	return PositionComponent{Vec: mgl32.Vec3{x, y, 0}}
}
