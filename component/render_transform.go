package component

import "github.com/go-gl/mathgl/mgl32"

// RenderTransformComponent is the derived pixel-space placement consumed by renderers
// Never authoritative: always re-derivable from PositionComponent and the camera snapshot
type RenderTransformComponent struct {
	Translation mgl32.Vec3
	Scale       mgl32.Vec2
}

// NewRenderTransform returns an identity-scaled transform at translation t
func NewRenderTransform(t mgl32.Vec3) RenderTransformComponent {
	return RenderTransformComponent{Translation: t, Scale: mgl32.Vec2{1, 1}}
}
