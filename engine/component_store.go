package engine

import (
	"github.com/lixenwraith/worldstream/component"
)

// ComponentStore provides cached pointer to typed component store
// Initialized once per system to eliminate runtime map lookup
type ComponentStore struct {
	// Spatial
	Position        *Store[component.PositionComponent]
	RenderTransform *Store[component.RenderTransformComponent]

	// Terrain
	Terrain *Store[component.TerrainComponent]
	Sprite  *Store[component.SpriteComponent]

	// Actors
	Actor        *Store[component.ActorComponent]
	Controllable *Store[component.ControllableComponent]

	// View
	Camera *Store[component.CameraComponent]
}

// GetComponentStore populates ComponentStore from world
// Call once during system construction; pointer remain valid for application lifetime
func GetComponentStore(w *World) ComponentStore {
	return ComponentStore{
		Position:        GetStore[component.PositionComponent](w),
		RenderTransform: GetStore[component.RenderTransformComponent](w),

		Terrain: GetStore[component.TerrainComponent](w),
		Sprite:  GetStore[component.SpriteComponent](w),

		Actor:        GetStore[component.ActorComponent](w),
		Controllable: GetStore[component.ControllableComponent](w),

		Camera: GetStore[component.CameraComponent](w),
	}
}
