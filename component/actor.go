package component

// ActorComponent marks an entity that moves continuously and is re-projected every frame
type ActorComponent struct {
	Speed float32 // Cells per second
}

// ControllableComponent marks an actor driven by player input
type ControllableComponent struct{}
