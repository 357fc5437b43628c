package engine

import "time"

// System is a per-frame unit of work
type System interface {
	// Name is the unique key other systems use to declare dependencies
	Name() string

	// Priority orders systems inside one stage, lower first
	Priority() int

	// Update runs the system to completion once per frame
	Update(dt time.Duration)
}

// SystemBase provides common dependency for all system
// Embed in system struct to eliminate boilerplate
type SystemBase struct {
	World     *World
	Component ComponentStore
}

// NewSystemBase initializes base dependency from world
// Call once in system constructor
func NewSystemBase(w *World) SystemBase {
	return SystemBase{
		World:     w,
		Component: GetComponentStore(w),
	}
}
