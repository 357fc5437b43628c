package engine

import (
	"fmt"
	"reflect"
	"sync"
	"time"

	"github.com/lixenwraith/worldstream/core"
)

// World contains all entities, their components in typed stores, and global resources
type World struct {
	mu           sync.RWMutex
	nextEntityID core.Entity

	// Global ResourceStore
	Resources *ResourceStore

	stores map[reflect.Type]AnyStore

	builder    *DispatcherBuilder
	dispatcher *Dispatcher
	parallel   bool
}

// NewWorld creates a new ECS world
func NewWorld() *World {
	return &World{
		nextEntityID: 1,
		Resources:    NewResourceStore(),
		stores:       make(map[reflect.Type]AnyStore),
		builder:      NewDispatcherBuilder(),
	}
}

// GetStore returns the world's store for component type T, creating it on first use
// Call once during system construction; the pointer remains valid for the world lifetime
func GetStore[T any](w *World) *Store[T] {
	var zero T
	t := reflect.TypeOf(&zero).Elem()

	w.mu.RLock()
	s, ok := w.stores[t]
	w.mu.RUnlock()
	if ok {
		return s.(*Store[T])
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if s, ok := w.stores[t]; ok {
		return s.(*Store[T])
	}
	store := NewStore[T]()
	w.stores[t] = store
	return store
}

// CreateEntity reserves a new entity ID
func (w *World) CreateEntity() core.Entity {
	w.mu.Lock()
	defer w.mu.Unlock()

	id := w.nextEntityID
	w.nextEntityID++
	return id
}

// DestroyEntity removes all components associated with an entity
func (w *World) DestroyEntity(e core.Entity) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	for _, store := range w.stores {
		store.Remove(e)
	}
}

// HasAnyComponent checks if an entity has at least one component
func (w *World) HasAnyComponent(e core.Entity) bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	for _, store := range w.stores {
		if store.Has(e) {
			return true
		}
	}
	return false
}

// EntityCount returns the number of IDs handed out so far
func (w *World) EntityCount() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return int(w.nextEntityID - 1)
}

// Clear removes all entities and components from the world
func (w *World) Clear() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.nextEntityID = 1
	for _, store := range w.stores {
		store.Clear()
	}
}

// AddSystem registers a system that runs after every system named in deps
// Takes effect on the next Build
func (w *World) AddSystem(system System, deps ...string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.builder.Add(system, deps...)
	w.dispatcher = nil
}

// Build resolves the dependency graph of all added systems
// Must succeed before Update runs anything
func (w *World) Build(parallel bool) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	d, err := w.builder.Build(parallel)
	if err != nil {
		return fmt.Errorf("failed to build system schedule: %w", err)
	}
	w.dispatcher = d
	w.parallel = parallel
	return nil
}

// Systems returns the scheduled systems in execution order
func (w *World) Systems() []System {
	w.mu.RLock()
	defer w.mu.RUnlock()
	if w.dispatcher == nil {
		return nil
	}
	return w.dispatcher.Order()
}

// Update runs one frame of every scheduled system
// No-op until Build succeeded
func (w *World) Update(dt time.Duration) {
	w.mu.RLock()
	d := w.dispatcher
	w.mu.RUnlock()

	if d == nil {
		return
	}
	d.Dispatch(dt)
}
