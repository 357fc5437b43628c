package engine

import (
	"reflect"
	"sync"
	"time"

	"github.com/lixenwraith/worldstream/component"
	"github.com/lixenwraith/worldstream/core"
	"github.com/lixenwraith/worldstream/input"
)

// ResourceStore is a thread-safe container for global resources
// It allows systems to access shared data (Time, Camera, Input, Settings) without
// coupling to the session that owns them
type ResourceStore struct {
	mu        sync.RWMutex
	resources map[reflect.Type]any
}

// NewResourceStore creates a new empty resource store
func NewResourceStore() *ResourceStore {
	return &ResourceStore{
		resources: make(map[reflect.Type]any),
	}
}

// AddResource registers or replaces a resource in the store
// Pointer types are recommended so systems can mutate shared state in place
func AddResource[T any](rs *ResourceStore, resource T) {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	rs.resources[reflect.TypeOf(&resource).Elem()] = resource
}

// GetResource retrieves a resource of type T from the store
// Returns the zero value of T and false if not found
func GetResource[T any](rs *ResourceStore) (T, bool) {
	rs.mu.RLock()
	defer rs.mu.RUnlock()

	var target T
	val, ok := rs.resources[reflect.TypeOf(&target).Elem()]
	if !ok {
		return target, false
	}
	return val.(T), true
}

// RemoveResource deletes the resource of type T
func RemoveResource[T any](rs *ResourceStore) {
	rs.mu.Lock()
	defer rs.mu.Unlock()

	var target T
	delete(rs.resources, reflect.TypeOf(&target).Elem())
}

// MustGetResource retrieves a resource or panics if missing
// Reserved for wiring code; per-frame systems use GetResource and degrade
func MustGetResource[T any](rs *ResourceStore) T {
	res, ok := GetResource[T](rs)
	if !ok {
		var target T
		panic("Required resource not found: " + reflect.TypeOf(&target).Elem().String())
	}
	return res
}

// --- Core Resources ---

// TimeResource wraps frame timing for systems
// Updated by the session at the start of every tick
type TimeResource struct {
	// DeltaTime is the duration since the last update
	DeltaTime time.Duration

	// FrameNumber is the current frame count
	FrameNumber int64
}

// Seconds returns the frame delta in seconds
func (tr *TimeResource) Seconds() float32 {
	return float32(tr.DeltaTime.Seconds())
}

// ActiveCamera names the camera entity every projection is relative to
type ActiveCamera struct {
	Entity core.Entity
}

// CameraTarget is what the active camera follows
type CameraTarget struct {
	Target component.Target
}

// InputResource exposes the current frame's input snapshot
type InputResource struct {
	Source input.Source
}

// Axis reads an axis from the current source, zero when no source is attached
func (ir *InputResource) Axis(name string) float32 {
	if ir == nil || ir.Source == nil {
		return 0
	}
	return ir.Source.AxisValue(name)
}
