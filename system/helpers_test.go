package system

import (
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/worldstream/component"
	"github.com/lixenwraith/worldstream/config"
	"github.com/lixenwraith/worldstream/core"
	"github.com/lixenwraith/worldstream/engine"
	"github.com/lixenwraith/worldstream/event"
	"github.com/lixenwraith/worldstream/input"
	"github.com/lixenwraith/worldstream/status"
)

const frame = 100 * time.Millisecond

func newTestWorld(t *testing.T, renderDistance uint16) (*engine.World, *event.WorldBus) {
	t.Helper()
	w := engine.NewWorld()
	settings := config.Default()
	settings.RenderDistance = renderDistance
	engine.AddResource(w.Resources, &settings)
	engine.AddResource(w.Resources, status.NewRegistry())
	return w, event.NewWorldBus()
}

// spawnCamera creates a camera whose render translation starts equal to its position
func spawnCamera(w *engine.World, pos mgl32.Vec3, zoom float32) core.Entity {
	cs := engine.GetComponentStore(w)
	eb := w.NewEntity()
	engine.With(eb, cs.Position, component.PositionComponent{Vec: pos})
	engine.With(eb, cs.RenderTransform, component.NewRenderTransform(pos))
	engine.With(eb, cs.Camera, component.CameraComponent{Zoom: zoom})
	cam := eb.Build()
	engine.AddResource(w.Resources, &engine.ActiveCamera{Entity: cam})
	return cam
}

func spawnActor(w *engine.World, pos mgl32.Vec3, controllable bool) core.Entity {
	cs := engine.GetComponentStore(w)
	eb := w.NewEntity()
	engine.With(eb, cs.Position, component.PositionComponent{Vec: pos})
	engine.With(eb, cs.Actor, component.ActorComponent{Speed: 2})
	if controllable {
		engine.With(eb, cs.Controllable, component.ControllableComponent{})
	}
	return eb.Build()
}

func setAxes(w *engine.World, axes map[string]float32) {
	engine.AddResource(w.Resources, &engine.InputResource{Source: input.NewSnapshot(axes, nil)})
}

func countTypes(events []event.WorldEvent) map[event.EventType]int {
	counts := make(map[event.EventType]int)
	for _, ev := range events {
		counts[ev.Type()]++
	}
	return counts
}
