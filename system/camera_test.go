package system

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/worldstream/component"
	"github.com/lixenwraith/worldstream/engine"
	"github.com/lixenwraith/worldstream/event"
	"github.com/lixenwraith/worldstream/input"
	"github.com/lixenwraith/worldstream/parameter"
)

func TestCameraCoalescesRequests(t *testing.T) {
	w, bus := newTestWorld(t, 2)
	spawnCamera(w, mgl32.Vec3{3.5, -1.25, 10}, 4)
	cam := NewCameraSystem(w, bus, 4)
	probe := bus.RegisterReader()

	for i := 0; i < 5; i++ {
		bus.Publish(event.GenerateRequest{})
	}
	cam.Update(frame)

	events := bus.Drain(probe)
	counts := countTypes(events)
	assert.Equal(t, 5, counts[event.EventGenerateRequest])
	assert.Equal(t, 1, counts[event.EventGenerate])
	assert.Equal(t, 1, counts[event.EventUpdated])

	g, ok := event.LastGenerate(events)
	require.True(t, ok)
	assert.Equal(t, event.Generate{X: 3.5, Y: -1.25}, g)

	// Generate precedes Updated
	require.Len(t, events, 7)
	assert.Equal(t, event.EventGenerate, events[5].Type())
	assert.Equal(t, event.EventUpdated, events[6].Type())

	// Nothing new next frame
	cam.Update(frame)
	assert.Empty(t, bus.Drain(probe))
}

func TestCameraSkipsFrameWithoutCamera(t *testing.T) {
	w, bus := newTestWorld(t, 2)
	cam := NewCameraSystem(w, bus, 4)
	setAxes(w, map[string]float32{input.AxisZoom: 1})
	probe := bus.RegisterReader()

	bus.Publish(event.GenerateRequest{})
	cam.Update(frame)

	assert.Equal(t, float32(4), cam.Zoom())
	assert.Len(t, bus.Drain(probe), 1)

	// The request was not consumed while the camera was missing
	spawnCamera(w, mgl32.Vec3{0, 0, 10}, 4)
	cam.Update(frame)
	counts := countTypes(bus.Drain(probe))
	assert.Equal(t, 1, counts[event.EventGenerate])
}

func TestCameraZoomClamp(t *testing.T) {
	tests := []struct {
		name string
		axis float32
		want float32
	}{
		{"zoom in to max", 1, parameter.MaxZoom},
		{"zoom out to min", -1, parameter.MinZoom},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, bus := newTestWorld(t, 2)
			e := spawnCamera(w, mgl32.Vec3{0, 0, 10}, 4)
			cam := NewCameraSystem(w, bus, 4)
			setAxes(w, map[string]float32{input.AxisZoom: tt.axis})

			for i := 0; i < 1000; i++ {
				cam.Update(frame)
			}

			cs := engine.GetComponentStore(w)
			rt, _ := cs.RenderTransform.Get(e)
			c, _ := cs.Camera.Get(e)
			assert.Equal(t, tt.want, cam.Zoom())
			assert.Equal(t, tt.want, c.Zoom)
			assert.Equal(t, mgl32.Vec2{1 / tt.want, 1 / tt.want}, rt.Scale)
		})
	}
}

func TestCameraInitialZoomClamped(t *testing.T) {
	w, bus := newTestWorld(t, 2)
	assert.Equal(t, float32(parameter.MaxZoom), NewCameraSystem(w, bus, 1000).Zoom())
	assert.Equal(t, float32(parameter.MinZoom), NewCameraSystem(w, bus, 0).Zoom())

	cam := NewCameraSystem(w, bus, 4)
	cam.SetZoomBounds(1, 2)
	assert.Equal(t, float32(2), cam.Zoom())
	cam.SetZoomBounds(3, 1)
	assert.Equal(t, float32(2), cam.Zoom())
}

func TestCameraFollowsTarget(t *testing.T) {
	w, bus := newTestWorld(t, 2)
	e := spawnCamera(w, mgl32.Vec3{0, 0, 10}, 4)
	cam := NewCameraSystem(w, bus, 4)
	engine.AddResource(w.Resources, &engine.CameraTarget{
		Target: component.TargetPosition{Pos: mgl32.Vec3{10, 0, 10}},
	})

	cam.Update(frame * 5)

	cs := engine.GetComponentStore(w)
	pos, _ := cs.Position.Get(e)
	rt, _ := cs.RenderTransform.Get(e)
	assert.Equal(t, mgl32.Vec3{5, 0, 10}, pos.Vec)
	assert.Equal(t, mgl32.Vec3{5 * parameter.TileSize, 0, 10}, rt.Translation)
}

func TestCameraHoldsOnDanglingTarget(t *testing.T) {
	w, bus := newTestWorld(t, 2)
	e := spawnCamera(w, mgl32.Vec3{1, 2, 10}, 4)
	cam := NewCameraSystem(w, bus, 4)
	engine.AddResource(w.Resources, &engine.CameraTarget{
		Target: component.TargetEntity{Entity: 999, ZOffset: 10},
	})

	cam.Update(frame)

	pos, _ := engine.GetComponentStore(w).Position.Get(e)
	assert.Equal(t, mgl32.Vec3{1, 2, 10}, pos.Vec)
}
