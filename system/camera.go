package system

import (
	"sync/atomic"
	"time"

	"github.com/lixenwraith/worldstream/component"
	"github.com/lixenwraith/worldstream/core"
	"github.com/lixenwraith/worldstream/engine"
	"github.com/lixenwraith/worldstream/event"
	"github.com/lixenwraith/worldstream/input"
	"github.com/lixenwraith/worldstream/parameter"
	"github.com/lixenwraith/worldstream/status"
	"github.com/lixenwraith/worldstream/vmath"
)

// CameraSystem owns zoom, follows the camera target, and turns generate requests into
// a single positioned Generate per frame
type CameraSystem struct {
	engine.SystemBase

	bus    *event.WorldBus
	reader event.ReaderID

	zoom    float32
	minZoom float32
	maxZoom float32

	statRequests  *atomic.Int64
	statGenerates *atomic.Int64
	statZoom      *status.Gauge
}

// NewCameraSystem registers the system's bus reader and clamps the initial zoom
func NewCameraSystem(world *engine.World, bus *event.WorldBus, zoom float32) *CameraSystem {
	reg := metrics(world)
	s := &CameraSystem{
		SystemBase:    engine.NewSystemBase(world),
		bus:           bus,
		reader:        bus.RegisterReader(),
		minZoom:       parameter.MinZoom,
		maxZoom:       parameter.MaxZoom,
		statRequests:  reg.Counters.Get(status.CameraRequests),
		statGenerates: reg.Counters.Get(status.CameraGenerates),
		statZoom:      reg.Gauges.Get(status.CameraZoom),
	}
	s.zoom = vmath.ClampF32(zoom, s.minZoom, s.maxZoom)
	return s
}

func (s *CameraSystem) Name() string {
	return parameter.SystemCamera
}

func (s *CameraSystem) Priority() int {
	return parameter.PriorityCamera
}

// SetZoomBounds narrows the zoom range, ignored unless 0 < lo <= hi
// Current zoom is re-clamped immediately
func (s *CameraSystem) SetZoomBounds(lo, hi float32) {
	if lo <= 0 || hi < lo {
		return
	}
	s.minZoom, s.maxZoom = lo, hi
	s.zoom = vmath.ClampF32(s.zoom, lo, hi)
}

// Zoom returns the controller's current zoom
func (s *CameraSystem) Zoom() float32 {
	return s.zoom
}

func (s *CameraSystem) Update(dt time.Duration) {
	active, ok := engine.GetResource[*engine.ActiveCamera](s.World.Resources)
	if !ok || active == nil || active.Entity == core.NoEntity {
		return
	}
	cam := active.Entity

	pos, ok := s.Component.Position.Get(cam)
	if !ok {
		return
	}
	rt, ok := s.Component.RenderTransform.Get(cam)
	if !ok {
		return
	}

	secs := float32(dt.Seconds())
	in, _ := engine.GetResource[*engine.InputResource](s.World.Resources)

	// Zoom
	s.zoom = vmath.ClampF32(s.zoom+in.Axis(input.AxisZoom)*secs, s.minZoom, s.maxZoom)
	rt.Scale = vmath.Uniform2(1 / s.zoom)
	s.Component.Camera.Set(cam, component.CameraComponent{Zoom: s.zoom})
	s.statZoom.Set(float64(s.zoom))

	// Coalesce every request drained this frame into one generation at the camera
	requests := 0
	for _, ev := range s.bus.Drain(s.reader) {
		if ev.Type() == event.EventGenerateRequest {
			requests++
		}
	}
	if requests > 0 {
		s.statRequests.Add(int64(requests))
		s.statGenerates.Add(1)
		s.bus.Publish(event.Generate{X: pos.Vec.X(), Y: pos.Vec.Y()})
		s.bus.Publish(event.Updated{})
	}

	// Follow
	if target, ok := engine.GetResource[*engine.CameraTarget](s.World.Resources); ok && target != nil {
		if dest, ok := ResolveTarget(target.Target, s.Component.Position); ok {
			step := dest.Sub(pos.Vec).Mul(secs)
			pos.Vec = pos.Vec.Add(step)
			rt.Translation = rt.Translation.Add(step.Mul(parameter.TileSize))
		}
	}

	s.Component.Position.Set(cam, pos)
	s.Component.RenderTransform.Set(cam, rt)
}
