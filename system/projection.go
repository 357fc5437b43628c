package system

import (
	"sync/atomic"
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/worldstream/component"
	"github.com/lixenwraith/worldstream/core"
	"github.com/lixenwraith/worldstream/engine"
	"github.com/lixenwraith/worldstream/event"
	"github.com/lixenwraith/worldstream/parameter"
	"github.com/lixenwraith/worldstream/status"
	"github.com/lixenwraith/worldstream/vmath"
)

// Project maps a world position to render space relative to the camera
// camT is the camera's render translation, camPos its world position
func Project(camT, camPos, pos mgl32.Vec3) mgl32.Vec3 {
	return camT.Add(pos.Sub(camPos).Mul(parameter.TileSize))
}

// cameraView is the per-frame camera snapshot every projector reads
type cameraView struct {
	translation mgl32.Vec3
	position    mgl32.Vec3
	zoom        float32
}

// readCamera snapshots the active camera, false if any part is missing
func readCamera(w *engine.World, cs engine.ComponentStore) (cameraView, bool) {
	active, ok := engine.GetResource[*engine.ActiveCamera](w.Resources)
	if !ok || active == nil || active.Entity == core.NoEntity {
		return cameraView{}, false
	}
	pos, ok := cs.Position.Get(active.Entity)
	if !ok {
		return cameraView{}, false
	}
	rt, ok := cs.RenderTransform.Get(active.Entity)
	if !ok {
		return cameraView{}, false
	}
	cam, ok := cs.Camera.Get(active.Entity)
	if !ok {
		return cameraView{}, false
	}
	return cameraView{translation: rt.Translation, position: pos.Vec, zoom: cam.Zoom}, true
}

// project writes e's render transform, attaching one if missing
func (v cameraView) project(rts *engine.Store[component.RenderTransformComponent], e core.Entity, pos mgl32.Vec3) {
	rt, ok := rts.Get(e)
	if !ok {
		rt = component.NewRenderTransform(mgl32.Vec3{})
	}
	rt.Translation = Project(v.translation, v.position, pos)
	rt.Scale = vmath.Uniform2(v.zoom)
	rts.Set(e, rt)
}

// ActorProjectionSystem re-projects every actor each frame
type ActorProjectionSystem struct {
	engine.SystemBase
}

func NewActorProjectionSystem(world *engine.World) *ActorProjectionSystem {
	return &ActorProjectionSystem{SystemBase: engine.NewSystemBase(world)}
}

func (s *ActorProjectionSystem) Name() string {
	return parameter.SystemActorProjection
}

func (s *ActorProjectionSystem) Priority() int {
	return parameter.PriorityActorProjection
}

func (s *ActorProjectionSystem) Update(dt time.Duration) {
	view, ok := readCamera(s.World, s.Component)
	if !ok {
		return
	}

	actors := s.World.Query().
		With(s.Component.Actor).
		With(s.Component.Position).
		Execute()

	for _, e := range actors {
		pos, ok := s.Component.Position.Get(e)
		if !ok {
			continue
		}
		view.project(s.Component.RenderTransform, e, pos.Vec)
	}
}

// TerrainProjectionSystem re-projects terrain cells only after an Updated event
// Terrain is static between updates: the camera's position and render translation move
// in lockstep, so a cell's projection stays valid until the window is repainted
type TerrainProjectionSystem struct {
	engine.SystemBase

	bus     *event.WorldBus
	reader  event.ReaderID
	pending bool

	statPasses *atomic.Int64
}

// NewTerrainProjectionSystem registers the system's own bus reader
func NewTerrainProjectionSystem(world *engine.World, bus *event.WorldBus) *TerrainProjectionSystem {
	return &TerrainProjectionSystem{
		SystemBase: engine.NewSystemBase(world),
		bus:        bus,
		reader:     bus.RegisterReader(),
		statPasses: metrics(world).Counters.Get(status.ProjectionTerrainPasses),
	}
}

func (s *TerrainProjectionSystem) Name() string {
	return parameter.SystemTerrainProjection
}

func (s *TerrainProjectionSystem) Priority() int {
	return parameter.PriorityTerrainProjection
}

// Pending reports an update that has been drained but not yet applied
func (s *TerrainProjectionSystem) Pending() bool {
	return s.pending
}

func (s *TerrainProjectionSystem) Update(dt time.Duration) {
	if event.ContainsType(s.bus.Drain(s.reader), event.EventUpdated) {
		s.pending = true
	}
	if !s.pending {
		return
	}

	// Applied whole or not at all; an unreadable camera defers to a later frame
	view, ok := readCamera(s.World, s.Component)
	if !ok {
		return
	}

	cells := s.World.Query().
		With(s.Component.Terrain).
		With(s.Component.Position).
		Execute()

	for _, e := range cells {
		pos, ok := s.Component.Position.Get(e)
		if !ok {
			continue
		}
		terrain, _ := s.Component.Terrain.Get(e)

		view.project(s.Component.RenderTransform, e, pos.Vec)
		s.Component.Sprite.Set(e, component.SpriteComponent{
			Index: terrain.Variant.SpriteIndex(),
			Layer: parameter.LayerTerrain,
		})
	}
	s.pending = false
	s.statPasses.Add(1)
}
