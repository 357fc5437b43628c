package system

import (
	"errors"
	"fmt"
	"log"
	"sync/atomic"
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/worldstream/component"
	"github.com/lixenwraith/worldstream/config"
	"github.com/lixenwraith/worldstream/core"
	"github.com/lixenwraith/worldstream/engine"
	"github.com/lixenwraith/worldstream/event"
	"github.com/lixenwraith/worldstream/gen"
	"github.com/lixenwraith/worldstream/parameter"
	"github.com/lixenwraith/worldstream/status"
	"github.com/lixenwraith/worldstream/vmath"
)

var (
	ErrEmptyWindow    = errors.New("terrain window is empty")
	ErrWindowMismatch = errors.New("terrain window does not match pool")
)

// TerrainSystem streams the terrain window around the latest Generate position
// Cells live in an arena that only grows; the active window size is tracked separately
type TerrainSystem struct {
	engine.SystemBase

	bus    *event.WorldBus
	reader event.ReaderID
	field  *gen.Field

	cells  []core.Entity // Arena, index order is paint order
	active int           // Cells painted by the last generation

	statGenerations *atomic.Int64
	statSkipped     *atomic.Int64
	statPool        *status.Gauge
	statActive      *status.Gauge
}

// NewTerrainSystem registers the system's bus reader and builds the noise field for seed
func NewTerrainSystem(world *engine.World, bus *event.WorldBus, seed string) *TerrainSystem {
	reg := metrics(world)
	return &TerrainSystem{
		SystemBase:      engine.NewSystemBase(world),
		bus:             bus,
		reader:          bus.RegisterReader(),
		field:           gen.NewField(seed),
		statGenerations: reg.Counters.Get(status.TerrainGenerations),
		statSkipped:     reg.Counters.Get(status.TerrainSkipped),
		statPool:        reg.Gauges.Get(status.TerrainPool),
		statActive:      reg.Gauges.Get(status.TerrainActive),
	}
}

func (s *TerrainSystem) Name() string {
	return parameter.SystemTerrain
}

func (s *TerrainSystem) Priority() int {
	return parameter.PriorityTerrain
}

func (s *TerrainSystem) Update(dt time.Duration) {
	// Most recent wins, earlier requests this frame are superseded
	g, ok := event.LastGenerate(s.bus.Drain(s.reader))
	if !ok {
		return
	}
	if err := s.Generate(g.X, g.Y); err != nil {
		s.statSkipped.Add(1)
		log.Printf("terrain: generation at (%.2f, %.2f) skipped: %v", g.X, g.Y, err)
	}
}

// Generate repaints the window centered on the cell containing (x, y) and publishes Updated
func (s *TerrainSystem) Generate(x, y float32) error {
	rd := s.renderDistance()
	if rd == 0 {
		return fmt.Errorf("%w: render distance is zero", ErrEmptyWindow)
	}

	size := 2 * rd
	area := size * size
	s.grow(area)

	cx, cy := vmath.FloorCell(x), vmath.FloorCell(y)
	xMin, xMax := cx-rd, cx+rd
	yMin, yMax := cy-rd, cy+rd

	curX, curY := xMin, yMin
	visited := 0
	for _, e := range s.cells[:area] {
		if curY >= yMax {
			return fmt.Errorf("%w: row %d past window end %d", ErrWindowMismatch, curY, yMax)
		}
		s.Component.Position.Set(e, component.PositionComponent{Vec: mgl32.Vec3{float32(curX), float32(curY), 0}})
		s.Component.Terrain.Set(e, component.TerrainComponent{Variant: s.field.Classify(curX, curY)})
		visited++

		curX++
		if curX == xMax {
			curX = xMin
			curY++
		}
	}
	if visited != area || curY != yMax {
		return fmt.Errorf("%w: visited %d cells for %dx%d window", ErrWindowMismatch, visited, size, size)
	}

	// Park what the window no longer covers
	for _, e := range s.cells[area:] {
		s.Component.Terrain.Set(e, component.TerrainComponent{Variant: component.TerrainAir})
	}
	s.active = area

	s.statGenerations.Add(1)
	s.statPool.Set(float64(len(s.cells)))
	s.statActive.Set(float64(area))

	s.bus.Publish(event.Updated{})
	return nil
}

// PoolSize returns the arena capacity
func (s *TerrainSystem) PoolSize() int {
	return len(s.cells)
}

// ActiveSize returns the cell count of the last painted window
func (s *TerrainSystem) ActiveSize() int {
	return s.active
}

// Cells returns a copy of the arena in paint order
func (s *TerrainSystem) Cells() []core.Entity {
	out := make([]core.Entity, len(s.cells))
	copy(out, s.cells)
	return out
}

// Field returns the noise field cells are classified from
func (s *TerrainSystem) Field() *gen.Field {
	return s.field
}

func (s *TerrainSystem) grow(n int) {
	for len(s.cells) < n {
		eb := s.World.NewEntity()
		engine.With(eb, s.Component.Position, component.PositionComponent{})
		engine.With(eb, s.Component.Terrain, component.TerrainComponent{Variant: component.TerrainAir})
		s.cells = append(s.cells, eb.Build())
	}
}

func (s *TerrainSystem) renderDistance() int {
	settings, ok := engine.GetResource[*config.Settings](s.World.Resources)
	if !ok || settings == nil {
		return parameter.DefaultRenderDistance
	}
	return int(settings.RenderDistance)
}
