package game

import (
	"fmt"
	"log"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"

	"github.com/lixenwraith/worldstream/audio"
	"github.com/lixenwraith/worldstream/component"
	"github.com/lixenwraith/worldstream/config"
	"github.com/lixenwraith/worldstream/core"
	"github.com/lixenwraith/worldstream/engine"
	"github.com/lixenwraith/worldstream/event"
	"github.com/lixenwraith/worldstream/input"
	"github.com/lixenwraith/worldstream/parameter"
	"github.com/lixenwraith/worldstream/status"
	"github.com/lixenwraith/worldstream/system"
)

// Session owns one streaming world: its systems, bus, and the camera and player entities
// Tick, SetInput and the request methods are called from the host loop goroutine
type Session struct {
	ID uuid.UUID

	World   *engine.World
	Bus     *event.WorldBus
	Metrics *status.Registry

	settings *config.Settings
	time     *engine.TimeResource
	input    *engine.InputResource
	target   *engine.CameraTarget

	camera core.Entity
	player core.Entity
	paused bool

	cameraSystem      *system.CameraSystem
	terrainSystem     *system.TerrainSystem
	terrainProjection *system.TerrainProjectionSystem
	cue               *audio.CueSystem
}

type sessionOptions struct {
	cuePlayer audio.CuePlayer
	muted     bool
	id        uuid.UUID
}

// Option configures a Session at construction
type Option func(*sessionOptions)

// WithCuePlayer schedules the audio cue system with player as its output
func WithCuePlayer(player audio.CuePlayer) Option {
	return func(o *sessionOptions) {
		o.cuePlayer = player
	}
}

// WithMuted starts the audio cue system muted
func WithMuted(muted bool) Option {
	return func(o *sessionOptions) {
		o.muted = muted
	}
}

// WithID fixes the session identifier instead of generating one
func WithID(id uuid.UUID) Option {
	return func(o *sessionOptions) {
		o.id = id
	}
}

// New validates settings and builds a ready-to-tick session
func New(settings config.Settings, opts ...Option) (*Session, error) {
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}

	o := sessionOptions{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.id == uuid.Nil {
		o.id = uuid.New()
	}

	s := &Session{
		ID:       o.id,
		World:    engine.NewWorld(),
		Bus:      event.NewWorldBus(),
		Metrics:  status.NewRegistry(),
		settings: &settings,
		time:     &engine.TimeResource{},
		input:    &engine.InputResource{},
	}

	w := s.World
	engine.AddResource(w.Resources, s.settings)
	engine.AddResource(w.Resources, s.time)
	engine.AddResource(w.Resources, s.input)
	engine.AddResource(w.Resources, s.Metrics)

	s.spawnEntities()

	s.target = &engine.CameraTarget{Target: s.followTarget()}
	engine.AddResource(w.Resources, &engine.ActiveCamera{Entity: s.camera})
	engine.AddResource(w.Resources, s.target)

	if err := s.buildSystems(o); err != nil {
		return nil, err
	}

	log.Printf("[%s] session started: seed=%q render_distance=%d parallel=%t",
		s.ShortID(), settings.Seed, settings.RenderDistance, settings.Parallel)
	return s, nil
}

func (s *Session) spawnEntities() {
	w := s.World
	cs := engine.GetComponentStore(w)
	zoom := s.settings.Camera.Zoom

	camPos := mgl32.Vec3{0, 0, parameter.CameraStartZ}
	cam := w.NewEntity()
	engine.With(cam, cs.Position, component.PositionComponent{Vec: camPos})
	engine.With(cam, cs.RenderTransform, component.RenderTransformComponent{
		Translation: camPos,
		Scale:       mgl32.Vec2{1, 1},
	})
	engine.With(cam, cs.Camera, component.CameraComponent{Zoom: zoom})
	s.camera = cam.Build()

	player := w.NewEntity()
	engine.With(player, cs.Position, component.NewPosition(0, 0))
	engine.With(player, cs.RenderTransform, component.NewRenderTransform(mgl32.Vec3{}))
	engine.With(player, cs.Sprite, component.SpriteComponent{Index: parameter.SpritePlayer, Layer: parameter.LayerActor})
	engine.With(player, cs.Actor, component.ActorComponent{Speed: parameter.PlayerSpeed})
	engine.With(player, cs.Controllable, component.ControllableComponent{})
	s.player = player.Build()
}

func (s *Session) buildSystems(o sessionOptions) error {
	w := s.World

	s.cameraSystem = system.NewCameraSystem(w, s.Bus, s.settings.Camera.Zoom)
	s.cameraSystem.SetZoomBounds(s.settings.Camera.MinZoom, s.settings.Camera.MaxZoom)
	s.terrainSystem = system.NewTerrainSystem(w, s.Bus, s.settings.Seed)
	s.terrainProjection = system.NewTerrainProjectionSystem(w, s.Bus)

	w.AddSystem(system.NewPlayerControlSystem(w))
	w.AddSystem(s.cameraSystem, parameter.SystemPlayerControl)
	w.AddSystem(system.NewActorProjectionSystem(w), parameter.SystemCamera)
	w.AddSystem(s.terrainSystem, parameter.SystemCamera)
	w.AddSystem(s.terrainProjection, parameter.SystemCamera, parameter.SystemTerrain)

	if o.cuePlayer != nil {
		s.cue = audio.NewCueSystem(s.Bus, o.cuePlayer)
		s.cue.SetMuted(o.muted)
		w.AddSystem(s.cue, parameter.SystemTerrain)
	}

	if err := w.Build(s.settings.Parallel); err != nil {
		return err
	}
	return nil
}

// Tick advances every system by one frame, dt is capped after stalls
// While paused no system runs; events published meanwhile stay queued on the bus
func (s *Session) Tick(dt time.Duration) {
	if s.paused {
		return
	}
	if dt > parameter.MaxFrameDelta {
		dt = parameter.MaxFrameDelta
	}
	if dt < 0 {
		dt = 0
	}
	s.time.DeltaTime = dt
	s.time.FrameNumber++
	s.World.Update(dt)
	s.Metrics.Counters.Get(status.FrameTicks).Add(1)
}

// SetInput replaces the input source read by the next Tick
func (s *Session) SetInput(src input.Source) {
	s.input.Source = src
}

// RequestGenerate asks for a terrain pass at wherever the camera is when the request is consumed
func (s *Session) RequestGenerate() {
	s.Bus.Publish(event.GenerateRequest{})
}

// TogglePause freezes or resumes the world, returns true when paused after the toggle
func (s *Session) TogglePause() bool {
	s.paused = !s.paused
	log.Printf("[%s] paused: %t", s.ShortID(), s.paused)
	return s.paused
}

// Paused reports whether Tick is currently a no-op
func (s *Session) Paused() bool {
	return s.paused
}

// ToggleFollow switches the camera between following the player and holding still
// A fixed position target is left untouched
// Returns true when the camera follows after the toggle
func (s *Session) ToggleFollow() bool {
	switch s.target.Target.(type) {
	case component.TargetEntity:
		s.target.Target = component.TargetNone{}
	case component.TargetNone, nil:
		s.target.Target = s.followTarget()
	default:
		return s.Following()
	}
	following := s.Following()
	log.Printf("[%s] camera follow: %t", s.ShortID(), following)
	return following
}

// SetTarget replaces what the camera follows
func (s *Session) SetTarget(target component.Target) {
	s.target.Target = target
}

// Following reports whether the camera tracks the player
func (s *Session) Following() bool {
	_, ok := s.target.Target.(component.TargetEntity)
	return ok
}

// SetRenderDistance changes the window size used by the next generation
func (s *Session) SetRenderDistance(rd uint16) error {
	next := *s.settings
	next.RenderDistance = rd
	if err := next.Validate(); err != nil {
		return err
	}
	s.settings.RenderDistance = rd
	return nil
}

// HandleKey runs the one-shot key actions, returns false for keys without one
func (s *Session) HandleKey(k input.Key) bool {
	switch k {
	case input.RuneKey('g'):
		s.RequestGenerate()
	case input.KeySpace:
		s.ToggleFollow()
	case input.KeyEscape:
		s.TogglePause()
	case input.RuneKey('m'):
		if s.cue == nil {
			return false
		}
		s.cue.SetMuted(!s.cue.Muted())
	default:
		return false
	}
	return true
}

// Camera returns the active camera entity
func (s *Session) Camera() core.Entity {
	return s.camera
}

// Player returns the controllable player entity
func (s *Session) Player() core.Entity {
	return s.player
}

// Settings returns a copy of the current settings
func (s *Session) Settings() config.Settings {
	return *s.settings
}

// Terrain returns the terrain streaming system
func (s *Session) Terrain() *system.TerrainSystem {
	return s.terrainSystem
}

// Zoom returns the camera controller's zoom
func (s *Session) Zoom() float32 {
	return s.cameraSystem.Zoom()
}

// FrameNumber returns the number of ticks run
func (s *Session) FrameNumber() int64 {
	return s.time.FrameNumber
}

// ShortID is the log prefix form of the session ID
func (s *Session) ShortID() string {
	return s.ID.String()[:8]
}

// Status is a one-line summary for host status bars
func (s *Session) Status() string {
	cs := engine.GetComponentStore(s.World)
	pos, _ := cs.Position.Get(s.player)
	follow := "hold"
	if s.Following() {
		follow = "follow"
	}
	if s.paused {
		follow += " | PAUSED"
	}
	return fmt.Sprintf(" %s | seed %s | player (%.1f, %.1f) | zoom %.2f | cells %d/%d | gen %d | %s | g:generate space:follow esc:pause m:mute q:quit",
		s.ShortID(), s.settings.Seed, pos.Vec.X(), pos.Vec.Y(), s.Zoom(),
		s.terrainSystem.ActiveSize(), s.terrainSystem.PoolSize(),
		s.Metrics.Counter(status.TerrainGenerations), follow)
}

func (s *Session) followTarget() component.Target {
	return component.TargetEntity{Entity: s.player, ZOffset: parameter.CameraHoverOffset}
}
