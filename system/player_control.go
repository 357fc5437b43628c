package system

import (
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/worldstream/engine"
	"github.com/lixenwraith/worldstream/input"
	"github.com/lixenwraith/worldstream/parameter"
	"github.com/lixenwraith/worldstream/vmath"
)

// PlayerControlSystem moves controllable actors along the input axes
type PlayerControlSystem struct {
	engine.SystemBase
}

func NewPlayerControlSystem(world *engine.World) *PlayerControlSystem {
	return &PlayerControlSystem{SystemBase: engine.NewSystemBase(world)}
}

func (s *PlayerControlSystem) Name() string {
	return parameter.SystemPlayerControl
}

func (s *PlayerControlSystem) Priority() int {
	return parameter.PriorityPlayerControl
}

func (s *PlayerControlSystem) Update(dt time.Duration) {
	in, _ := engine.GetResource[*engine.InputResource](s.World.Resources)
	dir := mgl32.Vec3{in.Axis(input.AxisHorizontal), in.Axis(input.AxisVertical), 0}
	if dir.Len() < parameter.InputDeadZone {
		return
	}
	dir = vmath.NormalizeOrZero(dir)
	secs := float32(dt.Seconds())

	entities := s.World.Query().
		With(s.Component.Controllable).
		With(s.Component.Actor).
		With(s.Component.Position).
		Execute()

	for _, e := range entities {
		actor, _ := s.Component.Actor.Get(e)
		pos, ok := s.Component.Position.Get(e)
		if !ok {
			continue
		}
		pos.Vec = pos.Vec.Add(dir.Mul(actor.Speed * secs))
		s.Component.Position.Set(e, pos)
	}
}
