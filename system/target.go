package system

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/worldstream/component"
	"github.com/lixenwraith/worldstream/engine"
	"github.com/lixenwraith/worldstream/vmath"
)

// ResolveTarget returns the world position a camera target points at this frame
// A dangling entity target resolves to false silently; callers treat it as "no movement"
func ResolveTarget(t component.Target, positions *engine.Store[component.PositionComponent]) (mgl32.Vec3, bool) {
	switch t := t.(type) {
	case component.TargetNone:
		return mgl32.Vec3{}, false
	case component.TargetPosition:
		return t.Pos, true
	case component.TargetEntity:
		pos, ok := positions.Get(t.Entity)
		if !ok {
			return mgl32.Vec3{}, false
		}
		return pos.Vec.Add(vmath.Lift(t.ZOffset)), true
	default:
		return mgl32.Vec3{}, false
	}
}
