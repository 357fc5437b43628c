package component

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/worldstream/core"
)

// Target is what the camera follows, re-resolved every frame
// Variants: TargetNone, TargetPosition, TargetEntity
type Target interface {
	isTarget()
}

// TargetNone follows nothing; the camera holds position
type TargetNone struct{}

// TargetPosition follows a fixed snapshot of world coordinates
type TargetPosition struct {
	Pos mgl32.Vec3
}

// TargetEntity follows an entity's position, raised by ZOffset on the z axis
type TargetEntity struct {
	Entity  core.Entity
	ZOffset float32
}

func (TargetNone) isTarget()     {}
func (TargetPosition) isTarget() {}
func (TargetEntity) isTarget()   {}
