package system

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/worldstream/component"
	"github.com/lixenwraith/worldstream/core"
	"github.com/lixenwraith/worldstream/engine"
)

func TestResolveTarget(t *testing.T) {
	positions := engine.NewStore[component.PositionComponent]()
	player := core.Entity(7)
	positions.Set(player, component.PositionComponent{Vec: mgl32.Vec3{3, -2, 0}})

	tests := []struct {
		name   string
		target component.Target
		want   mgl32.Vec3
		ok     bool
	}{
		{"none", component.TargetNone{}, mgl32.Vec3{}, false},
		{"nil", nil, mgl32.Vec3{}, false},
		{"position", component.TargetPosition{Pos: mgl32.Vec3{1, 2, 3}}, mgl32.Vec3{1, 2, 3}, true},
		{"entity with hover", component.TargetEntity{Entity: player, ZOffset: 10}, mgl32.Vec3{3, -2, 10}, true},
		{"dangling entity", component.TargetEntity{Entity: 99, ZOffset: 10}, mgl32.Vec3{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ResolveTarget(tt.target, positions)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveTargetTracksEntity(t *testing.T) {
	positions := engine.NewStore[component.PositionComponent]()
	e := core.Entity(1)
	target := component.TargetEntity{Entity: e}

	positions.Set(e, component.NewPosition(1, 1))
	first, _ := ResolveTarget(target, positions)

	positions.Set(e, component.NewPosition(4, 5))
	second, _ := ResolveTarget(target, positions)

	assert.Equal(t, mgl32.Vec3{1, 1, 0}, first)
	assert.Equal(t, mgl32.Vec3{4, 5, 0}, second)
}
