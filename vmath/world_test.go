package vmath

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestFloorCell(t *testing.T) {
	tests := []struct {
		in   float32
		want int
	}{
		{0, 0},
		{0.99, 0},
		{-0.01, -1},
		{-2, -2},
		{5.5, 5},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FloorCell(tt.in), "FloorCell(%v)", tt.in)
	}
}

func TestClampF32(t *testing.T) {
	assert.Equal(t, float32(1), ClampF32(0, 1, 2))
	assert.Equal(t, float32(2), ClampF32(3, 1, 2))
	assert.Equal(t, float32(1.5), ClampF32(1.5, 1, 2))
}

func TestNormalizeOrZero(t *testing.T) {
	assert.Equal(t, mgl32.Vec3{}, NormalizeOrZero(mgl32.Vec3{}))
	n := NormalizeOrZero(mgl32.Vec3{3, 4, 0})
	assert.InDelta(t, 1.0, float64(n.Len()), 1e-6)
	assert.InDelta(t, 0.6, float64(n.X()), 1e-6)
}
