package vmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// --- World / render space helpers over mgl32 ---

// FloorCell converts a world coordinate to the integer cell containing it
func FloorCell(v float32) int {
	return int(math.Floor(float64(v)))
}

// ClampF32 bounds v to [lo, hi]
func ClampF32(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Lift returns a pure z offset vector
func Lift(z float32) mgl32.Vec3 {
	return mgl32.Vec3{0, 0, z}
}

// Uniform2 returns a 2D vector with both components set to s
func Uniform2(s float32) mgl32.Vec2 {
	return mgl32.Vec2{s, s}
}

// NormalizeOrZero returns the unit vector of v, zero vector when v has no length
func NormalizeOrZero(v mgl32.Vec3) mgl32.Vec3 {
	l := v.Len()
	if l == 0 {
		return mgl32.Vec3{}
	}
	return v.Mul(1 / l)
}
