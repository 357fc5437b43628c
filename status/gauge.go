package status

import (
	"math"
	"sync/atomic"
)

// Gauge is a float64 metric stored as bits for lock-free access
// Zero value reads 0.0
type Gauge struct {
	bits atomic.Uint64
}

// Set stores v
func (g *Gauge) Set(v float64) {
	g.bits.Store(math.Float64bits(v))
}

// Get loads the current value
func (g *Gauge) Get() float64 {
	return math.Float64frombits(g.bits.Load())
}
