package status

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Metric keys reported by the streaming systems
const (
	FrameTicks = "frame.ticks"

	CameraRequests  = "camera.requests"  // GenerateRequest events drained
	CameraGenerates = "camera.generates" // Coalesced Generate events published
	CameraZoom      = "camera.zoom"

	TerrainGenerations = "terrain.generations"
	TerrainSkipped     = "terrain.skipped"
	TerrainPool        = "terrain.pool"
	TerrainActive      = "terrain.active"

	ProjectionTerrainPasses = "projection.terrain_passes"
)

// Registry holds the engine's diagnostic metrics
// Systems cache metric pointers at construction, Update loops write the atomics directly
type Registry struct {
	Counters *MetricMap[atomic.Int64]
	Gauges   *MetricMap[Gauge]
}

// NewRegistry creates an empty Registry
func NewRegistry() *Registry {
	return &Registry{
		Counters: NewMetricMap[atomic.Int64](),
		Gauges:   NewMetricMap[Gauge](),
	}
}

// Counter returns the current value of a counter, zero if never written
func (r *Registry) Counter(key string) int64 {
	return r.Counters.Get(key).Load()
}

// Gauge returns the current value of a gauge, zero if never written
func (r *Registry) Gauge(key string) float64 {
	return r.Gauges.Get(key).Get()
}

// TotalCount returns the number of registered metrics
func (r *Registry) TotalCount() int {
	return r.Counters.Count() + r.Gauges.Count()
}

// String renders every metric as sorted key=value pairs, used for debug logs
func (r *Registry) String() string {
	var b strings.Builder
	r.Counters.Range(func(key string, c *atomic.Int64) {
		fmt.Fprintf(&b, "%s=%d ", key, c.Load())
	})
	r.Gauges.Range(func(key string, g *Gauge) {
		fmt.Fprintf(&b, "%s=%g ", key, g.Get())
	})
	return strings.TrimSpace(b.String())
}
