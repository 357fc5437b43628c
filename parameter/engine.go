package parameter

import "time"

// Game Loop & Engine Timing
const (
	// DefaultFrameRate is the host tick rate when configuration does not set one
	DefaultFrameRate = 30

	// MaxFrameRate bounds the configurable tick rate
	MaxFrameRate = 240

	// MaxFrameDelta caps the delta fed to systems after a stall (debugger, suspended terminal)
	MaxFrameDelta = 250 * time.Millisecond
)
