package parameter

// Terrain generation
const (
	// DefaultRenderDistance is the half-width of the streamed window in cells
	DefaultRenderDistance = 20

	// MaxRenderDistance bounds the window; pool size is (2*d)^2
	MaxRenderDistance = 256

	// DefaultSeed is hashed into the noise seed when none is configured
	DefaultSeed = "deadbeef"

	// NoiseScale divides cell coordinates before sampling noise
	NoiseScale = 10.0

	// WaterThreshold and DirtThreshold classify noise samples, anything above is grass
	WaterThreshold = -0.15
	DirtThreshold  = -0.05
)
