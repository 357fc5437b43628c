package event

// EventType identifies a WorldEvent variant for logging and filtering
type EventType int

const (
	// EventGenerateRequest asks for a terrain regeneration without a location
	// Trigger: host key binding | Consumer: CameraSystem
	EventGenerateRequest EventType = iota + 1

	// EventGenerate regenerates terrain centred on X, Y
	// Trigger: CameraSystem (coalesced) | Consumer: TerrainSystem
	EventGenerate

	// EventUpdated signals that terrain changed and must be re-projected
	// Trigger: CameraSystem, TerrainSystem | Consumer: TerrainProjectionSystem, audio cue
	EventUpdated
)

// WorldEvent is the sealed set of world streaming events
// Values are immutable once published
type WorldEvent interface {
	Type() EventType
}

// GenerateRequest carries no position; the camera decides where to generate
type GenerateRequest struct{}

// Generate requests a terrain window centred on world coordinates
type Generate struct {
	X, Y float32
}

// Updated notifies readers that the terrain window was repainted
type Updated struct{}

func (GenerateRequest) Type() EventType { return EventGenerateRequest }
func (Generate) Type() EventType        { return EventGenerate }
func (Updated) Type() EventType         { return EventUpdated }
