package parameter

// System Execution Priorities (lower runs first)
// Priorities order systems inside one scheduler stage, dependency edges order the stages
const (
	PriorityPlayerControl     = 10
	PriorityCamera            = 20 // After player control, before everything that reads the camera
	PriorityTerrain           = 30
	PriorityActorProjection   = 40
	PriorityTerrainProjection = 50 // After terrain generation
	PriorityAudio             = 900
)

// System names, used as dependency keys by the dispatcher
const (
	SystemPlayerControl     = "player_control"
	SystemCamera            = "camera_control"
	SystemTerrain           = "terrain_generation"
	SystemActorProjection   = "actor_projection"
	SystemTerrainProjection = "terrain_projection"
	SystemAudio             = "audio_cue"
)
