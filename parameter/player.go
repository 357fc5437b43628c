package parameter

// Player actor
const (
	// PlayerSpeed is the controllable actor speed in cells per second
	PlayerSpeed = 2.0

	// InputDeadZone is the minimum axis magnitude that moves a controllable actor
	InputDeadZone = 0.01
)
