package event

// WorldBus is the bus instantiation shared by the streaming systems
type WorldBus = Bus[WorldEvent]

// NewWorldBus creates the world event bus
func NewWorldBus() *WorldBus {
	return NewBus[WorldEvent]()
}

// ContainsType reports whether any event in the batch has type et
func ContainsType(events []WorldEvent, et EventType) bool {
	for _, ev := range events {
		if ev != nil && ev.Type() == et {
			return true
		}
	}
	return false
}

// LastGenerate returns the most recent Generate in the batch
// Earlier requests in the same batch are superseded
func LastGenerate(events []WorldEvent) (Generate, bool) {
	var (
		last  Generate
		found bool
	)
	for _, ev := range events {
		if g, ok := ev.(Generate); ok {
			last = g
			found = true
		}
	}
	return last, found
}
