package terminal

import (
	"sync"
	"time"

	"github.com/lixenwraith/worldstream/input"
)

// DefaultHoldWindow covers the gap between the first key press and auto-repeat
const DefaultHoldWindow = 550 * time.Millisecond

// KeyHold approximates held keys from press events
// Terminals report no key release, a key counts as held until the window passes without a repeat
type KeyHold struct {
	mu     sync.Mutex
	window time.Duration
	seen   map[input.Key]time.Time
}

// NewKeyHold creates a tracker with the given hold window
func NewKeyHold(window time.Duration) *KeyHold {
	if window <= 0 {
		window = DefaultHoldWindow
	}
	return &KeyHold{
		window: window,
		seen:   make(map[input.Key]time.Time),
	}
}

// Press records a press or repeat of k
func (h *KeyHold) Press(k input.Key, at time.Time) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.seen[k] = at
}

// Release forgets k immediately
func (h *KeyHold) Release(k input.Key) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.seen, k)
}

// Held returns the keys pressed within the window before now, pruning the rest
func (h *KeyHold) Held(now time.Time) map[input.Key]bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	held := make(map[input.Key]bool, len(h.seen))
	for k, at := range h.seen {
		if now.Sub(at) > h.window {
			delete(h.seen, k)
			continue
		}
		held[k] = true
	}
	return held
}

// Snapshot resolves the currently held keys through bindings
func (h *KeyHold) Snapshot(bindings []input.AxisBinding, now time.Time) input.Snapshot {
	return input.Resolve(bindings, h.Held(now))
}
