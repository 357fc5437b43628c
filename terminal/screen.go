package terminal

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/worldstream/core"
)

// Terminal owns the tcell screen of the demo host
type Terminal struct {
	screen tcell.Screen

	events   chan tcell.Event
	done     chan struct{}
	pollOnce sync.Once
	finiOnce sync.Once
}

// New opens the controlling terminal
func New() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to create screen: %w", err)
	}
	return Open(screen)
}

// Open initializes an existing screen, tests pass a simulation screen
func Open(screen tcell.Screen) (*Terminal, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize screen: %w", err)
	}
	screen.HideCursor()
	screen.Clear()

	return &Terminal{
		screen: screen,
		events: make(chan tcell.Event, 256),
		done:   make(chan struct{}),
	}, nil
}

// Screen returns the underlying tcell screen
func (t *Terminal) Screen() tcell.Screen {
	return t.screen
}

// Size returns the screen size in cells
func (t *Terminal) Size() (int, int) {
	return t.screen.Size()
}

// Events starts polling on first call and returns the event channel
// The channel is closed once the screen is finalized, even when nobody drains it
func (t *Terminal) Events() <-chan tcell.Event {
	t.pollOnce.Do(func() {
		core.Go(func() {
			defer close(t.events)
			for {
				ev := t.screen.PollEvent()
				if ev == nil {
					return
				}
				select {
				case t.events <- ev:
				case <-t.done:
					return
				}
			}
		})
	})
	return t.events
}

// Fini restores the terminal, safe to call more than once
func (t *Terminal) Fini() {
	t.finiOnce.Do(func() {
		close(t.done)
		t.screen.Fini()
	})
}
