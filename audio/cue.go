package audio

import (
	"time"

	"github.com/lixenwraith/worldstream/event"
	"github.com/lixenwraith/worldstream/parameter"
)

// CuePlayer plays the terrain-updated cue
type CuePlayer interface {
	PlayCue()
}

// CueSystem reads the world bus and plays one cue per frame that saw an Updated event
type CueSystem struct {
	bus    *event.WorldBus
	reader event.ReaderID
	player CuePlayer

	muted bool
}

// NewCueSystem registers the system's bus reader; player may be nil when audio is disabled
func NewCueSystem(bus *event.WorldBus, player CuePlayer) *CueSystem {
	return &CueSystem{
		bus:    bus,
		reader: bus.RegisterReader(),
		player: player,
	}
}

func (s *CueSystem) Name() string {
	return parameter.SystemAudio
}

func (s *CueSystem) Priority() int {
	return parameter.PriorityAudio
}

// SetMuted toggles playback; events are still drained while muted
func (s *CueSystem) SetMuted(muted bool) {
	s.muted = muted
}

func (s *CueSystem) Muted() bool {
	return s.muted
}

func (s *CueSystem) Update(dt time.Duration) {
	events := s.bus.Drain(s.reader)
	if s.muted || s.player == nil {
		return
	}
	if event.ContainsType(events, event.EventUpdated) {
		s.player.PlayCue()
	}
}
