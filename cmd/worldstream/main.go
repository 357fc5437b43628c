package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"

	"github.com/lixenwraith/worldstream/audio"
	"github.com/lixenwraith/worldstream/config"
	"github.com/lixenwraith/worldstream/core"
	"github.com/lixenwraith/worldstream/game"
	"github.com/lixenwraith/worldstream/input"
	"github.com/lixenwraith/worldstream/render"
	"github.com/lixenwraith/worldstream/terminal"
)

// overrides holds command line values that replace file settings when their flag was given
type overrides struct {
	seed     string
	distance uint
	parallel bool
	set      map[string]bool
}

func main() {
	configPath := flag.String("config", "", "Path to YAML settings file")
	debugFlag := flag.Bool("debug", false, "Write logs to logs/"+logFileName)
	muteFlag := flag.Bool("mute", false, "Start with audio cues muted")

	var ov overrides
	flag.StringVar(&ov.seed, "seed", "", "Terrain seed")
	flag.UintVar(&ov.distance, "distance", 0, "Render distance in cells")
	flag.BoolVar(&ov.parallel, "parallel", false, "Run independent systems concurrently")
	flag.Parse()

	ov.set = make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { ov.set[f.Name] = true })

	settings, err := resolveSettings(*configPath, ov)
	if err != nil {
		fmt.Fprintf(os.Stderr, "worldstream: %v\n", err)
		os.Exit(1)
	}

	sessionID := uuid.New()
	if logFile := setupLogging(*debugFlag, sessionID); logFile != nil {
		defer logFile.Close()
	}

	term, err := terminal.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "worldstream: %v\n", err)
		os.Exit(1)
	}
	// Crash handler restores the screen before printing the stack
	core.SetResetHook(term.Fini)
	defer term.Fini()
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	sounds := audio.NewSoundManager()
	if err := sounds.Initialize(); err != nil {
		log.Printf("audio disabled: %v", err)
	} else {
		defer sounds.Cleanup()
	}

	session, err := game.New(settings,
		game.WithID(sessionID),
		game.WithCuePlayer(sounds),
		game.WithMuted(*muteFlag),
	)
	if err != nil {
		term.Fini()
		fmt.Fprintf(os.Stderr, "worldstream: %v\n", err)
		os.Exit(1)
	}

	session.RequestGenerate()
	run(term, session, settings.FrameRate)
	log.Printf("[%s] session ended after %d frames: %s", session.ShortID(), session.FrameNumber(), session.Metrics)
}

// resolveSettings loads the file when given and applies flag overrides on top
func resolveSettings(path string, ov overrides) (config.Settings, error) {
	settings := config.Default()
	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return config.Settings{}, err
		}
		settings = loaded
	}

	if ov.set["seed"] {
		settings.Seed = ov.seed
	}
	if ov.set["distance"] {
		if ov.distance > 0xFFFF {
			return config.Settings{}, fmt.Errorf("%w: %d", config.ErrInvalidRenderDistance, ov.distance)
		}
		settings.RenderDistance = uint16(ov.distance)
	}
	if ov.set["parallel"] {
		settings.Parallel = ov.parallel
	}

	if err := settings.Validate(); err != nil {
		return config.Settings{}, err
	}
	return settings, nil
}

// run drives the session at the configured frame rate until a quit key or screen close
func run(term *terminal.Terminal, session *game.Session, frameRate int) {
	screen := term.Screen()
	events := term.Events()
	hold := terminal.NewKeyHold(terminal.DefaultHoldWindow)
	bindings := input.DefaultBindings()
	renderer := render.NewGlyphRenderer(session.World, render.DefaultGlyphs())

	ticker := time.NewTicker(time.Second / time.Duration(frameRate))
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if terminal.IsQuit(ev) {
					return
				}
				if k, ok := terminal.KeyFromEvent(ev); ok {
					hold.Press(k, time.Now())
					session.HandleKey(k)
				}
			case *tcell.EventResize:
				screen.Sync()
			}

		case now := <-ticker.C:
			session.SetInput(hold.Snapshot(bindings, now))
			session.Tick(now.Sub(last))
			last = now

			renderer.Draw(screen)
			render.DrawStatus(screen, session.Status())
			screen.Show()
		}
	}
}
