package terminal

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/worldstream/input"
)

// KeyFromEvent maps a tcell key event to a device independent key
// Letters are folded to lower case so bindings ignore shift and caps lock
func KeyFromEvent(ev *tcell.EventKey) (input.Key, bool) {
	switch ev.Key() {
	case tcell.KeyRune:
		return input.RuneKey(unicode.ToLower(ev.Rune())), true
	case tcell.KeyLeft:
		return input.KeyLeft, true
	case tcell.KeyRight:
		return input.KeyRight, true
	case tcell.KeyUp:
		return input.KeyUp, true
	case tcell.KeyDown:
		return input.KeyDown, true
	case tcell.KeyEscape:
		return input.KeyEscape, true
	default:
		return 0, false
	}
}

// IsQuit reports the exit chords: Ctrl+C and q; Escape is left to the session as pause
func IsQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q'
	}
	return false
}
