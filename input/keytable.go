package input

// Key is a device independent key code
// Printable keys use their rune value, named keys live above the Unicode range
type Key uint32

const (
	KeySpace  Key = ' '
	KeyEscape Key = 0x1b

	KeyLeft Key = 0x110000 + iota
	KeyRight
	KeyUp
	KeyDown
)

// RuneKey returns the key code for a printable rune
func RuneKey(r rune) Key {
	return Key(r)
}

// AxisBinding maps keys to one axis; negative and positive keys cancel out when held together
type AxisBinding struct {
	Axis     string
	Negative []Key
	Positive []Key
}

// DefaultBindings is the stock keyboard layout
// Vertical is world-up, so "up" keys are positive
func DefaultBindings() []AxisBinding {
	return []AxisBinding{
		{Axis: AxisHorizontal, Negative: []Key{RuneKey('a'), KeyLeft}, Positive: []Key{RuneKey('d'), KeyRight}},
		{Axis: AxisVertical, Negative: []Key{RuneKey('s'), KeyDown}, Positive: []Key{RuneKey('w'), KeyUp}},
		{Axis: AxisZoom, Negative: []Key{RuneKey('-')}, Positive: []Key{RuneKey('+'), RuneKey('=')}},
	}
}

// Resolve is a pure mapping from held keys to a snapshot
func Resolve(bindings []AxisBinding, held map[Key]bool) Snapshot {
	axes := make(map[string]float32, len(bindings))
	for _, b := range bindings {
		axes[b.Axis] += axisValue(anyHeld(held, b.Negative), anyHeld(held, b.Positive))
	}
	return NewSnapshot(axes, held)
}

func anyHeld(held map[Key]bool, keys []Key) bool {
	for _, k := range keys {
		if held[k] {
			return true
		}
	}
	return false
}

func axisValue(neg, pos bool) float32 {
	switch {
	case pos && !neg:
		return 1
	case neg && !pos:
		return -1
	default:
		return 0
	}
}
