package input

// Axis names consumed by the streaming systems
const (
	AxisHorizontal = "horizontal"
	AxisVertical   = "vertical"
	AxisZoom       = "zoom"
)

// Source is the opaque input device polled by systems
type Source interface {
	AxisValue(name string) float32
	KeyDown(k Key) bool
}

// Snapshot is one frame of input state
// Value type: systems never observe later mutation of the device
type Snapshot struct {
	axes map[string]float32
	keys map[Key]bool
}

// NewSnapshot builds a snapshot from axis values and pressed keys
// Axis values are clamped to [-1, 1]; both maps are copied
func NewSnapshot(axes map[string]float32, keys map[Key]bool) Snapshot {
	s := Snapshot{
		axes: make(map[string]float32, len(axes)),
		keys: make(map[Key]bool, len(keys)),
	}
	for name, v := range axes {
		s.axes[name] = clampAxis(v)
	}
	for k, down := range keys {
		if down {
			s.keys[k] = true
		}
	}
	return s
}

// AxisValue returns the axis value, zero for unknown axes
func (s Snapshot) AxisValue(name string) float32 {
	return s.axes[name]
}

// KeyDown reports whether k was held this frame
func (s Snapshot) KeyDown(k Key) bool {
	return s.keys[k]
}

func clampAxis(v float32) float32 {
	if v < -1 {
		return -1
	}
	if v > 1 {
		return 1
	}
	return v
}
