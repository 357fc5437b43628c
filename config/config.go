package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/worldstream/parameter"
)

var (
	ErrInvalidRenderDistance = errors.New("render_distance out of range")
	ErrEmptySeed             = errors.New("seed must not be empty")
	ErrInvalidZoom           = errors.New("invalid camera zoom")
	ErrInvalidFrameRate      = errors.New("frame_rate out of range")
)

// Settings is the user-facing configuration of a streaming session
type Settings struct {
	// RenderDistance is the half-width of the streamed window in cells
	RenderDistance uint16 `yaml:"render_distance"`

	// Seed is hashed into the terrain noise seed
	Seed string `yaml:"seed"`

	Camera CameraSettings `yaml:"camera"`

	// FrameRate is the host tick rate in frames per second
	FrameRate int `yaml:"frame_rate"`

	// Parallel runs independent scheduler stages concurrently
	Parallel bool `yaml:"parallel"`
}

// CameraSettings configures the camera controller's zoom
type CameraSettings struct {
	Zoom    float32 `yaml:"zoom"`
	MinZoom float32 `yaml:"min_zoom"`
	MaxZoom float32 `yaml:"max_zoom"`
}

// Default returns the stock configuration
func Default() Settings {
	return Settings{
		RenderDistance: parameter.DefaultRenderDistance,
		Seed:           parameter.DefaultSeed,
		Camera: CameraSettings{
			Zoom:    parameter.DefaultZoom,
			MinZoom: parameter.MinZoom,
			MaxZoom: parameter.MaxZoom,
		},
		FrameRate: parameter.DefaultFrameRate,
	}
}

// Load reads a YAML file; keys absent from the file keep their defaults
func Load(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return Settings{}, fmt.Errorf("failed to load config %s: %w", path, err)
	}
	return s, nil
}

// Parse decodes YAML over the defaults and validates the result
func Parse(data []byte) (Settings, error) {
	s := Default()
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("failed to decode settings: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Validate checks every field against its allowed range
func (s Settings) Validate() error {
	if s.RenderDistance == 0 || s.RenderDistance > parameter.MaxRenderDistance {
		return fmt.Errorf("%w: %d not in [1, %d]", ErrInvalidRenderDistance, s.RenderDistance, parameter.MaxRenderDistance)
	}
	if s.Seed == "" {
		return ErrEmptySeed
	}
	c := s.Camera
	if c.MinZoom <= 0 || c.MaxZoom < c.MinZoom {
		return fmt.Errorf("%w: bounds [%g, %g]", ErrInvalidZoom, c.MinZoom, c.MaxZoom)
	}
	if c.Zoom < c.MinZoom || c.Zoom > c.MaxZoom {
		return fmt.Errorf("%w: %g not in [%g, %g]", ErrInvalidZoom, c.Zoom, c.MinZoom, c.MaxZoom)
	}
	if s.FrameRate < 1 || s.FrameRate > parameter.MaxFrameRate {
		return fmt.Errorf("%w: %d not in [1, %d]", ErrInvalidFrameRate, s.FrameRate, parameter.MaxFrameRate)
	}
	return nil
}

// PoolSize returns the number of cells the terrain window needs at this render distance
func (s Settings) PoolSize() int {
	side := 2 * int(s.RenderDistance)
	return side * side
}
