package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/worldstream/parameter"
)

func TestDefaultIsValid(t *testing.T) {
	s := Default()
	require.NoError(t, s.Validate())
	assert.Equal(t, uint16(20), s.RenderDistance)
	assert.Equal(t, "deadbeef", s.Seed)
	assert.Equal(t, 1600, s.PoolSize())
}

func TestParseKeepsDefaults(t *testing.T) {
	s, err := Parse([]byte("render_distance: 2\n"))
	require.NoError(t, err)
	assert.Equal(t, uint16(2), s.RenderDistance)
	assert.Equal(t, parameter.DefaultSeed, s.Seed)
	assert.Equal(t, float32(parameter.DefaultZoom), s.Camera.Zoom)
	assert.Equal(t, 16, s.PoolSize())
}

func TestParseFull(t *testing.T) {
	doc := `
render_distance: 5
seed: hello
camera:
  zoom: 2
  min_zoom: 1
  max_zoom: 8
frame_rate: 60
parallel: true
`
	s, err := Parse([]byte(doc))
	require.NoError(t, err)
	assert.Equal(t, Settings{
		RenderDistance: 5,
		Seed:           "hello",
		Camera:         CameraSettings{Zoom: 2, MinZoom: 1, MaxZoom: 8},
		FrameRate:      60,
		Parallel:       true,
	}, s)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Settings)
		want   error
	}{
		{"zero distance", func(s *Settings) { s.RenderDistance = 0 }, ErrInvalidRenderDistance},
		{"huge distance", func(s *Settings) { s.RenderDistance = parameter.MaxRenderDistance + 1 }, ErrInvalidRenderDistance},
		{"empty seed", func(s *Settings) { s.Seed = "" }, ErrEmptySeed},
		{"zero min zoom", func(s *Settings) { s.Camera.MinZoom = 0 }, ErrInvalidZoom},
		{"inverted bounds", func(s *Settings) { s.Camera.MaxZoom = 0.1 }, ErrInvalidZoom},
		{"zoom outside", func(s *Settings) { s.Camera.Zoom = 100 }, ErrInvalidZoom},
		{"zero frame rate", func(s *Settings) { s.FrameRate = 0 }, ErrInvalidFrameRate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Default()
			tt.mutate(&s)
			assert.ErrorIs(t, s.Validate(), tt.want)
		})
	}
}

func TestParseRejectsBadYAML(t *testing.T) {
	_, err := Parse([]byte("render_distance: [1, 2"))
	assert.Error(t, err)

	_, err = Parse([]byte("render_distance: 0"))
	assert.ErrorIs(t, err, ErrInvalidRenderDistance)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "worldstream.yaml")
	require.NoError(t, os.WriteFile(path, []byte("seed: abc\nrender_distance: 3\n"), 0o644))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "abc", s.Seed)
	assert.Equal(t, uint16(3), s.RenderDistance)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
