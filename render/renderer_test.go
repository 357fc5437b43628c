package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/worldstream/component"
	"github.com/lixenwraith/worldstream/engine"
	"github.com/lixenwraith/worldstream/parameter"
)

type gridSurface struct {
	w, h  int
	cells [][]rune
}

func newGridSurface(w, h int) *gridSurface {
	cells := make([][]rune, h)
	for y := range cells {
		cells[y] = make([]rune, w)
	}
	return &gridSurface{w: w, h: h, cells: cells}
}

func (g *gridSurface) SetContent(x, y int, primary rune, _ []rune, _ tcell.Style) {
	g.cells[y][x] = primary
}

func (g *gridSurface) Size() (int, int) {
	return g.w, g.h
}

func (g *gridSurface) row(y int) string {
	return string(g.cells[y])
}

func spawnSprite(w *engine.World, worldPos mgl32.Vec3, sprite component.SpriteComponent) {
	cs := engine.GetComponentStore(w)
	camT := mgl32.Vec3{0, 0, 10}
	camPos := mgl32.Vec3{0, 0, 10}
	rt := component.RenderTransformComponent{
		Translation: camT.Add(worldPos.Sub(camPos).Mul(parameter.TileSize)),
		Scale:       mgl32.Vec2{parameter.DefaultZoom, parameter.DefaultZoom},
	}
	eb := w.NewEntity()
	engine.With(eb, cs.Sprite, sprite)
	engine.With(eb, cs.RenderTransform, rt)
	eb.Build()
}

func newRenderWorld() *engine.World {
	w := engine.NewWorld()
	cs := engine.GetComponentStore(w)
	cam := w.NewEntity()
	engine.With(cam, cs.RenderTransform, component.NewRenderTransform(mgl32.Vec3{0, 0, 10}))
	engine.AddResource(w.Resources, &engine.ActiveCamera{Entity: cam.Build()})
	return w
}

func TestGlyphRendererPlacesTiles(t *testing.T) {
	w := newRenderWorld()
	spawnSprite(w, mgl32.Vec3{0, 0, 0}, component.SpriteComponent{Index: parameter.SpriteGrass, Layer: parameter.LayerTerrain})
	spawnSprite(w, mgl32.Vec3{1, 0, 0}, component.SpriteComponent{Index: parameter.SpriteWater, Layer: parameter.LayerTerrain})
	spawnSprite(w, mgl32.Vec3{-1, 0, 0}, component.SpriteComponent{Index: parameter.SpriteAir, Layer: parameter.LayerTerrain})
	spawnSprite(w, mgl32.Vec3{0, -1, 0}, component.SpriteComponent{Index: parameter.SpriteDirt, Layer: parameter.LayerTerrain})
	// Actor drawn above the grass it stands on
	spawnSprite(w, mgl32.Vec3{0, 0, 0}, component.SpriteComponent{Index: parameter.SpritePlayer, Layer: parameter.LayerActor})

	surface := newGridSurface(20, 10)
	assert.True(t, NewGlyphRenderer(w, DefaultGlyphs()).Draw(surface))

	// Center is (10, 5); a tile is two columns wide and one row tall, y grows up
	assert.Equal(t, "          @@~~      ", surface.row(4))
	assert.Equal(t, "          ..        ", surface.row(5))
	assert.Equal(t, "                    ", surface.row(3))
}

func TestGlyphRendererZoomScalesTiles(t *testing.T) {
	w := newRenderWorld()
	cs := engine.GetComponentStore(w)
	eb := w.NewEntity()
	engine.With(eb, cs.Sprite, component.SpriteComponent{Index: parameter.SpriteWater})
	engine.With(eb, cs.RenderTransform, component.RenderTransformComponent{
		Translation: mgl32.Vec3{0, 0, 10},
		Scale:       mgl32.Vec2{2 * parameter.DefaultZoom, 2 * parameter.DefaultZoom},
	})
	eb.Build()

	surface := newGridSurface(12, 8)
	NewGlyphRenderer(w, DefaultGlyphs()).Draw(surface)

	assert.Equal(t, "      ~~~~  ", surface.row(2))
	assert.Equal(t, "      ~~~~  ", surface.row(3))
	assert.Equal(t, "            ", surface.row(4))
}

func TestGlyphRendererNeedsCamera(t *testing.T) {
	w := engine.NewWorld()
	surface := newGridSurface(4, 4)
	assert.False(t, NewGlyphRenderer(w, DefaultGlyphs()).Draw(surface))

	engine.AddResource(w.Resources, &engine.ActiveCamera{Entity: 42})
	assert.False(t, NewGlyphRenderer(w, DefaultGlyphs()).Draw(surface))
}

func TestDrawStatus(t *testing.T) {
	surface := newGridSurface(8, 2)
	DrawStatus(surface, "seed deadbeef")
	assert.Equal(t, "seed dea", surface.row(0))

	DrawStatus(surface, "ok")
	assert.Equal(t, "ok      ", surface.row(0))
}

func TestGlyphLookup(t *testing.T) {
	sheet := DefaultGlyphs()
	assert.Equal(t, '~', sheet.Lookup(parameter.SpriteWater).Rune)
	assert.True(t, sheet.Lookup(parameter.SpriteAir).Blank)
	assert.True(t, sheet.Lookup(-1).Blank)
	assert.True(t, sheet.Lookup(parameter.SpriteCount).Blank)
}
