package render

import (
	"math"
	"sort"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/worldstream/component"
	"github.com/lixenwraith/worldstream/core"
	"github.com/lixenwraith/worldstream/engine"
	"github.com/lixenwraith/worldstream/parameter"
)

// Surface is the subset of tcell.Screen the renderer draws on
type Surface interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Size() (int, int)
}

// cellAspect is how many columns one tile spans per row, terminal cells are about twice as tall as wide
const cellAspect = 2

// GlyphRenderer draws sprites at their render transforms, centered on the active camera
// One tile is one row tall at the default zoom
type GlyphRenderer struct {
	world  *engine.World
	cs     engine.ComponentStore
	glyphs GlyphSheet

	drawables []drawable // Reused across frames
}

type drawable struct {
	entity core.Entity
	sprite component.SpriteComponent
	rt     component.RenderTransformComponent
}

// NewGlyphRenderer creates a renderer over the world's stores
func NewGlyphRenderer(world *engine.World, glyphs GlyphSheet) *GlyphRenderer {
	return &GlyphRenderer{
		world:  world,
		cs:     engine.GetComponentStore(world),
		glyphs: glyphs,
	}
}

// Draw paints every sprite with a render transform, lower layers first
// Returns false when the camera cannot be read and nothing was drawn
func (r *GlyphRenderer) Draw(s Surface) bool {
	active, ok := engine.GetResource[*engine.ActiveCamera](r.world.Resources)
	if !ok || active == nil {
		return false
	}
	camT, ok := r.cs.RenderTransform.Get(active.Entity)
	if !ok {
		return false
	}

	width, height := s.Size()
	fill(s, width, height)

	r.collect()
	cx, cy := width/2, height/2

	for _, d := range r.drawables {
		g := r.glyphs.Lookup(d.sprite.Index)
		if g.Blank {
			continue
		}

		// Render space to rows: one tile per row at the default zoom, y up
		rows := float64(d.rt.Scale.Y()) / parameter.DefaultZoom
		cols := float64(d.rt.Scale.X()) / parameter.DefaultZoom * cellAspect
		dx := float64(d.rt.Translation.X()-camT.Translation.X()) / parameter.TileSize
		dy := float64(d.rt.Translation.Y()-camT.Translation.Y()) / parameter.TileSize

		x0 := cx + int(math.Floor(dx*cols))
		w := max(1, int(math.Ceil(cols)))
		h := max(1, int(math.Ceil(rows)))
		y0 := cy - int(math.Floor(dy*rows)) - h

		for y := y0; y < y0+h; y++ {
			if y < 0 || y >= height {
				continue
			}
			for x := x0; x < x0+w; x++ {
				if x < 0 || x >= width {
					continue
				}
				s.SetContent(x, y, g.Rune, nil, g.Style)
			}
		}
	}
	return true
}

// DrawStatus writes text on the first row
func DrawStatus(s Surface, text string) {
	width, _ := s.Size()
	style := tcell.StyleDefault.Foreground(RgbStatusText).Background(RgbStatusBg)
	x := 0
	for _, ch := range text {
		if x >= width {
			return
		}
		s.SetContent(x, 0, ch, nil, style)
		x++
	}
	for ; x < width; x++ {
		s.SetContent(x, 0, ' ', nil, style)
	}
}

// collect gathers drawables sorted by layer, entity id breaks ties for a stable frame
func (r *GlyphRenderer) collect() {
	r.drawables = r.drawables[:0]
	for _, e := range r.cs.Sprite.All() {
		sprite, ok := r.cs.Sprite.Get(e)
		if !ok {
			continue
		}
		rt, ok := r.cs.RenderTransform.Get(e)
		if !ok {
			continue
		}
		r.drawables = append(r.drawables, drawable{entity: e, sprite: sprite, rt: rt})
	}
	sort.Slice(r.drawables, func(i, j int) bool {
		a, b := r.drawables[i], r.drawables[j]
		if a.sprite.Layer != b.sprite.Layer {
			return a.sprite.Layer < b.sprite.Layer
		}
		return a.entity < b.entity
	})
}

func fill(s Surface, width, height int) {
	style := tcell.StyleDefault.Background(RgbBackground)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			s.SetContent(x, y, ' ', nil, style)
		}
	}
}
