package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/worldstream/parameter"
)

// Glyph is how one sprite sheet slot is drawn in a terminal cell
type Glyph struct {
	Rune  rune
	Style tcell.Style
	Blank bool // Skip drawing, the background shows through
}

// GlyphSheet maps sprite indexes to glyphs
type GlyphSheet [parameter.SpriteCount]Glyph

// DefaultGlyphs returns the stock terminal sprite sheet
func DefaultGlyphs() GlyphSheet {
	var sheet GlyphSheet
	sheet[parameter.SpriteGrass] = Glyph{Rune: '"', Style: tcell.StyleDefault.Foreground(RgbGrass).Background(RgbGrassBg)}
	sheet[parameter.SpritePlayer] = Glyph{Rune: '@', Style: tcell.StyleDefault.Foreground(RgbPlayer).Bold(true)}
	sheet[2] = Glyph{Rune: '?', Style: tcell.StyleDefault}
	sheet[parameter.SpriteDirt] = Glyph{Rune: '.', Style: tcell.StyleDefault.Foreground(RgbDirt).Background(RgbDirtBg)}
	sheet[parameter.SpriteWater] = Glyph{Rune: '~', Style: tcell.StyleDefault.Foreground(RgbWater).Background(RgbWaterBg)}
	sheet[parameter.SpriteAir] = Glyph{Blank: true}
	return sheet
}

// Lookup returns the glyph for a sprite index, blank when out of range
func (s *GlyphSheet) Lookup(index int) Glyph {
	if index < 0 || index >= len(s) {
		return Glyph{Blank: true}
	}
	return s[index]
}
