package floorgrid

import (
	"strings"
)

// Glyphs used by Render, one symbol per cell category.
const (
	GlyphFree     = '░'
	GlyphBlocked  = '█'
	GlyphRoute    = '·'
	GlyphEntrance = '^'
	GlyphCounter  = '$'
)

// Render draws the grid as text, one glyph per cell and one line per row.
// Landmarks win over articles, articles over route cells, route cells over
// the blocked/free base layer. Articles render as the first rune of their
// label. route may be nil or empty to draw the bare floor.
//
// Render is a diagnostic convenience, not part of the algorithmic contract:
// it never fails, it just draws whatever it is given.
// Complexity: O(W×H) time, O(len(route)) extra memory.
func Render(g *Grid, route []Cell) string {
	onRoute := make(map[Cell]struct{}, len(route))
	for _, c := range route {
		onRoute[c] = struct{}{}
	}

	var b strings.Builder
	b.Grow((g.Width() + 1) * g.Height())
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			b.WriteRune(glyphFor(g, Cell{x, y}, onRoute))
		}
		b.WriteByte('\n')
	}

	return b.String()
}

// glyphFor picks the symbol for a single cell, applying the category
// precedence documented on Render.
func glyphFor(g *Grid, c Cell, onRoute map[Cell]struct{}) rune {
	if c == g.entrance {
		return GlyphEntrance
	}
	if c == g.counter {
		return GlyphCounter
	}
	if label, ok := g.articles[c]; ok && label != "" {
		return []rune(label)[0]
	}
	if _, ok := onRoute[c]; ok {
		return GlyphRoute
	}
	if g.IsBlocked(c) {
		return GlyphBlocked
	}

	return GlyphFree
}
