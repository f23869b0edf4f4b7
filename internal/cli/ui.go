package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/pschiffmann/floorroute/floorgrid"
)

var (
	colorGreen   = lipgloss.Color("35")  // entrance
	colorCyan    = lipgloss.Color("36")  // counter
	colorYellow  = lipgloss.Color("220") // route cells
	colorMagenta = lipgloss.Color("170") // articles
	colorDim     = lipgloss.Color("240") // shelves/walls
)

var (
	styleEntrance = lipgloss.NewStyle().Bold(true).Foreground(colorGreen)
	styleCounter  = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleRoute    = lipgloss.NewStyle().Foreground(colorYellow)
	styleArticle  = lipgloss.NewStyle().Bold(true).Foreground(colorMagenta)
	styleBlocked  = lipgloss.NewStyle().Foreground(colorDim)
)

// colorize styles each glyph of a floorgrid.Render output by category.
// Free cells keep the terminal's default foreground; anything that is not a
// known glyph is treated as an article label.
func colorize(rendered string) string {
	var b strings.Builder
	b.Grow(len(rendered))
	for _, r := range rendered {
		switch r {
		case floorgrid.GlyphEntrance:
			b.WriteString(styleEntrance.Render(string(r)))
		case floorgrid.GlyphCounter:
			b.WriteString(styleCounter.Render(string(r)))
		case floorgrid.GlyphRoute:
			b.WriteString(styleRoute.Render(string(r)))
		case floorgrid.GlyphBlocked:
			b.WriteString(styleBlocked.Render(string(r)))
		case floorgrid.GlyphFree, '\n':
			b.WriteRune(r)
		default:
			b.WriteString(styleArticle.Render(string(r)))
		}
	}

	return b.String()
}
