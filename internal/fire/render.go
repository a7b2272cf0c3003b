package fire

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// cell is the glyph and colour class drawn at visible index i. The last
// visible cell is always blank and unstyled.
func (b *Buffer) cell(i int) (rune, int) {
	if i >= b.Size()-1 {
		return ' ', 0
	}
	return Classify(b.At(i))
}

// Render draws the visible grid one line per row. Neighbouring cells of the
// same colour class share a single styled run.
func (b *Buffer) Render(styles [5]lipgloss.Style) string {
	var out strings.Builder
	var run strings.Builder
	runClass := 0
	flush := func() {
		if run.Len() == 0 {
			return
		}
		if runClass == 0 {
			out.WriteString(run.String())
		} else {
			out.WriteString(styles[runClass].Render(run.String()))
		}
		run.Reset()
	}

	for i := 0; i < b.Size(); i++ {
		if row, col := b.Pos(i); row > 0 && col == 0 {
			flush()
			out.WriteByte('\n')
		}
		glyph, class := b.cell(i)
		if class != runClass {
			flush()
			runClass = class
		}
		run.WriteRune(glyph)
	}
	flush()
	return out.String()
}

// Plain draws the grid with glyphs only.
func (b *Buffer) Plain() string {
	var out strings.Builder
	for i := 0; i < b.Size(); i++ {
		if row, col := b.Pos(i); row > 0 && col == 0 {
			out.WriteByte('\n')
		}
		glyph, _ := b.cell(i)
		out.WriteRune(glyph)
	}
	return out.String()
}
