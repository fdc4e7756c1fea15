package marquee

import (
	"bytes"
	"math"
	"time"

	"github.com/acarl005/stripansi"
	"github.com/mattn/go-runewidth"
)

// cell is a single drawable rune with its display width.
type cell struct {
	r rune
	w int
}

// Content is measured, drawable marquee content.
type Content struct {
	cells []cell
	width int
}

// ParseContent measures s for marquee rendering. ANSI escape sequences are
// stripped and zero width runes dropped, so the measured width is the number
// of terminal columns the content occupies. Styling belongs in a meta func
// applied to the rendered window, see MarqueeMeta.
func ParseContent(s string) Content {
	plain := stripansi.Strip(s)
	c := Content{cells: make([]cell, 0, len(plain))}
	for _, r := range plain {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		c.cells = append(c.cells, cell{r: r, w: w})
		c.width += w
	}
	return c
}

// Width reports the display width of the content in terminal columns.
func (c Content) Width() int {
	return c.width
}

// Frame renders a window of width columns over the content, for the given
// animation state and elapsed time since the animation started.
func (c Content) Frame(state State, cfg Config, width int, elapsed time.Duration) string {
	var buf bytes.Buffer
	off := renderOffset(state, cfg, float64(width), float64(c.width), elapsed)
	c.window(&buf, int(math.Round(off)), width)
	return buf.String()
}

// window writes width columns with the content's left edge placed at column
// off. Columns not covered by content are filled with spaces. A wide rune
// clipped by either window edge degrades to spaces.
func (c Content) window(buf *bytes.Buffer, off, width int) {
	if width <= 0 {
		return
	}
	pos, col := 0, off
	for _, cl := range c.cells {
		start, end := col, col+cl.w
		col = end
		if end <= 0 {
			continue
		}
		if start >= width {
			break
		}
		for ; pos < start; pos++ {
			buf.WriteByte(' ')
		}
		if start >= 0 && end <= width {
			buf.WriteRune(cl.r)
			pos = end
		} else {
			for lim := min(end, width); pos < lim; pos++ {
				buf.WriteByte(' ')
			}
		}
	}
	for ; pos < width; pos++ {
		buf.WriteByte(' ')
	}
}
