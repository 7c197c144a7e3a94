// ABOUTME: Composites positioned overlay panels onto a rendered background
// ABOUTME: Layers are drawn in order at absolute cell coordinates and clipped to the screen

package tui

import (
	"strings"

	"github.com/apuya/react-basics-ui-sub003/pkg/tui/width"
)

const sgrReset = "\x1b[0m"

// Layer is a rendered panel placed with its top-left corner at (Top, Left).
// Coordinates may be negative or beyond the screen; the panel is clipped.
type Layer struct {
	Lines []string
	Top   int
	Left  int
}

// NewLayer splits a rendered block into a Layer.
func NewLayer(block string, top, left int) Layer {
	if block == "" {
		return Layer{Top: top, Left: left}
	}
	return Layer{Lines: strings.Split(block, "\n"), Top: top, Left: left}
}

// Width returns the widest line of the layer.
func (l Layer) Width() int {
	w := 0
	for _, line := range l.Lines {
		w = max(w, width.VisibleWidth(line))
	}
	return w
}

// Composite draws layers over bg and returns exactly height lines. Each layer
// line replaces the background cells it covers; the background to either
// side keeps its own styling.
func Composite(bg []string, screenWidth, height int, layers ...Layer) []string {
	if height <= 0 || screenWidth <= 0 {
		return nil
	}
	canvas := AcquireCanvas()
	defer ReleaseCanvas(canvas)

	canvas.Load(bg, height)
	for _, l := range layers {
		drawLayer(canvas, l, screenWidth)
	}

	out := make([]string, canvas.Len())
	copy(out, canvas.Lines)
	return out
}

func drawLayer(c *Canvas, l Layer, screenWidth int) {
	lw := l.Width()
	for i, line := range l.Lines {
		row := l.Top + i
		if row < 0 || row >= c.Len() {
			continue
		}

		// Clip the panel line to the visible columns.
		from, to := 0, lw
		if l.Left < 0 {
			from = -l.Left
		}
		if l.Left+lw > screenWidth {
			to = screenWidth - l.Left
		}
		if from >= to {
			continue
		}
		col := l.Left + from
		panel := width.PadRight(width.Cut(line, from, to), to-from)

		bgLine := c.Lines[row]
		var b strings.Builder
		b.WriteString(width.PadRight(width.Cut(bgLine, 0, col), col))
		b.WriteString(sgrReset)
		b.WriteString(panel)
		b.WriteString(sgrReset)
		b.WriteString(width.Cut(bgLine, col+to-from, screenWidth))
		c.Lines[row] = b.String()
	}
}
