// ABOUTME: Word wrapping and truncation of styled panel text
// ABOUTME: Wrapped lines restart with the SGR state that was active where they break

package width

import "strings"

const ellipsis = "…"

// Wrap breaks s into lines of at most maxWidth columns. Lines break after
// the last space that fits; a word longer than maxWidth is split. Each
// continuation line starts with the style in effect at its break point.
func Wrap(s string, maxWidth int) []string {
	if maxWidth <= 0 {
		return nil
	}
	w := &wrapper{max: maxWidth, brk: -1}
	for i, para := range strings.Split(s, "\n") {
		if i > 0 {
			w.breakLine(nil, w.style)
		}
		for t := range tokens(para) {
			w.add(t)
		}
	}
	w.out = append(w.out, joinTokens(w.line))
	return w.out
}

type wrapper struct {
	max      int
	out      []string
	line     []token
	width    int
	brk      int
	brkStyle string
	style    string
}

func (w *wrapper) add(t token) {
	if t.esc {
		w.line = append(w.line, t)
		w.style = withSGR(w.style, t.text)
		return
	}
	for w.width > 0 && w.width+t.cells > w.max {
		if t.text == " " {
			w.breakLine(nil, w.style)
			return
		}
		if w.brk < 0 {
			w.breakLine(nil, w.style)
			break
		}
		tail := append([]token(nil), w.line[w.brk+1:]...)
		w.line = w.line[:w.brk]
		w.breakLine(tail, w.brkStyle)
	}
	if t.text == " " {
		w.brk = len(w.line)
		w.brkStyle = w.style
	}
	w.line = append(w.line, t)
	w.width += t.cells
}

// breakLine ends the current line and starts the next with style and the
// carried-over tail of a split word.
func (w *wrapper) breakLine(tail []token, style string) {
	w.out = append(w.out, joinTokens(w.line))
	w.line, w.width, w.brk = nil, 0, -1
	if style != "" {
		w.line = append(w.line, token{text: style, esc: true})
	}
	for _, t := range tail {
		w.line = append(w.line, t)
		w.width += t.cells
	}
}

func joinTokens(ts []token) string {
	var b strings.Builder
	for _, t := range ts {
		b.WriteString(t.text)
	}
	return b.String()
}

// Truncate shortens s to at most maxWidth columns, ending it with an
// ellipsis when anything was cut. The style is reset before the ellipsis.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if VisibleWidth(s) <= maxWidth {
		return s
	}
	var b strings.Builder
	styled := false
	for t := range tokens(s) {
		if t.esc {
			b.WriteString(t.text)
			styled = true
			continue
		}
		if t.col+t.cells > maxWidth-1 {
			break
		}
		b.WriteString(t.text)
	}
	if styled {
		b.WriteString(sgrReset)
	}
	b.WriteString(ellipsis)
	return b.String()
}
