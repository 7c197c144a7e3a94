// ABOUTME: Column-based cutting of styled text for compositing panels over a background
// ABOUTME: Cut keeps SGR state and pads cells split by a wide grapheme with spaces

package width

import "strings"

// Cut returns the columns [start, end) of s. Escape sequences that occur
// before end are kept so the cut text renders with the style in effect at
// start. A wide grapheme that straddles either boundary is replaced with
// spaces for the cells that fall inside the range. end < 0 means the end
// of the line.
func Cut(s string, start, end int) string {
	if start < 0 {
		start = 0
	}
	if s == "" || (end >= 0 && start >= end) {
		return ""
	}

	var b strings.Builder
	for t := range tokens(s) {
		if t.esc {
			if end < 0 || t.col < end {
				b.WriteString(t.text)
			}
			continue
		}
		tEnd := t.col + t.cells
		if tEnd <= start || (end >= 0 && t.col >= end) {
			continue
		}
		if t.col < start || (end >= 0 && tEnd > end) {
			hi := tEnd
			if end >= 0 {
				hi = min(hi, end)
			}
			b.WriteString(strings.Repeat(" ", hi-max(t.col, start)))
			continue
		}
		b.WriteString(t.text)
	}
	return b.String()
}

// PadRight appends spaces until s is n columns wide.
func PadRight(s string, n int) string {
	if w := VisibleWidth(s); w < n {
		return s + strings.Repeat(" ", n-w)
	}
	return s
}

// Block measures a multi-line string: the widest line and the line count.
// An empty string has no lines.
func Block(s string) (w, h int) {
	if s == "" {
		return 0, 0
	}
	for _, line := range strings.Split(s, "\n") {
		w = max(w, VisibleWidth(line))
		h++
	}
	return w, h
}
