// ABOUTME: Splits styled terminal text into cells: escape sequences and grapheme clusters
// ABOUTME: VisibleWidth and StripANSI are built on the same token stream

package width

import (
	"iter"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Ambiguous-width runes take one cell; panels are drawn for western
// terminals and the placement math assumes it.
var cond = &runewidth.Condition{StrictEmojiNeutral: true}

// token is one unit of styled text. Escape sequences occupy no cells.
type token struct {
	text  string
	col   int
	cells int
	esc   bool
}

// tokens yields the escape sequences and grapheme clusters of s in order,
// each with the column it starts at.
func tokens(s string) iter.Seq[token] {
	return func(yield func(token) bool) {
		col, state := 0, -1
		for s != "" {
			if s[0] == escByte {
				n := escapeLen(s)
				if !yield(token{text: s[:n], col: col, esc: true}) {
					return
				}
				s, state = s[n:], -1
				continue
			}
			var cluster string
			cluster, s, _, state = uniseg.FirstGraphemeClusterInString(s, state)
			cells := clusterCells(cluster)
			if !yield(token{text: cluster, col: col, cells: cells}) {
				return
			}
			col += cells
		}
	}
}

// clusterCells is the width of the cluster's base rune. Combining marks and
// joiners after it render inside the same cells.
func clusterCells(cluster string) int {
	for _, r := range cluster {
		return cond.RuneWidth(r)
	}
	return 0
}

// VisibleWidth returns the number of terminal columns s occupies.
func VisibleWidth(s string) int {
	if printableASCII(s) {
		return len(s)
	}
	n := 0
	for t := range tokens(s) {
		n += t.cells
	}
	return n
}

func printableASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 0x20 || s[i] > 0x7e {
			return false
		}
	}
	return true
}
