// ABOUTME: Escape sequence scanning for CSI, OSC, DCS and charset designations
// ABOUTME: Tracks the SGR state a wrapped or cut line has to restart with

package width

import "strings"

const (
	escByte  = '\x1b'
	sgrReset = "\x1b[0m"
)

// escapeLen returns the byte length of the escape sequence at the start of
// s, which must begin with ESC. Unterminated sequences run to the end.
func escapeLen(s string) int {
	if len(s) < 2 {
		return len(s)
	}
	switch s[1] {
	case '[':
		for i := 2; i < len(s); i++ {
			if s[i] >= 0x40 && s[i] <= 0x7e {
				return i + 1
			}
		}
		return len(s)
	case ']':
		for i := 2; i < len(s); i++ {
			if s[i] == '\a' {
				return i + 1
			}
			if s[i] == escByte && i+1 < len(s) && s[i+1] == '\\' {
				return i + 2
			}
		}
		return len(s)
	case 'P', '_', '^', 'X':
		if i := strings.Index(s[2:], "\x1b\\"); i >= 0 {
			return i + 4
		}
		return len(s)
	case '(', ')':
		return min(3, len(s))
	default:
		return 2
	}
}

// StripANSI removes every escape sequence from s.
func StripANSI(s string) string {
	if strings.IndexByte(s, escByte) < 0 {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for len(s) > 0 {
		i := strings.IndexByte(s, escByte)
		if i < 0 {
			b.WriteString(s)
			break
		}
		b.WriteString(s[:i])
		s = s[i+escapeLen(s[i:]):]
	}
	return b.String()
}

func isSGR(seq string) bool {
	return len(seq) >= 3 && seq[1] == '[' && seq[len(seq)-1] == 'm'
}

// withSGR folds seq into the accumulated style. A reset clears it; other
// escape sequences leave it unchanged.
func withSGR(style, seq string) string {
	if !isSGR(seq) {
		return style
	}
	if seq == sgrReset || seq == "\x1b[m" {
		return ""
	}
	return style + seq
}
