// ABOUTME: Tests for Composite: placement of layers, clipping, and styled backgrounds
// ABOUTME: Compares stripped output so reset sequences do not obscure the layout

package tui

import (
	"strings"
	"testing"

	"github.com/apuya/react-basics-ui-sub003/pkg/tui/width"
)

func stripped(lines []string) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = width.StripANSI(l)
	}
	return out
}

func TestComposite(t *testing.T) {
	t.Parallel()

	bg := []string{
		"..........",
		"..........",
		"..........",
	}

	tests := []struct {
		name   string
		layers []Layer
		want   []string
	}{
		{
			name: "no layers",
			want: bg,
		},
		{
			name:   "inside",
			layers: []Layer{NewLayer("ab\ncd", 1, 3)},
			want:   []string{"..........", "...ab.....", "...cd....."},
		},
		{
			name:   "clipped right",
			layers: []Layer{NewLayer("abcd", 0, 8)},
			want:   []string{"........ab", "..........", ".........."},
		},
		{
			name:   "clipped left",
			layers: []Layer{NewLayer("abcd", 0, -2)},
			want:   []string{"cd........", "..........", ".........."},
		},
		{
			name:   "clipped top and bottom",
			layers: []Layer{NewLayer("1\n2\n3\n4\n5", -1, 0)},
			want:   []string{"2.........", "3.........", "4........."},
		},
		{
			name:   "ragged panel lines padded",
			layers: []Layer{NewLayer("abc\nd", 0, 2)},
			want:   []string{"..abc.....", "..d  .....", ".........."},
		},
		{
			name:   "later layers on top",
			layers: []Layer{NewLayer("xxxx", 0, 0), NewLayer("y", 0, 1)},
			want:   []string{"xyxx......", "..........", ".........."},
		},
		{
			name:   "entirely off screen",
			layers: []Layer{NewLayer("zz", 5, 0), NewLayer("zz", 0, 12)},
			want:   bg,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := stripped(Composite(bg, 10, 3, tt.layers...))
			if strings.Join(got, "\n") != strings.Join(tt.want, "\n") {
				t.Errorf("Composite() =\n%s\nwant\n%s", strings.Join(got, "\n"), strings.Join(tt.want, "\n"))
			}
		})
	}
}

func TestComposite_ShortBackground(t *testing.T) {
	t.Parallel()

	got := stripped(Composite([]string{"ab"}, 6, 3, NewLayer("XY", 2, 4)))
	want := []string{"ab", "", "    XY"}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Errorf("Composite() = %q, want %q", got, want)
	}
}

func TestComposite_KeepsBackgroundStyle(t *testing.T) {
	t.Parallel()

	bg := []string{"\x1b[31mredredred\x1b[0m"}
	got := Composite(bg, 9, 1, NewLayer("X", 0, 3))

	if width.StripANSI(got[0]) != "redXedred" {
		t.Fatalf("stripped = %q", width.StripANSI(got[0]))
	}
	// The text after the panel restores the background color.
	after := got[0][strings.Index(got[0], "X"):]
	if !strings.Contains(after, "\x1b[31m") {
		t.Errorf("style not restored after panel: %q", got[0])
	}
}

func TestComposite_WideGraphemeUnderPanel(t *testing.T) {
	t.Parallel()

	got := stripped(Composite([]string{"a你好b"}, 6, 1, NewLayer("X", 0, 2)))
	if got[0] != "a X好b" {
		t.Errorf("Composite() = %q, want %q", got[0], "a X好b")
	}
	if w := width.VisibleWidth(got[0]); w != 6 {
		t.Errorf("width = %d, want 6", w)
	}
}

func TestComposite_EmptyScreen(t *testing.T) {
	t.Parallel()

	if got := Composite([]string{"x"}, 0, 3); got != nil {
		t.Errorf("Composite() with zero width = %q, want nil", got)
	}
}

func TestCanvasPool(t *testing.T) {
	t.Parallel()

	c := AcquireCanvas()
	c.Load([]string{"a", "b", "c"}, 2)
	if c.Len() != 2 || c.String() != "a\nb" {
		t.Errorf("Load() = %q", c.String())
	}
	ReleaseCanvas(c)
	ReleaseCanvas(nil)

	c = AcquireCanvas()
	defer ReleaseCanvas(c)
	if c.Len() != 0 {
		t.Errorf("acquired canvas has %d lines", c.Len())
	}
}
