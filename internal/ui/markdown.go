// ABOUTME: Markdown renderer for popover bodies, wrapping glamour
// ABOUTME: Caches rendered output keyed by content hash and wrap width

package ui

import (
	"crypto/sha256"
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
)

// MarkdownRenderer wraps glamour with a render cache.
type MarkdownRenderer struct {
	style string
	cache map[string]string // "hash:width" -> rendered
}

// NewMarkdownRenderer creates a renderer using a glamour standard style
// such as "dark", "light" or "notty".
func NewMarkdownRenderer(style string) *MarkdownRenderer {
	return &MarkdownRenderer{
		style: style,
		cache: make(map[string]string),
	}
}

// Render returns md styled for the terminal, wrapped at width. Rendering
// errors fall back to the raw text.
func (r *MarkdownRenderer) Render(md string, width int) string {
	if md == "" {
		return ""
	}

	key := cacheKey(md, width)
	if cached, ok := r.cache[key]; ok {
		return cached
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(r.style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return md
	}

	rendered, err := renderer.Render(md)
	if err != nil {
		return md
	}

	// glamour pads with blank lines and trailing spaces.
	rendered = strings.Trim(rendered, "\n")
	lines := strings.Split(rendered, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " ")
	}
	rendered = strings.Join(lines, "\n")

	r.cache[key] = rendered
	return rendered
}

func cacheKey(content string, width int) string {
	h := sha256.Sum256([]byte(content))
	return fmt.Sprintf("%x:%d", h[:8], width)
}
