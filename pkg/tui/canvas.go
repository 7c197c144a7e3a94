// ABOUTME: Pooled line canvas that overlay layers are composited onto
// ABOUTME: Recycled via sync.Pool so every frame does not reallocate the screen

package tui

import (
	"strings"
	"sync"
)

var canvasPool = sync.Pool{
	New: func() any {
		return &Canvas{
			Lines: make([]string, 0, 64),
		}
	},
}

// AcquireCanvas gets a Canvas from the pool.
func AcquireCanvas() *Canvas {
	c := canvasPool.Get().(*Canvas)
	c.Reset()
	return c
}

// ReleaseCanvas returns a Canvas to the pool.
func ReleaseCanvas(c *Canvas) {
	if c == nil {
		return
	}
	c.Reset()
	canvasPool.Put(c)
}

// Canvas is a screen-sized set of rendered lines.
type Canvas struct {
	Lines []string
}

// Reset clears the canvas for reuse without deallocating.
func (c *Canvas) Reset() {
	c.Lines = c.Lines[:0]
}

// Len returns the number of lines.
func (c *Canvas) Len() int {
	return len(c.Lines)
}

// Load copies bg into the canvas, padding with empty lines or dropping
// extra lines so it holds exactly height rows.
func (c *Canvas) Load(bg []string, height int) {
	c.Reset()
	for i := 0; i < height; i++ {
		if i < len(bg) {
			c.Lines = append(c.Lines, bg[i])
		} else {
			c.Lines = append(c.Lines, "")
		}
	}
}

// String joins the lines with newlines.
func (c *Canvas) String() string {
	return strings.Join(c.Lines, "\n")
}
