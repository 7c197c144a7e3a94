// ABOUTME: Compute resolves side, alignment, and absolute origin for a floating panel
// ABOUTME: Single-axis flip only; cross-axis alignment correction; pure and deterministic

package placement

// Request is the complete input to Compute. Build a fresh one per recomputation.
type Request struct {
	Trigger  Rect
	Content  Size // measured or estimated; non-positive dimensions use DefaultContentSize
	Viewport Viewport
	Side     Side  // preferred side
	Align    Align // preferred alignment
	Padding  int   // minimum clearance from every viewport edge; must be >= 0
	Gap      int   // main-axis offset between trigger and panel
}

// Result is the resolved placement. Top/Left are absolute viewport
// coordinates of the panel origin.
type Result struct {
	Side  Side
	Align Align
	Top   int
	Left  int
}

// Placement returns the side/align pair of the result.
func (r Result) Placement() Placement {
	return Placement{Side: r.Side, Align: r.Align}
}

// Rect returns the panel rectangle for a panel of the given size.
func (r Result) Rect(size Size) Rect {
	return Rect{Top: r.Top, Left: r.Left, Width: size.Width, Height: size.Height}
}

// Compute resolves the placement for req.
//
// Side resolution flips bottom->top, left->right and right->left when the
// preferred side lacks room; top is never flipped and no secondary side is
// tried, so the panel may overflow on the main axis. Alignment is corrected
// against the resolved side: start and end flip to the opposite extreme
// when either cross-axis edge leaves the padded range, center snaps to
// whichever extreme it violated. The cross-axis origin is
// then shifted inside the padded viewport when the panel fits there.
func Compute(req Request) Result {
	size := req.Content.orDefault(DefaultContentSize)
	pref := normalizeSide(req.Side)

	side := resolveSide(pref, req.Trigger, size, req.Viewport, req.Padding, req.Gap)
	align := resolveAlign(normalizeAlign(req.Align), side, req.Trigger, size, req.Viewport, req.Padding)
	top, left := origin(side, align, req.Trigger, size, req.Viewport, req.Padding, req.Gap)

	return Result{Side: side, Align: align, Top: top, Left: left}
}

// Place positions a panel at a side and alignment already decided, without
// flipping. Renderers that obtain side/align from a synchronous pass use it
// to turn that decision into coordinates. The cross-axis shift still applies.
func Place(req Request, p Placement) Result {
	size := req.Content.orDefault(DefaultContentSize)
	side, align := normalizeSide(p.Side), normalizeAlign(p.Align)
	top, left := origin(side, align, req.Trigger, size, req.Viewport, req.Padding, req.Gap)
	return Result{Side: side, Align: align, Top: top, Left: left}
}

func normalizeSide(s Side) Side {
	if s < SideBottom || s > SideRight {
		return SideBottom
	}
	return s
}

func normalizeAlign(a Align) Align {
	if a < AlignCenter || a > AlignEnd {
		return AlignCenter
	}
	return a
}

// resolveSide applies the single documented flip for the preferred side.
func resolveSide(pref Side, t Rect, size Size, vp Viewport, pad, gap int) Side {
	switch pref {
	case SideBottom:
		if vp.Height-t.Bottom()-pad < size.Height+gap {
			return SideTop
		}
	case SideLeft:
		if t.Left-pad < size.Width+gap {
			return SideRight
		}
	case SideRight:
		if vp.Width-t.Right()-pad < size.Width+gap {
			return SideLeft
		}
	}
	return pref
}

// crossAxis projects the trigger, panel and viewport onto the axis
// perpendicular to side.
func crossAxis(side Side, t Rect, size Size, vp Viewport) (tStart, tLen, n, limit int) {
	if side.IsVertical() {
		return t.Left, t.Width, size.Width, vp.Width
	}
	return t.Top, t.Height, size.Height, vp.Height
}

// crossStart is the naive cross-axis origin for an alignment.
func crossStart(a Align, tStart, tLen, n int) int {
	switch a {
	case AlignStart:
		return tStart
	case AlignEnd:
		return tStart + tLen - n
	default:
		return tStart + tLen/2 - n/2
	}
}

// resolveAlign flips start or end to the opposite extreme when either
// cross-axis edge of the naive panel leaves the padded range. Center snaps to
// the extreme on the side it violated.
func resolveAlign(pref Align, side Side, t Rect, size Size, vp Viewport, pad int) Align {
	tStart, tLen, n, limit := crossAxis(side, t, size, vp)
	start := crossStart(pref, tStart, tLen, n)
	end := start + n
	overNear := start < pad
	overFar := end > limit-pad

	switch pref {
	case AlignStart, AlignEnd:
		if overNear || overFar {
			return pref.Opposite()
		}
	default:
		if overNear {
			return AlignStart
		}
		if overFar {
			return AlignEnd
		}
	}
	return pref
}

func origin(side Side, align Align, t Rect, size Size, vp Viewport, pad, gap int) (top, left int) {
	switch side {
	case SideTop:
		top = t.Top - gap - size.Height
	case SideBottom:
		top = t.Bottom() + gap
	case SideLeft:
		left = t.Left - gap - size.Width
	case SideRight:
		left = t.Right() + gap
	}

	tStart, tLen, n, limit := crossAxis(side, t, size, vp)
	c := fitCross(crossStart(align, tStart, tLen, n), n, limit, pad)
	if side.IsVertical() {
		left = c
	} else {
		top = c
	}
	return top, left
}

// fitCross shifts c into [pad, limit-pad-n] when a panel of length n fits the
// padded axis at all. Otherwise c is returned unchanged.
func fitCross(c, n, limit, pad int) int {
	if n > limit-2*pad {
		return c
	}
	if c < pad {
		return pad
	}
	if c+n > limit-pad {
		return limit - pad - n
	}
	return c
}
