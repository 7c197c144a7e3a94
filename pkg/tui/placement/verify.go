// ABOUTME: Checks one Request against the guarantees Compute makes
// ABOUTME: Shared by the property tests and the anchor check command

package placement

import (
	"fmt"
	"math/rand/v2"
)

// Rules reported by Verify.
const (
	RuleDeterministic = "deterministic"
	RuleAxis          = "single-axis"
	RuleTopKept       = "top-kept"
	RuleContained     = "contained"
)

// Violation is a Request whose Result breaks a placement guarantee.
type Violation struct {
	Rule    string
	Request Request
	Result  Result
}

func (v *Violation) Error() string {
	return fmt.Sprintf("%s violated: %+v -> %+v", v.Rule, v.Request, v.Result)
}

// Verify computes req and reports the first broken guarantee as a
// *Violation, or nil.
func Verify(req Request) error {
	got := Compute(req)
	fail := func(rule string) error {
		return &Violation{Rule: rule, Request: req, Result: got}
	}

	if again := Compute(req); again != got {
		return fail(RuleDeterministic)
	}

	pref := normalizeSide(req.Side)
	if got.Side != pref && got.Side != pref.Opposite() {
		return fail(RuleAxis)
	}
	if pref == SideTop && got.Side != SideTop {
		return fail(RuleTopKept)
	}

	size := req.Content.orDefault(DefaultContentSize)
	fits := size.Width <= req.Viewport.Width-2*req.Padding &&
		size.Height <= req.Viewport.Height-2*req.Padding
	if fits && HasRoom(req, got.Side) && !got.Rect(size).Within(req.Viewport, req.Padding) {
		return fail(RuleContained)
	}
	return nil
}

// HasRoom reports whether side leaves enough space between the trigger
// and the padded viewport edge for the panel plus gap.
func HasRoom(req Request, side Side) bool {
	t, vp, pad := req.Trigger, req.Viewport, req.Padding
	size := req.Content.orDefault(DefaultContentSize)
	switch side {
	case SideTop:
		return t.Top-pad >= size.Height+req.Gap
	case SideBottom:
		return vp.Height-t.Bottom()-pad >= size.Height+req.Gap
	case SideLeft:
		return t.Left-pad >= size.Width+req.Gap
	default:
		return vp.Width-t.Right()-pad >= size.Width+req.Gap
	}
}

// RandomRequest returns a request whose trigger lies inside the padded
// viewport. Content may be larger than the viewport.
func RandomRequest(r *rand.Rand) Request {
	pad := r.IntN(6)
	vp := Viewport{Width: 2*pad + 4 + r.IntN(200), Height: 2*pad + 4 + r.IntN(80)}

	top := pad + r.IntN(vp.Height-2*pad)
	left := pad + r.IntN(vp.Width-2*pad)
	trigger := RectFrom(top, left, r.IntN(vp.Width-pad-left+1), r.IntN(vp.Height-pad-top+1))

	return Request{
		Trigger:  trigger,
		Content:  Size{Width: 1 + r.IntN(vp.Width+10), Height: 1 + r.IntN(vp.Height+5)},
		Viewport: vp,
		Side:     Side(r.IntN(4)),
		Align:    Align(r.IntN(3)),
		Padding:  pad,
		Gap:      r.IntN(3),
	}
}
