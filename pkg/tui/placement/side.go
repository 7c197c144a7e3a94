// ABOUTME: Side and Align enums with parsing, string forms, and opposites
// ABOUTME: Side picks the trigger edge; Align picks the position along the cross axis

package placement

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownSide is returned by ParseSide for unrecognised names.
	ErrUnknownSide = errors.New("unknown side")
	// ErrUnknownAlign is returned by ParseAlign for unrecognised names.
	ErrUnknownAlign = errors.New("unknown align")
)

// Side is the edge of the trigger the panel is anchored to.
type Side int

const (
	SideBottom Side = iota
	SideTop
	SideLeft
	SideRight
)

var sideNames = [...]string{
	SideBottom: "bottom",
	SideTop:    "top",
	SideLeft:   "left",
	SideRight:  "right",
}

func (s Side) String() string {
	if s < 0 || int(s) >= len(sideNames) {
		return fmt.Sprintf("Side(%d)", int(s))
	}
	return sideNames[s]
}

// IsVertical reports whether the panel sits above or below the trigger,
// making the cross axis horizontal.
func (s Side) IsVertical() bool {
	return s == SideTop || s == SideBottom
}

// Opposite returns the side across the trigger on the same axis.
func (s Side) Opposite() Side {
	switch s {
	case SideTop:
		return SideBottom
	case SideBottom:
		return SideTop
	case SideLeft:
		return SideRight
	default:
		return SideLeft
	}
}

// ParseSide converts a name like "bottom" into a Side.
func ParseSide(name string) (Side, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for i, s := range sideNames {
		if s == n {
			return Side(i), nil
		}
	}
	return SideBottom, fmt.Errorf("%w: %q", ErrUnknownSide, name)
}

// Align is the position of the panel along the cross axis of its side.
type Align int

const (
	AlignCenter Align = iota
	AlignStart
	AlignEnd
)

var alignNames = [...]string{
	AlignCenter: "center",
	AlignStart:  "start",
	AlignEnd:    "end",
}

func (a Align) String() string {
	if a < 0 || int(a) >= len(alignNames) {
		return fmt.Sprintf("Align(%d)", int(a))
	}
	return alignNames[a]
}

// Opposite swaps start and end; center is its own opposite.
func (a Align) Opposite() Align {
	switch a {
	case AlignStart:
		return AlignEnd
	case AlignEnd:
		return AlignStart
	default:
		return AlignCenter
	}
}

// ParseAlign converts a name like "start" into an Align.
func ParseAlign(name string) (Align, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for i, a := range alignNames {
		if a == n {
			return Align(i), nil
		}
	}
	return AlignCenter, fmt.Errorf("%w: %q", ErrUnknownAlign, name)
}

// Placement is the side/align pair exposed to class-style renderers.
type Placement struct {
	Side  Side
	Align Align
}

func (p Placement) String() string {
	return p.Side.String() + "-" + p.Align.String()
}
