package geometry

import (
	"strings"

	"hx_rating/hxerr"
)

// Tube layout of the bundle
type Layout string

const (
	LayoutInline    Layout = "inline"
	LayoutStaggered Layout = "staggered"
)

/*
Parse a layout name, case-insensitively.

	Returns:
		LayoutInline or LayoutStaggered

	Notes:
		The layout is carried for refined outside correlations; the banked-tube
		correlation in use does not depend on it.
*/
func ParseLayout(s string) (Layout, error) {
	switch l := Layout(strings.ToLower(strings.TrimSpace(s))); l {
	case LayoutInline, LayoutStaggered:
		return l, nil
	default:
		return "", hxerr.Configuration("layout must be 'inline' or 'staggered', got %q", s)
	}
}

// Flow arrangement of the two streams
type FlowArrangement string

const (
	Crossflow     FlowArrangement = "crossflow"
	Counterflow   FlowArrangement = "counterflow"
	Cocurrentflow FlowArrangement = "cocurrentflow"
)

// ParseFlowArrangement accepts the arrangement names case-insensitively.
func ParseFlowArrangement(s string) (FlowArrangement, error) {
	switch fa := FlowArrangement(strings.ToLower(strings.TrimSpace(s))); fa {
	case Crossflow, Counterflow, Cocurrentflow:
		return fa, nil
	default:
		return "", hxerr.Configuration(
			"flow arrangement must be 'crossflow', 'counterflow', or 'cocurrentflow', got %q", s)
	}
}
