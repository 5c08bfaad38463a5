package exchanger

import (
	"hx_rating/geometry"
	"hx_rating/heattransfer"
)

// CoefficientSource tells where the outside coefficient came from.
type CoefficientSource string

const (
	SourceComputed CoefficientSource = "computed"
	SourceOverride CoefficientSource = "override"
)

// OutsideThermal is the shell-side convection used in the solve.
// Velocity, Reynolds, Prandtl and Nusselt are NaN when the outside
// correlation was not evaluated.
type OutsideThermal struct {
	Velocity    float64 // approach velocity, m/s
	Reynolds    float64 // -
	Prandtl     float64 // -
	Nusselt     float64 // -
	Coefficient float64 // h_o used in UA, W/(m2 K)
	Source      CoefficientSource
}

// OutsideHydraulic is the lumped shell-side pressure drop, NaN when not computed.
type OutsideHydraulic struct {
	PressureDrop float64 // Pa
	Reynolds     float64 // -
	Velocity     float64 // m/s
}

// Resistances is the series thermal network, K/W.
type Resistances struct {
	Inner float64 // 1/(h_i A_i)
	Wall  float64 // cylindrical wall conduction, 0 when neglected
	Outer float64 // 1/(h_o A_o)
	Total float64
}

// Result is the full outcome of one solve. Every intermediate quantity is
// kept so the duty can be checked by hand.
type Result struct {
	// effective areas, m2
	AreaInner   float64
	AreaOuter   float64
	AreaFrontal float64

	FlowArrangement geometry.FlowArrangement

	// thermal performance
	UA            float64 // W/K
	Effectiveness float64 // -
	Q             float64 // W
	HotOutlet     float64 // K
	ColdOutlet    float64 // K

	// diagnostics
	Resistances      Resistances
	NTU              heattransfer.NTUResult
	Duty             heattransfer.Duty
	TubeThermal      heattransfer.InternalFlow
	TubeHydraulic    heattransfer.InternalPressureDrop
	OutsideThermal   OutsideThermal
	OutsideHydraulic OutsideHydraulic
}
