package heattransfer

import (
	"hx_rating/hxerr"
)

// Tube-side pressure drop of smooth circular tubes, single phase.
//
//	dp_total = dp_tubes + dp_inlet + dp_outlet + dp_turns
//
// Friction follows Darcy-Weisbach; the minor losses are K multiples of the
// dynamic pressure (Idelchik; Crane TP-410).

// MinorLosses are the dimensionless minor loss coefficients.
type MinorLosses struct {
	Inlet  float64 // K_in
	Outlet float64 // K_out
	Turn   float64 // K_turn, per 180 degree return
}

// DefaultMinorLosses returns the placeholder coefficients 0.5 / 1.0 / 1.5.
// Real turn losses depend strongly on header geometry; callers calibrating
// a design should override them.
func DefaultMinorLosses() MinorLosses {
	return MinorLosses{Inlet: DefaultKInlet, Outlet: DefaultKOutlet, Turn: DefaultKTurn}
}

func (k MinorLosses) Validate() error {
	if err := hxerr.NonNegative("K_in", k.Inlet); err != nil {
		return err
	}
	if err := hxerr.NonNegative("K_out", k.Outlet); err != nil {
		return err
	}
	return hxerr.NonNegative("K_turn", k.Turn)
}

/*
Frictional loss along the tube length (Darcy-Weisbach).

	Args:
		f: Darcy friction factor, -
		l: flow length, m
		d: hydraulic diameter, m
		rho: density, kg/m3
		v: mean velocity, m/s

	Returns:
		f (L/D) rho v^2/2, Pa
*/
func PressureDropTubes(f, l, d, rho, v float64) (float64, error) {
	if err := hxerr.Positive("f", f); err != nil {
		return 0, err
	}
	if err := hxerr.Positive("L", l); err != nil {
		return 0, err
	}
	if err := hxerr.Positive("D", d); err != nil {
		return 0, err
	}
	q, err := DynamicPressure(rho, v)
	if err != nil {
		return 0, err
	}
	return f * (l / d) * q, nil
}

// PressureDropInlet is K_in rho v^2/2, Pa.
func PressureDropInlet(rho, v, kIn float64) (float64, error) {
	return minorLoss("K_in", 1, kIn, rho, v)
}

// PressureDropOutlet is K_out rho v^2/2, Pa.
func PressureDropOutlet(rho, v, kOut float64) (float64, error) {
	return minorLoss("K_out", 1, kOut, rho, v)
}

// PressureDropTurns is n_turns K_turn rho v^2/2, Pa.
func PressureDropTurns(rho, v float64, nTurns int, kTurn float64) (float64, error) {
	if nTurns < 0 {
		return 0, hxerr.NonNegative("n_turns", float64(nTurns))
	}
	return minorLoss("K_turn", nTurns, kTurn, rho, v)
}

func minorLoss(name string, n int, k, rho, v float64) (float64, error) {
	if err := hxerr.NonNegative(name, k); err != nil {
		return 0, err
	}
	q, err := DynamicPressure(rho, v)
	if err != nil {
		return 0, err
	}
	return float64(n) * k * q, nil
}

// InternalPressureDrop is the component breakdown of the tube-side loss.
type InternalPressureDrop struct {
	Total    float64 // Pa
	Tubes    float64 // friction, Pa
	Inlet    float64 // Pa
	Outlet   float64 // Pa
	Turns    float64 // Pa
	Reynolds float64 // -
	Friction float64 // Darcy friction factor, -
	Velocity float64 // m/s
}

/*
Component-based tube-side pressure drop.

	Args:
		mDot: mass flow rate, kg/s
		area: flow area, m2
		d: hydraulic diameter, m
		length: flow length across all passes, m
		props: density and viscosity
		nTurns: number of 180 degree returns
		k: minor loss coefficients

	Returns:
		total and the four components, with Re, f and v

	Notes:
		Total is the plain sum of the four components.
*/
func InternalPressureDropTotal(
	mDot, area, d, length float64,
	props HydraulicProps,
	nTurns int,
	k MinorLosses,
) (InternalPressureDrop, error) {
	if err := hxerr.Positive("flow area", area); err != nil {
		return InternalPressureDrop{}, err
	}
	if err := hxerr.Positive("hydraulic diameter", d); err != nil {
		return InternalPressureDrop{}, err
	}
	if err := hxerr.Positive("flow length", length); err != nil {
		return InternalPressureDrop{}, err
	}
	if err := props.Validate(); err != nil {
		return InternalPressureDrop{}, err
	}
	if err := k.Validate(); err != nil {
		return InternalPressureDrop{}, err
	}

	v, err := MeanVelocity(mDot, props.Rho, area)
	if err != nil {
		return InternalPressureDrop{}, err
	}
	re, err := Reynolds(props.Rho, v, d, props.Mu)
	if err != nil {
		return InternalPressureDrop{}, err
	}
	f, err := FrictionFactorSmooth(re)
	if err != nil {
		return InternalPressureDrop{}, err
	}

	dpT, err := PressureDropTubes(f, length, d, props.Rho, v)
	if err != nil {
		return InternalPressureDrop{}, err
	}
	dpIn, err := PressureDropInlet(props.Rho, v, k.Inlet)
	if err != nil {
		return InternalPressureDrop{}, err
	}
	dpOut, err := PressureDropOutlet(props.Rho, v, k.Outlet)
	if err != nil {
		return InternalPressureDrop{}, err
	}
	dpTurn, err := PressureDropTurns(props.Rho, v, nTurns, k.Turn)
	if err != nil {
		return InternalPressureDrop{}, err
	}

	return InternalPressureDrop{
		Total:    dpT + dpIn + dpOut + dpTurn,
		Tubes:    dpT,
		Inlet:    dpIn,
		Outlet:   dpOut,
		Turns:    dpTurn,
		Reynolds: re,
		Friction: f,
		Velocity: v,
	}, nil
}
