package heattransfer

import (
	"math"

	"hx_rating/hxerr"
)

/*
Darcy friction factor for a smooth tube.

	Args:
		re: Reynolds number, -

	Returns:
		Darcy friction factor, -

	Notes:
		Laminar (Re < 2300): f = 64/Re
		Otherwise Petukhov explicit form f = [0.79 ln(Re) - 1.64]^-2,
		valid roughly for 3e3 < Re < 5e6.
*/
func FrictionFactorSmooth(re float64) (float64, error) {
	if err := hxerr.Positive("Re", re); err != nil {
		return 0, err
	}
	if re < ReLaminar {
		return 64.0 / re, nil
	}
	return petukhov(re), nil
}

func petukhov(re float64) float64 {
	d := 0.79*math.Log(re) - 1.64
	return 1.0 / (d * d)
}

/*
Gnielinski correlation for turbulent flow in a smooth tube.

	Args:
		re: Reynolds number, -
		pr: Prandtl number, -

	Returns:
		Nusselt number, -

	Notes:
		Nu = (f/8)(Re-1000)Pr / [1 + 12.7 sqrt(f/8)(Pr^(2/3) - 1)]
		with the Petukhov friction factor.
		Typical validity 3000 < Re < 5e6, 0.5 < Pr < 2000.
*/
func NusseltGnielinski(re, pr float64) (float64, error) {
	if err := hxerr.Positive("Re", re); err != nil {
		return 0, err
	}
	if err := hxerr.Positive("Pr", pr); err != nil {
		return 0, err
	}
	f, err := FrictionFactorSmooth(re)
	if err != nil {
		return 0, err
	}

	numerator := (f / 8.0) * (re - 1000.0) * pr
	denom := 1.0 + 12.7*math.Sqrt(f/8.0)*(math.Pow(pr, 2.0/3.0)-1.0)
	return numerator / denom, nil
}

/*
Nusselt number for internal flow in a smooth circular tube.

	Args:
		re: Reynolds number, -
		pr: Prandtl number, -

	Returns:
		Nusselt number, -

	Notes:
		Re < 2300:          Nu = 3.66
		Re > 4000:          Gnielinski
		2300 <= Re <= 4000: linear blend in Re between 3.66 and the
		                    Gnielinski value at Re = 4000.
		The blend is a fixed interpolation rule, not a transition model.
*/
func NusseltInternal(re, pr float64) (float64, error) {
	if err := hxerr.Positive("Re", re); err != nil {
		return 0, err
	}
	if err := hxerr.Positive("Pr", pr); err != nil {
		return 0, err
	}

	if re < ReLaminar {
		return NuLaminar, nil
	}
	if re > ReTurbulent {
		return NusseltGnielinski(re, pr)
	}

	nuTurb, err := NusseltGnielinski(ReTurbulent, pr)
	if err != nil {
		return 0, err
	}
	w := (re - ReLaminar) / (ReTurbulent - ReLaminar)
	return (1.0-w)*NuLaminar + w*nuTurb, nil
}

// InternalFlow is the tube-side convection result.
type InternalFlow struct {
	Velocity    float64 // mean velocity, m/s
	Reynolds    float64 // -
	Prandtl     float64 // -
	Nusselt     float64 // -
	Coefficient float64 // convective coefficient h, W/(m2 K)
}

/*
Tube-side convective coefficient and the dimensionless groups behind it.

	Args:
		mDot: mass flow rate through the flow area, kg/s
		d: hydraulic (inner) diameter, m
		area: flow cross-sectional area, m2 (e.g. tubes per pass * pi Di^2/4)
		props: fluid properties

	Returns:
		velocity, Re, Pr, Nu and h = Nu k / D
*/
func InternalHeatTransfer(mDot, d, area float64, props FluidProps) (InternalFlow, error) {
	if err := hxerr.Positive("hydraulic diameter", d); err != nil {
		return InternalFlow{}, err
	}
	if err := props.Validate(); err != nil {
		return InternalFlow{}, err
	}

	v, err := MeanVelocity(mDot, props.Rho, area)
	if err != nil {
		return InternalFlow{}, err
	}
	re, err := Reynolds(props.Rho, v, d, props.Mu)
	if err != nil {
		return InternalFlow{}, err
	}
	pr, err := Prandtl(props.Cp, props.Mu, props.K)
	if err != nil {
		return InternalFlow{}, err
	}
	nu, err := NusseltInternal(re, pr)
	if err != nil {
		return InternalFlow{}, err
	}

	return InternalFlow{
		Velocity:    v,
		Reynolds:    re,
		Prandtl:     pr,
		Nusselt:     nu,
		Coefficient: nu * props.K / d,
	}, nil
}
