package heattransfer

import (
	"math"

	"hx_rating/hxerr"
)

/*
Banked-tube crossflow Nusselt number (Zukauskas-type power law).

	Args:
		re: Reynolds number on the outer diameter and approach velocity, -
		pr: Prandtl number, -
		rows: tube rows in the flow direction

	Returns:
		Nusselt number, -

	Notes:
		Nu = C Re^m Pr^0.36 with
		    Re < 1e2         C = 0.90,  m = 0.40
		    1e2 <= Re < 1e3  C = 0.52,  m = 0.50
		    1e3 <= Re < 2e5  C = 0.27,  m = 0.63
		    Re >= 2e5        C = 0.021, m = 0.84
		Bundles with fewer than 20 rows are corrected by (rows/20)^0.20.
*/
func NusseltZukauskas(re, pr float64, rows int) (float64, error) {
	if err := hxerr.Positive("Re", re); err != nil {
		return 0, err
	}
	if err := hxerr.Positive("Pr", pr); err != nil {
		return 0, err
	}
	if err := hxerr.PositiveInt("rows", rows); err != nil {
		return 0, err
	}

	var c, m float64
	if re < 1e2 {
		c, m = 0.90, 0.40
	} else if re < 1e3 {
		c, m = 0.52, 0.50
	} else if re < 2e5 {
		c, m = 0.27, 0.63
	} else {
		c, m = 0.021, 0.84
	}

	nu := c * math.Pow(re, m) * math.Pow(pr, 0.36)

	if rows < rowsFullyDeveloped {
		nu *= math.Pow(float64(rows)/rowsFullyDeveloped, 0.20)
	}
	return nu, nil
}

// OutsideFlow is the shell-side (crossflow) convection and pressure drop result.
type OutsideFlow struct {
	Velocity     float64 // approach velocity, m/s
	Reynolds     float64 // -
	Prandtl      float64 // -
	Nusselt      float64 // -
	Coefficient  float64 // h_o, W/(m2 K)
	PressureDrop float64 // lumped, Pa
}

/*
Outside forced convection from the mass flow rate.

	Args:
		mDot: outside mass flow rate, kg/s
		frontalArea: frontal approach area, m2
		do: tube outer diameter, m
		rows: tube rows in the flow direction
		props: outside fluid properties
		zeta: lumped per-row pressure loss multiplier, -

	Returns:
		v, Re, Pr, Nu, h_o = Nu k / Do and dp = zeta rows rho v^2/2
*/
func OutsideHeatTransfer(mDot, frontalArea, do float64, rows int, props FluidProps, zeta float64) (OutsideFlow, error) {
	if err := hxerr.Positive("tube outer diameter", do); err != nil {
		return OutsideFlow{}, err
	}
	if err := hxerr.Positive("zeta", zeta); err != nil {
		return OutsideFlow{}, err
	}
	if err := props.Validate(); err != nil {
		return OutsideFlow{}, err
	}

	v, err := MeanVelocity(mDot, props.Rho, frontalArea)
	if err != nil {
		return OutsideFlow{}, err
	}
	re, err := Reynolds(props.Rho, v, do, props.Mu)
	if err != nil {
		return OutsideFlow{}, err
	}
	pr, err := Prandtl(props.Cp, props.Mu, props.K)
	if err != nil {
		return OutsideFlow{}, err
	}
	nu, err := NusseltZukauskas(re, pr, rows)
	if err != nil {
		return OutsideFlow{}, err
	}
	q, err := DynamicPressure(props.Rho, v)
	if err != nil {
		return OutsideFlow{}, err
	}

	return OutsideFlow{
		Velocity:     v,
		Reynolds:     re,
		Prandtl:      pr,
		Nusselt:      nu,
		Coefficient:  nu * props.K / do,
		PressureDrop: zeta * float64(rows) * q,
	}, nil
}
