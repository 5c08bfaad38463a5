// Package psychrometrics is the moist-air property adapter used at the
// boundary of the rating engine.
//
// The engine never calls it during a solve: moist-air enthalpies are
// computed here and injected into the enthalpy-tracked stream.
package psychrometrics

import (
	"fmt"
	"math"

	"hx_rating/hxerr"
)

// Specific heat of dry air, J/(kg K)
const cpDryAir = 1006.0

// Specific heat of water vapour, J/(kg K)
const cpVapor = 1860.0

// Latent heat of vaporization at 0 degree C, J/kg
const hFg = 2501000.0

// Ratio of molecular masses water / dry air, -
const epsMolar = 0.621945

// Standard atmospheric pressure, Pa
const StandardPressure = 101325.0

const zeroCelsius = 273.15

/*
Saturation vapour pressure.

	Args:
		t: air temperature, K

	Returns:
		saturation vapour pressure, Pa

	Notes:
		Over liquid water at or above 0 degree C, over ice below.
*/
func SaturationVaporPressure(t float64) float64 {
	const a1 = -6096.9385
	const a2 = 21.2409642
	const a3 = -0.02711193
	const a4 = 0.00001673952
	const a5 = 2.433502
	const b1 = -6024.5282
	const b2 = 29.32707
	const b3 = 0.010613863
	const b4 = -0.000013198825
	const b5 = -0.49382577

	if t >= zeroCelsius {
		return math.Exp(a1/t + a2 + a3*t + a4*t*t + a5*math.Log(t))
	}
	return math.Exp(b1/t + b2 + b3*t + b4*t*t + b5*math.Log(t))
}

/*
Humidity ratio from the vapour pressure.

	Args:
		pv: vapour pressure, Pa
		p: total pressure, Pa

	Returns:
		humidity ratio, kg/kg(DA)
*/
func HumidityRatio(pv, p float64) (float64, error) {
	if err := hxerr.NonNegative("vapour pressure", pv); err != nil {
		return 0, err
	}
	if err := hxerr.Positive("pressure", p); err != nil {
		return 0, err
	}
	if pv >= p {
		return 0, hxerr.Domain("vapour pressure %g Pa must be below total pressure %g Pa", pv, p)
	}
	return epsMolar * pv / (p - pv), nil
}

/*
Specific enthalpy of moist air.

	Args:
		t: dry-bulb temperature, K
		rh: relative humidity, - (0 to 1)
		p: total pressure, Pa

	Returns:
		specific enthalpy, J/kg(DA)

	Notes:
		h = cp_a theta + x (h_fg + cp_v theta), theta in degree C
*/
func MoistAirEnthalpy(t, rh, p float64) (float64, error) {
	x, err := HumidityRatioFromRH(t, rh, p)
	if err != nil {
		return 0, err
	}
	return enthalpy(t-zeroCelsius, x), nil
}

// HumidityRatioFromRH is the humidity ratio of air at t [K], rh [-], p [Pa].
func HumidityRatioFromRH(t, rh, p float64) (float64, error) {
	if err := hxerr.Positive("temperature", t); err != nil {
		return 0, err
	}
	if math.IsNaN(rh) || rh < 0.0 || rh > 1.0 {
		return 0, fmt.Errorf("%w: relative humidity must be between 0 and 1, got %g", hxerr.ErrInvalidInput, rh)
	}
	return HumidityRatio(rh*SaturationVaporPressure(t), p)
}

func enthalpy(theta, x float64) float64 {
	return cpDryAir*theta + x*(hFg+cpVapor*theta)
}

/*
Dry-bulb temperature from enthalpy at a fixed humidity ratio.

	Args:
		h: specific enthalpy, J/kg(DA)
		x: humidity ratio, kg/kg(DA)

	Returns:
		dry-bulb temperature, K

	Notes:
		Valid as long as no moisture condenses between the two states.
*/
func DryBulbFromEnthalpy(h, x float64) (float64, error) {
	if err := hxerr.NonNegative("humidity ratio", x); err != nil {
		return 0, err
	}
	theta := (h - hFg*x) / (cpDryAir + cpVapor*x)
	return theta + zeroCelsius, nil
}

/*
Dew point temperature.

	Args:
		t: dry-bulb temperature, K
		rh: relative humidity, - (0 < rh <= 1)

	Returns:
		dew point temperature, K

	Notes:
		Solves p_vs(T_dp) = rh p_vs(t) by bisection between 173.15 K and t.
*/
func DewPoint(t, rh float64) (float64, error) {
	if err := hxerr.Positive("temperature", t); err != nil {
		return 0, err
	}
	if math.IsNaN(rh) || rh <= 0.0 || rh > 1.0 {
		return 0, fmt.Errorf("%w: relative humidity must be in (0, 1], got %g", hxerr.ErrInvalidInput, rh)
	}
	pv := rh * SaturationVaporPressure(t)

	f := func(tdp float64) float64 {
		return SaturationVaporPressure(tdp) - pv
	}

	// Bisection method
	findRoot := func(a float64, b float64, tol float64, maxIter int) (float64, error) {
		if f(a)*f(b) > 0 {
			return 0, hxerr.Domain("no dew point in the interval [%f, %f] K", a, b)
		}

		var c float64
		for i := 0; i < maxIter; i++ {
			c = (a + b) / 2

			if f(c) == 0 || (b-a)/2 < tol {
				return c, nil
			}

			if f(c)*f(a) < 0 {
				b = c
			} else {
				a = c
			}
		}
		return 0, hxerr.Domain("dew point not found within %d iterations", maxIter)
	}

	if rh == 1.0 {
		return t, nil
	}
	return findRoot(zeroCelsius-100.0, t, 1e-6, 200)
}
