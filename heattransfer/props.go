// Package heattransfer holds the convective heat transfer and pressure drop
// correlations, the effectiveness-NTU relations and the energy streams that
// couple them.
//
// Everything is SI and free of side effects. Inputs are validated on entry;
// once they pass, the arithmetic cannot fail.
package heattransfer

import (
	"hx_rating/hxerr"
)

// FluidProps are thermophysical properties at representative bulk conditions.
// Internal and outside convection correlations both use this record.
type FluidProps struct {
	Rho float64 // density, kg/m3
	Mu  float64 // dynamic viscosity, Pa s
	K   float64 // thermal conductivity, W/(m K)
	Cp  float64 // specific heat, J/(kg K)
}

func (p FluidProps) Validate() error {
	if err := hxerr.Positive("rho", p.Rho); err != nil {
		return err
	}
	if err := hxerr.Positive("mu", p.Mu); err != nil {
		return err
	}
	if err := hxerr.Positive("k", p.K); err != nil {
		return err
	}
	return hxerr.Positive("cp", p.Cp)
}

// Hydraulic returns the subset used by the pressure drop calculation.
func (p FluidProps) Hydraulic() HydraulicProps {
	return HydraulicProps{Rho: p.Rho, Mu: p.Mu}
}

// HydraulicProps are the properties the friction and minor-loss terms need.
type HydraulicProps struct {
	Rho float64 // density, kg/m3
	Mu  float64 // dynamic viscosity, Pa s
}

func (p HydraulicProps) Validate() error {
	if err := hxerr.Positive("rho", p.Rho); err != nil {
		return err
	}
	return hxerr.Positive("mu", p.Mu)
}

// ---- dimensionless groups shared by all correlations ----

// MeanVelocity is v = m_dot / (rho A), m/s.
func MeanVelocity(mDot, rho, area float64) (float64, error) {
	if err := hxerr.Positive("m_dot", mDot); err != nil {
		return 0, err
	}
	if err := hxerr.Positive("rho", rho); err != nil {
		return 0, err
	}
	if err := hxerr.Positive("flow area", area); err != nil {
		return 0, err
	}
	return mDot / (rho * area), nil
}

// Reynolds is Re = rho v D / mu, -.
func Reynolds(rho, v, d, mu float64) (float64, error) {
	for _, c := range []struct {
		name string
		v    float64
	}{{"rho", rho}, {"v", v}, {"D", d}, {"mu", mu}} {
		if err := hxerr.Positive(c.name, c.v); err != nil {
			return 0, err
		}
	}
	return rho * v * d / mu, nil
}

// Prandtl is Pr = cp mu / k, -.
func Prandtl(cp, mu, k float64) (float64, error) {
	if err := hxerr.Positive("cp", cp); err != nil {
		return 0, err
	}
	if err := hxerr.Positive("mu", mu); err != nil {
		return 0, err
	}
	if err := hxerr.Positive("k", k); err != nil {
		return 0, err
	}
	return cp * mu / k, nil
}

// DynamicPressure is q = rho v^2 / 2, Pa.
func DynamicPressure(rho, v float64) (float64, error) {
	if err := hxerr.Positive("rho", rho); err != nil {
		return 0, err
	}
	if err := hxerr.Positive("v", v); err != nil {
		return 0, err
	}
	return rho * v * v / 2.0, nil
}
