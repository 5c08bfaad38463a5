package heattransfer

import (
	"math"

	"hx_rating/hxerr"
)

// EnergyStream is one side of the exchanger seen by the effectiveness-NTU
// duty calculation.
//
// The duty q passed to OutletTemperature is positive when heat is removed
// from the stream.
type EnergyStream interface {
	// Effective heat capacity rate, W/K. May be +Inf for isothermal phase change.
	CapacityRate() (float64, error)
	// Inlet temperature, K
	InletTemperature() float64
	// Outlet temperature after the duty q, K
	OutletTemperature(q float64) float64
}

// SensibleStream is a single-phase stream with a constant capacity rate
// (liquid water, dry air, oil).
type SensibleStream struct {
	c   float64 // heat capacity rate, W/K
	tIn float64 // inlet temperature, K
}

/*
	Args:
		c: heat capacity rate m_dot cp, W/K
		tIn: inlet temperature, K
*/
func NewSensibleStream(c, tIn float64) (*SensibleStream, error) {
	if err := hxerr.Positive("heat capacity rate", c); err != nil {
		return nil, err
	}
	return &SensibleStream{c: c, tIn: tIn}, nil
}

func (s *SensibleStream) CapacityRate() (float64, error) { return s.c, nil }
func (s *SensibleStream) InletTemperature() float64      { return s.tIn }

func (s *SensibleStream) OutletTemperature(q float64) float64 {
	return s.tIn - q/s.c
}

// CondensingStream is steam condensing at its saturation temperature.
//
// Condensation is isothermal: the pressure drop effect on saturation
// temperature and condensate subcooling are neglected.
type CondensingStream struct {
	tSat float64 // saturation temperature, K
}

func NewCondensingStream(tSat float64) *CondensingStream {
	return &CondensingStream{tSat: tSat}
}

// CapacityRate is infinite, representing the isothermal behavior.
func (s *CondensingStream) CapacityRate() (float64, error) { return math.Inf(1), nil }
func (s *CondensingStream) InletTemperature() float64      { return s.tSat }
func (s *CondensingStream) OutletTemperature(float64) float64 {
	return s.tSat
}

// MoistAirStream is an enthalpy-tracked moist air stream.
//
// Its effective capacity rate is not a constant of the fluid and must be
// supplied by the caller; psychrometric relations are not evaluated here.
type MoistAirStream struct {
	mDot float64  // dry air mass flow rate, kg/s
	hIn  float64  // inlet specific enthalpy, J/kg dry air
	tIn  float64  // inlet dry-bulb temperature, K
	cEff *float64 // effective heat capacity rate, W/K
}

/*
	Args:
		mDot: dry air mass flow rate, kg/s
		hIn: inlet specific enthalpy, J/kg dry air
		tIn: inlet dry-bulb temperature, K
*/
func NewMoistAirStream(mDot, hIn, tIn float64) (*MoistAirStream, error) {
	if err := hxerr.Positive("dry air mass flow rate", mDot); err != nil {
		return nil, err
	}
	return &MoistAirStream{mDot: mDot, hIn: hIn, tIn: tIn}, nil
}

// WithCapacityRate returns a copy carrying the effective capacity rate used
// for NTU coupling.
func (s *MoistAirStream) WithCapacityRate(c float64) (*MoistAirStream, error) {
	if err := hxerr.Positive("effective heat capacity rate", c); err != nil {
		return nil, err
	}
	cp := *s
	cp.cEff = &c
	return &cp, nil
}

func (s *MoistAirStream) CapacityRate() (float64, error) {
	if s.cEff == nil {
		return 0, hxerr.ErrNotConfigured
	}
	return *s.cEff, nil
}

func (s *MoistAirStream) InletTemperature() float64 { return s.tIn }
func (s *MoistAirStream) MassFlow() float64         { return s.mDot }
func (s *MoistAirStream) InletEnthalpy() float64    { return s.hIn }

// OutletTemperature returns the inlet temperature. The outlet temperature
// of moist air needs psychrometric resolution, which belongs to the caller;
// use OutletEnthalpy for the energy balance.
func (s *MoistAirStream) OutletTemperature(float64) float64 {
	return s.tIn
}

// OutletEnthalpy is h_in - q/m_dot, J/kg dry air.
func (s *MoistAirStream) OutletEnthalpy(q float64) float64 {
	return s.hIn - q/s.mDot
}
