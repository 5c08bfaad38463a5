// Package geometry describes tubes and rectangular tube bundles.
//
// All dimensions are SI: lengths in m, areas in m2.
package geometry

import (
	"math"

	"hx_rating/hxerr"
)

// Tube is the geometry every tube type must provide to the correlations.
type Tube interface {
	// Internal flow cross-sectional area, m2
	FlowArea() float64
	// Hydraulic diameter of the internal flow, m
	HydraulicDiameter() float64
	// Inner heat transfer area over the effective length, m2
	AreaInner() float64
	// Outer heat transfer area over the effective length, m2
	AreaOuter() float64
}

// Optional tube attributes. Bundle quantities and the wall conduction term
// that need them fail with hxerr.ErrInvalidConfiguration when a tube does
// not provide them.
type (
	TotalLengther interface {
		// Total hydraulic length used for tube-side pressure drop, m
		LengthTotal() float64
	}

	EffectiveLengther interface {
		// Length taking part in heat exchange and outside flow exposure, m
		LengthEffective() float64
	}

	Diametered interface {
		InnerDiameter() float64
		OuterDiameter() float64
	}
)

// BareTube is a smooth circular tube.
//
// The split between total and effective length covers tube length sitting in
// headers: it adds friction on the tube side without exchanging heat.
type BareTube struct {
	di      float64 // inner diameter, m
	do      float64 // outer diameter, m
	lTotal  float64 // total hydraulic length, m
	lEffect float64 // effective length, m
}

/*
Create a bare tube.

	Args:
		di: inner diameter, m
		do: outer diameter, m
		lengthTotal: total hydraulic length, m
		lengthEffective: effective heat exchange length, m

	Notes:
		0 < di < do
		0 < lengthEffective <= lengthTotal
*/
func NewBareTube(di, do, lengthTotal, lengthEffective float64) (*BareTube, error) {
	if err := hxerr.Positive("inner diameter", di); err != nil {
		return nil, err
	}
	if err := hxerr.Positive("outer diameter", do); err != nil {
		return nil, err
	}
	if do <= di {
		return nil, hxerr.Configuration("outer diameter %g must be greater than inner diameter %g", do, di)
	}
	if err := hxerr.Positive("length_total", lengthTotal); err != nil {
		return nil, err
	}
	if err := hxerr.Positive("length_effective", lengthEffective); err != nil {
		return nil, err
	}
	if lengthEffective > lengthTotal {
		return nil, hxerr.Configuration("length_effective %g must not exceed length_total %g", lengthEffective, lengthTotal)
	}

	return &BareTube{di: di, do: do, lTotal: lengthTotal, lEffect: lengthEffective}, nil
}

func (t *BareTube) InnerDiameter() float64   { return t.di }
func (t *BareTube) OuterDiameter() float64   { return t.do }
func (t *BareTube) LengthTotal() float64     { return t.lTotal }
func (t *BareTube) LengthEffective() float64 { return t.lEffect }

// FlowArea is pi*Di^2/4, m2.
func (t *BareTube) FlowArea() float64 {
	return math.Pi * t.di * t.di / 4.0
}

// HydraulicDiameter of a circular tube equals Di, m.
func (t *BareTube) HydraulicDiameter() float64 {
	return t.di
}

func (t *BareTube) AreaInner() float64 {
	return math.Pi * t.di * t.lEffect
}

func (t *BareTube) AreaOuter() float64 {
	return math.Pi * t.do * t.lEffect
}
