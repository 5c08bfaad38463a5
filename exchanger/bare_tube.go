// Package exchanger rates a bare (smooth) tube bundle heat exchanger.
//
// Tube side: internal convection and a component-based pressure drop.
// Outside: banked-tube crossflow from the mass flow rate, or an explicit
// coefficient. Thermal duty: effectiveness-NTU for any two energy streams.
package exchanger

import (
	"fmt"
	"math"

	"hx_rating/geometry"
	"hx_rating/heattransfer"
	"hx_rating/hxerr"
)

// Config holds exchanger-level options.
type Config struct {
	// WallConductivity is the tube wall thermal conductivity, W/(m K).
	// Nil neglects the wall conduction resistance.
	WallConductivity *float64
}

// BareTube is the rating model of one bundle. It is never mutated by Solve,
// so one instance may serve concurrent solves.
type BareTube struct {
	bundle *geometry.Bundle
	wallK  *float64
}

func NewBareTube(bundle *geometry.Bundle, cfg Config) (*BareTube, error) {
	if bundle == nil {
		return nil, hxerr.Configuration("exchanger requires a bundle")
	}
	hx := &BareTube{bundle: bundle}
	if cfg.WallConductivity != nil {
		k := *cfg.WallConductivity
		if err := hxerr.Positive("wall conductivity", k); err != nil {
			return nil, err
		}
		hx.wallK = &k
	}
	return hx, nil
}

func (hx *BareTube) Bundle() *geometry.Bundle { return hx.bundle }

// TubeSide is the tube-side flow across the whole exchanger.
type TubeSide struct {
	MassFlow float64                   // kg/s
	Props    heattransfer.FluidProps   // bulk properties
	Losses   *heattransfer.MinorLosses // nil: heattransfer.DefaultMinorLosses
}

// Outside is the shell-side flow from which h_o is computed.
type Outside struct {
	MassFlow float64                 // kg/s
	Props    heattransfer.FluidProps // bulk properties
	Zeta     *float64                // per-row loss multiplier; nil: heattransfer.DefaultZetaOutside
}

// SolveInput is one operating point.
//
// Precedence rules:
//   - OutsideCoefficient, when set, is used for h_o even if Outside is also
//     given; the computed diagnostics are still reported.
//   - FlowArrangement, when set, replaces the bundle default.
type SolveInput struct {
	Hot  heattransfer.EnergyStream
	Cold heattransfer.EnergyStream

	TubeSide TubeSide

	Outside            *Outside
	OutsideCoefficient *float64 // h_o override, W/(m2 K)

	FlowArrangement geometry.FlowArrangement
}

/*
Rate the exchanger at one operating point.

	Args:
		in: streams, tube-side flow, outside flow or h_o override

	Returns:
		areas, UA, effectiveness, duty, outlet temperatures and all
		intermediate tube-side and outside results

	Notes:
		R_total = 1/(h_i A_i) + R_wall + 1/(h_o A_o), UA = 1/R_total.
		The tube-side flow is split among the tubes of one pass; friction
		acts over the total length of all passes.
*/
func (hx *BareTube) Solve(in SolveInput) (*Result, error) {
	b := hx.bundle

	fa := b.FlowArrangement()
	if in.FlowArrangement != "" {
		var err error
		if fa, err = geometry.ParseFlowArrangement(string(in.FlowArrangement)); err != nil {
			return nil, err
		}
	}

	if in.Hot == nil || in.Cold == nil {
		return nil, hxerr.Configuration("both hot and cold streams are required")
	}
	if err := hxerr.Positive("tube-side mass flow", in.TubeSide.MassFlow); err != nil {
		return nil, err
	}

	// ---- areas (effective) ----
	ai := b.TotalInnerArea()
	ao := b.TotalOuterArea()
	aFrontal, err := b.FrontalFlowArea()
	if err != nil {
		return nil, err
	}

	// ---- tube side: thermal, per pass flow area ----
	areaPass := b.InternalFlowAreaPerPass()
	dh := b.InternalHydraulicDiameter()

	tubeThermal, err := heattransfer.InternalHeatTransfer(in.TubeSide.MassFlow, dh, areaPass, in.TubeSide.Props)
	if err != nil {
		return nil, err
	}

	// ---- tube side: hydraulic, all passes ----
	length, err := b.InternalLengthTotal()
	if err != nil {
		return nil, err
	}
	losses := heattransfer.DefaultMinorLosses()
	if in.TubeSide.Losses != nil {
		losses = *in.TubeSide.Losses
	}
	tubeHydraulic, err := heattransfer.InternalPressureDropTotal(
		in.TubeSide.MassFlow,
		areaPass,
		dh,
		length,
		in.TubeSide.Props.Hydraulic(),
		b.Turns(),
		losses,
	)
	if err != nil {
		return nil, err
	}

	// ---- outside ----
	outThermal, outHydraulic, err := hx.outside(in, aFrontal)
	if err != nil {
		return nil, err
	}

	// ---- overall UA ----
	rw, err := hx.wallResistance()
	if err != nil {
		return nil, err
	}
	r := Resistances{
		Inner: 1.0 / (tubeThermal.Coefficient * ai),
		Wall:  rw,
		Outer: 1.0 / (outThermal.Coefficient * ao),
	}
	r.Total = r.Inner + r.Wall + r.Outer
	if math.IsNaN(r.Total) || math.IsInf(r.Total, 0) || r.Total <= 0.0 {
		return nil, hxerr.Domain("total thermal resistance must be positive and finite, got %g K/W", r.Total)
	}
	ua := 1.0 / r.Total

	// ---- effectiveness-NTU duty ----
	cHot, err := in.Hot.CapacityRate()
	if err != nil {
		return nil, fmt.Errorf("hot stream: %w", err)
	}
	cCold, err := in.Cold.CapacityRate()
	if err != nil {
		return nil, fmt.Errorf("cold stream: %w", err)
	}
	ntu, err := heattransfer.EffectivenessNTU(cHot, cCold, ua, fa)
	if err != nil {
		return nil, err
	}
	duty, err := heattransfer.HeatDuty(ntu.Effectiveness, in.Hot, in.Cold)
	if err != nil {
		return nil, err
	}

	return &Result{
		AreaInner:        ai,
		AreaOuter:        ao,
		AreaFrontal:      aFrontal,
		FlowArrangement:  fa,
		UA:               ua,
		Effectiveness:    ntu.Effectiveness,
		Q:                duty.Q,
		HotOutlet:        duty.HotOutlet,
		ColdOutlet:       duty.ColdOutlet,
		Resistances:      r,
		NTU:              ntu,
		Duty:             duty,
		TubeThermal:      tubeThermal,
		TubeHydraulic:    tubeHydraulic,
		OutsideThermal:   outThermal,
		OutsideHydraulic: outHydraulic,
	}, nil
}

// outside computes h_o from the outside flow when given and applies the override.
func (hx *BareTube) outside(in SolveInput, aFrontal float64) (OutsideThermal, OutsideHydraulic, error) {
	nan := math.NaN()
	th := OutsideThermal{Velocity: nan, Reynolds: nan, Prandtl: nan, Nusselt: nan, Coefficient: nan}
	hy := OutsideHydraulic{PressureDrop: nan, Reynolds: nan, Velocity: nan}

	if o := in.Outside; o != nil {
		d, ok := hx.bundle.Tube().(geometry.Diametered)
		if !ok {
			return th, hy, hxerr.Configuration("tube does not provide an outer diameter")
		}
		zeta := heattransfer.DefaultZetaOutside
		if o.Zeta != nil {
			zeta = *o.Zeta
		}
		res, err := heattransfer.OutsideHeatTransfer(o.MassFlow, aFrontal, d.OuterDiameter(), hx.bundle.Rows(), o.Props, zeta)
		if err != nil {
			return th, hy, err
		}
		th = OutsideThermal{
			Velocity:    res.Velocity,
			Reynolds:    res.Reynolds,
			Prandtl:     res.Prandtl,
			Nusselt:     res.Nusselt,
			Coefficient: res.Coefficient,
			Source:      SourceComputed,
		}
		hy = OutsideHydraulic{PressureDrop: res.PressureDrop, Reynolds: res.Reynolds, Velocity: res.Velocity}
	}

	if in.OutsideCoefficient != nil {
		if err := hxerr.Positive("h_o override", *in.OutsideCoefficient); err != nil {
			return th, hy, err
		}
		th.Coefficient = *in.OutsideCoefficient
		th.Source = SourceOverride
		return th, hy, nil
	}

	if in.Outside == nil {
		return th, hy, hxerr.Configuration(
			"outside side not specified: provide the outside mass flow and properties, or an h_o override")
	}
	return th, hy, nil
}

/*
Cylindrical wall conduction resistance of all tubes.

	Returns:
		R_wall = ln(Do/Di) / (2 pi k L_eff N_tubes), K/W
		0 when no wall conductivity is configured
*/
func (hx *BareTube) wallResistance() (float64, error) {
	if hx.wallK == nil {
		return 0, nil
	}
	tube := hx.bundle.Tube()
	d, okD := tube.(geometry.Diametered)
	l, okL := tube.(geometry.EffectiveLengther)
	if !okD || !okL {
		return 0, hxerr.Configuration("tube must provide inner and outer diameter and effective length for the wall resistance")
	}
	di, do := d.InnerDiameter(), d.OuterDiameter()
	if do <= di {
		return 0, hxerr.Configuration("tube outer diameter %g must exceed inner diameter %g", do, di)
	}

	n := float64(hx.bundle.TubesTotal())
	return math.Log(do/di) / (2.0 * math.Pi * *hx.wallK * l.LengthEffective() * n), nil
}
