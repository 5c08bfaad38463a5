package heattransfer

import (
	"fmt"
	"math"

	"hx_rating/geometry"
	"hx_rating/hxerr"
)

// Effectiveness-NTU method (Incropera; Shah & Sekulic; Kays & London).
//
// With C = m_dot cp for each stream, C_min limits the duty:
//
//	Q_max = C_min (T_hot,in - T_cold,in)

// NTUResult carries the capacity rates and transfer units behind an effectiveness.
type NTUResult struct {
	CMin          float64 // W/K
	CMax          float64 // W/K, may be +Inf
	CapacityRatio float64 // C_min/C_max, -
	NTU           float64 // UA/C_min, -
	Effectiveness float64 // -
}

/*
Effectiveness of the exchanger.

	Args:
		cHot: hot stream capacity rate, W/K (may be +Inf)
		cCold: cold stream capacity rate, W/K (may be +Inf)
		ua: overall conductance, W/K
		fa: flow arrangement

	Returns:
		C_min, C_max, C_r, NTU and effectiveness

	Notes:
		counterflow:   NTU/(1+NTU) when |1 - C_r| < 1e-9, otherwise
		               (1 - e^(-NTU(1-C_r))) / (1 - C_r e^(-NTU(1-C_r)))
		cocurrentflow: (1 - e^(-NTU(1+C_r))) / (1 + C_r)
		crossflow:     both fluids treated as mixed (lumped); the cocurrent
		               form is reused. Mixed/unmixed crossflow relations are
		               left to segmented models.
*/
func EffectivenessNTU(cHot, cCold, ua float64, fa geometry.FlowArrangement) (NTUResult, error) {
	if err := capacity("C_hot", cHot); err != nil {
		return NTUResult{}, err
	}
	if err := capacity("C_cold", cCold); err != nil {
		return NTUResult{}, err
	}
	if err := hxerr.Positive("UA", ua); err != nil {
		return NTUResult{}, err
	}

	cMin := math.Min(cHot, cCold)
	cMax := math.Max(cHot, cCold)
	if math.IsInf(cMin, 1) {
		return NTUResult{}, hxerr.Configuration("at least one stream needs a finite capacity rate")
	}
	cr := cMin / cMax
	ntu := ua / cMin

	var eps float64
	switch fa {
	case geometry.Counterflow:
		if math.Abs(1.0-cr) < capacityRatioUnityTol {
			eps = ntu / (1.0 + ntu)
		} else {
			e := math.Exp(-ntu * (1.0 - cr))
			eps = (1.0 - e) / (1.0 - cr*e)
		}
	case geometry.Cocurrentflow, geometry.Crossflow:
		eps = (1.0 - math.Exp(-ntu*(1.0+cr))) / (1.0 + cr)
	default:
		return NTUResult{}, hxerr.Configuration("unsupported flow arrangement %q", fa)
	}

	return NTUResult{
		CMin:          cMin,
		CMax:          cMax,
		CapacityRatio: cr,
		NTU:           ntu,
		Effectiveness: eps,
	}, nil
}

// Effectiveness returns only epsilon of EffectivenessNTU.
func Effectiveness(cHot, cCold, ua float64, fa geometry.FlowArrangement) (float64, error) {
	r, err := EffectivenessNTU(cHot, cCold, ua, fa)
	if err != nil {
		return 0, err
	}
	return r.Effectiveness, nil
}

// capacity accepts positive finite values and +Inf.
func capacity(name string, c float64) error {
	if math.IsInf(c, 1) {
		return nil
	}
	return hxerr.Positive(name, c)
}

// Duty is the heat duty and outlet state of both streams.
type Duty struct {
	Q                  float64 // heat duty, W
	QMax               float64 // C_min (T_hot,in - T_cold,in), W
	HotOutlet          float64 // K
	ColdOutlet         float64 // K
	HotOutletEnthalpy  float64 // J/kg dry air, NaN unless the hot stream is enthalpy-tracked
	ColdOutletEnthalpy float64 // J/kg dry air, NaN unless the cold stream is enthalpy-tracked
}

/*
Heat duty and outlet temperatures from the effectiveness.

	Args:
		eps: effectiveness, - (0 <= eps <= 1)
		hot: hot stream
		cold: cold stream

	Returns:
		Q = eps Q_max and each stream's outlet from its own OutletTemperature

	Notes:
		The hot stream gives up Q, the cold stream receives it: the cold stream
		is asked for OutletTemperature(-Q).
*/
func HeatDuty(eps float64, hot, cold EnergyStream) (Duty, error) {
	if math.IsNaN(eps) || eps < 0.0 || eps > 1.0 {
		return Duty{}, hxerr.Domain("effectiveness must be between 0 and 1, got %g", eps)
	}
	if hot == nil || cold == nil {
		return Duty{}, hxerr.Configuration("both hot and cold streams are required")
	}

	cHot, err := hot.CapacityRate()
	if err != nil {
		return Duty{}, fmt.Errorf("hot stream: %w", err)
	}
	cCold, err := cold.CapacityRate()
	if err != nil {
		return Duty{}, fmt.Errorf("cold stream: %w", err)
	}
	if err := capacity("C_hot", cHot); err != nil {
		return Duty{}, err
	}
	if err := capacity("C_cold", cCold); err != nil {
		return Duty{}, err
	}
	cMin := math.Min(cHot, cCold)
	if math.IsInf(cMin, 1) {
		return Duty{}, hxerr.Configuration("at least one stream needs a finite capacity rate")
	}

	qMax := cMin * (hot.InletTemperature() - cold.InletTemperature())
	q := eps * qMax

	d := Duty{
		Q:                  q,
		QMax:               qMax,
		HotOutlet:          hot.OutletTemperature(q),
		ColdOutlet:         cold.OutletTemperature(-q),
		HotOutletEnthalpy:  math.NaN(),
		ColdOutletEnthalpy: math.NaN(),
	}
	if m, ok := hot.(*MoistAirStream); ok {
		d.HotOutletEnthalpy = m.OutletEnthalpy(q)
	}
	if m, ok := cold.(*MoistAirStream); ok {
		d.ColdOutletEnthalpy = m.OutletEnthalpy(-q)
	}
	return d, nil
}
