// Package caseio reads rating cases and operating points and writes results.
//
// A case file (TOML, YAML or JSON) describes one exchanger and one operating
// point. Operating-point CSV files vary the flows and inlet temperatures of a
// case; result CSV files hold one row per solved point.
package caseio

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"hx_rating/exchanger"
	"hx_rating/geometry"
	"hx_rating/heattransfer"
	"hx_rating/hxerr"
	"hx_rating/psychrometrics"
)

// Stream types accepted in a case file.
const (
	StreamSensible   = "sensible"
	StreamCondensing = "condensing"
	StreamMoistAir   = "moist_air"
)

// Case is the decoded case file. Lengths in m, temperatures in K,
// flows in kg/s and properties in SI units.
type Case struct {
	Name            string       `mapstructure:"name"`
	Tube            TubeSpec     `mapstructure:"tube"`
	Bundle          BundleSpec   `mapstructure:"bundle"`
	Wall            WallSpec     `mapstructure:"wall"`
	Hot             StreamSpec   `mapstructure:"hot"`
	Cold            StreamSpec   `mapstructure:"cold"`
	TubeSide        TubeSideSpec `mapstructure:"tube_side"`
	Outside         OutsideSpec  `mapstructure:"outside"`
	FlowArrangement string       `mapstructure:"flow_arrangement"`
}

type TubeSpec struct {
	InnerDiameter   float64 `mapstructure:"inner_diameter"`
	OuterDiameter   float64 `mapstructure:"outer_diameter"`
	LengthTotal     float64 `mapstructure:"length_total"`
	LengthEffective float64 `mapstructure:"length_effective"`
}

type BundleSpec struct {
	Rows              int     `mapstructure:"rows"`
	TubesPerRow       int     `mapstructure:"tubes_per_row"`
	PitchTransverse   float64 `mapstructure:"pitch_transverse"`
	PitchLongitudinal float64 `mapstructure:"pitch_longitudinal"`
	Layout            string  `mapstructure:"layout"`
	Passes            int     `mapstructure:"passes"`
	FlowArrangement   string  `mapstructure:"flow_arrangement"`
}

type WallSpec struct {
	Conductivity *float64 `mapstructure:"conductivity"` // W/(m K), nil neglects the wall
}

// StreamSpec describes one energy stream. Which fields are read depends on Type.
//
//	sensible:   capacity_rate, inlet_temperature
//	condensing: inlet_temperature (saturation)
//	moist_air:  mass_flow, inlet_temperature, capacity_rate,
//	            inlet_enthalpy or relative_humidity (+ pressure)
type StreamSpec struct {
	Type             string   `mapstructure:"type"`
	CapacityRate     *float64 `mapstructure:"capacity_rate"`     // W/K
	InletTemperature float64  `mapstructure:"inlet_temperature"` // K
	MassFlow         float64  `mapstructure:"mass_flow"`         // kg/s dry air
	RelativeHumidity *float64 `mapstructure:"relative_humidity"` // 0..1
	Pressure         float64  `mapstructure:"pressure"`          // Pa, 0: standard atmosphere
	InletEnthalpy    *float64 `mapstructure:"inlet_enthalpy"`    // J/kg dry air
}

type PropsSpec struct {
	Density      float64 `mapstructure:"density"`
	Viscosity    float64 `mapstructure:"viscosity"`
	Conductivity float64 `mapstructure:"conductivity"`
	SpecificHeat float64 `mapstructure:"specific_heat"`
}

func (p PropsSpec) fluid() heattransfer.FluidProps {
	return heattransfer.FluidProps{Rho: p.Density, Mu: p.Viscosity, K: p.Conductivity, Cp: p.SpecificHeat}
}

// LossesSpec overrides the minor loss coefficients key by key; unset keys
// keep heattransfer.DefaultMinorLosses.
type LossesSpec struct {
	Inlet  *float64 `mapstructure:"inlet"`
	Outlet *float64 `mapstructure:"outlet"`
	Turn   *float64 `mapstructure:"turn"`
}

func (l LossesSpec) minorLosses() heattransfer.MinorLosses {
	k := heattransfer.DefaultMinorLosses()
	if l.Inlet != nil {
		k.Inlet = *l.Inlet
	}
	if l.Outlet != nil {
		k.Outlet = *l.Outlet
	}
	if l.Turn != nil {
		k.Turn = *l.Turn
	}
	return k
}

type TubeSideSpec struct {
	MassFlow float64     `mapstructure:"mass_flow"`
	Props    PropsSpec   `mapstructure:"props"`
	Losses   *LossesSpec `mapstructure:"losses"`
}

type OutsideSpec struct {
	MassFlow    *float64   `mapstructure:"mass_flow"`
	Props       *PropsSpec `mapstructure:"props"`
	Zeta        *float64   `mapstructure:"zeta"`
	Coefficient *float64   `mapstructure:"coefficient"` // h_o override, W/(m2 K)
}

// Read loads the case file at path.
func Read(path string, log logrus.FieldLogger) (*Case, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("caseio: problem reading case file %s: %w", path, err)
	}
	c, err := Decode(v)
	if err != nil {
		return nil, err
	}
	log.WithFields(logrus.Fields{
		"case": c.Name,
		"file": path,
	}).Debug("case loaded")
	return c, nil
}

// Decode decodes a case from v. Unset names default to "case".
func Decode(v *viper.Viper) (*Case, error) {
	var c Case
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("caseio: problem decoding case: %w", err)
	}
	if c.Name == "" {
		c.Name = "case"
	}
	return &c, nil
}

// Exchanger builds the geometry and the rating model.
func (c *Case) Exchanger() (*exchanger.BareTube, error) {
	tube, err := geometry.NewBareTube(
		c.Tube.InnerDiameter,
		c.Tube.OuterDiameter,
		c.Tube.LengthTotal,
		c.Tube.LengthEffective,
	)
	if err != nil {
		return nil, fmt.Errorf("tube: %w", err)
	}
	bundle, err := geometry.NewBundle(tube, geometry.BundleParams{
		Rows:              c.Bundle.Rows,
		TubesPerRow:       c.Bundle.TubesPerRow,
		PitchTransverse:   c.Bundle.PitchTransverse,
		PitchLongitudinal: c.Bundle.PitchLongitudinal,
		Layout:            geometry.Layout(c.Bundle.Layout),
		Passes:            c.Bundle.Passes,
		FlowArrangement:   geometry.FlowArrangement(c.Bundle.FlowArrangement),
	})
	if err != nil {
		return nil, fmt.Errorf("bundle: %w", err)
	}
	return exchanger.NewBareTube(bundle, exchanger.Config{WallConductivity: c.Wall.Conductivity})
}

// Input builds the solve input of the case's own operating point.
func (c *Case) Input() (exchanger.SolveInput, error) {
	hot, err := c.Hot.stream()
	if err != nil {
		return exchanger.SolveInput{}, fmt.Errorf("hot stream: %w", err)
	}
	cold, err := c.Cold.stream()
	if err != nil {
		return exchanger.SolveInput{}, fmt.Errorf("cold stream: %w", err)
	}

	in := exchanger.SolveInput{
		Hot:  hot,
		Cold: cold,
		TubeSide: exchanger.TubeSide{
			MassFlow: c.TubeSide.MassFlow,
			Props:    c.TubeSide.Props.fluid(),
		},
		OutsideCoefficient: c.Outside.Coefficient,
		FlowArrangement:    geometry.FlowArrangement(c.FlowArrangement),
	}
	if l := c.TubeSide.Losses; l != nil {
		k := l.minorLosses()
		in.TubeSide.Losses = &k
	}
	if c.Outside.MassFlow != nil {
		if c.Outside.Props == nil {
			return exchanger.SolveInput{}, hxerr.Configuration("outside mass flow given without outside props")
		}
		in.Outside = &exchanger.Outside{
			MassFlow: *c.Outside.MassFlow,
			Props:    c.Outside.Props.fluid(),
			Zeta:     c.Outside.Zeta,
		}
	}
	return in, nil
}

func (s StreamSpec) stream() (heattransfer.EnergyStream, error) {
	switch strings.ToLower(strings.TrimSpace(s.Type)) {
	case StreamSensible, "":
		if s.CapacityRate == nil {
			return nil, hxerr.Configuration("sensible stream requires capacity_rate")
		}
		return heattransfer.NewSensibleStream(*s.CapacityRate, s.InletTemperature)

	case StreamCondensing:
		if err := hxerr.Positive("saturation temperature", s.InletTemperature); err != nil {
			return nil, err
		}
		return heattransfer.NewCondensingStream(s.InletTemperature), nil

	case StreamMoistAir:
		h, err := s.inletEnthalpy()
		if err != nil {
			return nil, err
		}
		m, err := heattransfer.NewMoistAirStream(s.MassFlow, h, s.InletTemperature)
		if err != nil {
			return nil, err
		}
		if s.CapacityRate == nil {
			return m, nil
		}
		return m.WithCapacityRate(*s.CapacityRate)

	default:
		return nil, hxerr.Configuration("unknown stream type %q", s.Type)
	}
}

// inletEnthalpy is the given enthalpy, or the psychrometric one at the inlet
// temperature and relative humidity.
func (s StreamSpec) inletEnthalpy() (float64, error) {
	if s.InletEnthalpy != nil {
		return *s.InletEnthalpy, nil
	}
	if s.RelativeHumidity == nil {
		return 0, hxerr.Configuration("moist air stream requires inlet_enthalpy or relative_humidity")
	}
	p := s.Pressure
	if p == 0 {
		p = psychrometrics.StandardPressure
	}
	return psychrometrics.MoistAirEnthalpy(s.InletTemperature, *s.RelativeHumidity, p)
}

/*
Outlet dry-bulb estimate of a moist air stream.

	Args:
		hOut: outlet specific enthalpy, J/kg dry air

	Returns:
		outlet dry-bulb temperature at the inlet humidity ratio, K
		inlet dew point, K

	Notes:
		The estimate does not hold below the dew point, where moisture
		would condense; callers compare the two.
*/
func (s StreamSpec) OutletDryBulb(hOut float64) (float64, float64, error) {
	if s.RelativeHumidity == nil {
		return 0, 0, hxerr.Configuration("outlet dry-bulb needs the inlet relative humidity")
	}
	p := s.Pressure
	if p == 0 {
		p = psychrometrics.StandardPressure
	}
	x, err := psychrometrics.HumidityRatioFromRH(s.InletTemperature, *s.RelativeHumidity, p)
	if err != nil {
		return 0, 0, err
	}
	t, err := psychrometrics.DryBulbFromEnthalpy(hOut, x)
	if err != nil {
		return 0, 0, err
	}
	dew, err := psychrometrics.DewPoint(s.InletTemperature, *s.RelativeHumidity)
	if err != nil {
		return 0, 0, err
	}
	return t, dew, nil
}
