package caseio

import (
	"fmt"
	"io"
	"os"

	"github.com/gocarina/gocsv"
	"github.com/sirupsen/logrus"

	"hx_rating/exchanger"
	"hx_rating/hxerr"
)

// OperatingPoint is one row of an operating-point CSV file. A zero cell
// keeps the value of the case.
type OperatingPoint struct {
	TubeMassFlow         float64 `csv:"tube_mass_flow"`         // kg/s
	OutsideMassFlow      float64 `csv:"outside_mass_flow"`      // kg/s
	HotInletTemperature  float64 `csv:"hot_inlet_temperature"`  // K
	ColdInletTemperature float64 `csv:"cold_inlet_temperature"` // K
}

// WithPoint returns a copy of the case moved to the operating point p.
func (c *Case) WithPoint(p OperatingPoint) (*Case, error) {
	cp := *c
	if p.TubeMassFlow != 0 {
		cp.TubeSide.MassFlow = p.TubeMassFlow
	}
	if p.OutsideMassFlow != 0 {
		if c.Outside.MassFlow == nil {
			return nil, hxerr.Configuration("case %s has no outside mass flow to vary", c.Name)
		}
		m := p.OutsideMassFlow
		cp.Outside.MassFlow = &m
	}
	if p.HotInletTemperature != 0 {
		cp.Hot.InletTemperature = p.HotInletTemperature
	}
	if p.ColdInletTemperature != 0 {
		cp.Cold.InletTemperature = p.ColdInletTemperature
	}
	return &cp, nil
}

// Inputs builds one solve input per operating point.
func (c *Case) Inputs(points []OperatingPoint) ([]exchanger.SolveInput, error) {
	inputs := make([]exchanger.SolveInput, len(points))
	for i, p := range points {
		pc, err := c.WithPoint(p)
		if err != nil {
			return nil, fmt.Errorf("operating point %d: %w", i, err)
		}
		if inputs[i], err = pc.Input(); err != nil {
			return nil, fmt.Errorf("operating point %d: %w", i, err)
		}
	}
	return inputs, nil
}

// ReadPoints decodes operating points from CSV.
func ReadPoints(r io.Reader) ([]OperatingPoint, error) {
	var pp []OperatingPoint
	if err := gocsv.Unmarshal(r, &pp); err != nil {
		return nil, fmt.Errorf("caseio: problem reading operating points: %w", err)
	}
	if len(pp) == 0 {
		return nil, hxerr.Configuration("no operating points")
	}
	return pp, nil
}

// ReadPointsFile decodes the operating-point CSV file at path.
func ReadPointsFile(path string, log logrus.FieldLogger) ([]OperatingPoint, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("caseio: %w", err)
	}
	defer file.Close()

	var pp []OperatingPoint
	if err := gocsv.UnmarshalFile(file, &pp); err != nil {
		return nil, fmt.Errorf("caseio: problem reading operating points %s: %w", path, err)
	}
	if len(pp) == 0 {
		return nil, hxerr.Configuration("no operating points in %s", path)
	}
	log.WithFields(logrus.Fields{"file": path, "points": len(pp)}).Debug("operating points loaded")
	return pp, nil
}
