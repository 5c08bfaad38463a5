package caseio

import (
	"fmt"
	"io"
	"math"
	"os"

	"github.com/gocarina/gocsv"

	"hx_rating/exchanger"
)

// ResultRow is one row of a result CSV file. Outside quantities that were
// not computed are written as NaN.
type ResultRow struct {
	Case                string  `csv:"case"`
	Point               int     `csv:"point"`
	FlowArrangement     string  `csv:"flow_arrangement"`
	TubeMassFlow        float64 `csv:"tube_mass_flow"`    // kg/s
	OutsideMassFlow     float64 `csv:"outside_mass_flow"` // kg/s
	HotInlet            float64 `csv:"hot_inlet"`         // K
	ColdInlet           float64 `csv:"cold_inlet"`        // K
	AreaInner           float64 `csv:"area_inner"`        // m2
	AreaOuter           float64 `csv:"area_outer"`        // m2
	InnerCoefficient    float64 `csv:"h_inner"`           // W/(m2 K)
	OutsideCoefficient  float64 `csv:"h_outer"`           // W/(m2 K)
	OutsideSource       string  `csv:"h_outer_source"`    // computed | override
	UA                  float64 `csv:"ua"`                // W/K
	NTU                 float64 `csv:"ntu"`               // -
	Effectiveness       float64 `csv:"effectiveness"`     // -
	Q                   float64 `csv:"q"`                 // W
	HotOutlet           float64 `csv:"hot_outlet"`        // K
	ColdOutlet          float64 `csv:"cold_outlet"`       // K
	TubePressureDrop    float64 `csv:"dp_tube"`           // Pa
	OutsidePressureDrop float64 `csv:"dp_outside"`        // Pa
	TubeReynolds        float64 `csv:"re_tube"`           // -
	OutsideReynolds     float64 `csv:"re_outside"`        // -
}

// NewResultRow flattens one solved operating point.
func NewResultRow(caseName string, point int, in exchanger.SolveInput, r *exchanger.Result) ResultRow {
	outsideFlow := math.NaN()
	if in.Outside != nil {
		outsideFlow = in.Outside.MassFlow
	}
	return ResultRow{
		Case:                caseName,
		Point:               point,
		FlowArrangement:     string(r.FlowArrangement),
		TubeMassFlow:        in.TubeSide.MassFlow,
		OutsideMassFlow:     outsideFlow,
		HotInlet:            in.Hot.InletTemperature(),
		ColdInlet:           in.Cold.InletTemperature(),
		AreaInner:           r.AreaInner,
		AreaOuter:           r.AreaOuter,
		InnerCoefficient:    r.TubeThermal.Coefficient,
		OutsideCoefficient:  r.OutsideThermal.Coefficient,
		OutsideSource:       string(r.OutsideThermal.Source),
		UA:                  r.UA,
		NTU:                 r.NTU.NTU,
		Effectiveness:       r.Effectiveness,
		Q:                   r.Q,
		HotOutlet:           r.HotOutlet,
		ColdOutlet:          r.ColdOutlet,
		TubePressureDrop:    r.TubeHydraulic.Total,
		OutsidePressureDrop: r.OutsideHydraulic.PressureDrop,
		TubeReynolds:        r.TubeThermal.Reynolds,
		OutsideReynolds:     r.OutsideThermal.Reynolds,
	}
}

// ResultRows flattens a sweep; inputs and results are index aligned.
func ResultRows(caseName string, inputs []exchanger.SolveInput, results []*exchanger.Result) ([]ResultRow, error) {
	if len(inputs) != len(results) {
		return nil, fmt.Errorf("caseio: %d inputs but %d results", len(inputs), len(results))
	}
	rows := make([]ResultRow, len(results))
	for i, r := range results {
		rows[i] = NewResultRow(caseName, i, inputs[i], r)
	}
	return rows, nil
}

// WriteResults encodes rows as CSV with a header line.
func WriteResults(w io.Writer, rows []ResultRow) error {
	if err := gocsv.Marshal(rows, w); err != nil {
		return fmt.Errorf("caseio: problem writing results: %w", err)
	}
	return nil
}

// WriteResultsFile writes rows to the CSV file at path, replacing it.
func WriteResultsFile(path string, rows []ResultRow) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("caseio: %w", err)
	}
	if err := gocsv.MarshalFile(rows, file); err != nil {
		file.Close()
		return fmt.Errorf("caseio: problem writing results %s: %w", path, err)
	}
	return file.Close()
}
