package geometry

import (
	"hx_rating/hxerr"
)

// BundleParams is the explicit geometric definition of a tube bundle.
// No defaults are imposed; every field must be given.
type BundleParams struct {
	Rows              int             // tube rows in the outside flow direction
	TubesPerRow       int             // tubes per row across the face
	PitchTransverse   float64         // center-to-center spacing across the face, m
	PitchLongitudinal float64         // spacing in the outside flow direction, m
	Layout            Layout          // inline or staggered
	Passes            int             // tube-side passes
	FlowArrangement   FlowArrangement // default arrangement for the thermal solve
}

// Bundle is a rectangular bundle of identical tubes.
//
// Tubes are split equally among the passes: the total tube count must be
// divisible by the pass count.
type Bundle struct {
	tube Tube
	p    BundleParams
}

func NewBundle(tube Tube, p BundleParams) (*Bundle, error) {
	if bt, ok := tube.(*BareTube); tube == nil || ok && bt == nil {
		return nil, hxerr.Configuration("bundle requires a tube")
	}
	if err := hxerr.PositiveInt("rows", p.Rows); err != nil {
		return nil, err
	}
	if err := hxerr.PositiveInt("tubes per row", p.TubesPerRow); err != nil {
		return nil, err
	}
	if err := hxerr.Positive("transverse pitch", p.PitchTransverse); err != nil {
		return nil, err
	}
	if err := hxerr.Positive("longitudinal pitch", p.PitchLongitudinal); err != nil {
		return nil, err
	}
	if err := hxerr.PositiveInt("passes", p.Passes); err != nil {
		return nil, err
	}

	layout, err := ParseLayout(string(p.Layout))
	if err != nil {
		return nil, err
	}
	p.Layout = layout

	fa, err := ParseFlowArrangement(string(p.FlowArrangement))
	if err != nil {
		return nil, err
	}
	p.FlowArrangement = fa

	if n := p.Rows * p.TubesPerRow; n%p.Passes != 0 {
		return nil, hxerr.Configuration(
			"total tube count %d must be divisible by the pass count %d (equal tubes per pass)", n, p.Passes)
	}

	return &Bundle{tube: tube, p: p}, nil
}

func (b *Bundle) Tube() Tube                       { return b.tube }
func (b *Bundle) Rows() int                        { return b.p.Rows }
func (b *Bundle) TubesPerRow() int                 { return b.p.TubesPerRow }
func (b *Bundle) PitchTransverse() float64         { return b.p.PitchTransverse }
func (b *Bundle) PitchLongitudinal() float64       { return b.p.PitchLongitudinal }
func (b *Bundle) Layout() Layout                   { return b.p.Layout }
func (b *Bundle) Passes() int                      { return b.p.Passes }
func (b *Bundle) FlowArrangement() FlowArrangement { return b.p.FlowArrangement }

// ---- tube counts ----

func (b *Bundle) TubesTotal() int {
	return b.p.Rows * b.p.TubesPerRow
}

// TubesPerPass is the number of tubes in parallel within one pass.
func (b *Bundle) TubesPerPass() int {
	return b.TubesTotal() / b.p.Passes
}

// Turns is the number of 180 degree returns between passes.
func (b *Bundle) Turns() int {
	return b.p.Passes - 1
}

// ---- heat transfer areas (effective length) ----

func (b *Bundle) TotalInnerArea() float64 {
	return float64(b.TubesTotal()) * b.tube.AreaInner()
}

func (b *Bundle) TotalOuterArea() float64 {
	return float64(b.TubesTotal()) * b.tube.AreaOuter()
}

// ---- internal flow (per pass) ----

// InternalFlowAreaPerPass is the flow area of all tubes in one pass, m2.
func (b *Bundle) InternalFlowAreaPerPass() float64 {
	return float64(b.TubesPerPass()) * b.tube.FlowArea()
}

func (b *Bundle) InternalHydraulicDiameter() float64 {
	return b.tube.HydraulicDiameter()
}

/*
Total hydraulic length seen by the tube-side fluid across all passes.

	Returns:
		passes * tube total length, m
*/
func (b *Bundle) InternalLengthTotal() (float64, error) {
	t, ok := b.tube.(TotalLengther)
	if !ok {
		return 0, hxerr.Configuration("tube does not provide a total length")
	}
	return float64(b.p.Passes) * t.LengthTotal(), nil
}

// ---- outside flow ----

/*
Frontal (approach) area for the outside crossflow.

	Returns:
		tubes per row * transverse pitch * effective length, m2

	Notes:
		Blockage by the tubes is neglected.
*/
func (b *Bundle) FrontalFlowArea() (float64, error) {
	t, ok := b.tube.(EffectiveLengther)
	if !ok {
		return 0, hxerr.Configuration("tube does not provide an effective length")
	}
	height := float64(b.p.TubesPerRow) * b.p.PitchTransverse
	return height * t.LengthEffective(), nil
}
