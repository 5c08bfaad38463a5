package exchanger

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"

	"hx_rating/hxerr"
)

/*
Solve many independent operating points in parallel.

	Args:
		ctx: cancels the remaining solves
		hx: exchanger model, shared read-only by the workers
		inputs: operating points
		workers: maximum concurrent solves; <= 0 uses GOMAXPROCS

	Returns:
		results in the order of inputs

	Notes:
		The first failing point cancels the others; its index is in the error.
*/
func Sweep(ctx context.Context, hx *BareTube, inputs []SolveInput, workers int) ([]*Result, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	results := make([]*Result, len(inputs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range inputs {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			r, err := hx.Solve(inputs[i])
			if err != nil {
				return fmt.Errorf("operating point %d: %w", i, err)
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// OutsideMassFlowSpan copies base for n outside mass flows evenly spaced
// over [lo, hi], kg/s.
func OutsideMassFlowSpan(base SolveInput, lo, hi float64, n int) ([]SolveInput, error) {
	if base.Outside == nil {
		return nil, hxerr.Configuration("an outside flow is required to sweep the outside mass flow")
	}
	if err := hxerr.Positive("lowest outside mass flow", lo); err != nil {
		return nil, err
	}
	if hi < lo {
		return nil, hxerr.Configuration("highest outside mass flow %g is below the lowest %g", hi, lo)
	}
	if n < 2 {
		return nil, hxerr.Configuration("a sweep needs at least 2 points, got %d", n)
	}

	flows := floats.Span(make([]float64, n), lo, hi)
	inputs := make([]SolveInput, n)
	for i, m := range flows {
		o := *base.Outside
		o.MassFlow = m
		in := base
		in.Outside = &o
		inputs[i] = in
	}
	return inputs, nil
}
