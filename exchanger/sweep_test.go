package exchanger

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hx_rating/geometry"
	"hx_rating/hxerr"
)

func TestSweepMatchesSingleSolves(t *testing.T) {
	hx, err := NewBareTube(newBundle(t, 2, geometry.Counterflow), Config{WallConductivity: ptr(16)})
	require.NoError(t, err)

	inputs, err := OutsideMassFlowSpan(baseInput(t), 0.5, 4.0, 8)
	require.NoError(t, err)
	require.Len(t, inputs, 8)
	assert.Equal(t, 0.5, inputs[0].Outside.MassFlow)
	assert.Equal(t, 4.0, inputs[7].Outside.MassFlow)

	got, err := Sweep(context.Background(), hx, inputs, 3)
	require.NoError(t, err)
	require.Len(t, got, len(inputs))

	for i, in := range inputs {
		want, err := hx.Solve(in)
		require.NoError(t, err)
		if diff := cmp.Diff(want, got[i], cmpopts.EquateNaNs()); diff != "" {
			t.Errorf("point %d (-single +sweep):\n%s", i, diff)
		}
	}

	// more outside flow, more UA
	for i := 1; i < len(got); i++ {
		assert.Greater(t, got[i].UA, got[i-1].UA)
	}
}

func TestSweepReportsFailingPoint(t *testing.T) {
	hx, err := NewBareTube(newBundle(t, 2, geometry.Counterflow), Config{})
	require.NoError(t, err)

	inputs, err := OutsideMassFlowSpan(baseInput(t), 1, 2, 3)
	require.NoError(t, err)
	inputs[1].TubeSide.MassFlow = -1

	_, err = Sweep(context.Background(), hx, inputs, 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, hxerr.ErrInvalidInput)
	assert.Contains(t, err.Error(), "operating point 1")
}

func TestSweepCancelled(t *testing.T) {
	hx, err := NewBareTube(newBundle(t, 2, geometry.Counterflow), Config{})
	require.NoError(t, err)
	inputs, err := OutsideMassFlowSpan(baseInput(t), 1, 2, 4)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = Sweep(ctx, hx, inputs, 1)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestOutsideMassFlowSpanInvalid(t *testing.T) {
	base := baseInput(t)

	_, err := OutsideMassFlowSpan(base, 0, 1, 3)
	assert.ErrorIs(t, err, hxerr.ErrInvalidInput)

	_, err = OutsideMassFlowSpan(base, 2, 1, 3)
	assert.ErrorIs(t, err, hxerr.ErrInvalidConfiguration)

	_, err = OutsideMassFlowSpan(base, 1, 2, 1)
	assert.ErrorIs(t, err, hxerr.ErrInvalidConfiguration)

	base.Outside = nil
	_, err = OutsideMassFlowSpan(base, 1, 2, 3)
	assert.ErrorIs(t, err, hxerr.ErrInvalidConfiguration)
}

func TestOutsideMassFlowSpanCopiesOutside(t *testing.T) {
	base := baseInput(t)
	inputs, err := OutsideMassFlowSpan(base, 1, 3, 3)
	require.NoError(t, err)

	inputs[0].Outside.Zeta = ptr(2)
	assert.Nil(t, base.Outside.Zeta)
	assert.Nil(t, inputs[1].Outside.Zeta)
	assert.Equal(t, 2.0, base.Outside.MassFlow)
}
