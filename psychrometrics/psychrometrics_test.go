package psychrometrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hx_rating/hxerr"
)

func TestSaturationVaporPressure(t *testing.T) {
	assert.InDelta(t, 2339.2, SaturationVaporPressure(293.15), 0.5)
	assert.InDelta(t, 101419.0, SaturationVaporPressure(373.15), 5)
	assert.InDelta(t, 259.9, SaturationVaporPressure(263.15), 0.5)
}

func TestMoistAirEnthalpy(t *testing.T) {
	h, err := MoistAirEnthalpy(293.15, 0.5, StandardPressure)
	require.NoError(t, err)
	assert.InDelta(t, 38555.3, h, 1.0)

	dry, err := MoistAirEnthalpy(293.15, 0, StandardPressure)
	require.NoError(t, err)
	assert.InDelta(t, 1006*20.0, dry, 1e-9)
}

func TestMoistAirEnthalpyInvalid(t *testing.T) {
	_, err := MoistAirEnthalpy(293.15, 1.2, StandardPressure)
	assert.ErrorIs(t, err, hxerr.ErrInvalidInput)

	_, err = MoistAirEnthalpy(-1, 0.5, StandardPressure)
	assert.ErrorIs(t, err, hxerr.ErrInvalidInput)

	_, err = MoistAirEnthalpy(293.15, 0.5, 0)
	assert.ErrorIs(t, err, hxerr.ErrInvalidInput)

	// saturated steam at 110 degree C exceeds one atmosphere
	_, err = MoistAirEnthalpy(383.15, 1.0, StandardPressure)
	assert.ErrorIs(t, err, hxerr.ErrDomainBound)
}

func TestDryBulbFromEnthalpyInvertsEnthalpy(t *testing.T) {
	for _, tc := range []struct{ t, rh float64 }{{293.15, 0.5}, {308.15, 0.3}, {278.15, 0.9}} {
		x, err := HumidityRatioFromRH(tc.t, tc.rh, StandardPressure)
		require.NoError(t, err)
		h, err := MoistAirEnthalpy(tc.t, tc.rh, StandardPressure)
		require.NoError(t, err)

		back, err := DryBulbFromEnthalpy(h, x)
		require.NoError(t, err)
		assert.InDelta(t, tc.t, back, 1e-9)
	}
}

func TestDewPoint(t *testing.T) {
	tdp, err := DewPoint(293.15, 0.5)
	require.NoError(t, err)
	assert.InDelta(t, 273.15+9.2737, tdp, 1e-3)

	tdp, err = DewPoint(293.15, 1.0)
	require.NoError(t, err)
	assert.Equal(t, 293.15, tdp)

	_, err = DewPoint(293.15, 0)
	assert.ErrorIs(t, err, hxerr.ErrInvalidInput)

	// vapour pressure below saturation at the bottom of the search range
	_, err = DewPoint(293.15, 1e-9)
	assert.ErrorIs(t, err, hxerr.ErrDomainBound)
}
