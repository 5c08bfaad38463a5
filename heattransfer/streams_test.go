package heattransfer

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hx_rating/hxerr"
)

func TestSensibleStream(t *testing.T) {
	s, err := NewSensibleStream(2000, 350)
	require.NoError(t, err)

	c, err := s.CapacityRate()
	require.NoError(t, err)
	assert.Equal(t, 2000.0, c)
	assert.Equal(t, 350.0, s.InletTemperature())
	assert.Equal(t, 340.0, s.OutletTemperature(20000))
	assert.Equal(t, 360.0, s.OutletTemperature(-20000))

	_, err = NewSensibleStream(0, 350)
	assert.ErrorIs(t, err, hxerr.ErrInvalidInput)
}

func TestCondensingStream(t *testing.T) {
	s := NewCondensingStream(373.15)
	c, err := s.CapacityRate()
	require.NoError(t, err)
	assert.True(t, math.IsInf(c, 1))
	assert.Equal(t, 373.15, s.InletTemperature())
	assert.Equal(t, 373.15, s.OutletTemperature(1e6))
}

func TestMoistAirStream(t *testing.T) {
	s, err := NewMoistAirStream(2.0, 55e3, 303.15)
	require.NoError(t, err)

	_, err = s.CapacityRate()
	assert.ErrorIs(t, err, hxerr.ErrNotConfigured)

	configured, err := s.WithCapacityRate(2100)
	require.NoError(t, err)
	c, err := configured.CapacityRate()
	require.NoError(t, err)
	assert.Equal(t, 2100.0, c)

	// the receiver is untouched
	_, err = s.CapacityRate()
	assert.ErrorIs(t, err, hxerr.ErrNotConfigured)

	assert.Equal(t, 303.15, configured.OutletTemperature(10e3))
	assert.Equal(t, 50e3, configured.OutletEnthalpy(10e3))
	assert.Equal(t, 2.0, configured.MassFlow())
	assert.Equal(t, 55e3, configured.InletEnthalpy())

	_, err = s.WithCapacityRate(-1)
	assert.ErrorIs(t, err, hxerr.ErrInvalidInput)
	_, err = NewMoistAirStream(0, 55e3, 303.15)
	assert.ErrorIs(t, err, hxerr.ErrInvalidInput)
}

func TestHeatDutyMoistAirEnthalpy(t *testing.T) {
	hot, err := NewSensibleStream(3000, 330)
	require.NoError(t, err)
	base, err := NewMoistAirStream(1.5, 40e3, 295)
	require.NoError(t, err)
	cold, err := base.WithCapacityRate(1520)
	require.NoError(t, err)

	d, err := HeatDuty(0.6, hot, cold)
	require.NoError(t, err)
	assert.InDelta(t, 0.6*1520*35, d.Q, 1e-9)
	assert.Equal(t, 295.0, d.ColdOutlet)
	assert.InDelta(t, 40e3+d.Q/1.5, d.ColdOutletEnthalpy, 1e-9)
	assert.True(t, math.IsNaN(d.HotOutletEnthalpy))
}
