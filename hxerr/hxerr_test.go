package hxerr

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPositive(t *testing.T) {
	assert.NoError(t, Positive("rho", 1.2))
	for _, v := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		err := Positive("rho", v)
		assert.ErrorIs(t, err, ErrInvalidInput, "value %g", v)
	}
}

func TestNonNegative(t *testing.T) {
	assert.NoError(t, NonNegative("K", 0))
	assert.ErrorIs(t, NonNegative("K", -0.1), ErrInvalidInput)
}

func TestNotConfiguredIsConfiguration(t *testing.T) {
	assert.True(t, errors.Is(ErrNotConfigured, ErrInvalidConfiguration))
	assert.ErrorIs(t, Configuration("bad %s", "layout"), ErrInvalidConfiguration)
	assert.ErrorIs(t, Domain("eps %g", 1.5), ErrDomainBound)
	assert.ErrorIs(t, PositiveInt("rows", 0), ErrInvalidInput)
}
