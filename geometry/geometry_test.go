package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hx_rating/hxerr"
)

func TestBareTubeDerived(t *testing.T) {
	tube, err := NewBareTube(0.01, 0.014, 2.0, 1.8)
	require.NoError(t, err)

	assert.InEpsilon(t, 7.854e-5, tube.FlowArea(), 0.01)
	assert.Equal(t, 0.01, tube.HydraulicDiameter())
	assert.InEpsilon(t, 0.0565, tube.AreaInner(), 0.01)
	assert.InEpsilon(t, 0.0792, tube.AreaOuter(), 0.01)
}

func TestBareTubeInvalid(t *testing.T) {
	cases := []struct {
		name           string
		di, do, lt, le float64
		want           error
	}{
		{"zero inner", 0, 0.014, 2, 1.8, hxerr.ErrInvalidInput},
		{"negative outer", 0.01, -1, 2, 1.8, hxerr.ErrInvalidInput},
		{"outer not greater", 0.014, 0.014, 2, 1.8, hxerr.ErrInvalidConfiguration},
		{"zero total length", 0.01, 0.014, 0, 1.8, hxerr.ErrInvalidInput},
		{"zero effective length", 0.01, 0.014, 2, 0, hxerr.ErrInvalidInput},
		{"effective exceeds total", 0.01, 0.014, 2, 2.5, hxerr.ErrInvalidConfiguration},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := NewBareTube(c.di, c.do, c.lt, c.le)
			assert.ErrorIs(t, err, c.want)
		})
	}
}

func testParams() BundleParams {
	return BundleParams{
		Rows:              4,
		TubesPerRow:       6,
		PitchTransverse:   0.03,
		PitchLongitudinal: 0.026,
		Layout:            "Staggered",
		Passes:            3,
		FlowArrangement:   "CrossFlow",
	}
}

func TestBundleDerived(t *testing.T) {
	tube, err := NewBareTube(0.01, 0.014, 2.0, 1.8)
	require.NoError(t, err)

	b, err := NewBundle(tube, testParams())
	require.NoError(t, err)

	assert.Equal(t, LayoutStaggered, b.Layout())
	assert.Equal(t, Crossflow, b.FlowArrangement())
	assert.Equal(t, 24, b.TubesTotal())
	assert.Equal(t, 8, b.TubesPerPass())
	assert.Equal(t, 2, b.Turns())
	assert.InDelta(t, 24*tube.AreaInner(), b.TotalInnerArea(), 1e-12)
	assert.InDelta(t, 24*tube.AreaOuter(), b.TotalOuterArea(), 1e-12)
	assert.InDelta(t, 8*tube.FlowArea(), b.InternalFlowAreaPerPass(), 1e-15)
	assert.Equal(t, 0.01, b.InternalHydraulicDiameter())

	l, err := b.InternalLengthTotal()
	require.NoError(t, err)
	assert.InDelta(t, 6.0, l, 1e-12)

	a, err := b.FrontalFlowArea()
	require.NoError(t, err)
	assert.InDelta(t, 6*0.03*1.8, a, 1e-12)
}

func TestBundleUnevenPasses(t *testing.T) {
	tube, err := NewBareTube(0.01, 0.014, 2.0, 1.8)
	require.NoError(t, err)

	p := testParams()
	p.Rows, p.TubesPerRow, p.Passes = 4, 5, 3
	_, err = NewBundle(tube, p)
	assert.ErrorIs(t, err, hxerr.ErrInvalidConfiguration)
}

func TestBundleInvalid(t *testing.T) {
	tube, err := NewBareTube(0.01, 0.014, 2.0, 1.8)
	require.NoError(t, err)

	mutate := map[string]func(p *BundleParams){
		"rows":        func(p *BundleParams) { p.Rows = 0 },
		"per row":     func(p *BundleParams) { p.TubesPerRow = -1 },
		"pitch t":     func(p *BundleParams) { p.PitchTransverse = 0 },
		"pitch l":     func(p *BundleParams) { p.PitchLongitudinal = -0.1 },
		"passes":      func(p *BundleParams) { p.Passes = 0 },
		"layout":      func(p *BundleParams) { p.Layout = "diagonal" },
		"arrangement": func(p *BundleParams) { p.FlowArrangement = "parallel" },
	}
	for name, m := range mutate {
		t.Run(name, func(t *testing.T) {
			p := testParams()
			m(&p)
			_, err := NewBundle(tube, p)
			assert.Error(t, err)
		})
	}

	_, err = NewBundle(nil, testParams())
	assert.ErrorIs(t, err, hxerr.ErrInvalidConfiguration)

	var missing *BareTube
	_, err = NewBundle(missing, testParams())
	assert.ErrorIs(t, err, hxerr.ErrInvalidConfiguration)
}

// areaOnlyTube provides the mandatory geometry but no lengths.
type areaOnlyTube struct{}

func (areaOnlyTube) FlowArea() float64          { return 1e-4 }
func (areaOnlyTube) HydraulicDiameter() float64 { return 0.01 }
func (areaOnlyTube) AreaInner() float64         { return 0.05 }
func (areaOnlyTube) AreaOuter() float64         { return 0.07 }

func TestBundleMissingTubeAttributes(t *testing.T) {
	b, err := NewBundle(areaOnlyTube{}, testParams())
	require.NoError(t, err)

	_, err = b.InternalLengthTotal()
	assert.ErrorIs(t, err, hxerr.ErrInvalidConfiguration)

	_, err = b.FrontalFlowArea()
	assert.ErrorIs(t, err, hxerr.ErrInvalidConfiguration)
}

func TestParseNames(t *testing.T) {
	fa, err := ParseFlowArrangement(" COUNTERFLOW ")
	require.NoError(t, err)
	assert.Equal(t, Counterflow, fa)

	_, err = ParseFlowArrangement("")
	assert.ErrorIs(t, err, hxerr.ErrInvalidConfiguration)

	l, err := ParseLayout("inline")
	require.NoError(t, err)
	assert.Equal(t, LayoutInline, l)
}
