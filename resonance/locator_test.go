package resonance_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lineprof/resonance"
)

func bump(centre, width float64) func(float64) float64 {
	return func(x float64) float64 {
		d := x - centre

		return math.Exp(-d * d / (width * width))
	}
}

// twoPeaks has a shallow peak at 0.2 and the global one at 0.9.
func twoPeaks(x float64) float64 {
	return -(0.5*bump(0.2, 0.1)(x) + bump(0.9, 0.1)(x))
}

type fixed struct {
	x   float64
	err error
}

func (f fixed) Locate(func(float64) float64, float64) (float64, error) { return f.x, f.err }

func TestNelderMead_FindsPeak(t *testing.T) {
	obj := func(x float64) float64 { return -bump(0.3, 0.1)(x) }
	x, err := resonance.NelderMead{}.Locate(obj, 0.001)
	require.NoError(t, err)
	assert.InDelta(t, 0.3, x, 1e-3)
}

func TestNelderMead_NegativeDirection(t *testing.T) {
	obj := func(x float64) float64 { return -bump(-0.45, 0.1)(x) }
	x, err := resonance.NelderMead{}.Locate(obj, -0.001)
	require.NoError(t, err)
	assert.InDelta(t, -0.45, x, 1e-3)
}

func TestNelderMead_BudgetReturnsBestPoint(t *testing.T) {
	obj := func(x float64) float64 { return -bump(0.3, 0.1)(x) }
	x, err := resonance.NelderMead{MaxIter: 3}.Locate(obj, 0.001)
	require.NoError(t, err)
	assert.False(t, math.IsNaN(x))
	assert.LessOrEqual(t, obj(x), obj(0.001))
}

func TestNelderMead_LocalTrap(t *testing.T) {
	x, err := resonance.NelderMead{}.Locate(twoPeaks, 0.001)
	require.NoError(t, err)
	assert.InDelta(t, 0.2, x, 0.05)
}

func TestGridScan_GlobalPeak(t *testing.T) {
	x, err := resonance.DefaultGridScan().Locate(twoPeaks, 0.001)
	require.NoError(t, err)
	assert.InDelta(t, 0.9, x, 1e-4)
}

func TestFallback(t *testing.T) {
	obj := func(x float64) float64 { return -bump(0.3, 0.1)(x) }
	secondary := fixed{x: 0.3}

	cases := []struct {
		name    string
		primary resonance.Locator
		want    float64
	}{
		{"consistent primary kept", fixed{x: 0.29}, 0.29},
		{"NaN falls back", fixed{x: math.NaN()}, 0.3},
		{"no improvement falls back", fixed{x: 0.001}, 0.3},
		{"error falls back", fixed{x: 0.29, err: errors.New("boom")}, 0.3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			x, err := resonance.Fallback{Primary: tc.primary, Secondary: secondary}.Locate(obj, 0.001)
			require.NoError(t, err)
			assert.Equal(t, tc.want, x)
		})
	}
}

func TestLocate_NilObjective(t *testing.T) {
	for _, l := range []resonance.Locator{
		resonance.NelderMead{},
		resonance.DefaultGridScan(),
		resonance.Fallback{Primary: resonance.NelderMead{}, Secondary: resonance.DefaultGridScan()},
	} {
		_, err := l.Locate(nil, 0.001)
		assert.ErrorIs(t, err, resonance.ErrNilObjective)
	}
}
