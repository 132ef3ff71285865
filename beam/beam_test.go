package beam_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lineprof/beam"
)

func constant(v float64) beam.Pencil {
	return func(float64) (float64, error) { return v, nil }
}

func TestIntegrate_ConstantPencil(t *testing.T) {
	for _, bd := range []float64{0.05, 0.3, 1, 4} {
		res, err := beam.Integrate(constant(1), bd, beam.DefaultOptions())
		require.NoError(t, err)
		assert.True(t, res.Converged)
		assert.InEpsilon(t, -math.Expm1(-1/(2*bd*bd)), res.Value, 1e-8, "βd=%g", bd)
	}
}

func TestIntegrate_QuadraticPencil(t *testing.T) {
	const bd = 0.4
	u := 1 / (2 * bd * bd)
	want := 2 * bd * bd * (1 - (1+u)*math.Exp(-u))

	res, err := beam.Integrate(func(r float64) (float64, error) { return r * r, nil }, bd, beam.DefaultOptions())
	require.NoError(t, err)
	assert.InEpsilon(t, want, res.Value, 1e-8)
	assert.Positive(t, res.Pencils)
	assert.Positive(t, res.Intervals)
}

func TestIntegrate_PencilErrorAborts(t *testing.T) {
	boom := errors.New("pencil failed")
	calls := 0
	_, err := beam.Integrate(func(r float64) (float64, error) {
		calls++
		if r > 0.5 {
			return 0, boom
		}

		return 1, nil
	}, 0.3, beam.DefaultOptions())
	assert.ErrorIs(t, err, boom)

	// No further pencils once the first error is recorded.
	_, err = beam.Integrate(func(float64) (float64, error) {
		calls = -1

		return 0, boom
	}, 0.3, beam.DefaultOptions())
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, -1, calls)
}

func TestIntegrate_DepthCap(t *testing.T) {
	step := func(r float64) (float64, error) {
		if r < 0.123456789 {
			return 0, nil
		}

		return 1, nil
	}
	res, err := beam.Integrate(step, 0.3, beam.Options{RelTol: 1e-14, MaxDepth: 2})
	require.NoError(t, err)
	assert.False(t, res.Converged)
}

func TestIntegrate_Validation(t *testing.T) {
	_, err := beam.Integrate(nil, 0.3, beam.DefaultOptions())
	assert.ErrorIs(t, err, beam.ErrNilPencil)

	for _, bd := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		_, err = beam.Integrate(constant(1), bd, beam.DefaultOptions())
		assert.ErrorIs(t, err, beam.ErrInvalidDispersion, "βd=%g", bd)
	}
}

func TestWeight(t *testing.T) {
	assert.Zero(t, beam.Weight(0, 0.5))
	assert.InEpsilon(t, 0.5/0.25*math.Exp(-0.5), beam.Weight(0.5, 0.5), 1e-15)
}
