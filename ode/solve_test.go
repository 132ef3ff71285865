package ode_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/katalvlaran/lineprof/ode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// decay is y' = −y.
func decay(_, y float64) (float64, float64) { return -y, -1 }

func TestSolve_ExponentialDecay(t *testing.T) {
	y, st, err := ode.Solve(decay, 1, 0, 1, ode.DefaultOptions())
	require.NoError(t, err)
	assert.InDelta(t, math.Exp(-1), y, 1e-9)
	assert.Equal(t, st.Steps, st.Accepted+st.Rejected)
	assert.Positive(t, st.Evaluations)
}

func TestSolve_Backward(t *testing.T) {
	grow := func(_, y float64) (float64, float64) { return y, 1 }
	y, _, err := ode.Solve(grow, math.E, 1, 0, ode.DefaultOptions())
	require.NoError(t, err)
	assert.InDelta(t, 1.0, y, 1e-9)
}

func TestSolve_NonAutonomous(t *testing.T) {
	// y' = cos(t), y(0) = 0 ⇒ y = sin(t).
	fn := func(t, _ float64) (float64, float64) { return math.Cos(t), 0 }
	y, _, err := ode.Solve(fn, 0, 0, 3, ode.DefaultOptions())
	require.NoError(t, err)
	assert.InDelta(t, math.Sin(3), y, 1e-9)
}

func TestSolve_Stiff(t *testing.T) {
	// y' = −λ(y − cos t) with λ = 1e10 tracks cos t after a transient of
	// length 1e-10; explicit schemes would need ~1e10 steps.
	const lambda = 1e10
	fn := func(t, y float64) (float64, float64) { return -lambda * (y - math.Cos(t)), -lambda }

	y, st, err := ode.Solve(fn, 0, 0, 1, ode.DefaultOptions())
	require.NoError(t, err)
	// Slow manifold: y ≈ cos t + sin(t)/λ.
	assert.InDelta(t, math.Cos(1)+math.Sin(1)/lambda, y, 1e-9)
	assert.Less(t, st.Steps, 2000, "stiff problem must not exhaust the budget")
}

func TestSolve_StiffSourceRelaxation(t *testing.T) {
	// Transfer-like equation with constant coefficients:
	// y' = a − b·y ⇒ y(x) = S + (y0 − S)·exp(−b·x), S = a/b.
	const a, b = 2.7e9, 1e12
	fn := func(_, y float64) (float64, float64) { return a - b*y, -b }
	y, _, err := ode.Solve(fn, 1.5e-4, -1, 1, ode.DefaultOptions())
	require.NoError(t, err)
	assert.InDelta(t, a/b, y, 1e-10)
}

func TestSolve_StiffMovingSource(t *testing.T) {
	// y' = −κ(y − g(t)), g = 1 + t/2, y(−1) = g(−1):
	// y(t) = g − g'/κ + (g'/κ)·exp(−κ(t+1)).
	for _, kappa := range []float64{1e2, 1e4, 1e6, 1e8, 1e10} {
		t.Run(fmt.Sprintf("kappa=%g", kappa), func(t *testing.T) {
			fn := func(t, y float64) (float64, float64) { return -kappa * (y - (1 + 0.5*t)), -kappa }

			y, st, err := ode.Solve(fn, 0.5, -1, 1, ode.DefaultOptions())
			require.NoError(t, err)
			want := 1.5 - 0.5/kappa + 0.5/kappa*math.Exp(-2*kappa)
			assert.InDelta(t, want, y, 1e-9)
			assert.Less(t, st.Steps, ode.DefaultMaxSteps/2)
		})
	}
}

func TestSolve_StiffMovingSourceBackward(t *testing.T) {
	// Relaxation integrated towards smaller t, as the sightline does on its
	// negative log segments; the slow manifold is y = g + g'/κ.
	const kappa = 1e8
	fn := func(t, y float64) (float64, float64) { return kappa * (y - (1 + 0.5*t)), kappa }

	y, _, err := ode.Solve(fn, 1.5, 1, -1, ode.DefaultOptions())
	require.NoError(t, err)
	assert.InDelta(t, 0.5+0.5/kappa, y, 1e-9)
}

func TestSolve_TinyInitialValue(t *testing.T) {
	// A start value just above the absolute tolerance scale with a large
	// slope would suggest a first step far below the resolution of t.
	fn := func(_, _ float64) (float64, float64) { return 5, 0 }

	y, _, err := ode.Solve(fn, 3.5e-16, -1, 1, ode.DefaultOptions())
	require.NoError(t, err)
	assert.InDelta(t, 10, y, 1e-10)
}

func TestSolve_ZeroInterval(t *testing.T) {
	y, st, err := ode.Solve(decay, 3, 2, 2, ode.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 3.0, y)
	assert.Zero(t, st.Steps)
}

func TestSolve_StepBudget(t *testing.T) {
	fn := func(t, _ float64) (float64, float64) { return math.Cos(50 * t), 0 }
	opts := ode.DefaultOptions()
	opts.MaxSteps = 2

	_, st, err := ode.Solve(fn, 0, 0, 10, opts)
	require.ErrorIs(t, err, ode.ErrStepBudget)
	assert.Equal(t, 2, st.Steps)
}

func TestSolve_BudgetDoesNotChangeResult(t *testing.T) {
	fn := func(t, y float64) (float64, float64) { return -1e6 * (y - math.Sin(t)), -1e6 }
	small := ode.DefaultOptions()
	large := ode.DefaultOptions()
	large.MaxSteps = 10 * small.MaxSteps

	y1, _, err := ode.Solve(fn, 0, 0, 2, small)
	require.NoError(t, err)
	y2, _, err := ode.Solve(fn, 0, 0, 2, large)
	require.NoError(t, err)
	assert.Equal(t, y1, y2)
}

func TestSolve_Validation(t *testing.T) {
	bad := []ode.Options{
		{AbsTol: 0, RelTol: 1e-6, MaxSteps: 10},
		{AbsTol: 1e-6, RelTol: -1, MaxSteps: 10},
		{AbsTol: 1e-6, RelTol: 1e-6, MaxSteps: 0},
		{AbsTol: 1e-6, RelTol: 1e-6, MaxSteps: 10, InitialStep: -1},
	}
	for _, o := range bad {
		_, _, err := ode.Solve(decay, 1, 0, 1, o)
		assert.ErrorIs(t, err, ode.ErrBadOptions)
	}

	_, _, err := ode.Solve(decay, math.NaN(), 0, 1, ode.DefaultOptions())
	assert.ErrorIs(t, err, ode.ErrNonFinite)
}

func TestFiniteDiff(t *testing.T) {
	fn := ode.FiniteDiff(func(_, y float64) float64 { return 3 - 7*y })
	f, j := fn(0, 0.5)
	assert.InDelta(t, -0.5, f, 1e-15)
	assert.InDelta(t, -7, j, 1e-6)

	y, _, err := ode.Solve(ode.FiniteDiff(func(_, y float64) float64 { return -y }), 1, 0, 2, ode.DefaultOptions())
	require.NoError(t, err)
	assert.InDelta(t, math.Exp(-2), y, 1e-9)
}

func TestStats_Add(t *testing.T) {
	s := ode.Stats{Steps: 1, Accepted: 1, Evaluations: 10}
	s.Add(ode.Stats{Steps: 2, Accepted: 1, Rejected: 1, Evaluations: 30})
	assert.Equal(t, ode.Stats{Steps: 3, Accepted: 2, Rejected: 1, Evaluations: 40}, s)
}
