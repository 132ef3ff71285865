package transfer_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lineprof/physconst"
	"github.com/katalvlaran/lineprof/profile"
	"github.com/katalvlaran/lineprof/transfer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRHS_UniformLineCentre(t *testing.T) {
	c, err := transfer.New(species(t), 1, 0, uniform(), transfer.Geometry{Radius: radius})
	require.NoError(t, err)

	phi := 1 / math.Sqrt(2*math.Pi*c.BetaS*c.BetaS)
	boltz := math.Exp(-c.Theta)
	I := 1e-3
	want := c.Prefactor * phi * (boltz - c.Tau0*(1-boltz)*I)

	for _, x := range []float64{-0.9, -0.1, 0, 0.3, 1} {
		assert.InEpsilon(t, want, c.RHS(I, x, 1), 1e-12, "x=%g", x)
	}
	assert.InEpsilon(t, -c.Prefactor*phi*c.Tau0*(1-boltz), c.Jacobian(0.2, 1), 1e-12)
}

func TestRHS_FarWingVanishes(t *testing.T) {
	c, err := transfer.New(species(t), 1, 0, uniform(), transfer.Geometry{Radius: radius})
	require.NoError(t, err)

	f := 1 + 5e7/physconst.C
	assert.Zero(t, c.RHS(1e-3, 0.5, f))
}

func TestRHS_Symmetric(t *testing.T) {
	p := uniform()
	p.Dispersion = profile.Constant(1e5)
	c, err := transfer.New(species(t), 1, 0, p, transfer.Geometry{Radius: radius})
	require.NoError(t, err)

	// 2⁻¹⁷ (≈2.3 km/s) keeps 1±dv and their offsets from 1 exact.
	dv := math.Ldexp(1, -17)
	assert.InEpsilon(t, c.RHS(0, 0.4, 1+dv), c.RHS(0, 0.4, 1-dv), 1e-12)
}

func TestRHSLog_ChainRule(t *testing.T) {
	p := uniform()
	p.Velocity = profile.Radial(func(r float64) float64 { return -2e5 * r })
	c, err := transfer.New(species(t), 1, 0, p, transfer.Geometry{Radius: radius})
	require.NoError(t, err)

	// With offset 0 the scaling sgn·x²/r is exactly dx/dt = x.
	I, f := 2e-4, 1+1e5/physconst.C
	for _, sgn := range []float64{-1, 1} {
		for _, tt := range []float64{-4, -1, 0} {
			x := sgn * math.Exp(tt)
			assert.InDelta(t, c.RHS(I, x, f)*x, c.RHSLog(I, tt, f, sgn), 1e-9*math.Abs(c.RHS(I, x, f))+1e-300)
			assert.InDelta(t, c.Jacobian(x, f)*x, c.JacobianLog(tt, f, sgn), 1e-9*math.Abs(c.Jacobian(x, f))+1e-300)
		}
	}
}

func TestCoefficients_ClampBeyondEdge(t *testing.T) {
	// The profile is undefined above r = 1; evaluation must clamp.
	p := uniform()
	p.Density = profile.Radial(func(r float64) float64 {
		if r > 1 {
			return math.NaN()
		}
		return dens * (2 - r)
	})
	c, err := transfer.New(species(t), 1, 0, p, transfer.Geometry{Radius: radius, Offset: 0.5})
	require.NoError(t, err)

	e, k := c.Coefficients(1, 1)
	assert.False(t, math.IsNaN(e))
	assert.False(t, math.IsNaN(k))
	assert.Greater(t, e, 0.0)
}
