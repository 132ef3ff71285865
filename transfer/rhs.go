// SPDX-License-Identifier: MIT

package transfer

import (
	"math"

	"github.com/katalvlaran/lineprof/physconst"
)

// Coefficients returns the emission ε and absorption κ of the transfer
// equation dI/dx = ε − κ·I at sightline coordinate x and observed
// frequency ratio f.
//
// This is the hot path of the solver: it runs at every integrator stage
// and every resonance-search trial, and it allocates nothing.
func (c *Context) Coefficients(x, f float64) (emission, absorption float64) {
	r := math.Sqrt(x*x + c.Offset*c.Offset)
	rp := math.Min(r, 1)

	tn := c.temperature.At(rp)
	sn := c.dispersion.At(rp)

	// Gaussian line shape around the locally Doppler-shifted centre.
	sig2 := c.BetaS*c.BetaS*tn + c.BetaNT*c.BetaNT*sn*sn
	f0 := 1 - c.Beta*c.velocity.At(rp)*math.Sin(x/(r+physconst.Small))
	df := f - f0
	phi := math.Exp(-df*df/(2*sig2)) / math.Sqrt(2*math.Pi*sig2)
	if phi == 0 {
		return 0, 0
	}

	base := c.density.At(rp) * c.Prefactor / c.partition.At(tn) * phi
	boltz := math.Exp(-c.Theta / tn)

	return base * boltz, base * c.Tau0 * (1 - boltz)
}

// RHS returns dI/dx at intensity I.
func (c *Context) RHS(I, x, f float64) float64 {
	e, k := c.Coefficients(x, f)

	return e - k*I
}

// Jacobian returns ∂(dI/dx)/∂I.
func (c *Context) Jacobian(x, f float64) float64 {
	_, k := c.Coefficients(x, f)

	return -k
}

// logFactor is the scaling sgn·x²/r applied under x = sgn·eᵗ.
func (c *Context) logFactor(t float64, sgn float64) (x, factor float64) {
	ax := math.Exp(t)
	x = sgn * ax

	return x, sgn * ax * ax / math.Sqrt(ax*ax+c.Offset*c.Offset)
}

// CoefficientsLog returns ε and κ in the log coordinate t, x = sgn·eᵗ.
func (c *Context) CoefficientsLog(t, f, sgn float64) (emission, absorption float64) {
	x, g := c.logFactor(t, sgn)
	e, k := c.Coefficients(x, f)

	return e * g, k * g
}

// RHSLog returns dI/dt in the log coordinate.
func (c *Context) RHSLog(I, t, f, sgn float64) float64 {
	e, k := c.CoefficientsLog(t, f, sgn)

	return e - k*I
}

// JacobianLog returns ∂(dI/dt)/∂I in the log coordinate.
func (c *Context) JacobianLog(t, f, sgn float64) float64 {
	_, k := c.CoefficientsLog(t, f, sgn)

	return -k
}
