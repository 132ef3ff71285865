// SPDX-License-Identifier: MIT

package transfer

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lineprof/emitter"
	"github.com/katalvlaran/lineprof/physconst"
	"github.com/katalvlaran/lineprof/profile"
)

// Context is the immutable dimensionless bundle of one transition in one
// cloud. Exported fields are read-only after New returns.
type Context struct {
	// Line data.
	Freq float64 // line-centre frequency, Hz

	// Physical edge values of the profiles.
	T0, D0, V0, Sigma0 float64

	// Dimensionless parameters.
	Beta      float64 // bulk-velocity Doppler parameter
	BetaS     float64 // thermal Doppler parameter
	BetaNT    float64 // non-thermal Doppler parameter
	Theta     float64 // hν/(kB·T0)
	Tau0      float64 // optical-depth scale
	I0        float64 // intensity normalization, erg cm⁻² s⁻¹ Hz⁻¹ sr⁻¹
	Prefactor float64 // source prefactor d0·gU·exp(−Tlow/T0)/(4π)
	Offset    float64 // impact parameter in cloud radii
	SigmaTot  float64 // √(cs0² + v0²), cm/s

	density, temperature, velocity, dispersion profile.Norm
	partition                                  profile.Norm
}

// New validates the request and precomputes the transfer constants.
//
// Preconditions and validation (in order):
//  1. em.Transition(u, l) must succeed (its error is returned unchanged).
//  2. EinsteinA(u, l) ≠ 0 (ErrNoTransition).
//  3. geom.Offset ∈ [0, 1] (ErrInvalidOffset).
//  4. not (geom.BeamDispersion > 0 and geom.Offset > 0) (ErrUnsupportedConfiguration).
//  5. density and temperature have usable, and for temperature positive,
//     edge values; velocity and dispersion have finite edges
//     (profile.ErrNormalization).
//
// Complexity: O(1) plus one evaluation of each radial profile at r = 1.
func New(em emitter.Data, u, l int, p Profiles, geom Geometry) (*Context, error) {
	tr, err := em.Transition(u, l)
	if err != nil {
		return nil, err
	}
	if tr.EinsteinA == 0 {
		return nil, fmt.Errorf("%w: %d → %d", ErrNoTransition, u, l)
	}
	if err = checkOffset(geom.Offset); err != nil {
		return nil, err
	}
	if geom.BeamDispersion > 0 && geom.Offset > 0 {
		return nil, ErrUnsupportedConfiguration
	}

	c := &Context{Offset: geom.Offset, Freq: tr.Freq}
	if c.density, err = profile.Normalize(p.Density); err != nil {
		return nil, fmt.Errorf("density: %w", err)
	}
	if c.temperature, err = profile.Normalize(p.Temperature); err != nil {
		return nil, fmt.Errorf("temperature: %w", err)
	}
	if c.temperature.Edge() < 0 {
		return nil, fmt.Errorf("temperature: %w: negative edge value %g",
			profile.ErrNormalization, c.temperature.Edge())
	}
	if c.velocity, err = profile.NormalizeSigned(p.Velocity); err != nil {
		return nil, fmt.Errorf("velocity: %w", err)
	}
	if c.dispersion, err = profile.NormalizeSigned(p.Dispersion); err != nil {
		return nil, fmt.Errorf("dispersion: %w", err)
	}

	c.T0 = c.temperature.Edge()
	c.D0 = c.density.Edge()
	c.V0 = c.velocity.Edge()
	c.Sigma0 = c.dispersion.Edge()
	c.partition = profile.PartitionAdapter(em.PartFunc, c.T0)

	const (
		kB = physconst.KB
		cl = physconst.C
		h  = physconst.H
	)
	cs0 := math.Sqrt(kB * c.T0 / (em.MolWgt() * physconst.MH))
	c.Beta = c.velocity.Scale() / cl
	c.BetaS = cs0 / cl
	c.BetaNT = c.dispersion.Scale() / cl

	wavelength := cl / tr.Freq
	c.Theta = h * cl / (wavelength * kB * c.T0)
	c.Tau0 = tr.EinsteinA * wavelength * wavelength * wavelength * c.D0 * geom.Radius / (2 * cl)
	c.I0 = tr.EinsteinA * c.D0 * h * geom.Radius
	c.Prefactor = c.D0 * tr.UpperWeight * math.Exp(-tr.LowerTemp/c.T0) / (4 * math.Pi)
	c.SigmaTot = math.Sqrt(cs0*cs0 + c.V0*c.V0)

	return c, nil
}

// WithOffset returns a copy of c observed at a different impact parameter.
// The beam integrator uses it to sample pencil beams across the cloud face.
func (c *Context) WithOffset(offset float64) (*Context, error) {
	if err := checkOffset(offset); err != nil {
		return nil, err
	}
	cp := *c
	cp.Offset = offset

	return &cp, nil
}

// HalfChord returns √(1 − offset²), the extent of the sightline inside the
// cloud.
func (c *Context) HalfChord() float64 {
	return math.Sqrt(1 - c.Offset*c.Offset)
}

// Background returns the normalized blackbody intensity at temperature tbg
// and observed frequency ratio f:
//
//	(2h·f³ν³/c²) / (exp(h·f·ν/(kB·tbg)) − 1) / I0
func (c *Context) Background(f, tbg float64) float64 {
	nu := f * c.Freq
	planck := 2 * physconst.H * nu * nu * nu / (physconst.C * physconst.C)

	return planck / math.Expm1(physconst.H*nu/(physconst.KB*tbg)) / c.I0
}

func checkOffset(offset float64) error {
	if !(offset >= 0 && offset <= 1) {
		return fmt.Errorf("%w: got %g", ErrInvalidOffset, offset)
	}

	return nil
}
