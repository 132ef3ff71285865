// SPDX-License-Identifier: MIT

package sightline

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lineprof/ode"
	"github.com/katalvlaran/lineprof/physconst"
	"github.com/katalvlaran/lineprof/resonance"
	"github.com/katalvlaran/lineprof/transfer"
)

// searchStart is the unsigned starting point of the resonance search.
const searchStart = 0.001

// minResonance is the smallest distance for which the interior breakpoints
// stay representable.
const minResonance = 1e-300

// interiorSigns gives the log-coordinate sign of each interior segment;
// 0 marks the linear segment through x = 0.
var interiorSigns = [9]float64{-1, -1, -1, -1, 0, 1, 1, 1, 1}

// Integrator computes pencil-beam intensities for one transfer context.
type Integrator struct {
	tc   *transfer.Context
	opts Options
}

// New returns an Integrator bound to tc.
//
// Errors: ErrNilContext, ErrInvalidOptions.
func New(tc *transfer.Context, opts Options) (*Integrator, error) {
	if tc == nil {
		return nil, ErrNilContext
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if opts.Locator == nil {
		opts.Locator = resonance.NelderMead{}
	}

	return &Integrator{tc: tc, opts: opts}, nil
}

// Context returns the transfer context the integrator is bound to.
func (it *Integrator) Context() *transfer.Context { return it.tc }

// WithOffset returns an Integrator for the same cloud observed at impact
// parameter offset.
//
// Errors: transfer.ErrInvalidOffset.
func (it *Integrator) WithOffset(offset float64) (*Integrator, error) {
	tc, err := it.tc.WithOffset(offset)
	if err != nil {
		return nil, err
	}

	return &Integrator{tc: tc, opts: it.opts}, nil
}

// Intensity integrates the sightline at velocity v (cm/s).
//
// Errors: ErrIntegrationDiverged wrapping the ode cause.
func (it *Integrator) Intensity(v float64) (Sample, error) {
	tc := it.tc
	f := 1 + v/physconst.C
	icmb := tc.Background(f, it.opts.Background)
	s := Sample{Velocity: v, Background: icmb}

	sign := 1.0
	if v < 0 {
		sign = -1
	}
	obj := func(x float64) float64 { return -tc.RHS(icmb, sign*x, f) }
	xs, err := it.opts.Locator.Locate(obj, searchStart)
	if err != nil {
		xs = math.NaN()
	}
	a := math.Abs(xs)
	s.Resonance = a

	var I float64
	if a > minResonance && a < 1 {
		s.Branch = Interior
		I, err = it.interior(a, f, icmb, &s.Stats)
	} else {
		s.Branch = Exterior
		half := tc.HalfChord()
		I, err = it.segment(linear(tc, f), icmb, -half, half, &s.Stats)
	}
	if err != nil {
		return s, fmt.Errorf("v=%g cm/s, %s branch: %w", v, s.Branch, err)
	}
	s.Intensity = I - icmb

	return s, nil
}

// interior runs the nine-segment plan around the resonance distance a.
func (it *Integrator) interior(a, f, I float64, st *ode.Stats) (float64, error) {
	bp := [10]float64{-1, -1.1 * a, -a, -a / 10, -a / 100, a / 100, a / 10, a, 1.1 * a, 1}

	var err error
	for i, sgn := range interiorSigns {
		if sgn == 0 {
			I, err = it.segment(linear(it.tc, f), I, bp[i], bp[i+1], st)
		} else {
			I, err = it.segment(logarithmic(it.tc, f, sgn), I, math.Log(sgn*bp[i]), math.Log(sgn*bp[i+1]), st)
		}
		if err != nil {
			return I, fmt.Errorf("segment [%g, %g]: %w", bp[i], bp[i+1], err)
		}
	}

	return I, nil
}

func (it *Integrator) segment(fn ode.Func, I, t0, t1 float64, st *ode.Stats) (float64, error) {
	y, seg, err := ode.Solve(fn, I, t0, t1, it.opts.ODE)
	st.Add(seg)
	if err != nil {
		return y, fmt.Errorf("%w: %w", ErrIntegrationDiverged, err)
	}

	return y, nil
}

func linear(tc *transfer.Context, f float64) ode.Func {
	return func(x, I float64) (float64, float64) {
		e, k := tc.Coefficients(x, f)

		return e - k*I, -k
	}
}

func logarithmic(tc *transfer.Context, f, sgn float64) ode.Func {
	return func(t, I float64) (float64, float64) {
		e, k := tc.CoefficientsLog(t, f, sgn)

		return e - k*I, -k
	}
}
