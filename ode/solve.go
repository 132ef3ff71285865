// SPDX-License-Identifier: MIT

package ode

import (
	"fmt"
	"math"
)

// columns is the depth of the extrapolation tableau; the accepted value has
// order columns.
const columns = 5

// stepSequence is the harmonic sub-step sequence n_j = j+1.
var stepSequence = [columns]int{1, 2, 3, 4, 5}

// Step-size controller constants.
const (
	safety  = 0.9
	facMin  = 0.2
	facMax  = 4.0
	tinyRHS = 1e-5

	// initialFloor bounds an automatic first step from below, relative to
	// the magnitude of t0 and the span, so it stays resolvable in t.
	initialFloor = 1e-12

	// sqrtEps scales the finite-difference increment in t.
	sqrtEps = 1.4901161193847656e-08
)

// Solve integrates y' = fn(t, y) from (t0, y0) to t1 and returns y(t1).
// t1 may be smaller than t0.
//
// Errors:
//   - ErrBadOptions    invalid tolerances or budget.
//   - ErrNonFinite     y0 is NaN or ±Inf.
//   - ErrStepBudget    opts.MaxSteps exhausted; the returned y is the last
//     accepted value and must not be used as a result.
//   - ErrStepUnderflow step size fell below the resolution of t.
//
// Complexity: O(steps · columns²/2) evaluations of fn.
func Solve(fn Func, y0, t0, t1 float64, opts Options) (float64, Stats, error) {
	var st Stats
	if err := opts.validate(); err != nil {
		return y0, st, err
	}
	if math.IsNaN(y0) || math.IsInf(y0, 0) {
		return y0, st, ErrNonFinite
	}
	if t1 == t0 {
		return y0, st, nil
	}

	dir := 1.0
	if t1 < t0 {
		dir = -1
	}
	span := math.Abs(t1 - t0)
	maxStep := opts.MaxStep
	if maxStep == 0 || maxStep > span {
		maxStep = span
	}

	var (
		t, y     = t0, y0
		h        = opts.InitialStep
		rejected bool
		tab      [columns][columns]float64
	)
	if h == 0 {
		h = initialStep(fn, t, y, opts, &st)
		h = math.Max(h, initialFloor*math.Max(math.Abs(t0), span))
	}
	h = math.Min(h, maxStep)

	for {
		if st.Steps >= opts.MaxSteps {
			return y, st, fmt.Errorf("%w: %d steps, stopped at t=%g on [%g, %g]",
				ErrStepBudget, st.Steps, t, t0, t1)
		}

		last := false
		if remaining := math.Abs(t1 - t); h >= remaining {
			h, last = remaining, true
		}
		if t+dir*h == t {
			return y, st, fmt.Errorf("%w: h=%g at t=%g", ErrStepUnderflow, h, t)
		}

		yNew, est := extrapolate(fn, t, y, dir*h, &tab, &st)
		st.Steps++

		scale := opts.AbsTol + opts.RelTol*math.Max(math.Abs(y), math.Abs(yNew))
		errNorm := est / scale
		if math.IsNaN(errNorm) || math.IsNaN(yNew) || math.IsInf(yNew, 0) {
			errNorm = math.Inf(1)
		}

		if errNorm <= 1 {
			st.Accepted++
			y = yNew
			if last {
				return y, st, nil
			}
			t += dir * h
			fac := stepFactor(errNorm)
			if rejected {
				fac = math.Min(fac, 1)
			}
			rejected = false
			h = math.Min(h*fac, maxStep)

			continue
		}

		st.Rejected++
		rejected = true
		h *= math.Min(stepFactor(errNorm), safety)
	}
}

// extrapolate advances one macro step of signed length h and returns the
// extrapolated value and its error estimate.
//
// Each sub-step is linearly implicit Euler on the autonomous system (t, y):
//
//	y⁺ = y + (hs·f + hs²·∂f/∂t) / (1 − hs·∂f/∂y)
//
// ∂f/∂t is a difference quotient taken once at the start of the macro step
// and frozen for all rows, so its rounding error is a fixed O(hs) term that
// the tableau eliminates.
func extrapolate(fn Func, t, y, h float64, tab *[columns][columns]float64, st *Stats) (float64, float64) {
	f0, j0 := fn(t, y)
	st.Evaluations++
	ft0 := timeDerivative(fn, t, y, f0, h, st)

	var j, i, m int
	for j = 0; j < columns; j++ {
		n := stepSequence[j]
		hs := h / float64(n)
		ti, yi := t, y
		fi, ji := f0, j0
		for i = 0; i < n; i++ {
			if i > 0 {
				fi, ji = fn(ti, yi)
				st.Evaluations++
			}
			yi += (hs*fi + hs*hs*ft0) / (1 - hs*ji)
			ti = t + float64(i+1)*hs
		}

		tab[j][0] = yi
		for m = 1; m <= j; m++ {
			ratio := float64(stepSequence[j])/float64(stepSequence[j-m]) - 1
			tab[j][m] = tab[j][m-1] + (tab[j][m-1]-tab[j-1][m-1])/ratio
		}
	}

	k := columns - 1

	return tab[k][k], math.Abs(tab[k][k] - tab[k][k-1])
}

// timeDerivative approximates ∂f/∂t at (t, y) by a one-sided difference
// taken in the direction of h, so the probe stays inside the step.
func timeDerivative(fn Func, t, y, f, h float64, st *Stats) float64 {
	dt := sqrtEps * math.Max(math.Abs(t), math.Abs(h))
	if h < 0 {
		dt = -dt
	}
	dt = (t + dt) - t
	if dt == 0 {
		return 0
	}
	ft, _ := fn(t+dt, y)
	st.Evaluations++
	if math.IsNaN(ft) || math.IsInf(ft, 0) {
		return 0
	}

	return (ft - f) / dt
}

// stepFactor maps a scaled error to a step multiplier in [facMin, facMax].
func stepFactor(errNorm float64) float64 {
	if errNorm == 0 {
		return facMax
	}
	if math.IsInf(errNorm, 1) {
		return facMin
	}
	fac := safety * math.Pow(errNorm, -1.0/columns)

	return math.Max(facMin, math.Min(facMax, fac))
}

// initialStep picks a first step from the size of y and y' (Hairer,
// Nørsett & Wanner, algorithm II.4 without the second-derivative probe).
func initialStep(fn Func, t, y float64, opts Options, st *Stats) float64 {
	f0, _ := fn(t, y)
	st.Evaluations++

	sc := opts.AbsTol + opts.RelTol*math.Abs(y)
	d0 := math.Abs(y) / sc
	d1 := math.Abs(f0) / sc
	if d0 < tinyRHS || d1 < tinyRHS || math.IsNaN(d1) || math.IsInf(d1, 0) {
		return 1e-6
	}

	return 0.01 * d0 / d1
}
