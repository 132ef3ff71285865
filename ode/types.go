// SPDX-License-Identifier: MIT

package ode

import (
	"errors"
	"math"
)

// Sentinel errors returned by Solve.
var (
	// ErrStepBudget indicates that MaxSteps macro steps (accepted or
	// rejected) were taken before reaching the end of the interval.
	ErrStepBudget = errors.New("ode: step budget exhausted")

	// ErrStepUnderflow indicates that the controller shrank the step below
	// the floating-point resolution of t.
	ErrStepUnderflow = errors.New("ode: step size underflow")

	// ErrNonFinite indicates a NaN or ±Inf initial value.
	ErrNonFinite = errors.New("ode: non-finite state")

	// ErrBadOptions indicates non-positive tolerances or step budget.
	ErrBadOptions = errors.New("ode: invalid options")
)

// Func returns dy/dt and ∂(dy/dt)/∂y at (t, y).
type Func func(t, y float64) (dydt, dfdy float64)

// FiniteDiff builds a Func from a derivative without an analytic Jacobian,
// using a one-sided difference in y.
func FiniteDiff(f func(t, y float64) float64) Func {
	return func(t, y float64) (float64, float64) {
		fy := f(t, y)
		dy := 1e-8 * math.Max(math.Abs(y), 1)

		return fy, (f(t, y+dy) - fy) / dy
	}
}

// Options controls accuracy and effort.
type Options struct {
	AbsTol      float64 // absolute error tolerance, > 0
	RelTol      float64 // relative error tolerance, > 0
	MaxSteps    int     // macro-step budget per Solve call, ≥ 1
	InitialStep float64 // first step length; 0 = automatic
	MaxStep     float64 // upper bound on step length; 0 = whole interval
}

// Default tolerances and budget.
const (
	DefaultAbsTol   = 1e-11
	DefaultRelTol   = 1e-11
	DefaultMaxSteps = 10000
)

// DefaultOptions returns Options with DefaultAbsTol, DefaultRelTol and
// DefaultMaxSteps and automatic step selection.
func DefaultOptions() Options {
	return Options{
		AbsTol:   DefaultAbsTol,
		RelTol:   DefaultRelTol,
		MaxSteps: DefaultMaxSteps,
	}
}

// Stats reports the effort spent by one Solve call.
type Stats struct {
	Steps       int // macro steps attempted
	Accepted    int // macro steps accepted
	Rejected    int // macro steps rejected by the error test
	Evaluations int // calls of the Func
}

// Add accumulates o into s.
func (s *Stats) Add(o Stats) {
	s.Steps += o.Steps
	s.Accepted += o.Accepted
	s.Rejected += o.Rejected
	s.Evaluations += o.Evaluations
}

func (o Options) validate() error {
	if !(o.AbsTol > 0) || !(o.RelTol > 0) || o.MaxSteps < 1 || o.InitialStep < 0 || o.MaxStep < 0 {
		return ErrBadOptions
	}

	return nil
}
