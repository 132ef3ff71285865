// SPDX-License-Identifier: MIT

// Package ode integrates scalar initial-value problems y' = f(t, y) that may
// be stiff.
//
// The transfer equation of a cold, dense cloud relaxes towards its source
// function on length scales many orders of magnitude shorter than the cloud,
// so explicit Runge–Kutta schemes stall at tight tolerances. Solve uses the
// extrapolated linearly implicit Euler method (the scalar form of SEULEX):
//
//	y_{i+1} = y_i + (h·f(t_i, y_i) + h²·∂f/∂t) / (1 − h·∂f/∂y(t_i, y_i))
//
// is run over a macro step H with n = 1, 2, …, k sub-steps and the results
// are combined by Aitken–Neville extrapolation to h → 0. The method is
// L-stable, the tableau diagonal has order k, and the difference of the last
// two diagonal entries drives the step-size controller.
//
// The ∂f/∂t term makes the sub-step exact on a source that moves linearly
// in t, so a stiff problem tracks its moving equilibrium with large steps.
// It is a difference quotient taken once per macro step.
//
// Func returns the derivative together with ∂f/∂y; FiniteDiff adapts a plain
// derivative when no analytic Jacobian is available.
//
// Termination is explicit: exceeding Options.MaxSteps returns
// ErrStepBudget, a step that no longer advances t returns ErrStepUnderflow
// and a non-finite state returns ErrNonFinite. A partial result is never
// reported as success.
package ode
