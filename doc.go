// SPDX-License-Identifier: MIT

// Package lineprof computes emergent line profiles of spherical clouds in
// local thermodynamic equilibrium: the brightness temperature of one
// spectral transition as a function of velocity offset from line centre.
//
// 🚀 What does lineprof do?
//
//	For every velocity on a grid it integrates the 1-D transfer equation
//
//		dI/dx = ε(x, f) − κ(x, f)·I
//
//	along a sightline through the cloud, starting from the cosmic
//	background, subtracts that background and converts the emergent
//	intensity to a brightness temperature. Density, temperature, bulk
//	velocity and non-thermal dispersion may all vary with radius.
//
// ✨ Building blocks:
//
//	physconst/  — cgs constants
//	emitter/    — level and transition data (emitter.Data, emitter.Table)
//	profile/    — radial profiles and their dimensionless views
//	transfer/   — the transfer equation of one transition in one cloud
//	resonance/  — search for the point of strongest line interaction
//	ode/        — stiff adaptive integrator
//	sightline/  — piecewise integration along one pencil beam
//	beam/       — Gaussian-beam average over pencil beams
//	config/     — YAML run configuration
//	report/     — CSV, PNG and PDF output
//
// Compute ties them together:
//
//	tb, err := lineprof.Compute(ctx, table, 1, 0, 3e16,
//		profile.Constant(1e4), profile.Constant(20),
//		lineprof.WithVelocityLimits(-5e4, 5e4),
//		lineprof.WithCount(41),
//	)
//
// Velocity grid precedence: WithVelocities, then WithVelocityLimits, then
// WithSpacing; with none of them the grid spans ±(5σtot + |v0|). WithCount
// sets the number of points (default 100).
//
// Errors are sentinels matched with errors.Is. ErrNoTransition,
// ErrInvalidOffset, ErrUnsupportedConfiguration and ErrNormalization are
// detected before any numerical work; ErrIntegrationDiverged aborts the
// whole call as soon as one velocity fails. Samples are computed in
// parallel (WithWorkers) against one immutable transfer.Context.
package lineprof
