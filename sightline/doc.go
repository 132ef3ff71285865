// SPDX-License-Identifier: MIT

// Package sightline integrates the transfer equation along one pencil-beam
// sightline through the cloud and returns the emergent, background-subtracted
// intensity at a single velocity.
//
// For a velocity v the observed frequency ratio is f = 1 + v/c and the
// sightline starts at x = −1 with the normalized blackbody background
//
//	ICMB = (2h·f³ν³/c²) / (exp(h·f·ν/(kB·TCMB)) − 1) / I0.
//
// A resonance.Locator first estimates a = |x*|, the distance from the
// cloud centre at which the Doppler-shifted line centre matches f, by
// minimizing −dI/dx(ICMB, sign(v)·x) from x = 0.001. The result selects one
// of two integration plans:
//
//	Interior (a < 1):  nine segments between the breakpoints
//	                   −1, −1.1a, −a, −a/10, −a/100, a/100, a/10, a, 1.1a, 1.
//	                   Every segment except [−a/100, a/100] is integrated in
//	                   the log coordinate x = ±eᵗ so the narrow feature near
//	                   the resonance is resolved geometrically.
//	Exterior (a ≥ 1, or a is vanishingly small or not finite):
//	                   a single linear segment [−√(1−o²), √(1−o²)].
//
// The intensity is carried from segment to segment. Each segment is an
// independent ode.Solve call with its own step budget; a segment that
// exhausts the budget, underflows its step size or produces a non-finite
// state aborts the sightline with ErrIntegrationDiverged.
//
// An Integrator is immutable and safe for concurrent use.
package sightline
