// SPDX-License-Identifier: MIT

// Package transfer holds the dimensionless radiative-transfer equation of a
// spherical LTE cloud seen along one sightline.
//
// New precomputes, once per profile computation, every constant the
// equation needs from the emitter data, the cloud radius and the edge values
// T0, d0, v0, σ0 of the four radial profiles:
//
//	cs0  = √(kB·T0 / (μ·mH))
//	β    = v0/c      βs = cs0/c      βNT = σ0/c
//	Θ    = h·ν / (kB·T0)
//	τ0   = A·λ³·d0·R / (2c)
//	I0   = A·d0·h·R
//	pre  = d0·gU·exp(−Tlow/T0) / (4π)
//	σtot = √(cs0² + v0²)
//
// The resulting Context is immutable and may be shared by any number of
// goroutines.
//
// Along the sightline coordinate x the intensity obeys
//
//	dI/dx = ε(x, f) − κ(x, f)·I
//
// with, at r = √(x² + offset²),
//
//	σf = √(βs²·T(r) + βNT²·σ(r)²)
//	f0 = 1 − β·u(r)·sin(x / r)
//	φ  = exp(−(f − f0)² / 2σf²) / √(2π·σf²)
//	ε  = d(r)·pre/Z(T(r)·T0) · exp(−Θ/T(r)) · φ
//	κ  = d(r)·pre/Z(T(r)·T0) · τ0·(1 − exp(−Θ/T(r))) · φ
//
// where d, T, u, σ are the normalized profiles and f = 1 + v/c is the
// observed frequency in units of the line-centre frequency. Because the
// equation is affine in I, Coefficients returns (ε, κ) and both the RHS and
// its Jacobian ∂RHS/∂I = −κ are derived from them.
//
// The log-coordinate variant substitutes x = sgn·eᵗ and scales by
// sgn·x²/r, which resolves features concentrated near x = 0.
//
// Radial profiles are evaluated at min(r, 1): the sightline geometry can
// produce r slightly above the edge, where user profiles are undefined.
package transfer
