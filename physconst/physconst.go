// SPDX-License-Identifier: MIT

package physconst

// Fundamental constants (cgs).
const (
	// KB is the Boltzmann constant in erg/K.
	KB = 1.380649e-16

	// C is the speed of light in cm/s.
	C = 2.99792458e10

	// MH is the hydrogen (proton) mass in g.
	MH = 1.67262192369e-24

	// H is the Planck constant in erg·s.
	H = 6.62607015e-27

	// Sigma is the Stefan–Boltzmann constant in erg/(cm²·s·K⁴).
	Sigma = 5.670374419e-5

	// G is Newton's gravitational constant in cm³/(g·s²).
	G = 6.67430e-8

	// MSun is the solar mass in g.
	MSun = 1.989e33
)

// A is the radiation density constant 4σ/c.
const A = 4 * Sigma / C

// Small guards divisions and logarithms that would otherwise be singular
// at exactly zero (r = 0 on the sightline, I = 0 in the brightness
// temperature conversion).
const Small = 1e-50
