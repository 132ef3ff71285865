// SPDX-License-Identifier: MIT

// Package physconst is the process-wide table of physical constants used by
// the line-profile solver, expressed in cgs units.
//
// All values are untyped Go constants: there is nothing to initialise and
// nothing that can be mutated at run time. Values follow CODATA 2018.
//
//	kB    Boltzmann constant           erg K⁻¹
//	C     speed of light               cm s⁻¹
//	MH    proton (hydrogen) mass       g
//	H     Planck constant              erg s
//	Sigma Stefan–Boltzmann constant    erg cm⁻² s⁻¹ K⁻⁴
//	A     radiation constant 4σ/c      erg cm⁻³ K⁻⁴
//	G     gravitational constant       cm³ g⁻¹ s⁻²
//	MSun  solar mass                   g
package physconst
