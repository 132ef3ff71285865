// SPDX-License-Identifier: MIT

// Package emitter describes the spectroscopic data of an emitting species
// as consumed by the line-profile solver.
//
// The solver only needs a narrow view of the species:
//
//	Transition(u, l) — Einstein A (s⁻¹), frequency (Hz), statistical weight
//	                   of the upper level and the lower-level energy in K;
//	PartFunc(T)      — partition function at physical temperature T (K);
//	MolWgt()         — molecular weight in amu.
//
// Anything satisfying Data can be plugged in. Table is the in-memory
// implementation shipped with the module: levels and radiative lines are
// stored in dense upper×lower matrices (gonum/mat), the partition function is
// the Boltzmann sum over levels unless a fixed override is supplied, and the
// whole table can be decoded from YAML (see LoadYAML).
//
// A zero Einstein A for a requested pair is not an error here; it is the
// "no radiative transition" signal that the transfer package turns into
// transfer.ErrNoTransition. Errors returned by Transition (for example
// ErrLevelOutOfRange) are propagated unchanged by every caller.
package emitter
