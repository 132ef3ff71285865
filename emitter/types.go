// SPDX-License-Identifier: MIT

package emitter

import "errors"

// Sentinel errors returned by Table construction and lookups.
var (
	// ErrLevelOutOfRange indicates a level index outside [0, NumLevels).
	ErrLevelOutOfRange = errors.New("emitter: level index out of range")

	// ErrInvalidTable indicates inconsistent or non-physical table data
	// (no levels, non-positive weights or frequencies, negative Einstein A,
	// duplicate lines, non-positive molecular weight).
	ErrInvalidTable = errors.New("emitter: invalid emitter table")
)

// Data is the read-only emitter view required by the solver.
type Data interface {
	// Transition returns the radiative data for upper level u and lower
	// level l. A zero EinsteinA means the pair has no radiative transition.
	Transition(u, l int) (Transition, error)

	// PartFunc returns the partition function at physical temperature T (K).
	PartFunc(T float64) float64

	// MolWgt returns the molecular weight in units of the hydrogen mass.
	MolWgt() float64
}

// Transition bundles the per-line quantities used by the transfer equation.
type Transition struct {
	EinsteinA   float64 // spontaneous emission coefficient, s⁻¹
	Freq        float64 // line-centre frequency, Hz
	UpperWeight float64 // statistical weight of the upper level
	LowerTemp   float64 // energy of the lower level expressed in K
}

// Level is one energy level of the species.
type Level struct {
	Energy float64 `yaml:"energy_k"` // level energy divided by kB, K
	Weight float64 `yaml:"weight"`   // statistical weight g
}

// Line is one radiative transition between two levels.
type Line struct {
	Upper     int     `yaml:"upper"`
	Lower     int     `yaml:"lower"`
	EinsteinA float64 `yaml:"einstein_a"`
	Freq      float64 `yaml:"freq_hz"`
}

// Option customises a Table at construction.
type Option func(*Table)

// WithPartitionFunc replaces the Boltzmann level sum with fn.
// Panics on nil: a missing function is a programmer error.
func WithPartitionFunc(fn func(T float64) float64) Option {
	if fn == nil {
		panic("emitter: WithPartitionFunc(nil)")
	}
	return func(t *Table) {
		t.partFunc = fn
	}
}

// WithConstantPartitionFunc fixes the partition function to z at every
// temperature.
func WithConstantPartitionFunc(z float64) Option {
	return func(t *Table) {
		t.partFunc = func(float64) float64 { return z }
	}
}
