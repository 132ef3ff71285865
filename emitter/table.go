// SPDX-License-Identifier: MIT

package emitter

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Table is an immutable in-memory emitter. It is safe for concurrent use.
type Table struct {
	name      string
	molWgt    float64
	levels    []Level
	einsteinA *mat.Dense // [upper, lower] → s⁻¹, zero where no line exists
	freq      *mat.Dense // [upper, lower] → Hz
	partFunc  func(float64) float64
}

var _ Data = (*Table)(nil)

// NewTable validates levels and lines and builds a Table.
//
// Contracts:
//   - len(levels) ≥ 1, every weight > 0 and every energy finite.
//   - molWgt > 0.
//   - every line references valid, distinct levels, has EinsteinA ≥ 0 and
//     Freq > 0; a (upper, lower) pair may appear only once.
//
// Errors: ErrInvalidTable, ErrLevelOutOfRange.
//
// Complexity: O(L² + N) time and memory for L levels and N lines.
func NewTable(name string, molWgt float64, levels []Level, lines []Line, opts ...Option) (*Table, error) {
	if len(levels) == 0 {
		return nil, fmt.Errorf("%w: no levels", ErrInvalidTable)
	}
	if !(molWgt > 0) || math.IsInf(molWgt, 0) {
		return nil, fmt.Errorf("%w: molecular weight %g", ErrInvalidTable, molWgt)
	}
	var i int
	for i = range levels {
		if !(levels[i].Weight > 0) || math.IsNaN(levels[i].Energy) || math.IsInf(levels[i].Energy, 0) {
			return nil, fmt.Errorf("%w: level %d (weight %g, energy %g)",
				ErrInvalidTable, i, levels[i].Weight, levels[i].Energy)
		}
	}

	n := len(levels)
	t := &Table{
		name:      name,
		molWgt:    molWgt,
		levels:    append([]Level(nil), levels...),
		einsteinA: mat.NewDense(n, n, nil),
		freq:      mat.NewDense(n, n, nil),
	}

	seen := make(map[[2]int]struct{}, len(lines))
	for _, ln := range lines {
		if ln.Upper < 0 || ln.Upper >= n || ln.Lower < 0 || ln.Lower >= n {
			return nil, fmt.Errorf("%w: line %d→%d with %d levels", ErrLevelOutOfRange, ln.Upper, ln.Lower, n)
		}
		if ln.Upper == ln.Lower {
			return nil, fmt.Errorf("%w: line %d→%d connects a level to itself", ErrInvalidTable, ln.Upper, ln.Lower)
		}
		if ln.EinsteinA < 0 || math.IsNaN(ln.EinsteinA) || math.IsInf(ln.EinsteinA, 0) {
			return nil, fmt.Errorf("%w: line %d→%d Einstein A %g", ErrInvalidTable, ln.Upper, ln.Lower, ln.EinsteinA)
		}
		if !(ln.Freq > 0) || math.IsInf(ln.Freq, 0) {
			return nil, fmt.Errorf("%w: line %d→%d frequency %g", ErrInvalidTable, ln.Upper, ln.Lower, ln.Freq)
		}
		key := [2]int{ln.Upper, ln.Lower}
		if _, dup := seen[key]; dup {
			return nil, fmt.Errorf("%w: duplicate line %d→%d", ErrInvalidTable, ln.Upper, ln.Lower)
		}
		seen[key] = struct{}{}
		t.einsteinA.Set(ln.Upper, ln.Lower, ln.EinsteinA)
		t.freq.Set(ln.Upper, ln.Lower, ln.Freq)
	}

	for _, opt := range opts {
		opt(t)
	}
	if t.partFunc == nil {
		t.partFunc = t.levelSum
	}

	return t, nil
}

// Name returns the species label the table was built with.
func (t *Table) Name() string { return t.name }

// NumLevels returns the number of energy levels.
func (t *Table) NumLevels() int { return len(t.levels) }

// MolWgt implements Data.
func (t *Table) MolWgt() float64 { return t.molWgt }

// PartFunc implements Data.
func (t *Table) PartFunc(T float64) float64 { return t.partFunc(T) }

// Transition implements Data. Pairs without a line return a zero EinsteinA
// and no error; indices outside the table return ErrLevelOutOfRange.
func (t *Table) Transition(u, l int) (Transition, error) {
	n := len(t.levels)
	if u < 0 || u >= n || l < 0 || l >= n {
		return Transition{}, fmt.Errorf("%w: (%d, %d) with %d levels", ErrLevelOutOfRange, u, l, n)
	}

	return Transition{
		EinsteinA:   t.einsteinA.At(u, l),
		Freq:        t.freq.At(u, l),
		UpperWeight: t.levels[u].Weight,
		LowerTemp:   t.levels[l].Energy,
	}, nil
}

// levelSum is the Boltzmann partition function Σ gᵢ·exp(−Eᵢ/T).
func (t *Table) levelSum(T float64) float64 {
	var z float64
	for _, lv := range t.levels {
		z += lv.Weight * math.Exp(-lv.Energy/T)
	}

	return z
}
