// SPDX-License-Identifier: MIT

package lineprof

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// GridMode names the rule a Grid resolves with.
type GridMode int

const (
	GridAuto     GridMode = iota // ±(5σtot + |v0|), Count points
	GridExplicit                 // Velocities as given
	GridLimits                   // [Limits[0], Limits[1]], Count points
	GridSpacing                  // Spacing·(i − Count/2), i = 0..Count
)

// String implements fmt.Stringer.
func (m GridMode) String() string {
	switch m {
	case GridAuto:
		return "auto"
	case GridExplicit:
		return "explicit"
	case GridLimits:
		return "limits"
	case GridSpacing:
		return "spacing"
	default:
		return fmt.Sprintf("GridMode(%d)", int(m))
	}
}

// Grid describes the output velocities. When several rules are set the
// first of Velocities, Limits, Spacing wins.
type Grid struct {
	Velocities []float64  // explicit velocities, cm/s; nil = unset
	Limits     [2]float64 // vmin, vmax, cm/s
	HasLimits  bool
	Spacing    float64 // cm/s
	HasSpacing bool
	Count      int
}

// Mode reports which rule Resolve applies.
func (g Grid) Mode() GridMode {
	switch {
	case g.Velocities != nil:
		return GridExplicit
	case g.HasLimits:
		return GridLimits
	case g.HasSpacing:
		return GridSpacing
	default:
		return GridAuto
	}
}

// Resolve returns the velocities. sigmaTot and v0 (cm/s) bound the
// automatic grid.
//
// Errors: ErrInvalidParameter for an empty explicit list, Count < 2 with
// limits, spacing or auto mode, vmin ≥ vmax, or a non-positive spacing.
func (g Grid) Resolve(sigmaTot, v0 float64) ([]float64, error) {
	mode := g.Mode()
	if mode == GridExplicit {
		if len(g.Velocities) == 0 {
			return nil, fmt.Errorf("%w: empty velocity list", ErrInvalidParameter)
		}
		for _, v := range g.Velocities {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("%w: velocity %g", ErrInvalidParameter, v)
			}
		}

		return append([]float64(nil), g.Velocities...), nil
	}
	if g.Count < 2 {
		return nil, fmt.Errorf("%w: count %d < 2", ErrInvalidParameter, g.Count)
	}

	switch mode {
	case GridSpacing:
		if !(g.Spacing > 0) || math.IsInf(g.Spacing, 0) {
			return nil, fmt.Errorf("%w: spacing %g", ErrInvalidParameter, g.Spacing)
		}
		vs := make([]float64, g.Count+1)
		half := float64(g.Count) / 2
		for i := range vs {
			vs[i] = g.Spacing * (float64(i) - half)
		}

		return vs, nil

	case GridLimits:
		lo, hi := g.Limits[0], g.Limits[1]
		if !(lo < hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) {
			return nil, fmt.Errorf("%w: limits [%g, %g]", ErrInvalidParameter, lo, hi)
		}

		return floats.Span(make([]float64, g.Count), lo, hi), nil

	default:
		w := 5*sigmaTot + math.Abs(v0)

		return floats.Span(make([]float64, g.Count), -w, w), nil
	}
}
