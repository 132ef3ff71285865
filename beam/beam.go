// SPDX-License-Identifier: MIT

// Package beam averages pencil-beam intensities over a circular Gaussian
// beam centred on the cloud.
//
// For a beam of dispersion βd (in cloud radii) the observed intensity is
//
//	I(v) = ∫₀¹ (r/βd²)·exp(−r²/(2βd²))·Ipencil(v, r) dr
//
// where r is the impact parameter of the pencil. The integral is evaluated
// by adaptive bisection: on every interval a 5-point and a 10-point
// Gauss–Legendre rule (gonum/integrate/quad) are compared, and intervals
// whose estimates disagree by more than their share of RelTol are split
// until MaxDepth is reached. [0, 1] is first cut at multiples of βd so a
// narrow beam is never stepped over.
package beam

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/integrate/quad"
)

// Sentinel errors.
var (
	// ErrInvalidDispersion indicates a beam dispersion that is not positive.
	ErrInvalidDispersion = errors.New("beam: dispersion must be positive")

	// ErrNilPencil indicates a nil pencil function.
	ErrNilPencil = errors.New("beam: nil pencil function")
)

// Options controls the adaptive quadrature.
type Options struct {
	RelTol   float64 // relative tolerance on the integral
	MaxDepth int     // maximum bisection depth per initial interval
}

// DefaultOptions returns RelTol 1e-8 and MaxDepth 12.
func DefaultOptions() Options {
	return Options{RelTol: 1e-8, MaxDepth: 12}
}

// Result reports the integral and the effort spent on it.
type Result struct {
	Value     float64
	Pencils   int  // evaluations of the pencil function
	Intervals int  // accepted intervals
	Converged bool // false when MaxDepth capped at least one interval
}

// Pencil returns the emergent intensity of a pencil beam at impact
// parameter r ∈ [0, 1].
type Pencil func(r float64) (float64, error)

// Rule sizes.
const (
	coarsePoints = 5
	finePoints   = 10

	// initialCuts is the number of βd-wide cells placed before the first
	// adaptive pass.
	initialCuts = 8
)

// Weight is the normalized Gaussian beam weight (r/βd²)·exp(−r²/(2βd²)).
func Weight(r, dispersion float64) float64 {
	s2 := dispersion * dispersion

	return r / s2 * math.Exp(-r*r/(2*s2))
}

// Integrate evaluates the beam-averaged intensity. The first error returned
// by pencil aborts the integration and is returned unchanged. pencil is
// called sequentially from the calling goroutine.
//
// Errors: ErrInvalidDispersion, ErrNilPencil, or the pencil's error.
func Integrate(pencil Pencil, dispersion float64, opts Options) (Result, error) {
	if pencil == nil {
		return Result{}, ErrNilPencil
	}
	if !(dispersion > 0) || math.IsInf(dispersion, 0) {
		return Result{}, ErrInvalidDispersion
	}
	if !(opts.RelTol > 0) {
		opts.RelTol = DefaultOptions().RelTol
	}
	if opts.MaxDepth < 1 {
		opts.MaxDepth = DefaultOptions().MaxDepth
	}

	q := &adaptive{pencil: pencil, dispersion: dispersion, opts: opts, res: Result{Converged: true}}

	cuts := []float64{0}
	for i := 1; i <= initialCuts && float64(i)*dispersion < 1; i++ {
		cuts = append(cuts, float64(i)*dispersion)
	}
	cuts = append(cuts, 1)

	type cell struct{ a, b, coarse, fine float64 }
	cells := make([]cell, 0, len(cuts)-1)
	var total float64
	for i := 0; i+1 < len(cuts); i++ {
		c, f := q.pair(cuts[i], cuts[i+1])
		if q.err != nil {
			return q.res, q.err
		}
		cells = append(cells, cell{cuts[i], cuts[i+1], c, f})
		total += f
	}
	q.tol = opts.RelTol * math.Abs(total)

	var sum float64
	for _, c := range cells {
		sum += q.refine(c.a, c.b, c.coarse, c.fine, 0)
		if q.err != nil {
			return q.res, q.err
		}
	}
	q.res.Value = sum

	return q.res, nil
}

type adaptive struct {
	pencil     Pencil
	dispersion float64
	opts       Options
	tol        float64

	res Result
	err error
}

func (q *adaptive) integrand(r float64) float64 {
	if q.err != nil {
		return 0
	}
	q.res.Pencils++
	I, err := q.pencil(r)
	if err != nil {
		q.err = err

		return 0
	}

	return Weight(r, q.dispersion) * I
}

// pair returns the coarse and fine estimates on [a, b].
func (q *adaptive) pair(a, b float64) (coarse, fine float64) {
	coarse = quad.Fixed(q.integrand, a, b, coarsePoints, quad.Legendre{}, 1)
	fine = quad.Fixed(q.integrand, a, b, finePoints, quad.Legendre{}, 1)

	return coarse, fine
}

func (q *adaptive) refine(a, b, coarse, fine float64, depth int) float64 {
	if q.err != nil {
		return 0
	}
	if math.Abs(fine-coarse) <= q.tol*(b-a) {
		q.res.Intervals++

		return fine
	}
	if depth >= q.opts.MaxDepth {
		q.res.Intervals++
		q.res.Converged = false

		return fine
	}

	m := 0.5 * (a + b)
	lc, lf := q.pair(a, m)
	rc, rf := q.pair(m, b)

	return q.refine(a, m, lc, lf, depth+1) + q.refine(m, b, rc, rf, depth+1)
}
