// SPDX-License-Identifier: MIT

package resonance

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/optimize"
)

// ErrNilObjective is returned when Locate is called without an objective.
var ErrNilObjective = errors.New("resonance: nil objective")

// Default search parameters.
const (
	DefaultXTol    = 1e-5
	DefaultMaxIter = 200

	// stallIterations is the number of consecutive simplex iterations whose
	// best vertex moves by at most XTol before the search is declared
	// converged. Each stalled iteration at least halves a 1-D simplex.
	stallIterations = 20
)

// Locator finds a local minimizer of obj near x0.
type Locator interface {
	Locate(obj func(x float64) float64, x0 float64) (float64, error)
}

// NelderMead is a Locator backed by gonum's Nelder–Mead simplex method.
// The zero value uses DefaultXTol and DefaultMaxIter.
type NelderMead struct {
	XTol    float64 // convergence tolerance in x
	MaxIter int     // iteration and evaluation budget
}

// Locate runs the simplex search from x0. The initial simplex spans 5 % of
// |x0| (2.5e-4 when x0 = 0). Exhausting the budget is not an error: the best
// point found is returned.
func (nm NelderMead) Locate(obj func(x float64) float64, x0 float64) (float64, error) {
	if obj == nil {
		return math.NaN(), ErrNilObjective
	}
	xtol, maxIter := nm.XTol, nm.MaxIter
	if xtol <= 0 {
		xtol = DefaultXTol
	}
	if maxIter <= 0 {
		maxIter = DefaultMaxIter
	}

	size := 0.05 * math.Abs(x0)
	if size == 0 {
		size = 2.5e-4
	}

	p := optimize.Problem{
		Func: func(x []float64) float64 { return obj(x[0]) },
	}
	settings := &optimize.Settings{
		MajorIterations: maxIter,
		FuncEvaluations: maxIter,
		Converger:       &stallConverger{tol: xtol, limit: stallIterations},
	}

	res, _ := optimize.Minimize(p, []float64{x0}, settings, &optimize.NelderMead{SimplexSize: size})
	if res == nil || len(res.X) == 0 {
		return x0, nil
	}

	return res.X[0], nil
}

// stallConverger reports StepConvergence once the best location has moved
// by at most tol for limit consecutive major iterations.
type stallConverger struct {
	tol   float64
	limit int

	prev  float64
	count int
	seen  bool
}

func (c *stallConverger) Init(int) {
	c.count, c.seen = 0, false
}

func (c *stallConverger) Converged(loc *optimize.Location) optimize.Status {
	x := loc.X[0]
	if c.seen && math.Abs(x-c.prev) <= c.tol {
		c.count++
	} else {
		c.count = 0
	}
	c.prev, c.seen = x, true

	if c.count >= c.limit {
		return optimize.StepConvergence
	}

	return optimize.NotTerminated
}

// GridScan samples obj on Points evenly spaced abscissae in [Lo, Hi], then
// repeatedly resamples the two cells around the best sample until the cell
// width drops below XTol. x0 is ignored.
type GridScan struct {
	Lo, Hi float64
	Points int
	XTol   float64
}

// DefaultGridScan covers [0, 1.5] at a spacing of 0.01.
func DefaultGridScan() GridScan {
	return GridScan{Lo: 0, Hi: 1.5, Points: 151, XTol: DefaultXTol}
}

// refinePoints is the sample count of each refinement pass.
const refinePoints = 11

// Locate implements Locator.
func (g GridScan) Locate(obj func(x float64) float64, _ float64) (float64, error) {
	if obj == nil {
		return math.NaN(), ErrNilObjective
	}
	n := g.Points
	if n < 3 {
		n = 3
	}
	xtol := g.XTol
	if xtol <= 0 {
		xtol = DefaultXTol
	}

	lo, hi := g.Lo, g.Hi
	best, _ := scan(obj, lo, hi, n)
	step := (hi - lo) / float64(n-1)
	for step > xtol {
		lo, hi = best-step, best+step
		best, _ = scan(obj, lo, hi, refinePoints)
		step = (hi - lo) / float64(refinePoints-1)
	}

	return best, nil
}

// scan returns the sample of [lo, hi] with the smallest objective. NaN
// samples never win.
func scan(obj func(float64) float64, lo, hi float64, n int) (float64, float64) {
	bestX, bestF := lo, math.Inf(1)
	h := (hi - lo) / float64(n-1)
	for i := 0; i < n; i++ {
		x := lo + float64(i)*h
		if f := obj(x); f < bestF {
			bestX, bestF = x, f
		}
	}

	return bestX, bestF
}

// Fallback consults Secondary when Primary fails or returns a point that is
// non-finite or whose objective is not below obj(x0).
type Fallback struct {
	Primary   Locator
	Secondary Locator
}

// Locate implements Locator.
func (fb Fallback) Locate(obj func(x float64) float64, x0 float64) (float64, error) {
	if obj == nil {
		return math.NaN(), ErrNilObjective
	}
	x, err := fb.Primary.Locate(obj, x0)
	if err == nil && consistent(obj, x, x0) {
		return x, nil
	}

	return fb.Secondary.Locate(obj, x0)
}

func consistent(obj func(float64) float64, x, x0 float64) bool {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return false
	}
	fx := obj(x)

	return !math.IsNaN(fx) && fx < obj(x0)
}
