// SPDX-License-Identifier: MIT

package lineprof

import (
	"errors"
	"runtime"

	"go.uber.org/zap"

	"github.com/katalvlaran/lineprof/ode"
	"github.com/katalvlaran/lineprof/profile"
	"github.com/katalvlaran/lineprof/resonance"
	"github.com/katalvlaran/lineprof/sightline"
	"github.com/katalvlaran/lineprof/transfer"
)

// ErrInvalidParameter indicates a driver-level argument outside its domain
// (radius, background, grid, beam, budget, tolerances, workers).
var ErrInvalidParameter = errors.New("lineprof: invalid parameter")

// Errors raised by the packages Compute delegates to, re-exported so that
// callers only need this package to classify failures.
var (
	ErrNoTransition             = transfer.ErrNoTransition
	ErrInvalidOffset            = transfer.ErrInvalidOffset
	ErrUnsupportedConfiguration = transfer.ErrUnsupportedConfiguration
	ErrNormalization            = profile.ErrNormalization
	ErrIntegrationDiverged      = sightline.ErrIntegrationDiverged
)

// DefaultCount is the number of grid points when WithCount is not given.
const DefaultCount = 100

// Options configures Compute. Use the With* helpers rather than filling it
// directly.
type Options struct {
	Velocity   profile.Profile // bulk radial velocity, cm/s; default 0
	Dispersion profile.Profile // non-thermal dispersion, cm/s; default 0
	Offset     float64         // impact parameter in cloud radii
	Background float64         // background temperature, K

	Grid Grid

	BeamDispersion float64 // Gaussian beam dispersion in cloud radii; 0 = pencil
	StepBudget     int     // integrator steps per segment
	AbsTol, RelTol float64 // integrator tolerances

	Locator           resonance.Locator // resonance search
	ResonanceFallback bool              // retry inconsistent searches with a grid scan

	Workers int         // concurrent velocity samples
	Logger  *zap.Logger // never nil after DefaultOptions
}

// Option is a functional option for Compute.
type Option func(*Options)

// DefaultOptions returns the documented defaults: static cloud, pencil beam
// through the centre, 2.73 K background, automatic grid of DefaultCount
// points, 10 000 steps per segment, tolerances 1e-11, Nelder–Mead search,
// GOMAXPROCS workers and a no-op logger.
func DefaultOptions() Options {
	return Options{
		Velocity:   profile.Constant(0),
		Dispersion: profile.Constant(0),
		Background: sightline.DefaultBackground,
		Grid:       Grid{Count: DefaultCount},
		StepBudget: ode.DefaultMaxSteps,
		AbsTol:     ode.DefaultAbsTol,
		RelTol:     ode.DefaultRelTol,
		Locator:    resonance.NelderMead{},
		Workers:    runtime.GOMAXPROCS(0),
		Logger:     zap.NewNop(),
	}
}

// WithVelocity sets the bulk radial velocity profile (cm/s, positive
// outwards).
func WithVelocity(p profile.Profile) Option {
	return func(o *Options) { o.Velocity = p }
}

// WithDispersion sets the non-thermal velocity dispersion profile (cm/s).
func WithDispersion(p profile.Profile) Option {
	return func(o *Options) { o.Dispersion = p }
}

// WithOffset sets the impact parameter of the sightline in cloud radii.
// Values outside [0, 1] make Compute return ErrInvalidOffset.
func WithOffset(offset float64) Option {
	return func(o *Options) { o.Offset = offset }
}

// WithBackground sets the background radiation temperature in K.
func WithBackground(tbg float64) Option {
	return func(o *Options) { o.Background = tbg }
}

// WithVelocities computes the profile at exactly these velocities (cm/s).
// It takes precedence over every other grid option.
func WithVelocities(vs ...float64) Option {
	cp := append([]float64{}, vs...)

	return func(o *Options) { o.Grid.Velocities = cp }
}

// WithVelocityLimits spans [vmin, vmax] (cm/s) with Count points.
func WithVelocityLimits(vmin, vmax float64) Option {
	return func(o *Options) {
		o.Grid.Limits = [2]float64{vmin, vmax}
		o.Grid.HasLimits = true
	}
}

// WithSpacing places points dv apart, centred on zero.
func WithSpacing(dv float64) Option {
	return func(o *Options) {
		o.Grid.Spacing = dv
		o.Grid.HasSpacing = true
	}
}

// WithCount sets the number of grid points.
func WithCount(n int) Option {
	return func(o *Options) { o.Grid.Count = n }
}

// WithBeamDispersion averages over a Gaussian beam of dispersion bd (cloud
// radii). Only valid with a zero offset.
func WithBeamDispersion(bd float64) Option {
	return func(o *Options) { o.BeamDispersion = bd }
}

// WithStepBudget sets the integrator step budget per segment.
func WithStepBudget(n int) Option {
	return func(o *Options) { o.StepBudget = n }
}

// WithTolerances sets the absolute and relative integrator tolerances.
func WithTolerances(atol, rtol float64) Option {
	return func(o *Options) { o.AbsTol, o.RelTol = atol, rtol }
}

// WithLocator replaces the resonance search.
// Panics if l is nil.
func WithLocator(l resonance.Locator) Option {
	if l == nil {
		panic("lineprof: WithLocator(nil)")
	}

	return func(o *Options) { o.Locator = l }
}

// WithResonanceFallback re-runs the resonance search as a grid scan
// whenever the primary search returns an inconsistent point.
func WithResonanceFallback(enabled bool) Option {
	return func(o *Options) { o.ResonanceFallback = enabled }
}

// WithWorkers bounds the number of velocities computed concurrently.
func WithWorkers(n int) Option {
	return func(o *Options) { o.Workers = n }
}

// WithLogger sets the logger. Panics if l is nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("lineprof: WithLogger(nil)")
	}

	return func(o *Options) { o.Logger = l }
}

// LineProfile is the result of Compute. The three slices are parallel.
type LineProfile struct {
	Velocities []float64 // cm/s
	TB         []float64 // brightness temperature, K; negative for masers
	Intensity  []float64 // background-subtracted intensity in units of I0

	Freq float64 // line-centre frequency, Hz
	I0   float64 // intensity unit, erg cm⁻² s⁻¹ Hz⁻¹ sr⁻¹
}

// Len returns the number of samples.
func (p LineProfile) Len() int { return len(p.Velocities) }

// Peak returns the velocity and value of the largest brightness
// temperature, or (0, 0) for an empty profile.
func (p LineProfile) Peak() (v, tb float64) {
	for i, t := range p.TB {
		if i == 0 || t > tb {
			v, tb = p.Velocities[i], t
		}
	}

	return v, tb
}
