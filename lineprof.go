// SPDX-License-Identifier: MIT

package lineprof

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lineprof/beam"
	"github.com/katalvlaran/lineprof/emitter"
	"github.com/katalvlaran/lineprof/ode"
	"github.com/katalvlaran/lineprof/profile"
	"github.com/katalvlaran/lineprof/resonance"
	"github.com/katalvlaran/lineprof/sightline"
	"github.com/katalvlaran/lineprof/transfer"
)

// Compute returns the brightness-temperature profile of transition u → l of
// em in a cloud of radius R (cm) with the given density (cm⁻³) and
// temperature (K) profiles.
//
// Steps:
//  1. Validate driver parameters (ErrInvalidParameter).
//  2. Build the transfer context: emitter errors, ErrNoTransition,
//     ErrInvalidOffset, ErrUnsupportedConfiguration, ErrNormalization.
//  3. Resolve the velocity grid.
//  4. Integrate every velocity, at most Workers at a time. The first
//     failure (ErrIntegrationDiverged, or ctx's error) cancels the
//     remaining samples and is returned; no partial profile is reported.
//  5. Convert intensities to brightness temperatures.
func Compute(ctx context.Context, em emitter.Data, u, l int, R float64,
	density, temperature profile.Profile, opts ...Option) (LineProfile, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.validate(R); err != nil {
		return LineProfile{}, err
	}

	tc, err := transfer.New(em, u, l,
		transfer.Profiles{
			Density:     density,
			Temperature: temperature,
			Velocity:    o.Velocity,
			Dispersion:  o.Dispersion,
		},
		transfer.Geometry{Radius: R, Offset: o.Offset, BeamDispersion: o.BeamDispersion},
	)
	if err != nil {
		return LineProfile{}, err
	}

	vs, err := o.Grid.Resolve(tc.SigmaTot, tc.V0)
	if err != nil {
		return LineProfile{}, err
	}

	it, err := sightline.New(tc, sightline.Options{
		Background: o.Background,
		ODE:        ode.Options{AbsTol: o.AbsTol, RelTol: o.RelTol, MaxSteps: o.StepBudget},
		Locator:    o.locator(),
	})
	if err != nil {
		return LineProfile{}, err
	}

	log := o.Logger.With(zap.Int("upper", u), zap.Int("lower", l))
	log.Info("computing line profile",
		zap.Float64("freq_hz", tc.Freq),
		zap.Float64("tau0", tc.Tau0),
		zap.Float64("sigma_tot", tc.SigmaTot),
		zap.Stringer("grid", o.Grid.Mode()),
		zap.Int("velocities", len(vs)),
		zap.Float64("beam", o.BeamDispersion),
		zap.Int("workers", o.Workers),
	)
	start := time.Now()

	intensity := make([]float64, len(vs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.Workers)
	for i, v := range vs {
		i, v := i, v
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			I, err := o.sample(it, v, log)
			if err != nil {
				return err
			}
			intensity[i] = I

			return nil
		})
	}
	if err = g.Wait(); err != nil {
		log.Error("line profile failed", zap.Error(err))

		return LineProfile{}, err
	}

	out := LineProfile{
		Velocities: vs,
		TB:         make([]float64, len(vs)),
		Intensity:  intensity,
		Freq:       tc.Freq,
		I0:         tc.I0,
	}
	for i, I := range intensity {
		out.TB[i] = BrightnessTemperature(I, tc.Freq, tc.I0)
	}
	peakV, peakTB := out.Peak()
	log.Info("line profile done",
		zap.Duration("elapsed", time.Since(start)),
		zap.Float64("peak_velocity", peakV),
		zap.Float64("peak_tb", peakTB),
	)

	return out, nil
}

func (o Options) locator() resonance.Locator {
	if o.ResonanceFallback {
		return resonance.Fallback{Primary: o.Locator, Secondary: resonance.DefaultGridScan()}
	}

	return o.Locator
}

// sample returns the background-subtracted intensity at velocity v.
func (o Options) sample(it *sightline.Integrator, v float64, log *zap.Logger) (float64, error) {
	if o.BeamDispersion == 0 {
		s, err := it.Intensity(v)
		if err != nil {
			return 0, err
		}
		log.Debug("sample",
			zap.Float64("velocity", v),
			zap.Float64("intensity", s.Intensity),
			zap.Float64("resonance", s.Resonance),
			zap.Stringer("branch", s.Branch),
			zap.Int("steps", s.Stats.Steps),
			zap.Int("rejected", s.Stats.Rejected),
		)

		return s.Intensity, nil
	}

	res, err := beam.Integrate(func(r float64) (float64, error) {
		pencil, err := it.WithOffset(r)
		if err != nil {
			return 0, err
		}
		s, err := pencil.Intensity(v)

		return s.Intensity, err
	}, o.BeamDispersion, beam.DefaultOptions())
	if err != nil {
		return 0, err
	}
	if !res.Converged {
		log.Warn("beam quadrature hit its depth limit", zap.Float64("velocity", v))
	}
	log.Debug("beam sample",
		zap.Float64("velocity", v),
		zap.Float64("intensity", res.Value),
		zap.Int("pencils", res.Pencils),
		zap.Int("intervals", res.Intervals),
	)

	return res.Value, nil
}
