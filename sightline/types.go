// SPDX-License-Identifier: MIT

package sightline

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lineprof/ode"
	"github.com/katalvlaran/lineprof/resonance"
)

// Sentinel errors.
var (
	// ErrIntegrationDiverged indicates that a segment did not reach its end
	// point. The ode cause (ode.ErrStepBudget, ode.ErrStepUnderflow,
	// ode.ErrNonFinite) is wrapped alongside it.
	ErrIntegrationDiverged = errors.New("sightline: integration diverged")

	// ErrNilContext indicates a nil *transfer.Context.
	ErrNilContext = errors.New("sightline: nil transfer context")

	// ErrInvalidOptions indicates a non-positive background temperature,
	// tolerance or step budget.
	ErrInvalidOptions = errors.New("sightline: invalid options")
)

// DefaultBackground is the cosmic microwave background temperature, K.
const DefaultBackground = 2.73

// Branch identifies the integration plan chosen for a sample.
type Branch int

const (
	// Exterior integrates one linear segment across the chord.
	Exterior Branch = iota

	// Interior integrates nine segments around the resonance.
	Interior
)

// String implements fmt.Stringer.
func (b Branch) String() string {
	switch b {
	case Exterior:
		return "exterior"
	case Interior:
		return "interior"
	default:
		return fmt.Sprintf("Branch(%d)", int(b))
	}
}

// Options configures an Integrator.
type Options struct {
	Background float64           // background radiation temperature, K
	ODE        ode.Options       // per-segment tolerances and step budget
	Locator    resonance.Locator // nil selects resonance.NelderMead{}
}

// DefaultOptions returns a 2.73 K background, ode.DefaultOptions and the
// Nelder–Mead locator.
func DefaultOptions() Options {
	return Options{
		Background: DefaultBackground,
		ODE:        ode.DefaultOptions(),
		Locator:    resonance.NelderMead{},
	}
}

// Sample is the result of one sightline integration.
type Sample struct {
	Velocity   float64   // cm/s
	Intensity  float64   // emergent normalized intensity minus Background
	Background float64   // normalized background intensity ICMB
	Resonance  float64   // |x*| reported by the locator
	Branch     Branch    // integration plan used
	Stats      ode.Stats // effort summed over all segments
}

func (o Options) validate() error {
	if !(o.Background > 0) {
		return fmt.Errorf("%w: background temperature %g", ErrInvalidOptions, o.Background)
	}
	if !(o.ODE.AbsTol > 0) || !(o.ODE.RelTol > 0) {
		return fmt.Errorf("%w: tolerances atol=%g rtol=%g", ErrInvalidOptions, o.ODE.AbsTol, o.ODE.RelTol)
	}
	if o.ODE.MaxSteps < 1 {
		return fmt.Errorf("%w: step budget %d", ErrInvalidOptions, o.ODE.MaxSteps)
	}

	return nil
}
