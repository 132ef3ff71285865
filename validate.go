// SPDX-License-Identifier: MIT

package lineprof

import (
	"fmt"
	"math"
)

// validate checks the driver-level parameters. Grid consistency is checked
// by Grid.Resolve, transition and offset by transfer.New.
func (o Options) validate(radius float64) error {
	switch {
	case !(radius > 0) || math.IsInf(radius, 0):
		return fmt.Errorf("%w: radius %g", ErrInvalidParameter, radius)
	case !(o.Background > 0):
		return fmt.Errorf("%w: background temperature %g", ErrInvalidParameter, o.Background)
	case !(o.BeamDispersion >= 0) || math.IsInf(o.BeamDispersion, 0):
		return fmt.Errorf("%w: beam dispersion %g", ErrInvalidParameter, o.BeamDispersion)
	case o.StepBudget < 1:
		return fmt.Errorf("%w: step budget %d", ErrInvalidParameter, o.StepBudget)
	case !(o.AbsTol > 0) || !(o.RelTol > 0):
		return fmt.Errorf("%w: tolerances atol=%g rtol=%g", ErrInvalidParameter, o.AbsTol, o.RelTol)
	case o.Workers < 1:
		return fmt.Errorf("%w: workers %d", ErrInvalidParameter, o.Workers)
	case o.Locator == nil || o.Logger == nil:
		return fmt.Errorf("%w: nil locator or logger", ErrInvalidParameter)
	}

	return nil
}
