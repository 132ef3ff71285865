// SPDX-License-Identifier: MIT

package transfer

import (
	"errors"

	"github.com/katalvlaran/lineprof/profile"
)

// Sentinel errors returned by New and WithOffset.
var (
	// ErrNoTransition indicates that the emitter has EinsteinA = 0 for the
	// requested (upper, lower) pair.
	ErrNoTransition = errors.New("transfer: no radiative transition between the requested states")

	// ErrInvalidOffset indicates an impact parameter outside [0, 1].
	ErrInvalidOffset = errors.New("transfer: offset must be in the range [0, 1]")

	// ErrUnsupportedConfiguration indicates a Gaussian beam combined with a
	// non-zero offset.
	ErrUnsupportedConfiguration = errors.New("transfer: offset > 0 with a Gaussian beam is not supported")
)

// Profiles groups the four radial structure functions of the cloud.
// Zero values mean "constant 0", which is legal for Velocity and Dispersion
// only.
type Profiles struct {
	Density     profile.Profile // emitter number density, cm⁻³
	Temperature profile.Profile // gas temperature, K
	Velocity    profile.Profile // bulk radial velocity, cm/s
	Dispersion  profile.Profile // non-thermal velocity dispersion, cm/s
}

// Geometry fixes the cloud size and the observing configuration.
type Geometry struct {
	Radius         float64 // cloud radius, cm
	Offset         float64 // impact parameter in units of the radius, [0, 1]
	BeamDispersion float64 // Gaussian beam dispersion in units of the radius; 0 = pencil beam
}
