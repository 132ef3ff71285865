// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lineprof/profile"
)

// Profile kinds accepted in YAML.
const (
	KindConstant = "constant"
	KindPowerLaw = "powerlaw"
	KindLinear   = "linear"
)

// ProfileSpec is the YAML form of a radial profile:
//
//	density: {value: 1e4}                                   # constant
//	density: {kind: powerlaw, edge: 1e3, index: -2, floor: 0.05}
//	velocity: {kind: linear, centre: 0, edge: -2e4}
type ProfileSpec struct {
	Kind   string  `yaml:"kind,omitempty"`
	Value  float64 `yaml:"value,omitempty"`
	Edge   float64 `yaml:"edge,omitempty"`
	Index  float64 `yaml:"index,omitempty"`
	Floor  float64 `yaml:"floor,omitempty"`
	Centre float64 `yaml:"centre,omitempty"`
}

func (s ProfileSpec) kind() string {
	if s.Kind == "" {
		return KindConstant
	}

	return s.Kind
}

func (s ProfileSpec) validate() error {
	switch s.kind() {
	case KindConstant:
		return finite("value", s.Value)
	case KindPowerLaw:
		if s.Index < 0 && !(s.Floor > 0) {
			return fmt.Errorf("powerlaw with index %g needs a positive floor", s.Index)
		}

		return firstErr(finite("edge", s.Edge), finite("index", s.Index))
	case KindLinear:
		return firstErr(finite("centre", s.Centre), finite("edge", s.Edge))
	default:
		return fmt.Errorf("unknown profile kind %q", s.Kind)
	}
}

// Profile converts the spec. Call Validate on the enclosing Config first;
// an unknown kind yields a constant profile.
func (s ProfileSpec) Profile() profile.Profile {
	switch s.kind() {
	case KindPowerLaw:
		return profile.PowerLaw(s.Edge, s.Index, s.Floor)
	case KindLinear:
		return profile.Linear(s.Centre, s.Edge)
	default:
		return profile.Constant(s.Value)
	}
}

func finite(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%s must be finite, got %g", name, v)
	}

	return nil
}

func firstErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}

	return nil
}
