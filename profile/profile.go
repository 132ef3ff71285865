// SPDX-License-Identifier: MIT

package profile

import (
	"errors"
	"fmt"
	"math"
)

// ErrNormalization indicates that an edge value cannot serve as a
// normalization constant (zero, NaN or ±Inf).
var ErrNormalization = errors.New("profile: edge value makes normalization undefined")

// Func is a physical quantity as a function of normalized radius.
type Func func(r float64) float64

// Profile is either a constant or a radial function. The zero value is the
// constant 0.
type Profile struct {
	fn    Func
	value float64
}

// Constant returns a uniform profile.
func Constant(v float64) Profile {
	return Profile{value: v}
}

// Radial returns a profile defined by fn on [0, 1].
// Panics on nil: a missing function is a programmer error.
func Radial(fn Func) Profile {
	if fn == nil {
		panic("profile: Radial(nil)")
	}

	return Profile{fn: fn}
}

// IsConstant reports whether p is uniform.
func (p Profile) IsConstant() bool { return p.fn == nil }

// At returns the physical value at normalized radius r.
func (p Profile) At(r float64) float64 {
	if p.fn == nil {
		return p.value
	}

	return p.fn(r)
}

// Edge returns the physical value at the cloud edge, r = 1.
func (p Profile) Edge() float64 { return p.At(1) }

// Kind tags the evaluation rule of a Norm.
type Kind int

const (
	// KindConstant always evaluates to 1.
	KindConstant Kind = iota

	// KindNormalized evaluates fn(r)/scale.
	KindNormalized

	// KindRescaled evaluates fn(x·scale).
	KindRescaled
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindConstant:
		return "constant"
	case KindNormalized:
		return "normalized"
	case KindRescaled:
		return "rescaled"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Norm is an immutable dimensionless view of a profile.
type Norm struct {
	kind  Kind
	fn    Func
	scale float64 // divisor (KindNormalized) or argument multiplier (KindRescaled)
	edge  float64 // physical edge value of the source profile
}

// Kind returns the evaluation rule.
func (n Norm) Kind() Kind { return n.kind }

// Scale returns the normalization constant: the value that, multiplied by
// At(r), gives back the physical quantity (KindConstant, KindNormalized),
// or the argument multiplier (KindRescaled).
func (n Norm) Scale() float64 { return n.scale }

// Edge returns the physical edge value of the source profile.
func (n Norm) Edge() float64 { return n.edge }

// At evaluates the dimensionless profile.
func (n Norm) At(x float64) float64 {
	switch n.kind {
	case KindNormalized:
		return n.fn(x) / n.scale
	case KindRescaled:
		return n.fn(x * n.scale)
	default:
		return 1
	}
}

// Normalize converts p for quantities that must have a usable edge value
// (density, temperature).
//
// Errors: ErrNormalization when the edge value is zero or non-finite.
func Normalize(p Profile) (Norm, error) {
	edge := p.Edge()
	if edge == 0 || math.IsNaN(edge) || math.IsInf(edge, 0) {
		return Norm{}, fmt.Errorf("%w: edge value %g", ErrNormalization, edge)
	}
	if p.IsConstant() {
		return Norm{kind: KindConstant, scale: edge, edge: edge}, nil
	}

	return Norm{kind: KindNormalized, fn: p.fn, scale: edge, edge: edge}, nil
}

// NormalizeSigned converts p for quantities that may legitimately vanish at
// the edge (bulk velocity, non-thermal dispersion). A radial profile with a
// zero edge is kept un-normalized (scale 1).
//
// Errors: ErrNormalization when the edge value is non-finite.
func NormalizeSigned(p Profile) (Norm, error) {
	edge := p.Edge()
	if math.IsNaN(edge) || math.IsInf(edge, 0) {
		return Norm{}, fmt.Errorf("%w: edge value %g", ErrNormalization, edge)
	}
	if p.IsConstant() {
		return Norm{kind: KindConstant, scale: edge, edge: edge}, nil
	}
	if edge == 0 {
		return Norm{kind: KindNormalized, fn: p.fn, scale: 1, edge: 0}, nil
	}

	return Norm{kind: KindNormalized, fn: p.fn, scale: edge, edge: edge}, nil
}

// Rescaled returns the KindRescaled view x ↦ fn(x·scale).
// Panics on nil fn.
func Rescaled(fn Func, scale float64) Norm {
	if fn == nil {
		panic("profile: Rescaled(nil)")
	}

	return Norm{kind: KindRescaled, fn: fn, scale: scale, edge: fn(scale)}
}

// PartitionAdapter wraps a partition function of physical temperature so
// it can be queried with a temperature normalized to T0.
func PartitionAdapter(z func(T float64) float64, T0 float64) Norm {
	return Rescaled(Func(z), T0)
}
