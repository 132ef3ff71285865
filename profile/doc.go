// SPDX-License-Identifier: MIT

// Package profile models the radial structure of a spherical cloud.
//
// A Profile is a physical quantity (density, temperature, bulk velocity,
// non-thermal dispersion) given either as a constant or as a function of the
// normalized radius r ∈ [0, 1] (0 = centre, 1 = edge), in cgs units.
//
// The transfer equation works in dimensionless form, so every Profile is
// converted once into a Norm: a small closed set of tagged variants
// evaluated through the single method Norm.At.
//
//	KindConstant   At(r) = 1                    (uniform quantity)
//	KindNormalized At(r) = fn(r) / scale        (scale = fn(1), the edge value)
//	KindRescaled   At(x) = fn(x · scale)        (un-normalize the argument)
//
// KindRescaled is used for the partition function, which the dimensionless
// equation queries with a normalized temperature but which is defined on
// physical temperature (see PartitionAdapter).
//
// Normalization rules:
//   - Normalize (density, temperature): the edge value must be finite and
//     non-zero, otherwise ErrNormalization.
//   - NormalizeSigned (velocity, dispersion): a zero edge value is legal; the
//     function is then kept un-normalized with scale 1 so that the product
//     scale·At(r) still reproduces the physical profile.
package profile
