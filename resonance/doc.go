// SPDX-License-Identifier: MIT

// Package resonance locates the point of strongest line interaction along a
// sightline.
//
// For a target frequency the transfer equation's right-hand side is sharply
// peaked where the Doppler-shifted line centre of the gas coincides with the
// observed frequency. The sightline integrator places its breakpoints around
// that point, so it only needs a good local estimate, not a certified global
// optimum.
//
// A Locator minimizes a scalar objective starting from x0. Three
// implementations are provided:
//
//	– NelderMead: derivative-free simplex search (gonum/optimize), tolerance
//	  1e-5 in x and a budget of 200 iterations. When the budget runs out the
//	  best vertex found so far is returned without error.
//	– GridScan:   coarse scan over a fixed interval followed by nested
//	  refinement around the best sample. Slow, but immune to the local
//	  trapping a simplex search suffers on multi-peaked objectives.
//	– Fallback:   runs Primary and consults Secondary only when Primary's
//	  answer is inconsistent (non-finite, or no better than the start).
//
// Searches are unconstrained: the returned point may lie outside [−1, 1] and
// callers interpret its magnitude themselves.
package resonance
