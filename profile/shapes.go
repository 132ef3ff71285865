// SPDX-License-Identifier: MIT

package profile

import "math"

// PowerLaw returns edge·max(r, floor)^index. The floor keeps steep inward
// rising laws (index < 0) finite at the centre; floor ≤ 0 disables it.
func PowerLaw(edge, index, floor float64) Profile {
	return Radial(func(r float64) float64 {
		if floor > 0 && r < floor {
			r = floor
		}

		return edge * math.Pow(r, index)
	})
}

// Linear interpolates between the centre value at r = 0 and the edge value
// at r = 1.
func Linear(centre, edge float64) Profile {
	return Radial(func(r float64) float64 {
		return centre + (edge-centre)*r
	})
}
