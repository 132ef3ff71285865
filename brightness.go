// SPDX-License-Identifier: MIT

package lineprof

import (
	"math"

	"github.com/katalvlaran/lineprof/physconst"
)

// BrightnessTemperature converts an intensity I, in units of i0, to the
// brightness temperature of a blackbody at frequency freq:
//
//	TB = (h·ν/kB) / ln(1 + 2h·ν³/(c²·|I|·i0 + ε))
//
// TB is negative when I is (a maser) and exactly zero when I is zero.
func BrightnessTemperature(I, freq, i0 float64) float64 {
	if I == 0 {
		return 0
	}
	num := physconst.H * freq / physconst.KB
	x := 2 * physconst.H * freq * freq * freq / (physconst.C*physconst.C*math.Abs(I)*i0 + physconst.Small)
	tb := num / math.Log1p(x)
	if I < 0 {
		return -tb
	}

	return tb
}
