// SPDX-License-Identifier: MIT

package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/lineprof"
)

// CSVHeader is the first row written by WriteCSV.
var CSVHeader = []string{"velocity_kms", "tb_k", "intensity"}

// cmPerKm is the number of cm in a km.
const cmPerKm = 1e5

// WriteCSV writes one row per sample: velocity in km/s, brightness
// temperature in K and the background-subtracted intensity in units of I0.
func WriteCSV(w io.Writer, p lineprof.LineProfile) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(CSVHeader); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	for i := range p.Velocities {
		row := []string{
			strconv.FormatFloat(p.Velocities[i]/cmPerKm, 'g', -1, 64),
			strconv.FormatFloat(p.TB[i], 'g', -1, 64),
			strconv.FormatFloat(p.Intensity[i], 'g', -1, 64),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write csv row %d: %w", i, err)
		}
	}
	cw.Flush()

	return cw.Error()
}
