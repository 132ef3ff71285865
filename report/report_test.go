package report_test

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lineprof"
	"github.com/katalvlaran/lineprof/report"
)

func sample() lineprof.LineProfile {
	return lineprof.LineProfile{
		Velocities: []float64{-1e5, 0, 1e5},
		TB:         []float64{0.5, 3.25, -0.125},
		Intensity:  []float64{1e-4, 2e-3, -5e-5},
		Freq:       1e11,
		I0:         2e-11,
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.WriteCSV(&buf, sample()))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, report.CSVHeader, rows[0])
	assert.Equal(t, []string{"-1", "0.5", "0.0001"}, rows[1])
	assert.Equal(t, []string{"0", "3.25", "0.002"}, rows[2])
	assert.Equal(t, []string{"1", "-0.125", "-5e-05"}, rows[3])
}

func TestPlot(t *testing.T) {
	png, err := report.Plot(sample(), "toy")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, []byte("\x89PNG")))

	_, err = report.Plot(lineprof.LineProfile{}, "empty")
	assert.ErrorIs(t, err, report.ErrEmptyProfile)
}

func TestWritePDF(t *testing.T) {
	png, err := report.Plot(sample(), "toy")
	require.NoError(t, err)

	for name, img := range map[string][]byte{"with plot": png, "without plot": nil} {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			err := report.WritePDF(&buf, "toy cloud", []report.Param{{Name: "Radius (cm)", Value: "3e16"}}, sample(), img)
			require.NoError(t, err)
			assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
		})
	}
}
