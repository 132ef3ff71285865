package lineprof_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lineprof"
)

func TestGrid_Resolve(t *testing.T) {
	cases := []struct {
		name string
		grid lineprof.Grid
		mode lineprof.GridMode
		want []float64
	}{
		{
			name: "auto",
			grid: lineprof.Grid{Count: 5},
			mode: lineprof.GridAuto,
			want: []float64{-12, -6, 0, 6, 12}, // 5·2 + |−2|
		},
		{
			name: "limits",
			grid: lineprof.Grid{Limits: [2]float64{-1, 3}, HasLimits: true, Count: 5},
			mode: lineprof.GridLimits,
			want: []float64{-1, 0, 1, 2, 3},
		},
		{
			name: "spacing has count+1 points",
			grid: lineprof.Grid{Spacing: 0.5, HasSpacing: true, Count: 4},
			mode: lineprof.GridSpacing,
			want: []float64{-1, -0.5, 0, 0.5, 1},
		},
		{
			name: "explicit wins",
			grid: lineprof.Grid{
				Velocities: []float64{7, 8},
				Limits:     [2]float64{-1, 3}, HasLimits: true,
				Spacing: 0.5, HasSpacing: true,
				Count: 4,
			},
			mode: lineprof.GridExplicit,
			want: []float64{7, 8},
		},
		{
			name: "limits beat spacing",
			grid: lineprof.Grid{Limits: [2]float64{0, 1}, HasLimits: true, Spacing: 0.5, HasSpacing: true, Count: 3},
			mode: lineprof.GridLimits,
			want: []float64{0, 0.5, 1},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.mode, tc.grid.Mode())
			got, err := tc.grid.Resolve(2, -2)
			require.NoError(t, err)
			assert.InDeltaSlice(t, tc.want, got, 1e-12)
		})
	}
}

func TestGrid_ResolveCopiesExplicit(t *testing.T) {
	vs := []float64{1, 2}
	g := lineprof.Grid{Velocities: vs}
	got, err := g.Resolve(0, 0)
	require.NoError(t, err)
	got[0] = 99
	assert.Equal(t, 1.0, vs[0])
}

func TestGrid_ResolveErrors(t *testing.T) {
	for name, g := range map[string]lineprof.Grid{
		"empty explicit": {Velocities: []float64{}},
		"count":          {Count: 1},
		"spacing":        {Spacing: 0, HasSpacing: true, Count: 10},
		"limits":         {Limits: [2]float64{1, 1}, HasLimits: true, Count: 10},
	} {
		_, err := g.Resolve(1, 0)
		assert.ErrorIs(t, err, lineprof.ErrInvalidParameter, name)
	}
}

func TestGridMode_String(t *testing.T) {
	assert.Equal(t, "auto", lineprof.GridAuto.String())
	assert.Equal(t, "explicit", lineprof.GridExplicit.String())
	assert.Equal(t, "limits", lineprof.GridLimits.String())
	assert.Equal(t, "spacing", lineprof.GridSpacing.String())
	assert.Equal(t, "GridMode(9)", lineprof.GridMode(9).String())
}
