// SPDX-License-Identifier: MIT

package report

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/lineprof"
)

// ErrEmptyProfile is returned when there is nothing to draw.
var ErrEmptyProfile = errors.New("report: empty line profile")

// Plot size.
var (
	PlotWidth  = vg.Points(800)
	PlotHeight = vg.Points(400)
)

var lineColor = color.RGBA{B: 200, A: 255}

// Plot renders TB against velocity (km/s) as a PNG image.
func Plot(p lineprof.LineProfile, title string) ([]byte, error) {
	if p.Len() == 0 {
		return nil, ErrEmptyProfile
	}

	pl := plot.New()
	pl.Title.Text = title
	pl.X.Label.Text = "Velocity (km/s)"
	pl.Y.Label.Text = "T_B (K)"
	pl.Add(plotter.NewGrid())

	pts := make(plotter.XYs, p.Len())
	for i := range pts {
		pts[i] = plotter.XY{X: p.Velocities[i] / cmPerKm, Y: p.TB[i]}
	}

	line, points, err := plotter.NewLinePoints(pts)
	if err != nil {
		return nil, fmt.Errorf("failed to create profile line: %w", err)
	}
	line.Color = lineColor
	line.LineStyle.Width = vg.Points(1.5)
	points.Color = lineColor
	points.Radius = vg.Points(1.5)
	pl.Add(line, points)

	// Zero line, so masers read as negative at a glance.
	zero, err := plotter.NewLine(plotter.XYs{{X: pts[0].X, Y: 0}, {X: pts[len(pts)-1].X, Y: 0}})
	if err != nil {
		return nil, fmt.Errorf("failed to create zero line: %w", err)
	}
	zero.LineStyle.Dashes = []vg.Length{vg.Points(2), vg.Points(2)}
	pl.Add(zero)

	writer, err := pl.WriterTo(PlotWidth, PlotHeight, "png")
	if err != nil {
		return nil, fmt.Errorf("failed to create plot writer: %w", err)
	}
	buf := new(bytes.Buffer)
	if _, err := writer.WriteTo(buf); err != nil {
		return nil, fmt.Errorf("failed to write plot to buffer: %w", err)
	}

	return buf.Bytes(), nil
}
