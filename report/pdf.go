// SPDX-License-Identifier: MIT

package report

import (
	"bytes"
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"

	"github.com/katalvlaran/lineprof"
)

const (
	pdfMargin       = 15.0 // mm
	pdfPageWidth    = 297.0
	pdfContentWidth = pdfPageWidth - 2*pdfMargin
	pdfLineHeight   = 6.0
	plotImageName   = "profile"
)

// Param is one row of the parameter table.
type Param struct {
	Name  string
	Value string
}

// WritePDF writes a landscape A4 page: title, parameter table, profile
// summary and, when plotPNG is non-empty, the plot.
func WritePDF(w io.Writer, title string, params []Param, p lineprof.LineProfile, plotPNG []byte) error {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(pdfContentWidth, 10, title, "", 1, "C", false, 0, "")
	pdf.Ln(3)

	nameWidth := pdfContentWidth * 0.3
	valueWidth := pdfContentWidth * 0.3
	pdf.SetFont("Arial", "B", 9)
	pdf.SetFillColor(200, 200, 200)
	pdf.CellFormat(nameWidth, pdfLineHeight, "Parameter", "1", 0, "C", true, 0, "")
	pdf.CellFormat(valueWidth, pdfLineHeight, "Value", "1", 1, "C", true, 0, "")
	pdf.SetFont("Arial", "", 9)
	rows := append(append([]Param(nil), params...), summary(p)...)
	for _, r := range rows {
		pdf.CellFormat(nameWidth, pdfLineHeight, r.Name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(valueWidth, pdfLineHeight, r.Value, "1", 1, "R", false, 0, "")
	}

	if len(plotPNG) > 0 {
		pdf.Ln(4)
		pdf.RegisterImageReader(plotImageName, "PNG", bytes.NewReader(plotPNG))
		width := pdfContentWidth * 0.6
		pdf.Image(plotImageName, pdfMargin, pdf.GetY(), width, width/2, false, "PNG", 0, "")
	}

	if err := pdf.Error(); err != nil {
		return fmt.Errorf("failed to build pdf: %w", err)
	}
	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("failed to write pdf: %w", err)
	}

	return nil
}

func summary(p lineprof.LineProfile) []Param {
	v, tb := p.Peak()

	return []Param{
		{"Line frequency (Hz)", fmt.Sprintf("%.6g", p.Freq)},
		{"Samples", fmt.Sprintf("%d", p.Len())},
		{"Peak T_B (K)", fmt.Sprintf("%.4g", tb)},
		{"Peak velocity (km/s)", fmt.Sprintf("%.4g", v/cmPerKm)},
	}
}
