// SPDX-License-Identifier: MIT

// Package report renders a computed line profile: a CSV table for further
// processing, a PNG plot of brightness temperature against velocity
// (gonum/plot) and a one-page PDF summary with the run parameters and the
// plot (gofpdf).
package report
