// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/lineprof"
	"github.com/katalvlaran/lineprof/config"
	"github.com/katalvlaran/lineprof/report"
)

// runProfile implements "lineprof run".
func runProfile(cmd *cobra.Command, args []string) error {
	ctx, cancel := signalContext()
	defer cancel()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if workers > 0 {
		cfg.Workers = workers
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	tab, err := cfg.BuildEmitter()
	if err != nil {
		return fmt.Errorf("failed to build emitter: %w", err)
	}
	logger.Info("loaded configuration",
		zap.String("config", configPath),
		zap.String("species", tab.Name()),
		zap.Int("upper", cfg.Upper),
		zap.Int("lower", cfg.Lower),
	)

	density, temperature := cfg.Profiles()
	p, err := lineprof.Compute(ctx, tab, cfg.Upper, cfg.Lower, cfg.Radius,
		density, temperature, cfg.Options(logger)...)
	if err != nil {
		return fmt.Errorf("line profile: %w", err)
	}

	return writeOutputs(cmd.OutOrStdout(), cfg, p)
}

func writeOutputs(stdout io.Writer, cfg *config.Config, p lineprof.LineProfile) error {
	if csvPath == "" && plotPath == "" && pdfPath == "" {
		return report.WriteCSV(stdout, p)
	}

	if csvPath != "" {
		var buf bytes.Buffer
		if err := report.WriteCSV(&buf, p); err != nil {
			return err
		}
		if err := writeFile(csvPath, buf.Bytes()); err != nil {
			return err
		}
	}

	var png []byte
	if plotPath != "" || pdfPath != "" {
		var err error
		if png, err = report.Plot(p, title(cfg)); err != nil {
			return err
		}
	}
	if plotPath != "" {
		if err := writeFile(plotPath, png); err != nil {
			return err
		}
	}
	if pdfPath != "" {
		var buf bytes.Buffer
		if err := report.WritePDF(&buf, title(cfg), params(cfg), p, png); err != nil {
			return err
		}
		if err := writeFile(pdfPath, buf.Bytes()); err != nil {
			return err
		}
	}

	return nil
}

func writeFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	logger.Info("wrote output", zap.String("path", path), zap.Int("bytes", len(data)))

	return nil
}

func title(cfg *config.Config) string {
	if cfg.Name != "" {
		return cfg.Name
	}

	return fmt.Sprintf("Line %d → %d", cfg.Upper, cfg.Lower)
}

func params(cfg *config.Config) []report.Param {
	return []report.Param{
		{Name: "Transition", Value: fmt.Sprintf("%d -> %d", cfg.Upper, cfg.Lower)},
		{Name: "Radius (cm)", Value: fmt.Sprintf("%.4g", cfg.Radius)},
		{Name: "Offset (R)", Value: fmt.Sprintf("%.3g", cfg.Offset)},
		{Name: "Background (K)", Value: fmt.Sprintf("%.3g", cfg.Background)},
		{Name: "Beam dispersion (R)", Value: fmt.Sprintf("%.3g", cfg.BeamDispersion)},
		{Name: "Step budget", Value: fmt.Sprintf("%d", cfg.StepBudget)},
	}
}
