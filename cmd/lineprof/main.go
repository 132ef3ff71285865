// SPDX-License-Identifier: MIT

// Command lineprof computes LTE line profiles of spherical clouds from a
// YAML run configuration and writes them as CSV, PNG and PDF.
//
//	lineprof run --config cloud.yaml --csv profile.csv --plot profile.png
//	lineprof version
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

var (
	// Global flags
	verbose bool
	timeout time.Duration

	// Run flags
	configPath string
	csvPath    string
	plotPath   string
	pdfPath    string
	workers    int

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "lineprof",
	Short: "LTE line-profile calculator for spherical clouds",
	Long: `lineprof integrates the radiative-transfer equation along sightlines
through a spherical cloud in LTE and reports the emergent brightness
temperature of one spectral line against velocity.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Compute a line profile from a YAML configuration",
	Long: `Loads the run configuration, computes the profile and writes the
requested outputs. Without --csv, --plot or --pdf the CSV table is printed
to standard output.

Environment:
  LINEPROF_WORKERS      overrides the workers setting of the file
  LINEPROF_STEP_BUDGET  overrides the step_budget setting of the file`,
	Args: cobra.NoArgs,
	RunE: runProfile,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the lineprof version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "lineprof", version)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging (one line per velocity)")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Minute, "Abort the computation after this long")

	runCmd.Flags().StringVarP(&configPath, "config", "c", "", "Run configuration (YAML, required)")
	runCmd.Flags().StringVar(&csvPath, "csv", "", "Write the profile table to this CSV file")
	runCmd.Flags().StringVar(&plotPath, "plot", "", "Write a PNG plot to this file")
	runCmd.Flags().StringVar(&pdfPath, "pdf", "", "Write a PDF summary to this file")
	runCmd.Flags().IntVarP(&workers, "workers", "j", 0, "Concurrent velocity samples (0 = configuration or GOMAXPROCS)")
	_ = runCmd.MarkFlagRequired("config")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// signalContext is cancelled on SIGINT/SIGTERM or after the timeout.
func signalContext() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)

	return ctx, func() {
		stop()
		cancel()
	}
}
