package main

import (
	"context"
	"fmt"
	"os"

	"churnlens/pkg/charts"
	"churnlens/pkg/dataset"
	"churnlens/pkg/logging"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		chart    string
		seed     uint64
		size     int
		logLevel string
	)

	cmd := &cobra.Command{
		Use:   "churnexport",
		Short: "Print churn chart aggregates in Prometheus text format",
		Long: `churnexport draws the same synthetic customer sample as the desktop app
and prints the aggregates behind each chart (counts per category and churn
status, monthly charge summaries) in the Prometheus text exposition format.`,
		Version:      version,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logging.Component(logging.New(logging.Config{Level: logLevel, Out: cmd.ErrOrStderr()}), "export")

			kinds, err := charts.ParseKinds(chart)
			if err != nil {
				return err
			}
			if size <= 0 {
				return fmt.Errorf("size must be > 0, got %d", size)
			}

			gen := dataset.NewGenerator(dataset.WithSeed(seed), dataset.WithSize(size))
			log.Debug().Uint64("seed", seed).Int("size", size).Int("charts", len(kinds)).Msg("exporting")
			if err := charts.Export(cmd.OutOrStdout(), gen, kinds...); err != nil {
				log.Error().Err(err).Msg("export failed")
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&chart, "chart", "c", "all", "Charts to export: all or a comma separated list of contract, payment, spend")
	cmd.Flags().Uint64Var(&seed, "seed", dataset.DefaultSeed, "Seed for the reproducible dataset columns")
	cmd.Flags().IntVarP(&size, "size", "n", dataset.DefaultSize, "Number of customers to generate")
	cmd.Flags().StringVar(&logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	return cmd
}
