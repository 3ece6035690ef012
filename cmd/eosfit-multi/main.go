// Package main provides the multi-series EOS fitting CLI: several
// pressure/volume column pairs fitted independently and drawn on one plot.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/minphys/eosfit-go/pkg/eosfit"
	"github.com/minphys/eosfit-go/pkg/eosfit/eos"
	"github.com/minphys/eosfit-go/pkg/eosfit/fitter"
	"github.com/minphys/eosfit-go/pkg/eosfit/report"
)

// Initial guess and fixed-parameter policy. These are source-edit constants:
// adjust and rebuild to steer a stubborn fit.
const (
	guessV0      = 0 // 0 uses the first volume observation of each series
	guessK0      = 160
	guessK0Prime = 5

	fixK0      = false
	fixK0Prime = false
)

var (
	pressureCols []string
	volumeCols   []string
	modelName    string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "eosfit-multi PLOT_TITLE OUTPUT_IMAGE DATA_FILE --pressures COL... --volumes COL...",
		Short: "Fit an EOS to several pressure-volume series on one plot",
		Long: `eosfit-multi reads several pressure/volume column pairs from one xlsx
workbook, fits the selected equation of state to each series independently,
prints the fitted parameters per series, and saves a shared plot. The i-th
pressure column is paired with the i-th volume column, and each series is
labeled by its volume column header.`,
		Args:         cobra.ExactArgs(3),
		RunE:         run,
		SilenceUsage: true,
	}
	rootCmd.Flags().StringSliceVar(&pressureCols, "pressures", nil, "pressure column headers, one per series")
	rootCmd.Flags().StringSliceVar(&volumeCols, "volumes", nil, "volume column headers, one per series")
	rootCmd.Flags().StringVar(&modelName, "model", "bm", "EOS model: bm or vinet")
	rootCmd.MarkFlagRequired("pressures")
	rootCmd.MarkFlagRequired("volumes")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	title, outPath, dataPath := args[0], args[1], args[2]

	if len(pressureCols) != len(volumeCols) {
		return fmt.Errorf("got %d --pressures but %d --volumes; counts must match",
			len(pressureCols), len(volumeCols))
	}

	series := make([]eosfit.SeriesSpec, len(pressureCols))
	for i := range pressureCols {
		series[i] = eosfit.SeriesSpec{PressureColumn: pressureCols[i], VolumeColumn: volumeCols[i]}
	}

	opts := eosfit.DefaultOptions()
	opts.Model = modelName
	opts.Title = title
	opts.Guess = eos.Params{V0: guessV0, K0: guessK0, K0Prime: guessK0Prime}
	opts.Fixed = fitter.FixedMask{K0: fixK0, K0Prime: fixK0Prime}

	results, err := eosfit.Run(dataPath, outPath, series, opts)
	if err != nil {
		return err
	}

	for _, r := range results {
		if err := report.Write(os.Stdout, r); err != nil {
			return err
		}
	}
	fmt.Printf("wrote %s\n", outPath)
	return nil
}
