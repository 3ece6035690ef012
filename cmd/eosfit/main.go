// Package main provides the single-series EOS fitting CLI.
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
	guessV0      = 0 // 0 uses the first volume observation
	guessK0      = 160
	guessK0Prime = 5

	fixK0      = false
	fixK0Prime = false
)

var modelName string

func main() {
	rootCmd := &cobra.Command{
		Use:   "eosfit DATA_FILE PRESSURE_COLUMN VOLUME_COLUMN OUTPUT_IMAGE",
		Short: "Fit a Birch-Murnaghan or Vinet EOS to pressure-volume data",
		Long: `eosfit reads a pressure column and a volume column from an xlsx workbook,
fits the selected equation of state, prints the fitted parameters with their
standard errors, and saves a plot of the data and the fitted curve.`,
		Args:         cobra.ExactArgs(4),
		RunE:         run,
		SilenceUsage: true,
	}
	rootCmd.Flags().StringVar(&modelName, "model", "bm", "EOS model: bm or vinet")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	dataPath, pressureCol, volumeCol, outPath := args[0], args[1], args[2], args[3]

	opts := eosfit.DefaultOptions()
	opts.Model = modelName
	opts.Guess = eos.Params{V0: guessV0, K0: guessK0, K0Prime: guessK0Prime}
	opts.Fixed = fitter.FixedMask{K0: fixK0, K0Prime: fixK0Prime}

	series := []eosfit.SeriesSpec{{PressureColumn: pressureCol, VolumeColumn: volumeCol}}
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
