package eosfit

import (
	"fmt"

	"github.com/minphys/eosfit-go/pkg/eosfit/dataset"
	"github.com/minphys/eosfit-go/pkg/eosfit/eos"
	"github.com/minphys/eosfit-go/pkg/eosfit/fitter"
	"github.com/minphys/eosfit-go/pkg/eosfit/models"
	"github.com/minphys/eosfit-go/pkg/eosfit/plotting"
)

// Run reads the named column pairs from the workbook at dataPath, fits the
// selected EOS model to every series, writes one shared plot to outPath, and
// returns the fit results in series order.
//
// Any ingestion, fit, or render failure aborts the run; no plot is written
// unless every series fits successfully.
func Run(dataPath, outPath string, series []SeriesSpec, opts Options) ([]*models.FitResult, error) {
	model, err := eos.ByName(opts.Model)
	if err != nil {
		return nil, err
	}

	f, err := dataset.Open(dataPath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	pressureCols := make([]string, len(series))
	volumeCols := make([]string, len(series))
	for i, s := range series {
		pressureCols[i] = s.PressureColumn
		volumeCols[i] = s.VolumeColumn
	}
	sets, err := dataset.Pairs(f, pressureCols, volumeCols)
	if err != nil {
		return nil, err
	}

	results := make([]*models.FitResult, len(sets))
	plots := make([]plotting.Series, len(sets))
	for i, obs := range sets {
		guess := opts.Guess
		if guess.V0 == 0 {
			guess.V0 = obs.Volumes[0]
		}
		res, err := fitter.Fit(model, obs, guess, opts.Fixed, opts.Fitter)
		if err != nil {
			return nil, fmt.Errorf("fitting series %q: %w", obs.Label, err)
		}
		results[i] = res
		plots[i] = plotting.Series{Obs: obs, Model: model, Fit: res}
	}

	p, err := plotting.Compose(opts.Title, plots)
	if err != nil {
		return nil, err
	}
	if err := plotting.Save(p, outPath); err != nil {
		return nil, err
	}
	return results, nil
}
