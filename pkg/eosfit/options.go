// Package eosfit fits equation-of-state models to pressure-volume data read
// from xlsx workbooks and renders the fits to an image.
package eosfit

import (
	"github.com/minphys/eosfit-go/pkg/eosfit/eos"
	"github.com/minphys/eosfit-go/pkg/eosfit/fitter"
)

// SeriesSpec names one pressure/volume column pair in the input workbook.
type SeriesSpec struct {
	// PressureColumn is the pressure column header.
	PressureColumn string
	// VolumeColumn is the volume column header. It also labels the series.
	VolumeColumn string
}

// Options configures a fitting run.
type Options struct {
	// Model selects the EOS model: "bm" or "vinet".
	Model string
	// Guess is the initial parameter estimate. A zero Guess.V0 means "use
	// the first volume observation of the series".
	Guess eos.Params
	// Fixed selects parameters held constant during fitting.
	Fixed fitter.FixedMask
	// Fitter holds the optimizer settings.
	Fitter fitter.Config
	// Title is the plot title.
	Title string
}

// DefaultOptions returns a Birch-Murnaghan run with the default optimizer
// settings and the conventional initial guess (K0=160, K0'=5, V0 from data).
func DefaultOptions() Options {
	return Options{
		Model:  "bm",
		Guess:  eos.Params{K0: 160, K0Prime: 5},
		Fitter: fitter.DefaultConfig(),
	}
}
