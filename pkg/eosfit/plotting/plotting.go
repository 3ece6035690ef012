// Package plotting composes pressure-volume fit plots and renders them to
// raster image files.
package plotting

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/minphys/eosfit-go/pkg/eosfit/eos"
	"github.com/minphys/eosfit-go/pkg/eosfit/models"
)

// ErrRenderFailure indicates the plot could not be rendered or written.
var ErrRenderFailure = errors.New("render failure")

// curveSamples is the number of points on each fitted-model curve.
const curveSamples = 200

// Series is one observation set together with its fit, ready for plotting.
type Series struct {
	Obs   models.ObservationSet
	Model eos.Model
	Fit   *models.FitResult
}

// Compose builds a plot with scattered data markers and a dashed fitted
// curve per series. Pressure is on the X axis and volume on the Y axis.
func Compose(title string, series []Series) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Pressure"
	p.Y.Label.Text = "Volume"

	for i, s := range series {
		pts := make(plotter.XYs, s.Obs.Len())
		for j := range pts {
			pts[j].X = s.Obs.Pressures[j]
			pts[j].Y = s.Obs.Volumes[j]
		}
		scatter, err := plotter.NewScatter(pts)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrRenderFailure, err)
		}
		scatter.GlyphStyle.Color = plotutil.Color(i)
		scatter.GlyphStyle.Radius = vg.Points(2.5)

		line, err := plotter.NewLine(curvePoints(s))
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrRenderFailure, err)
		}
		line.LineStyle.Color = plotutil.Color(i)
		line.LineStyle.Dashes = plotutil.Dashes(1)

		p.Add(line, scatter)
		label := s.Obs.Label
		if label == "" {
			label = "Data"
		}
		p.Legend.Add(label, scatter)
		fp := s.Fit.Params()
		p.Legend.Add(fmt.Sprintf("%s fit: V0=%.3f K0=%.3f K0'=%.3f",
			s.Model.Name, fp.V0, fp.K0, fp.K0Prime), line)
	}
	return p, nil
}

// curvePoints samples the fitted model over the observed volume range.
func curvePoints(s Series) plotter.XYs {
	lo := floats.Min(s.Obs.Volumes)
	hi := floats.Max(s.Obs.Volumes)
	params := s.Fit.Params()

	pts := make(plotter.XYs, curveSamples)
	for j := range pts {
		v := lo + (hi-lo)*float64(j)/float64(curveSamples-1)
		pts[j].X = s.Model.Pressure(v, params)
		pts[j].Y = v
	}
	return pts
}

// Save renders p to path. The image is written to a temporary file in the
// destination directory and moved into place, so a failed render never
// leaves a partial file behind.
func Save(p *plot.Plot, path string) error {
	ext := filepath.Ext(path)
	if ext == "" {
		return fmt.Errorf("%w: output path %q has no image extension", ErrRenderFailure, path)
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), ".eosfit-*"+ext)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRenderFailure, err)
	}
	tmpPath := tmp.Name()
	tmp.Close()

	// os.CreateTemp creates 0600; the published artifact should be readable.
	if err := os.Chmod(tmpPath, 0644); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("%w: %v", ErrRenderFailure, err)
	}

	if err := p.Save(6*vg.Inch, 4.5*vg.Inch, tmpPath); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("%w: %v", ErrRenderFailure, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("%w: %v", ErrRenderFailure, err)
	}
	return nil
}
