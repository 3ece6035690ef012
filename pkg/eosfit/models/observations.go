// Package models defines the data structures shared by the fitting pipeline.
package models

import (
	"errors"
	"fmt"
	"math"
)

// ObservationSet is an ordered sequence of (volume, pressure) measurements
// from one experimental series. It is constructed once at ingestion time and
// not mutated afterwards.
type ObservationSet struct {
	// Label identifies the series, taken from its source column header.
	Label string
	// Volumes holds the measured volumes, one per data point.
	Volumes []float64
	// Pressures holds the measured pressures, paired index-wise with Volumes.
	Pressures []float64
}

// Len returns the number of data points.
func (s ObservationSet) Len() int { return len(s.Volumes) }

// Validate checks the observation-set invariants: equal column lengths,
// at least one point, and finite values throughout.
func (s ObservationSet) Validate() error {
	if len(s.Volumes) != len(s.Pressures) {
		return fmt.Errorf("series %q: %d volumes vs %d pressures", s.Label, len(s.Volumes), len(s.Pressures))
	}
	if len(s.Volumes) == 0 {
		return errors.New("series " + s.Label + ": no data points")
	}
	for i := range s.Volumes {
		if math.IsNaN(s.Volumes[i]) || math.IsInf(s.Volumes[i], 0) ||
			math.IsNaN(s.Pressures[i]) || math.IsInf(s.Pressures[i], 0) {
			return fmt.Errorf("series %q: non-finite value at point %d", s.Label, i+1)
		}
	}
	return nil
}
