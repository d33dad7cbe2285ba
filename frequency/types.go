// SPDX-License-Identifier: MIT

package frequency

import (
	"errors"

	"github.com/katalvlaran/gridcover/grid"
)

// ErrNegativeWindow indicates a negative window size.
var ErrNegativeWindow = errors.New("frequency: window must be non-negative")

// Options configures Analyze.
type Options struct {
	// RecentWeeks is the number of newest draws counted as "recent".
	// 0 means the whole History.
	RecentWeeks int
}

// DefaultOptions returns RecentWeeks=13.
func DefaultOptions() Options {
	return Options{RecentWeeks: 13}
}

// CenterStats is the aggregate of one center over a History.
type CenterStats struct {
	Center          grid.Cell `json:"center"`
	AllTimeCount    int       `json:"all_time_count"`
	RecentCount     int       `json:"recent_count"`
	AverageCoverage float64   `json:"average_coverage"`
	Gap             int       `json:"gap"`
	Percentage      float64   `json:"percentage"` // AllTimeCount / Draws × 100
}

// Report holds CenterStats for all 49 centers.
type Report struct {
	Draws       int           `json:"draws"`        // draws analyzed
	RecentWeeks int           `json:"recent_weeks"` // effective recent window
	Centers     []CenterStats `json:"centers"`      // Centers[c-1] describes center c
}

// Stats returns the statistics of center c; the zero value for invalid c.
func (r Report) Stats(c grid.Cell) CenterStats {
	if !c.Valid() || int(c) > len(r.Centers) {
		return CenterStats{}
	}
	return r.Centers[c-1]
}

// TrendWindow is the best-center tally over one recent window.
type TrendWindow struct {
	Weeks  int       `json:"weeks"`
	Draws  int       `json:"draws"`
	Counts []int     `json:"counts"` // Counts[c-1] for center c
	Top    grid.Cell `json:"top"`    // highest count, lowest id on ties; 0 when empty
}
