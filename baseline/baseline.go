// SPDX-License-Identifier: MIT

package baseline

import (
	"errors"
	"math"
	"sort"

	"github.com/katalvlaran/gridcover/grid"
	"github.com/katalvlaran/gridcover/history"
)

// Sentinel errors for baseline options.
var (
	ErrNegativeWindow = errors.New("baseline: recency window must be non-negative")
	ErrNegativeWeight = errors.New("baseline: weights and horizon must be non-negative")
)

// Defaults.
const (
	DefaultRecencyWindow   = 13
	DefaultN               = 20
	DefaultFrequencyWeight = 0.4
	DefaultRecencyWeight   = 0.4
	DefaultGapWeight       = 0.2
	DefaultGapHorizon      = 20
)

// Options configures Rank and Top.
type Options struct {
	RecencyWindow   int     `yaml:"recency_window" json:"recency_window"` // 0 = whole History
	N               int     `yaml:"n" json:"n"`                           // list size for Top; ≤ 0 ⇒ DefaultN
	FrequencyWeight float64 `yaml:"frequency_weight" json:"frequency_weight"`
	RecencyWeight   float64 `yaml:"recency_weight" json:"recency_weight"`
	GapWeight       float64 `yaml:"gap_weight" json:"gap_weight"`
	GapHorizon      float64 `yaml:"gap_horizon" json:"gap_horizon"` // gap saturates at this many draws
}

// DefaultOptions returns 13 / 20 / 0.4 / 0.4 / 0.2 / 20.
func DefaultOptions() Options {
	return Options{
		RecencyWindow:   DefaultRecencyWindow,
		N:               DefaultN,
		FrequencyWeight: DefaultFrequencyWeight,
		RecencyWeight:   DefaultRecencyWeight,
		GapWeight:       DefaultGapWeight,
		GapHorizon:      DefaultGapHorizon,
	}
}

// Validate checks option ranges.
func (o Options) Validate() error {
	if o.RecencyWindow < 0 {
		return ErrNegativeWindow
	}
	if o.FrequencyWeight < 0 || o.RecencyWeight < 0 || o.GapWeight < 0 || o.GapHorizon < 0 {
		return ErrNegativeWeight
	}
	return nil
}

// NumberScore is the baseline breakdown of one number.
type NumberScore struct {
	Number    int     `json:"number"`
	Frequency int     `json:"frequency"` // all-time occurrences
	Recent    int     `json:"recent"`    // occurrences in the recency window
	Gap       int     `json:"gap"`
	Score     float64 `json:"score"`
}

// Rank scores all 49 numbers over h (read newest-first), sorted by score
// desc, then number asc.
// Complexity: O(total numbers + 49 log 49).
func Rank(h history.History, opts Options) ([]NumberScore, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	total := h.Len()
	window := opts.RecencyWindow
	if window == 0 {
		window = total
	}

	var (
		freq   [grid.MaxCell + 1]int
		recent [grid.MaxCell + 1]int
		last   [grid.MaxCell + 1]int
	)
	for i := range last {
		last[i] = -1
	}
	h.Each(func(i int, d history.Draw) bool {
		for _, n := range d.Cells() {
			freq[n]++
			if i < window {
				recent[n]++
			}
			if last[n] < 0 {
				last[n] = i
			}
		}
		return true
	})

	out := make([]NumberScore, 0, grid.MaxCell)
	for n := grid.MinCell; n <= grid.MaxCell; n++ {
		gap := last[n]
		if gap < 0 {
			gap = total
		}
		s := opts.FrequencyWeight*ratio(float64(freq[n]), float64(total)) +
			opts.RecencyWeight*ratio(float64(recent[n]), float64(window)) +
			opts.GapWeight*gapTerm(gap, opts.GapHorizon)
		out = append(out, NumberScore{Number: n, Frequency: freq[n], Recent: recent[n], Gap: gap, Score: s})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].Number < out[j].Number
	})
	return out, nil
}

// Top returns the opts.N best numbers of Rank, sorted ascending by value.
func Top(h history.History, opts Options) ([]int, error) {
	ranked, err := Rank(h, opts)
	if err != nil {
		return nil, err
	}
	n := opts.N
	if n <= 0 {
		n = DefaultN
	}
	if n > len(ranked) {
		n = len(ranked)
	}
	nums := make([]int, n)
	for i := range nums {
		nums[i] = ranked[i].Number
	}
	sort.Ints(nums)
	return nums, nil
}

// ratio returns a/b, or 0 when b is 0.
func ratio(a, b float64) float64 {
	if b == 0 {
		return 0
	}
	return a / b
}

// gapTerm is min(1, gap/horizon); a zero horizon saturates any positive gap.
func gapTerm(gap int, horizon float64) float64 {
	if horizon == 0 {
		if gap > 0 {
			return 1
		}
		return 0
	}
	return math.Min(1, float64(gap)/horizon)
}
