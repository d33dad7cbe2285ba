// SPDX-License-Identifier: MIT

package score

import (
	"sort"

	"github.com/katalvlaran/gridcover/frequency"
	"github.com/katalvlaran/gridcover/grid"
	"github.com/katalvlaran/gridcover/history"
)

// Rank scores all 49 centers over h and returns them by score desc, then
// center asc.
// Errors: those of Weights.Validate and frequency.Analyze.
// Complexity: O(n × 49 × 9 + 49 log 49).
func Rank(h history.History, opts Options) ([]ScoredCenter, error) {
	if err := opts.Weights.Validate(); err != nil {
		return nil, err
	}
	rep, err := frequency.Analyze(h, frequency.Options{RecentWeeks: opts.RecentWeeks})
	if err != nil {
		return nil, err
	}
	return FromReport(rep, opts), nil
}

// FromReport scores an already computed frequency.Report. Weights are
// assumed valid.
func FromReport(rep frequency.Report, opts Options) []ScoredCenter {
	w := opts.Weights
	out := make([]ScoredCenter, 0, len(rep.Centers))
	for _, st := range rep.Centers {
		cells := grid.MustNeighborhood(st.Center)
		comp := Components{
			Base:     float64(st.AllTimeCount),
			Momentum: w.RecentMultiplier * float64(st.RecentCount),
			GapBonus: w.GapBonus(st.Gap),
		}
		if opts.Quality != nil {
			comp.Quality = w.QualityMultiplier * opts.Quality.Mean(cells)
		}
		out = append(out, ScoredCenter{
			CenterStats: st,
			Score:       comp.Base + comp.Momentum + comp.GapBonus + comp.Quality,
			Components:  comp,
			Cells:       cells,
		})
	}
	Sort(out)
	return out
}

// Sort orders scored centers by score desc, then center asc, in place.
func Sort(sc []ScoredCenter) {
	sort.SliceStable(sc, func(i, j int) bool {
		if sc[i].Score != sc[j].Score {
			return sc[i].Score > sc[j].Score
		}
		return sc[i].Center < sc[j].Center
	})
}

// Top returns the first n entries of Rank (all 49 when n ≤ 0 or n > 49).
func Top(h history.History, n int, opts Options) ([]ScoredCenter, error) {
	ranked, err := Rank(h, opts)
	if err != nil {
		return nil, err
	}
	if n > 0 && n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked, nil
}
