// SPDX-License-Identifier: MIT

package frequency

import (
	"sort"

	"github.com/katalvlaran/gridcover/grid"
	"github.com/katalvlaran/gridcover/history"
)

// BestCenterSeries returns the single best center of every draw of h,
// newest-first (series[0] belongs to h.At(0)).
// Complexity: O(n × 49 × 9).
func BestCenterSeries(h history.History) []grid.Cell {
	series := make([]grid.Cell, h.Len())
	h.Each(func(i int, d history.Draw) bool {
		series[i] = grid.BestCenter(d.Cells())
		return true
	})
	return series
}

// Gaps returns, per center (index c-1), the newest-first index of the first
// entry of series equal to c; absent centers get length.
// Complexity: O(len(series)).
func Gaps(series []grid.Cell, length int) []int {
	gaps := make([]int, grid.MaxCell)
	for i := range gaps {
		gaps[i] = length
	}
	seen := make([]bool, grid.MaxCell)
	for i, c := range series {
		if !c.Valid() || seen[c-1] {
			continue
		}
		seen[c-1] = true
		gaps[c-1] = i
	}
	return gaps
}

// Analyze computes CenterStats for every center over h.
// Empty h yields zeroed stats with Gap = 0 and no NaN values.
// Returns ErrNegativeWindow when opts.RecentWeeks < 0.
func Analyze(h history.History, opts Options) (Report, error) {
	if opts.RecentWeeks < 0 {
		return Report{}, ErrNegativeWindow
	}
	n := h.Len()
	recent := opts.RecentWeeks
	if recent == 0 || recent > n {
		recent = n
	}

	series := BestCenterSeries(h)
	gaps := Gaps(series, n)
	totalHits := make([]int, grid.MaxCell)
	h.Each(func(_ int, d history.Draw) bool {
		byCenter := grid.HitsByCenter(d.Cells())
		for c := 1; c <= grid.MaxCell; c++ {
			totalHits[c-1] += byCenter[c]
		}
		return true
	})

	rep := Report{Draws: n, RecentWeeks: recent, Centers: make([]CenterStats, grid.MaxCell)}
	for i := range rep.Centers {
		rep.Centers[i] = CenterStats{Center: grid.Cell(i + 1), Gap: gaps[i]}
	}
	for i, c := range series {
		st := &rep.Centers[c-1]
		st.AllTimeCount++
		if i < recent {
			st.RecentCount++
		}
	}
	if n > 0 {
		for i := range rep.Centers {
			st := &rep.Centers[i]
			st.AverageCoverage = float64(totalHits[i]) / float64(n)
			st.Percentage = float64(st.AllTimeCount) / float64(n) * 100
		}
	}
	return rep, nil
}

// Ranked returns the report's stats ordered by AllTimeCount desc, then
// center asc.
func (r Report) Ranked() []CenterStats {
	out := make([]CenterStats, len(r.Centers))
	copy(out, r.Centers)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].AllTimeCount != out[j].AllTimeCount {
			return out[i].AllTimeCount > out[j].AllTimeCount
		}
		return out[i].Center < out[j].Center
	})
	return out
}

// Trend tallies best centers over several recent windows of h, one
// TrendWindow per entry of weeks (0 means the whole History).
// Returns ErrNegativeWindow if any window is negative.
func Trend(h history.History, weeks []int) ([]TrendWindow, error) {
	series := BestCenterSeries(h)
	out := make([]TrendWindow, 0, len(weeks))
	for _, w := range weeks {
		if w < 0 {
			return nil, ErrNegativeWindow
		}
		k := w
		if k == 0 || k > len(series) {
			k = len(series)
		}
		tw := TrendWindow{Weeks: w, Draws: k, Counts: make([]int, grid.MaxCell)}
		best := -1
		for _, c := range series[:k] {
			tw.Counts[c-1]++
		}
		for i, cnt := range tw.Counts {
			if cnt > 0 && cnt > best {
				best, tw.Top = cnt, grid.Cell(i+1)
			}
		}
		out = append(out, tw)
	}
	return out, nil
}
