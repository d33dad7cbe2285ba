// SPDX-License-Identifier: MIT

package portfolio

import (
	"gonum.org/v1/gonum/stat/combin"

	"github.com/katalvlaran/gridcover/grid"
	"github.com/katalvlaran/gridcover/history"
	"github.com/katalvlaran/gridcover/score"
)

// Build ranks the centers of h, keeps the top PoolSize as candidates and
// selects up to Size of them maximizing coverage of the RecentWeeks newest
// draws.
//
// Contracts:
//   - h is read newest-first whatever its storage Order.
//   - No center appears twice; entries are in selection order with
//     non-increasing MarginalGain.
//   - An empty window yields entries with zero gains and CoveragePercent 0.
//
// Errors: those of Options.Validate and score.Rank; ErrSearchTooLarge for
// Exact on a large pool.
func Build(h history.History, opts Options) (Portfolio, error) {
	if err := opts.Validate(); err != nil {
		return Portfolio{}, err
	}
	ranked, err := score.Rank(h, score.Options{
		RecentWeeks: opts.RecentWeeks,
		Weights:     opts.Weights,
		Quality:     opts.Quality,
	})
	if err != nil {
		return Portfolio{}, err
	}
	pool := ranked
	if opts.PoolSize < len(pool) {
		pool = pool[:opts.PoolSize]
	}

	window := h
	if opts.RecentWeeks > 0 {
		window = h.Recent(opts.RecentWeeks)
	}
	u := NewUniverse(window)

	p := Portfolio{UniverseSize: u.Size(), Algorithm: opts.Algorithm}
	switch opts.Algorithm {
	case Greedy:
		p.Entries = Select(pool, u, opts.Size, opts.StopOnZeroGain)
	case Exact:
		idx, _, err := Optimal(pool, u, opts.Size)
		if err != nil {
			return Portfolio{}, err
		}
		chosen := make([]score.ScoredCenter, len(idx))
		for i, j := range idx {
			chosen[i] = pool[j]
		}
		// order the optimal set by marginal gain for a comparable report
		p.Entries = Select(chosen, u, len(chosen), false)
	}
	return p, nil
}

// Select runs the greedy maximum-coverage heuristic over pool, which must
// already be in score order.
//
// Each of the size steps evaluates every unchosen candidate, takes the one
// with the highest marginal gain (earliest in pool on ties) and marks its
// pairs covered. Selection is strictly sequential: a gain depends on the
// state left by all earlier picks. With stopOnZeroGain the loop ends once
// the best remaining gain is 0.
//
// Complexity: O(size × |pool| × gain).
func Select(pool []score.ScoredCenter, u *Universe, size int, stopOnZeroGain bool) []Entry {
	if size > len(pool) {
		size = len(pool)
	}
	entries := make([]Entry, 0, size)
	if size <= 0 {
		return entries
	}
	covered := u.NewCoverSet()
	chosen := make([]bool, len(pool))
	total := 0

	for step := 0; step < size; step++ {
		best, bestGain := -1, -1
		for i := range pool {
			if chosen[i] {
				continue
			}
			if g := u.Gain(pool[i].Cells, covered); g > bestGain {
				best, bestGain = i, g
			}
		}
		if best < 0 || (stopOnZeroGain && bestGain == 0) {
			break
		}
		chosen[best] = true
		total += u.Cover(pool[best].Cells, covered)
		entries = append(entries, Entry{
			ScoredCenter:    pool[best],
			MarginalGain:    bestGain,
			CumulativeHits:  total,
			CoveragePercent: percent(total, u.Size()),
		})
	}
	return entries
}

// Optimal enumerates every subset of min(size, |pool|) candidates and
// returns the pool indexes (ascending) of one with maximum union coverage,
// preferring the lexicographically first subset on ties.
//
// Returns ErrSearchTooLarge when C(|pool|, size) exceeds MaxSubsets.
// Complexity: O(C(|pool|, size) × size × gain).
func Optimal(pool []score.ScoredCenter, u *Universe, size int) ([]int, int, error) {
	n := len(pool)
	if size > n {
		size = n
	}
	if size <= 0 {
		return []int{}, 0, nil
	}
	if combin.Binomial(n, size) > MaxSubsets {
		return nil, 0, ErrSearchTooLarge
	}

	var (
		best     []int
		bestCov  = -1
		nbs      = make([]grid.Neighborhood, size)
		gen      = combin.NewCombinationGenerator(n, size)
		scratch  = make([]int, size)
		coverBuf = u.NewCoverSet()
	)
	for gen.Next() {
		comb := gen.Combination(scratch)
		for i, j := range comb {
			nbs[i] = pool[j].Cells
		}
		for i := range coverBuf {
			coverBuf[i] = false
		}
		cov := 0
		for _, nb := range nbs {
			cov += u.Cover(nb, coverBuf)
		}
		if cov > bestCov {
			bestCov = cov
			best = append(best[:0], comb...)
		}
	}
	return best, bestCov, nil
}

func percent(part, whole int) float64 {
	if whole == 0 {
		return 0
	}
	return float64(part) / float64(whole) * 100
}
