// SPDX-License-Identifier: MIT

package backtest

import (
	"gonum.org/v1/gonum/stat"
)

// Summarize aggregates records. Every rate is a percentage of len(records);
// an empty slice yields a zero Summary. StdDev is the sample standard
// deviation (0 for fewer than two weeks).
func Summarize(records []Record, cfg Config) Summary {
	sum := Summary{Weeks: len(records)}
	if len(records) == 0 {
		return sum
	}
	gridHits := make([]float64, len(records))
	baseHits := make([]float64, len(records))
	for i, r := range records {
		gridHits[i] = float64(r.Grid.Hits)
		baseHits[i] = float64(r.Baseline.Hits)
		switch {
		case r.Grid.Hits > r.Baseline.Hits:
			sum.Wins++
		case r.Grid.Hits < r.Baseline.Hits:
			sum.Losses++
		default:
			sum.Ties++
		}
	}
	sum.Grid = stats(records[0].Grid.Strategy, gridHits, cfg)
	sum.Baseline = stats(records[0].Baseline.Strategy, baseHits, cfg)
	return sum
}

func stats(name string, hits []float64, cfg Config) StrategyStats {
	s := StrategyStats{Name: name, AvgHits: stat.Mean(hits, nil)}
	if len(hits) > 1 {
		s.StdDevHits = stat.StdDev(hits, nil)
	}
	success := 0
	for _, h := range hits {
		s.TotalHits += int(h)
		if int(h) >= cfg.SuccessHits {
			success++
		}
		if int(h) >= cfg.HighHits {
			s.HighCount++
		}
	}
	n := float64(len(hits))
	s.SuccessRate = float64(success) / n * 100
	s.HighRate = float64(s.HighCount) / n * 100
	return s
}
