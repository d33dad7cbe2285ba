// SPDX-License-Identifier: MIT

package backtest

import (
	"github.com/katalvlaran/gridcover/baseline"
	"github.com/katalvlaran/gridcover/history"
	"github.com/katalvlaran/gridcover/portfolio"
)

// Strategy predicts a candidate list from past draws only.
type Strategy interface {
	Name() string
	Predict(past history.History) (Prediction, error)
}

// GridStrategy builds a coverage portfolio over past and extracts its
// Smart-N list.
type GridStrategy struct {
	Options    portfolio.Options
	Candidates int // ≤ 0 ⇒ portfolio.DefaultCandidates
}

// NewGridStrategy derives a GridStrategy from cfg.
func NewGridStrategy(cfg Config) GridStrategy {
	opts := portfolio.DefaultOptions()
	opts.Size = cfg.PortfolioSize
	opts.RecentWeeks = cfg.RecencyWeeks
	return GridStrategy{Options: opts, Candidates: cfg.CandidateCount}
}

// Name implements Strategy.
func (GridStrategy) Name() string { return "grid" }

// Predict implements Strategy.
func (s GridStrategy) Predict(past history.History) (Prediction, error) {
	p, err := portfolio.Build(past, s.Options)
	if err != nil {
		return Prediction{}, err
	}
	return Prediction{
		Numbers:   portfolio.Extract(p, s.Candidates),
		Centers:   p.Centers(),
		Portfolio: p.Entries,
	}, nil
}

// BaselineStrategy ranks numbers with the baseline blend.
type BaselineStrategy struct {
	Options baseline.Options
}

// NewBaselineStrategy derives a BaselineStrategy from cfg.
func NewBaselineStrategy(cfg Config) BaselineStrategy {
	opts := baseline.DefaultOptions()
	opts.RecencyWindow = cfg.RecencyWeeks
	opts.N = cfg.CandidateCount
	return BaselineStrategy{Options: opts}
}

// Name implements Strategy.
func (BaselineStrategy) Name() string { return "baseline" }

// Predict implements Strategy.
func (s BaselineStrategy) Predict(past history.History) (Prediction, error) {
	nums, err := baseline.Top(past, s.Options)
	if err != nil {
		return Prediction{}, err
	}
	return Prediction{Numbers: nums}, nil
}
