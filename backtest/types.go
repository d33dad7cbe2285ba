// SPDX-License-Identifier: MIT

package backtest

import (
	"errors"

	"github.com/katalvlaran/gridcover/grid"
	"github.com/katalvlaran/gridcover/portfolio"
)

// Sentinel errors.
var (
	ErrBadConfig   = errors.New("backtest: config values must be non-negative")
	ErrNilStrategy = errors.New("backtest: strategy is nil")
)

// Defaults.
const (
	DefaultWeeks          = 10
	DefaultPortfolioSize  = 3
	DefaultRecencyWeeks   = 13
	DefaultCandidateCount = 20
	DefaultSuccessHits    = 3
	DefaultHighHits       = 8
)

// Config controls a backtest run.
type Config struct {
	Weeks          int `yaml:"weeks" json:"weeks"`                     // weeks to simulate
	PortfolioSize  int `yaml:"portfolio_size" json:"portfolio_size"`   // centers per grid portfolio
	RecencyWeeks   int `yaml:"recency_weeks" json:"recency_weeks"`     // window and minimum past length
	CandidateCount int `yaml:"candidate_count" json:"candidate_count"` // numbers per prediction
	SuccessHits    int `yaml:"success_hits" json:"success_hits"`       // hits counted as a success
	HighHits       int `yaml:"high_hits" json:"high_hits"`             // hits counted in the tail metric
	Workers        int `yaml:"workers" json:"workers"`                 // ≤ 1 runs sequentially
}

// DefaultConfig returns 10 weeks, 3 centers, 13-week recency, 20 numbers,
// success at 3 hits and the tail at 8, sequential.
func DefaultConfig() Config {
	return Config{
		Weeks:          DefaultWeeks,
		PortfolioSize:  DefaultPortfolioSize,
		RecencyWeeks:   DefaultRecencyWeeks,
		CandidateCount: DefaultCandidateCount,
		SuccessHits:    DefaultSuccessHits,
		HighHits:       DefaultHighHits,
		Workers:        1,
	}
}

// Validate reports ErrBadConfig for any negative field.
func (c Config) Validate() error {
	if c.Weeks < 0 || c.PortfolioSize < 0 || c.RecencyWeeks < 0 || c.CandidateCount < 0 ||
		c.SuccessHits < 0 || c.HighHits < 0 || c.Workers < 0 {
		return ErrBadConfig
	}
	return nil
}

// Prediction is what a Strategy proposes for one week.
type Prediction struct {
	Numbers   []int             `json:"numbers"`             // candidate list, ascending
	Centers   []grid.Cell       `json:"centers,omitempty"`   // portfolio centers, grid strategies only
	Portfolio []portfolio.Entry `json:"portfolio,omitempty"` // selected entries with their gains
}

// Outcome is one strategy's prediction scored against the target.
type Outcome struct {
	Strategy string `json:"strategy"`
	Prediction
	Hits int `json:"hits"`
}

// Record is one simulated week.
type Record struct {
	Week      int     `json:"week"`              // newest-first index of the target
	DrawID    string  `json:"draw_id,omitempty"` // target label when the archive had one
	Target    []int   `json:"target"`
	PastDraws int     `json:"past_draws"` // draws visible to the strategies
	Grid      Outcome `json:"grid"`
	Baseline  Outcome `json:"baseline"`
}

// StrategyStats aggregates one strategy over all records.
type StrategyStats struct {
	Name        string  `json:"name"`
	TotalHits   int     `json:"total_hits"`
	AvgHits     float64 `json:"avg_hits"`
	StdDevHits  float64 `json:"stddev_hits"`
	SuccessRate float64 `json:"success_rate"` // % of weeks with hits ≥ SuccessHits
	HighRate    float64 `json:"high_rate"`    // % of weeks with hits ≥ HighHits
	HighCount   int     `json:"high_count"`   // weeks with hits ≥ HighHits
}

// Summary aggregates a run.
type Summary struct {
	Weeks    int           `json:"weeks"`
	Grid     StrategyStats `json:"grid"`
	Baseline StrategyStats `json:"baseline"`
	Wins     int           `json:"wins"`   // weeks where grid hits > baseline hits
	Losses   int           `json:"losses"` // weeks where grid hits < baseline hits
	Ties     int           `json:"ties"`
}

// Result is a full run: its configuration, every week and the summary.
type Result struct {
	Config  Config   `json:"config"`
	Records []Record `json:"records"`
	Summary Summary  `json:"summary"`
}

// Observer receives records and the summary of a run, in week order, from
// the goroutine that called Run.
type Observer interface {
	ObserveWeek(r Record)
	ObserveSummary(s Summary)
}
