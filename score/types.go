// SPDX-License-Identifier: MIT

package score

import (
	"errors"

	"github.com/katalvlaran/gridcover/frequency"
	"github.com/katalvlaran/gridcover/grid"
)

// Sentinel errors for score configuration.
var (
	// ErrQualityKey indicates a quality entry for a number outside [1,49].
	ErrQualityKey = errors.New("score: quality key out of range [1,49]")
	// ErrQualityValue indicates a quality value outside [0,1] or NaN.
	ErrQualityValue = errors.New("score: quality value must be in [0,1]")
	// ErrNegativeWeight indicates a negative weight or threshold.
	ErrNegativeWeight = errors.New("score: weights and thresholds must be non-negative")
)

// Default weights.
const (
	DefaultRecentMultiplier  = 2.0
	DefaultHotGap            = 3
	DefaultHotBonus          = 5.0
	DefaultWarmGap           = 8
	DefaultWarmBonus         = 2.0
	DefaultQualityMultiplier = 20.0
)

// Weights holds the tunable constants of the score formula.
type Weights struct {
	RecentMultiplier  float64 `yaml:"recent_multiplier" json:"recent_multiplier"`
	HotGap            int     `yaml:"hot_gap" json:"hot_gap"`
	HotBonus          float64 `yaml:"hot_bonus" json:"hot_bonus"`
	WarmGap           int     `yaml:"warm_gap" json:"warm_gap"`
	WarmBonus         float64 `yaml:"warm_bonus" json:"warm_bonus"`
	QualityMultiplier float64 `yaml:"quality_multiplier" json:"quality_multiplier"`
}

// DefaultWeights returns the documented defaults.
func DefaultWeights() Weights {
	return Weights{
		RecentMultiplier:  DefaultRecentMultiplier,
		HotGap:            DefaultHotGap,
		HotBonus:          DefaultHotBonus,
		WarmGap:           DefaultWarmGap,
		WarmBonus:         DefaultWarmBonus,
		QualityMultiplier: DefaultQualityMultiplier,
	}
}

// Validate rejects negative weights or thresholds.
func (w Weights) Validate() error {
	if w.RecentMultiplier < 0 || w.HotGap < 0 || w.HotBonus < 0 ||
		w.WarmGap < 0 || w.WarmBonus < 0 || w.QualityMultiplier < 0 {
		return ErrNegativeWeight
	}
	return nil
}

// GapBonus returns the hot-hand bonus for gap.
func (w Weights) GapBonus(gap int) float64 {
	switch {
	case gap <= w.HotGap:
		return w.HotBonus
	case gap <= w.WarmGap:
		return w.WarmBonus
	default:
		return 0
	}
}

// Options configures Rank.
type Options struct {
	RecentWeeks int         // recent window for momentum; 0 = whole History
	Weights     Weights     // formula constants
	Quality     *QualityMap // optional external signal; nil = absent
}

// DefaultOptions returns RecentWeeks=13, DefaultWeights and no quality map.
func DefaultOptions() Options {
	return Options{RecentWeeks: 13, Weights: DefaultWeights()}
}

// Components is the breakdown of a center's score.
type Components struct {
	Base     float64 `json:"base"`
	Momentum float64 `json:"momentum"`
	GapBonus float64 `json:"gap_bonus"`
	Quality  float64 `json:"quality"`
}

// ScoredCenter is a center's statistics plus its composite score.
type ScoredCenter struct {
	frequency.CenterStats
	Score      float64           `json:"score"`
	Components Components        `json:"components"`
	Cells      grid.Neighborhood `json:"cells"`
}
