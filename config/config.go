// SPDX-License-Identifier: MIT

// Package config loads the gridcover YAML configuration.
//
// Every field has a documented default (Default); a file only needs the keys
// it changes, the rest keep their defaults. Validate checks ranges and that
// names (order, policy, algorithm) are known. The To… helpers translate the
// file into the typed options of each package.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gridcover/backtest"
	"github.com/katalvlaran/gridcover/baseline"
	"github.com/katalvlaran/gridcover/frequency"
	"github.com/katalvlaran/gridcover/history"
	"github.com/katalvlaran/gridcover/portfolio"
	"github.com/katalvlaran/gridcover/score"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid")

// HistoryConfig locates and interprets the draw archive.
type HistoryConfig struct {
	Path   string `yaml:"path"`   // .json or .csv archive
	Order  string `yaml:"order"`  // newest-first | oldest-first
	Policy string `yaml:"policy"` // strict | filter
}

// AnalysisConfig holds the shared recent window.
type AnalysisConfig struct {
	RecentWeeks int `yaml:"recent_weeks"` // 0 = whole history
}

// ScoreConfig holds the score formula and optional quality signal.
type ScoreConfig struct {
	Weights score.Weights   `yaml:"weights"`
	Quality map[int]float64 `yaml:"quality"` // number → [0,1]; empty = absent
}

// PortfolioConfig holds the coverage search settings.
type PortfolioConfig struct {
	Size           int    `yaml:"size"`
	PoolSize       int    `yaml:"pool_size"`
	Algorithm      string `yaml:"algorithm"` // greedy | exact
	StopOnZeroGain bool   `yaml:"stop_on_zero_gain"`
	Candidates     int    `yaml:"candidates"` // Smart-N list size
}

// OutputConfig holds artifact destinations.
type OutputConfig struct {
	Dir         string `yaml:"dir"`          // backtest artifacts
	MetricsFile string `yaml:"metrics_file"` // Prometheus textfile; empty = skip
}

// Config is the whole configuration file.
type Config struct {
	History   HistoryConfig    `yaml:"history"`
	Analysis  AnalysisConfig   `yaml:"analysis"`
	Score     ScoreConfig      `yaml:"score"`
	Portfolio PortfolioConfig  `yaml:"portfolio"`
	Baseline  baseline.Options `yaml:"baseline"`
	Backtest  backtest.Config  `yaml:"backtest"`
	Output    OutputConfig     `yaml:"output"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		History:  HistoryConfig{Order: history.NewestFirst.String(), Policy: history.Filter.String()},
		Analysis: AnalysisConfig{RecentWeeks: frequency.DefaultOptions().RecentWeeks},
		Score:    ScoreConfig{Weights: score.DefaultWeights()},
		Portfolio: PortfolioConfig{
			Size:       portfolio.DefaultSize,
			PoolSize:   portfolio.DefaultPoolSize,
			Algorithm:  portfolio.Greedy.String(),
			Candidates: portfolio.DefaultCandidates,
		},
		Baseline: baseline.DefaultOptions(),
		Backtest: backtest.DefaultConfig(),
		Output:   OutputConfig{Dir: "./artifacts/backtest"},
	}
}

// Load reads path over Default and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks every section.
func (c Config) Validate() error {
	if _, err := history.ParseOrder(c.History.Order); err != nil {
		return invalid("history.order %q: %w", c.History.Order, err)
	}
	if _, err := history.ParsePolicy(c.History.Policy); err != nil {
		return invalid("history.policy %q: %w", c.History.Policy, err)
	}
	if c.Analysis.RecentWeeks < 0 {
		return invalid("analysis.recent_weeks %d: %w", c.Analysis.RecentWeeks, frequency.ErrNegativeWindow)
	}
	if _, err := c.QualityMap(); err != nil {
		return invalid("score.quality: %w", err)
	}
	if _, err := c.PortfolioOptions(); err != nil {
		return invalid("portfolio: %w", err)
	}
	if c.Portfolio.Candidates < 0 {
		return invalid("portfolio.candidates %d must be non-negative", c.Portfolio.Candidates)
	}
	if err := c.Baseline.Validate(); err != nil {
		return invalid("baseline: %w", err)
	}
	if err := c.Backtest.Validate(); err != nil {
		return invalid("backtest: %w", err)
	}
	return nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %w", ErrInvalid, fmt.Errorf(format, args...))
}

// Order returns the parsed archive order.
func (c Config) Order() (history.Order, error) { return history.ParseOrder(c.History.Order) }

// Policy returns the parsed ingestion policy.
func (c Config) Policy() (history.Policy, error) { return history.ParsePolicy(c.History.Policy) }

// QualityMap builds the immutable quality map; nil when none is configured.
func (c Config) QualityMap() (*score.QualityMap, error) {
	if len(c.Score.Quality) == 0 {
		return nil, nil
	}
	return score.NewQualityMap(c.Score.Quality)
}

// FrequencyOptions returns the analyzer options.
func (c Config) FrequencyOptions() frequency.Options {
	return frequency.Options{RecentWeeks: c.Analysis.RecentWeeks}
}

// ScoreOptions returns the score options including the quality map.
func (c Config) ScoreOptions() (score.Options, error) {
	q, err := c.QualityMap()
	if err != nil {
		return score.Options{}, err
	}
	return score.Options{RecentWeeks: c.Analysis.RecentWeeks, Weights: c.Score.Weights, Quality: q}, nil
}

// PortfolioOptions returns validated portfolio options.
func (c Config) PortfolioOptions() (portfolio.Options, error) {
	algo, err := portfolio.ParseAlgorithm(c.Portfolio.Algorithm)
	if err != nil {
		return portfolio.Options{}, err
	}
	so, err := c.ScoreOptions()
	if err != nil {
		return portfolio.Options{}, err
	}
	opts := portfolio.Options{
		Size:           c.Portfolio.Size,
		RecentWeeks:    c.Analysis.RecentWeeks,
		PoolSize:       c.Portfolio.PoolSize,
		Algorithm:      algo,
		StopOnZeroGain: c.Portfolio.StopOnZeroGain,
		Weights:        so.Weights,
		Quality:        so.Quality,
	}
	return opts, opts.Validate()
}

// Strategies returns the grid and baseline strategies for a backtest. The
// backtest section decides the window, portfolio size and list length; the
// score weights, pool and algorithm come from their own sections.
func (c Config) Strategies() (backtest.GridStrategy, backtest.BaselineStrategy, error) {
	po, err := c.PortfolioOptions()
	if err != nil {
		return backtest.GridStrategy{}, backtest.BaselineStrategy{}, err
	}
	po.Size = c.Backtest.PortfolioSize
	po.RecentWeeks = c.Backtest.RecencyWeeks
	grid := backtest.GridStrategy{Options: po, Candidates: c.Backtest.CandidateCount}

	bo := c.Baseline
	bo.RecencyWindow = c.Backtest.RecencyWeeks
	bo.N = c.Backtest.CandidateCount
	return grid, backtest.BaselineStrategy{Options: bo}, nil
}
