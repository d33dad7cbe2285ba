// SPDX-License-Identifier: MIT

package backtest

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/gridcover/history"
)

// Harness runs backtests for a fixed Config and strategy pair.
type Harness struct {
	cfg      Config
	grid     Strategy
	baseline Strategy
	observer Observer
	log      zerolog.Logger

	// past returns the draws visible when predicting week i.
	past func(h history.History, i int) history.History
}

// Option customizes a Harness.
type Option func(*Harness) error

// WithStrategies replaces the built-in grid and baseline strategies.
func WithStrategies(grid, base Strategy) Option {
	return func(h *Harness) error {
		if grid == nil || base == nil {
			return ErrNilStrategy
		}
		h.grid, h.baseline = grid, base
		return nil
	}
}

// WithObserver attaches an Observer, e.g. a metrics recorder.
func WithObserver(o Observer) Option {
	return func(h *Harness) error {
		h.observer = o
		return nil
	}
}

// WithLogger sets the logger; the default discards everything.
func WithLogger(l zerolog.Logger) Option {
	return func(h *Harness) error {
		h.log = l
		return nil
	}
}

// New validates cfg and returns a Harness using GridStrategy and
// BaselineStrategy derived from cfg unless WithStrategies overrides them.
func New(cfg Config, opts ...Option) (*Harness, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	h := &Harness{
		cfg:      cfg,
		grid:     NewGridStrategy(cfg),
		baseline: NewBaselineStrategy(cfg),
		log:      zerolog.Nop(),
		past:     strictlyOlder,
	}
	for _, opt := range opts {
		if err := opt(h); err != nil {
			return nil, err
		}
	}
	return h, nil
}

// Config returns the harness configuration.
func (h *Harness) Config() Config { return h.cfg }

func strictlyOlder(h history.History, i int) history.History { return h.Older(i) }

// Weeks returns how many weeks Run will simulate on hist.
func (h *Harness) Weeks(hist history.History) int {
	limit := min(h.cfg.Weeks, hist.Len()-h.cfg.RecencyWeeks-1)
	n := 0
	for ; n < limit; n++ {
		if h.past(hist, n).Len() < h.cfg.RecencyWeeks {
			break
		}
	}
	return n
}

// Run simulates every eligible week of hist (read newest-first) and
// returns the records in week order with their summary.
func (h *Harness) Run(ctx context.Context, hist history.History) (Result, error) {
	weeks := h.Weeks(hist)
	records := make([]Record, weeks)
	h.log.Info().
		Int("draws", hist.Len()).
		Int("weeks", weeks).
		Int("workers", max(h.cfg.Workers, 1)).
		Str("grid", h.grid.Name()).
		Str("baseline", h.baseline.Name()).
		Msg("backtest started")

	if h.cfg.Workers > 1 {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(h.cfg.Workers)
		for i := 0; i < weeks; i++ {
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				rec, err := h.week(hist, i)
				if err != nil {
					return err
				}
				records[i] = rec
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return Result{}, err
		}
	} else {
		for i := 0; i < weeks; i++ {
			if err := ctx.Err(); err != nil {
				return Result{}, err
			}
			rec, err := h.week(hist, i)
			if err != nil {
				return Result{}, err
			}
			records[i] = rec
		}
	}

	for _, rec := range records {
		h.log.Debug().
			Int("week", rec.Week).
			Str("draw", rec.DrawID).
			Int("grid_hits", rec.Grid.Hits).
			Int("baseline_hits", rec.Baseline.Hits).
			Msg("week simulated")
		if h.observer != nil {
			h.observer.ObserveWeek(rec)
		}
	}

	sum := Summarize(records, h.cfg)
	sum.Grid.Name, sum.Baseline.Name = h.grid.Name(), h.baseline.Name()
	if h.observer != nil {
		h.observer.ObserveSummary(sum)
	}
	h.log.Info().
		Int("weeks", sum.Weeks).
		Float64("avg_hits", sum.Grid.AvgHits).
		Float64("avg_baseline_hits", sum.Baseline.AvgHits).
		Float64("success_rate", sum.Grid.SuccessRate).
		Int("wins", sum.Wins).
		Int("losses", sum.Losses).
		Msg("backtest finished")

	return Result{Config: h.cfg, Records: records, Summary: sum}, nil
}

// week predicts target At(i) from the past view and scores both strategies.
func (h *Harness) week(hist history.History, i int) (Record, error) {
	target := hist.MustAt(i)
	past := h.past(hist, i)

	rec := Record{Week: i, DrawID: target.ID(), Target: target.Ints(), PastDraws: past.Len()}
	var err error
	if rec.Grid, err = evaluate(h.grid, past, target); err != nil {
		return Record{}, fmt.Errorf("week %d: %w", i, err)
	}
	if rec.Baseline, err = evaluate(h.baseline, past, target); err != nil {
		return Record{}, fmt.Errorf("week %d: %w", i, err)
	}
	return rec, nil
}

func evaluate(s Strategy, past history.History, target history.Draw) (Outcome, error) {
	p, err := s.Predict(past)
	if err != nil {
		return Outcome{}, fmt.Errorf("%s: %w", s.Name(), err)
	}
	return Outcome{Strategy: s.Name(), Prediction: p, Hits: target.CountHits(p.Numbers)}, nil
}

// Run is a convenience wrapper: New(cfg) followed by Run.
func Run(ctx context.Context, hist history.History, cfg Config, opts ...Option) (Result, error) {
	h, err := New(cfg, opts...)
	if err != nil {
		return Result{}, err
	}
	return h.Run(ctx, hist)
}
