// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridcover/backtest"
	"github.com/katalvlaran/gridcover/history"
	"github.com/katalvlaran/gridcover/metrics"
	"github.com/katalvlaran/gridcover/report"
)

type backtestOutput struct {
	RunID     string            `json:"run_id,omitempty"`
	Summary   backtest.Summary  `json:"summary"`
	Records   []backtest.Record `json:"records"`
	Artifacts *report.Artifacts `json:"artifacts,omitempty"`
}

func newBacktestCmd(a *app) *cobra.Command {
	var noWrite bool
	cmd := &cobra.Command{
		Use:   "backtest",
		Short: "Replay history week by week: grid Smart-N versus baseline",
		Long: `backtest predicts each of the newest --weeks draws using only the draws
strictly older than it, once with the grid portfolio strategy and once with
the frequency baseline, and reports hits, success rates and head to head
results. Artifacts (records.jsonl, summary.json, report.md) are written to
--out unless --no-write is set.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			h, err := a.loadHistory()
			if err != nil {
				return err
			}
			bt := &a.cfg.Backtest
			ov := overrides{fl: cmd.Flags()}
			ov.intFlag("weeks", &bt.Weeks)
			ov.intFlag("size", &bt.PortfolioSize)
			ov.intFlag("recent", &bt.RecencyWeeks)
			ov.intFlag("workers", &bt.Workers)
			ov.stringFlag("out", &a.cfg.Output.Dir)
			ov.stringFlag("metrics", &a.cfg.Output.MetricsFile)
			if ov.err != nil {
				return ov.err
			}
			return a.runBacktest(cmd, h, noWrite)
		},
	}
	fl := cmd.Flags()
	fl.Int("weeks", backtest.DefaultWeeks, "weeks to simulate")
	fl.Int("size", backtest.DefaultPortfolioSize, "centers per portfolio")
	fl.Int("recent", backtest.DefaultRecencyWeeks, "recency window and minimum past length")
	fl.Int("workers", 1, "weeks simulated concurrently")
	fl.String("out", "", "artifact directory (default from config)")
	fl.String("metrics", "", "write Prometheus metrics to this textfile")
	fl.BoolVar(&noWrite, "no-write", false, "skip writing artifacts")
	return cmd
}

func (a *app) runBacktest(cmd *cobra.Command, h history.History, noWrite bool) error {
	if err := a.cfg.Validate(); err != nil {
		return err
	}
	g, b, err := a.cfg.Strategies()
	if err != nil {
		return err
	}
	rec := metrics.NewRecorder()
	res, err := backtest.Run(cmd.Context(), h, a.cfg.Backtest,
		backtest.WithStrategies(g, b),
		backtest.WithObserver(rec),
		backtest.WithLogger(a.log),
	)
	if err != nil {
		return err
	}

	out := backtestOutput{Summary: res.Summary, Records: res.Records}
	if !noWrite && a.cfg.Output.Dir != "" {
		w := report.NewWriter(a.cfg.Output.Dir)
		art, err := w.WriteBacktest(res)
		if err != nil {
			return err
		}
		out.RunID, out.Artifacts = w.RunID(), &art
		a.log.Info().Str("run_id", w.RunID()).Str("dir", w.Dir()).Msg("artifacts written")
	}
	if path := a.cfg.Output.MetricsFile; path != "" {
		if err := rec.WriteTextfile(path); err != nil {
			return err
		}
		a.log.Info().Str("path", path).Msg("metrics written")
	}

	return a.emit(out, func(w io.Writer) error {
		s := res.Summary
		fmt.Fprintf(w, "weeks simulated\t%d\n", s.Weeks)
		fmt.Fprintln(w, "\nSTRATEGY\tAVG HITS\tSTDDEV\tSUCCESS\tHIGH\tHIGH COUNT")
		for _, st := range []backtest.StrategyStats{s.Grid, s.Baseline} {
			fmt.Fprintf(w, "%s\t%.1f\t%.2f\t%.0f%%\t%.0f%%\t%d\n",
				st.Name, st.AvgHits, st.StdDevHits, st.SuccessRate, st.HighRate, st.HighCount)
		}
		fmt.Fprintf(w, "\nhead to head\t%d wins, %d losses, %d ties\n", s.Wins, s.Losses, s.Ties)
		if out.Artifacts != nil {
			fmt.Fprintf(w, "report\t%s\n", out.Artifacts.Report)
		}
		return nil
	})
}
