// SPDX-License-Identifier: MIT

// Command gridcover analyzes a draw archive on the 7×7 grid, builds coverage
// portfolios and backtests them against the frequency baseline.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/katalvlaran/gridcover/config"
	"github.com/katalvlaran/gridcover/history"
)

const (
	appName = "gridcover"
	version = "v0.4.0"
)

var errNoHistory = errors.New("no history: pass --history or set history.path")

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// app is the state shared by every subcommand.
type app struct {
	out    io.Writer
	errOut io.Writer
	cfg    config.Config
	log    zerolog.Logger

	configPath  string
	historyPath string
	order       string
	policy      string
	logLevel    string
	jsonOut     bool
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{out: out, errOut: errOut, log: zerolog.Nop()}

	root := &cobra.Command{
		Use:     appName,
		Short:   "Grid coverage portfolios and leak-free backtests for 7×7 draw archives",
		Version: version,
		Long: `gridcover mines a history of draws (numbers 1–49 laid out on a 7×7 grid)
for coverage centers, builds greedy maximum-coverage portfolios of their
neighborhoods and replays history week by week to compare the resulting
pick lists with a frequency baseline, using only data older than each target.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML configuration file")
	pf.StringVar(&a.historyPath, "history", "", "draw archive (.json or .csv)")
	pf.StringVar(&a.order, "order", "", "archive order (newest-first|oldest-first)")
	pf.StringVar(&a.policy, "policy", "", "invalid draw policy (strict|filter)")
	pf.StringVar(&a.logLevel, "log-level", "info", "log level (trace|debug|info|warn|error|disabled)")
	pf.BoolVar(&a.jsonOut, "json", false, "print results as JSON")

	root.AddCommand(
		newCoverageCmd(a),
		newAnalyzeCmd(a),
		newRankCmd(a),
		newPortfolioCmd(a),
		newRegionsCmd(a),
		newBaselineCmd(a),
		newBacktestCmd(a),
		newDemoCmd(a),
	)
	return root
}

// setup configures logging, loads the configuration and applies flag
// overrides.
func (a *app) setup(cmd *cobra.Command) error {
	logger, err := newLogger(a.logLevel, a.errOut)
	if err != nil {
		return err
	}
	a.log = logger

	a.cfg = config.Default()
	if a.configPath != "" {
		if a.cfg, err = config.Load(a.configPath); err != nil {
			return err
		}
		a.log.Debug().Str("path", a.configPath).Msg("configuration loaded")
	}
	ov := overrides{fl: cmd.Flags()}
	ov.stringFlag("history", &a.cfg.History.Path)
	ov.stringFlag("order", &a.cfg.History.Order)
	ov.stringFlag("policy", &a.cfg.History.Policy)
	if ov.err != nil {
		return ov.err
	}
	return a.cfg.Validate()
}

// newLogger writes human readable logs to a terminal and JSON lines to
// anything else.
func newLogger(level string, w io.Writer) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("invalid --log-level %q: %w", level, err)
	}
	zerolog.TimeFieldFormat = time.RFC3339
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		w = zerolog.ConsoleWriter{Out: f, TimeFormat: time.Kitchen}
	}
	return zerolog.New(w).Level(lvl).With().Timestamp().Str("app", appName).Logger(), nil
}

// loadHistory reads the configured archive.
func (a *app) loadHistory() (history.History, error) {
	if a.cfg.History.Path == "" {
		return history.History{}, errNoHistory
	}
	order, err := a.cfg.Order()
	if err != nil {
		return history.History{}, err
	}
	policy, err := a.cfg.Policy()
	if err != nil {
		return history.History{}, err
	}
	h, rejected, err := history.Load(a.cfg.History.Path, order, policy)
	if err != nil {
		return history.History{}, fmt.Errorf("load %s: %w", a.cfg.History.Path, err)
	}
	for _, r := range rejected {
		a.log.Warn().Int("index", r.Index).Str("id", r.ID).Err(r.Err).Msg("draw rejected")
	}
	a.log.Info().
		Str("path", a.cfg.History.Path).
		Str("order", order.String()).
		Int("draws", h.Len()).
		Int("rejected", len(rejected)).
		Msg("history loaded")
	return h, nil
}
