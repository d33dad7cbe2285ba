// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridcover/history"
	"github.com/katalvlaran/gridcover/report"
	"github.com/katalvlaran/gridcover/synth"
)

func newDemoCmd(a *app) *cobra.Command {
	var (
		opts = synth.DefaultOptions()
		save string
	)
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Generate a synthetic history and backtest it, or save it as an archive",
		Example: `  gridcover demo --draws 200 --bias 0.3
  gridcover demo --save draws.json && gridcover backtest --history draws.json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			h, err := synth.Generate(opts)
			if err != nil {
				return err
			}
			a.log.Info().Int("draws", h.Len()).Int64("seed", opts.Seed).Float64("bias", opts.Bias).Msg("synthetic history generated")
			if save != "" {
				if err := saveArchive(save, h); err != nil {
					return err
				}
				return a.emit(map[string]any{"path": save, "draws": h.Len()}, func(w io.Writer) error {
					fmt.Fprintf(w, "wrote %d draws to %s (newest first)\n", h.Len(), save)
					return nil
				})
			}
			return a.runBacktest(cmd, h, true)
		},
	}
	fl := cmd.Flags()
	fl.IntVar(&opts.Draws, "draws", opts.Draws, "draws to generate")
	fl.IntVar(&opts.PerDraw, "per-draw", opts.PerDraw, "numbers per draw")
	fl.Int64Var(&opts.Seed, "seed", 0, "random seed (0 = fixed default)")
	fl.Float64Var(&opts.Bias, "bias", 0, "probability of drawing from the hidden hot neighborhood")
	fl.StringVar(&save, "save", "", "write the history as a JSON archive instead of backtesting")
	return cmd
}

// saveArchive writes h newest-first in the {"id", "numbers"} archive shape.
func saveArchive(path string, h history.History) error {
	type entry struct {
		ID      string `json:"id"`
		Numbers []int  `json:"numbers"`
	}
	entries := make([]entry, 0, h.Len())
	h.Each(func(i int, d history.Draw) bool {
		entries = append(entries, entry{ID: fmt.Sprintf("S%04d", h.Len()-i), Numbers: d.Ints()})
		return true
	})
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	if err := report.WriteJSON(f, entries); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
