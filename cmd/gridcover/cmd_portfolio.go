// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridcover/portfolio"
)

type portfolioOutput struct {
	Portfolio  portfolio.Portfolio `json:"portfolio"`
	Algorithm  string              `json:"algorithm"`
	Candidates []int               `json:"candidates"`
}

func newPortfolioCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "portfolio",
		Short: "Select coverage centers greedily and extract the Smart-N pick list",
		RunE: func(cmd *cobra.Command, _ []string) error {
			h, err := a.loadHistory()
			if err != nil {
				return err
			}
			ov := overrides{fl: cmd.Flags()}
			ov.intFlag("size", &a.cfg.Portfolio.Size)
			ov.intFlag("pool", &a.cfg.Portfolio.PoolSize)
			ov.stringFlag("algorithm", &a.cfg.Portfolio.Algorithm)
			ov.intFlag("recent", &a.cfg.Analysis.RecentWeeks)
			ov.intFlag("candidates", &a.cfg.Portfolio.Candidates)
			if ov.err != nil {
				return ov.err
			}
			opts, err := a.cfg.PortfolioOptions()
			if err != nil {
				return err
			}
			p, err := portfolio.Build(h, opts)
			if err != nil {
				return err
			}
			out := portfolioOutput{
				Portfolio:  p,
				Algorithm:  p.Algorithm.String(),
				Candidates: portfolio.Extract(p, a.cfg.Portfolio.Candidates),
			}
			a.log.Debug().Str("algorithm", out.Algorithm).Int("universe", p.UniverseSize).Msg("portfolio built")
			return a.emit(out, func(w io.Writer) error {
				fmt.Fprintf(w, "%s portfolio over %d (draw, number) pairs\n\n", out.Algorithm, p.UniverseSize)
				fmt.Fprintln(w, "#\tCENTER\tSCORE\tGAIN\tCOVERED\tCOVERAGE\tNEIGHBORHOOD")
				for i, e := range p.Entries {
					fmt.Fprintf(w, "%d\t%d\t%.2f\t%d\t%d\t%.1f%%\t%s\n", i+1, e.Center, e.Score,
						e.MarginalGain, e.CumulativeHits, e.CoveragePercent, cells(e.Cells))
				}
				fmt.Fprintf(w, "\nsmart-%d: %s\n", len(out.Candidates), ints(out.Candidates))
				return nil
			})
		},
	}
	fl := cmd.Flags()
	fl.Int("size", portfolio.DefaultSize, "centers to select")
	fl.Int("pool", portfolio.DefaultPoolSize, "top scored centers considered")
	fl.String("algorithm", portfolio.Greedy.String(), "greedy|exact")
	fl.Int("recent", portfolio.DefaultRecentWeeks, "coverage and momentum window")
	fl.Int("candidates", portfolio.DefaultCandidates, "numbers in the pick list")
	return cmd
}
