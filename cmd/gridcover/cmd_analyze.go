// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridcover/frequency"
)

type analyzeOutput struct {
	Report frequency.Report        `json:"report"`
	Trend  []frequency.TrendWindow `json:"trend,omitempty"`
}

func newAnalyzeCmd(a *app) *cobra.Command {
	var (
		top   int
		trend []int
	)
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Per-center best-match frequency, recency and gap statistics",
		RunE: func(cmd *cobra.Command, _ []string) error {
			h, err := a.loadHistory()
			if err != nil {
				return err
			}
			opts := a.cfg.FrequencyOptions()
			ov := overrides{fl: cmd.Flags()}
			ov.intFlag("recent", &opts.RecentWeeks)
			if ov.err != nil {
				return ov.err
			}
			rep, err := frequency.Analyze(h, opts)
			if err != nil {
				return err
			}
			out := analyzeOutput{Report: rep}
			if len(trend) > 0 {
				if out.Trend, err = frequency.Trend(h, trend); err != nil {
					return err
				}
			}
			return a.emit(out, func(w io.Writer) error {
				fmt.Fprintf(w, "draws %d, recent window %d\n\n", rep.Draws, rep.RecentWeeks)
				fmt.Fprintln(w, "CENTER\tALL-TIME\tSHARE\tRECENT\tGAP\tAVG COVERAGE")
				ranked := rep.Ranked()
				if top > 0 && top < len(ranked) {
					ranked = ranked[:top]
				}
				for _, st := range ranked {
					fmt.Fprintf(w, "%d\t%d\t%.1f%%\t%d\t%d\t%.2f\n",
						st.Center, st.AllTimeCount, st.Percentage, st.RecentCount, st.Gap, st.AverageCoverage)
				}
				for _, tw := range out.Trend {
					fmt.Fprintf(w, "\ntrend over %d draws: top center %d (%d times)\n", tw.Draws, tw.Top, topCount(tw))
				}
				return nil
			})
		},
	}
	cmd.Flags().Int("recent", 0, "recent window (default from config)")
	cmd.Flags().IntVar(&top, "top", 10, "centers to list; 0 for all")
	cmd.Flags().IntSliceVar(&trend, "trend", nil, "also tally best centers over these recent windows")
	return cmd
}

func topCount(tw frequency.TrendWindow) int {
	if !tw.Top.Valid() {
		return 0
	}
	return tw.Counts[tw.Top-1]
}
