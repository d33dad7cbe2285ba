// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridcover/baseline"
)

type baselineOutput struct {
	Numbers []int                  `json:"numbers"`
	Ranked  []baseline.NumberScore `json:"ranked"`
}

func newBaselineCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "baseline",
		Short: "Rank single numbers by frequency, recency and gap",
		RunE: func(cmd *cobra.Command, _ []string) error {
			h, err := a.loadHistory()
			if err != nil {
				return err
			}
			opts := a.cfg.Baseline
			ov := overrides{fl: cmd.Flags()}
			ov.intFlag("n", &opts.N)
			ov.intFlag("recent", &opts.RecencyWindow)
			if ov.err != nil {
				return ov.err
			}
			ranked, err := baseline.Rank(h, opts)
			if err != nil {
				return err
			}
			nums, err := baseline.Top(h, opts)
			if err != nil {
				return err
			}
			out := baselineOutput{Numbers: nums, Ranked: ranked[:len(nums)]}
			return a.emit(out, func(w io.Writer) error {
				fmt.Fprintln(w, "RANK\tNUMBER\tSCORE\tFREQ\tRECENT\tGAP")
				for i, s := range out.Ranked {
					fmt.Fprintf(w, "%d\t%d\t%.4f\t%d\t%d\t%d\n", i+1, s.Number, s.Score, s.Frequency, s.Recent, s.Gap)
				}
				fmt.Fprintf(w, "\nbaseline-%d: %s\n", len(nums), ints(nums))
				return nil
			})
		},
	}
	cmd.Flags().Int("n", baseline.DefaultN, "numbers to pick")
	cmd.Flags().Int("recent", baseline.DefaultRecencyWindow, "recency window")
	return cmd
}
