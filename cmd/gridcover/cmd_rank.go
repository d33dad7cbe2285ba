// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridcover/score"
)

func newRankCmd(a *app) *cobra.Command {
	var top int
	cmd := &cobra.Command{
		Use:   "rank",
		Short: "Score every center (frequency, momentum, gap bonus, quality)",
		RunE: func(_ *cobra.Command, _ []string) error {
			h, err := a.loadHistory()
			if err != nil {
				return err
			}
			opts, err := a.cfg.ScoreOptions()
			if err != nil {
				return err
			}
			ranked, err := score.Top(h, top, opts)
			if err != nil {
				return err
			}
			return a.emit(ranked, func(w io.Writer) error {
				fmt.Fprintln(w, "RANK\tCENTER\tSCORE\tBASE\tMOMENTUM\tGAP BONUS\tQUALITY")
				for i, sc := range ranked {
					fmt.Fprintf(w, "%d\t%d\t%.2f\t%.0f\t%.0f\t%.0f\t%.2f\n", i+1, sc.Center, sc.Score,
						sc.Components.Base, sc.Components.Momentum, sc.Components.GapBonus, sc.Components.Quality)
				}
				return nil
			})
		},
	}
	cmd.Flags().IntVar(&top, "top", 10, "centers to list")
	return cmd
}
