// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridcover/grid"
	"github.com/katalvlaran/gridcover/history"
)

func newCoverageCmd(a *app) *cobra.Command {
	var (
		draw   []int
		center int
		top    int
	)
	cmd := &cobra.Command{
		Use:   "coverage",
		Short: "Show how a single draw is covered by grid neighborhoods",
		Example: `  gridcover coverage --draw 2,9,15,27,38,40
  gridcover coverage --draw 2,9,15,27,38,40 --center 10`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			d, err := history.NewDraw(draw...)
			if err != nil {
				return fmt.Errorf("--draw: %w", err)
			}
			if cmd.Flags().Changed("center") {
				cov, err := grid.CoverageOf(d.Cells(), grid.Cell(center))
				if err != nil {
					return fmt.Errorf("--center: %w", err)
				}
				return a.emit(cov, func(w io.Writer) error {
					fmt.Fprintf(w, "center\t%d\n", cov.Center)
					fmt.Fprintf(w, "neighborhood\t%s\n", cells(cov.Cells))
					fmt.Fprintf(w, "covered\t%s\n", cells(cov.Covered))
					fmt.Fprintf(w, "hits\t%d\n", cov.Hits)
					fmt.Fprintf(w, "efficiency\t%.3f\n", cov.Efficiency)
					return nil
				})
			}
			best := grid.BestCenters(d.Cells(), top)
			return a.emit(best, func(w io.Writer) error {
				fmt.Fprintln(w, "RANK\tCENTER\tHITS\tEFFICIENCY\tCOVERED")
				for i, c := range best {
					fmt.Fprintf(w, "%d\t%d\t%d\t%.3f\t%s\n", i+1, c.Center, c.Hits, c.Efficiency, cells(c.Covered))
				}
				return nil
			})
		},
	}
	cmd.Flags().IntSliceVar(&draw, "draw", nil, "draw numbers, comma separated")
	cmd.Flags().IntVar(&center, "center", 0, "report a single center instead of the ranking")
	cmd.Flags().IntVar(&top, "top", 5, "centers to list")
	_ = cmd.MarkFlagRequired("draw")
	return cmd
}
