// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridcover/region"
)

func newRegionsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "regions",
		Short: "Heatmap of best centers over the 3×3 macro regions",
		RunE: func(_ *cobra.Command, _ []string) error {
			h, err := a.loadHistory()
			if err != nil {
				return err
			}
			hm := region.Aggregate(h)
			return a.emit(hm, func(w io.Writer) error {
				fmt.Fprintf(w, "best centers of %d draws by region\n\n", hm.Total)
				for _, row := range hm.Cells {
					for _, z := range row {
						fmt.Fprintf(w, "Z%d %4d (%5.1f%%)\t", z.ID, z.Count, z.Percent)
					}
					fmt.Fprintln(w)
				}
				if hot := hm.Hottest(); hm.Total > 0 {
					fmt.Fprintf(w, "\nhottest: zone %d\n", hot[0].ID)
				}
				return nil
			})
		},
	}
}
