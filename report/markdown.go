// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/gridcover/backtest"
)

// Markdown renders a backtest as a markdown report.
func Markdown(meta Meta, res backtest.Result) string {
	var b strings.Builder
	s, cfg := res.Summary, res.Config

	b.WriteString("# Grid Coverage Backtest Report\n\n")
	fmt.Fprintf(&b, "**Run**: %s\n", meta.RunID)
	fmt.Fprintf(&b, "**Generated**: %s\n", meta.GeneratedAt.Format("2006-01-02 15:04:05 UTC"))
	fmt.Fprintf(&b, "**Configuration**: Weeks=%d, PortfolioSize=%d, RecencyWeeks=%d, Candidates=%d\n\n",
		cfg.Weeks, cfg.PortfolioSize, cfg.RecencyWeeks, cfg.CandidateCount)

	b.WriteString("## Summary\n\n")
	fmt.Fprintf(&b, "- **Weeks simulated**: %d\n", s.Weeks)
	fmt.Fprintf(&b, "- **Head to head**: %d wins, %d losses, %d ties\n\n", s.Wins, s.Losses, s.Ties)

	fmt.Fprintf(&b, "| Strategy | Avg Hits | StdDev | Success (≥%d) | High (≥%d) | High Count |\n",
		cfg.SuccessHits, cfg.HighHits)
	b.WriteString("|----------|---------:|-------:|--------:|--------:|-----------:|\n")
	for _, st := range []backtest.StrategyStats{s.Grid, s.Baseline} {
		fmt.Fprintf(&b, "| %s | %.2f | %.2f | %.1f%% | %.1f%% | %d |\n",
			st.Name, st.AvgHits, st.StdDevHits, st.SuccessRate, st.HighRate, st.HighCount)
	}
	b.WriteString("\n")

	b.WriteString("## Weeks\n\n")
	if len(res.Records) == 0 {
		b.WriteString("No weeks simulated: history too short for the recency window.\n")
		return b.String()
	}
	b.WriteString("| Week | Draw | Target | Centers | Grid Hits | Baseline Hits |\n")
	b.WriteString("|-----:|------|--------|---------|----------:|--------------:|\n")
	for _, r := range res.Records {
		id := r.DrawID
		if id == "" {
			id = "-"
		}
		fmt.Fprintf(&b, "| %d | %s | %s | %s | %d | %d |\n",
			r.Week, id, joinInts(r.Target), joinCells(r.Grid.Centers), r.Grid.Hits, r.Baseline.Hits)
	}
	return b.String()
}

func joinInts(nums []int) string {
	parts := make([]string, len(nums))
	for i, n := range nums {
		parts[i] = fmt.Sprint(n)
	}
	return strings.Join(parts, " ")
}

func joinCells[T ~int](cells []T) string {
	parts := make([]string, len(cells))
	for i, c := range cells {
		parts[i] = fmt.Sprint(int(c))
	}
	if len(parts) == 0 {
		return "-"
	}
	return strings.Join(parts, " ")
}
