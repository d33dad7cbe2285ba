package frequency_test

import (
	"testing"

	"github.com/katalvlaran/gridcover/frequency"
	"github.com/katalvlaran/gridcover/grid"
	"github.com/katalvlaran/gridcover/history"
	"github.com/stretchr/testify/require"
)

// fixture returns four newest-first draws whose best centers are 1, 41, 1, 18.
func fixture() history.History {
	return history.MustNew(history.NewestFirst,
		history.MustDraw(1, 2, 8, 9),
		history.MustDraw(41, 42, 48, 49),
		history.MustDraw(1, 2, 8, 9),
		history.MustDraw(24, 25, 26),
	)
}

// TestBestCenterSeries pins the per-draw best centers of the fixture.
func TestBestCenterSeries(t *testing.T) {
	require.Equal(t, []grid.Cell{1, 41, 1, 18}, frequency.BestCenterSeries(fixture()))
}

// TestGaps checks first-seen distance and the never-best convention.
func TestGaps(t *testing.T) {
	gaps := frequency.Gaps([]grid.Cell{1, 41, 1, 18}, 4)
	require.Len(t, gaps, grid.MaxCell)
	require.Equal(t, 0, gaps[0])
	require.Equal(t, 1, gaps[40])
	require.Equal(t, 3, gaps[17])
	require.Equal(t, 4, gaps[24])
}

// TestAnalyze verifies the counters, gap and average coverage.
func TestAnalyze(t *testing.T) {
	rep, err := frequency.Analyze(fixture(), frequency.Options{RecentWeeks: 2})
	require.NoError(t, err)
	require.Equal(t, 4, rep.Draws)
	require.Equal(t, 2, rep.RecentWeeks)

	c1 := rep.Stats(1)
	require.Equal(t, 2, c1.AllTimeCount)
	require.Equal(t, 1, c1.RecentCount)
	require.Equal(t, 0, c1.Gap)
	require.InDelta(t, 2.0, c1.AverageCoverage, 1e-12)
	require.InDelta(t, 50.0, c1.Percentage, 1e-12)

	c41 := rep.Stats(41)
	require.Equal(t, 1, c41.AllTimeCount)
	require.Equal(t, 1, c41.RecentCount)
	require.Equal(t, 1, c41.Gap)

	c18 := rep.Stats(18)
	require.Equal(t, 1, c18.AllTimeCount)
	require.Equal(t, 0, c18.RecentCount)
	require.Equal(t, 3, c18.Gap)

	never := rep.Stats(25)
	require.Zero(t, never.AllTimeCount)
	require.Equal(t, 4, never.Gap)
	// 25 covers 24,25,26 of the last draw only
	require.InDelta(t, 0.75, never.AverageCoverage, 1e-12)

	total := 0
	for _, st := range rep.Centers {
		total += st.AllTimeCount
	}
	require.Equal(t, rep.Draws, total)

	ranked := rep.Ranked()
	require.Equal(t, grid.Cell(1), ranked[0].Center)
	require.Equal(t, grid.Cell(18), ranked[1].Center)
	require.Equal(t, grid.Cell(41), ranked[2].Center)
	require.Equal(t, frequency.CenterStats{}, rep.Stats(0))
}

// TestAnalyze_WindowEdges covers the "0 means all" and empty-history rules.
func TestAnalyze_WindowEdges(t *testing.T) {
	rep, err := frequency.Analyze(fixture(), frequency.Options{})
	require.NoError(t, err)
	require.Equal(t, 4, rep.RecentWeeks)
	require.Equal(t, 2, rep.Stats(1).RecentCount)

	rep, err = frequency.Analyze(fixture(), frequency.Options{RecentWeeks: 100})
	require.NoError(t, err)
	require.Equal(t, 4, rep.RecentWeeks)

	empty := history.MustNew(history.NewestFirst)
	rep, err = frequency.Analyze(empty, frequency.DefaultOptions())
	require.NoError(t, err)
	require.Zero(t, rep.Draws)
	for _, st := range rep.Centers {
		require.Zero(t, st.AverageCoverage)
		require.Zero(t, st.Percentage)
		require.Zero(t, st.Gap)
	}

	_, err = frequency.Analyze(fixture(), frequency.Options{RecentWeeks: -1})
	require.ErrorIs(t, err, frequency.ErrNegativeWindow)
}

// TestAnalyze_OrderInvariant gets identical stats from either storage order.
func TestAnalyze_OrderInvariant(t *testing.T) {
	h := fixture()
	draws := h.Draws()
	reversed := make([]history.Draw, len(draws))
	for i, d := range draws {
		reversed[len(draws)-1-i] = d
	}
	of := history.MustNew(history.OldestFirst, reversed...)

	a, err := frequency.Analyze(h, frequency.DefaultOptions())
	require.NoError(t, err)
	b, err := frequency.Analyze(of, frequency.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, a, b)
}

// TestTrend tallies nested recent windows.
func TestTrend(t *testing.T) {
	tw, err := frequency.Trend(fixture(), []int{1, 3, 0})
	require.NoError(t, err)
	require.Len(t, tw, 3)

	require.Equal(t, 1, tw[0].Draws)
	require.Equal(t, grid.Cell(1), tw[0].Top)
	require.Equal(t, 1, tw[0].Counts[0])

	require.Equal(t, 3, tw[1].Draws)
	require.Equal(t, 2, tw[1].Counts[0])
	require.Equal(t, 1, tw[1].Counts[40])

	require.Equal(t, 4, tw[2].Draws)
	require.Equal(t, 1, tw[2].Counts[17])

	_, err = frequency.Trend(fixture(), []int{-2})
	require.ErrorIs(t, err, frequency.ErrNegativeWindow)
}
