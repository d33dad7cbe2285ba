package grid_test

import (
	"testing"

	"github.com/katalvlaran/gridcover/grid"
	"github.com/stretchr/testify/require"
)

//----------------------------------------------------------------------------//
// Geometry
//----------------------------------------------------------------------------//

// TestCellGeometry checks the row/col mapping at the four corners and center.
func TestCellGeometry(t *testing.T) {
	cases := []struct {
		cell     grid.Cell
		row, col int
	}{
		{1, 0, 0}, {7, 0, 6}, {25, 3, 3}, {43, 6, 0}, {49, 6, 6}, {10, 1, 2},
	}
	for _, tc := range cases {
		require.Equal(t, tc.row, tc.cell.Row(), "row of %d", tc.cell)
		require.Equal(t, tc.col, tc.cell.Col(), "col of %d", tc.cell)
		require.Equal(t, tc.cell, grid.CellAt(tc.row, tc.col))
	}
	require.False(t, grid.Cell(0).Valid())
	require.False(t, grid.Cell(50).Valid())
}

// expectedSize is the enumerable size table: 4 at corners, 6 on edges, 9 inside.
func expectedSize(c grid.Cell) int {
	edgeRow := c.Row() == 0 || c.Row() == grid.Size-1
	edgeCol := c.Col() == 0 || c.Col() == grid.Size-1
	switch {
	case edgeRow && edgeCol:
		return 4
	case edgeRow || edgeCol:
		return 6
	default:
		return 9
	}
}

// TestNeighborhoodBounds verifies every center: in-range cells, contains the
// center, ascending, and sized per the corner/edge/interior table.
func TestNeighborhoodBounds(t *testing.T) {
	sizes := map[int]int{}
	for _, c := range grid.Centers() {
		nb, err := grid.NeighborhoodOf(c)
		require.NoError(t, err)
		require.Len(t, nb, expectedSize(c), "center %d", c)
		require.True(t, nb.Contains(c), "center %d must cover itself", c)
		for i, n := range nb {
			require.True(t, n.Valid(), "center %d covers %d", c, n)
			if i > 0 {
				require.Less(t, nb[i-1], n, "neighborhood of %d not ascending", c)
			}
			dr, dc := n.Row()-c.Row(), n.Col()-c.Col()
			require.True(t, dr >= -1 && dr <= 1 && dc >= -1 && dc <= 1)
		}
		sizes[len(nb)]++
	}
	require.Equal(t, map[int]int{4: 4, 6: 20, 9: 25}, sizes)
}

// TestNeighborhood_Known pins a corner, an edge and the interior example.
func TestNeighborhood_Known(t *testing.T) {
	require.Equal(t, grid.Neighborhood{1, 2, 8, 9}, grid.MustNeighborhood(1))
	require.Equal(t, grid.Neighborhood{3, 4, 5, 10, 11, 12}, grid.MustNeighborhood(4))
	require.Equal(t, grid.Neighborhood{2, 3, 4, 9, 10, 11, 16, 17, 18}, grid.MustNeighborhood(10))
	require.Equal(t, grid.Neighborhood{41, 42, 48, 49}, grid.MustNeighborhood(49))
}

// TestNeighborhood_OutOfRange rejects centers off the board.
func TestNeighborhood_OutOfRange(t *testing.T) {
	for _, c := range []grid.Cell{-1, 0, 50} {
		_, err := grid.NeighborhoodOf(c)
		require.ErrorIs(t, err, grid.ErrCellOutOfRange)
	}
	require.Panics(t, func() { grid.MustNeighborhood(0) })
}

// TestNeighborhood_CallerOwnsCopy writes into every returned slice and checks
// that later lookups and rankings are unaffected.
func TestNeighborhood_CallerOwnsCopy(t *testing.T) {
	nb := grid.MustNeighborhood(10)
	nb[0] = 49

	cov, err := grid.CoverageOf([]grid.Cell{49}, 10)
	require.NoError(t, err)
	cov.Cells[0] = 49

	best := grid.BestCenters([]grid.Cell{49}, 1)
	require.Len(t, best, 1)
	best[0].Cells[0] = 10

	require.Equal(t, grid.Neighborhood{2, 3, 4, 9, 10, 11, 16, 17, 18}, grid.MustNeighborhood(10))
	require.Equal(t, grid.Neighborhood{41, 42, 48, 49}, grid.MustNeighborhood(49))
	require.Equal(t, grid.Cell(41), grid.BestCenters([]grid.Cell{49}, 1)[0].Center)
	require.Equal(t, grid.Cell(41), grid.BestCenter([]grid.Cell{49}))
	require.Zero(t, grid.HitsByCenter([]grid.Cell{49})[10])
}

//----------------------------------------------------------------------------//
// Coverage
//----------------------------------------------------------------------------//

// TestCoverage_HandComputed matches the worked example for center 10.
func TestCoverage_HandComputed(t *testing.T) {
	draw := []grid.Cell{2, 9, 15, 27, 38, 40}
	cov, err := grid.CoverageOf(draw, 10)
	require.NoError(t, err)
	require.Equal(t, 2, cov.Hits)
	require.Equal(t, []grid.Cell{2, 9}, cov.Covered)
	require.Len(t, cov.Cells, 9)
	require.InDelta(t, 2.0/9.0, cov.Efficiency, 1e-12)

	_, err = grid.CoverageOf(draw, 0)
	require.ErrorIs(t, err, grid.ErrCellOutOfRange)
}

// TestCoverage_Monotonic checks hits ≤ min(|draw|, |neighborhood|) for all centers.
func TestCoverage_Monotonic(t *testing.T) {
	draws := [][]grid.Cell{
		{1, 2, 8, 9, 10, 16},
		{3, 17, 24, 25, 26, 33},
		{7, 14, 21, 28, 35, 49},
		{40},
	}
	for _, d := range draws {
		byCenter := grid.HitsByCenter(d)
		for _, c := range grid.Centers() {
			cov, err := grid.CoverageOf(d, c)
			require.NoError(t, err)
			limit := min(len(d), len(cov.Cells))
			require.LessOrEqual(t, cov.Hits, limit)
			require.Equal(t, cov.Hits, byCenter[c])
		}
	}
}

// TestBestCenters_TieBreak verifies ties resolve by ascending center id and
// the result is independent of the draw's number order.
func TestBestCenters_TieBreak(t *testing.T) {
	top := grid.BestCenters([]grid.Cell{1}, 5)
	require.Len(t, top, 5)
	got := []grid.Cell{top[0].Center, top[1].Center, top[2].Center, top[3].Center}
	require.Equal(t, []grid.Cell{1, 2, 8, 9}, got)
	require.Equal(t, 0, top[4].Hits)
	require.Equal(t, grid.Cell(3), top[4].Center)

	a := grid.BestCenters([]grid.Cell{17, 25, 33, 5, 45}, 49)
	b := grid.BestCenters([]grid.Cell{45, 5, 33, 25, 17}, 49)
	require.Equal(t, a, b)
	require.Equal(t, a[0].Center, grid.BestCenter([]grid.Cell{33, 45, 5, 17, 25}))
}

// TestBestCenters_Clamp covers topN outside [0,49].
func TestBestCenters_Clamp(t *testing.T) {
	draw := []grid.Cell{1, 2, 3}
	require.Empty(t, grid.BestCenters(draw, 0))
	require.Empty(t, grid.BestCenters(draw, -3))
	require.Len(t, grid.BestCenters(draw, 100), grid.MaxCell)
}

// TestBestCenter_MatchesRanking cross-checks the fast path against BestCenters.
func TestBestCenter_MatchesRanking(t *testing.T) {
	draws := [][]grid.Cell{
		{2, 9, 15, 27, 38, 40},
		{1, 7, 43, 49, 25, 24},
		{11, 12, 18, 19, 30, 44},
	}
	for _, d := range draws {
		require.Equal(t, grid.BestCenters(d, 1)[0].Center, grid.BestCenter(d))
	}
}
