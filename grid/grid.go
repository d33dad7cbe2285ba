// SPDX-License-Identifier: MIT

package grid

import "slices"

// mooreOffsets lists (dRow, dCol) for the 3×3 block around a center,
// including the center itself, in row-major order so that the resulting
// neighborhoods come out ascending without sorting.
var mooreOffsets = [9][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 0}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// table[c] holds NeighborhoodOf(c) for c in [1,49]; index 0 is unused.
var table = buildTable()

func buildTable() [MaxCell + 1]Neighborhood {
	var t [MaxCell + 1]Neighborhood
	for c := Cell(MinCell); c <= MaxCell; c++ {
		row, col := c.Row(), c.Col()
		cells := make(Neighborhood, 0, len(mooreOffsets))
		for _, d := range mooreOffsets {
			r, k := row+d[0], col+d[1]
			if !InBounds(r, k) {
				continue
			}
			cells = append(cells, CellAt(r, k))
		}
		t[c] = cells
	}
	return t
}

// NeighborhoodOf returns the cells covered by center: center ± one row and
// ± one column, clipped to the board. The result is ascending and owned by
// the caller; the lookup table itself is never handed out.
// Returns ErrCellOutOfRange for centers outside [1,49].
// Complexity: O(1).
func NeighborhoodOf(center Cell) (Neighborhood, error) {
	if !center.Valid() {
		return nil, ErrCellOutOfRange
	}
	return slices.Clone(table[center]), nil
}

// MustNeighborhood is NeighborhoodOf for centers already known to be valid.
// It panics on an invalid center (programmer error).
func MustNeighborhood(center Cell) Neighborhood {
	nb, err := NeighborhoodOf(center)
	if err != nil {
		panic(err)
	}
	return nb
}

// Centers returns all board cells in ascending order.
func Centers() []Cell {
	out := make([]Cell, 0, MaxCell)
	for c := Cell(MinCell); c <= MaxCell; c++ {
		out = append(out, c)
	}
	return out
}
