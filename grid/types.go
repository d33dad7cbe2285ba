// SPDX-License-Identifier: MIT

package grid

// Board geometry.
const (
	// Size is the number of rows (and columns) of the board.
	Size = 7
	// MinCell is the smallest cell number.
	MinCell = 1
	// MaxCell is the largest cell number and the number of centers.
	MaxCell = Size * Size
)

// Cell is a board number in [MinCell, MaxCell].
type Cell int

// Valid reports whether c lies on the board.
func (c Cell) Valid() bool {
	return c >= MinCell && c <= MaxCell
}

// Row returns the zero-based row of c.
func (c Cell) Row() int {
	return (int(c) - 1) / Size
}

// Col returns the zero-based column of c.
func (c Cell) Col() int {
	return (int(c) - 1) % Size
}

// CellAt converts zero-based (row, col) into a Cell. The caller must check
// InBounds first; out-of-board coordinates produce an invalid Cell.
func CellAt(row, col int) Cell {
	return Cell(row*Size + col + 1)
}

// InBounds reports whether (row, col) lies within the board.
// Complexity: O(1).
func InBounds(row, col int) bool {
	return row >= 0 && row < Size && col >= 0 && col < Size
}

// Neighborhood is the ascending list of cells covered by a center.
// Every Neighborhood returned by this package is a fresh copy.
type Neighborhood []Cell

// Contains reports whether n is part of the neighborhood.
// Complexity: O(|nb|) with |nb| ≤ 9.
func (nb Neighborhood) Contains(n Cell) bool {
	for _, c := range nb {
		if c == n {
			return true
		}
		if c > n {
			return false
		}
	}
	return false
}

// Coverage is the intersection of one draw with one center's neighborhood.
type Coverage struct {
	Center     Cell         `json:"center"`     // anchor cell
	Hits       int          `json:"hits"`       // |Covered|
	Covered    []Cell       `json:"covered"`    // draw ∩ Cells, ascending
	Cells      Neighborhood `json:"cells"`      // NeighborhoodOf(Center)
	Efficiency float64      `json:"efficiency"` // Hits / |Cells|, in [0,1]
}
