// SPDX-License-Identifier: MIT

package history

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/gridcover/grid"
)

// Draw is one historical result: a non-empty ascending set of distinct cells.
// The zero Draw is empty and is never produced by NewDraw.
type Draw struct {
	id    string
	cells []grid.Cell
}

// NewDraw validates nums and returns them as a Draw. Input order is
// irrelevant; the result is ascending.
//
// Errors: ErrEmptyDraw, ErrOutOfRange, ErrDuplicateNumber (wrapped with the
// offending value).
//
// Complexity: O(k log k) for k numbers.
func NewDraw(nums ...int) (Draw, error) {
	if len(nums) == 0 {
		return Draw{}, ErrEmptyDraw
	}
	cells := make([]grid.Cell, len(nums))
	for i, n := range nums {
		c := grid.Cell(n)
		if !c.Valid() {
			return Draw{}, fmt.Errorf("%w: %d", ErrOutOfRange, n)
		}
		cells[i] = c
	}
	sort.Slice(cells, func(i, j int) bool { return cells[i] < cells[j] })
	for i := 1; i < len(cells); i++ {
		if cells[i] == cells[i-1] {
			return Draw{}, fmt.Errorf("%w: %d", ErrDuplicateNumber, cells[i])
		}
	}
	return Draw{cells: cells}, nil
}

// MustDraw is NewDraw for literals in tests and examples; it panics on error.
func MustDraw(nums ...int) Draw {
	d, err := NewDraw(nums...)
	if err != nil {
		panic(err)
	}
	return d
}

// WithID returns a copy of d labelled with id (draw number, date, …).
func (d Draw) WithID(id string) Draw {
	d.id = id
	return d
}

// ID returns the optional archive label of d.
func (d Draw) ID() string { return d.id }

// Len returns the number of cells in d.
func (d Draw) Len() int { return len(d.cells) }

// Cells returns the ascending cells of d. The slice is shared; do not mutate.
func (d Draw) Cells() []grid.Cell { return d.cells }

// Ints returns a fresh ascending []int copy of d's numbers.
func (d Draw) Ints() []int {
	out := make([]int, len(d.cells))
	for i, c := range d.cells {
		out[i] = int(c)
	}
	return out
}

// Contains reports whether n is in d.
// Complexity: O(log k).
func (d Draw) Contains(n int) bool {
	i := sort.Search(len(d.cells), func(i int) bool { return int(d.cells[i]) >= n })
	return i < len(d.cells) && int(d.cells[i]) == n
}

// CountHits returns |nums ∩ d|; nums is assumed duplicate-free.
// Complexity: O(|nums| log k).
func (d Draw) CountHits(nums []int) int {
	hits := 0
	for _, n := range nums {
		if d.Contains(n) {
			hits++
		}
	}
	return hits
}
