// SPDX-License-Identifier: MIT

package portfolio

import (
	"github.com/katalvlaran/gridcover/grid"
	"github.com/katalvlaran/gridcover/history"
)

// Pair is one element of the coverage universe: a number in a given draw.
type Pair struct {
	Draw   int       // newest-first index within the window
	Number grid.Cell // number drawn
}

// Universe is the flattened multiset of (draw, number) pairs of a window,
// indexed by number for fast gain evaluation.
type Universe struct {
	pairs    []Pair
	byNumber [grid.MaxCell + 1][]int // pair ids per number
}

// NewUniverse flattens every draw of window. Draws are duplicate-free, so
// every pair is distinct.
// Complexity: O(total numbers).
func NewUniverse(window history.History) *Universe {
	u := &Universe{}
	window.Each(func(i int, d history.Draw) bool {
		for _, n := range d.Cells() {
			u.byNumber[n] = append(u.byNumber[n], len(u.pairs))
			u.pairs = append(u.pairs, Pair{Draw: i, Number: n})
		}
		return true
	})
	return u
}

// Size returns the number of pairs.
func (u *Universe) Size() int { return len(u.pairs) }

// Pairs returns the pairs in flattening order. The slice is shared.
func (u *Universe) Pairs() []Pair { return u.pairs }

// NewCoverSet returns an empty cover set sized for u.
func (u *Universe) NewCoverSet() []bool { return make([]bool, len(u.pairs)) }

// Gain counts the pairs whose number lies in nb and that are not yet in
// covered.
// Complexity: O(Σ_{n∈nb} |pairs with number n|).
func (u *Universe) Gain(nb grid.Neighborhood, covered []bool) int {
	gain := 0
	for _, n := range nb {
		for _, id := range u.byNumber[n] {
			if !covered[id] {
				gain++
			}
		}
	}
	return gain
}

// Cover marks every pair reachable from nb as covered and returns how many
// were newly added.
func (u *Universe) Cover(nb grid.Neighborhood, covered []bool) int {
	added := 0
	for _, n := range nb {
		for _, id := range u.byNumber[n] {
			if !covered[id] {
				covered[id] = true
				added++
			}
		}
	}
	return added
}

// Union returns how many distinct pairs the given neighborhoods cover
// together.
func (u *Universe) Union(nbs ...grid.Neighborhood) int {
	covered := u.NewCoverSet()
	total := 0
	for _, nb := range nbs {
		total += u.Cover(nb, covered)
	}
	return total
}
