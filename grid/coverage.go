// SPDX-License-Identifier: MIT

package grid

import (
	"slices"
	"sort"
)

// Mask is a membership bitmap over board cells; index 0 is unused.
// Numbers outside [1,49] are ignored when building a Mask.
type Mask [MaxCell + 1]bool

// MaskOf builds a Mask from the given numbers.
// Complexity: O(|nums|).
func MaskOf(nums []Cell) Mask {
	var m Mask
	for _, n := range nums {
		if n.Valid() {
			m[n] = true
		}
	}
	return m
}

// Hits counts how many cells of nb are set in m.
// Complexity: O(|nb|).
func (m *Mask) Hits(nb Neighborhood) int {
	hits := 0
	for _, c := range nb {
		if m[c] {
			hits++
		}
	}
	return hits
}

// CoverageOf intersects draw with the neighborhood of center.
// Covered is ascending regardless of the order of draw.
// Returns ErrCellOutOfRange for an invalid center.
// Complexity: O(|draw| + 9).
func CoverageOf(draw []Cell, center Cell) (Coverage, error) {
	if !center.Valid() {
		return Coverage{}, ErrCellOutOfRange
	}
	m := MaskOf(draw)
	return coverageWithMask(&m, center, table[center]), nil
}

func coverageWithMask(m *Mask, center Cell, cells Neighborhood) Coverage {
	covered := make([]Cell, 0, len(cells))
	for _, c := range cells {
		if m[c] {
			covered = append(covered, c)
		}
	}
	cov := Coverage{
		Center:  center,
		Hits:    len(covered),
		Covered: covered,
		Cells:   slices.Clone(cells),
	}
	// |cells| ≥ 4 for every valid center
	if len(cells) > 0 {
		cov.Efficiency = float64(cov.Hits) / float64(len(cells))
	}
	return cov
}

// HitsByCenter returns the hit count of every center for draw, indexed by
// center (index 0 unused).
// Complexity: O(|draw| + 49×9).
func HitsByCenter(draw []Cell) [MaxCell + 1]int {
	var out [MaxCell + 1]int
	m := MaskOf(draw)
	for c := Cell(MinCell); c <= MaxCell; c++ {
		out[c] = m.Hits(table[c])
	}
	return out
}

// BestCenters evaluates all 49 centers against draw and returns the first
// topN ordered by (Hits desc, Center asc). topN is clamped to [0,49].
//
// The ordering is total, so a given draw always yields the same best
// center no matter how the draw's numbers are ordered.
//
// Complexity: O(49×9 + 49 log 49).
func BestCenters(draw []Cell, topN int) []Coverage {
	if topN <= 0 {
		return []Coverage{}
	}
	if topN > MaxCell {
		topN = MaxCell
	}
	m := MaskOf(draw)
	all := make([]Coverage, 0, MaxCell)
	for c := Cell(MinCell); c <= MaxCell; c++ {
		all = append(all, coverageWithMask(&m, c, table[c]))
	}
	sort.SliceStable(all, func(i, j int) bool {
		if all[i].Hits != all[j].Hits {
			return all[i].Hits > all[j].Hits
		}
		return all[i].Center < all[j].Center
	})
	return all[:topN]
}

// BestCenter returns the single best center of draw under the BestCenters
// ordering. For a draw with no valid numbers every center has zero hits and
// the result is center 1.
// Complexity: O(49×9).
func BestCenter(draw []Cell) Cell {
	m := MaskOf(draw)
	best, bestHits := Cell(MinCell), -1
	for c := Cell(MinCell); c <= MaxCell; c++ {
		// strict > keeps the lowest center on ties
		if h := m.Hits(table[c]); h > bestHits {
			best, bestHits = c, h
		}
	}
	return best
}
