// SPDX-License-Identifier: MIT

package portfolio

import (
	"sort"

	"github.com/katalvlaran/gridcover/grid"
)

// Extract returns the Smart-N pick list of p: the n numbers contained in
// the most member neighborhoods (ties: smaller number first), sorted
// ascending. n ≤ 0 means DefaultCandidates. The result has exactly
// min(n, |union of neighborhoods|) distinct numbers.
// Complexity: O(49 log 49).
func Extract(p Portfolio, n int) []int {
	cells := make([]grid.Neighborhood, len(p.Entries))
	for i, e := range p.Entries {
		cells[i] = e.Cells
	}
	return ExtractFrom(cells, n)
}

// ExtractFrom is Extract over raw neighborhoods.
func ExtractFrom(nbs []grid.Neighborhood, n int) []int {
	if n <= 0 {
		n = DefaultCandidates
	}
	var freq [grid.MaxCell + 1]int
	for _, nb := range nbs {
		for _, c := range nb {
			freq[c]++
		}
	}
	nums := make([]int, 0, grid.MaxCell)
	for c := grid.MinCell; c <= grid.MaxCell; c++ {
		if freq[c] > 0 {
			nums = append(nums, c)
		}
	}
	sort.SliceStable(nums, func(i, j int) bool {
		if freq[nums[i]] != freq[nums[j]] {
			return freq[nums[i]] > freq[nums[j]]
		}
		return nums[i] < nums[j]
	})
	if len(nums) > n {
		nums = nums[:n]
	}
	sort.Ints(nums)
	return nums
}
