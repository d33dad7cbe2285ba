// SPDX-License-Identifier: MIT

// Package score combines per-center frequency signals into one ranking.
//
//	score(c) = allTimeCount
//	         + RecentMultiplier × recentCount
//	         + gapBonus(gap)
//	         + QualityMultiplier × mean(quality[n] for n in Neighborhood(c))
//
// gapBonus is a discrete hot-hand step: HotBonus when gap ≤ HotGap,
// WarmBonus when gap ≤ WarmGap, otherwise 0. The quality term is present
// only when a QualityMap is supplied.
//
// All constants live in Weights with documented defaults (2, 3→5, 8→2, 20).
// They are empirical; nothing here derives or re-tunes them.
//
// Output is sorted by score desc, then center asc, so equal inputs always rank
// identically.
package score
