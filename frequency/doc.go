// SPDX-License-Identifier: MIT

// Package frequency aggregates per-center statistics over a History.
//
// For every draw the single best center (grid.BestCenter) is computed once;
// the resulting newest-first series drives three signals per center:
//
//   - AllTimeCount: draws for which the center was best, over the whole History.
//   - RecentCount:  the same, restricted to the RecentWeeks newest draws.
//   - Gap:          newest-first index of the latest draw where the center was
//     best; centers never best get Gap = History length (maximally overdue).
//
// AverageCoverage is softer: the mean hit count of the center over every draw,
// whether or not it was best.
//
// Statistics are rebuilt from the History on every call; nothing is cached or
// updated incrementally.
//
// Complexity: O(n × 49 × 9) time, O(n) memory for n draws.
package frequency
