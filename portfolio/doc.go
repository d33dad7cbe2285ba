// SPDX-License-Identifier: MIT

// Package portfolio selects a small set of grid centers that jointly cover
// as much recent history as possible, and reduces them to a pick list.
//
// What:
//
//   - Universe flattens the RecentWeeks newest draws into distinct
//     (draw index, number) pairs.
//   - Build ranks centers (package score), keeps the top PoolSize as
//     candidates and picks Size of them maximizing the number of pairs
//     covered by the union of their neighborhoods.
//   - Extract ("Smart-N") unions the chosen neighborhoods and keeps the N
//     numbers contained in the most of them.
//
// Algorithms:
//
//   - Greedy (default): at each step take the candidate with the largest
//     marginal gain (ties: earliest in score order). Maximum coverage is
//     NP-hard; greedy is guaranteed ≥ (1 − 1/e) ≈ 63% of optimal.
//   - Exact: enumerate all C(PoolSize, Size) subsets. Used as an oracle and
//     for small instances; refused when the subset count exceeds MaxSubsets.
//
// Complexity:
//
//   - Greedy: O(Size × PoolSize × 9 × W) worst case for W pairs.
//   - Exact:  O(C(PoolSize, Size) × Size × W).
//
// Errors:
//
//   - ErrInvalidSize, ErrInvalidPool, ErrNegativeWindow: bad options.
//   - ErrUnsupportedAlgorithm: unknown Algorithm value.
//   - ErrSearchTooLarge: Exact would enumerate more than MaxSubsets subsets.
package portfolio
