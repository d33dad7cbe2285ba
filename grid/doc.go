// SPDX-License-Identifier: MIT

// Package grid models the 7×7 number board as a fixed grid of cells and
// answers coverage questions about Moore neighborhoods on it.
//
// What:
//
//   - Cell is a board number in [1,49]; row = (cell-1)/7, col = (cell-1)%7.
//   - NeighborhoodOf(center) is the center plus its 8-connected neighbors,
//     clipped at the board edge (4 cells at a corner, 6 on an edge, 9 inside).
//   - CoverageOf(draw, center) intersects a draw with a neighborhood.
//   - BestCenters(draw, topN) ranks all 49 centers by hits, ties by center id.
//
// Why:
//
//   - Every higher layer (frequency, score, portfolio, region) is built on
//     the single best center of a draw, so the ranking must be total and
//     independent of evaluation order.
//
// Complexity:
//
//   - NeighborhoodOf: O(1) (table lookup plus a copy of at most 9 cells).
//   - CoverageOf:   O(|draw| + 9).
//   - BestCenters:  O(49 × (|draw| + 9) + 49 log 49).
//
// Errors:
//
//   - ErrCellOutOfRange: a center or number is outside [1,49].
package grid
