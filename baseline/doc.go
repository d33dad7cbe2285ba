// SPDX-License-Identifier: MIT

// Package baseline ranks individual numbers with a cheap frequency, recency
// and gap blend, independent of the grid model.
//
//	f(n)   = allTimeCount(n) / totalDraws
//	r(n)   = recentCount(n)  / RecencyWindow
//	g(n)   = min(1, gap(n) / GapHorizon)
//	score  = FrequencyWeight·f + RecencyWeight·r + GapWeight·g
//
// gap(n) is the newest-first index of the latest draw containing n (0 when
// it appeared in the newest draw); numbers never seen get gap = totalDraws.
// Every division by a zero denominator yields 0.
//
// Rank is one linear scan over the History plus a fixed 49-entry scoring
// pass, so it is cheap enough to recompute for every backtest week.
package baseline
