// SPDX-License-Identifier: MIT

// Package backtest replays a History week by week and compares two
// prediction strategies out of sample.
//
// What:
//
//   - For week i (newest-first), the target is History.At(i) and the
//     strategies see only History.Older(i), the draws strictly older than
//     the target. Nothing newer than the target can reach a prediction.
//   - Simulation stops once the past holds fewer than RecencyWeeks draws,
//     and never runs more than Len − RecencyWeeks − 1 weeks.
//   - Each week yields a Record with both candidate lists and their hits;
//     Summarize folds records into mean hits, success rates (hits ≥
//     SuccessHits), the high-accuracy tail (hits ≥ HighHits) and head to
//     head wins.
//
// Concurrency:
//
//   - Weeks share no mutable state. With Workers > 1 they run on an
//     errgroup bounded by Workers; records are stored by week index so the
//     Result is identical to a sequential run. Strategies must then be safe
//     for concurrent use; the built-in ones are.
//   - A single portfolio build is never split across goroutines.
//
// Errors:
//
//   - ErrBadConfig: a negative count in Config.
//   - ErrNilStrategy: a nil strategy passed to WithStrategies.
//   - Strategy errors are returned wrapped with the week index; ctx
//     cancellation is returned as is.
package backtest
