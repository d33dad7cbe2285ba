// Package gridcover mines a history of 7×7 grid draws (numbers 1–49) for
// coverage centers and measures, by strict out-of-sample replay, whether the
// resulting picks beat a plain frequency baseline.
//
// What is inside:
//
//	grid/       cells, Moore neighborhoods, per-draw coverage and best centers
//	history/    validated draws, order-tagged histories, JSON/CSV ingestion
//	frequency/  best-center counts, recent momentum, gaps, trend windows
//	score/      composite center score with configurable weights and quality map
//	portfolio/  greedy maximum coverage (plus exact oracle) and Smart-N lists
//	region/     3×3 macro-region heatmap of best centers
//	baseline/   cheap per-number frequency/recency/gap ranking
//	backtest/   leak-free week-by-week replay of two strategies
//	metrics/    Prometheus collectors for backtest runs
//	report/     JSONL/JSON/Markdown artifacts
//	config/     YAML configuration with documented defaults
//	synth/      deterministic synthetic histories
//	cmd/gridcover  the command line front end
//
// Data flows one way:
//
//	draws → grid → frequency → score → portfolio → Smart-N
//	             ↘ region      baseline ↗
//	backtest replays portfolio and baseline under a sliding cutoff.
//
// Nothing here claims predictive power over a fair random draw; the backtest
// exists to measure exactly that.
//
//	go install github.com/katalvlaran/gridcover/cmd/gridcover@latest
package gridcover
