// SPDX-License-Identifier: MIT

package portfolio

import (
	"errors"
	"strings"

	"github.com/katalvlaran/gridcover/grid"
	"github.com/katalvlaran/gridcover/score"
)

// Sentinel errors for portfolio construction.
var (
	// ErrInvalidSize indicates a negative portfolio size.
	ErrInvalidSize = errors.New("portfolio: size must be non-negative")
	// ErrInvalidPool indicates a non-positive candidate pool.
	ErrInvalidPool = errors.New("portfolio: pool size must be positive")
	// ErrNegativeWindow indicates a negative recent window.
	ErrNegativeWindow = errors.New("portfolio: recent window must be non-negative")
	// ErrUnsupportedAlgorithm indicates an unknown Algorithm.
	ErrUnsupportedAlgorithm = errors.New("portfolio: unsupported algorithm")
	// ErrSearchTooLarge indicates Exact would enumerate too many subsets.
	ErrSearchTooLarge = errors.New("portfolio: exact search space too large")
)

// Defaults.
const (
	DefaultSize        = 3
	DefaultRecentWeeks = 13
	DefaultPoolSize    = 20
	DefaultCandidates  = 20
	// MaxSubsets bounds the Exact enumeration.
	MaxSubsets = 2_000_000
)

// Algorithm selects the subset search strategy.
type Algorithm int

const (
	// Greedy picks by marginal gain; (1 − 1/e)-approximate.
	Greedy Algorithm = iota
	// Exact enumerates every subset of the pool.
	Exact
)

// String returns the config spelling of a.
func (a Algorithm) String() string {
	switch a {
	case Greedy:
		return "greedy"
	case Exact:
		return "exact"
	default:
		return "unknown"
	}
}

// ParseAlgorithm accepts "greedy" or "exact".
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "greedy", "":
		return Greedy, nil
	case "exact":
		return Exact, nil
	default:
		return 0, ErrUnsupportedAlgorithm
	}
}

// Options configures Build.
type Options struct {
	Size           int               // centers to select
	RecentWeeks    int               // coverage universe and momentum window; 0 = whole History
	PoolSize       int               // top scored centers considered; clamped to 49
	Algorithm      Algorithm         // Greedy or Exact
	StopOnZeroGain bool              // stop once no candidate adds coverage
	Weights        score.Weights     // score formula constants
	Quality        *score.QualityMap // optional external signal
}

// DefaultOptions returns Size=3, RecentWeeks=13, PoolSize=20, Greedy.
func DefaultOptions() Options {
	return Options{
		Size:        DefaultSize,
		RecentWeeks: DefaultRecentWeeks,
		PoolSize:    DefaultPoolSize,
		Algorithm:   Greedy,
		Weights:     score.DefaultWeights(),
	}
}

// Validate checks option ranges.
func (o Options) Validate() error {
	if o.Size < 0 {
		return ErrInvalidSize
	}
	if o.PoolSize <= 0 {
		return ErrInvalidPool
	}
	if o.RecentWeeks < 0 {
		return ErrNegativeWindow
	}
	if o.Algorithm != Greedy && o.Algorithm != Exact {
		return ErrUnsupportedAlgorithm
	}
	return o.Weights.Validate()
}

// Entry is one selected center with its coverage bookkeeping.
type Entry struct {
	score.ScoredCenter
	MarginalGain    int     `json:"marginal_gain"`    // pairs newly covered when added
	CumulativeHits  int     `json:"cumulative_hits"`  // pairs covered after adding
	CoveragePercent float64 `json:"coverage_percent"` // CumulativeHits / universe × 100
}

// Portfolio is the ordered selection produced by Build.
type Portfolio struct {
	Entries      []Entry   `json:"entries"`
	UniverseSize int       `json:"universe_size"`
	Algorithm    Algorithm `json:"-"`
}

// Centers returns the selected centers in selection order.
func (p Portfolio) Centers() []grid.Cell {
	out := make([]grid.Cell, len(p.Entries))
	for i, e := range p.Entries {
		out[i] = e.Center
	}
	return out
}

// Covered returns the number of pairs covered by the whole portfolio.
func (p Portfolio) Covered() int {
	if len(p.Entries) == 0 {
		return 0
	}
	return p.Entries[len(p.Entries)-1].CumulativeHits
}

// CoveragePercent returns the final coverage percentage (0 when empty).
func (p Portfolio) CoveragePercent() float64 {
	if len(p.Entries) == 0 {
		return 0
	}
	return p.Entries[len(p.Entries)-1].CoveragePercent
}
