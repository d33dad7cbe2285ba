// SPDX-License-Identifier: MIT

package score

import (
	"fmt"
	"math"

	"github.com/katalvlaran/gridcover/grid"
)

// QualityMap is an immutable per-number signal in [0,1], supplied by an
// external pattern source. Numbers without an entry count as 0.
type QualityMap struct {
	values [grid.MaxCell + 1]float64
}

// NewQualityMap validates and freezes m. The input map is not retained.
// Errors: ErrQualityKey, ErrQualityValue (wrapped with the offending entry).
func NewQualityMap(m map[int]float64) (*QualityMap, error) {
	q := &QualityMap{}
	for n, v := range m {
		if !grid.Cell(n).Valid() {
			return nil, fmt.Errorf("%w: %d", ErrQualityKey, n)
		}
		if math.IsNaN(v) || v < 0 || v > 1 {
			return nil, fmt.Errorf("%w: %d=%v", ErrQualityValue, n, v)
		}
		q.values[n] = v
	}
	return q, nil
}

// Of returns the quality of n, or 0 when n is unknown or q is nil.
func (q *QualityMap) Of(n grid.Cell) float64 {
	if q == nil || !n.Valid() {
		return 0
	}
	return q.values[n]
}

// Mean returns the average quality over nb; 0 for an empty nb or nil q.
func (q *QualityMap) Mean(nb grid.Neighborhood) float64 {
	if q == nil || len(nb) == 0 {
		return 0
	}
	sum := 0.0
	for _, c := range nb {
		sum += q.Of(c)
	}
	return sum / float64(len(nb))
}
