// SPDX-License-Identifier: MIT

// Package region buckets best centers into a 3×3 macro grid for heatmaps.
//
// Rows and columns of the 7×7 grid fall into three bands {0–1, 2–4, 5–6};
// a center maps to zone band(row)*3 + band(col), numbered 1..9 row-major.
package region

import (
	"sort"

	"github.com/katalvlaran/gridcover/frequency"
	"github.com/katalvlaran/gridcover/grid"
	"github.com/katalvlaran/gridcover/history"
)

// Bands is the number of bands per axis.
const Bands = 3

// Zone is one macro region with its tally.
type Zone struct {
	ID      int     `json:"id"`      // 1..9, row-major
	Row     int     `json:"row"`     // band 0..2
	Col     int     `json:"col"`     // band 0..2
	Count   int     `json:"count"`   // draws whose best center falls here
	Percent float64 `json:"percent"` // Count / Total × 100; 0 when Total is 0
}

// Heatmap is the 3×3 matrix of zones.
type Heatmap struct {
	Cells [Bands][Bands]Zone `json:"cells"`
	Total int                `json:"total"` // draws analyzed
}

// band maps a grid row or column to its band.
func band(i int) int {
	switch {
	case i < 2:
		return 0
	case i < 5:
		return 1
	default:
		return 2
	}
}

// Of returns the zone id (1..9) of center c, or 0 for an invalid cell.
func Of(c grid.Cell) int {
	if !c.Valid() {
		return 0
	}
	return band(c.Row())*Bands + band(c.Col()) + 1
}

// Aggregate tallies the best center of every draw of h into zones.
// Complexity: O(n × 49 × 9).
func Aggregate(h history.History) Heatmap {
	return FromSeries(frequency.BestCenterSeries(h))
}

// FromSeries builds a Heatmap from a precomputed best-center series.
func FromSeries(series []grid.Cell) Heatmap {
	var hm Heatmap
	for r := 0; r < Bands; r++ {
		for c := 0; c < Bands; c++ {
			hm.Cells[r][c] = Zone{ID: r*Bands + c + 1, Row: r, Col: c}
		}
	}
	for _, center := range series {
		id := Of(center)
		if id == 0 {
			continue
		}
		hm.Cells[(id-1)/Bands][(id-1)%Bands].Count++
		hm.Total++
	}
	if hm.Total == 0 {
		return hm
	}
	for r := range hm.Cells {
		for c := range hm.Cells[r] {
			z := &hm.Cells[r][c]
			z.Percent = float64(z.Count) / float64(hm.Total) * 100
		}
	}
	return hm
}

// Zone returns the zone with the given id; ok is false outside 1..9.
func (h Heatmap) Zone(id int) (Zone, bool) {
	if id < 1 || id > Bands*Bands {
		return Zone{}, false
	}
	return h.Cells[(id-1)/Bands][(id-1)%Bands], true
}

// Flat returns the nine zones in id order.
func (h Heatmap) Flat() []Zone {
	out := make([]Zone, 0, Bands*Bands)
	for r := range h.Cells {
		out = append(out, h.Cells[r][:]...)
	}
	return out
}

// Hottest returns the zones ordered by count desc, then id asc.
func (h Heatmap) Hottest() []Zone {
	out := h.Flat()
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].ID < out[j].ID
	})
	return out
}
