package region_test

import (
	"testing"

	"github.com/katalvlaran/gridcover/grid"
	"github.com/katalvlaran/gridcover/history"
	"github.com/katalvlaran/gridcover/region"
	"github.com/katalvlaran/gridcover/synth"
	"github.com/stretchr/testify/require"
)

func TestOf_Bands(t *testing.T) {
	cases := map[grid.Cell]int{
		1: 1, 2: 1, 9: 1, // rows 0–1, cols 0–1
		3: 2, 5: 2, // row 0, cols 2–4
		6: 3, 14: 3, // cols 5–6
		15: 4, 25: 5, 35: 6,
		36: 7, 47: 8, 49: 9,
	}
	for c, want := range cases {
		require.Equal(t, want, region.Of(c), "center %d", c)
	}
	require.Zero(t, region.Of(0))
	require.Zero(t, region.Of(50))
}

// TestOf_ZoneSizes: bands 2/3/2 give zone sizes 4,6,4 / 6,9,6 / 4,6,4.
func TestOf_ZoneSizes(t *testing.T) {
	sizes := make([]int, 10)
	for _, c := range grid.Centers() {
		sizes[region.Of(c)]++
	}
	require.Equal(t, []int{0, 4, 6, 4, 6, 9, 6, 4, 6, 4}, sizes)
}

func TestAggregate(t *testing.T) {
	h := history.MustNew(history.NewestFirst,
		history.MustDraw(1, 2, 8, 9),     // best 1 → zone 1
		history.MustDraw(41, 42, 48, 49), // best 41 → zone 9
		history.MustDraw(1, 2, 8, 9),     // zone 1
		history.MustDraw(24, 25, 26),     // best 18 → zone 5
	)
	hm := region.Aggregate(h)
	require.Equal(t, 4, hm.Total)

	z, ok := hm.Zone(1)
	require.True(t, ok)
	require.Equal(t, 2, z.Count)
	require.InDelta(t, 50.0, z.Percent, 1e-12)

	z, _ = hm.Zone(9)
	require.Equal(t, 1, z.Count)
	require.Equal(t, 2, z.Row)
	require.Equal(t, 2, z.Col)

	hot := hm.Hottest()
	require.Equal(t, []int{1, 5, 9, 2}, []int{hot[0].ID, hot[1].ID, hot[2].ID, hot[3].ID})

	_, ok = hm.Zone(10)
	require.False(t, ok)
}

func TestAggregate_Empty(t *testing.T) {
	hm := region.Aggregate(history.MustNew(history.NewestFirst))
	require.Zero(t, hm.Total)
	for _, z := range hm.Flat() {
		require.Zero(t, z.Count)
		require.Zero(t, z.Percent)
	}
	require.Len(t, hm.Flat(), 9)
}

func TestAggregate_PercentSums(t *testing.T) {
	hm := region.Aggregate(synth.MustGenerate(synth.Options{Draws: 77, PerDraw: 6, Seed: 4}))
	sum, count := 0.0, 0
	for i, z := range hm.Flat() {
		require.Equal(t, i+1, z.ID)
		sum += z.Percent
		count += z.Count
	}
	require.Equal(t, 77, count)
	require.InDelta(t, 100.0, sum, 1e-9)
}
