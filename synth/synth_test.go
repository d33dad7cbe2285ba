package synth_test

import (
	"testing"

	"github.com/katalvlaran/gridcover/synth"
	"github.com/stretchr/testify/require"
)

// TestGenerate_Deterministic checks reproducibility and shape.
func TestGenerate_Deterministic(t *testing.T) {
	opts := synth.Options{Draws: 30, PerDraw: 6, Seed: 42}
	a := synth.MustGenerate(opts)
	b := synth.MustGenerate(opts)
	require.Equal(t, a, b)
	require.Equal(t, 30, a.Len())
	for i := 0; i < a.Len(); i++ {
		require.Equal(t, 6, a.MustAt(i).Len())
	}

	c := synth.MustGenerate(synth.Options{Draws: 30, PerDraw: 6, Seed: 43})
	require.NotEqual(t, a, c)

	z1 := synth.MustGenerate(synth.Options{Draws: 5, PerDraw: 6})
	z2 := synth.MustGenerate(synth.Options{Draws: 5, PerDraw: 6, Seed: 1})
	require.Equal(t, z1, z2)
}

// TestGenerate_Bias concentrates numbers in the hot neighborhood.
func TestGenerate_Bias(t *testing.T) {
	h := synth.MustGenerate(synth.Options{Draws: 200, PerDraw: 4, Seed: 7, Bias: 1, HotCenter: 1})
	for i := 0; i < h.Len(); i++ {
		require.Equal(t, []int{1, 2, 8, 9}, h.MustAt(i).Ints())
	}

	// the hot neighborhood is exhausted after 4 numbers; the rest fall back to uniform
	wide := synth.MustGenerate(synth.Options{Draws: 50, PerDraw: 6, Seed: 7, Bias: 1, HotCenter: 1})
	for i := 0; i < wide.Len(); i++ {
		d := wide.MustAt(i)
		require.Equal(t, 6, d.Len())
		require.Equal(t, 4, d.CountHits([]int{1, 2, 8, 9}))
	}
}

// TestGenerate_BadOptions rejects impossible sizes.
func TestGenerate_BadOptions(t *testing.T) {
	for _, o := range []synth.Options{{Draws: -1, PerDraw: 6}, {Draws: 1, PerDraw: 0}, {Draws: 1, PerDraw: 50}} {
		_, err := synth.Generate(o)
		require.ErrorIs(t, err, synth.ErrBadOptions)
	}
}
