package history_test

import (
	"testing"

	"github.com/katalvlaran/gridcover/grid"
	"github.com/katalvlaran/gridcover/history"
	"github.com/stretchr/testify/require"
)

// TestNewDraw_Validation covers the boundary rejections.
func TestNewDraw_Validation(t *testing.T) {
	cases := []struct {
		name string
		nums []int
		err  error
	}{
		{"Empty", nil, history.ErrEmptyDraw},
		{"Zero", []int{0, 5}, history.ErrOutOfRange},
		{"TooHigh", []int{5, 50}, history.ErrOutOfRange},
		{"Duplicate", []int{5, 7, 5}, history.ErrDuplicateNumber},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := history.NewDraw(tc.nums...)
			require.ErrorIs(t, err, tc.err)
		})
	}
}

// TestNewDraw_SortsAndQueries checks canonical ordering and membership.
func TestNewDraw_SortsAndQueries(t *testing.T) {
	d, err := history.NewDraw(40, 2, 27, 9, 38, 15)
	require.NoError(t, err)
	require.Equal(t, []grid.Cell{2, 9, 15, 27, 38, 40}, d.Cells())
	require.Equal(t, []int{2, 9, 15, 27, 38, 40}, d.Ints())
	require.Equal(t, 6, d.Len())
	require.True(t, d.Contains(27))
	require.False(t, d.Contains(28))
	require.Equal(t, 3, d.CountHits([]int{1, 2, 9, 40, 41}))
	require.Equal(t, "w12", d.WithID("w12").ID())
	require.Empty(t, d.ID())
}

// TestHistory_OrderIndependentAccess verifies that At/Recent/Older are
// newest-first regardless of storage order.
func TestHistory_OrderIndependentAccess(t *testing.T) {
	oldest := history.MustDraw(1, 2, 3)
	middle := history.MustDraw(4, 5, 6)
	newest := history.MustDraw(7, 8, 9)

	nf := history.MustNew(history.NewestFirst, newest, middle, oldest)
	of := history.MustNew(history.OldestFirst, oldest, middle, newest)

	for _, h := range []history.History{nf, of} {
		require.Equal(t, 3, h.Len())
		require.Equal(t, newest, h.MustAt(0))
		require.Equal(t, oldest, h.MustAt(2))

		r := h.Recent(2)
		require.Equal(t, 2, r.Len())
		require.Equal(t, newest, r.MustAt(0))
		require.Equal(t, middle, r.MustAt(1))

		o := h.Older(0)
		require.Equal(t, 2, o.Len())
		require.Equal(t, middle, o.MustAt(0))
		require.Equal(t, oldest, o.MustAt(1))

		require.True(t, h.Older(2).Empty())
		require.Equal(t, h.Len(), h.Older(-1).Len())
		require.Equal(t, 3, h.Recent(10).Len())
		require.True(t, h.Recent(-1).Empty())

		require.Equal(t, []history.Draw{newest, middle, oldest}, h.Draws())
		require.Equal(t, history.NewestFirst, h.NewestFirst().Order())

		_, err := h.At(3)
		require.ErrorIs(t, err, history.ErrIndexOutOfRange)
	}
	require.Equal(t, history.OldestFirst, of.Order())
}

// TestHistory_CopiesInput makes sure caller mutation cannot leak in.
func TestHistory_CopiesInput(t *testing.T) {
	draws := []history.Draw{history.MustDraw(1), history.MustDraw(2)}
	h, err := history.New(history.NewestFirst, draws)
	require.NoError(t, err)
	draws[0] = history.MustDraw(49)
	require.Equal(t, []int{1}, h.MustAt(0).Ints())

	_, err = history.New(history.Order(7), draws)
	require.ErrorIs(t, err, history.ErrUnknownOrder)
}

// TestParseOrder covers accepted spellings.
func TestParseOrder(t *testing.T) {
	for _, s := range []string{"newest-first", "Newest", "desc"} {
		o, err := history.ParseOrder(s)
		require.NoError(t, err)
		require.Equal(t, history.NewestFirst, o)
	}
	o, err := history.ParseOrder("oldest-first")
	require.NoError(t, err)
	require.Equal(t, history.OldestFirst, o)
	require.Equal(t, "oldest-first", o.String())

	_, err = history.ParseOrder("sideways")
	require.ErrorIs(t, err, history.ErrUnknownOrder)
}

// TestEach stops when the callback returns false.
func TestEach(t *testing.T) {
	h := history.MustNew(history.OldestFirst, history.MustDraw(1), history.MustDraw(2), history.MustDraw(3))
	var seen []int
	h.Each(func(i int, d history.Draw) bool {
		seen = append(seen, d.Ints()[0])
		return i < 1
	})
	require.Equal(t, []int{3, 2}, seen)
}
