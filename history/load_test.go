package history_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/gridcover/history"
	"github.com/stretchr/testify/require"
)

const mixedJSON = `[
  [1, 2, 3, 4, 5, 6],
  {"numbers": [7, 8, 9, 10, 11, 12], "id": "w2"},
  {"value": [13, 14, 15, 16, 17, 18], "draw": 3},
  {"numbers": [0, 14, 15], "date": "2024-01-04"},
  [20, 20, 21]
]`

// TestReadJSON_Filter collapses every legacy shape and reports rejections.
func TestReadJSON_Filter(t *testing.T) {
	h, rej, err := history.ReadJSON(strings.NewReader(mixedJSON), history.NewestFirst, history.Filter)
	require.NoError(t, err)
	require.Equal(t, 3, h.Len())
	require.Equal(t, []int{1, 2, 3, 4, 5, 6}, h.MustAt(0).Ints())
	require.Equal(t, "w2", h.MustAt(1).ID())
	require.Equal(t, "3", h.MustAt(2).ID())

	require.Len(t, rej, 2)
	require.Equal(t, 3, rej[0].Index)
	require.Equal(t, "2024-01-04", rej[0].ID)
	require.ErrorIs(t, rej[0].Err, history.ErrOutOfRange)
	require.ErrorIs(t, rej[1].Err, history.ErrDuplicateNumber)
}

// TestReadJSON_Strict fails fast on the first bad entry.
func TestReadJSON_Strict(t *testing.T) {
	_, _, err := history.ReadJSON(strings.NewReader(mixedJSON), history.NewestFirst, history.Strict)
	require.ErrorIs(t, err, history.ErrOutOfRange)
	require.Contains(t, err.Error(), "entry 3")

	_, _, err = history.ReadJSON(strings.NewReader(`{"not":"array"}`), history.NewestFirst, history.Strict)
	require.ErrorIs(t, err, history.ErrMalformedRecord)
}

// TestReadCSV handles headers, labels and ragged rows.
func TestReadCSV(t *testing.T) {
	src := "date,n1,n2,n3\n" +
		"2024-01-01,1,2,3\n" +
		"4,5,6\n" +
		"1001,7,8,9,10\n" +
		"2024-01-04,x,2\n"
	h, rej, err := history.ReadCSV(strings.NewReader(src), history.OldestFirst, history.Filter)
	require.NoError(t, err)
	require.Equal(t, 3, h.Len())
	require.Equal(t, history.OldestFirst, h.Order())
	// newest-first access: last row is newest
	require.Equal(t, "1001", h.MustAt(0).ID())
	require.Equal(t, []int{7, 8, 9, 10}, h.MustAt(0).Ints())
	require.Equal(t, []int{4, 5, 6}, h.MustAt(1).Ints())
	require.Equal(t, "2024-01-01", h.MustAt(2).ID())

	require.Len(t, rej, 1)
	require.Equal(t, 4, rej[0].Index)
	require.ErrorIs(t, rej[0].Err, history.ErrMalformedRecord)
}

// TestLoad dispatches on extension.
func TestLoad(t *testing.T) {
	dir := t.TempDir()
	jsonPath := filepath.Join(dir, "draws.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`[[1,2,3],[4,5,6]]`), 0o600))
	h, rej, err := history.Load(jsonPath, history.NewestFirst, history.Strict)
	require.NoError(t, err)
	require.Empty(t, rej)
	require.Equal(t, 2, h.Len())

	csvPath := filepath.Join(dir, "draws.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte("1,2,3\n"), 0o600))
	h, _, err = history.Load(csvPath, history.NewestFirst, history.Strict)
	require.NoError(t, err)
	require.Equal(t, 1, h.Len())

	_, _, err = history.Load(filepath.Join(dir, "draws.xml"), history.NewestFirst, history.Strict)
	require.ErrorIs(t, err, history.ErrUnsupportedFormat)

	_, _, err = history.Load(filepath.Join(dir, "missing.json"), history.NewestFirst, history.Strict)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestParsePolicy(t *testing.T) {
	for _, p := range []history.Policy{history.Strict, history.Filter} {
		got, err := history.ParsePolicy(p.String())
		require.NoError(t, err)
		require.Equal(t, p, got)
	}
	_, err := history.ParsePolicy("lenient")
	require.ErrorIs(t, err, history.ErrUnknownPolicy)
}
