package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridcover/config"
	"github.com/katalvlaran/gridcover/history"
	"github.com/katalvlaran/gridcover/portfolio"
	"github.com/katalvlaran/gridcover/score"
)

func write(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gridcover.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefault_Valid(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())

	po, err := cfg.PortfolioOptions()
	require.NoError(t, err)
	require.Equal(t, portfolio.DefaultOptions(), po)

	so, err := cfg.ScoreOptions()
	require.NoError(t, err)
	require.Equal(t, score.DefaultOptions(), so)

	o, err := cfg.Order()
	require.NoError(t, err)
	require.Equal(t, history.NewestFirst, o)
}

func TestLoad_PartialOverride(t *testing.T) {
	path := write(t, `
history:
  path: draws.csv
  order: oldest-first
score:
  weights:
    hot_bonus: 7
  quality:
    1: 0.5
    49: 1
portfolio:
  algorithm: exact
  pool_size: 12
backtest:
  weeks: 25
  workers: 4
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, "draws.csv", cfg.History.Path)
	require.Equal(t, "filter", cfg.History.Policy)
	require.Equal(t, 7.0, cfg.Score.Weights.HotBonus)
	require.Equal(t, score.DefaultWarmBonus, cfg.Score.Weights.WarmBonus)
	require.Equal(t, 25, cfg.Backtest.Weeks)
	require.Equal(t, 13, cfg.Backtest.RecencyWeeks)

	po, err := cfg.PortfolioOptions()
	require.NoError(t, err)
	require.Equal(t, portfolio.Exact, po.Algorithm)
	require.Equal(t, 12, po.PoolSize)
	require.NotNil(t, po.Quality)
	require.Equal(t, 1.0, po.Quality.Of(49))

	g, b, err := cfg.Strategies()
	require.NoError(t, err)
	require.Equal(t, 3, g.Options.Size)
	require.Equal(t, 20, g.Candidates)
	require.Equal(t, 13, b.Options.RecencyWindow)
}

func TestLoad_Errors(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)

	_, err = config.Load(write(t, "history: [unterminated"))
	require.Error(t, err)

	cases := map[string]string{
		"order":     "history:\n  order: sideways\n",
		"policy":    "history:\n  policy: lenient\n",
		"window":    "analysis:\n  recent_weeks: -1\n",
		"quality":   "score:\n  quality:\n    50: 0.5\n",
		"algorithm": "portfolio:\n  algorithm: annealing\n",
		"pool":      "portfolio:\n  pool_size: 0\n",
		"baseline":  "baseline:\n  gap_weight: -1\n",
		"backtest":  "backtest:\n  weeks: -3\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := config.Load(write(t, body))
			require.ErrorIs(t, err, config.ErrInvalid)
		})
	}
}

// TestLoad_Example keeps the shipped example in sync with Default.
func TestLoad_Example(t *testing.T) {
	cfg, err := config.Load("example.yaml")
	require.NoError(t, err)
	want := config.Default()
	want.History.Path = "draws.json"
	want.Score.Quality = map[int]float64{}
	require.Equal(t, want, cfg)
}
