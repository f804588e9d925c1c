package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"portfoliotracker/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, contents string) string {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("file values and defaults", func(t *testing.T) {
		path := writeConfig(t, `
env: dev
port: 8080
db:
  host: db.internal
  database: tracker
breaker:
  timeout: 5s
strategies:
  weekly:
    minValuation: "250"
`)
		conf, err := Load(path)
		require.NoError(t, err)

		require.Equal(t, "dev", conf.Env)
		require.Equal(t, 8080, conf.Port)
		require.Equal(t, "db.internal", conf.Db.Host)
		require.Equal(t, "5440", conf.Db.Port)
		require.Equal(t, 5*time.Second, conf.Breaker.Timeout)
		require.Equal(t,
			"host=db.internal port=5440 user=postgres password=postgres dbname=tracker sslmode=disable",
			conf.Db.ToConnectionStr(),
		)

		settings, err := conf.StrategySettings()
		require.NoError(t, err)
		require.Len(t, settings, 3)
		require.Equal(t, "USDW", settings[domain.StrategyWeekly].CashSymbol)
		require.True(t, settings[domain.StrategyWeekly].MinValuation.Equal(decimal.NewFromInt(250)))
		require.True(t, settings[domain.StrategyHold].NeutralPrice.Equal(decimal.NewFromInt(1)))
	})

	t.Run("environment overrides the file", func(t *testing.T) {
		path := writeConfig(t, "port: 8080\n")
		t.Setenv("TRACKER_PORT", "9090")
		t.Setenv("TRACKER_STRATEGIES_HOLD_CASHSYMBOL", "CASH")

		conf, err := Load(path)
		require.NoError(t, err)
		require.Equal(t, 9090, conf.Port)

		settings, err := conf.StrategySettings()
		require.NoError(t, err)
		require.Equal(t, "CASH", settings[domain.StrategyHold].CashSymbol)
	})

	t.Run("invalid env fails validation", func(t *testing.T) {
		path := writeConfig(t, "env: staging\n")
		_, err := Load(path)
		require.ErrorContains(t, err, "config validation failed")
	})

	t.Run("explicit path must exist", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		require.Error(t, err)
	})
}
