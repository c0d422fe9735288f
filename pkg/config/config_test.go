package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"storj.io/payout-report/pkg/config"
	"storj.io/payout-report/pkg/employee"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load("./testdata/defaults.toml")
	t.Logf("unknown fields:\n%s", config.DumpUnknownFields(err))
	require.NoError(t, err)

	assert.Equal(t, config.Config{
		Aliases: config.Aliases{
			Rate:  []string{"hourly_rate", "rate", "salary"},
			Hours: []string{"hours_worked", "hours"},
		},
		Log: config.Log{
			Level: zapcore.InfoLevel,
		},
	}, cfg)
	assert.Equal(t, config.Default(), cfg)
	assert.Equal(t, employee.DefaultAliases(), cfg.EmployeeAliases())
}

func TestLoad_Overrides(t *testing.T) {
	cfg, err := config.Load("./testdata/override.toml")
	require.NoError(t, err)

	assert.Equal(t, config.Config{
		Aliases: config.Aliases{
			Rate:  []string{"wage", "rate"},
			Hours: []string{"time"},
		},
		Log: config.Log{
			Level: zapcore.DebugLevel,
		},
	}, cfg)
}

func TestLoad_Partial(t *testing.T) {
	cfg, err := config.Load("./testdata/partial.toml")
	require.NoError(t, err)

	assert.Equal(t, employee.Aliases{
		Rate:  []string{"hourly_rate", "rate", "salary"},
		Hours: []string{"time", "hours"},
	}, cfg.EmployeeAliases())
}

func TestLoad_UnknownFields(t *testing.T) {
	_, err := config.Load("./testdata/unknown.toml")
	require.Error(t, err)
	assert.Contains(t, config.DumpUnknownFields(err), "currency")
}

func TestLoad_EmptyAliases(t *testing.T) {
	_, err := config.Load("./testdata/empty_aliases.toml")
	require.EqualError(t, err, "invalid aliases: at least one hours alias is required")
}

func TestLoad_Missing(t *testing.T) {
	_, err := config.Load("./testdata/missing.toml")
	require.ErrorContains(t, err, "failed to read config")
}
