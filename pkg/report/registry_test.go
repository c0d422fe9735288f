package report_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"storj.io/payout-report/pkg/employee"
	"storj.io/payout-report/pkg/report"
)

func TestRegistry(t *testing.T) {
	registry := report.NewRegistry()
	require.Equal(t, []string{"payout"}, registry.Names())

	t.Run("lookup unknown", func(t *testing.T) {
		renderer, ok := registry.Lookup("headcount")
		require.False(t, ok)
		require.Nil(t, renderer)
	})

	t.Run("lookup payout", func(t *testing.T) {
		renderer, ok := registry.Lookup(report.PayoutName)
		require.True(t, ok)
		out, err := renderer(nil)
		require.NoError(t, err)
		require.Contains(t, out, "payout")
	})

	t.Run("register additional report", func(t *testing.T) {
		err := registry.Register("headcount", func(records []*employee.Record) (string, error) {
			return "headcount", nil
		})
		require.NoError(t, err)
		require.Equal(t, []string{"headcount", "payout"}, registry.Names())

		renderer, ok := registry.Lookup("headcount")
		require.True(t, ok)
		out, err := renderer(nil)
		require.NoError(t, err)
		require.Equal(t, "headcount", out)
	})

	t.Run("register duplicate", func(t *testing.T) {
		err := registry.Register(report.PayoutName, report.Payout)
		require.EqualError(t, err, `report "payout" is already registered`)
	})

	t.Run("register invalid", func(t *testing.T) {
		require.EqualError(t, registry.Register("", report.Payout), "report name cannot be empty")
		require.EqualError(t, registry.Register("nil", nil), `report "nil" has no renderer`)
	})
}
