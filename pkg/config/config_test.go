package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inventory-service/internal/model"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8086", cfg.Server.Port)
	assert.Equal(t, "inventory", cfg.Metrics.Prefix)
	assert.Equal(t, model.Date{Year: 2025, Month: 1, Day: 1}, cfg.Ledger.DefaultEntryDate)
	assert.Equal(t, 20, cfg.Ledger.RecentLimit)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9000")
	t.Setenv("LEDGER_DEFAULT_ENTRY_DATE", "2026-08-30")
	t.Setenv("LEDGER_RECENT_LIMIT", "50")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Server.Port)
	assert.Equal(t, model.Date{Year: 2026, Month: 8, Day: 30}, cfg.Ledger.DefaultEntryDate)
	assert.Equal(t, 50, cfg.Ledger.RecentLimit)
}

func TestLoadRejectsBadEntryDate(t *testing.T) {
	t.Setenv("LEDGER_DEFAULT_ENTRY_DATE", "not-a-date")

	_, err := Load()
	assert.Error(t, err)
}
