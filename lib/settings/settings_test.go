package settings

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDefaultsAreApplied(t *testing.T) {
	cfg, err := ReadConfig("")
	require.NoError(t, err)

	require.Equal(t, "0.0.0.0", cfg.IP)
	require.Equal(t, "9001", cfg.Port)
	require.Equal(t, "INFO", cfg.LogLevel)
	require.Equal(t, 100, cfg.History.MaxStack)
	require.Equal(t, time.Second, cfg.HistoryDelay())
	require.Equal(t, 0, cfg.Documents.MaxLength)
	require.Equal(t, 4*1024*1024, cfg.API.BodyLimit)
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("DELTA_PORT", "9999")
	t.Setenv("DELTA_HISTORY_MAXSTACK", "5")

	cfg, err := ReadConfig("")
	require.NoError(t, err)
	require.Equal(t, "9999", cfg.Port)
	require.Equal(t, 5, cfg.History.MaxStack)
	require.Equal(t, "0.0.0.0:9999", cfg.Address())
}

func TestReadConfigFromJSON(t *testing.T) {
	cfg, err := ReadConfig(`{"port": "8080", "history": {"delay": 250}, "documents": {"maxLength": 10}}`)
	require.NoError(t, err)

	require.Equal(t, "8080", cfg.Port)
	require.Equal(t, 250*time.Millisecond, cfg.HistoryDelay())
	require.Equal(t, 100, cfg.History.MaxStack)
	require.Equal(t, 10, cfg.Documents.MaxLength)
}

func TestReadConfigRejectsInvalidValues(t *testing.T) {
	_, err := ReadConfig(`{"history": {"maxStack": 0}}`)
	require.Error(t, err)

	_, err = ReadConfig(`{"documents": {"maxLength": -1}}`)
	require.Error(t, err)
}

func TestReadConfigRejectsMalformedJSON(t *testing.T) {
	_, err := ReadConfig(`{"port": `)
	require.Error(t, err)
}

func TestEnvVar(t *testing.T) {
	require.Equal(t, "DELTA_HISTORY_MAXSTACK", EnvVar(HistoryMaxStack))
	require.Equal(t, "DELTA_PORT", EnvVar(Port))
}
