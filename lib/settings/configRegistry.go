package settings

import (
	"strings"

	"github.com/spf13/viper"
)

type ConfigKey struct {
	Key         string
	Default     any
	Description string
}

const envPrefix = "DELTA"

func EnvVar(key string) string {
	return envPrefix + "_" + strings.ToUpper(
		strings.ReplaceAll(key, ".", "_"),
	)
}

var Registry = []ConfigKey{
	// ---------------------------------------------------------------------
	// Server
	// ---------------------------------------------------------------------
	{Key: IP, Default: "0.0.0.0", Description: "Bind address"},
	{Key: Port, Default: "9001", Description: "HTTP server port"},
	{Key: LogLevel, Default: "INFO", Description: "Log level (DEBUG, INFO, WARN, ERROR)"},
	{
		Key:         APIBodyLimit,
		Default:     4 * 1024 * 1024,
		Description: "Maximum request body size in bytes",
	},
	{Key: EnableMetrics, Default: false, Description: "Expose prometheus metrics on /metrics"},

	// ---------------------------------------------------------------------
	// History
	// ---------------------------------------------------------------------
	{Key: HistoryMaxStack, Default: 100, Description: "Undo steps kept per document"},
	{
		Key:         HistoryDelay,
		Default:     1000,
		Description: "Window in ms in which changes of the same type merge into one undo step",
	},

	// ---------------------------------------------------------------------
	// Documents
	// ---------------------------------------------------------------------
	{
		Key:         DocumentsMaxLength,
		Default:     0,
		Description: "Maximum document length, 0 for unlimited",
	},
}

func ApplyRegistryDefaults() {
	for _, c := range Registry {
		viper.SetDefault(c.Key, c.Default)
	}
}
