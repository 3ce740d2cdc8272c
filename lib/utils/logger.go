package utils

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func SetupLogger(level string) *zap.SugaredLogger {
	var config = zap.NewDevelopmentConfig()
	config.Level = zap.NewAtomicLevelAt(ParseLogLevel(level))
	logger := zap.Must(config.Build())
	sugar := logger.Sugar()

	return sugar
}

// ParseLogLevel maps DEBUG/INFO/WARN/ERROR to zap levels, defaulting to info.
func ParseLogLevel(level string) zapcore.Level {
	var parsed zapcore.Level
	if err := parsed.UnmarshalText([]byte(strings.ToLower(strings.TrimSpace(level)))); err != nil {
		return zapcore.InfoLevel
	}
	return parsed
}
