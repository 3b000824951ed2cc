package config

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogLevel is the textual log level read from MATDOT_LOG_LEVEL.
type LogLevel string

// Canonical level names. Zap also accepts a few aliases ("trace", "warning", ...).
const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

// String returns the level name as configured.
func (l LogLevel) String() string {
	return string(l)
}

// Zap maps the level name to a zap level; unknown names fall back to error.
func (l LogLevel) Zap() zap.AtomicLevel {
	switch l {
	case LogLevelDebug, "trace":
		return zap.NewAtomicLevelAt(zap.DebugLevel)
	case LogLevelInfo, "information", "notice":
		return zap.NewAtomicLevelAt(zap.InfoLevel)
	case LogLevelWarn, "warning":
		return zap.NewAtomicLevelAt(zap.WarnLevel)
	case LogLevelError:
		return zap.NewAtomicLevelAt(zap.ErrorLevel)
	default:
		return zap.NewAtomicLevelAt(zap.ErrorLevel)
	}
}

// NewLogger builds a stderr logger honoring LogLevel and LogJSON.
// Matrix output goes to stdout, so logs never interleave with results.
func (c Config) NewLogger() (*zap.Logger, error) {
	zc := zap.NewDevelopmentConfig()
	if c.LogJSON {
		zc = zap.NewProductionConfig()
	}
	zc.Level = c.LogLevel.Zap()
	zc.OutputPaths = []string{"stderr"}
	zc.ErrorOutputPaths = []string{"stderr"}
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	return zc.Build()
}
