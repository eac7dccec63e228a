package logutil

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogConfig - Logger settings as read from the [log] section of a config file
//   - Level is one of debug, info, warn or error
//   - Format is either console or json
type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// NewLogger - Returns a zap logger writing to stderr according to cfg. Empty fields default to info and console.
func NewLogger(cfg LogConfig) (logger *zap.Logger, err error) {
	level, err := cfg.getLevel()
	if err != nil {
		return
	}

	encoder, err := getLoggerEncoder(cfg.Format)
	if err != nil {
		return
	}

	core := zapcore.NewCore(encoder, getConsoleSyncer(), level)
	logger = zap.New(core, zap.AddStacktrace(zapcore.FatalLevel), zap.AddCaller())

	return
}

// getLevel - Parses the configured level
func (cfg *LogConfig) getLevel() (level zap.AtomicLevel, err error) {
	level = zap.NewAtomicLevel()
	if cfg.Level == "" {
		return
	}

	err = level.UnmarshalText([]byte(strings.ToLower(cfg.Level)))
	if err != nil {
		err = fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}

	return
}

// getLoggerEncoder - Returns an encoder for format
func getLoggerEncoder(format string) (encoder zapcore.Encoder, err error) {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	switch strings.ToLower(format) {
	case "", "console":
		encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	case "json":
		encoder = zapcore.NewJSONEncoder(encoderConfig)
	default:
		err = fmt.Errorf("invalid log format %q, expected console or json", format)
	}

	return
}

func getConsoleSyncer() zapcore.WriteSyncer {
	return zapcore.Lock(os.Stderr)
}
