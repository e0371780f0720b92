// Package logging builds the structured logger used by the wis command.
package logging

import (
	"fmt"
	"io"
	"strings"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a logr.Logger backed by zap writing console-encoded lines to w.
//
// Levels map as debug → V(1) and below enabled, info → V(0), warn and error
// keep only errors from logr's point of view (logr has no warn level).
func New(level string, w io.Writer) (logr.Logger, error) {
	lower := strings.ToLower(strings.TrimSpace(level))
	var zapLevel zapcore.Level
	switch lower {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info", "":
		zapLevel = zapcore.InfoLevel
	case "warn", "warning":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		return logr.Logger{}, fmt.Errorf("unknown log level %q (expected debug, info, warn, or error)", level)
	}

	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg),
		zapcore.AddSync(w),
		zap.NewAtomicLevelAt(zapLevel),
	)

	return zapr.NewLogger(zap.New(core)), nil
}
