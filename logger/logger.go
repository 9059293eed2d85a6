package logger

import (
	"strings"
	"sync"

	"go.uber.org/zap"
)

var (
	sugar *zap.SugaredLogger
	once  sync.Once
)

// Init builds the process-wide logger. mode "prod"/"production" selects the
// JSON production config, anything else the console development config.
func Init(mode string) {
	once.Do(func() {
		var cfg zap.Config
		switch strings.ToLower(mode) {
		case "prod", "production":
			cfg = zap.NewProductionConfig()
		default:
			cfg = zap.NewDevelopmentConfig()
		}
		zl, err := cfg.Build()
		if err != nil {
			// Build only fails on a bad config; fall back to the no-op logger
			// so callers never get a nil sugar.
			zl = zap.NewNop()
		}
		sugar = zl.Sugar()
	})
}

// L returns the global logger, initializing with defaults if needed.
func L() *zap.SugaredLogger {
	if sugar == nil {
		Init("")
	}
	return sugar
}

func Info(msg string, keysAndValues ...interface{}) {
	L().Infow(msg, keysAndValues...)
}

func Warn(msg string, keysAndValues ...interface{}) {
	L().Warnw(msg, keysAndValues...)
}

func Error(msg string, keysAndValues ...interface{}) {
	L().Errorw(msg, keysAndValues...)
}

func Fatal(msg string, keysAndValues ...interface{}) {
	L().Fatalw(msg, keysAndValues...)
}

// Sync flushes buffered log entries; call before process exit.
func Sync() {
	_ = L().Sync()
}
