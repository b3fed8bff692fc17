// Package logger configures the process-wide structured logger used by
// the CLI layer. The algebra packages themselves never log: they are pure
// computation, and their only failure channels are errors and panics.
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var log = zap.NewNop().Sugar()

// Init builds the global logger. Verbose enables debug-level output with
// caller annotations; otherwise only warnings and errors are shown, on
// the assumption that normal CLI output goes to stdout, not the log.
func Init(verbose bool) {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	cfg.DisableStacktrace = true

	built, err := cfg.Build()
	if err != nil {
		// The development config is static; a build failure is a defect.
		panic("logger: building zap logger: " + err.Error())
	}

	log = built.Sugar()
}

// L returns the global sugared logger. Safe before Init: logging is a
// no-op until the CLI configures it.
func L() *zap.SugaredLogger {
	return log
}

// Sync flushes buffered log entries; call on process exit.
func Sync() {
	_ = log.Sync()
}
