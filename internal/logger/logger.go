// Package logger holds the process-wide structured logger.
package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Logger is the global logger instance.
	Logger *zap.SugaredLogger
	// JSONOutput records whether Initialize chose JSON output.
	JSONOutput bool
)

func init() {
	// No-op until Initialize runs.
	Logger = zap.NewNop().Sugar()
}

// Initialize sets up the global logger. Logs go to stderr so command output
// on stdout stays pipeable.
func Initialize(jsonOutput, verbose bool) error {
	JSONOutput = jsonOutput

	// The console only shows warnings unless verbose; JSON keeps info for
	// log collectors.
	level := zap.WarnLevel
	if jsonOutput {
		level = zap.InfoLevel
	}
	if verbose {
		level = zap.DebugLevel
	}

	var zapLogger *zap.Logger
	var err error

	if jsonOutput {
		config := zap.NewProductionConfig()
		config.Level = zap.NewAtomicLevelAt(level)
		config.OutputPaths = []string{"stderr"}
		zapLogger, err = config.Build()
	} else {
		encoderConfig := zap.NewDevelopmentEncoderConfig()
		encoderConfig.TimeKey = ""
		encoderConfig.CallerKey = ""
		encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapLogger = zap.New(
			zapcore.NewCore(
				zapcore.NewConsoleEncoder(encoderConfig),
				zapcore.AddSync(os.Stderr),
				level,
			),
		)
	}

	if err != nil {
		return err
	}

	Logger = zapLogger.Sugar()
	return nil
}

// Named returns a child logger tagged with a component name.
func Named(component string) *zap.SugaredLogger {
	return Logger.With(FieldComponent, component)
}

// Sync flushes buffered log entries.
func Sync() {
	_ = Logger.Sync()
}
