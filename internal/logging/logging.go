// Package logging builds the zap logger shared by the CLI and the store.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/KirkDiggler/charm-tracker/internal/errors"
)

// Options controls logger construction
type Options struct {
	// Verbose lowers the level to debug
	Verbose bool
	// OutputPaths defaults to stderr so command output on stdout stays clean
	OutputPaths []string
}

// New builds a production zap logger
func New(opts Options) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if opts.Verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.OutputPaths = []string{"stderr"}
	config.ErrorOutputPaths = []string{"stderr"}
	if len(opts.OutputPaths) > 0 {
		config.OutputPaths = opts.OutputPaths
	}

	logger, err := config.Build()
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize logger")
	}
	return logger, nil
}

// ErrorFields expands a coded error into structured fields. Error metadata is
// nested under "meta" so it never collides with the caller's own fields.
func ErrorFields(err error) []zap.Field {
	if err == nil {
		return nil
	}

	fields := []zap.Field{
		zap.Error(err),
		zap.String("code", errors.GetCode(err).String()),
	}
	if meta := errors.GetMeta(err); len(meta) > 0 {
		fields = append(fields, zap.Any("meta", meta))
	}
	return fields
}
