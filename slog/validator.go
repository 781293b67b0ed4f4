package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/cmdref"
)

// Ensure LoggingValidator implements cmdref.Validator.
var _ cmdref.Validator = (*LoggingValidator)(nil)

// LoggingValidator wraps a Validator with debug logging.
type LoggingValidator struct {
	next   cmdref.Validator
	logger *slog.Logger
}

// NewLoggingValidator creates a new LoggingValidator.
func NewLoggingValidator(next cmdref.Validator, logger *slog.Logger) *LoggingValidator {
	return &LoggingValidator{next: next, logger: logger}
}

// Validate delegates to the wrapped validator and logs the result code.
func (v *LoggingValidator) Validate(data []byte) (err error) {
	defer func(begin time.Time) {
		v.logger.Debug("catalog validate",
			"bytes", len(data),
			"code", cmdref.ErrorCode(err),
			"duration", time.Since(begin),
		)
	}(time.Now())
	return v.next.Validate(data)
}
