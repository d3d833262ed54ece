package logostamp

import (
	"github.com/bft-labs/logostamp/internal/ports"
	"github.com/bft-labs/logostamp/pkg/log"
)

// Logger is the interface for structured logging.
type Logger = ports.Logger

// LogField represents a structured log field.
type LogField = ports.Field

// Option configures optional behavior of a Stamper.
type Option func(*options)

type options struct {
	logger       ports.Logger
	eventHandler EventHandler
}

func defaultOptions() options {
	return options{
		logger: log.NewNoopLogger(),
	}
}

// WithLogger sets a custom logger for structured logging.
// If not provided, a no-op logger is used (no output).
func WithLogger(logger Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithEventHandler sets a handler notified after each file.
// Events are called synchronously from the batch loop.
func WithEventHandler(handler EventHandler) Option {
	return func(o *options) {
		o.eventHandler = handler
	}
}
