// Package log provides a logging abstraction for logostamp components.
//
// This package defines a Logger interface that can be implemented by
// any logging library. Default implementations are provided for zerolog
// and a no-op logger for testing.
//
// # Usage
//
// Build a zerolog-backed logger that picks console or JSON output from the
// terminal state of stderr:
//
//	logger, closer, err := log.NewZerologAdapterWithOptions(log.Options{
//	    Level:   "info",
//	    LogFile: "/var/log/logostamp.log",
//	})
//	defer closer.Close()
//
// Or use the no-op logger for testing:
//
//	logger := log.NewNoopLogger()
//
// # Scoped Loggers
//
// With returns a child logger that adds fields to every message. The batch
// driver uses it to tag all messages about one file:
//
//	fileLog := logger.With(log.String("file", name))
//
// # Custom Loggers
//
// Implement the Logger interface to integrate with your existing
// logging infrastructure:
//
//	type MyLogger struct { ... }
//
//	func (l *MyLogger) Debug(msg string, fields ...log.Field) { ... }
//	func (l *MyLogger) Info(msg string, fields ...log.Field) { ... }
//	func (l *MyLogger) Warn(msg string, fields ...log.Field) { ... }
//	func (l *MyLogger) Error(msg string, fields ...log.Field) { ... }
//	func (l *MyLogger) With(fields ...log.Field) log.Logger { ... }
package log
