package log

import (
	"strconv"
	"time"
)

// Logger is the structured logger the batch reports through. Implementations
// wrap a concrete library; see ZerologAdapter and NoopLogger.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)

	// With returns a child logger that adds fields to every message.
	With(fields ...Field) Logger
}

// Field is one key-value pair attached to a message.
type Field struct {
	Key   string
	Value interface{}
}

func String(key, value string) Field                 { return Field{Key: key, Value: value} }
func Int(key string, value int) Field                { return Field{Key: key, Value: value} }
func Bool(key string, value bool) Field              { return Field{Key: key, Value: value} }
func Duration(key string, value time.Duration) Field { return Field{Key: key, Value: value} }

// Any falls back to the backend's reflection encoding.
func Any(key string, value interface{}) Field { return Field{Key: key, Value: value} }

// Err attaches err under "error".
func Err(err error) Field {
	return Field{Key: "error", Value: err}
}

// File names the image a message is about.
func File(name string) Field {
	return Field{Key: "file", Value: name}
}

// Progress renders the 1-based position of a file in the batch as "i/n".
func Progress(index, total int) Field {
	return Field{Key: "progress", Value: strconv.Itoa(index+1) + "/" + strconv.Itoa(total)}
}
