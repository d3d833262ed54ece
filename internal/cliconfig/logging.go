package cliconfig

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/bft-labs/logostamp/pkg/log"
)

var bootLogger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
	With().Timestamp().Logger()

// Logger returns the console logger used before configuration is loaded.
func Logger() zerolog.Logger {
	return bootLogger
}

// NewLogger builds the run logger from the validated config. The closer
// releases the rotating log file and must be closed before exit.
func NewLogger(c Config, out io.Writer) (*log.ZerologAdapter, io.Closer, error) {
	return log.NewZerologAdapterWithOptions(log.Options{
		Level:   c.LogLevel,
		Format:  log.FormatAuto,
		Out:     out,
		LogFile: c.LogFile,
	})
}
