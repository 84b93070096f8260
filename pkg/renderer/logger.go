package renderer

import (
	"io"
	"log"

	"github.com/mravel/pathtracer/pkg/core"
)

// DefaultLogger implements core.Logger with a standard library *log.Logger
// writing timestamped lines, used for --profile output and scene-load
// diagnostics.
type DefaultLogger struct {
	logger *log.Logger
}

// NewDefaultLogger creates a DefaultLogger writing to w with a microsecond
// timestamp prefix.
func NewDefaultLogger(w io.Writer) *DefaultLogger {
	return &DefaultLogger{logger: log.New(w, "", log.LstdFlags|log.Lmicroseconds)}
}

// Printf formats and logs a message.
func (l *DefaultLogger) Printf(format string, args ...interface{}) {
	l.logger.Printf(format, args...)
}

var _ core.Logger = (*DefaultLogger)(nil)
