package calculation

import (
	"log"
)

// Logger is a minimal logging interface for the projection engine.
// Implementations should be fast; the default is a no-op.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// NopLogger implements Logger with no output.
type NopLogger struct{}

func (NopLogger) Debugf(format string, args ...any) {}
func (NopLogger) Infof(format string, args ...any)  {}
func (NopLogger) Warnf(format string, args ...any)  {}
func (NopLogger) Errorf(format string, args ...any) {}

// StdLogger routes engine logging to the standard library logger, tagging
// each line with its level. The CLI installs it for --verbose runs.
type StdLogger struct{}

func (StdLogger) Debugf(format string, args ...any) { log.Printf("DEBUG "+format, args...) }
func (StdLogger) Infof(format string, args ...any)  { log.Printf("INFO  "+format, args...) }
func (StdLogger) Warnf(format string, args ...any)  { log.Printf("WARN  "+format, args...) }
func (StdLogger) Errorf(format string, args ...any) { log.Printf("ERROR "+format, args...) }
