package plog

import (
	"context"
	"strings"

	"github.com/permitio/permit-golang/infra/perr"
)

// LogLevel is the level of logging
type LogLevel int

// Levels related to a message, in increasing verbosity
const (
	LogLevelNone    LogLevel = -1
	LogLevelError   LogLevel = 0
	LogLevelWarning LogLevel = 1
	LogLevelInfo    LogLevel = 2
	LogLevelDebug   LogLevel = 3
	LogLevelVerbose LogLevel = 4
)

// ParseLevel maps a config string ("error", "warning", "info", "debug", "verbose")
// to a LogLevel.
func ParseLevel(s string) (LogLevel, error) {
	switch strings.ToLower(s) {
	case "error":
		return LogLevelError, nil
	case "warning", "warn":
		return LogLevelWarning, nil
	case "info", "":
		return LogLevelInfo, nil
	case "debug":
		return LogLevelDebug, nil
	case "verbose":
		return LogLevelVerbose, nil
	}
	return LogLevelNone, perr.Errorf("unknown log level '%s'", s)
}

// String implements Stringer
func (l LogLevel) String() string {
	switch l {
	case LogLevelError:
		return "error"
	case LogLevelWarning:
		return "warning"
	case LogLevelInfo:
		return "info"
	case LogLevelDebug:
		return "debug"
	case LogLevelVerbose:
		return "verbose"
	}
	return "none"
}

// LogEvent is a single log record flowing through the transports
type LogEvent struct {
	Level   LogLevel
	Message string
}

// Transport defines a way for the logger to send events somewhere
type Transport interface {
	Init() error
	Write(ctx context.Context, event LogEvent)
	GetName() string
	Close()
}
