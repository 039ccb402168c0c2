package logging

import (
	"fmt"
	"io"
	"log"

	"github.com/fatih/color"
)

// Logger is the main logger type. It has the novel property that it still
// functions if nil, but it doesn't log anything. Each logger writes to its own
// destination (rather than the standard logger) and only emits messages at or
// below its configured level. It is safe for concurrent usage.
type Logger struct {
	// level is the maximum level at which messages are emitted.
	level Level
	// prefix is any prefix specified for the logger.
	prefix string
	// color indicates whether or not the destination supports color.
	color bool
	// output is the underlying standard library logger.
	output *log.Logger
}

// NewLogger creates a new root logger that writes messages at or below the
// specified level to destination. Warnings are colorized only if useColor is
// true. If level is LevelDisabled, then the result is nil, which is a valid
// logger that discards everything.
func NewLogger(level Level, destination io.Writer, useColor bool) *Logger {
	// Disabled loggers are represented by nil.
	if level == LevelDisabled {
		return nil
	}

	// Create the logger.
	return &Logger{
		level:  level,
		color:  useColor,
		output: log.New(destination, "", log.LstdFlags),
	}
}

// Sublogger creates a new sublogger with the specified name.
func (l *Logger) Sublogger(name string) *Logger {
	// If the logger is nil, then the sublogger will be as well.
	if l == nil {
		return nil
	}

	// Compute the new prefix.
	prefix := name
	if l.prefix != "" {
		prefix = l.prefix + "." + name
	}

	// Create the new logger.
	return &Logger{
		level:  l.level,
		prefix: prefix,
		color:  l.color,
		output: l.output,
	}
}

// enabled returns whether or not messages at the specified level should be
// emitted.
func (l *Logger) enabled(level Level) bool {
	return l != nil && level <= l.level
}

// emit is the internal logging method.
func (l *Logger) emit(line string) {
	// Add a prefix if necessary.
	if l.prefix != "" {
		line = fmt.Sprintf("[%s] %s", l.prefix, line)
	}

	// Log.
	l.output.Output(3, line)
}

// Warn logs error information with a warning prefix and yellow color (if the
// destination supports color).
func (l *Logger) Warn(err error) {
	if l.enabled(LevelWarn) {
		// Set the color mode based on the destination rather than the global
		// detection performed by the color package (which only looks at
		// standard output).
		warning := color.New(color.FgYellow)
		if l.color {
			warning.EnableColor()
		} else {
			warning.DisableColor()
		}
		l.emit(warning.Sprintf("Warning: %v", err))
	}
}

// Infof logs information with semantics equivalent to fmt.Printf.
func (l *Logger) Infof(format string, v ...interface{}) {
	if l.enabled(LevelInfo) {
		l.emit(fmt.Sprintf(format, v...))
	}
}

// Debug logs information with semantics equivalent to fmt.Print, but only if
// the logger is at debug level or above.
func (l *Logger) Debug(v ...interface{}) {
	if l.enabled(LevelDebug) {
		l.emit(fmt.Sprint(v...))
	}
}

// Debugf logs information with semantics equivalent to fmt.Printf, but only if
// the logger is at debug level or above.
func (l *Logger) Debugf(format string, v ...interface{}) {
	if l.enabled(LevelDebug) {
		l.emit(fmt.Sprintf(format, v...))
	}
}

// Tracef logs information with semantics equivalent to fmt.Printf, but only if
// the logger is at trace level.
func (l *Logger) Tracef(format string, v ...interface{}) {
	if l.enabled(LevelTrace) {
		l.emit(fmt.Sprintf(format, v...))
	}
}
