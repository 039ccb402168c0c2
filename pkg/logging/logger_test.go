package logging

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

// TestNilLogger tests that a nil logger can be used without panicking.
func TestNilLogger(t *testing.T) {
	var logger *Logger
	logger.Warn(errors.New("warning"))
	logger.Infof("%s", "info")
	logger.Debug("debug")
	logger.Debugf("%s", "debug")
	logger.Tracef("%s", "trace")
	if logger.Sublogger("child") != nil {
		t.Error("sublogger of nil logger is non-nil")
	}
}

// TestDisabledLoggerIsNil tests that creating a disabled logger yields nil.
func TestDisabledLoggerIsNil(t *testing.T) {
	if NewLogger(LevelDisabled, &bytes.Buffer{}, false) != nil {
		t.Error("disabled logger is non-nil")
	}
}

// TestLoggerLevelGating tests that messages above the logger's level are
// suppressed.
func TestLoggerLevelGating(t *testing.T) {
	// Create a logger at info level.
	buffer := &bytes.Buffer{}
	logger := NewLogger(LevelInfo, buffer, false)

	// Log at various levels.
	logger.Infof("visible %d", 1)
	logger.Debugf("hidden %d", 2)
	logger.Tracef("hidden %d", 3)
	logger.Warn(errors.New("visible warning"))

	// Verify output.
	output := buffer.String()
	if !strings.Contains(output, "visible 1") {
		t.Error("info message missing from output")
	}
	if !strings.Contains(output, "Warning: visible warning") {
		t.Error("warning message missing from output")
	}
	if strings.Contains(output, "hidden") {
		t.Error("output contains messages above logger level")
	}
}

// TestLoggerWarningBelowLevel tests that warnings are suppressed for loggers
// that only emit errors.
func TestLoggerWarningBelowLevel(t *testing.T) {
	buffer := &bytes.Buffer{}
	NewLogger(LevelError, buffer, false).Warn(errors.New("warning"))
	if buffer.Len() != 0 {
		t.Error("warning emitted by error-level logger:", buffer.String())
	}
}

// TestLoggerWarningColor tests that warnings are colorized only when the
// destination supports color.
func TestLoggerWarningColor(t *testing.T) {
	// Log to a destination without color support.
	plain := &bytes.Buffer{}
	NewLogger(LevelWarn, plain, false).Warn(errors.New("warning"))
	if strings.Contains(plain.String(), "\x1b[") {
		t.Error("colorless destination received escape sequences:", plain.String())
	}

	// Log to a destination with color support.
	colored := &bytes.Buffer{}
	NewLogger(LevelWarn, colored, true).Sublogger("cli").Warn(errors.New("warning"))
	if !strings.Contains(colored.String(), "[cli] \x1b[33mWarning: warning\x1b[0m") {
		t.Errorf("colored destination missing escape sequences: %q", colored.String())
	}
}

// TestSubloggerPrefix tests that subloggers prefix their messages with their
// full name and inherit the parent's level.
func TestSubloggerPrefix(t *testing.T) {
	// Create a logger hierarchy.
	buffer := &bytes.Buffer{}
	logger := NewLogger(LevelDebug, buffer, false).Sublogger("cli").Sublogger("parse")

	// Log and verify output, including level inheritance.
	logger.Debug("message")
	logger.Tracef("hidden")
	if !strings.Contains(buffer.String(), "[cli.parse] message") {
		t.Error("sublogger output missing prefix:", buffer.String())
	}
	if strings.Contains(buffer.String(), "hidden") {
		t.Error("sublogger emitted message above inherited level")
	}
}
