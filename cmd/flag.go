package cmd

import (
	"github.com/pkg/errors"
	"github.com/spf13/pflag"

	"github.com/isprime/isprime/pkg/logging"
)

// LevelFlag is a pflag.Value implementation for log levels.
type LevelFlag struct {
	// Level is the parsed level.
	Level logging.Level
}

// String implements pflag.Value.String.
func (f *LevelFlag) String() string {
	return f.Level.String()
}

// Set implements pflag.Value.Set.
func (f *LevelFlag) Set(value string) error {
	level, ok := logging.NameToLevel(value)
	if !ok {
		return errors.Errorf("invalid log level: %s", value)
	}
	f.Level = level
	return nil
}

// Type implements pflag.Value.Type.
func (f *LevelFlag) Type() string {
	return "level"
}

// LevelFlag must implement pflag.Value.
var _ pflag.Value = (*LevelFlag)(nil)
