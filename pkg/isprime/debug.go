package isprime

import (
	"os"
)

const (
	// DebugEnvironmentVariable is the environment variable that enables debug
	// logging when set to "1".
	DebugEnvironmentVariable = "ISPRIME_DEBUG"
	// LogLevelEnvironmentVariable is the environment variable that specifies
	// the default log level. It is overridden by the --log-level flag.
	LogLevelEnvironmentVariable = "ISPRIME_LOG_LEVEL"
)

// DebugEnabled controls whether or not debugging is enabled for isprime. It is
// set automatically based on the ISPRIME_DEBUG environment variable.
var DebugEnabled bool

func init() {
	// Check whether or not debugging should be enabled.
	DebugEnabled = os.Getenv(DebugEnvironmentVariable) == "1"
}
