package main

import (
	"strings"

	"github.com/spf13/pflag"
)

// flagTerminator is the argument that ends flag parsing.
const flagTerminator = "--"

// lookupFlag finds the registered flag named by an argument, if any. It also
// returns whether or not the flag takes its value from the next argument.
// Shorthand groups are identified by their first character only.
func lookupFlag(flags *pflag.FlagSet, argument string) (*pflag.Flag, bool) {
	switch {
	case len(argument) > 2 && strings.HasPrefix(argument, "--"):
		name := argument[2:]
		inline := false
		if index := strings.IndexByte(name, '='); index >= 0 {
			name, inline = name[:index], true
		}
		flag := flags.Lookup(name)
		if flag == nil {
			return nil, false
		}
		return flag, !inline && flag.NoOptDefVal == ""
	case len(argument) > 1 && argument[0] == '-' && argument[1] != '-':
		flag := flags.ShorthandLookup(argument[1:2])
		if flag == nil {
			return nil, false
		}
		return flag, len(argument) == 2 && flag.NoOptDefVal == ""
	default:
		return nil, false
	}
}

// separateNumber inserts a flag terminator before the first argument that
// isn't a registered flag (or a registered flag's value). That argument is the
// number, even if it starts with a dash or is itself "--", and everything after
// it is positional. The result is never nil.
func separateNumber(flags *pflag.FlagSet, arguments []string) []string {
	// Allocate result storage with room for the terminator.
	result := make([]string, 0, len(arguments)+1)

	// Scan arguments.
	for i := 0; i < len(arguments); i++ {
		flag, takesValue := lookupFlag(flags, arguments[i])
		if flag == nil {
			result = append(result, flagTerminator)
			return append(result, arguments[i:]...)
		}
		result = append(result, arguments[i])
		if takesValue && i+1 < len(arguments) {
			i++
			result = append(result, arguments[i])
		}
	}

	// Done.
	return result
}

// isUnknownFlagError returns whether or not a flag parsing error was caused by
// an unregistered flag. pflag doesn't export a type for this condition.
func isUnknownFlagError(err error) bool {
	message := err.Error()
	return strings.HasPrefix(message, "unknown flag") ||
		strings.HasPrefix(message, "unknown shorthand flag")
}
