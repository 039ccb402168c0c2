package main

import (
	"fmt"
	"math/big"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/isprime/isprime/cmd"
	"github.com/isprime/isprime/pkg/isprime"
	"github.com/isprime/isprime/pkg/logging"
	"github.com/isprime/isprime/pkg/numeric"
	"github.com/isprime/isprime/pkg/primality"
)

const (
	// invalidNumberMessage is printed when the argument isn't a valid 64-bit
	// unsigned integer.
	invalidNumberMessage = "Please provide a valid number."
	// primeIndicator is printed for prime values.
	primeIndicator = "1"
	// compositeIndicator is printed for values that aren't prime.
	compositeIndicator = "0"
)

// rootConfiguration stores configuration for the root command.
type rootConfiguration struct {
	// help indicates whether or not to show help information and exit.
	help bool
	// version indicates whether or not to show version information and exit.
	version bool
	// legal indicates whether or not to show legal information and exit.
	legal bool
	// describe indicates whether or not to print a human-readable verdict
	// instead of a numeric indicator.
	describe bool
	// logLevel is the log level specified on the command line, if any.
	logLevel cmd.LevelFlag
}

// root is the state of a root command invocation.
type root struct {
	// programName is the name by which the program was invoked.
	programName string
	// stdout is the output for results.
	stdout cmd.Output
	// stderr is the output for diagnostics.
	stderr cmd.Output
	// configuration is the command line configuration.
	configuration rootConfiguration
}

// newRootCommand creates a new root command for the specified arguments (sans
// program name). Each command carries its own configuration, so it should only
// be executed once.
func newRootCommand(programName string, arguments []string, stdout, stderr cmd.Output) *cobra.Command {
	// Create the invocation state.
	r := &root{
		programName: programName,
		stdout:      stdout,
		stderr:      stderr,
	}

	// Create the command.
	rootCommand := &cobra.Command{
		Use:     "isprime <number>",
		Version: isprime.Version,
		Short:   "Report whether or not a number is prime",
		Long: fmt.Sprintf(
			"Report whether or not a number between 0 and %s is prime by printing 1\n"+
				"(prime) or 0 (not prime). The default log level can be set with the\n"+
				"%s environment variable.",
			numeric.MaxUint64Description,
			isprime.LogLevelEnvironmentVariable,
		),
		Args:          cobra.ArbitraryArgs,
		RunE:          r.main,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Set output streams.
	rootCommand.SetOut(stdout.Writer)
	rootCommand.SetErr(stderr.Writer)

	// Disable Cobra's use of mousetrap. The command is meant to be used from
	// scripts as much as from consoles.
	cobra.MousetrapHelpText = ""

	// Set the template used by the version flag.
	rootCommand.SetVersionTemplate("isprime version {{ .Version }}\n")

	// Register flags.
	r.registerFlags(rootCommand.Flags())

	// Anything that the flag parser still can't recognize (such as a shorthand
	// group with an unknown character) is an attempt at a number.
	rootCommand.SetFlagErrorFunc(r.flagError)

	// Set arguments. The number is kept away from the flag parser.
	rootCommand.SetArgs(separateNumber(rootCommand.Flags(), arguments))

	// Done.
	return rootCommand
}

// registerFlags registers the root command's flags.
func (r *root) registerFlags(flags *pflag.FlagSet) {
	// Disable alphabetical sorting of flags in help output.
	flags.SortFlags = false

	// Manually add a help flag to override the default message. Cobra will
	// still implement its logic automatically.
	flags.BoolVarP(&r.configuration.help, "help", "h", false, "Show help information")

	// Manually add a version flag so that it's registered before arguments
	// are separated. Cobra will still implement its logic automatically.
	flags.BoolVarP(&r.configuration.version, "version", "v", false, "Show version information")

	// Wire up flags.
	flags.BoolVarP(&r.configuration.describe, "describe", "d", false, "Print a human-readable verdict")
	flags.Var(&r.configuration.logLevel, "log-level", "Set the diagnostic log level (disabled|error|warn|info|debug|trace)")
	flags.BoolVar(&r.configuration.legal, "legal", false, "Show legal information")
}

// flagError handles flag parsing errors. Unknown flags are reported the same
// way as any other unparsable number. Other errors (such as invalid flag
// values) are returned.
func (r *root) flagError(_ *cobra.Command, err error) error {
	if isUnknownFlagError(err) {
		fmt.Fprintln(r.stdout, invalidNumberMessage)
		return nil
	}
	return err
}

// logLevel determines the effective log level. The command line takes
// precedence over the environment, and debugging mode raises the level to at
// least debug.
func (r *root) logLevel(command *cobra.Command) logging.Level {
	// Use the command line level if one was specified.
	if command.Flags().Changed("log-level") {
		return r.configuration.logLevel.Level
	}

	// Otherwise look at the environment.
	level := logging.LevelDisabled
	if name, ok := os.LookupEnv(isprime.LogLevelEnvironmentVariable); ok {
		if l, valid := logging.NameToLevel(name); valid {
			level = l
		} else {
			cmd.Warning(r.stderr, fmt.Sprintf("ignoring invalid %s value: %q",
				isprime.LogLevelEnvironmentVariable, name,
			))
		}
	}

	// Apply debugging mode.
	if isprime.DebugEnabled && level < logging.LevelDebug {
		level = logging.LevelDebug
	}

	// Done.
	return level
}

// main is the entry point for the root command.
func (r *root) main(command *cobra.Command, arguments []string) error {
	// Handle legal information requests.
	if r.configuration.legal {
		fmt.Fprint(r.stdout, isprime.LegalNotice)
		return nil
	}

	// Create the logger.
	logger := logging.NewLogger(r.logLevel(command), r.stderr, r.stderr.Color).Sublogger("isprime")
	logger.Debugf("invoked as %q with %d argument(s)", r.programName, len(arguments))

	// Print usage information if no number was provided. This isn't treated
	// as an error.
	if len(arguments) < 1 {
		logger.Debug("no number provided")
		fmt.Fprintf(r.stdout, "Usage: %s <number>\n", r.programName)
		return nil
	}

	// Parse the number. Parse failures are reported on standard output and
	// aren't treated as an error either.
	n, err := numeric.ParseUint64(arguments[0])
	if err != nil {
		logger.Debugf("unable to parse %q: %v", arguments[0], err)
		fmt.Fprintln(r.stdout, invalidNumberMessage)
		return nil
	}
	if len(arguments) > 1 {
		logger.Warn(errors.Errorf("ignoring %d extra argument(s)", len(arguments)-1))
	}

	// Print the verdict.
	logger.Tracef("square root bound for %d is %d", n, primality.SquareRootBound(n))
	if r.configuration.describe {
		fmt.Fprintln(r.stdout, r.description(n))
	} else if primality.IsPrime(n) {
		fmt.Fprintln(r.stdout, primeIndicator)
	} else {
		fmt.Fprintln(r.stdout, compositeIndicator)
	}
	logger.Infof("checked %d", n)

	// Success.
	return nil
}

// description formats a human-readable primality verdict for n.
func (r *root) description(n uint64) string {
	// Format the number with thousands separators. Values above the signed
	// 64-bit range need the big integer formatter.
	number := humanize.BigComma(new(big.Int).SetUint64(n))

	// Format the verdict.
	no := r.stdout.Colorize("no", color.FgRed)
	if n <= 1 {
		return fmt.Sprintf("Is %s prime? %s", number, no)
	} else if divisor, composite := primality.SmallestDivisor(n); composite {
		return fmt.Sprintf("Is %s prime? %s (divisible by %s)",
			number, no, humanize.BigComma(new(big.Int).SetUint64(divisor)),
		)
	}
	return fmt.Sprintf("Is %s prime? %s", number, r.stdout.Colorize("yes", color.FgGreen))
}
