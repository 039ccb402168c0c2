package cmd

import (
	"fmt"
	"io"
)

// Warning prints a warning message to the specified writer, which is normally
// standard error.
func Warning(output io.Writer, message string) {
	fmt.Fprintln(output, "Warning:", message)
}

// Error prints an error message to the specified writer, which is normally
// standard error.
func Error(output io.Writer, err error) {
	fmt.Fprintln(output, "Error:", err)
}
