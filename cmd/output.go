package cmd

import (
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

// Output is a destination for command output. It records whether or not color
// escape sequences should be emitted to the destination.
type Output struct {
	// Writer is the underlying destination.
	io.Writer
	// Color indicates whether or not the destination supports color.
	Color bool
}

// NewOutput creates an output for the specified file (normally standard output
// or standard error). Color is enabled only if the file is a terminal that
// isn't marked as dumb. On Windows, the file is wrapped so that color escape
// sequences are translated into console API calls.
func NewOutput(file *os.File) Output {
	// Determine whether or not the file is attached to a terminal.
	descriptor := file.Fd()
	terminal := isatty.IsTerminal(descriptor) || isatty.IsCygwinTerminal(descriptor)

	// Create the output.
	return Output{
		Writer: colorable.NewColorable(file),
		Color:  terminal && os.Getenv("TERM") != "dumb",
	}
}

// Colorize formats text with the specified color attributes if the output
// supports color. Otherwise text is returned unmodified.
func (o Output) Colorize(text string, attributes ...color.Attribute) string {
	// Create the color and explicitly set its mode based on the output rather
	// than the global detection performed by the color package (which only
	// looks at standard output).
	c := color.New(attributes...)
	if o.Color {
		c.EnableColor()
	} else {
		c.DisableColor()
	}

	// Format the text.
	return c.Sprint(text)
}
