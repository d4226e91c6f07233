package command

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/mitchellh/cli"

	"github.com/webdiag/webdiag/redact"
)

// helpText is the short usage guidance shown under --help.
const redactHelpText = `Usage: webdiag redact

Reads content on stdin, replaces known credential values with fixed placeholders, and
writes the result to stdout. Content that is not valid UTF-8 is passed through
unchanged. Intended to sit in a pipeline, for example as a version-control content
filter.
`

// redactSynopsis is provided in the help output of the enclosing scope, for example `webdiag --help`.
const redactSynopsis = `Redact known credentials from piped content`

var _ cli.Command = &RedactCommand{}

type RedactCommand struct {
	ui    cli.Ui
	flags *flag.FlagSet

	// in and out default to the process streams; tests substitute buffers.
	in  io.Reader
	out io.Writer
}

func (c *RedactCommand) init() {
	c.flags = flag.NewFlagSet("redact", flag.ContinueOnError)

	// When invalid flags are provided, Go will output a usage message of its own. If we direct our flag set to
	// io.Discard, it will effectively be hidden, allowing us to print our own Help message upon failure.
	c.flags.SetOutput(io.Discard)
}

// NewRedactCommand produces a new *RedactCommand pointer, initialized for use in a CLI application.
func NewRedactCommand(ui cli.Ui) *RedactCommand {
	c := &RedactCommand{ui: ui, in: os.Stdin, out: os.Stdout}
	c.init()
	return c
}

// RedactCommandFactory provides a cli.CommandFactory that will produce an appropriately-initiated *RedactCommand.
func RedactCommandFactory(ui cli.Ui) cli.CommandFactory {
	return func() (cli.Command, error) {
		return NewRedactCommand(ui), nil
	}
}

// Help provides help text to users who pass in the --help flag or who enter invalid options.
func (c *RedactCommand) Help() string {
	return Usage(redactHelpText, c.flags)
}

// Synopsis provides a brief description of the command, for inclusion in the application's primary --help.
func (c *RedactCommand) Synopsis() string {
	return redactSynopsis
}

// Run executes the filter. It always returns Success: a content filter that exits
// non-zero fails the pipeline around it, and the worst case here is a pass-through of
// the original bytes. Errors are still reported on the UI's error stream.
func (c *RedactCommand) Run(args []string) int {
	if err := c.flags.Parse(args); err != nil {
		c.ui.Warn(err.Error())
		c.ui.Warn(c.Help())
		return Success
	}

	if err := redact.Filter(c.out, c.in); err != nil {
		c.ui.Error(fmt.Sprintf("redaction filter error: %s", err))
	}
	return Success
}
