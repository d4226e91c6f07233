package main

import (
	"os"

	"github.com/mitchellh/cli"

	"github.com/webdiag/webdiag/command"
	"github.com/webdiag/webdiag/version"
)

func main() {
	os.Exit(realMain())
}

func realMain() int {
	ui := &cli.BasicUi{
		Reader:      os.Stdin,
		Writer:      os.Stdout,
		ErrorWriter: os.Stderr,
	}

	c := cli.NewCLI("webdiag", version.GetVersion().FullVersionNumber(true))
	c.Args = os.Args[1:]
	c.Commands = map[string]cli.CommandFactory{
		"redact":  command.RedactCommandFactory(ui),
		"serve":   command.ServeCommandFactory(ui),
		"version": command.VersionCommandFactory(ui),
	}

	rc, err := c.Run()
	if err != nil {
		ui.Error(err.Error())
	}
	return rc
}
