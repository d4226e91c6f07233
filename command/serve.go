package command

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/mitchellh/cli"
	"github.com/pkg/browser"

	"github.com/webdiag/webdiag/hcl"
	"github.com/webdiag/webdiag/server"
)

// helpText is the short usage guidance shown under --help.
const serveHelpText = `Usage: webdiag serve [options]

Starts the diagnostic HTTP server. Every GET request, on any path, is answered with a
static status page, which is enough to confirm the machine is reachable. The server
runs until interrupted.
`

// serveSynopsis is provided in the help output of the enclosing scope, for example `webdiag --help`.
const serveSynopsis = `Run a diagnostic HTTP server for reachability checks`

var _ cli.Command = &ServeCommand{}

type ServeCommand struct {
	ui    cli.Ui
	flags *flag.FlagSet

	host      string
	port      int
	noBrowser bool

	// HCL file location
	config string
}

func (c *ServeCommand) init() {
	const (
		hostUsageText      = "Address to bind; 0.0.0.0 listens on all interfaces"
		portUsageText      = "TCP port to listen on"
		noBrowserUsageText = "Skip the startup attempt to open a web browser at the server root"
		configUsageText    = "Path to HCL configuration file; explicit flags take precedence over its values"
	)

	// flag.ContinueOnError allows flag.Parse to return an error if one comes up, rather than doing an `os.Exit(2)`
	// on its own.
	c.flags = flag.NewFlagSet("serve", flag.ContinueOnError)

	c.flags.StringVar(&c.host, "host", server.DefaultHost, hostUsageText)
	c.flags.IntVar(&c.port, "port", server.DefaultPort, portUsageText)
	c.flags.BoolVar(&c.noBrowser, "no-browser", false, noBrowserUsageText)
	c.flags.StringVar(&c.config, "config", "", configUsageText)

	// When invalid flags are provided, Go will output a usage message of its own. If we direct our flag set to
	// io.Discard, it will effectively be hidden, allowing us to print our own Help message upon failure.
	c.flags.SetOutput(io.Discard)
}

// NewServeCommand produces a new *ServeCommand pointer, initialized for use in a CLI application.
func NewServeCommand(ui cli.Ui) *ServeCommand {
	c := &ServeCommand{ui: ui}
	c.init()
	return c
}

// ServeCommandFactory provides a cli.CommandFactory that will produce an appropriately-initiated *ServeCommand.
func ServeCommandFactory(ui cli.Ui) cli.CommandFactory {
	return func() (cli.Command, error) {
		return NewServeCommand(ui), nil
	}
}

// Help provides help text to users who pass in the --help flag or who enter invalid options.
func (c *ServeCommand) Help() string {
	return Usage(serveHelpText, c.flags)
}

// Synopsis provides a brief description of the command, for inclusion in the application's primary --help.
func (c *ServeCommand) Synopsis() string {
	return serveSynopsis
}

// Run executes the command. A bind failure is fatal and reported before the server
// enters its listening state.
func (c *ServeCommand) Run(args []string) int {
	if err := c.flags.Parse(args); err != nil {
		// Output the specific error to help the user understand what went wrong.
		c.ui.Warn(err.Error())
		// Since there was an issue in input, let's show our Help to try and assist the user.
		c.ui.Warn(c.Help())
		return FlagParseError
	}

	l := configureLogging("webdiag")

	cfg := server.Config{Host: c.host, Port: c.port}
	openBrowser := !c.noBrowser
	if c.config != "" {
		fileCfg, err := hcl.Parse(c.config)
		if err != nil {
			l.Error("Failed to load configuration", "config", c.config, "error", err)
			return ConfigError
		}
		l.Debug("HCL config is", "hcl", fmt.Sprintf("%+v", fileCfg))
		cfg, openBrowser = c.mergeServerConfig(cfg, openBrowser, fileCfg)
	}

	srv := server.New(cfg, l)
	if err := srv.Start(); err != nil {
		l.Error("Failed to start diagnostic server", "error", err)
		return ServerError
	}

	c.ui.Output(fmt.Sprintf("Server started at http://%s", srv.Addr()))
	c.ui.Output("Try accessing:")
	for _, u := range srv.CandidateURLs() {
		c.ui.Output("- " + u)
	}
	c.ui.Output("Press Ctrl+C to stop the server")

	if openBrowser {
		openRootURL(srv.Port())
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := srv.Serve(ctx); err != nil {
		l.Error("Diagnostic server failed", "error", err)
		return ServerError
	}
	return Success
}

// mergeServerConfig merges the HCL file into the flag values. Flags the user set
// explicitly win over the file; file values win over flag defaults.
func (c *ServeCommand) mergeServerConfig(cfg server.Config, openBrowser bool, file hcl.HCL) (server.Config, bool) {
	if file.Server == nil {
		return cfg, openBrowser
	}

	set := map[string]bool{}
	c.flags.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if !set["host"] && file.Server.Host != "" {
		cfg.Host = file.Server.Host
	}
	if !set["port"] && file.Server.Port != 0 {
		cfg.Port = file.Server.Port
	}
	if !set["no-browser"] && file.Server.OpenBrowser != nil {
		openBrowser = *file.Server.OpenBrowser
	}
	return cfg, openBrowser
}

// openRootURL makes a best-effort attempt to open the operator's browser at the server
// root. Headless machines and containers have no browser to open, so failures are
// swallowed entirely and never affect the server.
func openRootURL(port int) {
	browser.Stdout = io.Discard
	browser.Stderr = io.Discard
	_ = browser.OpenURL(fmt.Sprintf("http://localhost:%d/", port))
}
