package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
)

var (
	version = "dev"
	commit  = "unknown"
)

// Globals are the flags shared by every command.
type Globals struct {
	Config   string `help:"Path to the YAML config file." default:"rosterctl.yaml" type:"path" short:"c"`
	LogLevel string `help:"Log level (debug, info, warn, error). Overrides log.level of the config file." name:"log-level"`
	Output   string `help:"Output format. auto prints text on a terminal and JSON otherwise." enum:"auto,text,json" default:"auto" short:"o"`
}

// CLI is the top-level command structure for rosterctl.
type CLI struct {
	Globals

	Version  kong.VersionFlag `help:"Show version." short:"V"`
	List     ListCmd          `cmd:"" help:"Load a table once and print it."`
	Watch    WatchCmd         `cmd:"" help:"Keep both tables loaded and log their size after every refresh."`
	Phone    PhoneCmd         `cmd:"" help:"Format a phone number as (AAA) BBB-CCCC."`
	Date     DateCmd          `cmd:"" help:"Check a month/day/year date."`
	Ampm     AmPmCmd          `cmd:"" help:"Convert a 24-hour HH:MM time to 12-hour notation."`
	Range    RangeCmd         `cmd:"" help:"Convert a 12-hour time range to 24-hour start and end times."`
	Truncate TruncateCmd      `cmd:"" help:"Shorten a document name for display."`
}

// errInvalid is returned by the format commands when the input is rejected.
var errInvalid = errors.New("invalid input")

func exitCode(err error) int {
	if errors.Is(err, errInvalid) {
		return 2
	}
	return 1
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var cli CLI
	kctx := kong.Parse(&cli,
		kong.Name("rosterctl"),
		kong.Description("Inspect the students and programs tables of the roster API."),
		kong.UsageOnError(),
		kong.Vars{"version": version + " " + commit},
		kong.BindTo(ctx, (*context.Context)(nil)),
	)
	if err := kctx.Run(&cli.Globals); err != nil {
		stop()
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(exitCode(err))
	}
}
