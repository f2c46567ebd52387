// Gray Logic Hub - slot-based home automation dispatcher with undo
//
// This is the main entry point for the Gray Logic Hub application. It
// assembles devices and the hub from configuration, attaches the enabled
// sinks (console, MQTT, InfluxDB, SQLite audit trail) and then either
// replays the demo sequence (-demo) or reads commands from stdin.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
)

// Version information - set at build time via ldflags
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123"
var (
	version = "dev"     // Semantic version (e.g., "1.0.0")
	commit  = "unknown" // Git commit hash
	date    = "unknown" // Build date
)

// Default configuration file path
const defaultConfigPath = "configs/config.yaml"

func main() {
	// Cancel on Ctrl+C or SIGTERM for graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, os.Args[1:], os.Stdin, os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// options are the parsed command-line flags.
type options struct {
	configPath  string
	demo        bool
	migrateDown bool
}

func parseFlags(args []string, out io.Writer) (options, error) {
	var opts options
	fs := flag.NewFlagSet("graylogic-hub", flag.ContinueOnError)
	fs.SetOutput(out)
	fs.StringVar(&opts.configPath, "config", "", "path to config.yaml (default $GRAYLOGIC_CONFIG or "+defaultConfigPath+")")
	fs.BoolVar(&opts.demo, "demo", false, "replay the demo sequence and exit")
	fs.BoolVar(&opts.migrateDown, "migrate-down", false, "roll back the latest audit database migration and exit")
	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	return opts, nil
}

// run is the actual application logic, separated from main for testability.
//
// Parameters:
//   - ctx: Context for cancellation and shutdown signals
//   - args: Command-line arguments without the program name
//   - in: Command input for interactive mode
//   - out: Console output (notifications, status, prompts)
//
// Returns:
//   - error: nil on clean shutdown, or error describing failure
func run(ctx context.Context, args []string, in io.Reader, out io.Writer) error {
	opts, err := parseFlags(args, out)
	if err != nil {
		return err
	}

	if opts.migrateDown {
		return migrateDown(ctx, opts.configPath, out)
	}

	source := "shell"
	if opts.demo {
		source = "demo"
	}
	app, err := newApp(ctx, opts.configPath, source, out)
	if err != nil {
		return err
	}
	defer app.Close()

	app.log.Info("starting Gray Logic Hub",
		"version", version,
		"commit", commit,
		"build_date", date,
	)

	if opts.demo {
		if err := runDemo(app, out); err != nil {
			return fmt.Errorf("running demo: %w", err)
		}
		app.log.Info("demo complete")
		return nil
	}

	newShell(app, out).Run(ctx, in)
	app.log.Info("Gray Logic Hub stopped")
	return nil
}
