// Package cli implements the CLI command structure for tt.
package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/nibzard/tt/internal/config"
	"github.com/nibzard/tt/internal/logging"
	"github.com/nibzard/tt/internal/store"
	"github.com/nibzard/tt/internal/ui"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Run executes the tt CLI. Commands validate their arguments before any
// mutation, report success on stdout, and return an error for the caller
// to print on stderr with exit status 1.
func Run(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("tt", flag.ContinueOnError)
	fs.Usage = func() {
		printUsage(fs, os.Stderr)
	}
	help := fs.Bool("help", false, "Show help")
	fs.BoolVar(help, "h", false, "Show help")
	showVersion := fs.Bool("version", false, "Show version")
	fs.BoolVar(showVersion, "v", false, "Show version")

	// Global flags; parsing stops at the subcommand.
	cfg, err := config.Load(fs, args)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if *help {
		printUsage(fs, os.Stdout)
		return nil
	}
	if *showVersion {
		return versionCommand()
	}

	logger := logging.NewFromConfig(cfg.LogLevel, cfg.LogFormat, cfg.LogTimestamps, cfg.LogCaller)

	rest := fs.Args()
	if len(rest) == 0 {
		printUsage(fs, os.Stdout)
		return nil
	}
	command := rest[0]
	rest = rest[1:]

	switch command {
	case "add":
		return addCommand(cfg, logger, rest)
	case "list":
		return listCommand(cfg, logger, rest)
	case "done":
		return doneCommand(cfg, rest)
	case "rm":
		return rmCommand(cfg, rest)
	case "clear":
		return clearCommand(cfg, rest)
	case "export":
		return exportCommand(cfg, logger, rest)
	case "import":
		return importCommand(cfg, logger, rest)
	case "doctor":
		return doctorCommand(cfg, rest)
	case "tui":
		return tuiCommand(ctx, cfg, rest)
	case "version":
		return versionCommand()
	case "help":
		printUsage(fs, os.Stdout)
		return nil
	default:
		return fmt.Errorf("unknown command %q (try 'tt help')", command)
	}
}

// tuiCommand launches the interactive task browser.
func tuiCommand(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("unexpected arguments: %v", args)
	}
	return ui.RunTUI(ctx, store.New(cfg.DataFile))
}

// versionCommand prints version information.
func versionCommand() error {
	fmt.Printf("tt version %s\n", Version)
	return nil
}

// printUsage prints the usage message.
func printUsage(fs *flag.FlagSet, w io.Writer) {
	fmt.Fprintln(w, "Task Tracker (tt)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  tt add <title words...> [-p H|M|L] [-d YYYY-MM-DD]")
	fmt.Fprintln(w, "  tt list [--all|--pending|--done] [--sort=due|priority|id]")
	fmt.Fprintln(w, "  tt done <id>")
	fmt.Fprintln(w, "  tt rm <id>")
	fmt.Fprintln(w, "  tt clear [--done|--all]")
	fmt.Fprintln(w, "  tt export [file]")
	fmt.Fprintln(w, "  tt import <file>")
	fmt.Fprintln(w, "  tt tui")
	fmt.Fprintln(w, "  tt doctor [-v]")
	fmt.Fprintln(w, "  tt version")
	fmt.Fprintln(w, "  tt help")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Notes:")
	fmt.Fprintln(w, "  - 'tt list' shows ALL tasks by default. Completed ones display as [x].")
	fmt.Fprintln(w, "  - Use --pending to show only pending, or --done to show only completed.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Global Options:")
	fs.SetOutput(w)
	fs.PrintDefaults()
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Data file: tasks.tsv (in current directory; override with -file or tt.toml)")
}
