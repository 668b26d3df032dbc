// Package cmd implements the fluent CLI commands.
//
// The CLI is a diagnostic front end to the date picker and navigation shell
// logic: it prints what a host would render for a given locale, width or
// date, using the project's fluent.yaml when run inside a Go module.
package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/go-drift/fluent/pkg/config"
	"github.com/go-drift/fluent/pkg/datepicker"
	"github.com/go-drift/fluent/pkg/errors"
	"github.com/go-drift/fluent/pkg/navigation"
)

// Version information set at build time.
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

// Command represents a CLI command.
type Command struct {
	Name  string
	Short string
	Long  string
	Usage string
	Run   func(w io.Writer, args []string) error
}

var rootCmd = &Command{
	Name:  "fluent",
	Short: "fluent - date picker and navigation shell decisions",
	Long: `fluent prints the decisions the Fluent date picker and navigation
shell make for a locale, a window width or a date.

Use "fluent <command> --help" for more information about a command.`,
	Usage: "fluent [--verbose] <command> [args]",
}

var (
	commands    = make(map[string]*Command)
	subcommands []*Command
)

// RegisterCommand adds a command to the CLI.
func RegisterCommand(cmd *Command) {
	commands[cmd.Name] = cmd
	subcommands = append(subcommands, cmd)
}

// now is replaced in tests.
var now = time.Now

// Execute runs the CLI with the given arguments, writing output to w.
// A leading --verbose switches error reporting to a verbose LogHandler.
func Execute(args []string, w io.Writer) error {
	for len(args) > 0 && args[0] == "--verbose" {
		errors.SetHandler(&errors.LogHandler{Verbose: true})
		args = args[1:]
	}
	if len(args) == 0 {
		printHelp(w)
		return nil
	}

	switch args[0] {
	case "-h", "--help", "help":
		printHelp(w)
		return nil
	case "-v", "--version", "version":
		fmt.Fprintf(w, "fluent version %s (built %s)\n", Version, BuildTime)
		return nil
	}

	cmd, ok := commands[args[0]]
	if !ok {
		printHelp(w)
		return fmt.Errorf("unknown command: %s", args[0])
	}

	cmdArgs := args[1:]
	for _, arg := range cmdArgs {
		if arg == "-h" || arg == "--help" || arg == "help" {
			printCommandHelp(w, cmd)
			return nil
		}
	}
	return cmd.Run(w, cmdArgs)
}

func printHelp(w io.Writer) {
	fmt.Fprintln(w, rootCmd.Long)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintf(w, "  %s\n", rootCmd.Usage)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	for _, sub := range subcommands {
		fmt.Fprintf(w, "  %-10s %s\n", sub.Name, sub.Short)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -h, --help      Show help for a command")
	fmt.Fprintln(w, "  -v, --version   Show version information")
	fmt.Fprintln(w, "  --verbose       Report errors with kind and stack trace")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Examples:")
	fmt.Fprintln(w, "  fluent order en-US        Wheel order for a locale")
	fmt.Fprintln(w, "  fluent mode 900           Display mode for a 900px window")
	fmt.Fprintln(w, "  fluent days 2 2024        Days in February 2024")
}

func printCommandHelp(w io.Writer, cmd *Command) {
	fmt.Fprintln(w, cmd.Long)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintf(w, "  %s\n", cmd.Usage)
}

// loadConfig resolves fluent.yaml for the enclosing module, or returns the
// defaults when not run inside one.
func loadConfig() (*config.Resolved, error) {
	root, err := config.FindProjectRoot(".")
	if err != nil {
		return &config.Resolved{
			Locale:      datepicker.ParseLocale(os.Getenv("LANG")),
			Bounds:      datepicker.DefaultBounds(now()),
			DisplayMode: navigation.Automatic,
			Policy:      navigation.DefaultPaneWidthPolicy(),
		}, nil
	}
	return config.Resolve(root, now())
}
