// Package cmd implements the sidenav CLI commands.
//
// A root command dispatches to subcommands (replay, config) registered from
// init functions.
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/go-drift/sidenav/pkg/errors"
	"github.com/go-drift/sidenav/pkg/log"
)

// Version information set at build time.
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

// stdout receives command output.
var stdout io.Writer = os.Stdout

// Command represents a CLI command.
type Command struct {
	Name  string
	Short string
	Long  string
	Usage string
	Run   func(args []string) error
}

var rootCmd = &Command{
	Name:  "sidenav",
	Short: "sidenav - side navigation drawer tooling",
	Long: `sidenav replays recorded drawer gestures against the gesture
classifier and settle animator, and prints or renders the result.

Use "sidenav <command> --help" for more information about a command.`,
	Usage: "sidenav <command> [flags]",
}

// Commands registered with the CLI, in registration order.
var (
	commands    = make(map[string]*Command)
	subCommands []*Command
)

// RegisterCommand adds a command to the CLI.
func RegisterCommand(cmd *Command) {
	commands[cmd.Name] = cmd
	subCommands = append(subCommands, cmd)
}

// Execute runs the CLI with os.Args.
func Execute() error {
	return run(os.Args[1:])
}

func run(args []string) error {
	errors.SetHandler(&errors.LogHandler{})

	var filtered []string
	for _, arg := range args {
		switch arg {
		case "-h", "--help", "help":
			if len(filtered) == 0 {
				printHelp()
				return nil
			}
			filtered = append(filtered, arg)
		case "-v", "--version", "version":
			if len(filtered) == 0 {
				fmt.Fprintf(stdout, "sidenav version %s (built %s)\n", Version, BuildTime)
				return nil
			}
			filtered = append(filtered, arg)
		case "--debug":
			log.EnableDebug = true
		case "--no-color":
			log.Colors = false
			log.ResetLoggers()
		default:
			filtered = append(filtered, arg)
		}
	}

	if len(filtered) == 0 {
		printHelp()
		return nil
	}

	name := filtered[0]
	cmd, ok := commands[name]
	if !ok {
		printHelp()
		return fmt.Errorf("unknown command: %s", name)
	}

	cmdArgs := filtered[1:]
	for _, arg := range cmdArgs {
		if arg == "-h" || arg == "--help" || arg == "help" {
			printCommandHelp(cmd)
			return nil
		}
	}
	return cmd.Run(cmdArgs)
}

func printHelp() {
	fmt.Fprintln(stdout, rootCmd.Long)
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Usage:")
	fmt.Fprintf(stdout, "  %s\n", rootCmd.Usage)
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Commands:")
	for _, sub := range subCommands {
		fmt.Fprintf(stdout, "  %-14s %s\n", sub.Name, sub.Short)
	}
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Flags:")
	fmt.Fprintln(stdout, "  -h, --help           Show help for a command")
	fmt.Fprintln(stdout, "  -v, --version        Show version information")
	fmt.Fprintln(stdout, "  --debug              Log gesture classification and settles")
	fmt.Fprintln(stdout, "  --no-color           Disable coloured log prefixes")
}

func printCommandHelp(cmd *Command) {
	fmt.Fprintln(stdout, cmd.Long)
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Usage:")
	fmt.Fprintf(stdout, "  %s\n", cmd.Usage)
}
