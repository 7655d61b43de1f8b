package cli

import (
	"fmt"
	"io"
	"os"

	"erhu/internal/hints"
)

// Env carries what the commands need from main.
type Env struct {
	Hints     *hints.Book
	ShowHints bool
	Out       io.Writer
	Err       io.Writer
}

func (e Env) out() io.Writer {
	if e.Out == nil {
		return os.Stdout
	}
	return e.Out
}

func (e Env) err() io.Writer {
	if e.Err == nil {
		return os.Stderr
	}
	return e.Err
}

// Run executes the CLI with the given arguments and returns the exit code.
// The first argument is the command name.
func Run(args []string, env Env) int {
	if len(args) == 0 {
		printUsage(env.err())
		return 1
	}

	command := args[0]
	cmdArgs := args[1:]

	switch command {
	case "chart", "c":
		return runChart(cmdArgs, env)
	case "scale", "s":
		return runScale(cmdArgs, env)
	case "keys", "k":
		return runKeys(env)
	case "hint", "h":
		return runHint(cmdArgs, env)
	case "help", "-h", "--help":
		printUsage(env.out())
		return 0
	default:
		fmt.Fprintf(env.err(), "Unknown command: %s\n", command)
		printUsage(env.err())
		return 1
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, `erhu - Erhu fingering chart calculator

Usage: erhu [flags] [command] [arguments]

Commands:
  chart, c <key>   Print the fingering chart for a major key
                   erhu chart D
                   erhu chart Bb --no-hints
  scale, s <key>   Print the notes of the scale with their degrees
  keys, k          List the supported key spellings
  hint, h <key>    Print the playing hints for a key
  help             Show this help message

Flags:
  -k, --key <key>        Open the TUI on this key's chart
      --hints <dirs>     Extra hint directories (comma-separated)
      --no-hints         Hide hint text

Keys are a letter A-G, optionally followed by '#' or 'b' (e.g. D, F#, Bb).
Running erhu without a command launches the interactive TUI.`)
}
