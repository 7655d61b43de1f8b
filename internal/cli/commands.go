package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"erhu/internal/chart"
	"erhu/internal/hints"
	"erhu/internal/logs"
	"erhu/internal/theory"
)

func runChart(args []string, env Env) int {
	fs := flag.NewFlagSet("chart", flag.ContinueOnError)
	fs.SetOutput(env.err())
	noHints := fs.Bool("no-hints", false, "Hide hint text")

	key, ok := keyArg(fs, args, env, "chart")
	if !ok {
		return 1
	}

	m, err := theory.Generate(key)
	if err != nil {
		reportKeyError(env.err(), err)
		return 1
	}
	logs.Logger.Printf("Rendering chart for %s (root %s)", m.Key, m.Key.Canonical())

	var notes []hints.Hint
	if env.ShowHints && !*noHints && env.Hints != nil {
		notes = append(notes, env.Hints.Lookup(m.Key.Spelling), env.Hints.Legend())
	}

	fmt.Fprintln(env.out(), chart.Render(m, notes...))
	return 0
}

func runScale(args []string, env Env) int {
	fs := flag.NewFlagSet("scale", flag.ContinueOnError)
	fs.SetOutput(env.err())

	raw, ok := keyArg(fs, args, env, "scale")
	if !ok {
		return 1
	}

	key, err := theory.NewKey(raw)
	if err != nil {
		reportKeyError(env.err(), err)
		return 1
	}

	fmt.Fprintf(env.out(), "%s major: %s\n", key.Spelling, chart.Scale(theory.BuildScale(key.Canonical())))
	return 0
}

func runKeys(env Env) int {
	for _, g := range theory.SupportedKeyGroups() {
		fmt.Fprintf(env.out(), "%-8s %s\n", g.Name+":", strings.Join(g.Keys, ", "))
	}
	return 0
}

func runHint(args []string, env Env) int {
	fs := flag.NewFlagSet("hint", flag.ContinueOnError)
	fs.SetOutput(env.err())

	raw, ok := keyArg(fs, args, env, "hint")
	if !ok {
		return 1
	}

	key, err := theory.NewKey(raw)
	if err != nil {
		reportKeyError(env.err(), err)
		return 1
	}
	if env.Hints == nil {
		fmt.Fprintln(env.err(), "Error: hints are not loaded")
		return 1
	}

	fmt.Fprintln(env.out(), chart.Hint(env.Hints.Lookup(key.Spelling)))
	return 0
}

// keyArg parses the command's flags and returns its single key argument.
// Flags may come before or after the key.
func keyArg(fs *flag.FlagSet, args []string, env Env, command string) (string, bool) {
	var positional []string
	for len(args) > 0 {
		if err := fs.Parse(args); err != nil {
			return "", false
		}
		args = fs.Args()
		if len(args) > 0 {
			positional = append(positional, args[0])
			args = args[1:]
		}
	}

	if len(positional) != 1 {
		fmt.Fprintln(env.err(), "Error: exactly one key required")
		fmt.Fprintf(env.err(), "Usage: erhu %s <key>\n", command)
		return "", false
	}
	return positional[0], true
}

func reportKeyError(w io.Writer, err error) {
	if errors.Is(err, theory.ErrInvalidKey) {
		fmt.Fprintf(w, "Error: %v\n", err)
		fmt.Fprintln(w, "Use a letter A-G, optionally followed by '#' or 'b'. Run \"erhu keys\" for the list.")
		return
	}
	fmt.Fprintf(w, "Error: %v\n", err)
}
