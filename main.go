package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"erhu/internal/cli"
	"erhu/internal/config"
	"erhu/internal/hints"
	"erhu/internal/logs"
	"erhu/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	// Parse CLI flags
	keyFlag := flag.String("key", "", "Open the chart for this key")
	flag.StringVar(keyFlag, "k", "", "Open the chart for this key (shorthand)")
	hintsFlag := flag.String("hints", "", "Extra hint directories (comma-separated)")
	noHintsFlag := flag.Bool("no-hints", false, "Hide hint text")
	flag.Parse()

	// Build CLIFlags
	cliFlags := config.CLIFlags{
		Key:      *keyFlag,
		HintDirs: config.ParseCommaSeparated(*hintsFlag),
		NoHints:  *noHintsFlag,
	}

	// Load configuration
	cfg, err := config.Load(cliFlags)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Ensure config file exists
	if err := config.EnsureConfigFile(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not create config file: %v\n", err)
	}

	if err := logs.Initialize(cfg.Dir); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not initialize logger: %v\n", err)
	}
	defer logs.Close()

	book, err := hints.Load(cfg.HintDirs)
	if err != nil {
		log.Fatalf("Failed to load hints: %v", err)
	}

	// Check for CLI subcommands
	if args := flag.Args(); len(args) > 0 {
		exitCode := cli.Run(args, cli.Env{Hints: book, ShowHints: cfg.ShowHints})
		logs.Close()
		os.Exit(exitCode)
	}

	// TUI mode
	logs.Logger.Println("Starting app in TUI mode")
	appModel := tui.NewAppModel(cfg, book)
	p := tea.NewProgram(appModel, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Println("Error running program:", err)
		logs.Close()
		os.Exit(1)
	}
}
