package main

import (
	"fmt"
	"os"

	"tsel/internal/cli"
	"tsel/internal/cli/commands"
	"tsel/internal/config"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Use:     "tsel",
		Short:   "Test-selection adapter",
		Long:    `Computes the exact set of executable tests a downstream engine should run for each class: tag and method filters applied consistently across static discovery and runtime observation, dynamic tests included, duplicates never.`,
		Version: version,
	}

	// Create initial config with defaults
	cfg := config.New()

	// Create flags struct (will be populated by command flags)
	var flags cli.Flags

	// Create commands with dependencies
	cmds := commands.NewCommands(cfg)

	// Register all commands
	cmds.Register(rootCmd, &flags, cfg)

	// Execute root command
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
