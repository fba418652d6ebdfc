package main

import (
	"fmt"
	"os"

	"adsched/internal/cli"
	"adsched/internal/cli/commands"
	"adsched/internal/config"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Use:     "adsched",
		Short:   "Round-robin ad schedule builder",
		Long:    `Builds a play order for a set of ads with required play counts, interleaving frequent ads with rare ones instead of playing them in a block.`,
		Version: version,
	}

	// Create initial config with defaults, then apply .env and ADSCHED_* variables
	cfg := config.New()
	if err := cfg.LoadEnv(config.DefaultEnvFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

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
