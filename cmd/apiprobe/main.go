package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"apiprobe/internal/cli"
	"apiprobe/internal/cli/commands"
	"apiprobe/internal/config"
)

var version = "dev"

func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Use:     "apiprobe",
		Short:   "API conformance probe",
		Long:    `A conformance probe for the document converter backend API. Runs a fixed suite of HTTP checks against a live deployment and validates status codes, payload shapes and CORS headers.`,
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
