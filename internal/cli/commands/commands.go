package commands

import (
	"github.com/spf13/cobra"

	"apiprobe/internal/cli"
	"apiprobe/internal/config"
	"apiprobe/internal/storage"
	"apiprobe/internal/ui"
)

// Commands holds all CLI commands
type Commands struct {
	Run      *RunCommand
	Checks   *ChecksCommand
	Failures *FailuresCommand
	History  *HistoryCommand
}

// NewCommands creates all commands with dependencies
func NewCommands(cfg *config.Config) *Commands {
	jsonStorage := storage.NewJSONStorage(cfg)
	formatter := ui.NewFormatter()
	viewer := ui.NewFailureViewer(jsonStorage)

	return &Commands{
		Run:      NewRunCommand(cfg, jsonStorage, formatter, viewer),
		Checks:   NewChecksCommand(cfg, formatter),
		Failures: NewFailuresCommand(cfg, jsonStorage, viewer),
		History:  NewHistoryCommand(cfg, formatter),
	}
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	loadConfig := func(cmd *cobra.Command, args []string) error {
		return cfg.Load(flags.ToConfigFlags())
	}

	// Run command
	runCmd := &cobra.Command{
		Use:     "run",
		Short:   "Run the conformance suite against a backend",
		Long:    "Execute every conformance check against the configured base URL and report the results",
		RunE:    c.Run.Execute,
		PreRunE: loadConfig,
	}
	runCmd.Flags().StringVarP(&flags.BaseURL, "url", "u", "", "Base URL of the backend under probe")
	runCmd.Flags().StringVarP(&flags.Origin, "origin", "o", "", "Origin header value used for CORS checks")
	runCmd.Flags().StringVarP(&flags.ConfigFile, "config", "c", "", "Path to a YAML config file")
	runCmd.Flags().StringVarP(&flags.NameFilter, "filter", "f", "", "Filter checks by name pattern (supports wildcards, e.g. 'Status*' or '*CORS*')")
	runCmd.Flags().IntVar(&flags.TimeoutSeconds, "timeout", 0, "Per-request timeout in seconds")
	runCmd.Flags().BoolVar(&flags.OpenFailures, "open-failures", false, "Open the failures viewer when the run finishes with failures")
	rootCmd.AddCommand(runCmd)

	// Checks command
	checksCmd := &cobra.Command{
		Use:     "checks",
		Short:   "List the conformance checks",
		Long:    "List all checks of the conformance suite without executing them",
		RunE:    c.Checks.Execute,
		PreRunE: loadConfig,
	}
	checksCmd.Flags().StringVarP(&flags.NameFilter, "filter", "f", "", "Filter checks by name pattern (supports wildcards, e.g. 'Status*' or '*CORS*')")
	rootCmd.AddCommand(checksCmd)

	// Failures command
	failuresCmd := &cobra.Command{
		Use:     "failures",
		Short:   "View assertion failures interactively",
		Long:    "Display assertion failures from the last run in an interactive viewer",
		RunE:    c.Failures.Execute,
		PreRunE: loadConfig,
	}
	failuresCmd.Flags().StringVarP(&flags.ConfigFile, "config", "c", "", "Path to a YAML config file")
	rootCmd.AddCommand(failuresCmd)

	// History command
	historyCmd := &cobra.Command{
		Use:     "history",
		Short:   "List past probe runs",
		Long:    "List past probe runs recorded in the MySQL history store",
		RunE:    c.History.Execute,
		PreRunE: loadConfig,
	}
	historyCmd.Flags().IntVarP(&flags.HistoryLimit, "limit", "n", 20, "Maximum number of runs to list")
	rootCmd.AddCommand(historyCmd)
}
