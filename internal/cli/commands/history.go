package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"apiprobe/internal/config"
	"apiprobe/internal/storage"
	"apiprobe/internal/ui"
)

// HistoryCommand handles the history command
type HistoryCommand struct {
	config    *config.Config
	formatter *ui.Formatter
}

// NewHistoryCommand creates a new HistoryCommand
func NewHistoryCommand(cfg *config.Config, formatter *ui.Formatter) *HistoryCommand {
	return &HistoryCommand{
		config:    cfg,
		formatter: formatter,
	}
}

// Execute runs the command
func (hc *HistoryCommand) Execute(cmd *cobra.Command, args []string) error {
	if hc.config.HistoryDSN == "" {
		return fmt.Errorf("no history DSN configured (APIPROBE_HISTORY_DSN or config file)")
	}

	limit, _ := cmd.Flags().GetInt("limit")

	history := storage.NewHistory(hc.config.HistoryDSN)
	runs, err := history.List(limit)
	if err != nil {
		return err
	}

	hc.formatter.PrintHistory(runs)
	return nil
}
