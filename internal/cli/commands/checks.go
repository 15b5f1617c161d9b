package commands

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"apiprobe/internal/checks"
	"apiprobe/internal/config"
	"apiprobe/internal/ui"
)

// ChecksCommand handles the checks command
type ChecksCommand struct {
	config    *config.Config
	formatter *ui.Formatter
}

// NewChecksCommand creates a new ChecksCommand
func NewChecksCommand(cfg *config.Config, formatter *ui.Formatter) *ChecksCommand {
	return &ChecksCommand{
		config:    cfg,
		formatter: formatter,
	}
}

// Execute runs the command
func (cc *ChecksCommand) Execute(cmd *cobra.Command, args []string) error {
	suite := checks.Suite(cc.config.ConsistencyRecords)
	suite = checks.FilterByName(suite, cc.config.Flags.NameFilter)

	if len(suite) == 0 {
		color.Yellow("No checks found")
		return nil
	}

	cc.formatter.PrintSuite(suite)
	return nil
}
