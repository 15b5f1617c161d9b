package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"apiprobe/internal/checks"
	"apiprobe/internal/config"
	"apiprobe/internal/httpclient"
	"apiprobe/internal/recorder"
	"apiprobe/internal/runner"
	"apiprobe/internal/storage"
	"apiprobe/internal/ui"
)

// RunCommand handles the run command
type RunCommand struct {
	config    *config.Config
	storage   storage.Storage
	formatter *ui.Formatter
	viewer    ui.Viewer
}

// NewRunCommand creates a new RunCommand
func NewRunCommand(cfg *config.Config, st storage.Storage, formatter *ui.Formatter, viewer ui.Viewer) *RunCommand {
	return &RunCommand{
		config:    cfg,
		storage:   st,
		formatter: formatter,
		viewer:    viewer,
	}
}

// Execute runs the command
func (rc *RunCommand) Execute(cmd *cobra.Command, args []string) error {
	if err := rc.config.Validate(); err != nil {
		return err
	}

	suite := checks.Suite(rc.config.ConsistencyRecords)
	suite = checks.FilterByName(suite, rc.config.Flags.NameFilter)
	if len(suite) == 0 {
		color.Yellow("No checks to execute")
		return nil
	}

	rc.formatter.PrintBanner(rc.config.BaseURL)

	env := &checks.Env{
		Client:   httpclient.New(rc.config.BaseURL, rc.config.Timeout),
		Recorder: recorder.New(),
		Origin:   rc.config.Origin,
	}

	run := runner.New(env)
	run.SetProgress(ui.NewProgressBar(len(suite)))

	report, ok := run.Run(cmd.Context(), suite)

	if err := rc.storage.Save(report); err != nil {
		return fmt.Errorf("failed to save run report: %w", err)
	}

	if rc.config.HistoryDSN != "" {
		history := storage.NewHistory(rc.config.HistoryDSN)
		if err := history.Append(report); err != nil {
			// History is best-effort; the run outcome stands on its own.
			color.Yellow("Warning: could not record run history: %v", err)
		}
	}

	rc.formatter.PrintSummary(report)

	if !ok {
		if rc.config.Flags.OpenFailures {
			if err := rc.viewer.View(report); err != nil {
				return err
			}
		}
		return fmt.Errorf("%d of %d checks failed", report.Meta.FailedChecks, report.Meta.TotalChecks)
	}
	return nil
}
