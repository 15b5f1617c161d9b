package runner

import (
	"context"
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/google/uuid"

	"apiprobe/internal/checks"
	"apiprobe/internal/domain"
	"apiprobe/internal/ui"
)

// Runner executes a conformance suite strictly in order. A failing or
// even panicking check never aborts the run; the only terminal signal
// is the aggregate outcome in the returned report.
type Runner struct {
	env      *checks.Env
	progress *ui.ProgressBar
}

// New creates a Runner over the given run environment.
func New(env *checks.Env) *Runner {
	return &Runner{env: env}
}

// SetProgress sets the progress bar for the run
func (r *Runner) SetProgress(progress *ui.ProgressBar) {
	r.progress = progress
}

// Run executes all checks sequentially and returns the assembled report
// plus the aggregate outcome (true only if every check passed).
func (r *Runner) Run(ctx context.Context, suite []checks.Check) (*domain.RunReport, bool) {
	startTime := time.Now()
	var passed int

	for i, check := range suite {
		if r.runCheck(ctx, check) {
			passed++
		}
		if r.progress != nil {
			r.progress.Update(i+1, passed, i+1-passed)
		}
	}
	if r.progress != nil {
		r.progress.Finish()
	}

	duration := time.Since(startTime)
	failures := r.env.Recorder.Failures()

	report := &domain.RunReport{
		Meta: domain.RunMeta{
			RunID:            uuid.NewString(),
			BaseURL:          r.env.Client.BaseURL(),
			TotalChecks:      len(suite),
			PassedChecks:     passed,
			FailedChecks:     len(suite) - passed,
			FailedAssertions: len(failures),
			Duration:         duration.String(),
			DurationSeconds:  duration.Seconds(),
			Timestamp:        time.Now().Format(time.RFC3339),
		},
		Results: r.env.Recorder.Results(),
		Details: failures,
	}

	return report, passed == len(suite)
}

// runCheck runs one check, converting a panic into a recorded critical
// failure so the rest of the suite still executes.
func (r *Runner) runCheck(ctx context.Context, check checks.Check) (ok bool) {
	defer func() {
		if rec := recover(); rec != nil {
			color.Red("✗ CRITICAL ERROR in %s: %v", check.Name(), rec)
			r.env.Recorder.Record(check.Name()+" Critical", false,
				fmt.Sprintf("Unexpected error: %v", rec), nil)
			ok = false
		}
	}()

	r.env.Recorder.Begin(check.Name())
	return check.Run(ctx, r.env)
}
