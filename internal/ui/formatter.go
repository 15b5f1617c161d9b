package ui

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/fatih/color"

	"apiprobe/internal/checks"
	"apiprobe/internal/domain"
)

// Formatter formats and displays output
type Formatter struct{}

// NewFormatter creates a new Formatter
func NewFormatter() *Formatter {
	return &Formatter{}
}

// PrintBanner prints the run header with the probed base URL.
func (f *Formatter) PrintBanner(baseURL string) {
	color.Cyan("╔════════════════════════════════════════════════════════════╗")
	color.Cyan("║              API Conformance Probe                         ║")
	color.Cyan("╚════════════════════════════════════════════════════════════╝")
	color.White("Probing backend at: %s\n", baseURL)
}

// PrintSummary displays the run statistics table and failed assertions.
func (f *Formatter) PrintSummary(report *domain.RunReport) {
	meta := report.Meta

	fmt.Print("\n")
	color.Cyan("╔═══════════════════════════════════════════════════════════════╗")
	color.Cyan("║                    Probe Run Statistics                       ║")
	color.Cyan("╚═══════════════════════════════════════════════════════════════╝\n")

	fmt.Println("┌─────────────────────────────────┬─────────────────────────────┐")

	fmt.Printf("│ %-31s │ ", "Base URL")
	color.White("%-27s │\n", truncate(meta.BaseURL, 27))
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Total Checks")
	color.White("%-27d │\n", meta.TotalChecks)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Passed Checks")
	color.Green("%-27d │\n", meta.PassedChecks)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Failed Checks")
	color.Red("%-27d │\n", meta.FailedChecks)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Failed Assertions")
	color.Red("%-27d │\n", meta.FailedAssertions)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Duration")
	durationStr := fmt.Sprintf("%.2fs", meta.DurationSeconds)
	color.White("%-27s │\n", durationStr)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Timestamp")
	color.White("%-27s │\n", truncate(meta.Timestamp, 27))

	fmt.Println("└─────────────────────────────────┴─────────────────────────────┘")

	fmt.Println()
	if meta.FailedChecks == 0 {
		color.Green("✓ All checks passed!")
	} else {
		color.Red("✗ %d check(s) failed with %d assertion failure(s)", meta.FailedChecks, meta.FailedAssertions)
		fmt.Println()
		f.printFailedAssertions(report.Details)
	}
}

// printFailedAssertions lists failed assertions grouped by check.
func (f *Formatter) printFailedAssertions(failures []domain.CheckFailure) {
	byCheck := make(map[string][]domain.CheckFailure)
	var order []string
	for _, failure := range failures {
		if _, ok := byCheck[failure.CheckName]; !ok {
			order = append(order, failure.CheckName)
		}
		byCheck[failure.CheckName] = append(byCheck[failure.CheckName], failure)
	}

	for _, check := range order {
		color.Cyan("%s", check)
		for _, failure := range byCheck[check] {
			color.Red("  ✗ %s: %s", failure.Assertion, failure.Message)
			if failure.Details != "" {
				color.Yellow("      %s", failure.Details)
			}
		}
	}
}

// PrintSuite lists the checks of a suite without executing them.
func (f *Formatter) PrintSuite(suite []checks.Check) {
	color.Green("Suite contains %d check(s):\n", len(suite))
	for i, check := range suite {
		if i == len(suite)-1 {
			color.Cyan("└── %s", check.Name())
		} else {
			color.Cyan("├── %s", check.Name())
		}
	}
}

// PrintHistory displays past run rows from the history store.
func (f *Formatter) PrintHistory(runs []domain.RunMeta) {
	if len(runs) == 0 {
		color.Yellow("No recorded runs")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "RUN ID\tBASE URL\tPASSED\tFAILED\tDURATION\tTIMESTAMP")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%d/%d\t%d\t%.2fs\t%s\n",
			run.RunID, run.BaseURL, run.PassedChecks, run.TotalChecks,
			run.FailedChecks, run.DurationSeconds, run.Timestamp)
	}
	w.Flush()
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}
