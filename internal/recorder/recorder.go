package recorder

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"

	"apiprobe/internal/domain"
)

// Recorder is the ordered result store of a single probe run. Every
// assertion a check makes ends up here exactly once; recording never
// fails and emits a human-readable line immediately.
type Recorder struct {
	current string
	index   map[string]int
	results []domain.CheckResult
	out     io.Writer
}

// New creates a Recorder writing its progress lines to stdout.
func New() *Recorder {
	return NewWithWriter(os.Stdout)
}

// NewWithWriter creates a Recorder writing to the given writer.
func NewWithWriter(out io.Writer) *Recorder {
	return &Recorder{
		index: make(map[string]int),
		out:   out,
	}
}

// Begin marks the named check as the one currently running. Results
// recorded afterwards are attributed to it.
func (r *Recorder) Begin(check string) {
	r.current = check
	fmt.Fprintf(r.out, "\n=== %s ===\n", check)
}

// Record stores a result under name, stamped with the current time, and
// prints a pass/fail line. Recording the same name again overwrites the
// earlier result in place, keeping its original position.
func (r *Recorder) Record(name string, success bool, message string, details interface{}) {
	result := domain.CheckResult{
		Check:     r.current,
		Name:      name,
		Success:   success,
		Message:   message,
		Details:   details,
		Timestamp: time.Now(),
	}

	if i, ok := r.index[name]; ok {
		r.results[i] = result
	} else {
		r.index[name] = len(r.results)
		r.results = append(r.results, result)
	}

	marker := color.GreenString("✓ PASS")
	if !success {
		marker = color.RedString("✗ FAIL")
	}
	fmt.Fprintf(r.out, "%s: %s - %s\n", marker, name, message)
	if details != nil {
		fmt.Fprintf(r.out, "   Details: %v\n", details)
	}
}

// Results returns all recorded results in insertion order.
func (r *Recorder) Results() []domain.CheckResult {
	out := make([]domain.CheckResult, len(r.results))
	copy(out, r.results)
	return out
}

// Get returns the result recorded under name, if any.
func (r *Recorder) Get(name string) (domain.CheckResult, bool) {
	i, ok := r.index[name]
	if !ok {
		return domain.CheckResult{}, false
	}
	return r.results[i], true
}

// Len returns the number of distinct recorded assertions.
func (r *Recorder) Len() int {
	return len(r.results)
}

// Failures converts every failed result into a CheckFailure.
func (r *Recorder) Failures() []domain.CheckFailure {
	var failures []domain.CheckFailure
	for _, res := range r.results {
		if res.Success {
			continue
		}
		details := ""
		if res.Details != nil {
			details = fmt.Sprintf("%v", res.Details)
		}
		failures = append(failures, domain.CheckFailure{
			CheckName: res.Check,
			Assertion: res.Name,
			Message:   res.Message,
			Details:   details,
		})
	}
	return failures
}
