package domain

import "time"

// CheckResult is the outcome of a single assertion made by a check.
type CheckResult struct {
	Check     string      `json:"check,omitempty"`
	Name      string      `json:"name"`
	Success   bool        `json:"success"`
	Message   string      `json:"message"`
	Details   interface{} `json:"details,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

// RunMeta contains metadata about a probe run
type RunMeta struct {
	RunID            string  `json:"run_id"`
	BaseURL          string  `json:"base_url"`
	TotalChecks      int     `json:"total_checks"`
	PassedChecks     int     `json:"passed_checks"`
	FailedChecks     int     `json:"failed_checks"`
	FailedAssertions int     `json:"failed_assertions"`
	Duration         string  `json:"duration"`
	DurationSeconds  float64 `json:"duration_seconds"`
	Timestamp        string  `json:"timestamp"`
}

// RunReport is the complete output structure for a probe run
type RunReport struct {
	Meta    RunMeta        `json:"meta"`
	Results []CheckResult  `json:"results"`
	Details []CheckFailure `json:"details"`
}
