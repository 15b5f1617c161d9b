package domain

// CheckFailure represents a failed assertion within a check
type CheckFailure struct {
	CheckName string `json:"check_name"`
	Assertion string `json:"assertion"`
	Message   string `json:"message"`
	Details   string `json:"details,omitempty"`
	Resolved  bool   `json:"resolved,omitempty"` // Track if the failure is marked as resolved
}
