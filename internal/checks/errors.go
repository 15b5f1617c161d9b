package checks

import (
	"context"
	"fmt"

	"apiprobe/internal/assertion"
)

// ErrorHandlingCheck verifies the backend's failure surface: unknown
// routes, missing required fields, and malformed request bodies.
type ErrorHandlingCheck struct{}

func (ErrorHandlingCheck) Name() string { return "Error Handling" }

func (ErrorHandlingCheck) Run(ctx context.Context, env *Env) bool {
	resp, err := env.Client.Get(ctx, "/nonexistent", nil)
	if err != nil {
		recordTransportFailure(env, "404 Error Handling Connection", err)
		return false
	}
	if err := assertion.StatusCode(resp, 404); err != nil {
		env.Recorder.Record("404 Error Handling", false, err.Error(), nil)
		return false
	}
	env.Recorder.Record("404 Error Handling", true, "Correctly returns 404 for invalid endpoints", nil)

	// Missing required client_name field.
	resp, err = env.Client.PostJSON(ctx, "/status", map[string]string{}, nil)
	if err != nil {
		recordTransportFailure(env, "Validation Error Handling Connection", err)
		return false
	}
	if err := assertion.StatusCode(resp, 422); err != nil {
		env.Recorder.Record("Validation Error Handling", false, err.Error(), nil)
		return false
	}
	env.Recorder.Record("Validation Error Handling", true, "Correctly returns 422 for invalid data", nil)

	// Malformed JSON: backends differ here, 400 and 422 are both accepted.
	resp, err = env.Client.PostRaw(ctx, "/status", "invalid json", nil)
	if err != nil {
		recordTransportFailure(env, "Malformed JSON Handling Connection", err)
		return false
	}
	if err := assertion.StatusIn(resp, 400, 422); err != nil {
		env.Recorder.Record("Malformed JSON Handling", false,
			fmt.Sprintf("Unexpected status for malformed JSON: %d", resp.StatusCode), nil)
		return false
	}
	env.Recorder.Record("Malformed JSON Handling", true,
		fmt.Sprintf("Correctly handles malformed JSON with status %d", resp.StatusCode), nil)

	return true
}
