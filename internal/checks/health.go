package checks

import (
	"context"
	"fmt"

	"apiprobe/internal/assertion"
	"apiprobe/internal/domain"
)

// HealthCheck probes the root endpoint: status 200, the fixed greeting
// payload, and CORS headers on a request carrying an Origin.
type HealthCheck struct{}

func (HealthCheck) Name() string { return "Health Check" }

func (HealthCheck) Run(ctx context.Context, env *Env) bool {
	resp, err := env.Client.Get(ctx, "/", nil)
	if err != nil {
		recordTransportFailure(env, "Health Check Connection", err)
		return false
	}

	if err := assertion.StatusCode(resp, 200); err != nil {
		env.Recorder.Record("Health Check Status", false, err.Error(), nil)
		return false
	}

	var health domain.HealthResponse
	if err := resp.Decode(&health); err != nil {
		env.Recorder.Record("Health Check Response", false, "Invalid JSON response", err.Error())
		return false
	}
	if err := assertion.JSONPath(resp, ".message", "Hello World"); err != nil {
		env.Recorder.Record("Health Check Response", false,
			fmt.Sprintf("Unexpected response: %s", resp.Body), err.Error())
		return false
	}
	env.Recorder.Record("Health Check Response", true, "Correct response message received", nil)

	// Repeat with an Origin header to confirm CORS is configured.
	respWithOrigin, err := env.Client.Get(ctx, "/", map[string]string{"Origin": env.Origin})
	if err != nil {
		recordTransportFailure(env, "Health Check Connection", err)
		return false
	}

	corsOrigin, err := assertion.HeaderPresent(respWithOrigin, "Access-Control-Allow-Origin")
	if err != nil {
		env.Recorder.Record("Health Check CORS", false, "No CORS headers found", nil)
		return false
	}
	corsCredentials := respWithOrigin.Header("Access-Control-Allow-Credentials")
	env.Recorder.Record("Health Check CORS", true,
		fmt.Sprintf("CORS headers present - Origin: %s, Credentials: %s", corsOrigin, corsCredentials), nil)

	return true
}
