package checks

import (
	"context"
	"fmt"

	"apiprobe/internal/assertion"
)

// CORSCheck verifies the preflight handshake on the status endpoint and
// that CORS headers are also present on an actual cross-origin request.
type CORSCheck struct{}

func (CORSCheck) Name() string { return "CORS Configuration" }

func (CORSCheck) Run(ctx context.Context, env *Env) bool {
	resp, err := env.Client.Options(ctx, "/status", map[string]string{
		"Origin":                         env.Origin,
		"Access-Control-Request-Method":  "POST",
		"Access-Control-Request-Headers": "Content-Type",
	})
	if err != nil {
		recordTransportFailure(env, "CORS Preflight Connection", err)
		return false
	}

	allowOrigin, err := assertion.HeaderPresent(resp, "Access-Control-Allow-Origin")
	if err != nil {
		env.Recorder.Record("CORS Allow Origin", false, "Missing Access-Control-Allow-Origin header", nil)
		return false
	}
	env.Recorder.Record("CORS Allow Origin", true,
		fmt.Sprintf("Origin header: %s", allowOrigin), nil)

	if err := assertion.HeaderContains(resp, "Access-Control-Allow-Methods", "POST"); err != nil {
		env.Recorder.Record("CORS Allow Methods", false, err.Error(), nil)
		return false
	}
	env.Recorder.Record("CORS Allow Methods", true,
		fmt.Sprintf("Methods header: %s", resp.Header("Access-Control-Allow-Methods")), nil)

	// Actual cross-origin request must carry the header too.
	actual, err := env.Client.Get(ctx, "/", map[string]string{"Origin": env.Origin})
	if err != nil {
		recordTransportFailure(env, "CORS Actual Request Connection", err)
		return false
	}
	if err := assertion.StatusCode(actual, 200); err != nil {
		env.Recorder.Record("CORS Actual Request", false, err.Error(), nil)
		return false
	}
	originHeader, err := assertion.HeaderPresent(actual, "Access-Control-Allow-Origin")
	if err != nil {
		env.Recorder.Record("CORS Actual Request", false, "No CORS headers in actual response", nil)
		return false
	}

	env.Recorder.Record("CORS Actual Request", true,
		fmt.Sprintf("CORS working for actual requests: %s", originHeader), nil)
	return true
}
