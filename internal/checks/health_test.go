package checks

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthCheck_Pass(t *testing.T) {
	_, server := startBackend()
	defer server.Close()

	env := newTestEnv(server.URL)
	ok := HealthCheck{}.Run(context.Background(), env)

	assert.True(t, ok)

	result, found := env.Recorder.Get("Health Check Response")
	require.True(t, found)
	assert.True(t, result.Success)

	cors, found := env.Recorder.Get("Health Check CORS")
	require.True(t, found)
	assert.True(t, cors.Success)
}

func TestHealthCheck_WrongStatus(t *testing.T) {
	backend, server := startBackend()
	defer server.Close()
	backend.healthMessage = "Hello World"

	// Point at an unknown path prefix so the root probe 404s.
	env := newTestEnv(server.URL + "/api/v2")
	ok := HealthCheck{}.Run(context.Background(), env)

	assert.False(t, ok)
	result, found := env.Recorder.Get("Health Check Status")
	require.True(t, found)
	assert.False(t, result.Success)
}

func TestHealthCheck_WrongMessage(t *testing.T) {
	backend, server := startBackend()
	defer server.Close()
	backend.healthMessage = "Goodbye"

	env := newTestEnv(server.URL)
	ok := HealthCheck{}.Run(context.Background(), env)

	assert.False(t, ok)
	result, found := env.Recorder.Get("Health Check Response")
	require.True(t, found)
	assert.False(t, result.Success)
}

func TestHealthCheck_MissingCORS(t *testing.T) {
	backend, server := startBackend()
	defer server.Close()
	backend.corsEnabled = false

	env := newTestEnv(server.URL)
	ok := HealthCheck{}.Run(context.Background(), env)

	assert.False(t, ok)
	result, found := env.Recorder.Get("Health Check CORS")
	require.True(t, found)
	assert.False(t, result.Success)
	assert.Equal(t, "No CORS headers found", result.Message)
}

func TestHealthCheck_ConnectionRefused(t *testing.T) {
	_, server := startBackend()
	server.Close() // refuse connections

	env := newTestEnv(server.URL)
	ok := HealthCheck{}.Run(context.Background(), env)

	assert.False(t, ok)
	result, found := env.Recorder.Get("Health Check Connection")
	require.True(t, found)
	assert.False(t, result.Success)
	assert.Equal(t, "Connection error", result.Message)
	assert.NotEmpty(t, result.Details)
}

func TestHealthCheck_Idempotent(t *testing.T) {
	_, server := startBackend()
	defer server.Close()

	env := newTestEnv(server.URL)
	first := HealthCheck{}.Run(context.Background(), env)
	entries := env.Recorder.Len()
	second := HealthCheck{}.Run(context.Background(), env)

	assert.Equal(t, first, second)
	// Re-running overwrites the same assertion names in place.
	assert.Equal(t, entries, env.Recorder.Len())
}
