package checks

import (
	"context"

	"apiprobe/internal/httpclient"
	"apiprobe/internal/recorder"
)

// Check is one named conformance check against the backend. A check
// issues one or more requests, records one result per assertion it
// makes, and reports its overall outcome. Transport faults never
// escape a check; they are recorded as failed results.
type Check interface {
	Name() string
	Run(ctx context.Context, env *Env) bool
}

// Env is the shared environment of one probe run. CreatedIDs carries
// record ids from earlier checks to the ones that verify retrieval;
// ordering of the suite is therefore significant.
type Env struct {
	Client     *httpclient.Client
	Recorder   *recorder.Recorder
	Origin     string
	CreatedIDs []string
}

// Suite returns the fixed, ordered conformance suite.
func Suite(consistencyRecords int) []Check {
	return []Check{
		HealthCheck{},
		StatusCreateCheck{},
		StatusListCheck{},
		ConsistencyCheck{Records: consistencyRecords},
		CORSCheck{},
		ErrorHandlingCheck{},
	}
}

// recordTransportFailure records a connection-level fault as a failed
// assertion. The underlying error text becomes the detail payload.
func recordTransportFailure(env *Env, name string, err error) {
	env.Recorder.Record(name, false, "Connection error", err.Error())
}
