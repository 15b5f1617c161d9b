package checks

import (
	"context"
	"fmt"
	"time"

	"apiprobe/internal/assertion"
	"apiprobe/internal/domain"
)

// ConsistencyCheck creates a batch of records and verifies the whole
// batch is retrievable in one list call, exercising the write and read
// paths of the backing store.
type ConsistencyCheck struct {
	Records int
}

func (ConsistencyCheck) Name() string { return "Record Consistency" }

func (c ConsistencyCheck) Run(ctx context.Context, env *Env) bool {
	count := c.Records
	if count <= 0 {
		count = 3
	}

	createdIDs := make([]string, 0, count)
	for i := 1; i <= count; i++ {
		clientName := fmt.Sprintf("probe_batch_%d_%d", i, time.Now().UnixNano())

		resp, err := env.Client.PostJSON(ctx, "/status", map[string]string{"client_name": clientName}, nil)
		if err != nil {
			recordTransportFailure(env, "Consistency Write", err)
			return false
		}
		if err := assertion.StatusCode(resp, 200); err != nil {
			env.Recorder.Record("Consistency Write", false,
				fmt.Sprintf("Failed to create record for %s: %s", clientName, err), nil)
			return false
		}

		var record domain.StatusRecord
		if err := resp.Decode(&record); err != nil {
			env.Recorder.Record("Consistency Write", false, "Invalid JSON response", err.Error())
			return false
		}
		if err := record.Validate(); err != nil {
			env.Recorder.Record("Consistency Write", false, err.Error(), string(resp.Body))
			return false
		}
		createdIDs = append(createdIDs, record.ID)
	}
	env.Recorder.Record("Consistency Write", true,
		fmt.Sprintf("Successfully created %d records", len(createdIDs)), nil)
	env.CreatedIDs = append(env.CreatedIDs, createdIDs...)

	resp, err := env.Client.Get(ctx, "/status", nil)
	if err != nil {
		recordTransportFailure(env, "Consistency Read", err)
		return false
	}
	if err := assertion.StatusCode(resp, 200); err != nil {
		env.Recorder.Record("Consistency Read", false, err.Error(), nil)
		return false
	}

	var records []domain.StatusRecord
	if err := resp.Decode(&records); err != nil {
		env.Recorder.Record("Consistency Read", false, "Response should be a list of status records", err.Error())
		return false
	}

	missing := missingIDs(createdIDs, records)
	if len(missing) > 0 {
		env.Recorder.Record("Consistency Read", false,
			fmt.Sprintf("Only found %d/%d records", len(createdIDs)-len(missing), len(createdIDs)), missing)
		return false
	}

	env.Recorder.Record("Consistency Read", true,
		fmt.Sprintf("All %d created records retrieved", len(createdIDs)), nil)
	return true
}
