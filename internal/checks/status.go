package checks

import (
	"context"
	"fmt"
	"time"

	"apiprobe/internal/assertion"
	"apiprobe/internal/domain"
)

// StatusCreateCheck creates one status record and validates the echoed
// record shape. The created id is left in the environment for the list
// and consistency checks.
type StatusCreateCheck struct{}

func (StatusCreateCheck) Name() string { return "Status Create" }

func (StatusCreateCheck) Run(ctx context.Context, env *Env) bool {
	clientName := fmt.Sprintf("probe_client_%d", time.Now().UnixNano())

	resp, err := env.Client.PostJSON(ctx, "/status", map[string]string{"client_name": clientName}, nil)
	if err != nil {
		recordTransportFailure(env, "Status Create Connection", err)
		return false
	}

	if err := assertion.StatusCode(resp, 200); err != nil {
		env.Recorder.Record("Status Create", false, err.Error(), nil)
		return false
	}

	var record domain.StatusRecord
	if err := resp.Decode(&record); err != nil {
		env.Recorder.Record("Status Create Response", false, "Invalid JSON response", err.Error())
		return false
	}
	if err := record.Validate(); err != nil {
		env.Recorder.Record("Status Create Structure", false, err.Error(), string(resp.Body))
		return false
	}
	if err := assertion.JSONPath(resp, ".client_name", clientName); err != nil {
		env.Recorder.Record("Status Create Data", false, err.Error(), nil)
		return false
	}

	env.Recorder.Record("Status Create", true, "Status created successfully", record)
	env.CreatedIDs = append(env.CreatedIDs, record.ID)
	return true
}

// StatusListCheck retrieves the status collection and verifies every
// record created earlier in this run is present, matched by id.
type StatusListCheck struct{}

func (StatusListCheck) Name() string { return "Status List" }

func (StatusListCheck) Run(ctx context.Context, env *Env) bool {
	resp, err := env.Client.Get(ctx, "/status", nil)
	if err != nil {
		recordTransportFailure(env, "Status List Connection", err)
		return false
	}

	if err := assertion.StatusCode(resp, 200); err != nil {
		env.Recorder.Record("Status List", false, err.Error(), nil)
		return false
	}

	var records []domain.StatusRecord
	if err := resp.Decode(&records); err != nil {
		env.Recorder.Record("Status List Structure", false, "Response should be a list of status records", err.Error())
		return false
	}

	missing := missingIDs(env.CreatedIDs, records)
	if len(missing) > 0 {
		env.Recorder.Record("Status List Persistence", false,
			fmt.Sprintf("Created records not found in list: %v", missing), nil)
		return false
	}

	env.Recorder.Record("Status List", true,
		fmt.Sprintf("Retrieved %d status records", len(records)), nil)
	return true
}

// missingIDs returns the ids from want that are absent in records.
func missingIDs(want []string, records []domain.StatusRecord) []string {
	present := make(map[string]bool, len(records))
	for _, r := range records {
		present[r.ID] = true
	}
	var missing []string
	for _, id := range want {
		if !present[id] {
			missing = append(missing, id)
		}
	}
	return missing
}
