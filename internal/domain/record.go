package domain

import "fmt"

// HealthResponse is the payload returned by the backend health endpoint.
type HealthResponse struct {
	Message string `json:"message"`
}

// StatusRecord is one client status record as returned by the backend.
type StatusRecord struct {
	ID         string `json:"id"`
	ClientName string `json:"client_name"`
	Timestamp  string `json:"timestamp"`
}

// Validate fails closed: every field the contract requires must be present.
func (r StatusRecord) Validate() error {
	if r.ID == "" {
		return fmt.Errorf("status record missing id")
	}
	if r.ClientName == "" {
		return fmt.Errorf("status record missing client_name")
	}
	if r.Timestamp == "" {
		return fmt.Errorf("status record missing timestamp")
	}
	return nil
}
