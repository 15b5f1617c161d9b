package checks

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"time"

	"github.com/google/uuid"

	"apiprobe/internal/domain"
	"apiprobe/internal/httpclient"
	"apiprobe/internal/recorder"
)

// fakeBackend is an in-process double of the document converter backend,
// implementing the wire contract the suite probes. Behavior toggles let
// tests break individual parts of the contract.
type fakeBackend struct {
	mu      sync.Mutex
	records []domain.StatusRecord

	healthMessage    string
	corsEnabled      bool
	dropTimestamp    bool // omit timestamp from created records
	hideListRecords  bool // return an empty list regardless of writes
	listAsObject     bool // return an object instead of a list
	acceptEmptyBody  bool // return 200 instead of 422 on missing client_name
	omitAllowMethods bool // drop Access-Control-Allow-Methods from preflight responses
	mangleClientName bool // echo a different client_name than submitted
	malformedStatus  int  // status for malformed JSON bodies
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		healthMessage:   "Hello World",
		corsEnabled:     true,
		malformedStatus: http.StatusBadRequest,
	}
}

func (b *fakeBackend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Header.Get("Origin") != "" && b.corsEnabled {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Credentials", "true")
	}

	switch {
	case r.Method == http.MethodOptions && r.URL.Path == "/status":
		if b.corsEnabled {
			if !b.omitAllowMethods {
				w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			}
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		}
		w.WriteHeader(http.StatusOK)

	case r.Method == http.MethodGet && r.URL.Path == "/":
		writeJSON(w, http.StatusOK, map[string]string{"message": b.healthMessage})

	case r.Method == http.MethodPost && r.URL.Path == "/status":
		b.handleCreate(w, r)

	case r.Method == http.MethodGet && r.URL.Path == "/status":
		if b.listAsObject {
			writeJSON(w, http.StatusOK, map[string]string{"detail": "not a list"})
			return
		}
		b.mu.Lock()
		records := b.records
		if b.hideListRecords {
			records = nil
		}
		out := make([]domain.StatusRecord, len(records))
		copy(out, records)
		b.mu.Unlock()
		writeJSON(w, http.StatusOK, out)

	default:
		writeJSON(w, http.StatusNotFound, map[string]string{"detail": "Not Found"})
	}
}

func (b *fakeBackend) handleCreate(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)

	var payload map[string]string
	if err := json.Unmarshal(body, &payload); err != nil {
		writeJSON(w, b.malformedStatus, map[string]string{"detail": "malformed body"})
		return
	}
	if payload["client_name"] == "" && !b.acceptEmptyBody {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"detail": "client_name is required"})
		return
	}

	record := domain.StatusRecord{
		ID:         uuid.NewString(),
		ClientName: payload["client_name"],
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
	}
	if b.dropTimestamp {
		record.Timestamp = ""
	}
	if b.mangleClientName {
		record.ClientName += "-mangled"
	}

	b.mu.Lock()
	b.records = append(b.records, record)
	b.mu.Unlock()

	writeJSON(w, http.StatusOK, record)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// newTestEnv builds a run environment against the given server URL,
// discarding recorder output.
func newTestEnv(baseURL string) *Env {
	return &Env{
		Client:   httpclient.New(baseURL, 2*time.Second),
		Recorder: recorder.NewWithWriter(io.Discard),
		Origin:   "https://example.com",
	}
}

// startBackend starts the fake backend and returns it with its server.
func startBackend() (*fakeBackend, *httptest.Server) {
	backend := newFakeBackend()
	return backend, httptest.NewServer(backend)
}
