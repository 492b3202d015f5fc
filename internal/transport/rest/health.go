package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const probeTimeout = 3 * time.Second

type dbPinger interface {
	Ping(ctx context.Context) error
}

type schemaInspector interface {
	SchemaVersion(ctx context.Context) (current, latest int64, err error)
}

// HealthHandler serves the liveness, readiness and health probes.
type HealthHandler struct {
	db      dbPinger
	schema  schemaInspector
	version string
	now     func() time.Time
}

// NewHealthHandler creates a HealthHandler. A nil schema skips the
// migration check.
func NewHealthHandler(db dbPinger, schema schemaInspector, version string) *HealthHandler {
	return &HealthHandler{db: db, schema: schema, version: version, now: time.Now}
}

// HealthResponse is the body of every probe.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the state of one dependency.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
	Detail  string `json:"detail,omitempty"`
}

// Live always answers 200 while the process serves HTTP.
func (h *HealthHandler) Live(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Timestamp: h.now()})
}

// Ready answers 200 once the database is reachable and fully migrated.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	status, _ := h.check(r.Context())
	writeJSON(w, httpStatus(status), HealthResponse{Status: status, Timestamp: h.now()})
}

// Health is Ready with per-component detail and the build version.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	status, components := h.check(r.Context())
	writeJSON(w, httpStatus(status), HealthResponse{
		Status:     status,
		Version:    h.version,
		Components: components,
		Timestamp:  h.now(),
	})
}

func (h *HealthHandler) check(ctx context.Context) (string, map[string]CompStatus) {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	components := make(map[string]CompStatus, 2)
	overall := "ok"

	start := time.Now()
	if err := h.db.Ping(ctx); err != nil {
		components["database"] = CompStatus{Status: "down"}
		// Without a connection the schema cannot be read either.
		return "down", components
	}
	components["database"] = CompStatus{Status: "ok", Latency: time.Since(start).String()}

	if h.schema != nil {
		current, latest, err := h.schema.SchemaVersion(ctx)
		switch {
		case err != nil:
			components["schema"] = CompStatus{Status: "down"}
			overall = "down"
		case current < latest:
			components["schema"] = CompStatus{Status: "pending", Detail: fmt.Sprintf("version %d of %d", current, latest)}
			overall = "down"
		default:
			components["schema"] = CompStatus{Status: "ok", Detail: fmt.Sprintf("version %d", current)}
		}
	}
	return overall, components
}

func httpStatus(overall string) int {
	if overall == "ok" {
		return http.StatusOK
	}
	return http.StatusServiceUnavailable
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}
