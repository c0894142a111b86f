package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"time"
)

// pinger is the minimal interface for lexicon health checks.
type pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves liveness and health endpoints.
type HealthHandler struct {
	lexicon pinger
	version string
}

// NewHealthHandler creates a HealthHandler. lexicon may be nil when the
// engine runs heuristics-only.
func NewHealthHandler(lexicon pinger, version string) *HealthHandler {
	return &HealthHandler{lexicon: lexicon, version: version}
}

// HealthResponse is the JSON response for /health and /heartbeat.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of an individual component.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
}

// Heartbeat is the liveness probe. Always returns 200.
func (h *HealthHandler) Heartbeat(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// Health is the full health check: pings the lexicon store with latency
// measurement and includes the build version. A missing lexicon reports
// as "disabled" without degrading overall status — the engine still
// scans on heuristics.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	components := make(map[string]CompStatus)
	overallStatus := "ok"

	if h.lexicon == nil {
		components["lexicon"] = CompStatus{Status: "disabled"}
	} else {
		start := time.Now()
		err := h.lexicon.Ping(ctx)
		latency := time.Since(start)

		if err != nil {
			components["lexicon"] = CompStatus{Status: "down"}
			overallStatus = "degraded"
		} else {
			components["lexicon"] = CompStatus{
				Status:  "ok",
				Latency: latency.String(),
			}
		}
	}

	writeJSON(w, http.StatusOK, HealthResponse{
		Status:     overallStatus,
		Version:    h.version,
		Components: components,
		Timestamp:  time.Now(),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}
