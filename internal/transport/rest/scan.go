package rest

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/tariquesani/aruuz-nigar/internal/domain"
	"github.com/tariquesani/aruuz-nigar/internal/scan"
)

// scanner is the engine surface the handler depends on.
type scanner interface {
	Scan(ctx context.Context, lines []string, opts scan.Options) ([]domain.LineResult, error)
}

// ScanHandler serves POST /scan.
type ScanHandler struct {
	engine scanner
	logger *slog.Logger
}

// NewScanHandler creates a ScanHandler.
func NewScanHandler(engine scanner, logger *slog.Logger) *ScanHandler {
	return &ScanHandler{engine: engine, logger: logger}
}

// ScanRequest is the JSON request body. Either Text (newline-separated)
// or Lines may be supplied; Lines wins when both are present.
type ScanRequest struct {
	Text      string   `json:"text"`
	Lines     []string `json:"lines"`
	Fuzzy     bool     `json:"fuzzy"`
	FreeVerse bool     `json:"free_verse"`
}

// ScanResponse is the JSON response body.
type ScanResponse struct {
	Results []domain.LineResult `json:"results"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Scan parses the request, runs the engine, and writes the results.
// A body that is not JSON is treated as plain text, one line per verse.
func (h *ScanHandler) Scan(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, 1<<20))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "unreadable request body"})
		return
	}

	var req ScanRequest
	if strings.Contains(r.Header.Get("Content-Type"), "application/json") {
		if err := json.Unmarshal(body, &req); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body"})
			return
		}
	} else {
		req.Text = string(body)
	}

	lines := req.Lines
	if len(lines) == 0 {
		for _, l := range strings.Split(req.Text, "\n") {
			if strings.TrimSpace(l) != "" {
				lines = append(lines, strings.TrimSpace(l))
			}
		}
	}
	if len(lines) == 0 {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "enter at least one line of Urdu poetry"})
		return
	}

	results, err := h.engine.Scan(r.Context(), lines, scan.Options{
		Fuzzy:     req.Fuzzy,
		FreeVerse: req.FreeVerse,
	})
	if err != nil {
		h.logger.ErrorContext(r.Context(), "scan failed", slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "error processing lines"})
		return
	}

	writeJSON(w, http.StatusOK, ScanResponse{Results: results})
}
