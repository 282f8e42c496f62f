package remote

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"

	"github.com/google/uuid"

	"github.com/dmitrymomot/validkit"
)

const defaultMaxBodySize = 1 << 20 // 1 MiB

// HandlerOption configures a validation handler.
type HandlerOption func(*handler)

// WithEngine sets the engine the handler validates with. Defaults to
// validkit.Default().
func WithEngine(e *validkit.Engine) HandlerOption {
	return func(h *handler) {
		if e != nil {
			h.engine = e
		}
	}
}

// WithLogger sets a logger for request outcomes. Logging is off by default.
func WithLogger(l *slog.Logger) HandlerOption {
	return func(h *handler) {
		if l != nil {
			h.logger = l
		}
	}
}

// WithMaxBodySize caps the accepted request body in bytes.
func WithMaxBodySize(n int64) HandlerOption {
	return func(h *handler) {
		if n > 0 {
			h.maxBody = n
		}
	}
}

type handler struct {
	newModel func() validkit.Model
	engine   *validkit.Engine
	logger   *slog.Logger
	maxBody  int64
}

// Handler returns the HTTP entry point of the re-validation protocol for one
// model type. Every request validates a freshly constructed model from
// newModel.
func Handler(newModel func() validkit.Model, opts ...HandlerOption) http.Handler {
	h := &handler{
		newModel: newModel,
		engine:   validkit.Default(),
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		maxBody:  defaultMaxBodySize,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	requestID := uuid.NewString()

	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil || mediaType != "application/json" {
		writeError(w, http.StatusUnsupportedMediaType, fmt.Sprintf("%s: expected application/json", ErrUnsupportedMediaType))
		return
	}

	var req Request
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, h.maxBody))
	if err := dec.Decode(&req); err != nil {
		h.logger.DebugContext(r.Context(), "malformed validation request",
			"request_id", requestID, "error", err)
		writeError(w, http.StatusBadRequest, ErrInvalidRequest.Error())
		return
	}

	resp, err := Validate(r.Context(), h.engine, h.newModel, req)
	if err != nil {
		// Configuration faults are the application's problem, never a
		// validation result; surface them as a server error.
		h.logger.ErrorContext(r.Context(), "validation request failed",
			"request_id", requestID, "scenario", req.Scenario, "error", err)
		writeError(w, http.StatusInternalServerError, "validation could not be performed")
		return
	}

	h.logger.DebugContext(r.Context(), "validation request served",
		"request_id", requestID, "scenario", req.Scenario, "failed_attributes", len(resp))
	writeJSON(w, http.StatusOK, resp)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
