package leads

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/regenplastics/leads-platform/internal/http/envelope"
	"github.com/regenplastics/leads-platform/pkg/logging"
)

// Handler serves the public lead intake endpoint.
type Handler struct {
	svc     *Service
	apiKey  string
	version string
	origin  string
	logger  *logging.Logger
}

// NewHandler creates the intake handler. apiKey empty disables the
// shared-secret check; origin is the announced CORS allow-origin.
func NewHandler(svc *Service, apiKey, version, origin string, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{
		svc:     svc,
		apiKey:  apiKey,
		version: version,
		origin:  origin,
		logger:  logger,
	}
}

// Submit handles POST /leads. Every outcome, including panics below this
// frame, is reported through the standard envelope.
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	defer func() {
		if rec := recover(); rec != nil {
			h.logger.Error("panic in lead intake", "panic", rec)
			envelope.Write(w, http.StatusInternalServerError, envelope.New(false, "Unknown error", h.origin))
		}
	}()

	var sub Submission
	if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
		h.logger.Warn("malformed intake body", "error", err)
		envelope.Write(w, http.StatusBadRequest, envelope.New(false, "Invalid request body", h.origin))
		return
	}

	// Shared-secret gate runs before any validation or shared state.
	if h.apiKey != "" && sub.Key != h.apiKey {
		envelope.Write(w, http.StatusUnauthorized, envelope.New(false, "Unauthorized (bad key)", h.origin))
		return
	}

	accepted, err := h.svc.Submit(r.Context(), sub)
	if err != nil {
		status, msg := h.classify(err)
		envelope.Write(w, status, envelope.New(false, msg, h.origin))
		return
	}

	env := envelope.New(true, "ok", h.origin).
		With("version", h.version).
		With("ts", accepted.Format(time.RFC3339))
	envelope.Write(w, http.StatusOK, env)
}

// classify maps a pipeline error to an HTTP status and caller-facing message.
// Rejection messages pass through verbatim; internal failures are logged and
// surfaced with the underlying message so the caller still gets JSON.
func (h *Handler) classify(err error) (int, string) {
	var rr interface{ RejectReason() string }
	if errors.As(err, &rr) {
		switch rr.RejectReason() {
		case "duplicate_submission":
			return http.StatusConflict, err.Error()
		case "too_many_per_email", "server_busy":
			return http.StatusTooManyRequests, err.Error()
		default:
			return http.StatusBadRequest, err.Error()
		}
	}
	if errors.Is(err, ErrStorageNotConfigured) {
		h.logger.Error("lead intake misconfigured", "error", err)
		return http.StatusInternalServerError, err.Error()
	}
	h.logger.Error("lead intake failed", "error", err)
	return http.StatusInternalServerError, err.Error()
}
