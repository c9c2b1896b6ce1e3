package site

import (
	"encoding/json"
	"net/http"

	"github.com/regenplastics/leads-platform/internal/http/envelope"
	"github.com/regenplastics/leads-platform/pkg/logging"
)

// Request is the admin content-API body. Operations are dispatched by fn,
// mirroring the site.get / site.update calls of the admin editor.
type Request struct {
	Key     string `json:"key"`
	Fn      string `json:"fn"`
	Section string `json:"section"`
	Field   string `json:"field"`
	Value   string `json:"value"`
}

// Handler serves the API-key-guarded content endpoint.
type Handler struct {
	store  *Store
	apiKey string
	origin string
	logger *logging.Logger
}

// NewHandler creates the content handler.
func NewHandler(store *Store, apiKey, origin string, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{
		store:  store,
		apiKey: apiKey,
		origin: origin,
		logger: logger,
	}
}

// Dispatch handles POST /admin/site.
func (h *Handler) Dispatch(w http.ResponseWriter, r *http.Request) {
	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		envelope.Write(w, http.StatusBadRequest, envelope.New(false, "Invalid request body", h.origin))
		return
	}
	if h.apiKey != "" && req.Key != h.apiKey {
		envelope.Write(w, http.StatusUnauthorized, envelope.New(false, "Unauthorized (bad key)", h.origin))
		return
	}
	if h.store == nil {
		envelope.Write(w, http.StatusInternalServerError, envelope.New(false, "SHEET_ID not set", h.origin))
		return
	}

	switch req.Fn {
	case "site.get":
		content, err := h.store.Get(r.Context())
		if err != nil {
			h.logger.Error("site content read failed", "error", err)
			envelope.Write(w, http.StatusInternalServerError, envelope.New(false, err.Error(), h.origin))
			return
		}
		envelope.Write(w, http.StatusOK, envelope.New(true, "ok", h.origin).With("data", content))
	case "site.update":
		if err := h.store.Update(r.Context(), req.Section, req.Field, req.Value); err != nil {
			status := http.StatusInternalServerError
			if err == ErrBadKey {
				status = http.StatusBadRequest
			}
			h.logger.Error("site content update failed", "error", err, "field", req.Field)
			envelope.Write(w, status, envelope.New(false, err.Error(), h.origin))
			return
		}
		envelope.Write(w, http.StatusOK, envelope.New(true, "Content updated", h.origin))
	default:
		envelope.Write(w, http.StatusBadRequest, envelope.New(false, "Unknown function", h.origin))
	}
}
