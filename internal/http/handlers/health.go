// Package handlers holds the small read-only HTTP handlers that sit beside
// the domain packages.
package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/regenplastics/leads-platform/internal/http/envelope"
)

// HealthHandler serves the status endpoint and its preflight-probe mode.
type HealthHandler struct {
	service string
	version string
	origin  string
	now     func() time.Time
}

// NewHealthHandler creates the handler. service is the stable service name
// exposed in the body.
func NewHealthHandler(service, version, origin string) *HealthHandler {
	return &HealthHandler{
		service: service,
		version: version,
		origin:  origin,
		now:     time.Now,
	}
}

// Health handles GET requests. `?mode=preflight` (or `options`) returns only
// the CORS announcement without touching any lead logic.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	mode := strings.ToLower(r.URL.Query().Get("mode"))
	if mode == "options" || mode == "preflight" {
		env := envelope.New(true, "preflight", h.origin).
			With("allowMethods", envelope.AllowMethods).
			With("allowHeaders", envelope.AllowHeaders)
		envelope.Write(w, http.StatusOK, env)
		return
	}

	env := envelope.New(true, "healthy", h.origin).
		With("health", "ok").
		With("service", h.service).
		With("version", h.version).
		With("ts", h.now().UTC().Format(time.RFC3339))
	envelope.Write(w, http.StatusOK, env)
}
