// Package envelope provides the uniform JSON response body shared by every
// endpoint. All code paths, including rejections and internal failures, must
// flow through it so the client always receives the same parseable shape.
package envelope

import (
	"encoding/json"
	"net/http"
)

// Fixed CORS policy announced in every response body.
const (
	AllowMethods = "GET,POST,OPTIONS"
	AllowHeaders = "Content-Type,Authorization,X-Requested-With"
)

// CORS is the policy block carried inside the envelope.
type CORS struct {
	AllowOrigin  string `json:"allowOrigin"`
	AllowMethods string `json:"allowMethods"`
	AllowHeaders string `json:"allowHeaders"`
}

// Envelope is the response body. Extra fields are flattened to the top level
// next to ok/message/cors.
type Envelope struct {
	OK      bool
	Message string
	CORS    CORS
	Extra   map[string]any
}

// New builds an envelope with the fixed CORS policy and the configured
// allow-origin (empty falls back to "*").
func New(ok bool, message, allowOrigin string) Envelope {
	if allowOrigin == "" {
		allowOrigin = "*"
	}
	return Envelope{
		OK:      ok,
		Message: message,
		CORS: CORS{
			AllowOrigin:  allowOrigin,
			AllowMethods: AllowMethods,
			AllowHeaders: AllowHeaders,
		},
	}
}

// With returns a copy of the envelope carrying an extra top-level field.
func (e Envelope) With(key string, value any) Envelope {
	extra := make(map[string]any, len(e.Extra)+1)
	for k, v := range e.Extra {
		extra[k] = v
	}
	extra[key] = value
	e.Extra = extra
	return e
}

// MarshalJSON flattens Extra next to the fixed fields.
func (e Envelope) MarshalJSON() ([]byte, error) {
	body := map[string]any{
		"ok":      e.OK,
		"message": e.Message,
		"cors":    e.CORS,
	}
	for k, v := range e.Extra {
		body[k] = v
	}
	return json.Marshal(body)
}

// Write serializes the envelope with the given HTTP status.
func Write(w http.ResponseWriter, status int, e Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(e)
}
