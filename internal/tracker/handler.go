package tracker

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/regenplastics/leads-platform/internal/http/envelope"
	"github.com/regenplastics/leads-platform/pkg/logging"
)

// Request is the tracker API body, dispatched by fn: tasks.list, tasks.add,
// tasks.update, tasks.updateStatus, tasks.delete.
type Request struct {
	Key    string    `json:"key"`
	Fn     string    `json:"fn"`
	ID     string    `json:"id"`
	Task   TaskInput `json:"task"`
	Status string    `json:"status"`
}

// Handler serves the API-key-guarded tracker endpoint.
type Handler struct {
	repo   Repository
	apiKey string
	origin string
	logger *logging.Logger
}

// NewHandler creates the tracker handler.
func NewHandler(repo Repository, apiKey, origin string, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{
		repo:   repo,
		apiKey: apiKey,
		origin: origin,
		logger: logger,
	}
}

// Dispatch handles POST /admin/tracker.
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

	ctx := r.Context()
	switch req.Fn {
	case "tasks.list":
		tasks, err := h.repo.List(ctx)
		if err != nil {
			h.fail(w, err)
			return
		}
		envelope.Write(w, http.StatusOK, envelope.New(true, "ok", h.origin).With("tasks", tasks))
	case "tasks.add":
		task, err := h.repo.Add(ctx, req.Task)
		if err != nil {
			h.fail(w, err)
			return
		}
		envelope.Write(w, http.StatusOK, envelope.New(true, "Task added", h.origin).With("task", task))
	case "tasks.update":
		task, err := h.repo.Update(ctx, req.ID, req.Task)
		if err != nil {
			h.fail(w, err)
			return
		}
		envelope.Write(w, http.StatusOK, envelope.New(true, "Task updated", h.origin).With("task", task))
	case "tasks.updateStatus":
		task, err := h.repo.UpdateStatus(ctx, req.ID, req.Status)
		if err != nil {
			h.fail(w, err)
			return
		}
		envelope.Write(w, http.StatusOK, envelope.New(true, "Status updated", h.origin).With("task", task))
	case "tasks.delete":
		if err := h.repo.Delete(ctx, req.ID); err != nil {
			h.fail(w, err)
			return
		}
		envelope.Write(w, http.StatusOK, envelope.New(true, "Task deleted", h.origin))
	default:
		envelope.Write(w, http.StatusBadRequest, envelope.New(false, "Unknown function", h.origin))
	}
}

func (h *Handler) fail(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, ErrTaskNotFound):
		status = http.StatusNotFound
	case errors.Is(err, ErrMissingTitle), errors.Is(err, ErrBadStatus):
		status = http.StatusBadRequest
	default:
		h.logger.Error("tracker operation failed", "error", err)
	}
	envelope.Write(w, status, envelope.New(false, err.Error(), h.origin))
}
