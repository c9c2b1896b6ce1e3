// Package tracker is the employee task list behind the internal tracker
// page: small CRUD over tasks with a status field.
package tracker

import (
	"errors"
	"strings"
	"time"
)

// Task statuses move open → in_progress → done.
const (
	StatusOpen       = "open"
	StatusInProgress = "in_progress"
	StatusDone       = "done"
)

// Task is one tracker entry.
type Task struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Assignee  string    `json:"assignee"`
	Notes     string    `json:"notes"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TaskInput is the caller-supplied part of a task.
type TaskInput struct {
	Title    string `json:"title"`
	Assignee string `json:"assignee"`
	Notes    string `json:"notes"`
	Status   string `json:"status"`
}

var (
	// ErrMissingTitle is returned when a new task has no title.
	ErrMissingTitle = errors.New("task title is required")

	// ErrBadStatus is returned for statuses outside the known set.
	ErrBadStatus = errors.New("unknown task status")

	// ErrTaskNotFound is returned when the task id does not exist.
	ErrTaskNotFound = errors.New("task not found")
)

// Validate checks a new task's input, defaulting status to open.
func (in *TaskInput) Validate() error {
	if strings.TrimSpace(in.Title) == "" {
		return ErrMissingTitle
	}
	if in.Status == "" {
		in.Status = StatusOpen
	}
	return validStatus(in.Status)
}

func validStatus(status string) error {
	switch status {
	case StatusOpen, StatusInProgress, StatusDone:
		return nil
	}
	return ErrBadStatus
}
