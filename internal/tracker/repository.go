package tracker

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Repository defines the interface for task storage
type Repository interface {
	List(ctx context.Context) ([]*Task, error)
	Add(ctx context.Context, in TaskInput) (*Task, error)
	Update(ctx context.Context, id string, in TaskInput) (*Task, error)
	UpdateStatus(ctx context.Context, id, status string) (*Task, error)
	Delete(ctx context.Context, id string) error
}

// InMemoryRepository stores tasks in process memory.
type InMemoryRepository struct {
	mu    sync.RWMutex
	tasks map[string]*Task
	now   func() time.Time
}

// NewInMemoryRepository creates a new in-memory repository
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		tasks: make(map[string]*Task),
		now:   time.Now,
	}
}

// List returns all tasks, newest first.
func (r *InMemoryRepository) List(ctx context.Context) ([]*Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tasks := make([]*Task, 0, len(r.tasks))
	for _, t := range r.tasks {
		copied := *t
		tasks = append(tasks, &copied)
	}
	sort.Slice(tasks, func(i, j int) bool {
		return tasks[i].CreatedAt.After(tasks[j].CreatedAt)
	})
	return tasks, nil
}

// Add creates a new task.
func (r *InMemoryRepository) Add(ctx context.Context, in TaskInput) (*Task, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	now := r.now().UTC()
	task := &Task{
		ID:        uuid.New().String(),
		Title:     in.Title,
		Assignee:  in.Assignee,
		Notes:     in.Notes,
		Status:    in.Status,
		CreatedAt: now,
		UpdatedAt: now,
	}

	r.mu.Lock()
	r.tasks[task.ID] = task
	r.mu.Unlock()

	copied := *task
	return &copied, nil
}

// Update replaces a task's caller-supplied fields.
func (r *InMemoryRepository) Update(ctx context.Context, id string, in TaskInput) (*Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	task, ok := r.tasks[id]
	if !ok {
		return nil, ErrTaskNotFound
	}
	if in.Title != "" {
		task.Title = in.Title
	}
	if in.Assignee != "" {
		task.Assignee = in.Assignee
	}
	if in.Notes != "" {
		task.Notes = in.Notes
	}
	if in.Status != "" {
		if err := validStatus(in.Status); err != nil {
			return nil, err
		}
		task.Status = in.Status
	}
	task.UpdatedAt = r.now().UTC()

	copied := *task
	return &copied, nil
}

// UpdateStatus moves a task to the given status.
func (r *InMemoryRepository) UpdateStatus(ctx context.Context, id, status string) (*Task, error) {
	if err := validStatus(status); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	task, ok := r.tasks[id]
	if !ok {
		return nil, ErrTaskNotFound
	}
	task.Status = status
	task.UpdatedAt = r.now().UTC()

	copied := *task
	return &copied, nil
}

// Delete removes a task.
func (r *InMemoryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.tasks[id]; !ok {
		return ErrTaskNotFound
	}
	delete(r.tasks, id)
	return nil
}
