package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/taskdeck/taskdeck-go/internal/model"
	"github.com/taskdeck/taskdeck-go/internal/repository"
)

var (
	ErrTaskFieldsRequired = errors.New("all fields except status are required")
	ErrInvalidStatus      = errors.New("invalid status value")
	ErrInvalidPriority    = errors.New("invalid priority value")
	ErrInvalidDueDate     = errors.New("invalid due date")
	// ErrTaskNotFound covers both a missing task and a task owned by
	// someone else; callers cannot tell the two apart.
	ErrTaskNotFound = errors.New("task not found")
)

// TaskStore is the persistence surface TaskService needs. Implementations
// must scope every operation to the given owner.
type TaskStore interface {
	Create(ctx context.Context, task *model.Task) (*model.Task, error)
	GetByID(ctx context.Context, ownerID, taskID int64) (*model.Task, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]model.Task, error)
	Update(ctx context.Context, task *model.Task) (*model.Task, error)
	Delete(ctx context.Context, ownerID, taskID int64) error
}

// TaskService handles task business logic. Every operation takes the
// authenticated owner identity and never returns or mutates another
// user's tasks.
type TaskService struct {
	tasks TaskStore
}

// NewTaskService creates a new TaskService.
func NewTaskService(tasks TaskStore) *TaskService {
	return &TaskService{tasks: tasks}
}

// List returns the caller's tasks. The empty case is an empty slice, not
// nil, so it serializes as a JSON array.
func (s *TaskService) List(ctx context.Context, ownerID int64) ([]model.Task, error) {
	tasks, err := s.tasks.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if tasks == nil {
		tasks = []model.Task{}
	}
	return tasks, nil
}

// Create stores a new task owned by ownerID. Status defaults to Pending
// when omitted. The owner is always the authenticated identity; nothing
// in the request body can change it.
func (s *TaskService) Create(ctx context.Context, ownerID int64, req model.CreateTaskRequest) (*model.Task, error) {
	if req.Name == "" || req.Description == "" || req.DueDate == "" || req.Priority == "" {
		return nil, ErrTaskFieldsRequired
	}

	status := req.Status
	if status == "" {
		status = model.StatusPending
	}
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}
	if !req.Priority.Valid() {
		return nil, ErrInvalidPriority
	}

	due, err := parseDueDate(req.DueDate)
	if err != nil {
		return nil, ErrInvalidDueDate
	}

	task := &model.Task{
		UserID:      ownerID,
		Name:        strings.TrimSpace(req.Name),
		Description: strings.TrimSpace(req.Description),
		DueDate:     due,
		Status:      status,
		Priority:    req.Priority,
	}

	return s.tasks.Create(ctx, task)
}

// Update applies a partial update to an owned task; absent fields keep
// their stored values. Enumerated fields are re-validated exactly as on
// create, and no transition graph restricts status changes.
func (s *TaskService) Update(ctx context.Context, ownerID, taskID int64, req model.UpdateTaskRequest) (*model.Task, error) {
	task, err := s.tasks.GetByID(ctx, ownerID, taskID)
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, err
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, ErrTaskFieldsRequired
		}
		task.Name = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		if strings.TrimSpace(*req.Description) == "" {
			return nil, ErrTaskFieldsRequired
		}
		task.Description = strings.TrimSpace(*req.Description)
	}
	if req.DueDate != nil {
		due, err := parseDueDate(*req.DueDate)
		if err != nil {
			return nil, ErrInvalidDueDate
		}
		task.DueDate = due
	}
	if req.Status != nil {
		if !req.Status.Valid() {
			return nil, ErrInvalidStatus
		}
		task.Status = *req.Status
	}
	if req.Priority != nil {
		if !req.Priority.Valid() {
			return nil, ErrInvalidPriority
		}
		task.Priority = *req.Priority
	}

	return s.tasks.Update(ctx, task)
}

// Delete removes an owned task permanently.
func (s *TaskService) Delete(ctx context.Context, ownerID, taskID int64) error {
	err := s.tasks.Delete(ctx, ownerID, taskID)
	if errors.Is(err, repository.ErrTaskNotFound) {
		return ErrTaskNotFound
	}
	return err
}

// parseDueDate accepts a bare date or a full RFC 3339 timestamp.
func parseDueDate(value string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}
