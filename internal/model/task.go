package model

import "time"

// Status is the closed set of task states. No transition graph is
// enforced: any state may follow any other.
type Status string

const (
	StatusPending    Status = "Pending"
	StatusInProgress Status = "In Progress"
	StatusCompleted  Status = "Completed"
)

// Valid reports whether s is one of the known states.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// Priority is the closed set of task priorities.
type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

// Valid reports whether p is one of the known priorities.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Task represents an owned work item. UserID is fixed at creation from the
// authenticated identity and never changed by updates.
type Task struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	DueDate     time.Time `json:"dueDate"`
	Status      Status    `json:"status"`
	Priority    Priority  `json:"priority"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// CreateTaskRequest represents a new task. Status is optional and defaults
// to Pending. There is no owner field: the owner always comes from the
// authenticated identity.
type CreateTaskRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	DueDate     string   `json:"dueDate"`
	Status      Status   `json:"status"`
	Priority    Priority `json:"priority"`
}

// UpdateTaskRequest represents a partial task update; nil fields keep
// their stored values.
type UpdateTaskRequest struct {
	Name        *string   `json:"name"`
	Description *string   `json:"description"`
	DueDate     *string   `json:"dueDate"`
	Status      *Status   `json:"status"`
	Priority    *Priority `json:"priority"`
}

// TaskResponse wraps a task with the outcome message.
type TaskResponse struct {
	Message string `json:"message"`
	Task    Task   `json:"task"`
}
