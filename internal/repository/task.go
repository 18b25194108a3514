package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/taskdeck/taskdeck-go/internal/model"
)

var ErrTaskNotFound = errors.New("task not found")

// TaskRepository persists tasks. Every query is scoped by owner, so a
// task belonging to another user behaves exactly like a missing one.
type TaskRepository struct {
	db *sql.DB
}

// NewTaskRepository creates a new TaskRepository.
func NewTaskRepository(db *sql.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

const taskColumns = `id, user_id, name, description, due_date, status, priority, created_at, updated_at`

// Create inserts a new task and returns the stored row, including the
// server-assigned id and timestamps.
func (r *TaskRepository) Create(ctx context.Context, task *model.Task) (*model.Task, error) {
	query := `INSERT INTO tasks (user_id, name, description, due_date, status, priority)
		VALUES (?, ?, ?, ?, ?, ?)`

	result, err := r.db.ExecContext(ctx, query,
		task.UserID, task.Name, task.Description, task.DueDate, task.Status, task.Priority,
	)
	if err != nil {
		return nil, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	return r.GetByID(ctx, task.UserID, id)
}

// GetByID retrieves a task by id, scoped to its owner.
func (r *TaskRepository) GetByID(ctx context.Context, ownerID, taskID int64) (*model.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = ? AND user_id = ?`

	task := &model.Task{}
	err := r.db.QueryRowContext(ctx, query, taskID, ownerID).Scan(
		&task.ID, &task.UserID, &task.Name, &task.Description,
		&task.DueDate, &task.Status, &task.Priority,
		&task.CreatedAt, &task.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTaskNotFound
		}
		return nil, err
	}

	return task, nil
}

// ListByOwner retrieves all tasks owned by ownerID, soonest due first.
func (r *TaskRepository) ListByOwner(ctx context.Context, ownerID int64) ([]model.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE user_id = ? ORDER BY due_date ASC, id ASC`

	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []model.Task
	for rows.Next() {
		var t model.Task
		if err := rows.Scan(
			&t.ID, &t.UserID, &t.Name, &t.Description,
			&t.DueDate, &t.Status, &t.Priority,
			&t.CreatedAt, &t.UpdatedAt,
		); err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}

	return tasks, rows.Err()
}

// Update persists the mutable fields of an owned task and returns the
// stored row. The owner column is never part of the update.
func (r *TaskRepository) Update(ctx context.Context, task *model.Task) (*model.Task, error) {
	query := `UPDATE tasks SET name = ?, description = ?, due_date = ?, status = ?, priority = ?
		WHERE id = ? AND user_id = ?`

	if _, err := r.db.ExecContext(ctx, query,
		task.Name, task.Description, task.DueDate, task.Status, task.Priority,
		task.ID, task.UserID,
	); err != nil {
		return nil, err
	}

	return r.GetByID(ctx, task.UserID, task.ID)
}

// Delete removes an owned task permanently. A task that does not exist
// for this owner reports ErrTaskNotFound.
func (r *TaskRepository) Delete(ctx context.Context, ownerID, taskID int64) error {
	query := `DELETE FROM tasks WHERE id = ? AND user_id = ?`

	result, err := r.db.ExecContext(ctx, query, taskID, ownerID)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrTaskNotFound
	}

	return nil
}
