package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/PenguinAlex/task-tracker/internal/domain"
	"github.com/PenguinAlex/task-tracker/internal/repository"
)

// AUTOINCREMENT keeps task ids strictly increasing and never reused,
// even after deletes.
const createTasksTable = `
CREATE TABLE IF NOT EXISTS tasks (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	username TEXT NOT NULL,
	task TEXT NOT NULL,
	status TEXT NOT NULL,
	created_at DATETIME NOT NULL,
	updated_at DATETIME NOT NULL
);
`

type TaskRepository struct {
	db *sql.DB
}

func NewTaskRepository(db *sql.DB) repository.TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Init(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createTasksTable); err != nil {
		return fmt.Errorf("create tasks table: %w", err)
	}
	return nil
}

func (r *TaskRepository) Create(ctx context.Context, task *domain.Task) (int64, error) {
	now := time.Now().UTC()
	task.CreatedAt = now
	task.UpdatedAt = now

	res, err := r.db.ExecContext(ctx, `
INSERT INTO tasks (username, task, status, created_at, updated_at)
VALUES (?, ?, ?, ?, ?)`,
		task.Username,
		task.Description,
		string(task.Status),
		task.CreatedAt,
		task.UpdatedAt,
	)
	if err != nil {
		return 0, fmt.Errorf("insert task: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("task last insert id: %w", err)
	}
	task.ID = id
	return id, nil
}

func (r *TaskRepository) Get(ctx context.Context, id int64) (*domain.Task, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT id, username, task, status, created_at, updated_at
FROM tasks
WHERE id = ?`,
		id,
	)

	task, err := scanTask(row)
	if err != nil {
		return nil, err
	}
	return task, nil
}

func (r *TaskRepository) UpdateStatus(ctx context.Context, id int64, status domain.TaskStatus) error {
	res, err := r.db.ExecContext(ctx, `
UPDATE tasks
SET status = ?, updated_at = ?
WHERE id = ?`,
		string(status),
		time.Now().UTC(),
		id,
	)
	if err != nil {
		return fmt.Errorf("update task status: %w", err)
	}
	aff, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("task update rows affected: %w", err)
	}
	if aff == 0 {
		return fmt.Errorf("task %d: %w", id, repository.ErrNotFound)
	}
	return nil
}

func (r *TaskRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	aff, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("task delete rows affected: %w", err)
	}
	if aff == 0 {
		return fmt.Errorf("task %d: %w", id, repository.ErrNotFound)
	}
	return nil
}

// ListByUsername returns the user's tasks in insertion order.
func (r *TaskRepository) ListByUsername(ctx context.Context, username string) ([]domain.Task, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT id, username, task, status, created_at, updated_at
FROM tasks
WHERE username = ?
ORDER BY id ASC`,
		username,
	)
	if err != nil {
		return nil, fmt.Errorf("query tasks: %w", err)
	}
	defer rows.Close()

	var tasks []domain.Task
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, *task)
	}

	return tasks, rows.Err()
}

func scanTask(scanner interface {
	Scan(dest ...any) error
}) (*domain.Task, error) {
	var (
		task   domain.Task
		status string
	)

	if err := scanner.Scan(
		&task.ID,
		&task.Username,
		&task.Description,
		&status,
		&task.CreatedAt,
		&task.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("task: %w", repository.ErrNotFound)
		}
		return nil, fmt.Errorf("scan task: %w", err)
	}

	task.Status = domain.TaskStatus(status)
	return &task, nil
}
