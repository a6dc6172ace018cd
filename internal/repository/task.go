package repository

import (
	"context"

	"github.com/PenguinAlex/task-tracker/internal/domain"
)

// TaskRepository exposes persistence operations for Task records.
type TaskRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, task *domain.Task) (int64, error)
	Get(ctx context.Context, id int64) (*domain.Task, error)
	UpdateStatus(ctx context.Context, id int64, status domain.TaskStatus) error
	Delete(ctx context.Context, id int64) error
	ListByUsername(ctx context.Context, username string) ([]domain.Task, error)
}
