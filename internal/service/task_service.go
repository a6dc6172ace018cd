package service

import (
	"context"
	"errors"

	"github.com/PenguinAlex/task-tracker/internal/domain"
	"github.com/PenguinAlex/task-tracker/internal/repository"
)

var (
	// ErrUserNotFound is returned when an operation references an unknown username.
	ErrUserNotFound = errors.New("user not found")
	// ErrTaskNotFound is returned when an operation references an unknown task id.
	ErrTaskNotFound = errors.New("task not found")
	// ErrInvalidStatus is returned when a status is outside the enumerated set.
	ErrInvalidStatus = errors.New("invalid task status")
)

// TaskService coordinates task level operations backed by repositories.
type TaskService interface {
	Create(ctx context.Context, username, description string) (*domain.Task, error)
	UpdateStatus(ctx context.Context, id int64, status domain.TaskStatus) error
	Delete(ctx context.Context, id int64) error
	ListByUser(ctx context.Context, username string) ([]domain.Task, error)
}

type taskService struct {
	tasks repository.TaskRepository
	users repository.UserRepository
}

func NewTaskService(tasks repository.TaskRepository, users repository.UserRepository) TaskService {
	return &taskService{
		tasks: tasks,
		users: users,
	}
}

func (s *taskService) Create(ctx context.Context, username, description string) (*domain.Task, error) {
	if description == "" {
		return nil, errors.New("task description is required")
	}

	if _, err := s.users.GetByUsername(ctx, username); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	task := &domain.Task{
		Username:    username,
		Description: description,
		Status:      domain.TaskStatusBacklog,
	}

	if _, err := s.tasks.Create(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// UpdateStatus checks task existence before the status value, so an
// invalid status on a missing id reports not-found.
func (s *taskService) UpdateStatus(ctx context.Context, id int64, status domain.TaskStatus) error {
	if _, err := s.tasks.Get(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrTaskNotFound
		}
		return err
	}

	if !status.IsValid() {
		return ErrInvalidStatus
	}

	return s.tasks.UpdateStatus(ctx, id, status)
}

func (s *taskService) Delete(ctx context.Context, id int64) error {
	if err := s.tasks.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrTaskNotFound
		}
		return err
	}
	return nil
}

func (s *taskService) ListByUser(ctx context.Context, username string) ([]domain.Task, error) {
	if _, err := s.users.GetByUsername(ctx, username); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	return s.tasks.ListByUsername(ctx, username)
}
