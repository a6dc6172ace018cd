package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/PenguinAlex/task-tracker/internal/domain"
	"github.com/PenguinAlex/task-tracker/internal/repository"
)

func newTestTaskRepo(t *testing.T, db *sql.DB) repository.TaskRepository {
	t.Helper()

	repo := NewTaskRepository(db)
	if err := repo.Init(context.Background()); err != nil {
		t.Fatalf("init task repository: %v", err)
	}
	return repo
}

func createTask(t *testing.T, repo repository.TaskRepository, username, description string) int64 {
	t.Helper()

	id, err := repo.Create(context.Background(), &domain.Task{
		Username:    username,
		Description: description,
		Status:      domain.TaskStatusBacklog,
	})
	if err != nil {
		t.Fatalf("create task: %v", err)
	}
	return id
}

func TestTaskIDsNeverReused(t *testing.T) {
	repo := newTestTaskRepo(t, openTestDB(t))
	ctx := context.Background()

	first := createTask(t, repo, "alice", "one")
	second := createTask(t, repo, "alice", "two")
	if second <= first {
		t.Fatalf("ids not increasing: %d then %d", first, second)
	}

	if err := repo.Delete(ctx, second); err != nil {
		t.Fatalf("delete task: %v", err)
	}

	third := createTask(t, repo, "alice", "three")
	if third <= second {
		t.Errorf("id %d reused after deleting %d", third, second)
	}
}

func TestTaskUpdateStatus(t *testing.T) {
	repo := newTestTaskRepo(t, openTestDB(t))
	ctx := context.Background()

	id := createTask(t, repo, "alice", "one")
	if err := repo.UpdateStatus(ctx, id, domain.TaskStatusDone); err != nil {
		t.Fatalf("update status: %v", err)
	}

	got, err := repo.Get(ctx, id)
	if err != nil {
		t.Fatalf("get task: %v", err)
	}
	if got.Status != domain.TaskStatusDone {
		t.Errorf("status = %q, want %q", got.Status, domain.TaskStatusDone)
	}

	if err := repo.UpdateStatus(ctx, 999, domain.TaskStatusDone); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("expected ErrNotFound for unknown id, got %v", err)
	}
}

func TestTaskDeleteTwice(t *testing.T) {
	repo := newTestTaskRepo(t, openTestDB(t))
	ctx := context.Background()

	id := createTask(t, repo, "alice", "one")
	if err := repo.Delete(ctx, id); err != nil {
		t.Fatalf("first delete: %v", err)
	}
	if err := repo.Delete(ctx, id); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("second delete: expected ErrNotFound, got %v", err)
	}
}

func TestTaskListByUsernameInsertionOrder(t *testing.T) {
	repo := newTestTaskRepo(t, openTestDB(t))
	ctx := context.Background()

	createTask(t, repo, "alice", "one")
	createTask(t, repo, "bob", "other")
	createTask(t, repo, "alice", "two")

	tasks, err := repo.ListByUsername(ctx, "alice")
	if err != nil {
		t.Fatalf("list tasks: %v", err)
	}
	if len(tasks) != 2 {
		t.Fatalf("got %d tasks, want 2", len(tasks))
	}
	if tasks[0].Description != "one" || tasks[1].Description != "two" {
		t.Errorf("tasks out of insertion order: %+v", tasks)
	}

	none, err := repo.ListByUsername(ctx, "carol")
	if err != nil {
		t.Fatalf("list tasks for carol: %v", err)
	}
	if len(none) != 0 {
		t.Errorf("expected no tasks for carol, got %d", len(none))
	}
}
