package domain

import "time"

type TaskStatus string

const (
	TaskStatusBacklog    TaskStatus = "backlog"
	TaskStatusInProgress TaskStatus = "inProgress"
	TaskStatusDone       TaskStatus = "done"
	TaskStatusOnAccess   TaskStatus = "onAccess"
)

// IsValid reports whether s is one of the four workflow statuses.
func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusBacklog, TaskStatusInProgress, TaskStatusDone, TaskStatusOnAccess:
		return true
	}
	return false
}

// Task represents a single tracked item owned by a username.
type Task struct {
	ID          int64
	Username    string
	Description string
	Status      TaskStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
