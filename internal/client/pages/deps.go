package pages

import (
	"context"

	"github.com/dmitrijs2005/taskdesk/internal/client/models"
)

// TaskReader is the gateway surface the controllers read from.
type TaskReader interface {
	ListTasks(ctx context.Context, filter models.TaskFilter) ([]models.Task, error)
	ListUsers(ctx context.Context) ([]models.User, error)
}

// TaskMutator is the task service surface the controllers write through.
type TaskMutator interface {
	SetStatus(ctx context.Context, id models.ID, status string) (models.Task, error)
	Delete(ctx context.Context, id models.ID) error
}
