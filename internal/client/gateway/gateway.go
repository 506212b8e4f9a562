package gateway

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/taskdesk/internal/client/models"
	"github.com/dmitrijs2005/taskdesk/internal/common"
)

type Gateway interface {
	FindUsersByEmail(ctx context.Context, email string) ([]models.User, error)
	CreateUser(ctx context.Context, u models.NewUser) (models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	UpdateUser(ctx context.Context, id models.ID, patch models.UserPatch) (models.User, error)

	ListTasks(ctx context.Context, filter models.TaskFilter) ([]models.Task, error)
	CreateTask(ctx context.Context, t models.NewTask) (models.Task, error)
	UpdateTask(ctx context.Context, id models.ID, patch models.TaskPatch) (models.Task, error)
	DeleteTask(ctx context.Context, id models.ID) error
}

// Error describes a failed remote call. Status is zero when no HTTP response
// was received.
type Error struct {
	Op     string
	Status int
	Err    error
}

func (e *Error) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s: store answered %d: %v", e.Op, e.Status, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

func (e *Error) Is(target error) bool { return target == common.ErrGateway }
