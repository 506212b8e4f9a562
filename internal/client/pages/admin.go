package pages

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/taskdesk/internal/client/models"
	"github.com/dmitrijs2005/taskdesk/internal/client/services"
	"github.com/dmitrijs2005/taskdesk/internal/client/viewmodel"
	"github.com/dmitrijs2005/taskdesk/internal/logging"
)

// AdminState is what the admin dashboard last fetched.
type AdminState struct {
	Tasks    []models.Task
	Users    []models.User
	Criteria viewmodel.Criteria
}

// TaskEditor is the full-edit operation of the task service.
type TaskEditor interface {
	TaskMutator
	Edit(ctx context.Context, id models.ID, in services.TaskInput) (models.Task, error)
}

// AdminBoard is the dashboard of an administrator: every task of every
// user, with owner names resolved.
type AdminBoard struct {
	reader TaskReader
	tasks  TaskEditor
	log    logging.Logger
	state  AdminState
}

func NewAdminBoard(reader TaskReader, tasks TaskEditor, log logging.Logger) *AdminBoard {
	return &AdminBoard{reader: reader, tasks: tasks, log: log}
}

func (a *AdminBoard) State() AdminState { return a.state }

func (a *AdminBoard) View() viewmodel.AdminView {
	return viewmodel.BuildAdminView(a.state.Tasks, a.state.Users, a.state.Criteria)
}

// Load fetches all tasks and users. Both must succeed for the state to
// change.
func (a *AdminBoard) Load(ctx context.Context) error {
	tasks, err := a.reader.ListTasks(ctx, models.TaskFilter{})
	if err != nil {
		return fmt.Errorf("load admin dashboard: %w", err)
	}
	users, err := a.reader.ListUsers(ctx)
	if err != nil {
		return fmt.Errorf("load admin dashboard: %w", err)
	}

	a.state = AdminState{Tasks: tasks, Users: users, Criteria: a.state.Criteria}
	a.log.Debug(ctx, "admin dashboard loaded", "tasks", len(tasks), "users", len(users))
	return nil
}

// Filter sets the criteria; no request is made.
func (a *AdminBoard) Filter(c viewmodel.Criteria) { a.state.Criteria = c }

// ClearFilters resets the criteria.
func (a *AdminBoard) ClearFilters() { a.state.Criteria = viewmodel.Criteria{} }

// Task finds a task of the last fetch by id.
func (a *AdminBoard) Task(id models.ID) (models.Task, bool) {
	for _, t := range a.state.Tasks {
		if t.ID == id {
			return t, true
		}
	}
	return models.Task{}, false
}

func (a *AdminBoard) Edit(ctx context.Context, id models.ID, in services.TaskInput) error {
	if _, err := a.tasks.Edit(ctx, id, in); err != nil {
		return err
	}
	return a.Load(ctx)
}

func (a *AdminBoard) SetStatus(ctx context.Context, id models.ID, status string) error {
	if _, err := a.tasks.SetStatus(ctx, id, status); err != nil {
		return err
	}
	return a.Load(ctx)
}

func (a *AdminBoard) Delete(ctx context.Context, id models.ID) error {
	if err := a.tasks.Delete(ctx, id); err != nil {
		return err
	}
	return a.Load(ctx)
}
