package pages

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/taskdesk/internal/client/models"
	"github.com/dmitrijs2005/taskdesk/internal/client/viewmodel"
	"github.com/dmitrijs2005/taskdesk/internal/logging"
)

// MyTasksState is what the task list page last fetched.
type MyTasksState struct {
	Tasks    []models.Task
	Criteria viewmodel.Criteria
}

// MyTasks lists the signed-in user's tasks with per-status counts.
type MyTasks struct {
	reader TaskReader
	tasks  TaskMutator
	log    logging.Logger
	owner  models.User
	state  MyTasksState
}

func NewMyTasks(reader TaskReader, tasks TaskMutator, log logging.Logger, owner models.User) *MyTasks {
	return &MyTasks{reader: reader, tasks: tasks, log: log, owner: owner}
}

func (m *MyTasks) State() MyTasksState { return m.state }

func (m *MyTasks) View() viewmodel.OwnerView {
	return viewmodel.BuildOwnerView(m.state.Tasks, m.state.Criteria)
}

func (m *MyTasks) Load(ctx context.Context) error {
	tasks, err := m.reader.ListTasks(ctx, models.TaskFilter{UserID: m.owner.ID})
	if err != nil {
		return fmt.Errorf("load tasks: %w", err)
	}
	m.state = MyTasksState{Tasks: tasks, Criteria: m.state.Criteria}
	m.log.Debug(ctx, "tasks loaded", "tasks", len(tasks))
	return nil
}

// Filter sets the criteria; no request is made.
func (m *MyTasks) Filter(c viewmodel.Criteria) { m.state.Criteria = c }

func (m *MyTasks) SetStatus(ctx context.Context, id models.ID, status string) error {
	if _, err := m.tasks.SetStatus(ctx, id, status); err != nil {
		return err
	}
	return m.Load(ctx)
}

func (m *MyTasks) Delete(ctx context.Context, id models.ID) error {
	if err := m.tasks.Delete(ctx, id); err != nil {
		return err
	}
	return m.Load(ctx)
}
