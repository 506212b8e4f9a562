package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/taskdesk/internal/client/gateway"
	"github.com/dmitrijs2005/taskdesk/internal/client/models"
	"github.com/dmitrijs2005/taskdesk/internal/client/validation"
	"github.com/dmitrijs2005/taskdesk/internal/common"
	"github.com/dmitrijs2005/taskdesk/internal/logging"
	"go.uber.org/atomic"
)

// TaskInput is the new-task and edit-task form as typed. Empty Status and
// Priority fall back to pending and medium; DueDate is YYYY-MM-DD or empty.
type TaskInput struct {
	Title       string `validate:"required" label:"title"`
	Description string
	Category    string
	Status      string
	Priority    string
	DueDate     string `validate:"omitempty,datetime=2006-01-02" label:"due date"`
}

var (
	statusChoices   = "must be one of: " + models.JoinValues(models.Statuses, ", ")
	priorityChoices = "must be one of: " + models.JoinValues(models.Priorities, ", ")
)

type TaskService struct {
	gw       gateway.Gateway
	sessions SessionStore
	log      logging.Logger
	now      func() time.Time

	// busy is set while a create or edit is on the wire.
	busy atomic.Bool
}

func NewTaskService(gw gateway.Gateway, sessions SessionStore, log logging.Logger) *TaskService {
	return &TaskService{gw: gw, sessions: sessions, log: log, now: time.Now}
}

type normalizedTask struct {
	title, description, category string
	status                       models.Status
	priority                     models.Priority
	dueDate                      string
}

func normalize(in TaskInput) (normalizedTask, error) {
	in.Title = strings.TrimSpace(in.Title)
	in.Description = strings.TrimSpace(in.Description)
	in.Category = strings.TrimSpace(in.Category)
	in.DueDate = strings.TrimSpace(in.DueDate)

	if err := validation.Struct(in); err != nil {
		return normalizedTask{}, err
	}

	out := normalizedTask{
		title:       in.Title,
		description: in.Description,
		category:    in.Category,
		status:      models.StatusPending,
		priority:    models.PriorityMedium,
		dueDate:     in.DueDate,
	}
	if strings.TrimSpace(in.Status) != "" {
		st, err := models.ParseStatus(in.Status)
		if err != nil {
			return normalizedTask{}, validation.Field("status", statusChoices)
		}
		out.status = st
	}
	if strings.TrimSpace(in.Priority) != "" {
		p, err := models.ParsePriority(in.Priority)
		if err != nil {
			return normalizedTask{}, validation.Field("priority", priorityChoices)
		}
		out.priority = p
	}
	return out, nil
}

func (s *TaskService) acquire() error {
	if !s.busy.CompareAndSwap(false, true) {
		return common.ErrInFlight
	}
	return nil
}

// Create validates in and stores a task owned by the signed-in user.
// Invalid input makes no request.
func (s *TaskService) Create(ctx context.Context, in TaskInput) (models.Task, error) {
	if err := s.acquire(); err != nil {
		return models.Task{}, err
	}
	defer s.busy.Store(false)

	n, err := normalize(in)
	if err != nil {
		return models.Task{}, err
	}

	owner, err := s.sessions.Current(ctx)
	if err != nil {
		return models.Task{}, err
	}

	t := models.NewTask{
		Title:       n.title,
		Description: n.description,
		Category:    n.category,
		Status:      n.status,
		Priority:    n.priority,
		UserID:      owner.ID,
		CreatedAt:   s.now().UTC(),
	}
	if n.dueDate != "" {
		t.DueDate = &n.dueDate
	}

	created, err := s.gw.CreateTask(ctx, t)
	if err != nil {
		return models.Task{}, fmt.Errorf("create task: %w", err)
	}

	s.log.Info(ctx, "task created", "id", created.ID, "user", owner.ID)
	return created, nil
}

// Edit replaces every editable field of task id. An empty category or due
// date clears it.
func (s *TaskService) Edit(ctx context.Context, id models.ID, in TaskInput) (models.Task, error) {
	if err := s.acquire(); err != nil {
		return models.Task{}, err
	}
	defer s.busy.Store(false)

	n, err := normalize(in)
	if err != nil {
		return models.Task{}, err
	}

	patch := models.TaskPatch{
		Title:       &n.title,
		Description: &n.description,
		Status:      &n.status,
		Priority:    &n.priority,
		Category:    &n.category,
		DueDate:     &n.dueDate,
	}

	updated, err := s.gw.UpdateTask(ctx, id, patch)
	if err != nil {
		return models.Task{}, fmt.Errorf("edit task %s: %w", id, err)
	}

	s.log.Info(ctx, "task edited", "id", id)
	return updated, nil
}

// SetStatus moves task id to status, accepting any spelling ParseStatus does.
func (s *TaskService) SetStatus(ctx context.Context, id models.ID, status string) (models.Task, error) {
	st, err := models.ParseStatus(status)
	if err != nil {
		return models.Task{}, validation.Field("status", statusChoices)
	}

	updated, err := s.gw.UpdateTask(ctx, id, models.TaskPatch{Status: &st})
	if err != nil {
		return models.Task{}, fmt.Errorf("set status of task %s: %w", id, err)
	}

	s.log.Info(ctx, "task status changed", "id", id, "status", st)
	return updated, nil
}

func (s *TaskService) Delete(ctx context.Context, id models.ID) error {
	if err := s.gw.DeleteTask(ctx, id); err != nil {
		return fmt.Errorf("delete task %s: %w", id, err)
	}
	s.log.Info(ctx, "task deleted", "id", id)
	return nil
}
