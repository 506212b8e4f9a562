package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/taskdesk/internal/client/models"
	"github.com/dmitrijs2005/taskdesk/internal/client/router"
	"github.com/dmitrijs2005/taskdesk/internal/client/services"
	"github.com/dmitrijs2005/taskdesk/internal/client/viewmodel"
)

var (
	statusPrompt   = "Status (" + models.JoinValues(models.Statuses, ", ") + ")"
	priorityPrompt = "Priority (" + models.JoinValues(models.Priorities, ", ") + ")"
)

// ShowBucket switches the dashboard's quick filter.
func (a *App) ShowBucket(ctx context.Context, bucket string) error {
	if a.board == nil {
		return notice("Quick filters are available on the user dashboard.")
	}
	b, err := viewmodel.ParseBucket(bucket)
	if err != nil {
		return notice(err.Error())
	}
	if err := a.board.ShowBucket(ctx, b); err != nil {
		return err
	}
	return a.refresh(ctx)
}

// Search narrows the listed tasks by title and description. An empty text
// drops the search.
func (a *App) Search(ctx context.Context, text string) error {
	switch {
	case a.board != nil:
		a.board.Search(text)
	case a.admin != nil:
		c := a.admin.State().Criteria
		c.Search = text
		a.admin.Filter(c)
	case a.mine != nil:
		c := a.mine.State().Criteria
		c.Search = text
		a.mine.Filter(c)
	default:
		return notice("Open a task list first.")
	}
	return a.refresh(ctx)
}

// Filter applies status=, priority= and search= arguments to the admin
// dashboard or the task list. "all" or an empty value clears a field.
func (a *App) Filter(ctx context.Context, args []string) error {
	var c viewmodel.Criteria
	switch {
	case a.admin != nil:
		c = a.admin.State().Criteria
	case a.mine != nil:
		c = a.mine.State().Criteria
	default:
		return notice("Filters are available on the admin dashboard and in 'mytasks'.")
	}

	c, err := parseCriteria(c, args)
	if err != nil {
		return err
	}
	if a.admin != nil {
		a.admin.Filter(c)
	} else {
		a.mine.Filter(c)
	}
	return a.refresh(ctx)
}

func parseCriteria(c viewmodel.Criteria, args []string) (viewmodel.Criteria, error) {
	if len(args) == 0 {
		return c, notice("Usage: filter status=<status|all> priority=<priority|all> search=<text>")
	}
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok {
			return c, notice(fmt.Sprintf("Expected key=value, got %q", arg))
		}
		if strings.EqualFold(value, "all") {
			value = ""
		}
		switch strings.ToLower(key) {
		case "status":
			c.Status = ""
			if value != "" {
				s, err := models.ParseStatus(value)
				if err != nil {
					return c, notice(fmt.Sprintf("Unknown status %q (want %s)", value, models.JoinValues(models.Statuses, ", ")))
				}
				c.Status = s
			}
		case "priority":
			c.Priority = ""
			if value != "" {
				p, err := models.ParsePriority(value)
				if err != nil {
					return c, notice(fmt.Sprintf("Unknown priority %q (want %s)", value, models.JoinValues(models.Priorities, ", ")))
				}
				c.Priority = p
			}
		case "search":
			c.Search = value
		default:
			return c, notice(fmt.Sprintf("Unknown filter %q", key))
		}
	}
	return c, nil
}

// ClearFilters resets search and filters of the current list.
func (a *App) ClearFilters(ctx context.Context) error {
	switch {
	case a.board != nil:
		a.board.Search("")
	case a.admin != nil:
		a.admin.ClearFilters()
	case a.mine != nil:
		a.mine.Filter(viewmodel.Criteria{})
	default:
		return notice("Open a task list first.")
	}
	return a.refresh(ctx)
}

// NewTask opens the new-task form, creates the task for the signed-in user
// and returns to their home page.
func (a *App) NewTask(ctx context.Context) error {
	landed, err := a.open(ctx, router.NewTask)
	if err != nil {
		return err
	}
	if landed != router.NewTask {
		return a.show(ctx, landed, true)
	}

	var in services.TaskInput
	if in.Title, err = getSimpleText(a.reader, "Title", a.out); err != nil {
		return err
	}
	if in.Description, err = getSimpleText(a.reader, "Description", a.out); err != nil {
		return err
	}
	if in.Category, err = getSimpleText(a.reader, "Category", a.out); err != nil {
		return err
	}
	if in.Priority, err = GetWithDefault(a.reader, priorityPrompt, string(models.PriorityMedium), a.out); err != nil {
		return err
	}
	if in.DueDate, err = getSimpleText(a.reader, "Due date (YYYY-MM-DD, empty for none)", a.out); err != nil {
		return err
	}

	task, err := a.taskService.Create(ctx, in)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Task %q created.\n", viewmodel.DisplayTitle(task))
	return a.openPage(ctx, router.HomeFor(a.user))
}

// SetStatus moves a listed task to another status.
func (a *App) SetStatus(ctx context.Context, id, status string) error {
	tid := models.ID(id)
	var err error
	switch {
	case a.board != nil:
		err = a.board.SetStatus(ctx, tid, status)
	case a.admin != nil:
		err = a.admin.SetStatus(ctx, tid, status)
	case a.mine != nil:
		err = a.mine.SetStatus(ctx, tid, status)
	default:
		return notice("Open a task list first.")
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Status updated.")
	return a.refresh(ctx)
}

// EditTask prompts for every field of a task on the admin dashboard, each
// defaulting to its current value, and saves them all. Answering "-" clears
// the description, category or due date.
func (a *App) EditTask(ctx context.Context, id string) error {
	if a.admin == nil {
		return notice("Tasks are edited from the admin dashboard.")
	}
	task, ok := a.admin.Task(models.ID(id))
	if !ok {
		return notice(fmt.Sprintf("No task with id %s.", id))
	}

	due := ""
	if d, ok := task.Due(); ok {
		due = d.Format(models.DateLayout)
	}
	status := string(task.Status)
	if !task.Status.Valid() {
		status = string(models.StatusPending)
	}
	priority := string(task.Priority)
	if priority == "" {
		priority = string(models.PriorityMedium)
	}

	var (
		in  services.TaskInput
		err error
	)
	if in.Title, err = GetWithDefault(a.reader, "Title", task.Title, a.out); err != nil {
		return err
	}
	if in.Description, err = GetWithDefault(a.reader, "Description ('-' for none)", task.Description, a.out); err != nil {
		return err
	}
	if in.Category, err = GetWithDefault(a.reader, "Category ('-' for none)", task.Category, a.out); err != nil {
		return err
	}
	if in.Status, err = GetWithDefault(a.reader, statusPrompt, status, a.out); err != nil {
		return err
	}
	if in.Priority, err = GetWithDefault(a.reader, priorityPrompt, priority, a.out); err != nil {
		return err
	}
	if in.DueDate, err = GetWithDefault(a.reader, "Due date (YYYY-MM-DD, '-' for none)", due, a.out); err != nil {
		return err
	}
	in.Description, in.Category, in.DueDate = cleared(in.Description), cleared(in.Category), cleared(in.DueDate)

	if err := a.admin.Edit(ctx, task.ID, in); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Task updated.")
	return a.refresh(ctx)
}

// cleared maps the "-" answer of an edit prompt to an empty value.
func cleared(s string) string {
	if s == "-" {
		return ""
	}
	return s
}

// DeleteTask removes a listed task after confirmation.
func (a *App) DeleteTask(ctx context.Context, id string) error {
	if a.board == nil && a.admin == nil && a.mine == nil {
		return notice("Open a task list first.")
	}
	ok, err := Confirm(a.reader, fmt.Sprintf("Delete task %s?", id), a.out)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(a.out, "Cancelled.")
		return nil
	}

	tid := models.ID(id)
	switch {
	case a.board != nil:
		err = a.board.Delete(ctx, tid)
	case a.admin != nil:
		err = a.admin.Delete(ctx, tid)
	default:
		err = a.mine.Delete(ctx, tid)
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Task deleted.")
	return a.refresh(ctx)
}
