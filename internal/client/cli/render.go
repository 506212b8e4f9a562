package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dmitrijs2005/taskdesk/internal/client/models"
	"github.com/dmitrijs2005/taskdesk/internal/client/pages"
	"github.com/dmitrijs2005/taskdesk/internal/client/profile"
	"github.com/dmitrijs2005/taskdesk/internal/client/viewmodel"
)

const noTasks = "No tasks found."

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
}

func taskRow(tw *tabwriter.Writer, t models.Task) {
	fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
		t.ID, viewmodel.DisplayTitle(t), viewmodel.StatusLabel(t.Status),
		viewmodel.PriorityLabel(t.Priority), viewmodel.DueLabel(t), viewmodel.DescriptionPreview(t))
}

func renderTasks(w io.Writer, tasks []models.Task) {
	if len(tasks) == 0 {
		fmt.Fprintln(w, noTasks)
		return
	}
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tTITLE\tSTATUS\tPRIORITY\tDUE\tDESCRIPTION")
	for _, t := range tasks {
		taskRow(tw, t)
	}
	tw.Flush()
}

func renderBoard(w io.Writer, user *models.User, v pages.BoardView) {
	if user != nil {
		fmt.Fprintf(w, "Welcome back, %s!\n", displayName(*user))
	}
	s := v.Summary
	fmt.Fprintf(w, "Total: %d  Completed: %d  Pending: %d  High priority: %d  Progress: %d%%\n",
		s.Total, s.Completed, s.Pending, s.HighPriorityPending, s.Progress)
	fmt.Fprintf(w, "Showing: %s\n", v.Bucket)
	renderTasks(w, v.Tasks)
}

func renderMyTasks(w io.Writer, v viewmodel.OwnerView) {
	c := v.Counts
	fmt.Fprintf(w, "My tasks  Total: %d  Pending: %d  In progress: %d  Completed: %d  Progress: %d%%\n",
		c.Total, c.Pending, c.InProgress, c.Completed, v.Summary.Progress)
	renderTasks(w, v.Tasks)
}

func renderAdmin(w io.Writer, user *models.User, v viewmodel.AdminView) {
	if user != nil {
		fmt.Fprintf(w, "Admin dashboard (%s)\n", displayName(*user))
	}
	s := v.Summary
	fmt.Fprintf(w, "Tasks: %d  Pending: %d  In progress: %d  Completed: %d  Users: %d  Progress: %d%%\n",
		s.Total, s.Pending, s.InProgress, s.Completed, s.TotalUsers, s.Progress)
	if len(v.Rows) == 0 {
		fmt.Fprintln(w, noTasks)
		return
	}
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tTITLE\tOWNER\tSTATUS\tPRIORITY\tDUE")
	for _, r := range v.Rows {
		t := r.Task
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			t.ID, viewmodel.DisplayTitle(t), r.Owner, viewmodel.StatusLabel(t.Status),
			viewmodel.PriorityLabel(t.Priority), viewmodel.DueLabel(t))
	}
	tw.Flush()
}

func renderCard(w io.Writer, c profile.Card, state profile.State) {
	tw := newTable(w)
	fmt.Fprintf(tw, "Name\t%s\n", c.Name)
	fmt.Fprintf(tw, "Email\t%s\n", c.Email)
	fmt.Fprintf(tw, "Role\t%s (%s)\n", c.RoleBadge, c.RoleLevel)
	fmt.Fprintf(tw, "Employee ID\t%s\n", c.EmployeeID)
	fmt.Fprintf(tw, "Phone\t%s\n", c.Phone)
	fmt.Fprintf(tw, "Department\t%s\n", c.Department)
	fmt.Fprintf(tw, "Joined\t%s\n", c.JoinDate)
	fmt.Fprintf(tw, "Tasks\t%d\n", c.TaskCount)
	avatar := "none"
	if c.Avatar != "" {
		avatar = "set"
	}
	fmt.Fprintf(tw, "Avatar\t%s\n", avatar)
	tw.Flush()
	if state == profile.Edit {
		fmt.Fprintln(w, "Editing: use 'editprofile' to save changes or 'cancel' to discard them.")
	}
}
