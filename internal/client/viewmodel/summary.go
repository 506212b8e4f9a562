package viewmodel

import (
	"math"

	"github.com/dmitrijs2005/taskdesk/internal/client/models"
)

// Progress is round(completed/total*100), 0 for an empty list, clamped to
// [0, 100].
func Progress(completed, total int) int {
	if total <= 0 || completed <= 0 {
		return 0
	}
	if completed >= total {
		return 100
	}
	return int(math.Round(float64(completed) / float64(total) * 100))
}

// StatusCounts tallies tasks per canonical status. Tasks with any other
// status count towards Total only.
type StatusCounts struct {
	Total      int
	Pending    int
	InProgress int
	Completed  int
}

// Open is the number of tasks not yet completed.
func (c StatusCounts) Open() int { return c.Pending + c.InProgress }

func CountByStatus(tasks []models.Task) StatusCounts {
	c := StatusCounts{Total: len(tasks)}
	for _, t := range tasks {
		switch t.Status {
		case models.StatusPending:
			c.Pending++
		case models.StatusInProgress:
			c.InProgress++
		case models.StatusCompleted:
			c.Completed++
		}
	}
	return c
}

// OwnerSummary is the headline of a user's dashboard. Pending merges the
// pending and in-progress statuses.
type OwnerSummary struct {
	Total               int
	Completed           int
	Pending             int
	HighPriorityPending int
	Progress            int
}

func SummarizeOwner(tasks []models.Task) OwnerSummary {
	c := CountByStatus(tasks)
	s := OwnerSummary{
		Total:     c.Total,
		Completed: c.Completed,
		Pending:   c.Open(),
		Progress:  Progress(c.Completed, c.Total),
	}
	for _, t := range tasks {
		if t.Status.IsOpen() && t.Priority == models.PriorityHigh {
			s.HighPriorityPending++
		}
	}
	return s
}

// AdminSummary is the headline of the admin dashboard. Statuses are kept
// apart; TotalUsers counts accounts with the user role.
type AdminSummary struct {
	StatusCounts
	Progress   int
	TotalUsers int
}

func SummarizeAdmin(tasks []models.Task, users []models.User) AdminSummary {
	c := CountByStatus(tasks)
	s := AdminSummary{
		StatusCounts: c,
		Progress:     Progress(c.Completed, c.Total),
	}
	for _, u := range users {
		if u.Role == models.RoleUser {
			s.TotalUsers++
		}
	}
	return s
}
