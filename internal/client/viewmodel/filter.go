package viewmodel

import (
	"strings"

	"github.com/dmitrijs2005/taskdesk/internal/client/models"
	"golang.org/x/text/cases"
)

// Criteria narrows a task list. Zero fields add no constraint; set fields
// combine with AND.
type Criteria struct {
	Search   string
	Status   models.Status
	Priority models.Priority
}

func (c Criteria) IsZero() bool {
	return strings.TrimSpace(c.Search) == "" && c.Status == "" && c.Priority == ""
}

// Filter returns the tasks whose title or description contains Search
// (case-insensitive) and whose status and priority equal the ones set in c.
// The result is a new slice in input order.
func Filter(tasks []models.Task, c Criteria) []models.Task {
	fold := cases.Fold()
	needle := fold.String(strings.TrimSpace(c.Search))

	out := make([]models.Task, 0, len(tasks))
	for _, t := range tasks {
		if c.Status != "" && t.Status != c.Status {
			continue
		}
		if c.Priority != "" && t.Priority != c.Priority {
			continue
		}
		if needle != "" &&
			!strings.Contains(fold.String(t.Title), needle) &&
			!strings.Contains(fold.String(t.Description), needle) {
			continue
		}
		out = append(out, t)
	}
	return out
}
