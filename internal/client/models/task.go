package models

import (
	"strings"
	"time"
)

// DateLayout is the layout of due dates entered as plain calendar dates.
const DateLayout = "2006-01-02"

// Task is a record of the store's tasks collection.
type Task struct {
	ID          ID        `json:"id,omitempty"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category,omitempty"`
	Status      Status    `json:"status"`
	Priority    Priority  `json:"priority"`
	DueDate     *string   `json:"dueDate"`
	UserID      ID        `json:"userId"`
	CreatedAt   Timestamp `json:"createdAt"`
}

// Due parses DueDate, accepting a calendar date or an RFC 3339 timestamp.
func (t Task) Due() (time.Time, bool) {
	if t.DueDate == nil {
		return time.Time{}, false
	}
	s := strings.TrimSpace(*t.DueDate)
	if s == "" {
		return time.Time{}, false
	}
	if d, err := time.Parse(DateLayout, s); err == nil {
		return d, true
	}
	if d, err := time.Parse(time.RFC3339, s); err == nil {
		return d, true
	}
	return time.Time{}, false
}

// NewTask is the body of a task creation request.
type NewTask struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category,omitempty"`
	Status      Status    `json:"status"`
	Priority    Priority  `json:"priority"`
	DueDate     *string   `json:"dueDate"`
	UserID      ID        `json:"userId"`
	CreatedAt   time.Time `json:"createdAt"`
}

// TaskPatch carries the fields of a partial task update; nil fields are not
// sent.
type TaskPatch struct {
	Title       *string   `json:"title,omitempty"`
	Description *string   `json:"description,omitempty"`
	Category    *string   `json:"category,omitempty"`
	Status      *Status   `json:"status,omitempty"`
	Priority    *Priority `json:"priority,omitempty"`
	DueDate     *string   `json:"dueDate,omitempty"`
}

// TaskFilter is pushed to the store as equality query parameters. Zero
// fields add no constraint.
type TaskFilter struct {
	UserID ID
	Status Status
}
