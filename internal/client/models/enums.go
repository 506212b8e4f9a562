package models

import (
	"errors"
	"strings"

	"github.com/goccy/go-json"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	ErrUnknownStatus   = errors.New("unknown status")
	ErrUnknownPriority = errors.New("unknown priority")
)

type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// IsAdmin reports whether the role grants the admin pages. Any other value is
// treated as a regular user.
func (r Role) IsAdmin() bool { return r == RoleAdmin }

type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
)

// Statuses lists the canonical statuses in workflow order.
var Statuses = []Status{StatusPending, StatusInProgress, StatusCompleted}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh}

// JoinValues renders enum values for prompts and messages, e.g.
// JoinValues(Statuses, ", ") is "pending, in-progress, completed".
func JoinValues[T ~string](vs []T, sep string) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = string(v)
	}
	return strings.Join(parts, sep)
}

// normalizeEnum folds case and turns spaces and underscores into hyphens, so
// "In Progress", "IN_PROGRESS" and "in-progress" all become "in-progress".
func normalizeEnum(s string) string {
	s = cases.Fold().String(strings.TrimSpace(s))
	return strings.Join(strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == '_' || r == '-'
	}), "-")
}

func label(s string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(s, "-", " "))
}

// ParseStatus maps any observed spelling of a status to its canonical form.
func ParseStatus(s string) (Status, error) {
	v := Status(normalizeEnum(s))
	if !v.Valid() {
		return "", ErrUnknownStatus
	}
	return v, nil
}

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// IsOpen reports whether the task still needs work.
func (s Status) IsOpen() bool {
	return s == StatusPending || s == StatusInProgress
}

// Label is the display form, e.g. "In Progress".
func (s Status) Label() string { return label(string(s)) }

// UnmarshalJSON normalises the stored spelling. Unknown values are kept in
// folded form rather than failing the whole collection.
func (s *Status) UnmarshalJSON(b []byte) error {
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	*s = Status(normalizeEnum(raw))
	return nil
}

func ParsePriority(s string) (Priority, error) {
	v := Priority(normalizeEnum(s))
	if !v.Valid() {
		return "", ErrUnknownPriority
	}
	return v, nil
}

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

func (p Priority) Label() string { return label(string(p)) }

func (p *Priority) UnmarshalJSON(b []byte) error {
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	*p = Priority(normalizeEnum(raw))
	return nil
}
