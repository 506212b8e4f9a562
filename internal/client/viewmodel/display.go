package viewmodel

import (
	"github.com/dmitrijs2005/taskdesk/internal/client/models"
)

const (
	UntitledTask  = "Untitled Task"
	NoDescription = "No description"
	NoDate        = "No date"

	// DueLayout formats due dates in task tables.
	DueLayout = "Jan 2, 2006"

	previewLen = 50
)

func DisplayTitle(t models.Task) string {
	if t.Title == "" {
		return UntitledTask
	}
	return t.Title
}

// DescriptionPreview cuts long descriptions to their first runes.
func DescriptionPreview(t models.Task) string {
	if t.Description == "" {
		return NoDescription
	}
	r := []rune(t.Description)
	if len(r) <= previewLen {
		return t.Description
	}
	return string(r[:previewLen]) + "..."
}

func DueLabel(t models.Task) string {
	d, ok := t.Due()
	if !ok {
		return NoDate
	}
	return d.Format(DueLayout)
}

// StatusLabel falls back to Pending for unknown values, as the task tables
// do.
func StatusLabel(s models.Status) string {
	if !s.Valid() {
		return models.StatusPending.Label()
	}
	return s.Label()
}

// PriorityLabel falls back to Medium for empty values.
func PriorityLabel(p models.Priority) string {
	if p == "" {
		return models.PriorityMedium.Label()
	}
	return p.Label()
}
