package viewmodel

import "github.com/dmitrijs2005/taskdesk/internal/client/models"

// UnknownUser is shown for tasks whose owner is not in the user list.
const UnknownUser = "Unknown User"

// Row is a task with its owner's display name resolved.
type Row struct {
	Task  models.Task
	Owner string
}

func ResolveOwners(tasks []models.Task, users []models.User) []Row {
	names := make(map[models.ID]string, len(users))
	for _, u := range users {
		if _, seen := names[u.ID]; !seen {
			names[u.ID] = u.DisplayName()
		}
	}

	rows := make([]Row, 0, len(tasks))
	for _, t := range tasks {
		owner, ok := names[t.UserID]
		if !ok || owner == "" {
			owner = UnknownUser
		}
		rows = append(rows, Row{Task: t, Owner: owner})
	}
	return rows
}
