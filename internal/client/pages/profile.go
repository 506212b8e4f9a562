package pages

import (
	"context"

	"github.com/dmitrijs2005/taskdesk/internal/client/models"
	"github.com/dmitrijs2005/taskdesk/internal/client/profile"
	"github.com/dmitrijs2005/taskdesk/internal/logging"
)

// ProfilePage pairs the profile editor with the user's task count.
type ProfilePage struct {
	Editor *profile.Editor

	reader    TaskReader
	log       logging.Logger
	taskCount int
}

func NewProfilePage(editor *profile.Editor, reader TaskReader, log logging.Logger) *ProfilePage {
	return &ProfilePage{Editor: editor, reader: reader, log: log}
}

// Load counts the user's tasks. A failed count shows as zero.
func (p *ProfilePage) Load(ctx context.Context) {
	tasks, err := p.reader.ListTasks(ctx, models.TaskFilter{UserID: p.Editor.User().ID})
	if err != nil {
		p.log.Warn(ctx, "task count unavailable", "error", err)
		p.taskCount = 0
		return
	}
	p.taskCount = len(tasks)
}

func (p *ProfilePage) Card() profile.Card { return p.Editor.Card(p.taskCount) }
