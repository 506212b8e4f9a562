package pages

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/taskdesk/internal/client/models"
	"github.com/dmitrijs2005/taskdesk/internal/client/viewmodel"
	"github.com/dmitrijs2005/taskdesk/internal/logging"
)

// BoardState is what the user dashboard last fetched. All holds every task
// of the user and feeds the summary; Listed is the active bucket.
type BoardState struct {
	All    []models.Task
	Listed []models.Task
	Bucket viewmodel.Bucket
	Search string
}

// BoardView is the rendered dashboard.
type BoardView struct {
	Summary viewmodel.OwnerSummary
	Bucket  viewmodel.Bucket
	Tasks   []models.Task
}

// Board is the dashboard of a regular user.
type Board struct {
	reader TaskReader
	tasks  TaskMutator
	log    logging.Logger
	owner  models.User
	state  BoardState
}

func NewBoard(reader TaskReader, tasks TaskMutator, log logging.Logger, owner models.User) *Board {
	return &Board{reader: reader, tasks: tasks, log: log, owner: owner, state: BoardState{Bucket: viewmodel.BucketAll}}
}

func (b *Board) State() BoardState { return b.state }

// View derives the dashboard from the current state. The search narrows the
// listed bucket by title and description.
func (b *Board) View() BoardView {
	return BoardView{
		Summary: viewmodel.SummarizeOwner(b.state.All),
		Bucket:  b.state.Bucket,
		Tasks:   viewmodel.Filter(b.state.Listed, viewmodel.Criteria{Search: b.state.Search}),
	}
}

// Load fetches the user's tasks and the listed bucket.
func (b *Board) Load(ctx context.Context) error {
	return b.load(ctx, b.state.Bucket)
}

// ShowBucket switches the listed bucket, fetching it from the store.
func (b *Board) ShowBucket(ctx context.Context, bucket viewmodel.Bucket) error {
	return b.load(ctx, bucket)
}

// Search sets the free-text search; no request is made.
func (b *Board) Search(text string) { b.state.Search = text }

func (b *Board) load(ctx context.Context, bucket viewmodel.Bucket) error {
	all, err := b.reader.ListTasks(ctx, models.TaskFilter{UserID: b.owner.ID})
	if err != nil {
		return fmt.Errorf("load dashboard: %w", err)
	}

	listed := all
	if bucket != viewmodel.BucketAll {
		listed, err = fetchBucket(ctx, b.reader, bucket, b.owner.ID)
		if err != nil {
			return fmt.Errorf("load dashboard: %w", err)
		}
	}

	b.state = BoardState{All: all, Listed: listed, Bucket: bucket, Search: b.state.Search}
	b.log.Debug(ctx, "dashboard loaded", "tasks", len(all), "bucket", bucket, "listed", len(listed))
	return nil
}

func fetchBucket(ctx context.Context, reader TaskReader, bucket viewmodel.Bucket, owner models.ID) ([]models.Task, error) {
	var out []models.Task
	for _, f := range bucket.Filters(owner) {
		part, err := reader.ListTasks(ctx, f)
		if err != nil {
			return nil, err
		}
		out = append(out, part...)
	}
	return out, nil
}

// SetStatus updates one task and reloads. On failure the state is kept.
func (b *Board) SetStatus(ctx context.Context, id models.ID, status string) error {
	if _, err := b.tasks.SetStatus(ctx, id, status); err != nil {
		return err
	}
	return b.Load(ctx)
}

// Delete removes one task and reloads. On failure the state is kept.
func (b *Board) Delete(ctx context.Context, id models.ID) error {
	if err := b.tasks.Delete(ctx, id); err != nil {
		return err
	}
	return b.Load(ctx)
}
