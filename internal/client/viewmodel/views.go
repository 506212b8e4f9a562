package viewmodel

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/taskdesk/internal/client/models"
)

// OwnerView is everything a user's task page renders. The summary always
// covers the whole collection; Tasks is the filtered list.
type OwnerView struct {
	Summary OwnerSummary
	Counts  StatusCounts
	Tasks   []models.Task
}

func BuildOwnerView(tasks []models.Task, c Criteria) OwnerView {
	return OwnerView{
		Summary: SummarizeOwner(tasks),
		Counts:  CountByStatus(tasks),
		Tasks:   Filter(tasks, c),
	}
}

// AdminView is everything the admin dashboard renders.
type AdminView struct {
	Summary AdminSummary
	Rows    []Row
}

func BuildAdminView(tasks []models.Task, users []models.User, c Criteria) AdminView {
	return AdminView{
		Summary: SummarizeAdmin(tasks, users),
		Rows:    ResolveOwners(Filter(tasks, c), users),
	}
}

// Bucket is one of the quick filters of the user dashboard.
type Bucket string

const (
	BucketAll        Bucket = "all"
	BucketPending    Bucket = "pending"
	BucketInProgress Bucket = "in-progress"
	BucketCompleted  Bucket = "completed"
)

var Buckets = []Bucket{BucketAll, BucketPending, BucketInProgress, BucketCompleted}

func ParseBucket(s string) (Bucket, error) {
	if strings.TrimSpace(s) == "" {
		return BucketAll, nil
	}
	if strings.EqualFold(strings.TrimSpace(s), string(BucketAll)) {
		return BucketAll, nil
	}
	st, err := models.ParseStatus(s)
	if err != nil {
		return "", fmt.Errorf("unknown bucket %q (want one of: %s)", s, models.JoinValues(Buckets, ", "))
	}
	return Bucket(st), nil
}

// Filters returns the store queries that make up the bucket for a user. The
// pending bucket also takes in-progress tasks, so it needs two queries whose
// results are concatenated in order.
func (b Bucket) Filters(userID models.ID) []models.TaskFilter {
	switch b {
	case BucketPending:
		return []models.TaskFilter{
			{UserID: userID, Status: models.StatusPending},
			{UserID: userID, Status: models.StatusInProgress},
		}
	case BucketInProgress, BucketCompleted:
		return []models.TaskFilter{{UserID: userID, Status: models.Status(b)}}
	default:
		return []models.TaskFilter{{UserID: userID}}
	}
}
