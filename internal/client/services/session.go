package services

import (
	"context"

	"github.com/dmitrijs2005/taskdesk/internal/client/models"
)

// SessionStore is the part of session.Store the services rely on.
type SessionStore interface {
	Save(ctx context.Context, user models.User) error
	Current(ctx context.Context) (models.User, error)
	Clear(ctx context.Context) error
}
