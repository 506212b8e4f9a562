// Package profile implements the profile page: the displayed card, the
// view/edit state machine of its editable fields and avatar upload.
package profile

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/taskdesk/internal/client/models"
	"github.com/dmitrijs2005/taskdesk/internal/client/validation"
	"github.com/dmitrijs2005/taskdesk/internal/common"
	"github.com/dmitrijs2005/taskdesk/internal/logging"
	"go.uber.org/atomic"
)

type State int

const (
	View State = iota
	Edit
)

func (s State) String() string {
	if s == Edit {
		return "edit"
	}
	return "view"
}

// ErrNotEditing is returned by Save outside the edit state.
var ErrNotEditing = errors.New("profile is not being edited")

// Fields are the editable profile fields.
type Fields struct {
	FullName   string `validate:"required" label:"full name"`
	Phone      string
	Department string
}

// UserUpdater is the gateway call the editor needs.
type UserUpdater interface {
	UpdateUser(ctx context.Context, id models.ID, patch models.UserPatch) (models.User, error)
}

// SessionSaver stores the updated user as the session.
type SessionSaver interface {
	Save(ctx context.Context, user models.User) error
}

// Editor is not safe for use by several goroutines, apart from the in-flight
// check that stops overlapping Save and UploadAvatar calls.
type Editor struct {
	gw       UserUpdater
	sessions SessionSaver
	log      logging.Logger
	now      func() time.Time

	user     models.User
	state    State
	baseline Fields

	busy atomic.Bool
}

// NewEditor starts in View for user, the signed-in session.
func NewEditor(gw UserUpdater, sessions SessionSaver, log logging.Logger, user models.User) *Editor {
	e := &Editor{gw: gw, sessions: sessions, log: log, now: time.Now, user: user}
	e.baseline = e.fieldsOf(user)
	return e
}

// fieldsOf takes the displayed values, defaults included, as the form
// starts from what the card shows.
func (e *Editor) fieldsOf(u models.User) Fields {
	c := Present(u, 0, e.now())
	return Fields{FullName: c.Name, Phone: c.Phone, Department: c.Department}
}

func (e *Editor) State() State { return e.state }

func (e *Editor) User() models.User { return e.user }

// Baseline is what Cancel restores.
func (e *Editor) Baseline() Fields { return e.baseline }

// Card presents the current user.
func (e *Editor) Card(taskCount int) Card { return Present(e.user, taskCount, e.now()) }

// Begin enters Edit and returns the values to prefill the form with. In Edit
// it changes nothing.
func (e *Editor) Begin() Fields {
	e.state = Edit
	return e.baseline
}

// Cancel discards the form and returns to View. No request is made.
func (e *Editor) Cancel() Fields {
	e.state = View
	return e.baseline
}

func (e *Editor) acquire() error {
	if !e.busy.CompareAndSwap(false, true) {
		return common.ErrInFlight
	}
	return nil
}

// Save sends f and, once the store accepts it, makes the answer the session
// and the new baseline and returns to View. On failure the editor stays in
// Edit with the baseline untouched.
func (e *Editor) Save(ctx context.Context, f Fields) (models.User, error) {
	if e.state != Edit {
		return models.User{}, ErrNotEditing
	}
	if err := e.acquire(); err != nil {
		return models.User{}, err
	}
	defer e.busy.Store(false)

	f = Fields{
		FullName:   strings.TrimSpace(f.FullName),
		Phone:      strings.TrimSpace(f.Phone),
		Department: strings.TrimSpace(f.Department),
	}
	if err := validation.Struct(f); err != nil {
		return models.User{}, err
	}

	updated, err := e.gw.UpdateUser(ctx, e.user.ID, models.UserPatch{
		FullName:   &f.FullName,
		Phone:      &f.Phone,
		Department: &f.Department,
	})
	if err != nil {
		e.log.Warn(ctx, "profile update failed", "user", e.user.ID, "error", err)
		return models.User{}, fmt.Errorf("save profile: %w", err)
	}
	if err := e.sessions.Save(ctx, updated); err != nil {
		return models.User{}, fmt.Errorf("save profile: %w", err)
	}

	e.user = updated
	e.baseline = e.fieldsOf(updated)
	e.state = View
	e.log.Info(ctx, "profile updated", "user", updated.ID)
	return updated, nil
}
