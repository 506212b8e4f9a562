// Package router holds the named pages of the client and moves between them,
// running the access guard on every transition.
package router

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/taskdesk/internal/client/guard"
	"github.com/dmitrijs2005/taskdesk/internal/client/models"
	"github.com/dmitrijs2005/taskdesk/internal/logging"
)

type Page string

const (
	Login     Page = "login"
	Register  Page = "register"
	UserHome  Page = "dashboard"
	AdminHome Page = "admin"
	MyTasks   Page = "mytasks"
	Profile   Page = "profile"
	NewTask   Page = "newtask"
)

var ErrUnknownPage = errors.New("unknown page")

var requirements = map[Page]guard.Requirement{
	Login:     guard.RequireAnonymous,
	Register:  guard.RequireAnonymous,
	UserHome:  guard.RequireUser,
	AdminHome: guard.RequireAdmin,
	MyTasks:   guard.RequireAuthenticated,
	Profile:   guard.RequireAuthenticated,
	NewTask:   guard.RequireAuthenticated,
}

// Requirement returns what page asks of the session.
func Requirement(page Page) (guard.Requirement, bool) {
	r, ok := requirements[page]
	return r, ok
}

// HomeFor is the landing page of a session; Login when there is none.
func HomeFor(user *models.User) Page {
	switch {
	case user == nil:
		return Login
	case user.Role.IsAdmin():
		return AdminHome
	default:
		return UserHome
	}
}

// SessionSource yields the signed-in user. Any error means nobody is signed
// in.
type SessionSource interface {
	Current(ctx context.Context) (models.User, error)
}

type Router struct {
	sessions SessionSource
	log      logging.Logger
	current  Page
}

func New(sessions SessionSource, log logging.Logger) *Router {
	return &Router{sessions: sessions, log: log, current: Login}
}

// Current is the page shown last.
func (r *Router) Current() Page { return r.current }

// Navigate guards page against the persisted session and follows the
// redirect when access is refused. It returns the page actually shown and
// the session user, nil when anonymous.
func (r *Router) Navigate(ctx context.Context, page Page) (Page, *models.User, error) {
	if _, ok := requirements[page]; !ok {
		return r.current, nil, fmt.Errorf("%w: %q", ErrUnknownPage, page)
	}

	var user *models.User
	if u, err := r.sessions.Current(ctx); err == nil {
		user = &u
	}

	target := page
	// Home pages admit their own session, so this settles after one hop.
	for hop := 0; hop < len(requirements); hop++ {
		d := guard.Decide(user, requirements[target])
		if d == guard.Allow {
			break
		}
		next := redirectTarget(d)
		r.log.Debug(ctx, "navigation redirected", "from", target, "to", next, "decision", d.String())
		target = next
	}

	r.log.Info(ctx, "page opened", "from", r.current, "page", target)
	r.current = target
	return target, user, nil
}

func redirectTarget(d guard.Decision) Page {
	switch d {
	case guard.RedirectToAdminHome:
		return AdminHome
	case guard.RedirectToUserHome:
		return UserHome
	default:
		return Login
	}
}
