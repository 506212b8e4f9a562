// Package guard decides whether a page may be shown to the current session.
// The decision runs before any data is fetched for the page.
package guard

import "github.com/dmitrijs2005/taskdesk/internal/client/models"

// Requirement is what a page asks of the session.
type Requirement int

const (
	// RequireAnonymous pages (login, register) send signed-in users home.
	RequireAnonymous Requirement = iota
	// RequireAuthenticated pages accept any signed-in user.
	RequireAuthenticated
	// RequireAdmin pages accept admins only.
	RequireAdmin
	// RequireUser pages accept regular users only.
	RequireUser
)

func (r Requirement) String() string {
	switch r {
	case RequireAnonymous:
		return "anonymous"
	case RequireAuthenticated:
		return "authenticated"
	case RequireAdmin:
		return "admin"
	case RequireUser:
		return "user"
	default:
		return "unknown"
	}
}

type Decision int

const (
	Allow Decision = iota
	RedirectToLogin
	RedirectToUserHome
	RedirectToAdminHome
)

func (d Decision) String() string {
	switch d {
	case Allow:
		return "allow"
	case RedirectToLogin:
		return "redirect to login"
	case RedirectToUserHome:
		return "redirect to user home"
	case RedirectToAdminHome:
		return "redirect to admin home"
	default:
		return "unknown"
	}
}

// Decide returns the action for a page with requirement req. user is nil
// when nobody is signed in. Any role other than admin is a regular user.
func Decide(user *models.User, req Requirement) Decision {
	if user == nil {
		if req == RequireAnonymous {
			return Allow
		}
		return RedirectToLogin
	}

	admin := user.Role.IsAdmin()
	switch req {
	case RequireAnonymous:
		return home(admin)
	case RequireAdmin:
		if !admin {
			return RedirectToUserHome
		}
	case RequireUser:
		if admin {
			return RedirectToAdminHome
		}
	}
	return Allow
}

func home(admin bool) Decision {
	if admin {
		return RedirectToAdminHome
	}
	return RedirectToUserHome
}
