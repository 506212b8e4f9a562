package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/taskdesk/internal/client/models"
	"github.com/dmitrijs2005/taskdesk/internal/client/router"
	"github.com/dmitrijs2005/taskdesk/internal/client/services"
	"github.com/dmitrijs2005/taskdesk/internal/common"
)

// Register opens the registration page and prompts for the sign-up form.
// A signed-in user is sent to their home page instead. On success the login
// page is shown; registering does not sign in.
func (a *App) Register(ctx context.Context) error {
	landed, err := a.open(ctx, router.Register)
	if err != nil {
		return err
	}
	if landed != router.Register {
		return a.show(ctx, landed, true)
	}

	var in services.Registration
	if in.FullName, err = getSimpleText(a.reader, "Enter full name", a.out); err != nil {
		return err
	}
	if in.Email, err = getSimpleText(a.reader, "Enter email", a.out); err != nil {
		return err
	}

	password, err := getPassword("Enter password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)
	confirm, err := getPassword("Confirm password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirm)
	in.Password, in.ConfirmPassword = string(password), string(confirm)

	if _, err := a.authService.Register(ctx, in); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Account created. Please log in.")
	return a.openPage(ctx, router.Login)
}

// Login opens the login page, prompts for credentials and, once they match,
// shows the home page of the signed-in role.
func (a *App) Login(ctx context.Context) error {
	landed, err := a.open(ctx, router.Login)
	if err != nil {
		return err
	}
	if landed != router.Login {
		return a.show(ctx, landed, true)
	}

	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword("Enter password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	user, err := a.authService.Login(ctx, email, string(password))
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Welcome, %s!\n", displayName(user))
	return a.openPage(ctx, router.HomeFor(&user))
}

// Logout drops the session and shows the login page.
func (a *App) Logout(ctx context.Context) error {
	if err := a.authService.Logout(ctx); err != nil {
		return err
	}
	a.user = nil
	fmt.Fprintln(a.out, "Logged out.")
	return a.openPage(ctx, router.Login)
}

// Home shows the home page of the persisted session.
func (a *App) Home(ctx context.Context) error {
	var user *models.User
	if current, err := a.authService.Current(ctx); err == nil {
		user = &current
	}
	return a.openPage(ctx, router.HomeFor(user))
}

func (a *App) MyTasks(ctx context.Context) error {
	return a.openPage(ctx, router.MyTasks)
}

func (a *App) Profile(ctx context.Context) error {
	return a.openPage(ctx, router.Profile)
}

func displayName(u models.User) string {
	if n := u.DisplayName(); n != "" {
		return n
	}
	return u.Email
}
