package services

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/taskdesk/internal/client/gateway"
	"github.com/dmitrijs2005/taskdesk/internal/client/models"
	"github.com/dmitrijs2005/taskdesk/internal/client/validation"
	"github.com/dmitrijs2005/taskdesk/internal/logging"
)

// ErrInvalidCredentials is returned when no account matches the email or the
// password differs.
var ErrInvalidCredentials = errors.New("invalid email or password")

// AuthService defines the account operations of the client.
//
// Contract:
//   - Login: look the email up, compare the password with the first match
//     and persist that user as the session.
//   - Register: create a regular account; the caller signs in afterwards.
//   - Logout: drop the session.
//   - Current: the signed-in user, or an error matching common.ErrNoSession.
type AuthService interface {
	Login(ctx context.Context, email, password string) (models.User, error)
	Register(ctx context.Context, in Registration) (models.User, error)
	Logout(ctx context.Context) error
	Current(ctx context.Context) (models.User, error)
}

// Registration is the sign-up form.
type Registration struct {
	FullName        string `validate:"required" label:"full name"`
	Email           string `validate:"required" label:"email"`
	Password        string `validate:"required,min=6" label:"password"`
	ConfirmPassword string `validate:"required,eqfield=Password" label:"password confirmation"`
}

type credentials struct {
	Email    string `validate:"required" label:"email"`
	Password string `validate:"required" label:"password"`
}

type authService struct {
	gw       gateway.Gateway
	sessions SessionStore
	log      logging.Logger
}

func NewAuthService(gw gateway.Gateway, sessions SessionStore, log logging.Logger) AuthService {
	return &authService{gw: gw, sessions: sessions, log: log}
}

func (a *authService) Login(ctx context.Context, email, password string) (models.User, error) {
	creds := credentials{Email: strings.TrimSpace(email), Password: password}
	if err := validation.Struct(creds); err != nil {
		return models.User{}, err
	}

	users, err := a.gw.FindUsersByEmail(ctx, creds.Email)
	if err != nil {
		return models.User{}, fmt.Errorf("login: %w", err)
	}

	// The store does not enforce unique emails; the first match decides.
	if len(users) == 0 ||
		subtle.ConstantTimeCompare([]byte(users[0].Password), []byte(creds.Password)) == 0 {
		a.log.Info(ctx, "login rejected", "email", creds.Email)
		return models.User{}, ErrInvalidCredentials
	}

	user := users[0]
	if err := a.sessions.Save(ctx, user); err != nil {
		return models.User{}, fmt.Errorf("login: %w", err)
	}

	a.log.Info(ctx, "signed in", "email", user.Email, "role", user.Role)
	return user, nil
}

func (a *authService) Register(ctx context.Context, in Registration) (models.User, error) {
	in.FullName = strings.TrimSpace(in.FullName)
	in.Email = strings.TrimSpace(in.Email)
	if err := validation.Struct(in); err != nil {
		return models.User{}, err
	}

	user, err := a.gw.CreateUser(ctx, models.NewUser{
		FullName: in.FullName,
		Email:    in.Email,
		Password: in.Password,
		Role:     models.RoleUser,
	})
	if err != nil {
		return models.User{}, fmt.Errorf("register: %w", err)
	}

	a.log.Info(ctx, "account registered", "email", user.Email)
	return user, nil
}

func (a *authService) Logout(ctx context.Context) error {
	if err := a.sessions.Clear(ctx); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	a.log.Info(ctx, "signed out")
	return nil
}

func (a *authService) Current(ctx context.Context) (models.User, error) {
	return a.sessions.Current(ctx)
}
