package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/taskdesk/internal/client/config"
	"github.com/dmitrijs2005/taskdesk/internal/client/gateway"
	"github.com/dmitrijs2005/taskdesk/internal/client/localdb"
	"github.com/dmitrijs2005/taskdesk/internal/client/models"
	"github.com/dmitrijs2005/taskdesk/internal/client/pages"
	"github.com/dmitrijs2005/taskdesk/internal/client/profile"
	"github.com/dmitrijs2005/taskdesk/internal/client/router"
	"github.com/dmitrijs2005/taskdesk/internal/client/services"
	"github.com/dmitrijs2005/taskdesk/internal/client/session"
	"github.com/dmitrijs2005/taskdesk/internal/logging"
	"github.com/dustin/go-humanize"
)

type App struct {
	config *config.Config
	log    logging.Logger
	db     *sql.DB

	sessions    *session.Store
	gw          gateway.Gateway
	authService services.AuthService
	taskService *services.TaskService
	router      *router.Router

	reader *bufio.Reader
	out    io.Writer

	// user is the session seen by the last navigation; nil when anonymous.
	user *models.User

	board   *pages.Board
	admin   *pages.AdminBoard
	mine    *pages.MyTasks
	profile *pages.ProfilePage
}

// NewApp opens the session database and wires the services. Close releases
// the database.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	db, err := localdb.InitDatabase(ctx, c.SessionDB)
	if err != nil {
		return nil, fmt.Errorf("error initializing database: %w", err)
	}

	gw := gateway.NewHTTPGateway(c.StoreURL, log, gateway.WithTimeout(c.RequestTimeout))
	return newApp(c, log, db, gw, os.Stdin, os.Stdout), nil
}

func newApp(c *config.Config, log logging.Logger, db *sql.DB, gw gateway.Gateway, in io.Reader, out io.Writer) *App {
	sessions := session.NewStore(db, log)
	return &App{
		config:      c,
		log:         log,
		db:          db,
		sessions:    sessions,
		gw:          gw,
		authService: services.NewAuthService(gw, sessions, log),
		taskService: services.NewTaskService(gw, sessions, log),
		router:      router.New(sessions, log),
		reader:      bufio.NewReader(in),
		out:         out,
	}
}

func (a *App) Close() error {
	return a.db.Close()
}

// Run shows the landing page of the persisted session and then serves
// commands until exit, EOF or ctx cancellation.
func (a *App) Run(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to taskdesk (type 'help' for commands)")

	current, err := a.authService.Current(ctx)
	var user *models.User
	if err == nil {
		user = &current
		a.greetResumed(ctx, current)
	}
	a.report(ctx, a.openPage(ctx, router.HomeFor(user)))

	runREPL(ctx, a, a.status, a.reader)
}

// greetResumed tells the user whose persisted session is in use and since
// when. A missing timestamp only drops the "since" part.
func (a *App) greetResumed(ctx context.Context, user models.User) {
	at, err := a.sessions.SavedAt(ctx)
	if err != nil {
		a.log.Debug(ctx, "session timestamp unavailable", "error", err)
		fmt.Fprintf(a.out, "Resuming session of %s.\n", displayName(user))
		return
	}
	fmt.Fprintf(a.out, "Resuming session of %s (signed in %s).\n", displayName(user), humanize.Time(at))
}

func (a *App) isLoggedIn() bool { return a.user != nil }

func (a *App) isAdmin() bool { return a.user != nil && a.user.Role.IsAdmin() }

func (a *App) status() string {
	s := string(a.router.Current())
	if a.user != nil {
		s += " " + a.user.Email
	}
	return fmt.Sprintf("(%s)", s)
}

// open navigates to page and returns where the guard let us land. The
// controllers of the landed page are rebuilt for the session user.
func (a *App) open(ctx context.Context, page router.Page) (router.Page, error) {
	landed, user, err := a.router.Navigate(ctx, page)
	if err != nil {
		return landed, err
	}
	a.user = user
	if landed != page {
		fmt.Fprintf(a.out, "Redirected to %s\n", landed)
	}

	a.board, a.admin, a.mine, a.profile = nil, nil, nil, nil
	if user == nil {
		return landed, nil
	}
	switch landed {
	case router.UserHome:
		a.board = pages.NewBoard(a.gw, a.taskService, a.log, *user)
	case router.AdminHome:
		a.admin = pages.NewAdminBoard(a.gw, a.taskService, a.log)
	case router.MyTasks:
		a.mine = pages.NewMyTasks(a.gw, a.taskService, a.log, *user)
	case router.Profile:
		editor := profile.NewEditor(a.gw, a.sessions, a.log, *user)
		a.profile = pages.NewProfilePage(editor, a.gw, a.log)
	}
	return landed, nil
}

// openPage opens page, loads its data and renders it.
func (a *App) openPage(ctx context.Context, page router.Page) error {
	landed, err := a.open(ctx, page)
	if err != nil {
		return err
	}
	return a.show(ctx, landed, true)
}

// show renders the landed page, fetching its data first when load is set.
func (a *App) show(ctx context.Context, page router.Page, load bool) error {
	switch page {
	case router.Login:
		fmt.Fprintln(a.out, "Please log in ('login') or create an account ('register').")
	case router.Register:
		fmt.Fprintln(a.out, "Create an account with 'register'.")
	case router.UserHome:
		if load {
			if err := a.board.Load(ctx); err != nil {
				return err
			}
		}
		renderBoard(a.out, a.user, a.board.View())
	case router.AdminHome:
		if load {
			if err := a.admin.Load(ctx); err != nil {
				return err
			}
		}
		renderAdmin(a.out, a.user, a.admin.View())
	case router.MyTasks:
		if load {
			if err := a.mine.Load(ctx); err != nil {
				return err
			}
		}
		renderMyTasks(a.out, a.mine.View())
	case router.Profile:
		if load {
			a.profile.Load(ctx)
		}
		renderCard(a.out, a.profile.Card(), a.profile.Editor.State())
	}
	return nil
}

// refresh re-renders the current page from its state without a request.
func (a *App) refresh(ctx context.Context) error {
	return a.show(ctx, a.router.Current(), false)
}
