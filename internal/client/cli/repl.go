package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/taskdesk/internal/client/models"
	"github.com/dmitrijs2005/taskdesk/internal/client/viewmodel"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	isAdmin() bool
	report(ctx context.Context, err error)

	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Home(ctx context.Context) error
	MyTasks(ctx context.Context) error
	Profile(ctx context.Context) error

	ShowBucket(ctx context.Context, bucket string) error
	Search(ctx context.Context, text string) error
	Filter(ctx context.Context, args []string) error
	ClearFilters(ctx context.Context) error

	NewTask(ctx context.Context) error
	SetStatus(ctx context.Context, id, status string) error
	EditTask(ctx context.Context, id string) error
	DeleteTask(ctx context.Context, id string) error

	EditProfile(ctx context.Context) error
	CancelEdit(ctx context.Context) error
	UploadAvatar(ctx context.Context, path string) error
}

var (
	anonymousHelp = "Available commands: register, login, help, exit"
	userHelp      = "Available commands: home, tasks [" + models.JoinValues(viewmodel.Buckets, "|") + "], search <text>, " +
		"mytasks, filter status=<s> priority=<p>, clear, newtask, status <id> <status>, delete <id>, " +
		"profile, editprofile, cancel, avatar <path>, logout, exit"
	adminHelp = "Available commands: home, search <text>, filter status=<s> priority=<p>, clear, " +
		"newtask, edit <id>, status <id> <status>, delete <id>, mytasks, profile, editprofile, cancel, " +
		"avatar <path>, logout, exit"
	statusUsage = "Usage: status <id> <" + models.JoinValues(models.Statuses, "|") + ">"
)

// runREPL starts a simple read–eval–print loop for the taskdesk CLI.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on 'a'. Unknown commands are reported back to the
// user. The loop exits on EOF, on ctx cancellation or when the user types
// "exit" or "quit".
//
// Errors returned by command handlers are passed to a.report, which turns
// them into a notice or a redirect; the loop itself never stops on them.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}
		printlnFn(fmt.Sprintf("td> %s > ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && !(errors.Is(err, io.EOF) && line != "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			switch {
			case a.isAdmin():
				printlnFn(adminHelp)
			case a.isLoggedIn():
				printlnFn(userHelp)
			default:
				printlnFn(anonymousHelp)
			}

		case "register":
			a.report(ctx, a.Register(ctx))

		case "login":
			a.report(ctx, a.Login(ctx))

		case "logout":
			a.report(ctx, a.Logout(ctx))

		case "home", "dashboard":
			a.report(ctx, a.Home(ctx))

		case "mytasks":
			a.report(ctx, a.MyTasks(ctx))

		case "profile":
			a.report(ctx, a.Profile(ctx))

		case "tasks":
			bucket := ""
			if len(args) > 0 {
				bucket = args[0]
			}
			a.report(ctx, a.ShowBucket(ctx, bucket))

		case "search":
			a.report(ctx, a.Search(ctx, strings.Join(args, " ")))

		case "filter":
			a.report(ctx, a.Filter(ctx, args))

		case "clear":
			a.report(ctx, a.ClearFilters(ctx))

		case "newtask":
			a.report(ctx, a.NewTask(ctx))

		case "status":
			if len(args) < 2 {
				printlnFn(statusUsage)
				continue
			}
			a.report(ctx, a.SetStatus(ctx, args[0], strings.Join(args[1:], " ")))

		case "edit":
			if len(args) != 1 {
				printlnFn("Usage: edit <id>")
				continue
			}
			a.report(ctx, a.EditTask(ctx, args[0]))

		case "delete":
			if len(args) != 1 {
				printlnFn("Usage: delete <id>")
				continue
			}
			a.report(ctx, a.DeleteTask(ctx, args[0]))

		case "editprofile":
			a.report(ctx, a.EditProfile(ctx))

		case "cancel":
			a.report(ctx, a.CancelEdit(ctx))

		case "avatar":
			if len(args) == 0 {
				printlnFn("Usage: avatar <path>")
				continue
			}
			a.report(ctx, a.UploadAvatar(ctx, strings.Join(args, " ")))

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
