package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeExec struct {
	loggedIn bool
	admin    bool

	calls    []string
	reported []error
	fail     error
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) isAdmin() bool    { return f.admin }
func (f *fakeExec) report(_ context.Context, err error) {
	if err != nil {
		f.reported = append(f.reported, err)
	}
}

func (f *fakeExec) record(call string) error {
	f.calls = append(f.calls, call)
	return f.fail
}

func (f *fakeExec) Register(context.Context) error { return f.record("register") }
func (f *fakeExec) Login(context.Context) error {
	f.loggedIn = true
	return f.record("login")
}
func (f *fakeExec) Logout(context.Context) error {
	f.loggedIn = false
	return f.record("logout")
}
func (f *fakeExec) Home(context.Context) error    { return f.record("home") }
func (f *fakeExec) MyTasks(context.Context) error { return f.record("mytasks") }
func (f *fakeExec) Profile(context.Context) error { return f.record("profile") }
func (f *fakeExec) ShowBucket(_ context.Context, bucket string) error {
	return f.record("tasks:" + bucket)
}
func (f *fakeExec) Search(_ context.Context, text string) error { return f.record("search:" + text) }
func (f *fakeExec) Filter(_ context.Context, args []string) error {
	return f.record("filter:" + strings.Join(args, ","))
}
func (f *fakeExec) ClearFilters(context.Context) error { return f.record("clear") }
func (f *fakeExec) NewTask(context.Context) error      { return f.record("newtask") }
func (f *fakeExec) SetStatus(_ context.Context, id, status string) error {
	return f.record(fmt.Sprintf("status:%s:%s", id, status))
}
func (f *fakeExec) EditTask(_ context.Context, id string) error   { return f.record("edit:" + id) }
func (f *fakeExec) DeleteTask(_ context.Context, id string) error { return f.record("delete:" + id) }
func (f *fakeExec) EditProfile(context.Context) error             { return f.record("editprofile") }
func (f *fakeExec) CancelEdit(context.Context) error              { return f.record("cancel") }
func (f *fakeExec) UploadAvatar(_ context.Context, path string) error {
	return f.record("avatar:" + path)
}

func capturePrintln(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) {
		lines = append(lines, fmt.Sprint(a...))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &lines
}

func runScript(ctx context.Context, exec execIface, lines ...string) {
	runREPL(ctx, exec, func() string { return "status" }, bufio.NewReader(strings.NewReader(strings.Join(lines, "\n"))))
}

func TestRunREPL_DispatchesCommands(t *testing.T) {
	capturePrintln(t)
	exec := &fakeExec{}

	runScript(context.Background(), exec,
		"login",
		"home",
		"tasks completed",
		"tasks",
		"search  call   the plumber",
		"filter status=pending priority=high",
		"clear",
		"newtask",
		"status 2 in progress",
		"edit 3",
		"delete 4",
		"mytasks",
		"profile",
		"editprofile",
		"cancel",
		"avatar /tmp/my pic.png",
		"logout",
		"exit",
		"home",
	)

	assert.Equal(t, []string{
		"login", "home", "tasks:completed", "tasks:", "search:call the plumber",
		"filter:status=pending,priority=high", "clear", "newtask", "status:2:in progress",
		"edit:3", "delete:4", "mytasks", "profile", "editprofile", "cancel",
		"avatar:/tmp/my pic.png", "logout",
	}, exec.calls)
	assert.False(t, exec.loggedIn)
}

func TestRunREPL_ReportsHandlerErrors(t *testing.T) {
	capturePrintln(t)
	boom := errors.New("boom")
	exec := &fakeExec{fail: boom}

	runScript(context.Background(), exec, "home", "newtask")

	require.Len(t, exec.reported, 2)
	assert.ErrorIs(t, exec.reported[0], boom)
}

func TestRunREPL_UsageAndUnknown(t *testing.T) {
	out := capturePrintln(t)
	exec := &fakeExec{}

	runScript(context.Background(), exec, "status 2", "edit", "delete", "avatar", "foobar", "quit")

	assert.Empty(t, exec.calls)
	joined := strings.Join(*out, "\n")
	assert.Contains(t, joined, "Usage: status <id>")
	assert.Contains(t, joined, "Usage: edit <id>")
	assert.Contains(t, joined, "Usage: delete <id>")
	assert.Contains(t, joined, "Usage: avatar <path>")
	assert.Contains(t, joined, "Unknown command:foobar")
	assert.Contains(t, joined, "Bye!")
}

func TestRunREPL_HelpDependsOnRole(t *testing.T) {
	cases := []struct {
		name string
		exec *fakeExec
		want string
	}{
		{"anonymous", &fakeExec{}, anonymousHelp},
		{"user", &fakeExec{loggedIn: true}, userHelp},
		{"admin", &fakeExec{loggedIn: true, admin: true}, adminHelp},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out := capturePrintln(t)
			runScript(context.Background(), tc.exec, "help")
			assert.Contains(t, *out, tc.want)
		})
	}
}

func TestRunREPL_StopsOnCancelledContext(t *testing.T) {
	capturePrintln(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	exec := &fakeExec{}

	runScript(ctx, exec, "home", "home")

	assert.Empty(t, exec.calls)
}

func TestRunREPL_LastLineWithoutNewline(t *testing.T) {
	capturePrintln(t)
	exec := &fakeExec{}

	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewReader(strings.NewReader("home")))

	assert.Equal(t, []string{"home"}, exec.calls)
}

func TestHelpAndUsage_ListKnownValues(t *testing.T) {
	assert.Contains(t, userHelp, "tasks [all|pending|in-progress|completed]")
	assert.Equal(t, "Usage: status <id> <pending|in-progress|completed>", statusUsage)
}
