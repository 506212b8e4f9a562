package gateway

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrijs2005/taskdesk/internal/client/models"
	"github.com/dmitrijs2005/taskdesk/internal/common"
	"github.com/dmitrijs2005/taskdesk/internal/logging"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
)

// maxErrorBody bounds how much of a failed response is kept in the error.
const maxErrorBody = 512

var _ Gateway = (*HTTPGateway)(nil)

type HTTPGateway struct {
	baseURL string
	client  *http.Client
	timeout time.Duration
	log     logging.Logger
	now     func() time.Time
}

// Option customises an HTTPGateway.
type Option func(*HTTPGateway)

// WithHTTPClient replaces http.DefaultClient.
func WithHTTPClient(c *http.Client) Option {
	return func(g *HTTPGateway) { g.client = c }
}

// WithTimeout bounds every request; zero means no bound beyond ctx.
func WithTimeout(d time.Duration) Option {
	return func(g *HTTPGateway) { g.timeout = d }
}

// WithClock sets the clock used for default creation timestamps.
func WithClock(now func() time.Time) Option {
	return func(g *HTTPGateway) { g.now = now }
}

func NewHTTPGateway(baseURL string, log logging.Logger, opts ...Option) *HTTPGateway {
	g := &HTTPGateway{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  http.DefaultClient,
		log:     log,
		now:     time.Now,
	}
	for _, o := range opts {
		o(g)
	}
	return g
}

func (g *HTTPGateway) FindUsersByEmail(ctx context.Context, email string) ([]models.User, error) {
	var users []models.User
	q := url.Values{"email": []string{email}}
	if err := g.do(ctx, "find users by email", http.MethodGet, "/users", q, nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// CreateUser registers a regular account; any role the caller set is
// overridden.
func (g *HTTPGateway) CreateUser(ctx context.Context, u models.NewUser) (models.User, error) {
	u.Role = models.RoleUser
	var created models.User
	if err := g.do(ctx, "create user", http.MethodPost, "/users", nil, u, &created); err != nil {
		return models.User{}, err
	}
	return created, nil
}

func (g *HTTPGateway) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := g.do(ctx, "list users", http.MethodGet, "/users", nil, nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (g *HTTPGateway) UpdateUser(ctx context.Context, id models.ID, patch models.UserPatch) (models.User, error) {
	var updated models.User
	path := "/users/" + url.PathEscape(id.String())
	if err := g.do(ctx, "update user", http.MethodPatch, path, nil, patch, &updated); err != nil {
		return models.User{}, err
	}
	return updated, nil
}

func (g *HTTPGateway) ListTasks(ctx context.Context, filter models.TaskFilter) ([]models.Task, error) {
	q := url.Values{}
	if !filter.UserID.IsZero() {
		q.Set("userId", filter.UserID.String())
	}
	if filter.Status != "" {
		q.Set("status", string(filter.Status))
	}

	var tasks []models.Task
	if err := g.do(ctx, "list tasks", http.MethodGet, "/tasks", q, nil, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// CreateTask stores a task. An empty status becomes pending and a zero
// CreatedAt becomes the current time.
func (g *HTTPGateway) CreateTask(ctx context.Context, t models.NewTask) (models.Task, error) {
	if t.Status == "" {
		t.Status = models.StatusPending
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = g.now().UTC()
	}

	var created models.Task
	if err := g.do(ctx, "create task", http.MethodPost, "/tasks", nil, t, &created); err != nil {
		return models.Task{}, err
	}
	return created, nil
}

func (g *HTTPGateway) UpdateTask(ctx context.Context, id models.ID, patch models.TaskPatch) (models.Task, error) {
	var updated models.Task
	path := "/tasks/" + url.PathEscape(id.String())
	if err := g.do(ctx, "update task", http.MethodPatch, path, nil, patch, &updated); err != nil {
		return models.Task{}, err
	}
	return updated, nil
}

func (g *HTTPGateway) DeleteTask(ctx context.Context, id models.ID) error {
	path := "/tasks/" + url.PathEscape(id.String())
	return g.do(ctx, "delete task", http.MethodDelete, path, nil, nil, nil)
}

// do performs one round trip. in is encoded as the JSON body when non-nil;
// out receives the decoded response when non-nil.
func (g *HTTPGateway) do(ctx context.Context, op, method, path string, query url.Values, in, out any) error {
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	target := g.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return &Error{Op: op, Err: fmt.Errorf("encode request: %w", err)}
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return &Error{Op: op, Err: err}
	}
	requestID := uuid.NewString()
	req.Header.Set(common.RequestIDHeaderName, requestID)
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := g.client.Do(req)
	if err != nil {
		g.log.Debug(ctx, "store request failed",
			"method", method, "path", path, "request_id", requestID,
			"duration", time.Since(start), "error", err)
		return &Error{Op: op, Err: err}
	}
	defer resp.Body.Close()

	g.log.Debug(ctx, "store request",
		"method", method, "path", path, "request_id", requestID,
		"status", resp.StatusCode, "duration", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		msg := strings.TrimSpace(string(raw))
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return &Error{Op: op, Status: resp.StatusCode, Err: errors.New(msg)}
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &Error{Op: op, Status: resp.StatusCode, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}
