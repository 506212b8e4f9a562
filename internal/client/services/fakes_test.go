package services

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/taskdesk/internal/client/models"
	"github.com/dmitrijs2005/taskdesk/internal/common"
)

// fakeGateway implements gateway.Gateway for unit tests. Each method records
// its arguments and answers with the configured result.
type fakeGateway struct {
	mu    sync.Mutex
	calls int

	Users    []models.User
	FindErr  error
	LastFind string

	CreateUserRet models.User
	CreateUserErr error
	LastNewUser   models.NewUser

	Tasks        []models.Task
	ListTasksErr error
	LastFilters  []models.TaskFilter

	CreateTaskErr error
	LastNewTask   models.NewTask
	// block, when set, holds CreateTask and UpdateTask until closed.
	block   chan struct{}
	entered chan struct{}

	UpdateTaskErr error
	LastTaskID    models.ID
	LastTaskPatch models.TaskPatch

	DeleteErr    error
	LastDeleteID models.ID

	UpdateUserErr   error
	LastUserID      models.ID
	LastUserPatch   models.UserPatch
	UpdateUserCalls int
}

func (f *fakeGateway) count() {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
}

func (f *fakeGateway) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func (f *fakeGateway) wait() {
	if f.block == nil {
		return
	}
	if f.entered != nil {
		f.entered <- struct{}{}
	}
	<-f.block
}

func (f *fakeGateway) FindUsersByEmail(_ context.Context, email string) ([]models.User, error) {
	f.count()
	f.LastFind = email
	if f.FindErr != nil {
		return nil, f.FindErr
	}
	var out []models.User
	for _, u := range f.Users {
		if u.Email == email {
			out = append(out, u)
		}
	}
	return out, nil
}

func (f *fakeGateway) CreateUser(_ context.Context, u models.NewUser) (models.User, error) {
	f.count()
	f.LastNewUser = u
	if f.CreateUserErr != nil {
		return models.User{}, f.CreateUserErr
	}
	if f.CreateUserRet.ID != "" {
		return f.CreateUserRet, nil
	}
	return models.User{ID: "100", FullName: u.FullName, Email: u.Email, Password: u.Password, Role: models.RoleUser}, nil
}

func (f *fakeGateway) ListUsers(context.Context) ([]models.User, error) {
	f.count()
	if f.FindErr != nil {
		return nil, f.FindErr
	}
	return append([]models.User(nil), f.Users...), nil
}

func (f *fakeGateway) UpdateUser(_ context.Context, id models.ID, patch models.UserPatch) (models.User, error) {
	f.count()
	f.LastUserID, f.LastUserPatch = id, patch
	f.UpdateUserCalls++
	if f.UpdateUserErr != nil {
		return models.User{}, f.UpdateUserErr
	}
	for _, u := range f.Users {
		if u.ID == id {
			if patch.FullName != nil {
				u.FullName = *patch.FullName
			}
			if patch.Phone != nil {
				u.Phone = *patch.Phone
			}
			if patch.Department != nil {
				u.Department = *patch.Department
			}
			if patch.Avatar != nil {
				u.Avatar = *patch.Avatar
			}
			return u, nil
		}
	}
	return models.User{}, common.ErrGateway
}

func (f *fakeGateway) ListTasks(_ context.Context, filter models.TaskFilter) ([]models.Task, error) {
	f.count()
	f.LastFilters = append(f.LastFilters, filter)
	if f.ListTasksErr != nil {
		return nil, f.ListTasksErr
	}
	var out []models.Task
	for _, t := range f.Tasks {
		if !filter.UserID.IsZero() && t.UserID != filter.UserID {
			continue
		}
		if filter.Status != "" && t.Status != filter.Status {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

func (f *fakeGateway) CreateTask(_ context.Context, t models.NewTask) (models.Task, error) {
	f.count()
	f.wait()
	f.LastNewTask = t
	if f.CreateTaskErr != nil {
		return models.Task{}, f.CreateTaskErr
	}
	return models.Task{
		ID: "1", Title: t.Title, Description: t.Description, Category: t.Category,
		Status: t.Status, Priority: t.Priority, DueDate: t.DueDate, UserID: t.UserID, CreatedAt: models.Timestamp{Time: t.CreatedAt},
	}, nil
}

func (f *fakeGateway) UpdateTask(_ context.Context, id models.ID, patch models.TaskPatch) (models.Task, error) {
	f.count()
	f.wait()
	f.LastTaskID, f.LastTaskPatch = id, patch
	if f.UpdateTaskErr != nil {
		return models.Task{}, f.UpdateTaskErr
	}
	t := models.Task{ID: id}
	if patch.Title != nil {
		t.Title = *patch.Title
	}
	if patch.Status != nil {
		t.Status = *patch.Status
	}
	if patch.Priority != nil {
		t.Priority = *patch.Priority
	}
	return t, nil
}

func (f *fakeGateway) DeleteTask(_ context.Context, id models.ID) error {
	f.count()
	f.LastDeleteID = id
	return f.DeleteErr
}

// memSessions is an in-memory SessionStore.
type memSessions struct {
	user    *models.User
	saveErr error
	saves   int
}

func (m *memSessions) Save(_ context.Context, u models.User) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saves++
	m.user = &u
	return nil
}

func (m *memSessions) Current(context.Context) (models.User, error) {
	if m.user == nil {
		return models.User{}, common.ErrNoSession
	}
	return *m.user, nil
}

func (m *memSessions) Clear(context.Context) error {
	m.user = nil
	return nil
}
