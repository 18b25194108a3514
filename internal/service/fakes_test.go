package service

import (
	"context"
	"time"

	"github.com/taskdeck/taskdeck-go/internal/model"
	"github.com/taskdeck/taskdeck-go/internal/repository"
)

// fakeUserStore is an in-memory UserStore enforcing email uniqueness the
// way the MySQL unique key does.
type fakeUserStore struct {
	nextID int64
	users  map[int64]*model.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[int64]*model.User)}
}

func (f *fakeUserStore) Create(_ context.Context, user *model.User) error {
	for _, u := range f.users {
		if u.Email == user.Email {
			return repository.ErrDuplicateEmail
		}
	}
	f.nextID++
	user.ID = f.nextID
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	cp := *user
	f.users[user.ID] = &cp
	return nil
}

func (f *fakeUserStore) GetByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (f *fakeUserStore) GetByID(_ context.Context, id int64) (*model.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

// fakeTaskStore is an in-memory TaskStore with the same owner scoping the
// MySQL repository applies: a foreign task is reported as missing.
type fakeTaskStore struct {
	nextID int64
	tasks  map[int64]*model.Task
}

func newFakeTaskStore() *fakeTaskStore {
	return &fakeTaskStore{tasks: make(map[int64]*model.Task)}
}

func (f *fakeTaskStore) Create(_ context.Context, task *model.Task) (*model.Task, error) {
	f.nextID++
	task.ID = f.nextID
	task.CreatedAt = time.Now()
	task.UpdatedAt = task.CreatedAt
	cp := *task
	f.tasks[task.ID] = &cp
	out := *task
	return &out, nil
}

func (f *fakeTaskStore) GetByID(_ context.Context, ownerID, taskID int64) (*model.Task, error) {
	t, ok := f.tasks[taskID]
	if !ok || t.UserID != ownerID {
		return nil, repository.ErrTaskNotFound
	}
	cp := *t
	return &cp, nil
}

func (f *fakeTaskStore) ListByOwner(_ context.Context, ownerID int64) ([]model.Task, error) {
	var out []model.Task
	for _, t := range f.tasks {
		if t.UserID == ownerID {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (f *fakeTaskStore) Update(_ context.Context, task *model.Task) (*model.Task, error) {
	t, ok := f.tasks[task.ID]
	if !ok || t.UserID != task.UserID {
		return nil, repository.ErrTaskNotFound
	}
	task.CreatedAt = t.CreatedAt
	task.UpdatedAt = time.Now()
	cp := *task
	f.tasks[task.ID] = &cp
	out := *task
	return &out, nil
}

func (f *fakeTaskStore) Delete(_ context.Context, ownerID, taskID int64) error {
	t, ok := f.tasks[taskID]
	if !ok || t.UserID != ownerID {
		return repository.ErrTaskNotFound
	}
	delete(f.tasks, taskID)
	return nil
}
