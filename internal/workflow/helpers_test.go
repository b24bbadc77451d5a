package workflow_test

import (
	"context"
	"sync"

	"session-booking-client/internal/api"
	"session-booking-client/internal/model"
	"session-booking-client/internal/session"
)

// recorder plays the notifier and router roles and remembers every call.
type recorder struct {
	notices []string
	routes  []string
}

func (r *recorder) Notify(message string) { r.notices = append(r.notices, message) }
func (r *recorder) NavigateTo(path string) {
	r.routes = append(r.routes, path)
}

func (r *recorder) lastNotice() string {
	if len(r.notices) == 0 {
		return ""
	}
	return r.notices[len(r.notices)-1]
}

func (r *recorder) lastRoute() string {
	if len(r.routes) == 0 {
		return ""
	}
	return r.routes[len(r.routes)-1]
}

// fakeBackend implements the workflow-facing API surfaces in memory.
type fakeBackend struct {
	mu sync.Mutex

	session  model.Session
	teachers []model.Teacher
	teacher  model.Teacher
	user     model.User

	detailErr        error
	createErr        error
	updateErr        error
	deleteErr        error
	participateErr   error
	unparticipateErr error
	userDeleteErr    error

	detailCalls   int
	created       []model.Session
	updated       []model.Session
	updatedID     int64
	deleted       []int64
	participated  [][2]int64
	left          [][2]int64
	userDeleted   []int64
	teacherCalls  int
	teachersCalls int

	// when set, Participate signals started then blocks until release
	// is closed
	started chan struct{}
	release chan struct{}
}

func (f *fakeBackend) Sessions(context.Context) ([]model.Session, error) {
	return []model.Session{f.session}, nil
}

func (f *fakeBackend) Session(context.Context, int64) (model.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.detailCalls++
	if f.detailErr != nil {
		return model.Session{}, f.detailErr
	}
	return f.session, nil
}

func (f *fakeBackend) CreateSession(_ context.Context, s model.Session) (model.Session, error) {
	if f.createErr != nil {
		return model.Session{}, f.createErr
	}
	f.created = append(f.created, s)
	s.ID = 1
	return s, nil
}

func (f *fakeBackend) UpdateSession(_ context.Context, id int64, s model.Session) (model.Session, error) {
	if f.updateErr != nil {
		return model.Session{}, f.updateErr
	}
	f.updated = append(f.updated, s)
	f.updatedID = id
	return s, nil
}

func (f *fakeBackend) DeleteSession(_ context.Context, id int64) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeBackend) Participate(_ context.Context, sessionID, userID int64) error {
	if f.started != nil {
		f.started <- struct{}{}
		<-f.release
	}
	if f.participateErr != nil {
		return f.participateErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.participated = append(f.participated, [2]int64{sessionID, userID})
	f.session.Users = append(f.session.Users, userID)
	return nil
}

func (f *fakeBackend) Unparticipate(_ context.Context, sessionID, userID int64) error {
	if f.unparticipateErr != nil {
		return f.unparticipateErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.left = append(f.left, [2]int64{sessionID, userID})
	users := f.session.Users[:0:0]
	for _, id := range f.session.Users {
		if id != userID {
			users = append(users, id)
		}
	}
	f.session.Users = users
	return nil
}

func (f *fakeBackend) Teachers(context.Context) ([]model.Teacher, error) {
	f.teachersCalls++
	return f.teachers, nil
}

func (f *fakeBackend) Teacher(context.Context, int64) (model.Teacher, error) {
	f.teacherCalls++
	return f.teacher, nil
}

func (f *fakeBackend) User(context.Context, int64) (model.User, error) {
	return f.user, nil
}

func (f *fakeBackend) DeleteUser(_ context.Context, id int64) error {
	if f.userDeleteErr != nil {
		return f.userDeleteErr
	}
	f.userDeleted = append(f.userDeleted, id)
	return nil
}

// fakeAuth implements the auth resource client.
type fakeAuth struct {
	info         model.SessionInformation
	loginErr     error
	registerErr  error
	lastLogin    api.LoginRequest
	lastRegister api.RegisterRequest
}

func (f *fakeAuth) Login(_ context.Context, req api.LoginRequest) (model.SessionInformation, error) {
	f.lastLogin = req
	if f.loginErr != nil {
		return model.SessionInformation{}, f.loginErr
	}
	return f.info, nil
}

func (f *fakeAuth) Register(_ context.Context, req api.RegisterRequest) error {
	f.lastRegister = req
	return f.registerErr
}

func loggedInStore(info model.SessionInformation) *session.Store {
	s := session.NewStore()
	s.LogIn(info)
	return s
}

var (
	adminInfo = model.SessionInformation{
		Token: "mock-token", Type: "Bearer", ID: 1,
		Username: "john@doe.com", FirstName: "John", LastName: "Doe", Admin: true,
	}
	viewerInfo = model.SessionInformation{
		Token: "mock-token", Type: "Bearer", ID: 4,
		Username: "jane@doe.com", FirstName: "Jane", LastName: "Doe",
	}
)
