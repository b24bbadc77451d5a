// Package workflow coordinates remote resource calls with local view
// state: login/logout, the participation toggle on a session detail
// view, the dual-mode session form, and the account view.
package workflow

import (
	"context"
	"errors"

	"session-booking-client/internal/api"
	"session-booking-client/internal/model"
)

var (
	// ErrToggleInFlight rejects a join/leave while one is pending for
	// the same view. Both would mutate the same roster and a stale
	// re-fetch could overwrite a newer one.
	ErrToggleInFlight = errors.New("participation change already in flight")

	// ErrUnauthorized signals that the current snapshot does not grant
	// the workflow; the caller has already been redirected.
	ErrUnauthorized = errors.New("not authorized")
)

// Notifier shows a transient user-visible notice.
type Notifier interface {
	Notify(message string)
}

// Navigator changes the current route.
type Navigator interface {
	NavigateTo(path string)
}

// Notices shown by the workflows.
const (
	NoticeSessionCreated = "Session created !"
	NoticeSessionUpdated = "Session updated !"
	NoticeSessionDeleted = "Session deleted !"
	NoticeCreateFailed   = "Failed to create session"
	NoticeUpdateFailed   = "Failed to update session"
	NoticeDeleteFailed   = "Failed to delete session"
	NoticeToggleFailed   = "Failed to update participation"
	NoticeAccountDeleted = "Your account has been deleted !"
)

// SessionAPI is the session resource client surface the workflows use.
// Implemented by *api.Client.
type SessionAPI interface {
	Sessions(ctx context.Context) ([]model.Session, error)
	Session(ctx context.Context, id int64) (model.Session, error)
	CreateSession(ctx context.Context, s model.Session) (model.Session, error)
	UpdateSession(ctx context.Context, id int64, s model.Session) (model.Session, error)
	DeleteSession(ctx context.Context, id int64) error
	Participate(ctx context.Context, sessionID, userID int64) error
	Unparticipate(ctx context.Context, sessionID, userID int64) error
}

type TeacherAPI interface {
	Teachers(ctx context.Context) ([]model.Teacher, error)
	Teacher(ctx context.Context, id int64) (model.Teacher, error)
}

type UserAPI interface {
	User(ctx context.Context, id int64) (model.User, error)
	DeleteUser(ctx context.Context, id int64) error
}

type AuthAPI interface {
	Login(ctx context.Context, req api.LoginRequest) (model.SessionInformation, error)
	Register(ctx context.Context, req api.RegisterRequest) error
}
