package workflow

import (
	"context"

	"github.com/go-playground/errors/v5"

	"session-booking-client/internal/model"
	"session-booking-client/internal/policy"
	"session-booking-client/internal/session"
)

// Account is the "my account" view: display the logged-in user and,
// for non-administrators, self-service deletion.
type Account struct {
	users  UserAPI
	store  *session.Store
	notify Notifier
	nav    Navigator

	// view state, valid after Load
	User model.User
}

func NewAccount(users UserAPI, store *session.Store, notify Notifier, nav Navigator) *Account {
	return &Account{users: users, store: store, notify: notify, nav: nav}
}

func (a *Account) Load(ctx context.Context) error {
	info, ok := a.store.Session()
	if !ok {
		return ErrUnauthorized
	}
	u, err := a.users.User(ctx, info.ID)
	if err != nil {
		return errors.Wrap(err, "UserAPI.User()")
	}
	a.User = u
	return nil
}

// CanDelete reports whether the delete control is offered at all.
func (a *Account) CanDelete() bool {
	return policy.CanDeleteOwnAccount(a.store.Session())
}

// Delete removes the viewer's own account, then logs out and returns
// to the landing page.
func (a *Account) Delete(ctx context.Context) error {
	info, ok := a.store.Session()
	if !policy.CanDeleteOwnAccount(info, ok) {
		return ErrUnauthorized
	}
	if err := a.users.DeleteUser(ctx, info.ID); err != nil {
		return errors.Wrap(err, "UserAPI.DeleteUser()")
	}
	a.notify.Notify(NoticeAccountDeleted)
	a.store.LogOut()
	a.nav.NavigateTo("/")
	return nil
}
