package workflow

import (
	"context"

	"github.com/go-playground/errors/v5"

	"session-booking-client/internal/api"
	"session-booking-client/internal/session"
)

// Auth drives the login and register forms. A failed submit sets
// OnError for the view to render; the next submit clears it.
type Auth struct {
	api   AuthAPI
	store *session.Store
	nav   Navigator

	OnError bool
}

func NewAuth(a AuthAPI, store *session.Store, nav Navigator) *Auth {
	return &Auth{api: a, store: store, nav: nav}
}

// SubmitLogin exchanges credentials, stores the resulting snapshot in
// the session store and navigates to the session list.
func (a *Auth) SubmitLogin(ctx context.Context, email, password string) error {
	info, err := a.api.Login(ctx, api.LoginRequest{Email: email, Password: password})
	if err != nil {
		a.OnError = true
		return errors.Wrap(err, "AuthAPI.Login()")
	}
	a.OnError = false
	a.store.LogIn(info)
	a.nav.NavigateTo("/sessions")
	return nil
}

// SubmitRegister creates the account and sends the user to the login
// form. Registration never logs in by itself.
func (a *Auth) SubmitRegister(ctx context.Context, req api.RegisterRequest) error {
	if err := a.api.Register(ctx, req); err != nil {
		a.OnError = true
		return errors.Wrap(err, "AuthAPI.Register()")
	}
	a.OnError = false
	a.nav.NavigateTo("/login")
	return nil
}

// Logout clears the session store and returns to the landing page.
// Safe to call when already logged out.
func (a *Auth) Logout() {
	a.store.LogOut()
	a.nav.NavigateTo("/")
}
