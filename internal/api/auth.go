package api

import (
	"context"
	"net/http"

	"session-booking-client/internal/model"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Password  string `json:"password"`
}

// Login exchanges credentials for a SessionInformation snapshot.
func (c *Client) Login(ctx context.Context, req LoginRequest) (model.SessionInformation, error) {
	if err := c.authLim.Wait(ctx); err != nil {
		return model.SessionInformation{}, err
	}
	var info model.SessionInformation
	if err := c.do(ctx, http.MethodPost, "api/auth/login", req, &info); err != nil {
		return model.SessionInformation{}, err
	}
	return info, nil
}

func (c *Client) Register(ctx context.Context, req RegisterRequest) error {
	if err := c.authLim.Wait(ctx); err != nil {
		return err
	}
	return c.do(ctx, http.MethodPost, "api/auth/register", req, nil)
}
