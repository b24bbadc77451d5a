package api

import (
	"context"
	"fmt"
	"net/http"

	"session-booking-client/internal/model"
)

// Sessions lists every bookable session, in server order.
func (c *Client) Sessions(ctx context.Context) ([]model.Session, error) {
	var out []model.Session
	if err := c.do(ctx, http.MethodGet, "api/session", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Session(ctx context.Context, id int64) (model.Session, error) {
	var out model.Session
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("api/session/%d", id), nil, &out); err != nil {
		return model.Session{}, err
	}
	return out, nil
}

// CreateSession persists a new session. The input carries no id; the
// returned copy does.
func (c *Client) CreateSession(ctx context.Context, s model.Session) (model.Session, error) {
	var out model.Session
	if err := c.do(ctx, http.MethodPost, "api/session", s, &out); err != nil {
		return model.Session{}, err
	}
	return out, nil
}

func (c *Client) UpdateSession(ctx context.Context, id int64, s model.Session) (model.Session, error) {
	var out model.Session
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("api/session/%d", id), s, &out); err != nil {
		return model.Session{}, err
	}
	return out, nil
}

func (c *Client) DeleteSession(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("api/session/%d", id), nil, nil)
}

// Participate adds userID to the session's roster.
func (c *Client) Participate(ctx context.Context, sessionID, userID int64) error {
	return c.do(ctx, http.MethodPost, fmt.Sprintf("api/session/%d/participate/%d", sessionID, userID), nil, nil)
}

// Unparticipate removes userID from the session's roster.
func (c *Client) Unparticipate(ctx context.Context, sessionID, userID int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("api/session/%d/participate/%d", sessionID, userID), nil, nil)
}
