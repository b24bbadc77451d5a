package api

import (
	"context"
	"fmt"
	"net/http"

	"session-booking-client/internal/model"
)

func (c *Client) User(ctx context.Context, id int64) (model.User, error) {
	var out model.User
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("api/user/%d", id), nil, &out); err != nil {
		return model.User{}, err
	}
	return out, nil
}

func (c *Client) DeleteUser(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("api/user/%d", id), nil, nil)
}
