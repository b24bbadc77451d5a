package api

import (
	"context"
	"fmt"
	"net/http"

	"session-booking-client/internal/model"
)

// Teachers lists the reference data for teacher selection, in server
// order.
func (c *Client) Teachers(ctx context.Context) ([]model.Teacher, error) {
	var out []model.Teacher
	if err := c.do(ctx, http.MethodGet, "api/teacher", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Teacher(ctx context.Context, id int64) (model.Teacher, error) {
	var out model.Teacher
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("api/teacher/%d", id), nil, &out); err != nil {
		return model.Teacher{}, err
	}
	return out, nil
}
