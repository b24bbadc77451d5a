// Package api holds the remote resource clients: stateless
// request/response exchanges against the booking backend, one file per
// resource. No business logic lives here.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

// TokenSource supplies the current bearer token, or "" when logged out.
type TokenSource func() string

type Client struct {
	base  string
	http  *http.Client
	token TokenSource

	// the backend throttles login/register; throttle them on the way
	// out too so a misbehaving caller fails locally instead of tripping
	// the server limit
	authLim *rate.Limiter
}

func New(baseURL string, timeout time.Duration, token TokenSource, authRPS float64, authBurst int) *Client {
	return &Client{
		base:    strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		token:   token,
		authLim: rate.NewLimiter(rate.Limit(authRPS), authBurst),
	}
}

// do performs one JSON exchange. A nil out discards the response body;
// a nil body sends none.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var rd io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		rd = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+"/"+path, rd)
	if err != nil {
		return err
	}
	reqID := uuid.New().String()
	req.Header.Set("X-Request-Id", reqID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != nil {
		if tok := c.token(); tok != "" {
			// fail fast on a token that is already past its exp claim
			if Expired(tok, time.Now()) {
				return &Error{Kind: KindAuthentication, Status: http.StatusUnauthorized, Message: "token expired", RequestID: reqID}
			}
			req.Header.Set("Authorization", "Bearer "+tok)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return &Error{
			Kind:      kindFromStatus(resp.StatusCode),
			Status:    resp.StatusCode,
			Message:   errorMessage(resp.Body),
			RequestID: reqID,
		}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil && err != io.EOF {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

// errorMessage pulls the server's message out of an error body. Falls
// back to the raw body for non-JSON responses.
func errorMessage(r io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(r, 4096))
	if err != nil || len(raw) == 0 {
		return ""
	}
	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(raw, &body); err == nil {
		if body.Message != "" {
			return body.Message
		}
		if body.Error != "" {
			return body.Error
		}
	}
	return strings.TrimSpace(string(raw))
}
