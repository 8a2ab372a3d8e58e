// Package client is the board's consumer side: an HTTP API client plus the
// view model that mirrors server state locally.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"commentboard/internal/models"
)

type Client struct {
	baseURL string
	httpc   *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: 15 * time.Second},
	}
}

// ListResult is the paginated listing envelope.
type ListResult struct {
	Data       []Comment         `json:"data"`
	Pagination models.Pagination `json:"pagination"`
}

type messageEnvelope struct {
	Message string  `json:"message"`
	Data    Comment `json:"data"`
}

type apiError struct {
	Error      string `json:"error"`
	RetryAfter int    `json:"retry_after"`
}

// RateLimitedError reports a rejected creation attempt with the server's
// retry hint in seconds.
type RateLimitedError struct {
	RetryAfter int
}

func (e *RateLimitedError) Error() string {
	return fmt.Sprintf("rate limited, retry after %ds", e.RetryAfter)
}

func (c *Client) List(ctx context.Context, page, limit int) (*ListResult, error) {
	q := url.Values{}
	if page > 0 {
		q.Set("page", strconv.Itoa(page))
	}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	path := "/comments"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var res ListResult
	if err := c.do(ctx, http.MethodGet, path, nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// Replies fetches the direct replies of a comment, newest first.
func (c *Client) Replies(ctx context.Context, parentID uint) ([]Comment, error) {
	path := fmt.Sprintf("/comments?parent_id=%d", parentID)
	var replies []Comment
	if err := c.do(ctx, http.MethodGet, path, nil, &replies); err != nil {
		return nil, err
	}
	return replies, nil
}

func (c *Client) Add(ctx context.Context, text string, images []string, parentID *uint) (*Comment, error) {
	body := map[string]interface{}{"text": text}
	if len(images) > 0 {
		body["images"] = images
	}
	if parentID != nil {
		body["parent_id"] = *parentID
	}

	var env messageEnvelope
	if err := c.do(ctx, http.MethodPost, "/comments", body, &env); err != nil {
		return nil, err
	}
	return &env.Data, nil
}

func (c *Client) ToggleLike(ctx context.Context, id uint) (*Comment, error) {
	var updated Comment
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/comments/%d/like", id), nil, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) Edit(ctx context.Context, id uint, text string) (*Comment, error) {
	var env messageEnvelope
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/comments/%d", id), map[string]interface{}{"text": text}, &env); err != nil {
		return nil, err
	}
	return &env.Data, nil
}

func (c *Client) Delete(ctx context.Context, id uint) (*Comment, error) {
	var env messageEnvelope
	if err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/comments/%d", id), nil, &env); err != nil {
		return nil, err
	}
	return &env.Data, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusMultipleChoices {
		var apiErr apiError
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)
		if resp.StatusCode == http.StatusTooManyRequests {
			return &RateLimitedError{RetryAfter: apiErr.RetryAfter}
		}
		if apiErr.Error == "" {
			apiErr.Error = resp.Status
		}
		return fmt.Errorf("%s %s: %s", method, path, apiErr.Error)
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
