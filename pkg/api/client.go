// Package api is the HTTP client for the remote to-do collaborator served
// under /api/todos.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"tableflip.dev/weekly/pkg/todo"
)

// ErrRemote is the only failure kind the client reports. Network errors,
// non-2xx statuses and malformed bodies all wrap it.
var ErrRemote = errors.New("api: remote call failed")

// BasePath is where the collaborator mounts the to-do resource.
const BasePath = "/api/todos"

// Remote is the contract the sync layer and the CLI depend on.
type Remote interface {
	List(ctx context.Context) ([]todo.Task, error)
	Create(ctx context.Context, text string, day todo.Day) (todo.Task, error)
	Delete(ctx context.Context, id string) error
	Complete(ctx context.Context, id string) (todo.Task, error)
}

// Client talks JSON to the remote API.
type Client struct {
	base string
	http *http.Client
}

var _ Remote = (*Client)(nil)

// New returns a Client for baseURL (scheme and host, optionally a prefix)
// with the given request timeout. A zero timeout means no client timeout.
func New(baseURL string, timeout time.Duration) *Client {
	return NewWithHTTPClient(baseURL, &http.Client{Timeout: timeout})
}

// NewWithHTTPClient is New with a caller-supplied http.Client.
func NewWithHTTPClient(baseURL string, hc *http.Client) *Client {
	if hc == nil {
		hc = http.DefaultClient
	}
	return &Client{
		base: strings.TrimRight(baseURL, "/") + BasePath,
		http: hc,
	}
}

// List fetches every task.
func (c *Client) List(ctx context.Context) ([]todo.Task, error) {
	body, err := c.do(ctx, http.MethodGet, "", nil)
	if err != nil {
		return nil, err
	}
	var tasks []todo.Task
	if err := decodeValidated(body, tasksSchema, &tasks); err != nil {
		return nil, fmt.Errorf("%w: list: %w", ErrRemote, err)
	}
	return tasks, nil
}

// Create adds an incomplete task. text is sent exactly as given.
func (c *Client) Create(ctx context.Context, text string, day todo.Day) (todo.Task, error) {
	body, err := c.do(ctx, http.MethodPost, "", todo.NewTask{Text: text, Day: day})
	if err != nil {
		return todo.Task{}, err
	}
	return decodeTask("create", body)
}

// Delete removes the task with the given id.
func (c *Client) Delete(ctx context.Context, id string) error {
	_, err := c.do(ctx, http.MethodDelete, id, nil)
	return err
}

// Complete marks the task done. Completing a completed task is harmless.
func (c *Client) Complete(ctx context.Context, id string) (todo.Task, error) {
	body, err := c.do(ctx, http.MethodPut, id, todo.Completion{Completed: true})
	if err != nil {
		return todo.Task{}, err
	}
	return decodeTask("complete", body)
}

func decodeTask(op string, body []byte) (todo.Task, error) {
	var t todo.Task
	if len(bytes.TrimSpace(body)) == 0 {
		return t, nil
	}
	if err := decodeValidated(body, taskSchema, &t); err != nil {
		return todo.Task{}, fmt.Errorf("%w: %s: %w", ErrRemote, op, err)
	}
	return t, nil
}

func (c *Client) do(ctx context.Context, method, id string, payload interface{}) ([]byte, error) {
	target := c.base
	if id != "" {
		target += "/" + url.PathEscape(id)
	}

	var reader io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("%w: encode %s %s: %w", ErrRemote, method, target, err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, fmt.Errorf("%w: %s %s: %w", ErrRemote, method, target, err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s %s: %w", ErrRemote, method, target, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s %s: %w", ErrRemote, method, target, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %s %s: status %d", ErrRemote, method, target, resp.StatusCode)
	}
	return body, nil
}
