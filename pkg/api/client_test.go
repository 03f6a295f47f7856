package api

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	log "github.com/sirupsen/logrus"

	"tableflip.dev/weekly/pkg/devserver"
	"tableflip.dev/weekly/pkg/store"
	"tableflip.dev/weekly/pkg/todo"
)

func newDevClient(t *testing.T) *Client {
	t.Helper()
	p, err := store.Load(t.TempDir())
	if err != nil {
		t.Fatalf("load store: %v", err)
	}
	logger := log.New()
	logger.SetOutput(io.Discard)
	srv := httptest.NewServer(devserver.New(p, logger).Handler())
	t.Cleanup(srv.Close)
	return NewWithHTTPClient(srv.URL, srv.Client())
}

func TestClientRoundTripAgainstDevServer(t *testing.T) {
	ctx := context.Background()
	c := newDevClient(t)

	created, err := c.Create(ctx, "  water plants", todo.Selasa)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == "" || created.Day != todo.Selasa || created.Completed {
		t.Fatalf("unexpected created task: %+v", created)
	}
	if created.Text != "  water plants" {
		t.Fatalf("text must be sent as typed, got %q", created.Text)
	}

	done, err := c.Complete(ctx, created.ID)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if !done.Completed {
		t.Fatalf("expected completed task, got %+v", done)
	}

	tasks, err := c.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(tasks) != 1 || tasks[0].ID != created.ID || !tasks[0].Completed {
		t.Fatalf("unexpected list: %+v", tasks)
	}

	if err := c.Delete(ctx, created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	tasks, err = c.List(ctx)
	if err != nil {
		t.Fatalf("list after delete: %v", err)
	}
	if len(tasks) != 0 {
		t.Fatalf("expected empty list, got %+v", tasks)
	}
}

func TestClientFailuresWrapErrRemote(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		call   func(c *Client) error
	}{
		{
			name:   "server error",
			status: http.StatusInternalServerError,
			body:   "boom",
			call:   func(c *Client) error { _, err := c.List(context.Background()); return err },
		},
		{
			name:   "malformed json",
			status: http.StatusOK,
			body:   "[{",
			call:   func(c *Client) error { _, err := c.List(context.Background()); return err },
		},
		{
			name:   "schema violation",
			status: http.StatusOK,
			body:   `[{"_id": 12, "text": "x", "day": "Senin"}]`,
			call:   func(c *Client) error { _, err := c.List(context.Background()); return err },
		},
		{
			name:   "not an array",
			status: http.StatusOK,
			body:   `{"todos": []}`,
			call:   func(c *Client) error { _, err := c.List(context.Background()); return err },
		},
		{
			name:   "delete not found",
			status: http.StatusNotFound,
			call:   func(c *Client) error { return c.Delete(context.Background(), "x") },
		},
		{
			name:   "complete bad body",
			status: http.StatusOK,
			body:   `{"text": "missing id"}`,
			call:   func(c *Client) error { _, err := c.Complete(context.Background(), "x"); return err },
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = io.WriteString(w, tc.body)
			}))
			defer srv.Close()

			err := tc.call(NewWithHTTPClient(srv.URL, srv.Client()))
			if !errors.Is(err, ErrRemote) {
				t.Fatalf("expected ErrRemote, got %v", err)
			}
		})
	}
}

func TestClientNetworkFailureWrapsErrRemote(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := New(url, 0).List(context.Background())
	if !errors.Is(err, ErrRemote) {
		t.Fatalf("expected ErrRemote, got %v", err)
	}
}

func TestClientRequestShape(t *testing.T) {
	type seen struct {
		method, path, contentType, body string
	}
	var got []seen
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		got = append(got, seen{r.Method, r.URL.Path, r.Header.Get("Content-Type"), string(b)})
		switch r.Method {
		case http.MethodDelete:
			w.WriteHeader(http.StatusOK)
		default:
			_, _ = io.WriteString(w, `{"_id":"a1","text":"t","day":"Rabu","completed":true}`)
		}
	}))
	defer srv.Close()

	c := NewWithHTTPClient(srv.URL+"/", srv.Client())
	ctx := context.Background()
	if _, err := c.Create(ctx, "t", todo.Rabu); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := c.Complete(ctx, "a1"); err != nil {
		t.Fatalf("complete: %v", err)
	}
	if err := c.Delete(ctx, "a1"); err != nil {
		t.Fatalf("delete: %v", err)
	}

	want := []seen{
		{http.MethodPost, "/api/todos", "application/json", `{"text":"t","day":"Rabu","completed":false}`},
		{http.MethodPut, "/api/todos/a1", "application/json", `{"completed":true}`},
		{http.MethodDelete, "/api/todos/a1", "", ""},
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d requests, got %d: %+v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("request %d: want %+v, got %+v", i, want[i], got[i])
		}
	}
}

func TestClientListKeepsRecordsWithoutDay(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `[
			{"_id": "a", "text": "ok", "day": "Senin"},
			{"_id": "b", "text": "legacy", "day": null},
			{"_id": "c", "text": null},
			{"_id": "d", "text": "half", "day": "Selasa", "completed": null}
		]`)
	}))
	defer srv.Close()

	tasks, err := New(srv.URL, 0).List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	want := []todo.Task{
		{ID: "a", Text: "ok", Day: todo.Senin},
		{ID: "b", Text: "legacy"},
		{ID: "c"},
		{ID: "d", Text: "half", Day: todo.Selasa},
	}
	if len(tasks) != len(want) {
		t.Fatalf("expected %d tasks, got %+v", len(want), tasks)
	}
	for i := range want {
		if tasks[i] != want[i] {
			t.Fatalf("task %d: want %+v, got %+v", i, want[i], tasks[i])
		}
	}
}

func TestClientListStillRequiresID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `[{"text": "no id", "day": "Senin"}]`)
	}))
	defer srv.Close()

	if _, err := New(srv.URL, 0).List(context.Background()); !errors.Is(err, ErrRemote) {
		t.Fatalf("expected ErrRemote for a record without _id, got %v", err)
	}
}
