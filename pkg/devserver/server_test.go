package devserver

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	log "github.com/sirupsen/logrus"

	"tableflip.dev/weekly/pkg/store"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	p, err := store.Load(t.TempDir())
	if err != nil {
		t.Fatalf("load store: %v", err)
	}
	logger := log.New()
	logger.SetOutput(io.Discard)
	srv := httptest.NewServer(New(p, logger).Handler())
	t.Cleanup(srv.Close)
	return srv
}

func TestCreateRejectsInvalidPayloads(t *testing.T) {
	srv := newTestServer(t)
	tests := []struct {
		name string
		body string
	}{
		{name: "blank text", body: `{"text":"   ","day":"Senin","completed":false}`},
		{name: "unknown day", body: `{"text":"jog","day":"Monday","completed":false}`},
		{name: "not json", body: `{`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			resp, err := http.Post(srv.URL+"/api/todos", "application/json", strings.NewReader(tc.body))
			if err != nil {
				t.Fatalf("post: %v", err)
			}
			resp.Body.Close()
			if resp.StatusCode != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", resp.StatusCode)
			}
		})
	}
}

func TestUnknownIDReturnsNotFound(t *testing.T) {
	srv := newTestServer(t)

	req, _ := http.NewRequest(http.MethodDelete, srv.URL+"/api/todos/nope", nil)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 on delete, got %d", resp.StatusCode)
	}

	req, _ = http.NewRequest(http.MethodPut, srv.URL+"/api/todos/nope", strings.NewReader(`{"completed":true}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err = http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("put: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 on put, got %d", resp.StatusCode)
	}
}

func TestListStartsEmpty(t *testing.T) {
	srv := newTestServer(t)
	resp, err := http.Get(srv.URL + "/api/todos")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if strings.TrimSpace(string(body)) != "[]" {
		t.Fatalf("expected empty array, got %q", body)
	}
}
