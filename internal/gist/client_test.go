package gist

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"trainlock/internal/config"
	"trainlock/internal/models"
	"trainlock/internal/testutil"
	"trainlock/internal/util"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c := NewClient(config.GistConfig{
		ID:       "g123",
		Token:    "tok",
		FileName: "trainlock.json",
		BaseURL:  srv.URL,
	}, util.NopLogger())
	c.now = func() time.Time { return time.Date(2025, 4, 1, 12, 0, 0, 0, time.UTC) }
	return c
}

func gistResponse(content string, truncated bool) string {
	raw, _ := json.Marshal(map[string]interface{}{
		"files": map[string]interface{}{
			"trainlock.json": map[string]interface{}{
				"content":   content,
				"truncated": truncated,
			},
		},
	})
	return string(raw)
}

func TestPull(t *testing.T) {
	var gotPath, gotAuth, gotAccept string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotAccept = r.Header.Get("Accept")
		io.WriteString(w, gistResponse(
			`{"version":1,"entries":[{"id":"a","date":"2025-01-06","plannedType":"Light","updatedAt":5}]}`,
			false))
	})

	sessions, ok := c.Pull(context.Background())
	if !ok {
		t.Fatalf("expected successful pull")
	}
	if gotPath != "/gists/g123" {
		t.Fatalf("unexpected path %q", gotPath)
	}
	if gotAuth != "Bearer tok" {
		t.Fatalf("unexpected auth header %q", gotAuth)
	}
	if gotAccept != "application/vnd.github+json" {
		t.Fatalf("unexpected accept header %q", gotAccept)
	}
	if len(sessions) != 1 || sessions[0].ID != "a" || sessions[0].UpdatedAt != 5 {
		t.Fatalf("unexpected sessions: %+v", sessions)
	}
}

func TestPullSoftFailures(t *testing.T) {
	cases := map[string]http.HandlerFunc{
		"not found": func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		},
		"unauthorized": func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		},
		"malformed response": func(w http.ResponseWriter, r *http.Request) {
			io.WriteString(w, "<html>nope</html>")
		},
		"plan file missing": func(w http.ResponseWriter, r *http.Request) {
			io.WriteString(w, `{"files":{"other.txt":{"content":"x"}}}`)
		},
		"truncated content": func(w http.ResponseWriter, r *http.Request) {
			io.WriteString(w, gistResponse(`{"version":1,"entries":[]}`, true))
		},
		"undecodable content": func(w http.ResponseWriter, r *http.Request) {
			io.WriteString(w, gistResponse(`not a document`, false))
		},
	}
	for name, handler := range cases {
		t.Run(name, func(t *testing.T) {
			c := newTestClient(t, handler)
			if _, ok := c.Pull(context.Background()); ok {
				t.Fatalf("expected ok=false")
			}
		})
	}
}

func TestPush(t *testing.T) {
	var gotMethod, gotBody string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		raw, _ := io.ReadAll(r.Body)
		gotBody = string(raw)
		io.WriteString(w, "{}")
	})

	sessions := []models.Session{
		testutil.NewSession("a").On("2025-01-06").Build(),
	}
	if !c.Push(context.Background(), 1, sessions) {
		t.Fatalf("expected successful push")
	}
	if gotMethod != http.MethodPatch {
		t.Fatalf("expected PATCH, got %s", gotMethod)
	}

	var body struct {
		Files map[string]struct {
			Content string `json:"content"`
		} `json:"files"`
	}
	if err := json.Unmarshal([]byte(gotBody), &body); err != nil {
		t.Fatalf("push body not json: %v", err)
	}
	file, ok := body.Files["trainlock.json"]
	if !ok {
		t.Fatalf("push body missing plan file: %s", gotBody)
	}
	var inner struct {
		Version int `json:"version"`
	}
	if err := json.Unmarshal([]byte(file.Content), &inner); err != nil {
		t.Fatalf("pushed content not json: %v", err)
	}
	if inner.Version != 1 {
		t.Fatalf("pushed version wrong: %d", inner.Version)
	}
}

func TestPushRejected(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})
	if c.Push(context.Background(), 1, nil) {
		t.Fatalf("expected ok=false on forbidden")
	}
}
