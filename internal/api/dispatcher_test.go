package api

import (
	"context"
	"encoding/json"
	"net"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/hitforum/forum-system/internal/core/service"
	"github.com/hitforum/forum-system/internal/infrastructure/snapshot"
)

type testResponse struct {
	Status int            `json:"status"`
	Body   map[string]any `json:"body"`
}

// startDispatcher wires real services over a temp snapshot directory and
// serves on an ephemeral port.
func startDispatcher(t *testing.T) string {
	t.Helper()
	log := zerolog.Nop()
	dir := t.TempDir()

	userRepo := snapshot.NewUserRepository(filepath.Join(dir, "users.json"), log)
	commentRepo, err := snapshot.NewCommentRepository(filepath.Join(dir, "comments.json"), log)
	if err != nil {
		t.Fatalf("comment repository: %v", err)
	}
	postRepo, err := snapshot.NewPostRepository(filepath.Join(dir, "posts.json"), commentRepo, log)
	if err != nil {
		t.Fatalf("post repository: %v", err)
	}

	d := NewDispatcher(
		"127.0.0.1:0",
		5*time.Second,
		service.NewUserService(userRepo, log),
		service.NewPostService(postRepo, commentRepo, userRepo, log),
		service.NewCommentService(commentRepo, userRepo, log),
		log,
	)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		if err := d.ListenAndServe(ctx); err != nil {
			t.Errorf("dispatcher exited with error: %v", err)
		}
	}()
	t.Cleanup(func() {
		cancel()
		<-done
	})

	deadline := time.Now().Add(5 * time.Second)
	for d.Addr() == nil {
		if time.Now().After(deadline) {
			t.Fatalf("dispatcher never bound a listener")
		}
		time.Sleep(5 * time.Millisecond)
	}
	return d.Addr().String()
}

// roundTrip opens a fresh connection, sends one raw request and decodes the
// single response.
func roundTrip(t *testing.T, addr, rawRequest string) testResponse {
	t.Helper()
	conn, err := net.DialTimeout("tcp", addr, 5*time.Second)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	if _, err := conn.Write([]byte(rawRequest)); err != nil {
		t.Fatalf("write: %v", err)
	}
	var resp testResponse
	_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	if err := json.NewDecoder(conn).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return resp
}

func send(t *testing.T, addr, action string, body map[string]any) testResponse {
	t.Helper()
	raw, err := json.Marshal(map[string]any{"action": action, "body": body})
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}
	return roundTrip(t, addr, string(raw))
}

func TestDispatcher_MalformedRequests(t *testing.T) {
	addr := startDispatcher(t)

	if resp := roundTrip(t, addr, "{not json"); resp.Status != 400 {
		t.Fatalf("undecodable payload: status %d, want 400", resp.Status)
	}
	if resp := send(t, addr, "noslash", nil); resp.Status != 400 {
		t.Fatalf("bad action format: status %d, want 400", resp.Status)
	}
	if resp := send(t, addr, "widget/create", nil); resp.Status != 400 {
		t.Fatalf("unknown resource: status %d, want 400", resp.Status)
	}
	if resp := send(t, addr, "post/frobnicate", nil); resp.Status != 400 {
		t.Fatalf("unknown verb: status %d, want 400", resp.Status)
	}
	// structurally invalid id type must become a client error, not a crash
	resp := send(t, addr, "post/get", map[string]any{"postId": map[string]any{"x": 1}})
	if resp.Status != 400 {
		t.Fatalf("invalid id type: status %d, want 400", resp.Status)
	}
	// missing required id field
	if resp := send(t, addr, "post/get", map[string]any{}); resp.Status != 400 {
		t.Fatalf("missing id: status %d, want 400", resp.Status)
	}
}

func TestDispatcher_UserLifecycle(t *testing.T) {
	addr := startDispatcher(t)

	resp := send(t, addr, "user/create", map[string]any{"userName": "alice", "password": "pw", "role": "user"})
	if resp.Status != 200 || resp.Body["result"] != true {
		t.Fatalf("create: %+v", resp)
	}
	resp = send(t, addr, "user/create", map[string]any{"userName": "alice", "password": "pw", "role": "user"})
	if resp.Status != 200 || resp.Body["result"] != false {
		t.Fatalf("duplicate create must return false: %+v", resp)
	}
	resp = send(t, addr, "user/create", map[string]any{"userName": "bob", "password": "pw", "role": "wizard"})
	if resp.Status != 400 {
		t.Fatalf("invalid role: status %d, want 400", resp.Status)
	}

	resp = send(t, addr, "user/authenticate", map[string]any{"userName": "alice", "password": "pw"})
	if resp.Status != 200 || resp.Body["result"] != true {
		t.Fatalf("authenticate: %+v", resp)
	}
	resp = send(t, addr, "user/authenticate", map[string]any{"userName": "alice", "password": "nope"})
	if resp.Status != 200 || resp.Body["result"] != false {
		t.Fatalf("authenticate with wrong password: %+v", resp)
	}

	resp = send(t, addr, "user/get", map[string]any{"userName": "alice", "password": "pw"})
	if resp.Status != 200 {
		t.Fatalf("get: %+v", resp)
	}
	user, ok := resp.Body["result"].(map[string]any)
	if !ok || user["username"] != "alice" {
		t.Fatalf("unexpected user payload: %+v", resp.Body)
	}
	if _, leaked := user["password"]; leaked {
		t.Fatalf("password digest leaked onto the wire: %+v", user)
	}
	resp = send(t, addr, "user/get", map[string]any{"userName": "alice", "password": "nope"})
	if resp.Status != 404 {
		t.Fatalf("get with wrong password: status %d, want 404", resp.Status)
	}
}

func TestDispatcher_PostAndCommentFlow(t *testing.T) {
	addr := startDispatcher(t)

	send(t, addr, "user/create", map[string]any{"userName": "alice", "password": "pw", "role": "user"})

	resp := send(t, addr, "post/create", map[string]any{"title": "hello", "userName": "alice", "content": "first post"})
	if resp.Status != 200 || resp.Body["result"] != "Post created successfully" {
		t.Fatalf("post create: %+v", resp)
	}

	// id accepted as numeric string
	resp = send(t, addr, "post/get", map[string]any{"postId": "1"})
	if resp.Status != 200 {
		t.Fatalf("post get by string id: %+v", resp)
	}
	post, ok := resp.Body["result"].(map[string]any)
	if !ok || post["title"] != "hello" || post["isEdited"] != false {
		t.Fatalf("unexpected post payload: %+v", resp.Body)
	}

	resp = send(t, addr, "post/get", map[string]any{"postId": 42})
	if resp.Status != 404 {
		t.Fatalf("absent post: status %d, want 404", resp.Status)
	}

	resp = send(t, addr, "comment/create", map[string]any{"postId": 1, "userName": "alice", "content": "a test comment"})
	if resp.Status != 200 || resp.Body["result"] != "Comment created successfully" {
		t.Fatalf("comment create: %+v", resp)
	}

	resp = send(t, addr, "post/get-comments", map[string]any{"postId": 1})
	if resp.Status != 200 {
		t.Fatalf("get-comments: %+v", resp)
	}
	comments, ok := resp.Body["result"].([]any)
	if !ok || len(comments) != 1 {
		t.Fatalf("expected one comment, got %+v", resp.Body)
	}

	resp = send(t, addr, "comment/search-contents", map[string]any{"searchPattern": "test"})
	if resp.Status != 200 {
		t.Fatalf("search-contents: %+v", resp)
	}
	result, ok := resp.Body["result"].(map[string]any)
	if !ok || result["pattern"] != "test" {
		t.Fatalf("unexpected search payload: %+v", resp.Body)
	}
	matches, ok := result["matches"].([]any)
	if !ok || len(matches) != 1 {
		t.Fatalf("expected one matching comment, got %+v", result)
	}

	resp = send(t, addr, "post/remove", map[string]any{"postId": 1, "userName": "alice"})
	if resp.Status != 200 || resp.Body["result"] != true {
		t.Fatalf("post remove: %+v", resp)
	}
	resp = send(t, addr, "comment/get-all", nil)
	if resp.Status != 200 {
		t.Fatalf("comment get-all: %+v", resp)
	}
	if left, ok := resp.Body["result"].([]any); !ok || len(left) != 0 {
		t.Fatalf("cascade left comments behind: %+v", resp.Body)
	}
}
