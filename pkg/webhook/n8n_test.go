package webhook

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"ai-procurement-be/pkg/chatflow"
)

func userMessage(content string) []chatflow.Message {
	return []chatflow.Message{{Role: chatflow.RoleUser, Content: content}}
}

func TestRespondSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"output": "Here is your answer."}`))
	}))
	defer srv.Close()

	client := NewN8NClient(srv.URL)
	reply, err := client.Respond(context.Background(), "sess-1", userMessage("hello"))
	if err != nil {
		t.Fatalf("Respond failed: %v", err)
	}
	if reply != "Here is your answer." {
		t.Errorf("reply = %q", reply)
	}
}

func TestRespondArrayShape(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"output": "from array"}]`))
	}))
	defer srv.Close()

	client := NewN8NClient(srv.URL)
	reply, err := client.Respond(context.Background(), "sess-1", userMessage("hello"))
	if err != nil {
		t.Fatalf("Respond failed: %v", err)
	}
	if reply != "from array" {
		t.Errorf("reply = %q", reply)
	}
}

func TestRespondUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "workflow exploded", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewN8NClient(srv.URL)
	_, err := client.Respond(context.Background(), "sess-1", userMessage("hello"))
	if !errors.Is(err, ErrUpstream) {
		t.Errorf("err = %v, want ErrUpstream", err)
	}
}

func TestForwardTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	client := NewN8NClient(srv.URL)
	client.Timeout = 20 * time.Millisecond

	_, _, err := client.Forward(context.Background(), []byte(`{}`))
	if !errors.Is(err, ErrTimeout) {
		t.Errorf("err = %v, want ErrTimeout", err)
	}
}

func TestForwardUnreachable(t *testing.T) {
	// Closed server: connection refused.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	client := NewN8NClient(url)
	_, _, err := client.Forward(context.Background(), []byte(`{}`))
	if !errors.Is(err, ErrUnreachable) {
		t.Errorf("err = %v, want ErrUnreachable", err)
	}
}

func TestForwardPassesStatusAndBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"queued": true}`))
	}))
	defer srv.Close()

	client := NewN8NClient(srv.URL)
	body, status, err := client.Forward(context.Background(), []byte(`{"action":"run"}`))
	if err != nil {
		t.Fatalf("Forward failed: %v", err)
	}
	if status != http.StatusCreated {
		t.Errorf("status = %d", status)
	}
	if string(body) != `{"queued": true}` {
		t.Errorf("body = %s", body)
	}
}

func TestParseReplyUnrecognized(t *testing.T) {
	if _, err := parseReply([]byte(`{"weird": 1}`)); err == nil {
		t.Error("unrecognized shape should error")
	}
}
