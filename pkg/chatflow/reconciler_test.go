package chatflow

import (
	"context"
	"errors"
	"testing"
	"time"
)

func testSession() *Session {
	return NewSession("user-1", time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC))
}

func countRole(msgs []Message, role Role) int {
	n := 0
	for _, m := range msgs {
		if m.Role == role {
			n++
		}
	}
	return n
}

func TestSendSuccess(t *testing.T) {
	sess := testSession()
	r := NewReconciler()

	responder := ResponderFunc(func(ctx context.Context, sessionID string, history []Message) (string, error) {
		if len(history) != 1 || history[0].Role != RoleUser {
			t.Errorf("responder history = %+v, want single user message", history)
		}
		return "The supplier contract expires in June.", nil
	})

	turn, err := r.Send(context.Background(), sess, "  When does the contract expire?  ", responder)
	if err != nil {
		t.Fatalf("Send failed: %v", err)
	}
	if turn.State != StateResolved {
		t.Errorf("state = %s, want resolved", turn.State)
	}

	msgs := sess.Snapshot()
	if len(msgs) != 2 {
		t.Fatalf("message count = %d, want 2", len(msgs))
	}
	if msgs[0].Role != RoleUser || msgs[0].Content != "When does the contract expire?" {
		t.Errorf("user message = %+v, want trimmed content", msgs[0])
	}
	if msgs[1].Role != RoleAssistant || msgs[1].Content == "" || msgs[1].Streaming {
		t.Errorf("assistant message not reconciled: %+v", msgs[1])
	}
	if sess.Loading {
		t.Error("loading flag should clear after resolution")
	}
	if sess.Error != "" {
		t.Errorf("unexpected error: %q", sess.Error)
	}
}

func TestSendOptimisticAppendBeforeCall(t *testing.T) {
	sess := testSession()
	r := NewReconciler()

	// Both bubbles must be visible before the responder runs.
	responder := ResponderFunc(func(ctx context.Context, sessionID string, history []Message) (string, error) {
		msgs := sess.Snapshot()
		if len(msgs) != 2 {
			t.Errorf("during call: %d messages, want user + placeholder", len(msgs))
		}
		if !msgs[1].Streaming || msgs[1].Content != "" {
			t.Errorf("placeholder not streaming/empty: %+v", msgs[1])
		}
		if !sess.Loading {
			t.Error("loading flag should be set before the call")
		}
		return "ok", nil
	})

	if _, err := r.Send(context.Background(), sess, "hello", responder); err != nil {
		t.Fatalf("Send failed: %v", err)
	}
}

func TestSendFailureAsymmetricRollback(t *testing.T) {
	sess := testSession()
	r := NewReconciler()

	responder := ResponderFunc(func(ctx context.Context, sessionID string, history []Message) (string, error) {
		return "", errors.New("upstream returned status 500")
	})

	turn, err := r.Send(context.Background(), sess, "summarize my invoices", responder)
	if err == nil {
		t.Fatal("Send should surface the responder error")
	}
	if turn.State != StateFailed {
		t.Errorf("state = %s, want failed", turn.State)
	}

	msgs := sess.Snapshot()
	// User message survives, placeholder is gone entirely.
	if countRole(msgs, RoleUser) != 1 {
		t.Errorf("user messages = %d, want 1", countRole(msgs, RoleUser))
	}
	if countRole(msgs, RoleAssistant) != 0 {
		t.Errorf("assistant messages = %d, want 0", countRole(msgs, RoleAssistant))
	}
	if sess.Loading {
		t.Error("loading must clear on failure")
	}
	if sess.Error == "" {
		t.Error("session error must be set on failure")
	}
}

func TestSendEmptyContentNoOp(t *testing.T) {
	sess := testSession()
	r := NewReconciler()
	called := false

	responder := ResponderFunc(func(ctx context.Context, sessionID string, history []Message) (string, error) {
		called = true
		return "", nil
	})

	for _, input := range []string{"", "   ", "\n\t "} {
		turn, err := r.Send(context.Background(), sess, input, responder)
		if turn != nil || err != nil {
			t.Errorf("Send(%q) = (%v, %v), want silent no-op", input, turn, err)
		}
	}

	if called {
		t.Error("responder must not be invoked for empty input")
	}
	if len(sess.Snapshot()) != 0 || sess.Loading || sess.Error != "" {
		t.Error("empty send must produce zero state change")
	}
}

func TestSendNeverLeavesEmptyPlaceholder(t *testing.T) {
	sess := testSession()
	r := NewReconciler()

	fail := ResponderFunc(func(ctx context.Context, sessionID string, history []Message) (string, error) {
		return "", errors.New("timeout")
	})
	ok := ResponderFunc(func(ctx context.Context, sessionID string, history []Message) (string, error) {
		return "done", nil
	})

	r.Send(context.Background(), sess, "first", fail)
	r.Send(context.Background(), sess, "second", ok)

	for _, m := range sess.Snapshot() {
		if m.Role == RoleAssistant && (m.Streaming || m.Content == "") {
			t.Errorf("leftover placeholder: %+v", m)
		}
	}
}

func TestSendStaleResponseDiscarded(t *testing.T) {
	sess := testSession()
	r := NewReconciler()

	inner := ResponderFunc(func(ctx context.Context, sessionID string, history []Message) (string, error) {
		return "newer reply", nil
	})

	var innerTurn *Turn
	// The outer responder issues a second send before returning, so its own
	// reply arrives stale.
	outer := ResponderFunc(func(ctx context.Context, sessionID string, history []Message) (string, error) {
		innerTurn, _ = r.Send(ctx, sess, "second question", inner)
		return "stale reply", nil
	})

	outerTurn, err := r.Send(context.Background(), sess, "first question", outer)
	if err != nil {
		t.Fatalf("Send failed: %v", err)
	}
	if outerTurn.State != StateSuperseded {
		t.Errorf("outer state = %s, want superseded", outerTurn.State)
	}
	if innerTurn == nil || innerTurn.State != StateResolved {
		t.Fatalf("inner turn = %+v, want resolved", innerTurn)
	}

	msgs := sess.Snapshot()
	if countRole(msgs, RoleUser) != 2 {
		t.Errorf("user messages = %d, want 2", countRole(msgs, RoleUser))
	}
	if countRole(msgs, RoleAssistant) != 1 {
		t.Fatalf("assistant messages = %d, want exactly the newer one", countRole(msgs, RoleAssistant))
	}
	for _, m := range msgs {
		if m.Role == RoleAssistant && m.Content != "newer reply" {
			t.Errorf("surviving reply = %q, want newer reply", m.Content)
		}
	}
	if sess.Loading {
		t.Error("loading should be cleared by the winning turn")
	}
}

func TestClearError(t *testing.T) {
	sess := testSession()
	r := NewReconciler()

	fail := ResponderFunc(func(ctx context.Context, sessionID string, history []Message) (string, error) {
		return "", errors.New("boom")
	})
	r.Send(context.Background(), sess, "hi", fail)

	if sess.Error == "" {
		t.Fatal("precondition: error should be set")
	}
	before := len(sess.Snapshot())

	r.ClearError(sess)

	if sess.Error != "" {
		t.Error("ClearError should clear the error field")
	}
	if len(sess.Snapshot()) != before {
		t.Error("ClearError must not touch messages")
	}
}

func TestSessionTitleFromTimestamp(t *testing.T) {
	ts := time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC)
	title := SessionTitle(ts)
	if title != "Conversation Mar 1, 2024 10:30" {
		t.Errorf("title = %q", title)
	}
}
