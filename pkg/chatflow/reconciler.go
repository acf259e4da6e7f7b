package chatflow

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Responder produces the assistant reply for a conversation history.
// Implemented by the n8n webhook client in production and by fakes in tests.
type Responder interface {
	Respond(ctx context.Context, sessionID string, history []Message) (string, error)
}

// ResponderFunc adapts a plain function to the Responder interface.
type ResponderFunc func(ctx context.Context, sessionID string, history []Message) (string, error)

func (f ResponderFunc) Respond(ctx context.Context, sessionID string, history []Message) (string, error) {
	return f(ctx, sessionID, history)
}

// Reconciler drives the optimistic send flow: append the user message and
// an empty assistant placeholder before any network activity, then either
// fill the placeholder in place (success) or remove it and record the
// session error (failure). The user message is never rolled back: a failed
// turn leaves it in history without a reply.
type Reconciler struct {
	now   func() time.Time
	newID func() string
}

type Option func(*Reconciler)

// WithClock overrides the time source, for tests.
func WithClock(now func() time.Time) Option {
	return func(r *Reconciler) { r.now = now }
}

// WithIDGenerator overrides message id generation, for tests.
func WithIDGenerator(gen func() string) Option {
	return func(r *Reconciler) { r.newID = gen }
}

func NewReconciler(opts ...Option) *Reconciler {
	r := &Reconciler{
		now:   time.Now,
		newID: func() string { return uuid.New().String() },
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Send runs one turn of the state machine. Empty or whitespace-only
// content is a silent no-op: it returns (nil, nil) without touching the
// session. Overlapping sends are not queued; when a newer send finishes
// first, the older response is discarded and its placeholder removed
// (turn state Superseded).
func (r *Reconciler) Send(ctx context.Context, sess *Session, content string, responder Responder) (*Turn, error) {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return nil, nil
	}

	now := r.now()
	turn := &Turn{State: StateIdle}

	sess.mu.Lock()
	turn.Seq = sess.nextSeq()

	userMsg := Message{
		ID:        r.newID(),
		Role:      RoleUser,
		Content:   trimmed,
		Timestamp: now,
	}
	sess.appendMessage(userMsg)
	turn.UserMessageID = userMsg.ID
	turn.State = StateUserAppended

	placeholder := Message{
		ID:        r.newID(),
		Role:      RoleAssistant,
		Content:   "",
		Timestamp: now,
		Streaming: true,
	}
	sess.appendMessage(placeholder)
	turn.PlaceholderID = placeholder.ID
	turn.State = StatePlaceholderAppended

	sess.Loading = true
	sess.Error = ""
	sess.UpdatedAt = now

	// History handed to the responder excludes the placeholder.
	history := make([]Message, 0, len(sess.Messages)-1)
	for _, m := range sess.Messages {
		if m.ID != placeholder.ID {
			history = append(history, m)
		}
	}
	sess.mu.Unlock()

	turn.State = StateAwaiting
	reply, err := responder.Respond(ctx, sess.ID, history)

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.seq != turn.Seq {
		// A newer send won the race. Drop this turn's placeholder without
		// touching Loading or Error, which now belong to the newer turn.
		sess.removeMessage(placeholder.ID)
		turn.State = StateSuperseded
		return turn, nil
	}

	sess.Loading = false
	sess.UpdatedAt = r.now()

	if err != nil {
		sess.removeMessage(placeholder.ID)
		sess.Error = err.Error()
		turn.State = StateFailed
		turn.Err = err
		return turn, err
	}

	if msg := sess.findMessage(placeholder.ID); msg != nil {
		msg.Content = reply
		msg.Streaming = false
	}
	turn.State = StateResolved
	return turn, nil
}

// ClearError clears the session-level error only; it does not retry.
func (r *Reconciler) ClearError(sess *Session) {
	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.Error = ""
}
