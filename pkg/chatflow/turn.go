package chatflow

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one chat bubble. Streaming marks an in-flight assistant
// placeholder; a reconciled message never has it set.
type Message struct {
	ID        string    `json:"id"`
	Role      Role      `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
	Streaming bool      `json:"is_streaming,omitempty"`
}

// TurnState tracks the lifecycle of a single send.
type TurnState string

const (
	StateIdle                TurnState = "idle"
	StateUserAppended        TurnState = "user_appended"
	StatePlaceholderAppended TurnState = "placeholder_appended"
	StateAwaiting            TurnState = "awaiting_response"
	StateResolved            TurnState = "resolved"
	StateFailed              TurnState = "failed"
	// StateSuperseded means a newer send finished first and this turn's
	// response was discarded (last write wins).
	StateSuperseded TurnState = "superseded"
)

// Turn is the record of one sendMessage call.
type Turn struct {
	Seq           uint64
	State         TurnState
	UserMessageID string
	PlaceholderID string
	Err           error
}

// Session is the live, in-memory conversation state. The mutex guards
// mutations; it is not held across network calls.
type Session struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Title     string    `json:"title"`
	Messages  []Message `json:"messages"`
	Error     string    `json:"error,omitempty"`
	Loading   bool      `json:"is_loading"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	mu  sync.Mutex
	seq uint64
}

// NewSession creates a session titled after the moment it was created,
// matching the behavior of creating a conversation on first send.
func NewSession(userID string, now time.Time) *Session {
	return &Session{
		ID:        uuid.New().String(),
		UserID:    userID,
		Title:     SessionTitle(now),
		Messages:  []Message{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// SessionTitle derives the default conversation title from a timestamp.
func SessionTitle(t time.Time) string {
	return fmt.Sprintf("Conversation %s", t.Format("Jan 2, 2006 15:04"))
}

// Snapshot returns a copy of the message list safe to hand to callers.
func (s *Session) Snapshot() []Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Message, len(s.Messages))
	copy(out, s.Messages)
	return out
}

func (s *Session) nextSeq() uint64 {
	s.seq++
	return s.seq
}

func (s *Session) appendMessage(m Message) {
	s.Messages = append(s.Messages, m)
}

func (s *Session) findMessage(id string) *Message {
	for i := range s.Messages {
		if s.Messages[i].ID == id {
			return &s.Messages[i]
		}
	}
	return nil
}

func (s *Session) removeMessage(id string) {
	for i := range s.Messages {
		if s.Messages[i].ID == id {
			s.Messages = append(s.Messages[:i], s.Messages[i+1:]...)
			return
		}
	}
}
