package memory

import (
	"time"

	"ai-procurement-be/pkg/chatflow"

	"github.com/patrickmn/go-cache"
)

// SessionRepository holds live assistant sessions between requests.
// Sessions idle for an hour are dropped; the persisted conversation in
// Postgres remains the durable record.
type SessionRepository struct {
	cache *cache.Cache
}

func NewSessionRepository() *SessionRepository {
	c := cache.New(1*time.Hour, 10*time.Minute)
	return &SessionRepository{
		cache: c,
	}
}

func (r *SessionRepository) Save(session *chatflow.Session) {
	r.cache.Set(session.ID, session, cache.DefaultExpiration)
}

func (r *SessionRepository) Get(sessionID string) (*chatflow.Session, bool) {
	if x, found := r.cache.Get(sessionID); found {
		return x.(*chatflow.Session), true
	}
	return nil, false
}

func (r *SessionRepository) Delete(sessionID string) {
	r.cache.Delete(sessionID)
}
