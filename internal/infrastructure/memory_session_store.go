package infrastructure

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"
)

// MemorySessionStore keeps sessions in process. Sessions do not survive a restart and
// are not shared between replicas.
type MemorySessionStore struct {
	cache *cache.Cache
	ttl   time.Duration
}

func NewMemorySessionStore(ttl time.Duration) *MemorySessionStore {
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	return &MemorySessionStore{
		cache: cache.New(ttl, 10*time.Minute),
		ttl:   ttl,
	}
}

func (s *MemorySessionStore) Create(ctx context.Context, userName string) (string, error) {
	id := newSessionID()
	s.cache.Set(sessionKeyPrefix+id, userName, cache.DefaultExpiration)
	return id, nil
}

func (s *MemorySessionStore) Get(ctx context.Context, sessionID string) (string, error) {
	v, found := s.cache.Get(sessionKeyPrefix + sessionID)
	if !found {
		return "", nil
	}
	userName, _ := v.(string)
	return userName, nil
}

func (s *MemorySessionStore) Delete(ctx context.Context, sessionID string) error {
	s.cache.Delete(sessionKeyPrefix + sessionID)
	return nil
}

func (s *MemorySessionStore) TTL() time.Duration {
	return s.ttl
}
