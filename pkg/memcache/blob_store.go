// pkg/memcache/blob_store.go
package mem

import (
	"context"
	"sync"
	"time"
)

// BlobStore caches raw source bytes by key.
type BlobStore interface {
	// Get returns the bytes for key if present and not expired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

type entry struct {
	value     []byte
	expiresAt time.Time
}

// Blobs is an in-process BlobStore. A zero ttl never expires.
type Blobs struct {
	mu   sync.RWMutex
	data map[string]entry
	now  func() time.Time
}

func NewBlobs() *Blobs {
	return &Blobs{
		data: make(map[string]entry),
		now:  time.Now,
	}
}

func (s *Blobs) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	e := entry{value: append([]byte(nil), value...)}
	if ttl > 0 {
		e.expiresAt = s.now().Add(ttl)
	}
	s.data[key] = e
	return nil
}

func (s *Blobs) Get(_ context.Context, key string) ([]byte, bool, error) {
	s.mu.RLock()
	e, ok := s.data[key]
	s.mu.RUnlock()
	if !ok {
		return nil, false, nil
	}
	if !e.expiresAt.IsZero() && s.now().After(e.expiresAt) {
		s.mu.Lock()
		if cur, ok := s.data[key]; ok && cur.expiresAt.Equal(e.expiresAt) {
			delete(s.data, key) // cleanup expired
		}
		s.mu.Unlock()
		return nil, false, nil
	}
	return append([]byte(nil), e.value...), true, nil
}
