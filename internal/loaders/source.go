// Package loaders implements dataset.RecordLoader over files, HTTP and
// Postgres.
package loaders

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	mem "thaigeo/pkg/memcache"
)

// Source fetches a named object such as "json/provinces.json".
type Source interface {
	Fetch(ctx context.Context, name string) ([]byte, error)
	String() string
}

// DirSource reads objects from a dataset checkout on disk.
type DirSource struct {
	Root string
}

func NewDirSource(root string) *DirSource {
	return &DirSource{Root: root}
}

func (s *DirSource) Fetch(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return os.ReadFile(filepath.Join(s.Root, filepath.FromSlash(name)))
}

func (s *DirSource) String() string {
	return "dir:" + s.Root
}

// CachedSource serves objects from a BlobStore and fills it from the
// wrapped Source on a miss. Cache failures are logged and bypassed.
type CachedSource struct {
	source Source
	store  mem.BlobStore
	ttl    time.Duration
	logger *zap.Logger
}

func NewCachedSource(source Source, store mem.BlobStore, ttl time.Duration, logger *zap.Logger) *CachedSource {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CachedSource{source: source, store: store, ttl: ttl, logger: logger}
}

func (s *CachedSource) key(name string) string {
	return s.source.String() + "|" + name
}

func (s *CachedSource) Fetch(ctx context.Context, name string) ([]byte, error) {
	key := s.key(name)
	b, ok, err := s.store.Get(ctx, key)
	switch {
	case err != nil:
		s.logger.Warn("blob cache read failed", zap.String("key", key), zap.Error(err))
	case ok:
		s.logger.Debug("blob cache hit", zap.String("key", key))
		return b, nil
	}

	b, err = s.source.Fetch(ctx, name)
	if err != nil {
		return nil, err
	}
	if err := s.store.Set(ctx, key, b, s.ttl); err != nil {
		s.logger.Warn("blob cache write failed", zap.String("key", key), zap.Error(err))
	}
	return b, nil
}

func (s *CachedSource) String() string {
	return fmt.Sprintf("cached(%s)", s.source)
}
