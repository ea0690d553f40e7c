package dataset

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// cell holds one lazily loaded collection. A successful load is kept for
// the lifetime of the cell; concurrent first callers share a single load.
// Failed loads are not kept, so a later call starts a new load.
type cell[T any] struct {
	name   Collection
	load   func(ctx context.Context) ([]T, error)
	logger *zap.Logger

	mu     sync.RWMutex
	loaded bool
	items  []T

	flight singleflight.Group
}

func newCell[T any](name Collection, logger *zap.Logger, load func(ctx context.Context) ([]T, error)) *cell[T] {
	return &cell[T]{name: name, load: load, logger: logger}
}

func (c *cell[T]) cached() ([]T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.items, c.loaded
}

// get returns the shared backing slice; callers must not modify it.
// The load runs detached from the caller that started it, so cancelling one
// caller ends only that caller's wait.
func (c *cell[T]) get(ctx context.Context) ([]T, error) {
	if items, ok := c.cached(); ok {
		return items, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ch := c.flight.DoChan(string(c.name), func() (interface{}, error) {
		// A flight that finished between cached() and DoChan already stored the result.
		if items, ok := c.cached(); ok {
			return items, nil
		}

		start := time.Now()
		items, err := c.load(context.WithoutCancel(ctx))
		if err != nil {
			c.logger.Warn("collection load failed",
				zap.String("collection", string(c.name)),
				zap.Error(err))
			return nil, err
		}
		if items == nil {
			items = []T{}
		}

		c.mu.Lock()
		c.items, c.loaded = items, true
		c.mu.Unlock()

		c.logger.Info("collection loaded",
			zap.String("collection", string(c.name)),
			zap.Int("count", len(items)),
			zap.Duration("elapsed", time.Since(start)))
		return items, nil
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.([]T), nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
