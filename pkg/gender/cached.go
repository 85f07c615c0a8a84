package gender

import (
	"context"
	"sync"

	"golang.org/x/sync/singleflight"
)

// Cached memoizes results of another Classifier. Concurrent calls for the
// same name share one call to the wrapped classifier, a cancelled caller
// returns its ctx error without affecting the others. Failed calls are not
// remembered. It is safe for concurrent use.
type Cached struct {
	cls   Classifier
	group singleflight.Group

	mu    sync.RWMutex
	cache map[string]Gender
}

// NewCached wraps a classifier with a cache.
func NewCached(cls Classifier) *Cached {
	return &Cached{
		cls:   cls,
		cache: make(map[string]Gender),
	}
}

// Classify returns a remembered result or calls the wrapped classifier.
func (c *Cached) Classify(ctx context.Context, name string) (Gender, error) {
	c.mu.RLock()
	g, ok := c.cache[name]
	c.mu.RUnlock()
	if ok {
		return g, nil
	}

	// The shared call must not depend on cancellation of the caller that
	// started it, every caller stops waiting on its own ctx instead.
	ch := c.group.DoChan(name, func() (any, error) {
		g, err := c.cls.Classify(context.WithoutCancel(ctx), name)
		if err != nil {
			return Unknown, err
		}
		c.mu.Lock()
		c.cache[name] = g
		c.mu.Unlock()
		return g, nil
	})

	select {
	case <-ctx.Done():
		return Unknown, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return Unknown, res.Err
		}
		return res.Val.(Gender), nil
	}
}

// Len returns the number of remembered names.
func (c *Cached) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.cache)
}
