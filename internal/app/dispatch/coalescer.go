package dispatch

import (
	"context"
	"sync"
)

// Coalescer merges bursts of same-key tasks into one run of the latest.
type Coalescer struct {
	mu        sync.Mutex
	pending   map[string]bool
	callbacks map[string]Task
	post      func(key string, fn Task) bool
	destroyed bool
}

// NewCoalescer creates a coalescer handing merged tasks to post. post
// reports whether the task was accepted.
func NewCoalescer(post func(key string, fn Task) bool) *Coalescer {
	if post == nil {
		panic("dispatch.NewCoalescer: post function cannot be nil")
	}

	return &Coalescer{
		pending:   make(map[string]bool),
		callbacks: make(map[string]Task),
		post:      post,
	}
}

func (c *Coalescer) Post(key string, fn Task) {
	if fn == nil || key == "" {
		return
	}

	c.mu.Lock()
	if c.destroyed {
		c.mu.Unlock()
		return
	}
	c.callbacks[key] = fn
	if c.pending[key] {
		c.mu.Unlock()
		return
	}
	c.pending[key] = true
	post := c.post
	c.mu.Unlock()

	accepted := post(key, func(ctx context.Context) {
		c.mu.Lock()
		if c.destroyed {
			delete(c.pending, key)
			delete(c.callbacks, key)
			c.mu.Unlock()
			return
		}
		fn := c.callbacks[key]
		delete(c.pending, key)
		delete(c.callbacks, key)
		c.mu.Unlock()

		if fn != nil {
			fn(ctx)
		}
	})
	if !accepted {
		c.mu.Lock()
		delete(c.pending, key)
		delete(c.callbacks, key)
		c.mu.Unlock()
	}
}

func (c *Coalescer) Destroy() {
	c.mu.Lock()
	c.destroyed = true
	c.pending = map[string]bool{}
	c.callbacks = map[string]Task{}
	c.mu.Unlock()
}
