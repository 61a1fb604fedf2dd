// Package mainloop schedules work onto the single UI loop.
package mainloop

import "sync"

// Coalescer merges bursts of same-key tasks posted to the UI loop. A key
// queued but not yet run is not queued again; the newest callback for it
// wins.
type Coalescer struct {
	mu        sync.Mutex
	pending   map[string]func()
	post      func(func())
	destroyed bool
}

// NewCoalescer creates a Coalescer that hands tasks to post, which must
// run them on the UI loop.
func NewCoalescer(post func(func())) *Coalescer {
	if post == nil {
		panic("mainloop.NewCoalescer: post function cannot be nil")
	}
	return &Coalescer{
		pending: make(map[string]func()),
		post:    post,
	}
}

// Post queues fn under key unless a task for key is already waiting, in
// which case fn replaces it.
func (c *Coalescer) Post(key string, fn func()) {
	if fn == nil || key == "" {
		return
	}

	c.mu.Lock()
	if c.destroyed {
		c.mu.Unlock()
		return
	}
	_, queued := c.pending[key]
	c.pending[key] = fn
	c.mu.Unlock()
	if queued {
		return
	}

	c.post(func() { c.run(key) })
}

func (c *Coalescer) run(key string) {
	c.mu.Lock()
	fn := c.pending[key]
	delete(c.pending, key)
	destroyed := c.destroyed
	c.mu.Unlock()

	if !destroyed && fn != nil {
		fn()
	}
}

// Pending reports whether a task for key is waiting to run.
func (c *Coalescer) Pending(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.pending[key]
	return ok
}

// Destroy drops queued work and ignores later posts.
func (c *Coalescer) Destroy() {
	c.mu.Lock()
	c.destroyed = true
	clear(c.pending)
	c.mu.Unlock()
}
