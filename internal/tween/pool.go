package tween

import "sync"

// Pool is an unbounded stack of spare instances.
type Pool[T any] struct {
	mu    sync.Mutex
	items []T
	newFn func() T
}

// NewPool creates a pool that builds fresh instances with newFn.
func NewPool[T any](newFn func() T) *Pool[T] {
	return &Pool[T]{newFn: newFn}
}

// Acquire pops a spare instance or builds a new one.
func (p *Pool[T]) Acquire() T {
	p.mu.Lock()
	defer p.mu.Unlock()

	if n := len(p.items); n > 0 {
		item := p.items[n-1]
		var zero T
		p.items[n-1] = zero
		p.items = p.items[:n-1]
		return item
	}
	return p.newFn()
}

// Release pushes an instance back for reuse.
func (p *Pool[T]) Release(item T) {
	p.mu.Lock()
	p.items = append(p.items, item)
	p.mu.Unlock()
}

// Warm tops the pool up to n spare instances.
func (p *Pool[T]) Warm(n int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for len(p.items) < n {
		p.items = append(p.items, p.newFn())
	}
}

// Len returns the number of spare instances.
func (p *Pool[T]) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.items)
}
