// Package worker spreads perft subtrees over a fixed set of goroutines.
package worker

import (
	"sync"
	"sync/atomic"

	"github.com/camchamb/custom-chess-server/internal/chess"
	"github.com/camchamb/custom-chess-server/internal/engine"
)

// WorkItem is one subtree to count: the position after Move, searched to
// Depth further plies. Each item owns its Game.
type WorkItem struct {
	Game  *engine.Game
	Move  chess.Move
	Depth int
	Index int // Position of Move in the root move list
}

// Result is the leaf count below one work item.
type Result struct {
	Move  chess.Move
	Nodes uint64
	Index int
}

// CountFunc counts the leaves of one work item.
type CountFunc func(item WorkItem) Result

// Pool runs a CountFunc over submitted items on a fixed number of
// goroutines. Once stopped, queued items are drained without being counted.
type Pool struct {
	workers int
	buffer  int
	items   chan WorkItem
	results chan Result
	count   CountFunc
	wg      sync.WaitGroup
	stopped atomic.Bool
}

// Option configures a Pool.
type Option func(*Pool)

// WithWorkers sets the number of goroutines. Values below one are ignored.
func WithWorkers(n int) Option {
	return func(p *Pool) {
		if n >= 1 {
			p.workers = n
		}
	}
}

// WithBufferSize sets the capacity of the item and result queues.
func WithBufferSize(size int) Option {
	return func(p *Pool) {
		if size >= 1 {
			p.buffer = size
		}
	}
}

// NewPool creates a pool around count. It defaults to one worker and a
// queue of ten items.
func NewPool(count CountFunc, opts ...Option) *Pool {
	p := &Pool{workers: 1, buffer: 10, count: count}
	for _, opt := range opts {
		opt(p)
	}
	p.items = make(chan WorkItem, p.buffer)
	p.results = make(chan Result, p.buffer)
	return p
}

// Start launches the worker goroutines.
func (p *Pool) Start() {
	p.wg.Add(p.workers)
	for i := 0; i < p.workers; i++ {
		go p.run()
	}
}

func (p *Pool) run() {
	defer p.wg.Done()
	for item := range p.items {
		if p.stopped.Load() {
			continue
		}
		p.results <- p.count(item)
	}
}

// Submit queues an item, blocking while the queue is full. It reports false
// without queueing once the pool has been stopped.
func (p *Pool) Submit(item WorkItem) bool {
	if p.stopped.Load() {
		return false
	}
	p.items <- item
	return true
}

// Stop makes the workers skip every item not yet started.
func (p *Pool) Stop() {
	p.stopped.Store(true)
}

// Stopped reports whether Stop has been called.
func (p *Pool) Stopped() bool {
	return p.stopped.Load()
}

// Close ends submission, waits for the workers and then closes Results.
func (p *Pool) Close() {
	close(p.items)
	p.wg.Wait()
	close(p.results)
}

// Results returns the channel counted items arrive on, in completion order.
func (p *Pool) Results() <-chan Result {
	return p.results
}
