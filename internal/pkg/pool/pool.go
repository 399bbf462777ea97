package pool

import (
	"sync"
	"sync/atomic"
)

// Pool runs submitted jobs on a fixed set of workers over a bounded queue.
type Pool struct {
	jobs   chan func()
	wg     sync.WaitGroup
	mu     sync.RWMutex
	closed atomic.Bool
}

// New starts n workers with room for queue pending jobs.
func New(n, queue int) *Pool {
	if n < 1 {
		n = 1
	}
	if queue < 0 {
		queue = 0
	}
	p := &Pool{
		jobs: make(chan func(), queue),
	}
	p.wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer p.wg.Done()
			for f := range p.jobs {
				if f != nil {
					f()
				}
			}
		}()
	}
	return p
}

// TrySubmit enqueues f without blocking. It reports false when the queue
// is full or the pool is closed.
func (p *Pool) TrySubmit(f func()) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed.Load() {
		return false
	}
	select {
	case p.jobs <- f:
		return true
	default:
		return false
	}
}

// Close stops accepting jobs and waits for queued ones to finish.
func (p *Pool) Close() {
	p.mu.Lock()
	if p.closed.Swap(true) {
		p.mu.Unlock()
		return
	}
	close(p.jobs)
	p.mu.Unlock()
	p.wg.Wait()
}

func (p *Pool) Pending() int { return len(p.jobs) }
