// Package parallel provides the bounded worker pool shared by the latsq
// search packages. Search branches are CPU-bound and independent, so the
// pool offers plain task submission with backpressure and cooperative
// shutdown; callers own result collection and ordering.
package parallel

import (
	"context"
	"errors"
	"runtime"
	"sync"
)

// ErrPoolShutdown is returned when submitting to a pool that has been shut down.
var ErrPoolShutdown = errors.New("parallel: pool has been shut down")

// Pool manages a fixed set of worker goroutines. Submission blocks when
// all workers are busy and the buffer is full, which bounds memory during
// large search fan-outs.
type Pool struct {
	workers  int
	tasks    chan func()
	wg       sync.WaitGroup
	shutdown chan struct{}
	once     sync.Once
}

// NewPool creates a pool with the given number of workers.
// Non-positive worker counts default to runtime.NumCPU().
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	p := &Pool{
		workers:  workers,
		tasks:    make(chan func(), workers*2),
		shutdown: make(chan struct{}),
	}

	for i := 0; i < workers; i++ {
		p.wg.Add(1)
		go p.worker()
	}

	return p
}

// Workers returns the pool's worker count.
func (p *Pool) Workers() int { return p.workers }

func (p *Pool) worker() {
	defer p.wg.Done()

	for {
		select {
		case task := <-p.tasks:
			if task != nil {
				task()
			}
		case <-p.shutdown:
			return
		}
	}
}

// Submit queues task for execution, blocking while the pool is saturated.
// It returns ctx.Err() if ctx is cancelled first, or ErrPoolShutdown when
// the pool is no longer accepting work.
func (p *Pool) Submit(ctx context.Context, task func()) error {
	select {
	case <-p.shutdown:
		return ErrPoolShutdown
	default:
	}

	select {
	case p.tasks <- task:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-p.shutdown:
		return ErrPoolShutdown
	}
}

// Shutdown stops the workers after in-flight tasks finish. Safe to call
// more than once.
func (p *Pool) Shutdown() {
	p.once.Do(func() {
		close(p.shutdown)
		p.wg.Wait()
	})
}

// ForEach runs fn(i) for i in [0, n) on a transient pool of the given
// width, waiting for all iterations. fn must handle its own cancellation;
// ForEach stops submitting once ctx is done and returns ctx.Err().
// With width ≤ 1 the loop runs inline, keeping single-threaded callers
// allocation-free and deterministic.
func ForEach(ctx context.Context, width, n int, fn func(i int)) error {
	if width <= 1 {
		for i := 0; i < n; i++ {
			if err := ctx.Err(); err != nil {
				return err
			}
			fn(i)
		}

		return nil
	}

	pool := NewPool(width)
	defer pool.Shutdown()

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		i := i
		wg.Add(1)
		if err := pool.Submit(ctx, func() {
			defer wg.Done()
			fn(i)
		}); err != nil {
			wg.Done()
			wg.Wait()

			return err
		}
	}
	wg.Wait()

	return nil
}
