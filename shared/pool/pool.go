package pool

import (
	"context"
	"runtime"
)

// Pool runs CPU-bound work on a fixed set of workers so a heavy
// transformation cannot stall request intake. Submissions past the queue
// depth block the caller rather than being rejected.
type Pool struct {
	jobs chan job
}

type job struct {
	ctx  context.Context
	run  func()
	done chan struct{}
}

func MustPool(workers, queueDepth int) *Pool {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if queueDepth <= 0 {
		queueDepth = workers * 2
	}

	p := &Pool{jobs: make(chan job, queueDepth)}
	for i := 0; i < workers; i++ {
		go p.worker()
	}

	return p
}

func (p *Pool) worker() {
	for j := range p.jobs {
		select {
		case <-j.ctx.Done():
			// caller already gave up, drop the job unexecuted
			continue
		default:
		}

		j.run()
		close(j.done)
	}
}

// Do queues run and waits for it to complete. It returns the context error
// if the caller cancels before completion; a job cancelled before pickup is
// never executed, one cancelled mid-run finishes and its result is discarded.
func (p *Pool) Do(ctx context.Context, run func()) error {
	j := job{ctx: ctx, run: run, done: make(chan struct{})}

	select {
	case p.jobs <- j:
	case <-ctx.Done():
		return ctx.Err()
	}

	select {
	case <-j.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (p *Pool) Close() {
	close(p.jobs)
}
