package engine

import (
	"context"
	"log"
	"runtime"
	"sync"
)

// Pool is a bounded-concurrency fan-out/join helper, adapted from the
// service's analytics worker pool: goroutines sized off runtime.NumCPU,
// clamped to a sane range, one per logical task rather than a persistent
// task queue — this package's fan-outs are all request-scoped (ten
// champion-descriptor resolutions, then up to five opponent pipelines), not
// a long-lived background queue.
type Pool struct {
	workers int
}

// NewPool sizes the pool the same way the teacher's worker pool does:
// runtime.NumCPU(), floored at 2, capped at 10.
func NewPool() *Pool {
	workers := runtime.NumCPU()
	if workers < 2 {
		workers = 2
	}
	if workers > 10 {
		workers = 10
	}
	return &Pool{workers: workers}
}

// Run executes every task under bounded concurrency and joins the group.
// If ctx is cancelled, or any task returns an error, Run stops launching
// new tasks at the next suspension point and returns the first error — no
// partial results are produced by the caller in that case.
func (p *Pool) Run(ctx context.Context, tasks []func(context.Context) error) error {
	if len(tasks) == 0 {
		return nil
	}

	sem := make(chan struct{}, p.workers)
	var wg sync.WaitGroup
	var once sync.Once
	var firstErr error

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	for i := range tasks {
		task := tasks[i]

		select {
		case <-runCtx.Done():
			once.Do(func() { firstErr = runCtx.Err() })
		default:
		}

		wg.Add(1)
		sem <- struct{}{}
		go func() {
			defer wg.Done()
			defer func() { <-sem }()

			select {
			case <-runCtx.Done():
				return
			default:
			}

			if err := task(runCtx); err != nil {
				once.Do(func() {
					firstErr = err
					log.Printf("⚠️  [ENGINE] task failed, cancelling group: %v", err)
				})
				cancel()
			}
		}()
	}

	wg.Wait()
	return firstErr
}
