// Package worker runs independent jobs across a bounded goroutine pool.
package worker

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"
)

// Outcome pairs an input with whatever processing it produced.
type Outcome[T any, R any] struct {
	Input  T
	Result R
	Err    error
}

// Func processes a single input.
type Func[T any, R any] func(ctx context.Context, input T) (R, error)

// Pool fans inputs out over a fixed number of workers.
type Pool[T any, R any] struct {
	workers int
	process Func[T, R]
}

// NewPool creates a pool with the given concurrency.
func NewPool[T any, R any](workers int, fn Func[T, R]) *Pool[T, R] {
	if workers < 1 {
		workers = 1
	}
	return &Pool[T, R]{
		workers: workers,
		process: fn,
	}
}

// Execute runs every input through the pool and returns outcomes in input
// order. Cancelling ctx stops the workers; outcomes for unprocessed inputs
// are left zero.
func (p *Pool[T, R]) Execute(ctx context.Context, inputs []T) []Outcome[T, R] {
	outcomes := make([]Outcome[T, R], len(inputs))
	inputCh := make(chan int, len(inputs))

	var wg sync.WaitGroup
	for w := 0; w < p.workers; w++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case idx, ok := <-inputCh:
					if !ok {
						return
					}
					result, err := p.process(ctx, inputs[idx])
					outcomes[idx] = Outcome[T, R]{
						Input:  inputs[idx],
						Result: result,
						Err:    err,
					}
					if err != nil {
						log.Error().Err(err).Int("worker", workerID).Int("index", idx).Msg("Task failed")
					}
				}
			}
		}(w)
	}

	// The channel holds every index, so sends never block.
	for i := range inputs {
		inputCh <- i
	}
	close(inputCh)

	wg.Wait()
	return outcomes
}
