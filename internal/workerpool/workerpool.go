// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package workerpool runs index ranges across a fixed set of goroutines.
//
// Example usage:
//
//	pool := workerpool.New(0)
//	defer pool.Close()
//
//	pool.ParallelFor(len(dst), func(start, end int) {
//	    half.FromFloats(dst[start:end], src[start:end])
//	})
package workerpool

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a persistent worker pool. Workers are spawned once by New and
// reused by every call until Close.
type Pool struct {
	numWorkers int
	workC      chan func()
	closeOnce  sync.Once
	closed     atomic.Bool
}

// New creates a pool with numWorkers workers, or GOMAXPROCS workers if
// numWorkers <= 0.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}
	p := &Pool{
		numWorkers: numWorkers,
		workC:      make(chan func(), numWorkers*2),
	}
	for range numWorkers {
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	for fn := range p.workC {
		fn()
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close shuts down the workers once pending work completes. It is safe to
// call more than once. A closed pool runs later calls on the caller's
// goroutine.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.workC)
	})
}

// run submits fn to workers goroutines and waits for all of them.
func (p *Pool) run(workers int, fn func()) {
	var wg sync.WaitGroup
	wg.Add(workers)
	for range workers {
		p.workC <- func() {
			defer wg.Done()
			fn()
		}
	}
	wg.Wait()
}

// ParallelFor calls fn over contiguous chunks covering [0, n), one chunk per
// worker, and blocks until all chunks are done.
func (p *Pool) ParallelFor(n int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	workers := min(p.numWorkers, n)
	if workers == 1 || p.closed.Load() {
		fn(0, n)
		return
	}

	chunk := (n + workers - 1) / workers
	var next atomic.Int64
	p.run(workers, func() {
		start := int(next.Add(1)-1) * chunk
		if start < n {
			fn(start, min(start+chunk, n))
		}
	})
}

// Batches calls fn over [0, n) in batches of batchSize, handed out to the
// workers on demand. It stops handing out batches once ctx is done or fn
// fails, and returns the first error.
func (p *Pool) Batches(ctx context.Context, n, batchSize int, fn func(start, end int) error) error {
	if batchSize <= 0 {
		batchSize = 1
	}
	numBatches := (n + batchSize - 1) / batchSize
	workers := min(p.numWorkers, numBatches)
	if p.closed.Load() {
		workers = 1
	}

	var (
		next     atomic.Int64
		errOnce  sync.Once
		firstErr error
		failed   atomic.Bool
	)
	loop := func() {
		for !failed.Load() {
			start := int(next.Add(1)-1) * batchSize
			if start >= n {
				return
			}
			err := ctx.Err()
			if err == nil {
				err = fn(start, min(start+batchSize, n))
			}
			if err != nil {
				errOnce.Do(func() { firstErr = err })
				failed.Store(true)
				return
			}
		}
	}

	if workers <= 1 {
		loop()
	} else {
		p.run(workers, loop)
	}
	return firstErr
}
