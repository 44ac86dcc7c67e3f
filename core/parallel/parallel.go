// Package parallel provides simple range-based CPU parallelism for batch
// scoring workloads.
package parallel

import (
	"runtime"
	"sync"
)

// Parallelize splits the half-open range [0, items) into one chunk per
// available CPU core and runs fn(start, end) for each chunk concurrently,
// returning once every chunk has been processed.
func Parallelize(items int, fn func(start, end int)) {
	if items == 0 {
		return
	}

	numWorkers := runtime.NumCPU()
	if numWorkers > items {
		numWorkers = items
	}

	// Ceiling division so the last chunk absorbs the remainder.
	chunkSize := (items + numWorkers - 1) / numWorkers

	var wg sync.WaitGroup

	for i := 0; i < numWorkers; i++ {
		start := i * chunkSize
		end := start + chunkSize
		if end > items {
			end = items
		}
		if start >= end {
			continue
		}

		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			fn(s, e)
		}(start, end)
	}

	wg.Wait()
}

// ParallelizeWithThreshold runs fn over [0, items) sequentially when the
// batch is at or below the threshold, and in parallel otherwise. Small
// batches are not worth the goroutine overhead.
func ParallelizeWithThreshold(items int, threshold int, fn func(start, end int)) {
	if items <= threshold {
		fn(0, items)
		return
	}

	Parallelize(items, fn)
}
