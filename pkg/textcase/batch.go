package textcase

import (
	"context"
	"sync"
)

// DefaultWorkers is used by ConvertLines for non-positive worker counts
const DefaultWorkers = 4

type lineResult struct {
	index int
	value string
}

// ConvertLines renders every line in format using up to workers goroutines
// that share c. The result keeps the input order. ConvertLines stops handing
// out lines once ctx is done and returns ctx.Err() with the partial result.
func (c *Converter) ConvertLines(ctx context.Context, format Format, lines []string, workers int) ([]string, error) {
	out := make([]string, len(lines))
	if len(lines) == 0 {
		return out, ctx.Err()
	}
	if workers <= 0 {
		workers = DefaultWorkers
	}
	if workers > len(lines) {
		workers = len(lines)
	}

	jobs := make(chan int)
	results := make(chan lineResult, len(lines))

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				results <- lineResult{index: idx, value: c.Convert(format, lines[idx])}
			}
		}()
	}

	// Close results once every worker has drained the job queue
	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		defer close(jobs)
		for idx := range lines {
			select {
			case <-ctx.Done():
				return
			case jobs <- idx:
			}
		}
	}()

	for r := range results {
		out[r.index] = r.value
	}

	return out, ctx.Err()
}
