package singlish

import (
	"context"
	"runtime"
	"sync"
	"time"
)

// ConvertWithContext converts one input and delivers it on a channel,
// so callers can select against cancellation. The channel is closed
// either way.
func (engine *Engine) ConvertWithContext(ctx context.Context, input string, channel chan<- string) {
	select {
	case <-ctx.Done():
		close(channel)
		return

	default:
		channel <- engine.Convert(input)
		close(channel)
	}
}

// ConvertAll converts a batch across a bounded pool of workers.
// Results keep input order. On cancellation the inputs not yet
// handed to a worker stay empty in the result.
func (engine *Engine) ConvertAll(ctx context.Context, inputs []string) []string {
	results := make([]string, len(inputs))
	if len(inputs) == 0 {
		return results
	}

	start := time.Now()

	workers := runtime.NumCPU()
	if workers > len(inputs) {
		workers = len(inputs)
	}

	jobs := make(chan int)

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = engine.Convert(inputs[i])
			}
		}()
	}

feed:
	for i := range inputs {
		if ctx.Err() != nil {
			break feed
		}

		select {
		case <-ctx.Done():
			break feed
		case jobs <- i:
		}
	}
	close(jobs)
	wg.Wait()

	if engine.Debug {
		engine.log.Debug().Int("inputs", len(inputs)).Dur("took", time.Since(start)).Msg("batch converted")
	}

	return results
}
