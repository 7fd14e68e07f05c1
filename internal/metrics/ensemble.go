package metrics

import (
	"context"
	"math/rand"
	"sync"

	"github.com/san-kum/fireworks/internal/show"
)

// Summary is the outcome of one headless run.
type Summary struct {
	Seed   int64
	Ticks  int
	Values map[string]float64
}

// Ensemble runs the same show headless under consecutive seeds, in parallel.
type Ensemble struct {
	opts      show.Options
	fps       int
	ticks     int
	numRuns   int
	seedStart int64
}

func NewEnsemble(opts show.Options, fps, ticks, numRuns int, seedStart int64) *Ensemble {
	return &Ensemble{opts: opts, fps: fps, ticks: ticks, numRuns: numRuns, seedStart: seedStart}
}

func (e *Ensemble) Run(ctx context.Context) ([]Summary, error) {
	results := make([]Summary, e.numRuns)
	errs := make([]error, e.numRuns)

	limit := show.TickClock(e.ticks, e.fps)

	var wg sync.WaitGroup
	for i := 0; i < e.numRuns; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			seed := e.seedStart + int64(idx)
			s := show.New(e.opts, rand.New(rand.NewSource(seed)))
			rec := Default()
			s.AddObserver(rec)

			h := show.NewHeadless(e.fps, limit)
			errs[idx] = show.Run(ctx, h, s)

			values := make(map[string]float64, len(rec.Metrics))
			for _, m := range rec.Metrics {
				values[m.Name()] = m.Value()
			}
			results[idx] = Summary{Seed: seed, Ticks: s.Tick(), Values: values}
		}(i)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return results, nil
}

// Mean averages each metric across runs.
func Mean(results []Summary) map[string]float64 {
	mean := make(map[string]float64)
	if len(results) == 0 {
		return mean
	}
	for _, r := range results {
		for k, v := range r.Values {
			mean[k] += v
		}
	}
	for k := range mean {
		mean[k] /= float64(len(results))
	}
	return mean
}
