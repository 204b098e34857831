package contract

import (
	"fmt"
	"sync"

	"github.com/tessarin/mincut/convert"
	"github.com/tessarin/mincut/core"
)

// trialOutcome carries one trial's result to the reduction step.
type trialOutcome struct {
	cut   []core.Edge
	steps []Step
	err   error
}

// MinCut estimates a minimum cut of g with Karger's contraction algorithm,
// running the configured number of independent trials and keeping the
// smallest cut found (the first one on ties).
//
// Preconditions handled as values, not errors:
//   - disconnected g: the empty cut is returned immediately, with empty
//     step history, regardless of the trial count;
//   - edgeless g: likewise.
//
// Each trial operates on freshly built state (edge set, tracker,
// adjacency) and its own derived RNG stream, so trials may run on several
// workers with no shared mutable state; the reduction is a serial fold in
// trial order. A trial that fails an internal invariant is discarded;
// MinCut fails only when every trial failed.
//
// Complexity: O(trials · V · E) worst case, divided across workers.
func MinCut(g *core.Graph, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	o.normalize()

	if err := o.Ctx.Err(); err != nil {
		return nil, err
	}

	if g.EdgeCount() == 0 || !convert.IsConnected(g) {
		return &Result{Cut: []core.Edge{}}, nil
	}

	// One decorrelated stream per trial, derived from the base seed and
	// the trial index alone. Trial k's stream never changes when more
	// trials are requested, which makes amplification monotone.
	parent := o.Seed
	if o.Rand != nil {
		parent = o.Rand.Int63()
	}

	outcomes := make([]trialOutcome, o.Trials)
	runTrial := func(i int) {
		eng := newEngine(g, i, deriveRNG(parent, uint64(i)), o.CollectSteps, o.Observer)
		cut, steps, err := eng.run(o.Ctx)
		outcomes[i] = trialOutcome{cut: cut, steps: steps, err: err}
	}

	if o.Workers == 1 || o.Trials == 1 {
		for i := 0; i < o.Trials; i++ {
			runTrial(i)
		}
	} else {
		indexes := make(chan int)
		var wg sync.WaitGroup
		workers := o.Workers
		if workers > o.Trials {
			workers = o.Trials
		}
		wg.Add(workers)
		for w := 0; w < workers; w++ {
			go func() {
				defer wg.Done()
				for i := range indexes {
					runTrial(i)
				}
			}()
		}
		for i := 0; i < o.Trials; i++ {
			indexes <- i
		}
		close(indexes)
		wg.Wait()
	}

	return reduce(outcomes)
}

// reduce folds trial outcomes in trial order, keeping the first smallest
// cut. Failed trials are skipped; if none succeeded the last failure is
// surfaced wrapped in ErrAllTrialsFailed.
func reduce(outcomes []trialOutcome) (*Result, error) {
	var (
		best      trialOutcome
		found     bool
		completed int
		lastErr   error
	)
	for _, out := range outcomes {
		if out.err != nil {
			lastErr = out.err
			continue
		}
		completed++
		if !found || len(out.cut) < len(best.cut) {
			best = out
			found = true
		}
	}
	if !found {
		return nil, fmt.Errorf("%w: %w", ErrAllTrialsFailed, lastErr)
	}

	return &Result{Cut: best.cut, Steps: best.steps, Trials: completed}, nil
}
