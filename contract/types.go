package contract

import (
	"context"
	"errors"
	"math/rand"

	"github.com/tessarin/mincut/core"
)

// Sentinel errors for contraction.
var (
	// ErrNilGraph is returned when a nil *core.Graph is passed to MinCut.
	ErrNilGraph = errors.New("contract: graph is nil")

	// ErrUnknownCluster indicates a merge referenced a node that is not
	// currently a cluster representative.
	ErrUnknownCluster = errors.New("contract: node is not a cluster representative")

	// ErrAllTrialsFailed indicates every contraction trial aborted on an
	// internal invariant violation, so no cut can be reported.
	ErrAllTrialsFailed = errors.New("contract: all trials failed")
)

// Step is an immutable record of one contraction, produced only when step
// history or an observer is requested. Snapshots are independent copies,
// unaffected by later merges.
type Step struct {
	// Trial is the index of the trial this step belongs to.
	Trial int

	// Index is the step number within the trial, starting at 0 and
	// increasing by one per contraction.
	Index int

	// Contracted is the edge whose endpoints were merged at this step.
	Contracted core.Edge

	// Nodes lists the surviving super-node representatives after the
	// contraction, ascending.
	Nodes []int

	// Edges lists the contracted graph's edges after the contraction,
	// sorted canonically.
	Edges []core.Edge

	// Clusters maps each surviving representative to the sorted original
	// node IDs absorbed into it.
	Clusters map[int][]int
}

// Result is the outcome of a MinCut invocation.
type Result struct {
	// Cut holds the winning trial's cut edges, sorted canonically.
	// Empty for disconnected or edgeless input.
	Cut []core.Edge

	// Steps holds the winning trial's step history when requested, nil
	// otherwise. Histories of non-winning trials are discarded.
	Steps []Step

	// Trials is the number of trials that ran to completion.
	Trials int
}

// Options configures MinCut. Zero values fall back to safe defaults via
// normalize; construct with DefaultOptions or functional options.
type Options struct {
	// Trials is the number of independent contraction runs; values < 1 are
	// corrected to 1.
	Trials int

	// Seed feeds the base RNG when Rand is nil; seed 0 maps to a fixed
	// default so the zero value stays reproducible.
	Seed int64

	// Rand, when non-nil, overrides Seed as the base randomness source.
	// Per-trial streams are derived from it; it is not used concurrently.
	Rand *rand.Rand

	// CollectSteps materializes the winning trial's step history.
	CollectSteps bool

	// Observer, when non-nil, receives every Step of every trial as it
	// happens. An error from it cancels that trial only.
	Observer func(Step) error

	// Workers bounds trial parallelism; values < 1 mean sequential.
	Workers int

	// Ctx cancels outstanding trials; defaults to context.Background().
	Ctx context.Context
}

// Option mutates Options before a run.
type Option func(*Options)

// DefaultOptions returns the baseline configuration: one trial, seed 0
// (fixed default stream), sequential execution, no step history.
func DefaultOptions() Options {
	return Options{
		Trials:  1,
		Workers: 1,
		Ctx:     context.Background(),
	}
}

// WithTrials sets the number of independent contraction trials.
func WithTrials(n int) Option {
	return func(o *Options) { o.Trials = n }
}

// WithSeed sets the base RNG seed for deterministic runs.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithRand supplies an explicit base randomness source, overriding the seed.
func WithRand(rng *rand.Rand) Option {
	return func(o *Options) { o.Rand = rng }
}

// WithStepHistory records a Step per contraction for the winning trial.
func WithStepHistory() Option {
	return func(o *Options) { o.CollectSteps = true }
}

// WithObserver installs fn as a per-contraction callback. Returning an
// error from fn aborts the observed trial.
func WithObserver(fn func(Step) error) Option {
	return func(o *Options) { o.Observer = fn }
}

// WithWorkers allows up to n trials to run in parallel. The result is
// identical to a sequential run with the same seed.
func WithWorkers(n int) Option {
	return func(o *Options) { o.Workers = n }
}

// WithContext sets the cancellation context for the run.
// A nil ctx has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// normalize clamps permissive inputs to their documented defaults.
func (o *Options) normalize() {
	if o.Trials < 1 {
		o.Trials = 1
	}
	if o.Workers < 1 {
		o.Workers = 1
	}
	if o.Ctx == nil {
		o.Ctx = context.Background()
	}
}
