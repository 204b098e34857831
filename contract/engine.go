package contract

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/tessarin/mincut/core"
	"github.com/tessarin/mincut/edgeset"
)

// engineState is the contraction state machine of one trial.
type engineState int

const (
	// stateRunning: more than two clusters remain; contractions continue.
	stateRunning engineState = iota
	// stateConverged: exactly two clusters remain; the cut is defined.
	stateConverged
	// stateEmpty: the graph has no edges; the cut is empty by convention.
	stateEmpty
)

// engine holds the mutable state of a single contraction trial. All of it
// is freshly built per trial and discarded afterwards; nothing is shared
// across trials except the immutable original graph.
type engine struct {
	original *core.Graph
	edges    *edgeset.Set
	tracker  *Tracker

	// adjacency mirrors the contracted graph's neighbor relation so the
	// edges incident to an absorbed super-node can be rewired in O(deg).
	adjacency map[int]map[int]struct{}

	rng   *rand.Rand
	trial int
	index int

	collect bool
	observe func(Step) error
	steps   []Step
}

// newEngine builds fresh per-trial state from the immutable input graph.
// Complexity: O(V + E).
func newEngine(g *core.Graph, trial int, rng *rand.Rand, collect bool, observe func(Step) error) *engine {
	adjacency := make(map[int]map[int]struct{}, g.NodeCount())
	for _, id := range g.Nodes() {
		nbrs, _ := g.Neighbors(id)
		set := make(map[int]struct{}, len(nbrs))
		for _, v := range nbrs {
			set[v] = struct{}{}
		}
		adjacency[id] = set
	}

	return &engine{
		original:  g,
		edges:     edgeset.FromGraph(g),
		tracker:   NewTracker(g.Nodes()),
		adjacency: adjacency,
		rng:       rng,
		trial:     trial,
		collect:   collect,
		observe:   observe,
	}
}

// state reports the machine state from the surviving cluster count and the
// remaining edge population.
func (e *engine) state() engineState {
	switch {
	case e.tracker.Len() > 2 && e.edges.Len() > 0:
		return stateRunning
	case e.tracker.Len() == 2:
		return stateConverged
	default:
		// No edges left to contract: edgeless input, or fewer than two
		// clusters. The cut is empty by convention.
		return stateEmpty
	}
}

// run drives the trial to convergence and derives its cut.
// ctx is checked once per contraction, matching the cooperative model: a
// trial cancelled mid-way produces no cut and is never mixed into results.
func (e *engine) run(ctx context.Context) ([]core.Edge, []Step, error) {
	for e.state() == stateRunning {
		select {
		case <-ctx.Done():
			return nil, nil, ctx.Err()
		default:
		}
		if err := e.step(); err != nil {
			return nil, nil, err
		}
	}
	if e.state() == stateEmpty {
		return []core.Edge{}, nil, nil
	}

	cut, err := e.cut()
	if err != nil {
		return nil, nil, err
	}

	return cut, e.steps, nil
}

// step performs one contraction: draw a uniform random edge, merge its
// endpoints, and rewire every other edge incident to the absorbed node.
// Any error here is an internal invariant violation fatal to this trial.
// Complexity: O(deg(absorb)) plus O(V+E) when a snapshot is recorded.
func (e *engine) step() error {
	picked, err := e.edges.Random(e.rng)
	if err != nil {
		return fmt.Errorf("contract: trial %d step %d: %w", e.trial, e.index, err)
	}
	// Fixed orientation: the smaller endpoint survives (picked is canonical).
	keep, absorb := picked.U, picked.V

	if err = e.edges.Remove(picked); err != nil {
		return fmt.Errorf("contract: trial %d step %d: %w", e.trial, e.index, err)
	}

	// Re-point every remaining edge (absorb, w) to (keep, w). Would-be
	// self-loops (w == keep) vanish with the contracted edge; parallels
	// collapse because Insert is a no-op on present members.
	for w := range e.adjacency[absorb] {
		if w == keep {
			continue
		}
		if err = e.edges.Remove(core.Edge{U: absorb, V: w}.Canonical()); err != nil {
			return fmt.Errorf("contract: trial %d step %d rewire: %w", e.trial, e.index, err)
		}
		e.edges.Insert(core.Edge{U: keep, V: w}.Canonical())

		delete(e.adjacency[w], absorb)
		e.adjacency[w][keep] = struct{}{}
		e.adjacency[keep][w] = struct{}{}
	}
	delete(e.adjacency[keep], absorb)
	delete(e.adjacency, absorb)

	if err = e.tracker.Merge(keep, absorb); err != nil {
		return fmt.Errorf("contract: trial %d step %d: %w", e.trial, e.index, err)
	}

	if e.collect || e.observe != nil {
		if err = e.record(picked); err != nil {
			return err
		}
	}
	e.index++

	return nil
}

// record materializes an independent snapshot of the post-contraction
// state and hands it to the observer and/or the step history.
func (e *engine) record(contracted core.Edge) error {
	step := Step{
		Trial:      e.trial,
		Index:      e.index,
		Contracted: contracted,
		Nodes:      e.tracker.Representatives(),
		Edges:      e.edges.Edges(),
		Clusters:   e.tracker.Clone().snapshot(),
	}
	if e.collect {
		e.steps = append(e.steps, step)
	}
	if e.observe != nil {
		if err := e.observe(step); err != nil {
			return fmt.Errorf("contract: trial %d step %d observer: %w", e.trial, e.index, err)
		}
	}

	return nil
}

// cut derives the trial's cut after convergence: every original edge with
// one endpoint in each of the two final clusters. Edges land in a set
// keyed by canonical orientation, so a duplicate reversed pair can never
// be admitted twice regardless of how the input was oriented.
// Complexity: O(E log E).
func (e *engine) cut() ([]core.Edge, error) {
	reps := e.tracker.Representatives()
	if len(reps) != 2 {
		return nil, fmt.Errorf("contract: trial %d: cut undefined for %d clusters", e.trial, len(reps))
	}
	uSet, _ := e.tracker.members(reps[0])
	vSet, _ := e.tracker.members(reps[1])

	crossing := make(map[core.Edge]struct{})
	for _, edge := range e.original.Edges() {
		_, uHasU := uSet[edge.U]
		_, vHasV := vSet[edge.V]
		_, uHasV := uSet[edge.V]
		_, vHasU := vSet[edge.U]
		if (uHasU && vHasV) || (uHasV && vHasU) {
			crossing[edge.Canonical()] = struct{}{}
		}
	}

	cut := make([]core.Edge, 0, len(crossing))
	for edge := range crossing {
		cut = append(cut, edge)
	}
	core.SortEdges(cut)

	return cut, nil
}
