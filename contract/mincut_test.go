package contract_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tessarin/mincut/builder"
	"github.com/tessarin/mincut/contract"
	"github.com/tessarin/mincut/core"
)

func TestMinCut_NilGraph(t *testing.T) {
	_, err := contract.MinCut(nil)
	require.ErrorIs(t, err, contract.ErrNilGraph)
}

// TestMinCut_SingleEdge: the cut of a lone edge is that edge.
func TestMinCut_SingleEdge(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(1, 2))

	res, err := contract.MinCut(g)
	require.NoError(t, err)
	require.Equal(t, []core.Edge{{U: 1, V: 2}}, res.Cut)
	require.Equal(t, 1, res.Trials)
	require.Nil(t, res.Steps)
}

// TestMinCut_Cycle4: any converged trial on C_4 cuts exactly 2 edges, which
// is also the true minimum.
func TestMinCut_Cycle4(t *testing.T) {
	g, err := builder.Cycle(4)
	require.NoError(t, err)

	for seed := int64(1); seed <= 10; seed++ {
		res, err := contract.MinCut(g, contract.WithSeed(seed))
		require.NoError(t, err)
		require.Len(t, res.Cut, 2)
	}
}

// TestMinCut_ConnectedCutNonEmpty: a connected graph with at least one edge
// always yields a non-empty separating cut.
func TestMinCut_ConnectedCutNonEmpty(t *testing.T) {
	graphs := []*core.Graph{builder.Bowtie()}
	if g, err := builder.Complete(6); err == nil {
		graphs = append(graphs, g)
	}
	if g, err := builder.Star(7); err == nil {
		graphs = append(graphs, g)
	}

	for _, g := range graphs {
		for seed := int64(1); seed <= 5; seed++ {
			res, err := contract.MinCut(g, contract.WithSeed(seed))
			require.NoError(t, err)
			require.NotEmpty(t, res.Cut)
		}
	}
}

// TestMinCut_Disconnected: disconnection is an expected input condition;
// the result is the empty cut with empty step history, whatever the trial
// count.
func TestMinCut_Disconnected(t *testing.T) {
	c3, err := builder.Cycle(3)
	require.NoError(t, err)
	other := core.NewGraph()
	require.NoError(t, other.AddEdge(10, 11))
	g := builder.Disjoint(c3, other)

	res, err := contract.MinCut(g, contract.WithTrials(5), contract.WithStepHistory())
	require.NoError(t, err)
	require.Empty(t, res.Cut)
	require.Empty(t, res.Steps)
}

func TestMinCut_EdgelessGraph(t *testing.T) {
	g := core.NewGraph()
	g.AddNode(1)

	res, err := contract.MinCut(g, contract.WithTrials(3))
	require.NoError(t, err)
	require.Empty(t, res.Cut)
}

// TestMinCut_TrialsClamped: non-positive trial counts fall back to 1.
func TestMinCut_TrialsClamped(t *testing.T) {
	g := builder.Bowtie()

	res, err := contract.MinCut(g, contract.WithTrials(0))
	require.NoError(t, err)
	require.Equal(t, 1, res.Trials)

	res, err = contract.MinCut(g, contract.WithTrials(-3))
	require.NoError(t, err)
	require.Equal(t, 1, res.Trials)
}

// TestMinCut_Deterministic: a fixed seed fully determines the result.
func TestMinCut_Deterministic(t *testing.T) {
	g := builder.Bowtie()

	r1, err := contract.MinCut(g, contract.WithSeed(7), contract.WithTrials(5))
	require.NoError(t, err)
	r2, err := contract.MinCut(g, contract.WithSeed(7), contract.WithTrials(5))
	require.NoError(t, err)

	require.Equal(t, r1.Cut, r2.Cut)
}

// TestMinCut_ParallelMatchesSequential: worker scheduling must not change
// the outcome for a fixed seed.
func TestMinCut_ParallelMatchesSequential(t *testing.T) {
	g, err := builder.Complete(8)
	require.NoError(t, err)

	seq, err := contract.MinCut(g, contract.WithSeed(11), contract.WithTrials(12))
	require.NoError(t, err)
	par, err := contract.MinCut(g, contract.WithSeed(11), contract.WithTrials(12), contract.WithWorkers(4))
	require.NoError(t, err)

	require.Equal(t, seq.Cut, par.Cut)
	require.Equal(t, seq.Trials, par.Trials)
}

// TestMinCut_AmplificationMonotone: with per-trial derived streams, k+1
// trials can never return a strictly larger cut than k trials.
func TestMinCut_AmplificationMonotone(t *testing.T) {
	g := builder.Bowtie()

	prev := -1
	for k := 1; k <= 8; k++ {
		res, err := contract.MinCut(g, contract.WithSeed(3), contract.WithTrials(k))
		require.NoError(t, err)
		if prev >= 0 {
			require.LessOrEqual(t, len(res.Cut), prev, "trials=%d", k)
		}
		prev = len(res.Cut)
	}
}

// TestMinCut_BowtieAmplified: the bowtie's unique minimum cut is the bridge
// {3,4}. A single trial only finds it with bounded probability, but 64
// trials must find it with overwhelming empirical frequency across seeds.
func TestMinCut_BowtieAmplified(t *testing.T) {
	g := builder.Bowtie()
	bridge := core.Edge{U: 3, V: 4}

	const runs = 30
	hits := 0
	for seed := int64(1); seed <= runs; seed++ {
		res, err := contract.MinCut(g, contract.WithSeed(seed), contract.WithTrials(64))
		require.NoError(t, err)
		if len(res.Cut) == 1 {
			require.Equal(t, []core.Edge{bridge}, res.Cut)
			hits++
		}
	}

	// (1-2/(n(n-1)))^64 bounds a run's failure probability below 2%, so 27
	// of 30 runs is a very conservative floor for this statistical check.
	require.GreaterOrEqual(t, hits, 27, "bridge found in %d/%d runs", hits, runs)
}

// TestMinCut_StepHistory: one Step per contraction of the winning trial,
// with cluster snapshots forming a partition at every step.
func TestMinCut_StepHistory(t *testing.T) {
	g := builder.Bowtie()
	nodes := g.Nodes()

	res, err := contract.MinCut(g, contract.WithSeed(5), contract.WithTrials(3), contract.WithStepHistory())
	require.NoError(t, err)
	require.Len(t, res.Steps, g.NodeCount()-2, "6 nodes converge in 4 contractions")

	trial := res.Steps[0].Trial
	for i, step := range res.Steps {
		require.Equal(t, i, step.Index)
		require.Equal(t, trial, step.Trial, "history must come from one (winning) trial")
		require.Equal(t, g.NodeCount()-1-i, len(step.Clusters))
		assertStepPartition(t, step, nodes)
	}
	require.Len(t, res.Steps[len(res.Steps)-1].Clusters, 2)
}

func TestMinCut_NoHistoryByDefault(t *testing.T) {
	res, err := contract.MinCut(builder.Bowtie(), contract.WithSeed(5))
	require.NoError(t, err)
	require.Nil(t, res.Steps)
}

// TestMinCut_Observer: the callback sees every trial's steps; an observer
// error aborts only the observed trial.
func TestMinCut_Observer(t *testing.T) {
	g, err := builder.Cycle(5)
	require.NoError(t, err)

	var seen int
	res, err := contract.MinCut(g,
		contract.WithSeed(2),
		contract.WithTrials(2),
		contract.WithObserver(func(contract.Step) error {
			seen++

			return nil
		}),
	)
	require.NoError(t, err)
	require.Equal(t, 2*(g.NodeCount()-2), seen, "both trials observed")
	require.Equal(t, 2, res.Trials)

	// Fail trial 0 only: the run still succeeds on trial 1.
	boom := errors.New("stop this trial")
	res, err = contract.MinCut(g,
		contract.WithSeed(2),
		contract.WithTrials(2),
		contract.WithObserver(func(s contract.Step) error {
			if s.Trial == 0 {
				return boom
			}

			return nil
		}),
	)
	require.NoError(t, err)
	require.Equal(t, 1, res.Trials)
	require.NotEmpty(t, res.Cut)
}

func TestMinCut_ObserverFailsAllTrials(t *testing.T) {
	boom := errors.New("no")
	_, err := contract.MinCut(builder.Bowtie(),
		contract.WithObserver(func(contract.Step) error { return boom }),
	)
	require.ErrorIs(t, err, contract.ErrAllTrialsFailed)
	require.ErrorIs(t, err, boom)
}

func TestMinCut_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := contract.MinCut(builder.Bowtie(), contract.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}

func assertStepPartition(t *testing.T, step contract.Step, nodes []int) {
	t.Helper()

	seen := make(map[int]int)
	for _, members := range step.Clusters {
		for _, n := range members {
			seen[n]++
		}
	}
	require.Len(t, seen, len(nodes))
	for _, n := range nodes {
		require.Equal(t, 1, seen[n], "node %d", n)
	}
}
