// Package contract implements Karger's randomized minimum-cut estimator:
// repeated uniform edge contraction down to two super-nodes, amplified over
// independent trials by keeping the smallest cut found.
//
// What:
//
//   - Tracker maintains the contraction partition: one cluster per
//     surviving super-node, holding the original nodes absorbed into it.
//   - The engine (internal) runs one trial: draw a uniform random edge from
//     an edgeset.Set, contract it, rewire the absorbed endpoint's remaining
//     edges, and repeat until exactly two clusters remain; the cut is every
//     original edge crossing the two final clusters.
//   - MinCut orchestrates k independent trials, each on fresh per-trial
//     state, and returns the smallest cut (first one on ties). A
//     disconnected input short-circuits to the empty cut — disconnection is
//     an expected input condition, never an error.
//
// Determinism:
//
//   - Every trial draws from its own RNG stream derived from the base seed
//     and the trial index (SplitMix64 mixing). The same seed therefore
//     yields the same result whether trials run sequentially or on several
//     workers, and growing the trial count never changes the streams of
//     earlier trials — so more trials can only improve the answer.
//
// Step history:
//
//   - The hot loop is snapshot-free. WithStepHistory materializes one Step
//     per contraction (cloned tracker state included) for the winning trial
//     only; WithObserver streams steps to a callback instead, for callers
//     that drive the engine incrementally.
//
// Errors:
//
//   - ErrNilGraph: nil input graph.
//   - ErrUnknownCluster: a merge referenced a non-representative node.
//   - ErrAllTrialsFailed: every trial hit an internal invariant violation.
//     A single failing trial is dropped; surviving trials still compete.
//
// Complexity: one trial is O(V·E) worst case; k trials give a min-cut
// success probability of at least 1-(1-2/(V(V-1)))^k.
package contract
