// Package exact computes the exact minimum edge cut of an undirected,
// unweighted graph — the reference the randomized estimator is scored
// against.
//
// What:
//
//   - MinCut fixes s at the smallest node and takes the minimum s–t cut
//     over every other node t, each computed by Edmonds–Karp max-flow
//     (BFS augmenting paths) on the unit-capacity digraph in which every
//     undirected edge becomes an arc pair. The cut edges are recovered
//     from residual reachability: original edges with exactly one endpoint
//     reachable from s in the final residual network.
//
// Conventions:
//
//   - Disconnected or edgeless input returns the empty cut (never an
//     error), matching the estimator's convention.
//   - Neighbor iteration is sorted, so the returned cut is deterministic
//     even when several minimum cuts exist.
//
// Complexity: O(V · V·E²) worst case over the V-1 sink choices; intended
// for the modest graph sizes the estimator is evaluated on.
package exact
