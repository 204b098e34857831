// Package builder constructs deterministic graph topologies for tests,
// examples, and the CLI's random-graph mode.
//
// What:
//
//   - Path(n), Cycle(n), Complete(n), Star(n): classic fixed topologies
//     over nodes 1..n, emitted in stable order.
//   - Bowtie(): two triangles joined by a single bridge edge, the smallest
//     graph whose minimum cut is one specific edge.
//   - RandomSparse(n, p, rng): Erdős–Rényi G(n,p); a nil rng falls back to
//     a fixed deterministic stream.
//   - Disjoint(gs...): union of node-disjoint graphs, for disconnected
//     fixtures.
//
// Determinism:
//
//   - Same parameters (and seed, for RandomSparse) produce identical graphs:
//     vertices and edges are emitted in ascending index order.
//
// Errors:
//
//   - ErrTooFewNodes: n below the minimum for the requested topology.
//   - ErrInvalidProbability: p outside [0,1].
//   - Use errors.Is; sentinels are wrapped with constructor context.
package builder
