// Package core defines the Graph and Edge types shared by every other
// package in mincut: a minimal undirected, unweighted, loop-free simple
// graph over integer node identifiers.
//
// What:
//
//   - Edge is an unordered pair of distinct node IDs, always stored in
//     canonical orientation (smaller ID first), so membership checks can
//     never miss a reversed duplicate.
//   - Graph stores a node set, a canonical edge set, and an adjacency map,
//     guarded by a sync.RWMutex so a fully built graph can be read from
//     concurrent contraction trials without extra locking.
//   - FromPairs and ParseEdgeList build a Graph from raw edge-list input
//     (integer pairs, or a text/CSV upload), rejecting malformed rows.
//
// Why:
//
//   - Contraction, the exact reference cut, and cut comparison all need the
//     same canonical edge representation; centralizing it here keeps every
//     boundary crossing (insert, compare, parse) consistent.
//
// Errors:
//
//   - ErrSelfLoop: an edge with equal endpoints was supplied.
//   - ErrNodeNotFound: an operation referenced a node not in the graph.
//   - ErrMalformedPair: an edge-list row is not a pair of two integers.
//
// Complexity:
//
//   - AddNode/AddEdge/HasNode/HasEdge: O(1).
//   - Nodes/Edges/Clone: O(V log V) / O(E log E) / O(V+E).
package core
