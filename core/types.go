package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for core graph operations.
var (
	// ErrSelfLoop indicates an edge with identical endpoints was supplied.
	ErrSelfLoop = errors.New("core: self-loop not allowed")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrMalformedPair indicates an edge-list row that is not an ordered
	// pair of two integers.
	ErrMalformedPair = errors.New("core: malformed edge pair")
)

// Edge is an unordered pair of distinct node identifiers.
//
// Every Edge held by a Graph, an edgeset.Set, or a cut is canonical:
// U < V. Construct edges with NewEdge (which canonicalizes and rejects
// loops) or re-canonicalize untrusted values with Canonical.
type Edge struct {
	// U is the smaller endpoint in canonical orientation.
	U int

	// V is the larger endpoint in canonical orientation.
	V int
}

// NewEdge returns the canonical edge between u and v.
// Returns ErrSelfLoop when u == v.
// Complexity: O(1).
func NewEdge(u, v int) (Edge, error) {
	if u == v {
		return Edge{}, fmt.Errorf("core: edge (%d,%d): %w", u, v, ErrSelfLoop)
	}

	return Edge{U: u, V: v}.Canonical(), nil
}

// Canonical returns e with its endpoints ordered so that U < V.
// Complexity: O(1).
func (e Edge) Canonical() Edge {
	if e.U > e.V {
		return Edge{U: e.V, V: e.U}
	}

	return e
}

// Reversed returns e with swapped endpoints. Useful only at boundaries
// that still deal in oriented pairs; stored edges are always canonical.
func (e Edge) Reversed() Edge {
	return Edge{U: e.V, V: e.U}
}

// Other returns the endpoint of e that is not node.
// The second result is false when node is not an endpoint of e.
func (e Edge) Other(node int) (int, bool) {
	switch node {
	case e.U:
		return e.V, true
	case e.V:
		return e.U, true
	default:
		return 0, false
	}
}

// String renders e as "(u,v)" in canonical orientation.
func (e Edge) String() string {
	c := e.Canonical()

	return fmt.Sprintf("(%d,%d)", c.U, c.V)
}

// less orders edges lexicographically by (U, V); both sides must be canonical.
func (e Edge) less(o Edge) bool {
	if e.U != o.U {
		return e.U < o.U
	}

	return e.V < o.V
}

// SortEdges sorts a canonical edge slice in place, lexicographically by (U, V).
// Complexity: O(E log E).
func SortEdges(edges []Edge) {
	sortEdgeSlice(edges)
}
