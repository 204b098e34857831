package edgeset

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/tessarin/mincut/core"
)

// Sentinel errors for edge-set operations.
var (
	// ErrNotFound indicates a removal targeting an edge that is not a member.
	ErrNotFound = errors.New("edgeset: edge not found")

	// ErrEmptySet indicates a random selection attempted on an empty set.
	ErrEmptySet = errors.New("edgeset: set is empty")
)

// Set is a collection of canonical edges supporting O(1) insert, O(1)
// remove by value, and O(1) uniform random selection.
//
// Invariants: every edge appears at most once; index[e] is the true
// position of e in items for every member e.
type Set struct {
	items []core.Edge
	index map[core.Edge]int
}

// New creates an empty Set with room for capacity edges.
// Complexity: O(1).
func New(capacity int) *Set {
	if capacity < 0 {
		capacity = 0
	}

	return &Set{
		items: make([]core.Edge, 0, capacity),
		index: make(map[core.Edge]int, capacity),
	}
}

// FromGraph creates a fresh Set holding every edge of g.
// Each contraction trial gets its own instance.
// Complexity: O(E).
func FromGraph(g *core.Graph) *Set {
	edges := g.Edges()
	s := New(len(edges))
	for _, e := range edges {
		s.Insert(e)
	}

	return s
}

// Insert adds e to the set; a no-op when e (in either orientation) is
// already a member.
// Complexity: O(1).
func (s *Set) Insert(e core.Edge) {
	e = e.Canonical()
	if _, ok := s.index[e]; ok {
		return
	}
	s.items = append(s.items, e)
	s.index[e] = len(s.items) - 1
}

// Remove deletes e from the set in O(1): the removed slot is overwritten
// with the current last element, whose recorded index is fixed up in the
// same operation before the slice is truncated.
// Returns ErrNotFound when e is not a member.
func (s *Set) Remove(e core.Edge) error {
	e = e.Canonical()
	pos, ok := s.index[e]
	if !ok {
		return fmt.Errorf("edgeset: Remove(%s): %w", e, ErrNotFound)
	}
	delete(s.index, e)

	last := len(s.items) - 1
	if pos != last {
		moved := s.items[last]
		s.items[pos] = moved
		s.index[moved] = pos
	}
	s.items = s.items[:last]

	return nil
}

// Random returns one member chosen uniformly (probability 1/Len per edge)
// using rng; a nil rng falls back to the package-global source.
// Returns ErrEmptySet when no edges remain.
// Complexity: O(1).
func (s *Set) Random(rng *rand.Rand) (core.Edge, error) {
	if len(s.items) == 0 {
		return core.Edge{}, ErrEmptySet
	}
	if rng == nil {
		return s.items[rand.Intn(len(s.items))], nil
	}

	return s.items[rng.Intn(len(s.items))], nil
}

// Contains reports membership of e in either orientation.
// Complexity: O(1).
func (s *Set) Contains(e core.Edge) bool {
	_, ok := s.index[e.Canonical()]

	return ok
}

// Len returns the number of members.
func (s *Set) Len() int {
	return len(s.items)
}

// Edges returns a sorted copy of the members.
// Complexity: O(E log E).
func (s *Set) Edges() []core.Edge {
	out := make([]core.Edge, len(s.items))
	copy(out, s.items)
	core.SortEdges(out)

	return out
}
