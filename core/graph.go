package core

import (
	"fmt"
	"sort"
	"sync"
)

// Graph is an undirected, unweighted, loop-free simple graph over integer
// node identifiers.
//
// Edges are stored exactly once, in canonical orientation, so HasEdge(u,v)
// and HasEdge(v,u) always agree. The internal RWMutex makes a fully built
// Graph safe to read from concurrent contraction trials; per-trial mutable
// state lives outside the Graph (edgeset.Set, contract.Tracker).
type Graph struct {
	mu sync.RWMutex

	nodes map[int]struct{}
	edges map[Edge]struct{}

	// adjacency[u][v] exists iff the canonical edge {u,v} exists; kept
	// symmetric so Neighbors is O(deg).
	adjacency map[int]map[int]struct{}
}

// NewGraph creates an empty Graph.
// Complexity: O(1).
func NewGraph() *Graph {
	return &Graph{
		nodes:     make(map[int]struct{}),
		edges:     make(map[Edge]struct{}),
		adjacency: make(map[int]map[int]struct{}),
	}
}

// AddNode inserts node id; a no-op when the node already exists.
// Complexity: O(1).
func (g *Graph) AddNode(id int) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.addNodeLocked(id)
}

func (g *Graph) addNodeLocked(id int) {
	if _, ok := g.nodes[id]; ok {
		return
	}
	g.nodes[id] = struct{}{}
	g.adjacency[id] = make(map[int]struct{})
}

// AddEdge inserts the undirected edge {u,v}, creating missing endpoints.
// Duplicate edges (in either orientation) are a no-op, preserving the
// simple-graph invariant. Returns ErrSelfLoop when u == v.
// Complexity: O(1).
func (g *Graph) AddEdge(u, v int) error {
	e, err := NewEdge(u, v)
	if err != nil {
		return err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.addNodeLocked(e.U)
	g.addNodeLocked(e.V)

	if _, ok := g.edges[e]; ok {
		return nil
	}
	g.edges[e] = struct{}{}
	g.adjacency[e.U][e.V] = struct{}{}
	g.adjacency[e.V][e.U] = struct{}{}

	return nil
}

// HasNode reports whether node id exists.
// Complexity: O(1).
func (g *Graph) HasNode(id int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.nodes[id]

	return ok
}

// HasEdge reports whether the undirected edge {u,v} exists, regardless of
// the orientation it was supplied in.
// Complexity: O(1).
func (g *Graph) HasEdge(u, v int) bool {
	if u == v {
		return false
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.edges[Edge{U: u, V: v}.Canonical()]

	return ok
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}

// EdgeCount returns the number of (canonical) edges.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// Nodes returns all node identifiers in ascending order.
// Complexity: O(V log V).
func (g *Graph) Nodes() []int {
	g.mu.RLock()
	ids := make([]int, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	g.mu.RUnlock()

	sort.Ints(ids)

	return ids
}

// Edges returns a copy of the edge set, sorted lexicographically.
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	edges := make([]Edge, 0, len(g.edges))
	for e := range g.edges {
		edges = append(edges, e)
	}
	g.mu.RUnlock()

	sortEdgeSlice(edges)

	return edges
}

// Neighbors returns the adjacent node identifiers of id in ascending order.
// Returns ErrNodeNotFound when id is not in the graph.
// Complexity: O(deg log deg).
func (g *Graph) Neighbors(id int) ([]int, error) {
	g.mu.RLock()
	adj, ok := g.adjacency[id]
	if !ok {
		g.mu.RUnlock()

		return nil, fmt.Errorf("core: Neighbors(%d): %w", id, ErrNodeNotFound)
	}
	nbrs := make([]int, 0, len(adj))
	for v := range adj {
		nbrs = append(nbrs, v)
	}
	g.mu.RUnlock()

	sort.Ints(nbrs)

	return nbrs, nil
}

// Degree returns the number of edges incident to id, or ErrNodeNotFound.
// Complexity: O(1).
func (g *Graph) Degree(id int) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	adj, ok := g.adjacency[id]
	if !ok {
		return 0, fmt.Errorf("core: Degree(%d): %w", id, ErrNodeNotFound)
	}

	return len(adj), nil
}

// Clone deep-copies the graph; the copy shares no state with the original.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	c := NewGraph()
	for id := range g.nodes {
		c.addNodeLocked(id)
	}
	for e := range g.edges {
		c.edges[e] = struct{}{}
		c.adjacency[e.U][e.V] = struct{}{}
		c.adjacency[e.V][e.U] = struct{}{}
	}

	return c
}

func sortEdgeSlice(edges []Edge) {
	sort.Slice(edges, func(i, j int) bool { return edges[i].less(edges[j]) })
}
