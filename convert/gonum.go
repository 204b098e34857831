package convert

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/tessarin/mincut/core"
)

// ToGonum converts g into a gonum simple undirected graph with matching
// node identifiers.
// Complexity: O(V + E).
func ToGonum(g *core.Graph) *simple.UndirectedGraph {
	ug := simple.NewUndirectedGraph()
	for _, id := range g.Nodes() {
		ug.AddNode(simple.Node(int64(id)))
	}
	for _, e := range g.Edges() {
		ug.SetEdge(simple.Edge{
			F: simple.Node(int64(e.U)),
			T: simple.Node(int64(e.V)),
		})
	}

	return ug
}

// FromGonum converts an undirected gonum graph into a core.Graph.
// Self-loops are rejected with core.ErrSelfLoop.
// Complexity: O(V + E).
func FromGonum(ug interface {
	graph.Undirected
	Edges() graph.Edges
}) (*core.Graph, error) {
	g := core.NewGraph()

	nodes := ug.Nodes()
	for nodes.Next() {
		g.AddNode(int(nodes.Node().ID()))
	}

	edges := ug.Edges()
	for edges.Next() {
		e := edges.Edge()
		if err := g.AddEdge(int(e.From().ID()), int(e.To().ID())); err != nil {
			return nil, fmt.Errorf("convert: FromGonum: %w", err)
		}
	}

	return g, nil
}

// Components returns the connected components of g as sorted node-ID
// slices, ordered by their smallest member.
// Complexity: O(V + E) plus sorting.
func Components(g *core.Graph) [][]int {
	raw := topo.ConnectedComponents(ToGonum(g))

	comps := make([][]int, 0, len(raw))
	for _, c := range raw {
		ids := make([]int, 0, len(c))
		for _, n := range c {
			ids = append(ids, int(n.ID()))
		}
		sort.Ints(ids)
		comps = append(comps, ids)
	}
	sort.Slice(comps, func(i, j int) bool { return comps[i][0] < comps[j][0] })

	return comps
}

// IsConnected reports whether g has at most one connected component.
// Graphs with zero or one node count as connected.
func IsConnected(g *core.Graph) bool {
	return len(Components(g)) <= 1
}
