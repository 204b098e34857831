package exact

import (
	"context"
	"errors"
	"fmt"

	"github.com/tessarin/mincut/convert"
	"github.com/tessarin/mincut/core"
)

// ErrNilGraph is returned when a nil *core.Graph is passed to MinCut.
var ErrNilGraph = errors.New("exact: graph is nil")

// network is the unit-capacity flow network of one s–t computation:
// residual capacities plus a sorted adjacency for deterministic BFS.
type network struct {
	residual map[int]map[int]int
	nbrs     map[int][]int
}

// MinCut returns the exact minimum edge cut of g, sorted canonically.
// Disconnected or edgeless graphs yield the empty cut.
func MinCut(ctx context.Context, g *core.Graph) ([]core.Edge, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if ctx == nil {
		ctx = context.Background()
	}

	if g.EdgeCount() == 0 || !convert.IsConnected(g) {
		return []core.Edge{}, nil
	}

	nodes := g.Nodes()
	source := nodes[0]

	var best []core.Edge
	for _, sink := range nodes[1:] {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		cut, err := minSTCut(ctx, g, source, sink)
		if err != nil {
			return nil, err
		}
		if best == nil || len(cut) < len(best) {
			best = cut
		}
		// A connected graph's cut cannot shrink below one edge.
		if len(best) == 1 {
			break
		}
	}

	return best, nil
}

// minSTCut computes one minimum s–t cut with Edmonds–Karp: saturate BFS
// augmenting paths, then read the cut off residual reachability from s.
// Complexity: O(V·E²) time, O(V+E) memory.
func minSTCut(ctx context.Context, g *core.Graph, source, sink int) ([]core.Edge, error) {
	net := buildNetwork(g)

	for {
		path, err := bfsAugmentingPath(ctx, net, source, sink)
		if err != nil {
			return nil, err
		}
		if path == nil {
			break
		}
		// Unit capacities: the bottleneck of any augmenting path is 1.
		for i := 0; i < len(path)-1; i++ {
			u, v := path[i], path[i+1]
			net.residual[u][v]--
			net.residual[v][u]++
		}
	}

	reachable := residualReachable(net, source)
	if reachable[sink] {
		return nil, fmt.Errorf("exact: sink %d reachable after max flow from %d", sink, source)
	}

	cut := make([]core.Edge, 0)
	for _, e := range g.Edges() {
		if reachable[e.U] != reachable[e.V] {
			cut = append(cut, e)
		}
	}

	return cut, nil
}

// buildNetwork expands each undirected edge into a unit-capacity arc pair.
func buildNetwork(g *core.Graph) *network {
	net := &network{
		residual: make(map[int]map[int]int, g.NodeCount()),
		nbrs:     make(map[int][]int, g.NodeCount()),
	}
	for _, id := range g.Nodes() {
		net.residual[id] = make(map[int]int)
		nbrs, _ := g.Neighbors(id)
		net.nbrs[id] = nbrs
	}
	for _, e := range g.Edges() {
		net.residual[e.U][e.V] = 1
		net.residual[e.V][e.U] = 1
	}

	return net
}

// bfsAugmentingPath finds a shortest source→sink path with positive
// residual capacity, or nil when none remains. Neighbors are visited in
// ascending order, keeping the chosen cut deterministic.
func bfsAugmentingPath(ctx context.Context, net *network, source, sink int) ([]int, error) {
	parent := map[int]int{source: source}
	queue := []int{source}

	for len(queue) > 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		u := queue[0]
		queue = queue[1:]
		for _, v := range net.nbrs[u] {
			if _, seen := parent[v]; seen || net.residual[u][v] <= 0 {
				continue
			}
			parent[v] = u
			if v == sink {
				// Reconstruct sink→source, then reverse.
				path := []int{sink}
				for cur := sink; cur != source; {
					cur = parent[cur]
					path = append(path, cur)
				}
				for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
					path[i], path[j] = path[j], path[i]
				}

				return path, nil
			}
			queue = append(queue, v)
		}
	}

	return nil, nil
}

// residualReachable marks every node reachable from source through arcs
// with remaining capacity.
func residualReachable(net *network, source int) map[int]bool {
	reachable := map[int]bool{source: true}
	queue := []int{source}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, v := range net.nbrs[u] {
			if !reachable[v] && net.residual[u][v] > 0 {
				reachable[v] = true
				queue = append(queue, v)
			}
		}
	}

	return reachable
}
