package builder

import (
	"fmt"
	"math/rand"

	"github.com/tessarin/mincut/core"
)

// Method tags used in wrapped error context.
const (
	methodPath         = "Path"
	methodCycle        = "Cycle"
	methodComplete     = "Complete"
	methodStar         = "Star"
	methodRandomSparse = "RandomSparse"

	minCycleNodes = 3
	minStarNodes  = 2

	// defaultSeed feeds RandomSparse when no rng is supplied; fixed so the
	// fallback stream is reproducible.
	defaultSeed int64 = 1
)

// Path builds the path graph P_n over nodes 1..n: 1-2-…-n.
// Requires n ≥ 1.
// Complexity: O(n).
func Path(n int) (*core.Graph, error) {
	if n < 1 {
		return nil, fmt.Errorf("%s: n=%d < min=1: %w", methodPath, n, ErrTooFewNodes)
	}

	g := core.NewGraph()
	g.AddNode(1)
	for i := 1; i < n; i++ {
		if err := g.AddEdge(i, i+1); err != nil {
			return nil, fmt.Errorf("%s: %w", methodPath, err)
		}
	}

	return g, nil
}

// Cycle builds the cycle graph C_n over nodes 1..n.
// Requires n ≥ 3. Its minimum cut has size 2 (any two edges).
// Complexity: O(n).
func Cycle(n int) (*core.Graph, error) {
	if n < minCycleNodes {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewNodes)
	}

	g := core.NewGraph()
	for i := 1; i <= n; i++ {
		next := i%n + 1
		if err := g.AddEdge(i, next); err != nil {
			return nil, fmt.Errorf("%s: %w", methodCycle, err)
		}
	}

	return g, nil
}

// Complete builds the complete graph K_n over nodes 1..n.
// Requires n ≥ 1.
// Complexity: O(n²).
func Complete(n int) (*core.Graph, error) {
	if n < 1 {
		return nil, fmt.Errorf("%s: n=%d < min=1: %w", methodComplete, n, ErrTooFewNodes)
	}

	g := core.NewGraph()
	g.AddNode(1)
	for i := 1; i <= n; i++ {
		for j := i + 1; j <= n; j++ {
			if err := g.AddEdge(i, j); err != nil {
				return nil, fmt.Errorf("%s: %w", methodComplete, err)
			}
		}
	}

	return g, nil
}

// Star builds the star S_n: center 1 joined to leaves 2..n.
// Requires n ≥ 2. Every single spoke is a minimum cut.
// Complexity: O(n).
func Star(n int) (*core.Graph, error) {
	if n < minStarNodes {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewNodes)
	}

	g := core.NewGraph()
	for i := 2; i <= n; i++ {
		if err := g.AddEdge(1, i); err != nil {
			return nil, fmt.Errorf("%s: %w", methodStar, err)
		}
	}

	return g, nil
}

// Bowtie builds two triangles {1,2,3} and {4,5,6} joined by the bridge
// edge {3,4}. The unique minimum cut is that bridge.
// Complexity: O(1).
func Bowtie() *core.Graph {
	g := core.NewGraph()
	pairs := [][2]int{{1, 2}, {2, 3}, {1, 3}, {4, 5}, {5, 6}, {4, 6}, {3, 4}}
	for _, p := range pairs {
		// All pairs are distinct constants; AddEdge cannot fail here.
		_ = g.AddEdge(p[0], p[1])
	}

	return g
}

// RandomSparse builds an Erdős–Rényi G(n,p) graph over nodes 1..n: each of
// the n(n-1)/2 candidate edges is present independently with probability p.
// A nil rng falls back to a fixed deterministic stream.
// Requires n ≥ 1 and p ∈ [0,1]. The result may be disconnected.
// Complexity: O(n²).
func RandomSparse(n int, p float64, rng *rand.Rand) (*core.Graph, error) {
	if n < 1 {
		return nil, fmt.Errorf("%s: n=%d < min=1: %w", methodRandomSparse, n, ErrTooFewNodes)
	}
	if p < 0 || p > 1 {
		return nil, fmt.Errorf("%s: p=%g: %w", methodRandomSparse, p, ErrInvalidProbability)
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(defaultSeed))
	}

	g := core.NewGraph()
	for i := 1; i <= n; i++ {
		g.AddNode(i)
	}
	// Candidate edges in ascending (i,j) order keeps the draw sequence,
	// and therefore the graph, deterministic for a fixed rng state.
	for i := 1; i <= n; i++ {
		for j := i + 1; j <= n; j++ {
			if rng.Float64() < p {
				if err := g.AddEdge(i, j); err != nil {
					return nil, fmt.Errorf("%s: %w", methodRandomSparse, err)
				}
			}
		}
	}

	return g, nil
}

// Disjoint merges node-disjoint graphs into one graph. Shared node IDs are
// merged as-is; pass graphs with distinct ID ranges to build disconnected
// fixtures.
// Complexity: O(ΣV + ΣE).
func Disjoint(gs ...*core.Graph) *core.Graph {
	out := core.NewGraph()
	for _, g := range gs {
		if g == nil {
			continue
		}
		for _, id := range g.Nodes() {
			out.AddNode(id)
		}
		for _, e := range g.Edges() {
			// Edges come from a valid graph; re-adding cannot fail.
			_ = out.AddEdge(e.U, e.V)
		}
	}

	return out
}
