// Package mincut estimates minimum cuts of undirected graphs with
// Karger's randomized edge-contraction algorithm, and scores the estimate
// against an exact reference cut.
//
// 🚀 What is mincut?
//
//	A small, deterministic-by-seed toolkit built from focused subpackages:
//		• core     — Graph & canonical Edge primitives, edge-list parsing
//		• edgeset  — O(1) insert / remove / uniform-random-pick edge set
//		• contract — contraction tracker, engine and multi-trial orchestrator
//		• exact    — exact reference minimum cut (Edmonds–Karp max-flow)
//		• evaluate — cut-vs-cut comparison table, Jaccard & size ratio
//		• builder  — deterministic test topologies (cycle, bowtie, G(n,p), …)
//		• convert  — gonum interop and connectivity queries
//
// ✨ Why mincut?
//
//   - Honest randomness – per-trial RNG streams derived from one seed:
//     reproducible runs, parallel trials, monotone amplification
//   - Value-semantics trials – no shared mutable state, no locks in the hot loop
//   - Canonical edges everywhere – a reversed pair can never sneak in twice
//
// Quick ASCII example (the “bowtie”):
//
//	1───2        5───6
//	 \  │        │  /
//	  \ │        │ /
//	    3────────4
//
//	Two triangles joined by the bridge {3,4}; the bridge is the unique
//	minimum cut, and contract.MinCut finds it with probability → 1 as the
//	trial count grows.
//
// The cmd/mincut CLI wires the pieces together: parse or generate a graph,
// estimate, compute the exact reference, and print the comparison table.
//
//	go get github.com/tessarin/mincut
package mincut
