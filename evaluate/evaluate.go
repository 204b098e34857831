package evaluate

import (
	"math"
	"sort"

	"github.com/tessarin/mincut/core"
)

// Row flags one edge of the union with its membership in each cut.
type Row struct {
	Edge core.Edge

	// InReference marks membership in the reference (exact) cut.
	InReference bool

	// InCandidate marks membership in the candidate (estimated) cut.
	InCandidate bool
}

// Comparison is the outcome of Compare: the membership table plus summary
// statistics.
type Comparison struct {
	// Rows covers the union of both cuts, sorted canonically.
	Rows []Row

	// Intersection and Union are the overlap cardinalities behind Jaccard.
	Intersection int
	Union        int

	// Jaccard is |reference ∩ candidate| / |reference ∪ candidate|;
	// 1.0 when both cuts are empty.
	Jaccard float64

	// SizeRatio is |candidate| / |reference|; 0 when both cuts are empty,
	// NaN when only the reference is empty.
	SizeRatio float64
}

// RatioDefined reports whether SizeRatio carries a meaningful value
// (false only for a non-empty candidate measured against an empty
// reference).
func (c *Comparison) RatioDefined() bool {
	return !math.IsNaN(c.SizeRatio)
}

// Compare builds the membership table and summary scalars for a reference
// and a candidate cut. Inputs are canonicalized and deduplicated, so
// callers may pass edges in either orientation.
// Complexity: O((R+C) log(R+C)).
func Compare(reference, candidate []core.Edge) *Comparison {
	ref := toSet(reference)
	cand := toSet(candidate)

	union := make(map[core.Edge]struct{}, len(ref)+len(cand))
	for e := range ref {
		union[e] = struct{}{}
	}
	for e := range cand {
		union[e] = struct{}{}
	}

	cmp := &Comparison{
		Rows:  make([]Row, 0, len(union)),
		Union: len(union),
	}
	for e := range union {
		_, inRef := ref[e]
		_, inCand := cand[e]
		if inRef && inCand {
			cmp.Intersection++
		}
		cmp.Rows = append(cmp.Rows, Row{Edge: e, InReference: inRef, InCandidate: inCand})
	}
	sortRows(cmp.Rows)

	cmp.Jaccard = jaccard(cmp.Intersection, cmp.Union)
	cmp.SizeRatio = sizeRatio(len(cand), len(ref))

	return cmp
}

// jaccard computes |∩|/|∪|, defining ∅ vs ∅ as identical (1.0).
func jaccard(intersection, union int) float64 {
	if union == 0 {
		return 1.0
	}

	return float64(intersection) / float64(union)
}

// sizeRatio computes |candidate|/|reference| with the documented
// degenerate conventions; it never divides by zero.
func sizeRatio(candidate, reference int) float64 {
	if reference == 0 {
		if candidate == 0 {
			return 0
		}

		return math.NaN()
	}

	return float64(candidate) / float64(reference)
}

func toSet(edges []core.Edge) map[core.Edge]struct{} {
	set := make(map[core.Edge]struct{}, len(edges))
	for _, e := range edges {
		set[e.Canonical()] = struct{}{}
	}

	return set
}

func sortRows(rows []Row) {
	// Rows carry canonical edges; order them like core.SortEdges does.
	sort.Slice(rows, func(i, j int) bool {
		a, b := rows[i].Edge, rows[j].Edge
		if a.U != b.U {
			return a.U < b.U
		}

		return a.V < b.V
	})
}
