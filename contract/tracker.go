package contract

import (
	"fmt"
	"sort"
)

// Tracker maps each surviving super-node to the set of original nodes
// absorbed into it.
//
// Invariant: the member sets partition the original node set at all times —
// every original node belongs to exactly one cluster. Only Merge mutates
// the partition; the whole Tracker is discarded at trial end.
//
// A Tracker is not goroutine-safe; each trial owns a fresh one.
type Tracker struct {
	clusters map[int]map[int]struct{}
}

// NewTracker creates one singleton cluster per node.
// Complexity: O(V).
func NewTracker(nodes []int) *Tracker {
	t := &Tracker{clusters: make(map[int]map[int]struct{}, len(nodes))}
	for _, n := range nodes {
		t.clusters[n] = map[int]struct{}{n: {}}
	}

	return t
}

// Merge unions fromNode's members into intoNode's cluster and discards the
// fromNode entry. Both arguments must currently be representatives;
// otherwise ErrUnknownCluster is returned and nothing changes. Merging a
// representative into itself is a no-op.
// Complexity: O(|members(fromNode)|).
func (t *Tracker) Merge(intoNode, fromNode int) error {
	into, ok := t.clusters[intoNode]
	if !ok {
		return fmt.Errorf("contract: Merge(into=%d): %w", intoNode, ErrUnknownCluster)
	}
	from, ok := t.clusters[fromNode]
	if !ok {
		return fmt.Errorf("contract: Merge(from=%d): %w", fromNode, ErrUnknownCluster)
	}
	if intoNode == fromNode {
		return nil
	}

	for n := range from {
		into[n] = struct{}{}
	}
	delete(t.clusters, fromNode)

	return nil
}

// MembersOf returns the sorted original node IDs of the cluster whose
// representative is node, or ErrUnknownCluster.
// Complexity: O(k log k) for cluster size k.
func (t *Tracker) MembersOf(node int) ([]int, error) {
	set, ok := t.clusters[node]
	if !ok {
		return nil, fmt.Errorf("contract: MembersOf(%d): %w", node, ErrUnknownCluster)
	}

	members := make([]int, 0, len(set))
	for n := range set {
		members = append(members, n)
	}
	sort.Ints(members)

	return members, nil
}

// Representatives returns the surviving super-node IDs, ascending.
// Complexity: O(C log C) for C clusters.
func (t *Tracker) Representatives() []int {
	reps := make([]int, 0, len(t.clusters))
	for r := range t.clusters {
		reps = append(reps, r)
	}
	sort.Ints(reps)

	return reps
}

// Len returns the number of surviving clusters.
func (t *Tracker) Len() int {
	return len(t.clusters)
}

// Clone deep-copies every cluster member set. Needed only for step
// snapshots, which must be unaffected by later merges.
// Complexity: O(V).
func (t *Tracker) Clone() *Tracker {
	c := &Tracker{clusters: make(map[int]map[int]struct{}, len(t.clusters))}
	for rep, set := range t.clusters {
		dup := make(map[int]struct{}, len(set))
		for n := range set {
			dup[n] = struct{}{}
		}
		c.clusters[rep] = dup
	}

	return c
}

// members exposes a cluster's member set to the engine without copying.
func (t *Tracker) members(node int) (map[int]struct{}, bool) {
	set, ok := t.clusters[node]

	return set, ok
}

// snapshot renders the partition as representative → sorted members.
func (t *Tracker) snapshot() map[int][]int {
	out := make(map[int][]int, len(t.clusters))
	for rep := range t.clusters {
		members, _ := t.MembersOf(rep)
		out[rep] = members
	}

	return out
}
