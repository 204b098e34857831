// Package edgeset provides a mutable edge collection with O(1) insertion,
// O(1) removal by value, and O(1) uniform random selection — the hot data
// structure of the contraction loop.
//
// What:
//
//   - Set pairs an edge slice with an edge→index map. Removal overwrites the
//     removed slot with the current last element, fixes that element's
//     recorded index in the same operation, and truncates; this coupling is
//     the structure's core correctness requirement.
//   - Every entry point canonicalizes its edge argument, so an edge and its
//     reversed pair are one logical member.
//
// Why:
//
//   - Karger contraction draws a uniformly random surviving edge each step
//     and removes/rewires edges by value; a plain map cannot give uniform
//     O(1) selection and a plain slice cannot give O(1) removal.
//
// Concurrency:
//
//   - A Set is not goroutine-safe. Each contraction trial builds its own
//     fresh Set (FromGraph), so parallel trials never share one.
//
// Errors:
//
//   - ErrNotFound: removal of an edge that is not a member.
//   - ErrEmptySet: random selection from an empty set.
package edgeset
