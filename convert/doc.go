// Package convert bridges core.Graph and gonum's graph types, and exposes
// the connectivity queries built on that bridge.
//
// What:
//
//   - ToGonum / FromGonum translate between core.Graph and
//     *simple.UndirectedGraph, preserving node identifiers.
//   - Components and IsConnected answer connectivity questions through
//     gonum's topo package; the contraction orchestrator uses IsConnected
//     for its disconnected-input precondition.
//
// Why:
//
//   - Keeps gonum interop (and the single algorithmic dependency on it) in
//     one place instead of leaking graph.Node plumbing into callers.
//
// Notes:
//
//   - Node identifiers round-trip as int64 ↔ int; identifiers outside the
//     int range are not supported (node IDs are plain ints everywhere else).
package convert
