// Package evaluate scores an estimated cut against a reference (exact)
// cut: a row-per-edge membership table over the union of both edge sets,
// plus two headline scalars.
//
// What:
//
//   - Compare(reference, candidate) canonicalizes and deduplicates both
//     sides, then reports per-edge membership flags, Jaccard similarity
//     |∩|/|∪|, and the size ratio |candidate|/|reference|.
//
// Conventions (degenerate inputs):
//
//   - Two empty sets are trivially identical: Jaccard is 1.0 and the size
//     ratio is 0.
//   - A non-empty candidate against an empty reference cannot be ratioed:
//     SizeRatio is NaN (a sentinel, never a division by zero); use
//     Comparison.RatioDefined to branch.
//
// Edge equality canonicalizes orientation exactly like the rest of the
// module, so a reversed duplicate can never be double-counted.
package evaluate
