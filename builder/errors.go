package builder

import "errors"

// Sentinel errors for topology constructors. Callers branch with errors.Is;
// constructors wrap these with method context via %w.
var (
	// ErrTooFewNodes indicates n is smaller than the minimum the requested
	// topology supports (e.g. a cycle needs at least 3 nodes).
	ErrTooFewNodes = errors.New("builder: too few nodes")

	// ErrInvalidProbability indicates an edge probability outside [0,1].
	ErrInvalidProbability = errors.New("builder: probability out of range")
)
