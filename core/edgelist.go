package core

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// FromPairs builds a Graph from raw integer pairs, one edge per row.
//
// Every row must hold exactly two distinct integers; anything else is
// rejected with ErrMalformedPair (wrapped with the offending row index)
// rather than silently dropped. Duplicate edges collapse into one.
// Complexity: O(len(pairs)).
func FromPairs(pairs [][]int) (*Graph, error) {
	g := NewGraph()
	for i, p := range pairs {
		if len(p) != 2 {
			return nil, fmt.Errorf("core: row %d has %d values, want 2: %w", i, len(p), ErrMalformedPair)
		}
		if err := g.AddEdge(p[0], p[1]); err != nil {
			return nil, fmt.Errorf("core: row %d: %w", i, err)
		}
	}

	return g, nil
}

// ParseEdgeList reads a plain-text edge list from r and builds a Graph.
//
// Accepted row formats, one edge per line:
//
//	1,2        comma separated
//	1 2        whitespace separated
//	(1, 2)     tuple syntax
//
// Blank lines and lines starting with '#' are skipped. A single leading
// non-numeric header line (as produced by CSV exports) is tolerated; any
// other malformed line aborts parsing with a descriptive error wrapping
// ErrMalformedPair.
// Complexity: O(input size).
func ParseEdgeList(r io.Reader) (*Graph, error) {
	g := NewGraph()
	scanner := bufio.NewScanner(r)

	line := 0
	sawRow := false
	for scanner.Scan() {
		line++
		raw := strings.TrimSpace(scanner.Text())
		if raw == "" || strings.HasPrefix(raw, "#") {
			continue
		}

		u, v, err := parsePairLine(raw)
		if err != nil {
			// Tolerate one header line before any data row.
			if !sawRow {
				sawRow = true
				continue
			}

			return nil, fmt.Errorf("core: line %d %q: %w", line, raw, err)
		}
		sawRow = true

		if err = g.AddEdge(u, v); err != nil {
			return nil, fmt.Errorf("core: line %d: %w", line, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("core: reading edge list: %w", err)
	}

	return g, nil
}

// parsePairLine extracts the two integer endpoints from one edge-list row.
func parsePairLine(raw string) (int, int, error) {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "(")
	s = strings.TrimSuffix(s, ")")

	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ';' || r == ' ' || r == '\t'
	})
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("%d values, want 2: %w", len(fields), ErrMalformedPair)
	}

	u, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, fmt.Errorf("bad endpoint %q: %w", fields[0], ErrMalformedPair)
	}
	v, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, fmt.Errorf("bad endpoint %q: %w", fields[1], ErrMalformedPair)
	}

	return u, v, nil
}
