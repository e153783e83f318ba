package core

import (
	"fmt"
	"strings"
)

// Path is an ordered route of cities, start and end inclusive.
type Path []string

// Hops returns the number of edges traversed, or 0 for an empty path.
func (p Path) Hops() int {
	if len(p) == 0 {
		return 0
	}

	return len(p) - 1
}

// Start returns the first city, or "" for an empty path.
func (p Path) Start() string {
	if len(p) == 0 {
		return ""
	}

	return p[0]
}

// End returns the last city, or "" for an empty path.
func (p Path) End() string {
	if len(p) == 0 {
		return ""
	}

	return p[len(p)-1]
}

// String joins the cities with " -> ".
func (p Path) String() string {
	return strings.Join(p, " -> ")
}

// Validate checks the route contract: p is non-empty, starts at start,
// ends at end, and visits no city twice.
func (p Path) Validate(start, end string) error {
	if len(p) == 0 {
		return fmt.Errorf("%w: empty", ErrInvalidPath)
	}
	if p.Start() != start {
		return fmt.Errorf("%w: starts at %q, want %q", ErrInvalidPath, p.Start(), start)
	}
	if p.End() != end {
		return fmt.Errorf("%w: ends at %q, want %q", ErrInvalidPath, p.End(), end)
	}
	seen := make(map[string]int, len(p))
	for i, city := range p {
		if j, dup := seen[city]; dup {
			return fmt.Errorf("%w: %q repeated at positions %d and %d", ErrInvalidPath, city, j, i)
		}
		seen[city] = i
	}

	return nil
}
