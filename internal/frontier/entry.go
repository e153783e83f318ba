// Package frontier holds the not-yet-expanded entries of a search: an
// immutable parent-linked Entry type and three orderings over it (FIFO
// Queue, LIFO Stack, stable MinQueue).
package frontier

import "github.com/katalvlaran/citysearch/core"

// Entry is one frontier element: a city plus the chain of entries that
// reached it. Entries are never mutated after creation; expanding a city
// creates a child whose Parent points back at it.
type Entry struct {
	City     string
	Parent   *Entry
	Hops     int     // edges from the root entry
	Cost     float64 // accumulated edge cost, when a strategy tracks one
	Priority float64 // ordering key, used by MinQueue only
}

// Root returns the seed entry for city with the given priority.
func Root(city string, priority float64) *Entry {
	return &Entry{City: city, Priority: priority}
}

// Child returns a new entry for city reached from e.
func (e *Entry) Child(city string, priority float64) *Entry {
	return &Entry{City: city, Parent: e, Hops: e.Hops + 1, Cost: e.Cost, Priority: priority}
}

// Step returns a child for city whose Cost is e.Cost plus step.
func (e *Entry) Step(city string, step, priority float64) *Entry {
	c := e.Child(city, priority)
	c.Cost += step

	return c
}

// Path rebuilds the route from the root to e (both inclusive).
// Cities are appended walking up the parent chain, then reversed once.
func (e *Entry) Path() core.Path {
	p := make(core.Path, 0, e.Hops+1)
	for cur := e; cur != nil; cur = cur.Parent {
		p = append(p, cur.City)
	}
	for i, j := 0, len(p)-1; i < j; i, j = i+1, j-1 {
		p[i], p[j] = p[j], p[i]
	}

	return p
}
