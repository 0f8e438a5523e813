// Package discover — ordered input set with deduplication.
package discover

import (
	"path/filepath"

	"github.com/gaurav-prasanna/mermshot/core/fetch"
)

// Queue keeps inputs in first-seen order and drops repeats.
type Queue struct {
	items []string
	seen  map[string]bool
}

// NewQueue creates an empty Queue.
func NewQueue() *Queue {
	return &Queue{
		seen: make(map[string]bool),
	}
}

// Add enqueues an input if it hasn't been seen before.
// Local paths are compared in cleaned form so "./a.md" and "a.md" collapse.
func (q *Queue) Add(input string) {
	key := input
	if !fetch.IsURL(input) {
		key = filepath.Clean(input)
	}
	if q.seen[key] {
		return
	}
	q.seen[key] = true
	q.items = append(q.items, input)
}

// All returns all inputs in insertion order.
func (q *Queue) All() []string {
	return q.items
}
