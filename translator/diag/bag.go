package diag

import (
	"fmt"
	"sort"
	"sync"
)

// Bag accumulates translation shortfalls for one run, deduplicated by exact
// message with an occurrence count. It is safe for concurrent use so
// per-declaration emission can run in parallel.
type Bag struct {
	mu     sync.Mutex
	counts map[string]int
}

// NewBag creates an empty run-scoped aggregator
func NewBag() *Bag {
	return &Bag{counts: map[string]int{}}
}

// Report records one occurrence of the message
func (b *Bag) Report(message string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.counts[message]++
}

// Reportf records one occurrence of the formatted message
func (b *Bag) Reportf(format string, args ...interface{}) {
	b.Report(fmt.Sprintf(format, args...))
}

// Count returns how many times the exact message was reported
func (b *Bag) Count(message string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.counts[message]
}

// Len returns the number of distinct messages
func (b *Bag) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.counts)
}

// Entry is one distinct message with its occurrence count
type Entry struct {
	Message string
	Count   int
}

// Entries returns all distinct messages sorted by descending count, ties
// broken by message text.
func (b *Bag) Entries() []Entry {
	b.mu.Lock()
	defer b.mu.Unlock()
	entries := make([]Entry, 0, len(b.counts))
	for message, count := range b.counts {
		entries = append(entries, Entry{Message: message, Count: count})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Message < entries[j].Message
	})
	return entries
}
