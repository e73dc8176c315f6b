package display

import "strings"

// DefaultCapacity is the registry size used when none is configured.
const DefaultCapacity = 4

// Registry is the fixed-capacity ordered buffer of the most recent
// rendered lines, oldest first. Its length never changes: every append
// evicts the same count from the front.
//
// Registry is not safe for concurrent use; the display engine serializes
// access.
type Registry struct {
	lines []string
}

// NewRegistry creates a registry of exactly capacity empty lines.
// Capacities below one fall back to DefaultCapacity.
func NewRegistry(capacity int) *Registry {
	if capacity < 1 {
		capacity = DefaultCapacity
	}
	return &Registry{lines: make([]string, capacity)}
}

// Capacity returns the fixed line count.
func (r *Registry) Capacity() int {
	return len(r.lines)
}

// Lines returns a copy of the registry content, oldest first.
func (r *Registry) Lines() []string {
	out := make([]string, len(r.lines))
	copy(out, r.lines)
	return out
}

// Push appends the given lines, evicting the same count from the front,
// and returns how many entries were appended. Content containing line
// breaks is split into separate entries first: a string with k-1 embedded
// breaks counts as k pushes. A push larger than the capacity keeps only
// the newest entries.
func (r *Registry) Push(lines ...string) int {
	var entries []string
	for _, line := range lines {
		entries = append(entries, strings.Split(line, "\n")...)
	}
	if len(entries) == 0 {
		return 0
	}

	capacity := len(r.lines)
	r.lines = append(r.lines, entries...)
	r.lines = r.lines[len(r.lines)-capacity:]
	return len(entries)
}

// Clear resets every slot to empty. Length is unchanged.
func (r *Registry) Clear() {
	for i := range r.lines {
		r.lines[i] = ""
	}
}
