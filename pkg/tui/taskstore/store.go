// Package taskstore holds the grouped-by-day snapshot the TUI renders from.
// A Store is a value: every transition returns a new Store and leaves the
// receiver untouched.
package taskstore

import "tableflip.dev/weekly/pkg/todo"

// Store is the task collection grouped into the seven day buckets plus the
// current day selection.
type Store struct {
	buckets      map[todo.Day][]todo.Task
	unrecognized []todo.Task
	selected     todo.Day
	applied      uint64
}

// New returns an empty store with all seven buckets present and no
// selection.
func New() Store {
	return Store{buckets: emptyBuckets()}
}

func emptyBuckets() map[todo.Day][]todo.Task {
	b := make(map[todo.Day][]todo.Task, 7)
	for _, d := range todo.Week() {
		b[d] = []todo.Task{}
	}
	return b
}

// SetAll replaces the whole collection with tasks, grouped by day in the
// order given. Tasks whose day is not a known label land in Unrecognized.
func (s Store) SetAll(tasks []todo.Task) Store {
	next := s
	next.buckets = emptyBuckets()
	next.unrecognized = nil
	for _, t := range tasks {
		if _, ok := next.buckets[t.Day]; ok {
			next.buckets[t.Day] = append(next.buckets[t.Day], t)
			continue
		}
		next.unrecognized = append(next.unrecognized, t)
	}
	return next
}

// Apply is SetAll for the result of fetch number seq. Results older than the
// last applied fetch are dropped and ok is false.
func (s Store) Apply(seq uint64, tasks []todo.Task) (next Store, ok bool) {
	if seq < s.applied {
		return s, false
	}
	next = s.SetAll(tasks)
	next.applied = seq
	return next, true
}

// Select switches to the detail view of day.
func (s Store) Select(day todo.Day) Store {
	next := s
	next.selected = day
	return next
}

// Clear returns to the grid view.
func (s Store) Clear() Store {
	next := s
	next.selected = ""
	return next
}

// Selected returns the selected day and whether one is selected.
func (s Store) Selected() (todo.Day, bool) {
	return s.selected, s.selected != ""
}

// Tasks returns the bucket for day. Unknown days yield nil.
func (s Store) Tasks(day todo.Day) []todo.Task {
	return s.buckets[day]
}

// Unrecognized returns tasks from the last fetch whose day matched none of
// the seven labels.
func (s Store) Unrecognized() []todo.Task {
	return s.unrecognized
}
