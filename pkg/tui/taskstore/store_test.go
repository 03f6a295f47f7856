package taskstore

import (
	"fmt"
	"testing"

	"tableflip.dev/weekly/pkg/todo"
)

func task(id string, day todo.Day) todo.Task {
	return todo.Task{ID: id, Text: "task " + id, Day: day}
}

// count counts tasks across all seven buckets.
func (s Store) count() int {
	n := 0
	for _, b := range s.buckets {
		n += len(b)
	}
	return n
}

// lookup finds a task by id in the day buckets.
func (s Store) lookup(id string) (todo.Task, bool) {
	for _, d := range todo.Week() {
		for _, t := range s.buckets[d] {
			if t.ID == id {
				return t, true
			}
		}
	}
	return todo.Task{}, false
}

func TestNewHasAllBucketsEmpty(t *testing.T) {
	s := New()
	for _, d := range todo.Week() {
		got := s.Tasks(d)
		if got == nil || len(got) != 0 {
			t.Fatalf("bucket %s: expected empty non-nil slice, got %#v", d, got)
		}
	}
	if _, ok := s.Selected(); ok {
		t.Fatalf("new store should start in grid mode")
	}
}

func TestSetAllGroupsPreservingOrder(t *testing.T) {
	in := []todo.Task{
		task("1", todo.Rabu),
		task("2", todo.Senin),
		task("3", todo.Rabu),
		task("4", todo.Minggu),
		task("5", todo.Senin),
	}
	s := New().SetAll(in)

	for _, d := range todo.Week() {
		var want []string
		for _, tk := range in {
			if tk.Day == d {
				want = append(want, tk.ID)
			}
		}
		got := s.Tasks(d)
		if len(got) != len(want) {
			t.Fatalf("%s: want %d tasks, got %d", d, len(want), len(got))
		}
		for i := range want {
			if got[i].ID != want[i] {
				t.Fatalf("%s[%d]: want %s, got %s", d, i, want[i], got[i].ID)
			}
		}
	}
	if s.count() != len(in) {
		t.Fatalf("expected %d tasks total, got %d", len(in), s.count())
	}
}

func TestSetAllReplacesEverything(t *testing.T) {
	s := New().SetAll([]todo.Task{task("old", todo.Kamis)})
	s = s.SetAll([]todo.Task{task("new", todo.Jumat)})
	if len(s.Tasks(todo.Kamis)) != 0 {
		t.Fatalf("previous fetch must not survive SetAll")
	}
	if _, ok := s.lookup("old"); ok {
		t.Fatalf("old task still findable")
	}
	if got, ok := s.lookup("new"); !ok || got.Day != todo.Jumat {
		t.Fatalf("expected new task on Jumat, got %+v %v", got, ok)
	}
}

func TestSetAllKeepsUnrecognizedDaysOutOfBuckets(t *testing.T) {
	s := New().SetAll([]todo.Task{
		task("a", todo.Senin),
		task("b", todo.Day("Monday")),
		task("c", todo.Day("")),
	})
	if s.count() != 1 {
		t.Fatalf("expected one bucketed task, got %d", s.count())
	}
	if got := s.Unrecognized(); len(got) != 2 || got[0].ID != "b" || got[1].ID != "c" {
		t.Fatalf("unexpected unrecognized tasks: %+v", got)
	}
	if s.Tasks(todo.Day("Monday")) != nil {
		t.Fatalf("unknown day must not become a bucket")
	}
}

func TestTransitionsDoNotMutateReceiver(t *testing.T) {
	base := New().SetAll([]todo.Task{task("1", todo.Senin)})
	selected := base.Select(todo.Senin)
	replaced := selected.SetAll(nil)

	if _, ok := base.Selected(); ok {
		t.Fatalf("Select mutated the receiver")
	}
	if len(selected.Tasks(todo.Senin)) != 1 {
		t.Fatalf("SetAll mutated the receiver")
	}
	if day, ok := replaced.Selected(); !ok || day != todo.Senin {
		t.Fatalf("SetAll must keep the selection, got %q %v", day, ok)
	}
	if _, ok := replaced.Clear().Selected(); ok {
		t.Fatalf("Clear should return to grid mode")
	}
}

func TestApplyDropsStaleResults(t *testing.T) {
	s := New()
	s, ok := s.Apply(2, []todo.Task{task("fresh", todo.Selasa)})
	if !ok {
		t.Fatalf("first apply should succeed")
	}
	stale, ok := s.Apply(1, []todo.Task{task("stale", todo.Selasa)})
	if ok {
		t.Fatalf("older fetch should be rejected")
	}
	if _, found := stale.lookup("fresh"); !found {
		t.Fatalf("stale apply must leave the store unchanged")
	}
	s, ok = s.Apply(2, []todo.Task{task("same", todo.Selasa)})
	if !ok {
		t.Fatalf("same sequence should still apply")
	}
	if _, found := s.lookup("same"); !found {
		t.Fatalf("expected same-sequence result applied")
	}
}

func TestSetAllLargeInput(t *testing.T) {
	var in []todo.Task
	week := todo.Week()
	for i := 0; i < 70; i++ {
		in = append(in, task(fmt.Sprint(i), week[i%7]))
	}
	s := New().SetAll(in)
	for _, d := range week {
		if n := len(s.Tasks(d)); n != 10 {
			t.Fatalf("%s: expected 10 tasks, got %d", d, n)
		}
	}
}
