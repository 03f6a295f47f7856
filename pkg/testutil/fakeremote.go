// Package testutil provides an in-memory api.Remote for tests.
package testutil

import (
	"context"
	"fmt"
	"sync"

	"tableflip.dev/weekly/pkg/api"
	"tableflip.dev/weekly/pkg/todo"
)

// FakeRemote is an in-memory implementation of api.Remote that records how
// often each call was made.
type FakeRemote struct {
	mu     sync.Mutex
	tasks  []todo.Task
	nextID int

	// Error injection for testing
	ListErr     error
	CreateErr   error
	DeleteErr   error
	CompleteErr error

	ListCalls     int
	CreateCalls   int
	DeleteCalls   int
	CompleteCalls int
}

var _ api.Remote = (*FakeRemote)(nil)

// NewFakeRemote returns a FakeRemote seeded with tasks.
func NewFakeRemote(tasks ...todo.Task) *FakeRemote {
	f := &FakeRemote{}
	f.tasks = append(f.tasks, tasks...)
	return f
}

// Calls returns the total number of remote calls made.
func (f *FakeRemote) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.ListCalls + f.CreateCalls + f.DeleteCalls + f.CompleteCalls
}

// Tasks returns a copy of the stored tasks.
func (f *FakeRemote) Tasks() []todo.Task {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]todo.Task, len(f.tasks))
	copy(out, f.tasks)
	return out
}

// List implements api.Remote.
func (f *FakeRemote) List(_ context.Context) ([]todo.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ListCalls++
	if f.ListErr != nil {
		return nil, f.ListErr
	}
	out := make([]todo.Task, len(f.tasks))
	copy(out, f.tasks)
	return out, nil
}

// Create implements api.Remote.
func (f *FakeRemote) Create(_ context.Context, text string, day todo.Day) (todo.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.CreateCalls++
	if f.CreateErr != nil {
		return todo.Task{}, f.CreateErr
	}
	f.nextID++
	t := todo.Task{ID: fmt.Sprintf("fake-%d", f.nextID), Text: text, Day: day}
	f.tasks = append(f.tasks, t)
	return t, nil
}

// Delete implements api.Remote.
func (f *FakeRemote) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.DeleteCalls++
	if f.DeleteErr != nil {
		return f.DeleteErr
	}
	for i, t := range f.tasks {
		if t.ID == id {
			f.tasks = append(f.tasks[:i], f.tasks[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: delete %s: status 404", api.ErrRemote, id)
}

// Complete implements api.Remote.
func (f *FakeRemote) Complete(_ context.Context, id string) (todo.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.CompleteCalls++
	if f.CompleteErr != nil {
		return todo.Task{}, f.CompleteErr
	}
	for i := range f.tasks {
		if f.tasks[i].ID == id {
			f.tasks[i].Completed = true
			return f.tasks[i], nil
		}
	}
	return todo.Task{}, fmt.Errorf("%w: complete %s: status 404", api.ErrRemote, id)
}
