package tasksync

import (
	"context"
	"errors"
	"testing"

	"tableflip.dev/weekly/pkg/testutil"
	"tableflip.dev/weekly/pkg/todo"
)

func TestRefreshSequence(t *testing.T) {
	remote := testutil.NewFakeRemote(todo.Task{ID: "1", Text: "a", Day: todo.Senin})
	s := New(context.Background(), remote, nil)

	first := s.Refresh()
	second := s.Refresh()

	m1, ok := first().(LoadedMsg)
	if !ok {
		t.Fatalf("first refresh returned %T", first())
	}
	m2 := second().(LoadedMsg)
	if m1.Seq >= m2.Seq {
		t.Fatalf("sequence not increasing: %d then %d", m1.Seq, m2.Seq)
	}
	if len(m2.Tasks) != 1 || m2.Tasks[0].ID != "1" {
		t.Fatalf("unexpected tasks: %+v", m2.Tasks)
	}
}

func TestRefreshFailure(t *testing.T) {
	remote := testutil.NewFakeRemote()
	remote.ListErr = errors.New("boom")
	s := New(context.Background(), remote, nil)

	msg, ok := s.Refresh()().(LoadFailedMsg)
	if !ok {
		t.Fatalf("expected LoadFailedMsg")
	}
	if msg.Err == nil {
		t.Fatalf("expected error")
	}
}

func TestCreatePreconditions(t *testing.T) {
	tests := map[string]struct {
		text string
		day  todo.Day
	}{
		"empty text":      {text: "", day: todo.Senin},
		"whitespace text": {text: "   \t", day: todo.Senin},
		"no day":          {text: "x", day: ""},
		"unknown day":     {text: "x", day: "Funday"},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			remote := testutil.NewFakeRemote()
			s := New(context.Background(), remote, nil)
			if cmd := s.Create(tc.text, tc.day); cmd != nil {
				t.Fatalf("expected nil command")
			}
			if remote.Calls() != 0 {
				t.Fatalf("expected no remote calls, got %d", remote.Calls())
			}
		})
	}
}

func TestCreateSendsTextAsTyped(t *testing.T) {
	remote := testutil.NewFakeRemote()
	s := New(context.Background(), remote, nil)

	msg := s.Create("  beli susu ", todo.Rabu)().(MutatedMsg)
	if msg.Err != nil || msg.Op != OpCreate {
		t.Fatalf("unexpected result: %+v", msg)
	}
	got := remote.Tasks()
	if len(got) != 1 || got[0].Text != "  beli susu " || got[0].Day != todo.Rabu || got[0].Completed {
		t.Fatalf("unexpected stored task: %+v", got)
	}
}

func TestMutationSuccessRefreshesOnce(t *testing.T) {
	tests := map[string]struct {
		run    func(s *Syncer) MutatedMsg
		notice string
		check  func(t *testing.T, r *testutil.FakeRemote)
	}{
		"create": {
			run:    func(s *Syncer) MutatedMsg { return s.Create("x", todo.Senin)().(MutatedMsg) },
			notice: NoticeAdded,
			check: func(t *testing.T, r *testutil.FakeRemote) {
				if len(r.Tasks()) != 2 {
					t.Fatalf("expected two tasks, got %d", len(r.Tasks()))
				}
			},
		},
		"remove": {
			run:    func(s *Syncer) MutatedMsg { return s.Remove("a")().(MutatedMsg) },
			notice: NoticeDeleted,
			check: func(t *testing.T, r *testutil.FakeRemote) {
				if len(r.Tasks()) != 0 {
					t.Fatalf("expected no tasks, got %d", len(r.Tasks()))
				}
			},
		},
		"complete": {
			run:    func(s *Syncer) MutatedMsg { return s.Complete("a")().(MutatedMsg) },
			notice: NoticeCompleted,
			check: func(t *testing.T, r *testutil.FakeRemote) {
				if !r.Tasks()[0].Completed {
					t.Fatalf("expected task to be completed")
				}
			},
		},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			remote := testutil.NewFakeRemote(todo.Task{ID: "a", Text: "a", Day: todo.Senin})
			s := New(context.Background(), remote, nil)

			msg := tc.run(s)
			if msg.Err != nil {
				t.Fatalf("unexpected error: %v", msg.Err)
			}
			notice, next := s.Resolve(msg)
			if notice != tc.notice {
				t.Fatalf("notice = %q, want %q", notice, tc.notice)
			}
			if next == nil {
				t.Fatalf("expected a refresh")
			}
			if remote.ListCalls != 0 {
				t.Fatalf("refresh ran before the command was executed")
			}
			loaded, ok := next().(LoadedMsg)
			if !ok {
				t.Fatalf("expected LoadedMsg")
			}
			if remote.ListCalls != 1 {
				t.Fatalf("expected exactly one list call, got %d", remote.ListCalls)
			}
			if len(loaded.Tasks) != len(remote.Tasks()) {
				t.Fatalf("refresh returned %d tasks, remote has %d", len(loaded.Tasks), len(remote.Tasks()))
			}
			tc.check(t, remote)
		})
	}
}

func TestMutationFailureDoesNotRefresh(t *testing.T) {
	boom := errors.New("boom")
	tests := map[string]struct {
		setup  func(r *testutil.FakeRemote)
		run    func(s *Syncer) MutatedMsg
		notice string
	}{
		"create": {
			setup:  func(r *testutil.FakeRemote) { r.CreateErr = boom },
			run:    func(s *Syncer) MutatedMsg { return s.Create("x", todo.Senin)().(MutatedMsg) },
			notice: NoticeAddFailed,
		},
		"remove": {
			setup:  func(r *testutil.FakeRemote) { r.DeleteErr = boom },
			run:    func(s *Syncer) MutatedMsg { return s.Remove("a")().(MutatedMsg) },
			notice: NoticeDeleteFailed,
		},
		"complete": {
			setup:  func(r *testutil.FakeRemote) { r.CompleteErr = boom },
			run:    func(s *Syncer) MutatedMsg { return s.Complete("a")().(MutatedMsg) },
			notice: NoticeCompleteFailed,
		},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			remote := testutil.NewFakeRemote(todo.Task{ID: "a", Text: "a", Day: todo.Senin})
			tc.setup(remote)
			s := New(context.Background(), remote, nil)

			msg := tc.run(s)
			if !errors.Is(msg.Err, boom) {
				t.Fatalf("expected boom, got %v", msg.Err)
			}
			notice, next := s.Resolve(msg)
			if notice != tc.notice {
				t.Fatalf("notice = %q, want %q", notice, tc.notice)
			}
			if next != nil {
				t.Fatalf("expected no refresh after a failure")
			}
			if remote.ListCalls != 0 {
				t.Fatalf("expected no list calls, got %d", remote.ListCalls)
			}
			if len(remote.Tasks()) != 1 || remote.Tasks()[0].Completed {
				t.Fatalf("remote state changed: %+v", remote.Tasks())
			}
		})
	}
}
