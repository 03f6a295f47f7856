// Package tasksync turns the four remote operations into Bubble Tea
// commands. Every successful mutation is followed by exactly one full
// refresh; nothing is applied optimistically.
package tasksync

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea/v2"
	log "github.com/sirupsen/logrus"

	"tableflip.dev/weekly/pkg/api"
	"tableflip.dev/weekly/pkg/todo"
)

// LoadedMsg carries the result of fetch number Seq.
type LoadedMsg struct {
	Seq   uint64
	Tasks []todo.Task
}

// LoadFailedMsg reports a failed fetch.
type LoadFailedMsg struct {
	Seq uint64
	Err error
}

// MutatedMsg reports the outcome of a create, remove or complete call.
type MutatedMsg struct {
	Op  Op
	ID  string
	Err error
}

// Syncer issues remote calls on behalf of the view. It is only used from
// the Bubble Tea update loop, so the sequence counter needs no locking.
type Syncer struct {
	ctx    context.Context
	remote api.Remote
	log    log.FieldLogger
	seq    uint64
}

// New returns a Syncer whose requests run under ctx.
func New(ctx context.Context, remote api.Remote, logger log.FieldLogger) *Syncer {
	if ctx == nil {
		ctx = context.Background()
	}
	if logger == nil {
		l := log.New()
		l.SetLevel(log.PanicLevel)
		logger = l
	}
	return &Syncer{ctx: ctx, remote: remote, log: logger}
}

// Refresh fetches every task. The result carries a sequence number so the
// store can drop a response that arrives after a newer one.
func (s *Syncer) Refresh() tea.Cmd {
	s.seq++
	seq := s.seq
	ctx, remote, logger := s.ctx, s.remote, s.log
	return func() tea.Msg {
		tasks, err := remote.List(ctx)
		if err != nil {
			logger.WithError(err).WithField("seq", seq).Warn("refresh failed")
			return LoadFailedMsg{Seq: seq, Err: err}
		}
		if unknown := countUnrecognized(tasks); unknown > 0 {
			logger.WithFields(log.Fields{"seq": seq, "count": unknown}).
				Warn("tasks with unrecognized day labels are not shown")
		}
		logger.WithFields(log.Fields{"seq": seq, "tasks": len(tasks)}).Debug("refreshed")
		return LoadedMsg{Seq: seq, Tasks: tasks}
	}
}

// Create adds a task for day. It returns nil, issuing no call, when text is
// blank or no day is selected.
func (s *Syncer) Create(text string, day todo.Day) tea.Cmd {
	if strings.TrimSpace(text) == "" || !day.Valid() {
		return nil
	}
	return s.mutate(OpCreate, "", func(ctx context.Context) error {
		_, err := s.remote.Create(ctx, text, day)
		return err
	})
}

// Remove deletes the task with id.
func (s *Syncer) Remove(id string) tea.Cmd {
	return s.mutate(OpRemove, id, func(ctx context.Context) error {
		return s.remote.Delete(ctx, id)
	})
}

// Complete marks the task with id done.
func (s *Syncer) Complete(id string) tea.Cmd {
	return s.mutate(OpComplete, id, func(ctx context.Context) error {
		_, err := s.remote.Complete(ctx, id)
		return err
	})
}

func (s *Syncer) mutate(op Op, id string, call func(context.Context) error) tea.Cmd {
	ctx, logger := s.ctx, s.log
	return func() tea.Msg {
		err := call(ctx)
		entry := logger.WithFields(log.Fields{"op": op.String(), "id": id})
		if err != nil {
			entry.WithError(err).Warn("mutation failed")
		} else {
			entry.Debug("mutation applied")
		}
		return MutatedMsg{Op: op, ID: id, Err: err}
	}
}

// Resolve maps a mutation outcome to the notice to show and, on success,
// the refresh that must follow it.
func (s *Syncer) Resolve(msg MutatedMsg) (notice string, next tea.Cmd) {
	if msg.Err != nil {
		return msg.Op.FailureMessage(), nil
	}
	return msg.Op.SuccessMessage(), s.Refresh()
}

func countUnrecognized(tasks []todo.Task) int {
	n := 0
	for _, t := range tasks {
		if !t.Day.Valid() {
			n++
		}
	}
	return n
}
