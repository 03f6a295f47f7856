// Package notify is the transient status message shown after each remote
// operation.
package notify

import (
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"
)

// DefaultTTL is how long a message stays visible.
const DefaultTTL = 3000 * time.Millisecond

// ExpiredMsg is delivered when the countdown started by Show elapses.
type ExpiredMsg struct {
	gen uint64
}

// Model holds at most one message. Each Show bumps a generation counter and
// only the expiry for the current generation clears the message.
type Model struct {
	message string
	gen     uint64
	ttl     time.Duration
}

// New returns an empty channel with DefaultTTL.
func New() Model {
	return NewWithTTL(DefaultTTL)
}

// NewWithTTL returns an empty channel whose messages live for ttl.
func NewWithTTL(ttl time.Duration) Model {
	return Model{ttl: ttl}
}

// Show replaces the current message and restarts the countdown. The
// returned command fires ExpiredMsg after the TTL.
func (m Model) Show(message string) (Model, tea.Cmd) {
	m.gen++
	m.message = message
	gen := m.gen
	return m, tea.Tick(m.ttl, func(time.Time) tea.Msg {
		return ExpiredMsg{gen: gen}
	})
}

// Update clears the message when msg is the expiry of the latest Show.
func (m Model) Update(msg tea.Msg) Model {
	if exp, ok := msg.(ExpiredMsg); ok && exp.gen == m.gen {
		m.message = ""
	}
	return m
}

// Message returns the visible text, or "" when nothing is shown.
func (m Model) Message() string {
	return m.message
}

// TTL reports how long each message stays visible.
func (m Model) TTL() time.Duration {
	return m.ttl
}
