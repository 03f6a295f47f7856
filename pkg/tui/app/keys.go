package teaui

import (
	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/weekly/pkg/todo"
	"tableflip.dev/weekly/pkg/tui/components/daydetail"
	"tableflip.dev/weekly/pkg/tui/components/help"
)

// handleKeyPress routes a key to the active mode. quit is true when the
// program should exit.
func (m *Model) handleKeyPress(msg tea.KeyPressMsg) (cmd tea.Cmd, quit bool) {
	if msg.String() == "ctrl+c" {
		return nil, true
	}
	if m.showHelp {
		return m.handleHelpKey(msg), false
	}
	if m.inDetail() {
		return m.handleDetailKey(msg), false
	}
	return m.handleGridKey(msg)
}

func (m *Model) handleHelpKey(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "?", "esc", "q":
		m.showHelp = false
		return nil
	}
	return m.help.Update(msg)
}

func (m *Model) openHelp() {
	if m.help == nil {
		w, h := m.helpSize()
		m.help = help.New(w, h, m.theme)
	}
	m.showHelp = true
}

func (m *Model) handleGridKey(msg tea.KeyPressMsg) (tea.Cmd, bool) {
	switch key := msg.String(); key {
	case "q":
		return nil, true
	case "left", "h":
		m.grid.Move(-1, 0)
	case "right", "l":
		m.grid.Move(1, 0)
	case "up", "k":
		m.grid.Move(0, -1)
	case "down", "j":
		m.grid.Move(0, 1)
	case "1", "2", "3", "4", "5", "6", "7":
		m.grid.SetCursor(todo.Week()[int(key[0]-'1')])
	case "enter":
		return m.selectDay(m.grid.Cursor()), false
	case "t":
		m.setTheme(m.theme.Toggle())
	case "?":
		m.openHelp()
	}
	return nil, false
}

func (m *Model) selectDay(day todo.Day) tea.Cmd {
	m.store = m.store.Select(day)
	return m.detail.Open(day)
}

func (m *Model) back() {
	m.store = m.store.Clear()
	m.detail.FocusList()
}

func (m *Model) handleDetailKey(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		m.back()
		return nil
	case "tab":
		if m.detail.Focus() == daydetail.FocusInput {
			m.detail.FocusList()
			return nil
		}
		return m.detail.FocusInput()
	}
	if m.detail.Focus() == daydetail.FocusInput {
		return m.handleInputKey(msg)
	}
	return m.handleListKey(msg)
}

func (m *Model) handleInputKey(msg tea.KeyPressMsg) tea.Cmd {
	if msg.String() == "enter" {
		day, _ := m.store.Selected()
		return m.sync.Create(m.detail.Value(), day)
	}
	return m.detail.UpdateInput(msg)
}

func (m *Model) handleListKey(msg tea.KeyPressMsg) tea.Cmd {
	day, _ := m.store.Selected()
	tasks := m.store.Tasks(day)

	switch msg.String() {
	case "up", "k":
		m.detail.Move(-1, len(tasks))
	case "down", "j":
		m.detail.Move(1, len(tasks))
	case "space", " ", "x":
		if t, ok := m.detail.Current(tasks); ok {
			return m.sync.Complete(t.ID)
		}
	case "d":
		if t, ok := m.detail.Current(tasks); ok {
			return m.sync.Remove(t.ID)
		}
	case "enter", "i", "a":
		return m.detail.FocusInput()
	case "t":
		m.setTheme(m.theme.Toggle())
	case "?":
		m.openHelp()
	}
	return nil
}
