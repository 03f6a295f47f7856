// Package daydetail renders a single day: an input for new tasks and the
// full task list with complete and delete controls.
package daydetail

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/weekly/pkg/todo"
	"tableflip.dev/weekly/pkg/tui/theme"
)

// Labels shown by the detail view.
const (
	BackLabel  = "← Kembali"
	EmptyLabel = "Belum ada todo untuk hari ini."
)

// Focus names which part of the view receives keys.
type Focus int

const (
	FocusInput Focus = iota
	FocusList
)

// Model is the detail view for one day.
type Model struct {
	day    todo.Day
	input  textinput.Model
	focus  Focus
	cursor int
	width  int
	styles theme.DetailTheme
}

// New returns a detail view with the input focused.
func New(th theme.Theme) Model {
	ti := textinput.New()
	ti.CharLimit = 256
	ti.Prompt = "+ "
	ti.VirtualCursor = true
	m := Model{input: ti, styles: th.Detail}
	m.input.Focus()
	return m
}

// Placeholder returns the input hint for day.
func Placeholder(day todo.Day) string {
	return fmt.Sprintf("Tambah todo untuk hari %s...", day)
}

// Open points the view at day, resetting the cursor and focusing the input.
// The typed text survives so switching days does not lose a draft.
func (m *Model) Open(day todo.Day) tea.Cmd {
	m.day = day
	m.cursor = 0
	m.input.Placeholder = Placeholder(day)
	return m.FocusInput()
}

// Day returns the day on display.
func (m Model) Day() todo.Day {
	return m.day
}

// SetTheme swaps the detail styles.
func (m *Model) SetTheme(th theme.Theme) {
	m.styles = th.Detail
}

// SetWidth sets the width available to the view.
func (m *Model) SetWidth(w int) {
	m.width = w
	if w > 10 {
		m.input.SetWidth(w - 10)
	}
}

// Focus reports which part of the view receives keys.
func (m Model) Focus() Focus {
	return m.focus
}

// FocusInput moves keyboard focus to the text input.
func (m *Model) FocusInput() tea.Cmd {
	m.focus = FocusInput
	return m.input.Focus()
}

// FocusList moves keyboard focus to the task list.
func (m *Model) FocusList() {
	m.focus = FocusList
	m.input.Blur()
}

// Value returns the typed text, unmodified.
func (m Model) Value() string {
	return m.input.Value()
}

// ResetInput clears the typed text.
func (m *Model) ResetInput() {
	m.input.Reset()
}

// UpdateInput forwards msg to the text input.
func (m *Model) UpdateInput(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

// Move shifts the list cursor by delta within n tasks.
func (m *Model) Move(delta, n int) {
	if n == 0 {
		m.cursor = 0
		return
	}
	m.cursor = min(max(m.cursor+delta, 0), n-1)
}

// Current returns the task under the cursor.
func (m Model) Current(tasks []todo.Task) (todo.Task, bool) {
	if len(tasks) == 0 {
		return todo.Task{}, false
	}
	i := min(m.cursor, len(tasks)-1)
	return tasks[i], true
}

// View renders the day with tasks, which must be that day's bucket.
func (m Model) View(tasks []todo.Task) string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render(m.day.String()))
	b.WriteString("   ")
	b.WriteString(m.styles.Back.Render(BackLabel + " (esc)"))
	b.WriteString("\n\n")
	b.WriteString(m.styles.Input.Render(m.input.View()))
	b.WriteString("\n\n")

	if len(tasks) == 0 {
		b.WriteString(m.styles.Empty.Render(EmptyLabel))
	} else {
		cursor := min(m.cursor, len(tasks)-1)
		lines := make([]string, 0, len(tasks))
		for i, t := range tasks {
			lines = append(lines, m.renderTask(t, m.focus == FocusList && i == cursor))
		}
		b.WriteString(strings.Join(lines, "\n"))
	}

	frame := m.styles.Frame
	if m.width > 0 {
		frame = frame.Width(m.width - frame.GetHorizontalBorderSize())
	}
	return frame.Render(b.String())
}

func (m Model) renderTask(t todo.Task, active bool) string {
	pointer := "  "
	if active {
		pointer = m.styles.Cursor.Render("› ")
	}
	box := "[ ]"
	text := m.styles.Task.Render(t.Text)
	if t.Completed {
		box = "[x]"
		text = m.styles.TaskDone.Render(t.Text)
	}
	line := pointer + box + " " + text
	if active {
		line += "  " + m.styles.Delete.Render("✕ hapus (d)")
	}
	return line
}
