// Package daygrid renders the week as seven tiles with a movable cursor.
package daygrid

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/truncate"

	"tableflip.dev/weekly/pkg/todo"
	"tableflip.dev/weekly/pkg/tui/taskstore"
	"tableflip.dev/weekly/pkg/tui/theme"
)

// PreviewLimit is the number of tasks a tile lists before summarizing the
// rest.
const PreviewLimit = 4

const (
	minTileWidth = 22
	maxColumns   = 4
	tileLines    = PreviewLimit + 2
)

// Model tracks the cursor over the seven day tiles.
type Model struct {
	cursor int
	width  int
	styles theme.GridTheme
}

// New returns a grid with the cursor on the first day.
func New(th theme.Theme) Model {
	return Model{styles: th.Grid}
}

// SetTheme swaps the tile styles.
func (m *Model) SetTheme(th theme.Theme) {
	m.styles = th.Grid
}

// SetWidth sets the width available to the grid.
func (m *Model) SetWidth(w int) {
	m.width = w
}

// Cursor returns the day under the cursor.
func (m Model) Cursor() todo.Day {
	return todo.Week()[m.cursor]
}

// SetCursor moves the cursor to day. Unknown days are ignored.
func (m *Model) SetCursor(day todo.Day) {
	if i := day.Index(); i >= 0 {
		m.cursor = i
	}
}

// Columns reports how many tiles fit on a row.
func (m Model) Columns() int {
	if m.width <= 0 {
		return maxColumns
	}
	cols := m.width / minTileWidth
	if cols < 1 {
		return 1
	}
	if cols > maxColumns {
		return maxColumns
	}
	return cols
}

// Move shifts the cursor by dx tiles horizontally and dy rows vertically,
// staying within the week.
func (m *Model) Move(dx, dy int) {
	next := m.cursor + dx + dy*m.Columns()
	if next < 0 || next >= len(todo.Week()) {
		return
	}
	m.cursor = next
}

// View renders every tile from the snapshot s.
func (m Model) View(s taskstore.Store) string {
	cols := m.Columns()
	tileWidth := minTileWidth
	if m.width > 0 {
		tileWidth = max(m.width/cols, minTileWidth)
	}

	var rows []string
	var row []string
	for i, day := range todo.Week() {
		row = append(row, m.renderTile(day, s.Tasks(day), i == m.cursor, tileWidth))
		if len(row) == cols {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m Model) renderTile(day todo.Day, tasks []todo.Task, selected bool, width int) string {
	frame := m.styles.Tile
	if selected {
		frame = m.styles.TileSelected
	}
	inner := max(width-frame.GetHorizontalFrameSize(), 4)

	lines := []string{m.styles.Title.Render(fmt.Sprintf("%d %s", day.Index()+1, day))}
	lines = append(lines, m.previewLines(tasks, inner)...)
	for len(lines) < tileLines {
		lines = append(lines, "")
	}
	return frame.Width(width - frame.GetHorizontalBorderSize()).Render(strings.Join(lines, "\n"))
}

func (m Model) previewLines(tasks []todo.Task, width int) []string {
	if len(tasks) == 0 {
		return []string{m.styles.Empty.Render("-")}
	}
	shown := tasks
	if len(shown) > PreviewLimit {
		shown = shown[:PreviewLimit]
	}
	lines := make([]string, 0, len(shown)+1)
	for _, t := range shown {
		text := truncate.StringWithTail("• "+t.Text, uint(width), "…")
		if t.Completed {
			lines = append(lines, m.styles.TaskDone.Render(text))
		} else {
			lines = append(lines, m.styles.Task.Render(text))
		}
	}
	if extra := len(tasks) - PreviewLimit; extra > 0 {
		lines = append(lines, m.styles.Overflow.Render(OverflowLabel(extra)))
	}
	return lines
}

// OverflowLabel summarizes tasks hidden from a tile.
func OverflowLabel(n int) string {
	return fmt.Sprintf("+%d lainnya", n)
}
