package help

import (
	_ "embed"
	"regexp"
	"strings"

	"github.com/charmbracelet/bubbles/v2/viewport"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/weekly/pkg/tui/theme"
)

//go:embed help.md
var helpMarkdown string

// Model shows the key reference in a scrollable, framed viewport.
type Model struct {
	viewport viewport.Model
	width    int
	height   int
	style    string
	frame    lipgloss.Style
}

// New builds the overlay for the given bounds, never smaller than 32x8.
func New(width, height int, th theme.Theme) *Model {
	m := &Model{
		viewport: viewport.New(viewport.WithWidth(1), viewport.WithHeight(1)),
		frame:    th.Modal.Frame,
		style:    glamourStyle(th),
	}
	m.viewport.MouseWheelEnabled = true
	m.SetSize(width, height)
	return m
}

func glamourStyle(th theme.Theme) string {
	if th.Dark {
		return "dark"
	}
	return "light"
}

// Update forwards scrolling to the viewport.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	vp, cmd := m.viewport.Update(msg)
	m.viewport = vp
	return cmd
}

func (m *Model) View() string {
	return m.frame.Width(m.width).Height(m.height).Render(m.viewport.View())
}

// SetTheme swaps the frame and re-renders when the glamour style changes.
func (m *Model) SetTheme(th theme.Theme) {
	m.frame = th.Modal.Frame
	if style := glamourStyle(th); style != m.style {
		m.style = style
		m.render()
	}
}

func (m *Model) SetSize(width, height int) {
	m.width, m.height = max(width, 32), max(height, 8)
	m.viewport.SetWidth(max(m.width-m.frame.GetHorizontalFrameSize(), 1))
	m.viewport.SetHeight(max(m.height-m.frame.GetVerticalFrameSize(), 1))
	m.render()
}

func (m *Model) render() {
	content, err := renderMarkdown(m.style, max(m.width-m.frame.GetHorizontalFrameSize(), 10))
	if err != nil {
		content = "help unavailable: " + err.Error()
	}
	m.viewport.SetContent(content)
	m.viewport.SetYOffset(0)
}

func renderMarkdown(style string, wrap int) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(wrap),
	)
	if err != nil {
		return "", err
	}
	out, err := r.Render(strings.TrimSpace(helpMarkdown))
	if err != nil {
		return "", err
	}
	return stripANSI(out), nil
}

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;:]*[A-Za-z~]`)

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}
