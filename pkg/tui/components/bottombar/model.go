package bottombar

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/weekly/pkg/tui/theme"
)

// Model tracks footer/help/status rendering state.
type Model struct {
	helpLine     string
	notice       string
	unrecognized int
	styles       theme.FooterTheme
	themeName    string
	width        int
}

// New returns a footer model styled by th.
func New(th theme.Theme) Model {
	m := Model{}
	m.SetTheme(th)
	return m
}

// SetTheme swaps the footer styles and the theme indicator.
func (m *Model) SetTheme(th theme.Theme) {
	m.styles = th.Footer
	m.themeName = th.Name
}

// SetHelp sets the contextual help line.
func (m *Model) SetHelp(help string) {
	m.helpLine = help
}

// SetNotice sets the notification to display. Empty hides it.
func (m *Model) SetNotice(notice string) {
	m.notice = notice
}

// SetUnrecognized sets how many fetched tasks carry an unknown day.
func (m *Model) SetUnrecognized(n int) {
	m.unrecognized = n
}

// SetWidth bounds the rendered line. Zero disables the bound.
func (m *Model) SetWidth(w int) {
	m.width = w
}

// Height reports the number of lines consumed by the footer.
func (m Model) Height() int {
	if m.notice != "" {
		return 2
	}
	return 1
}

// View renders the footer.
func (m Model) View() string {
	var lines []string
	if m.notice != "" {
		lines = append(lines, m.styles.Notice.Render(m.notice))
	}
	lines = append(lines, m.renderStatusLine())
	return strings.Join(lines, "\n")
}

func (m Model) renderStatusLine() string {
	var segments []string
	if m.helpLine != "" {
		segments = append(segments, m.styles.Help.Render(m.helpLine))
	}
	if m.unrecognized > 0 {
		warn := fmt.Sprintf("%d to do tanpa hari valid", m.unrecognized)
		segments = append(segments, m.styles.Warning.Render(warn))
	}
	if m.themeName != "" {
		segments = append(segments, m.styles.Indicator.Render("tema "+m.themeName))
	}
	if len(segments) == 0 {
		return " "
	}
	line := strings.Join(segments, "  ·  ")
	if m.width > 0 {
		line = lipgloss.NewStyle().MaxWidth(m.width).Render(line)
	}
	return line
}
