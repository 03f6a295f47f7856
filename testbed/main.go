package main

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/spf13/cobra"

	"tableflip.dev/weekly/pkg/tui/theme"
)

type options struct {
	full   bool
	width  int
	height int
	theme  string
}

func main() {
	var opts options

	rootCmd := &cobra.Command{
		Use:   "testbed",
		Short: "Run the TUI testbed harness",
		RunE: func(cmd *cobra.Command, args []string) error {
			base := newTestbedModel(opts)
			return run(&base)
		},
	}

	rootCmd.PersistentFlags().BoolVar(&opts.full, "full", false, "use the full terminal window")
	rootCmd.PersistentFlags().IntVar(&opts.width, "width", 100, "window width when not fullscreen")
	rootCmd.PersistentFlags().IntVar(&opts.height, "height", 30, "window height when not fullscreen")
	rootCmd.PersistentFlags().StringVar(&opts.theme, "theme", theme.ModeAuto, "theme: auto, light or dark")

	rootCmd.AddCommand(newGridCmd(&opts))
	rootCmd.AddCommand(newDetailCmd(&opts))
	rootCmd.AddCommand(newHelpCmd(&opts))
	rootCmd.AddCommand(newAppCmd(&opts))

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(model tea.Model) error {
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// testbedModel frames a component and logs the messages it sees.
type testbedModel struct {
	fullscreen bool
	maxWidth   int
	maxHeight  int
	theme      theme.Theme

	termWidth  int
	termHeight int

	events []string
}

func newTestbedModel(opts options) testbedModel {
	return testbedModel{
		fullscreen: opts.full,
		maxWidth:   opts.width,
		maxHeight:  opts.height,
		theme:      theme.Resolve(opts.theme),
	}
}

func (m *testbedModel) Init() tea.Cmd { return nil }

func (m *testbedModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m.recordEvent(msg)

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
	case tea.KeyPressMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m *testbedModel) View() string {
	content := lipgloss.NewStyle().
		Padding(1, 2).
		Render(
			"Testbed UI\n\n" +
				"Run a subcommand to iterate on a component: grid, detail, help or app.\n\n" +
				"Press q to quit.",
		)
	return m.composeView(content)
}

func (m *testbedModel) contentSize() (int, int) {
	if m.fullscreen || m.termWidth == 0 {
		return max(m.termWidth-2, 20), max(m.termHeight-eventLines-3, minFrameHeight)
	}
	return clamp(m.maxWidth, 20, m.termWidth-4), clamp(m.maxHeight, minFrameHeight, m.termHeight-eventLines-3)
}

func (m *testbedModel) composeView(content string) string {
	if m.termWidth == 0 || m.termHeight == 0 {
		return "Resizing…"
	}
	width, height := m.contentSize()

	frame := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(width).
		Height(height).
		Render(content)

	placed := lipgloss.PlaceHorizontal(m.termWidth, lipgloss.Center, frame)
	log := lipgloss.NewStyle().
		Foreground(lipgloss.Color("244")).
		Render(strings.Join(m.events, "\n"))
	return lipgloss.JoinVertical(lipgloss.Left, placed, log)
}

func (m *testbedModel) recordEvent(msg tea.Msg) {
	line := fmt.Sprintf("%T", msg)
	if d := describeMsg(msg); d != "" {
		line += " " + d
	}
	m.events = append(m.events, line)
	if len(m.events) > eventLines {
		m.events = m.events[len(m.events)-eventLines:]
	}
}

func describeMsg(msg tea.Msg) string {
	switch v := msg.(type) {
	case tea.KeyPressMsg:
		return fmt.Sprintf("key=%q", v.String())
	case tea.WindowSizeMsg:
		return fmt.Sprintf("size=%dx%d", v.Width, v.Height)
	default:
		return ""
	}
}

func clamp(value, min, max int) int {
	if max <= 0 {
		return min
	}
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

const (
	minFrameHeight = 12
	eventLines     = 5
)
