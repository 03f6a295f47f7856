package main

import (
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/spf13/cobra"

	"tableflip.dev/weekly/pkg/tui/components/help"
)

func newHelpCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "help-overlay",
		Short: "Render the help overlay component",
		RunE: func(cmd *cobra.Command, args []string) error {
			base := newTestbedModel(*opts)
			return run(&helpTestModel{testbedModel: base})
		},
	}
}

type helpTestModel struct {
	testbedModel
	overlay *help.Model
}

func (m *helpTestModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, cmd := m.testbedModel.Update(msg); cmd != nil {
		return m, cmd
	}
	if _, ok := msg.(tea.WindowSizeMsg); ok {
		m.ensureSizing()
		return m, nil
	}
	if m.overlay != nil {
		return m, m.overlay.Update(msg)
	}
	return m, nil
}

func (m *helpTestModel) ensureSizing() {
	w, h := m.contentSize()
	if m.overlay == nil {
		m.overlay = help.New(w, h, m.theme)
		return
	}
	m.overlay.SetSize(w, h)
}

func (m *helpTestModel) View() string {
	if m.overlay == nil {
		return m.composeView("")
	}
	return m.composeView(m.overlay.View())
}
