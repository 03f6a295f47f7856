package main

import (
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/spf13/cobra"

	"tableflip.dev/weekly/pkg/tui/components/daygrid"
	"tableflip.dev/weekly/pkg/tui/taskstore"
)

func newGridCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "grid",
		Short: "Render the week grid component",
		RunE: func(cmd *cobra.Command, args []string) error {
			base := newTestbedModel(*opts)
			return run(&gridTestModel{
				testbedModel: base,
				grid:         daygrid.New(base.theme),
				store:        taskstore.New().SetAll(sampleWeek()),
			})
		},
	}
}

type gridTestModel struct {
	testbedModel
	grid  daygrid.Model
	store taskstore.Store
}

func (m *gridTestModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, cmd := m.testbedModel.Update(msg); cmd != nil {
		return m, cmd
	}
	if key, ok := msg.(tea.KeyPressMsg); ok {
		switch key.String() {
		case "left", "h":
			m.grid.Move(-1, 0)
		case "right", "l":
			m.grid.Move(1, 0)
		case "up", "k":
			m.grid.Move(0, -1)
		case "down", "j":
			m.grid.Move(0, 1)
		case "t":
			m.theme = m.theme.Toggle()
			m.grid.SetTheme(m.theme)
		}
	}
	return m, nil
}

func (m *gridTestModel) View() string {
	w, _ := m.contentSize()
	m.grid.SetWidth(w)
	return m.composeView(m.grid.View(m.store))
}
