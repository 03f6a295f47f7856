package main

import (
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/spf13/cobra"

	"tableflip.dev/weekly/pkg/todo"
	"tableflip.dev/weekly/pkg/tui/components/daydetail"
)

func newDetailCmd(opts *options) *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:   "detail",
		Short: "Render the day detail component",
		RunE: func(cmd *cobra.Command, args []string) error {
			base := newTestbedModel(*opts)
			harness := &detailTestModel{
				testbedModel: base,
				detail:       daydetail.New(base.theme),
				tasks:        manyTasks(todo.Senin, count),
			}
			harness.detail.Open(todo.Senin)
			return run(harness)
		},
	}

	cmd.Flags().IntVar(&count, "count", 6, "number of sample tasks")
	return cmd
}

type detailTestModel struct {
	testbedModel
	detail daydetail.Model
	tasks  []todo.Task
}

func (m *detailTestModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, isKey := msg.(tea.KeyPressMsg)
	if isKey && m.detail.Focus() == daydetail.FocusInput {
		switch key.String() {
		case "tab":
			m.detail.FocusList()
		case "esc", "ctrl+c":
			return m, tea.Quit
		default:
			m.recordEvent(msg)
			return m, m.detail.UpdateInput(msg)
		}
		return m, nil
	}
	if _, cmd := m.testbedModel.Update(msg); cmd != nil {
		return m, cmd
	}
	if !isKey {
		return m, nil
	}
	switch key.String() {
	case "tab":
		return m, m.detail.FocusInput()
	case "up", "k":
		m.detail.Move(-1, len(m.tasks))
	case "down", "j":
		m.detail.Move(1, len(m.tasks))
	case "space", " ", "x":
		if t, ok := m.detail.Current(m.tasks); ok {
			for i := range m.tasks {
				if m.tasks[i].ID == t.ID {
					m.tasks[i].Completed = true
				}
			}
		}
	}
	return m, nil
}

func (m *detailTestModel) View() string {
	w, _ := m.contentSize()
	m.detail.SetWidth(w)
	return m.composeView(m.detail.View(m.tasks))
}
