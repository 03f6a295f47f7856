// Package teaui hosts the Bubble Tea program for the weekly TUI.
package teaui

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	log "github.com/sirupsen/logrus"

	"tableflip.dev/weekly/pkg/api"
	"tableflip.dev/weekly/pkg/tui/components/bottombar"
	"tableflip.dev/weekly/pkg/tui/components/daydetail"
	"tableflip.dev/weekly/pkg/tui/components/daygrid"
	"tableflip.dev/weekly/pkg/tui/components/help"
	"tableflip.dev/weekly/pkg/tui/notify"
	"tableflip.dev/weekly/pkg/tui/taskstore"
	"tableflip.dev/weekly/pkg/tui/tasksync"
	"tableflip.dev/weekly/pkg/tui/theme"
)

// Title is the header shown above the grid.
const Title = "📅 To Do List Mingguan"

// Model is the root Bubble Tea model. The selected day in the store decides
// between grid and detail mode; help is an overlay on top of either.
type Model struct {
	store  taskstore.Store
	notice notify.Model
	sync   *tasksync.Syncer
	log    log.FieldLogger

	theme    theme.Theme
	grid     daygrid.Model
	detail   daydetail.Model
	help     *help.Model
	bottom   bottombar.Model
	showHelp bool

	termWidth  int
	termHeight int
}

// New builds the root model. A nil logger discards output.
func New(syncer *tasksync.Syncer, th theme.Theme, logger log.FieldLogger) *Model {
	if logger == nil {
		l := log.New()
		l.SetLevel(log.PanicLevel)
		logger = l
	}
	m := &Model{
		store:  taskstore.New(),
		notice: notify.New(),
		sync:   syncer,
		log:    logger,
		theme:  th,
		grid:   daygrid.New(th),
		detail: daydetail.New(th),
		bottom: bottombar.New(th),
	}
	m.updateBottomContext()
	return m
}

// Init loads the week.
func (m *Model) Init() tea.Cmd {
	return m.sync.Refresh()
}

// Update applies one message to the model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
		m.applySizes()
	case tasksync.LoadedMsg:
		next, ok := m.store.Apply(msg.Seq, msg.Tasks)
		if !ok {
			m.log.WithField("seq", msg.Seq).Debug("dropping stale refresh")
			break
		}
		m.store = next
		m.bottom.SetUnrecognized(len(m.store.Unrecognized()))
	case tasksync.LoadFailedMsg:
		cmds = append(cmds, m.showNotice(tasksync.NoticeLoadFailed))
	case tasksync.MutatedMsg:
		notice, next := m.sync.Resolve(msg)
		if msg.Op == tasksync.OpCreate && msg.Err == nil {
			m.detail.ResetInput()
		}
		cmds = append(cmds, m.showNotice(notice), next)
	case notify.ExpiredMsg:
		m.notice = m.notice.Update(msg)
		m.bottom.SetNotice(m.notice.Message())
	case tea.KeyPressMsg:
		if cmd, quit := m.handleKeyPress(msg); quit {
			return m, tea.Quit
		} else if cmd != nil {
			cmds = append(cmds, cmd)
		}
		m.updateBottomContext()
	default:
		if _, ok := m.store.Selected(); ok && m.detail.Focus() == daydetail.FocusInput {
			cmds = append(cmds, m.detail.UpdateInput(msg))
		}
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) showNotice(message string) tea.Cmd {
	var cmd tea.Cmd
	m.notice, cmd = m.notice.Show(message)
	m.bottom.SetNotice(m.notice.Message())
	return cmd
}

func (m *Model) setTheme(th theme.Theme) {
	m.theme = th
	m.grid.SetTheme(th)
	m.detail.SetTheme(th)
	m.bottom.SetTheme(th)
	if m.help != nil {
		m.help.SetTheme(th)
	}
}

func (m *Model) updateBottomContext() {
	var help string
	switch {
	case m.showHelp:
		help = "↑/↓ scroll · ? or esc close"
	case m.inDetail() && m.detail.Focus() == daydetail.FocusInput:
		help = "enter add · tab list · esc back"
	case m.inDetail():
		help = "space done · d delete · tab input · t theme · esc back"
	default:
		help = "←↑↓→ move · enter open · t theme · ? help · q quit"
	}
	m.bottom.SetHelp(help)
}

func (m *Model) inDetail() bool {
	_, ok := m.store.Selected()
	return ok
}

// applySizes recalculates component sizes based on current terminal size.
func (m *Model) applySizes() {
	if m.termWidth == 0 || m.termHeight == 0 {
		return
	}
	m.grid.SetWidth(m.termWidth)
	m.detail.SetWidth(m.termWidth)
	m.bottom.SetWidth(m.termWidth)
	if m.help != nil {
		m.help.SetSize(m.helpSize())
	}
}

func (m *Model) helpSize() (int, int) {
	w, h := m.termWidth-4, m.termHeight-4
	if w <= 0 {
		w = 80
	}
	if h <= 0 {
		h = 24
	}
	return w, h
}

// View renders the header, the active mode and the footer.
func (m *Model) View() string {
	sections := []string{m.theme.Header.Render(Title)}

	switch {
	case m.showHelp && m.help != nil:
		sections = append(sections, m.help.View())
	case m.inDetail():
		day, _ := m.store.Selected()
		sections = append(sections, m.detail.View(m.store.Tasks(day)))
	default:
		sections = append(sections, m.grid.View(m.store))
	}

	sections = append(sections, m.bottom.View())
	body := strings.Join(sections, "\n\n")
	if m.termWidth > 0 {
		body = lipgloss.NewStyle().MaxWidth(m.termWidth).Render(body)
	}
	return body
}

// Run launches the interactive TUI program against remote until the user
// quits or ctx is cancelled.
func Run(ctx context.Context, remote api.Remote, th theme.Theme, logger log.FieldLogger) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	syncer := tasksync.New(ctx, remote, logger)
	p := tea.NewProgram(New(syncer, th, logger), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
