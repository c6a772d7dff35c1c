package tui

import (
	"context"
	"time"

	"jerry/application/command"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const tickInterval = 50 * time.Millisecond

type (
	commandMsg struct{ cmd command.Command }
	tickMsg    struct{}
	stopMsg    struct{}
)

type keyMap struct {
	Quit key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(key.WithKeys("q", "esc", "ctrl+c")),
	}
}

// Model is the live state view. It is the consumer of the command channel in
// current-state mode.
type Model struct {
	ctx      context.Context
	commands <-chan command.Command
	sender   command.Sender
	keys     keyMap

	dash   dashboard
	width  int
	height int
	frame  string
	halted bool
}

// New builds the view. Quit keys are turned into a Halt sent through sender
// so the shutdown is seen in order with everything already queued.
func New(
	ctx context.Context,
	commands <-chan command.Command,
	sender command.Sender,
	monitorW, monitorH int32,
) Model {
	return Model{
		ctx:      ctx,
		commands: commands,
		sender:   sender,
		keys:     defaultKeyMap(),
		dash:     newDashboard(monitorW, monitorH),
	}
}

// Halted reports whether the view stopped on a Halt or ExitWithError.
func (m Model) Halted() bool {
	return m.halted
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.waitForCommand(), tick())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.frame = m.dash.frame(m.width, m.height)
		return m, nil
	case tickMsg:
		if m.dash.tick() {
			m.frame = m.dash.frame(m.width, m.height)
		}
		return m, tick()
	case commandMsg:
		stop, draw := m.dash.apply(msg.cmd)
		if stop {
			m.halted = true
			return m, tea.Quit
		}
		if draw {
			m.frame = m.dash.frame(m.width, m.height)
		}
		return m, m.waitForCommand()
	case stopMsg:
		return m, tea.Quit
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, m.halt()
		}
	}
	return m, nil
}

func (m Model) View() string {
	return m.frame
}

func (m Model) waitForCommand() tea.Cmd {
	return func() tea.Msg {
		select {
		case <-m.ctx.Done():
			return stopMsg{}
		case cmd, ok := <-m.commands:
			if !ok {
				return stopMsg{}
			}
			return commandMsg{cmd: cmd}
		}
	}
}

func (m Model) halt() tea.Cmd {
	return func() tea.Msg {
		if err := m.sender.Send(command.Halt{}); err != nil {
			return stopMsg{}
		}
		return nil
	}
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(time.Time) tea.Msg {
		return tickMsg{}
	})
}

// Run drives the view on the alternate screen until it halts or ctx ends.
func Run(model Model, options ...tea.ProgramOption) (Model, error) {
	options = append([]tea.ProgramOption{tea.WithAltScreen()}, options...)
	final, err := tea.NewProgram(model, options...).Run()
	if err != nil {
		return model, err
	}
	if fm, ok := final.(Model); ok {
		return fm, nil
	}
	return model, nil
}
