package bubble_tea

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	activeStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	hintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Quit   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k")),
		Down:   key.NewBinding(key.WithKeys("down", "j")),
		Select: key.NewBinding(key.WithKeys("enter")),
		Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c")),
	}
}

type Selector struct {
	placeholder string
	options     []string
	keys        keyMap
	cursor      int
	checked     int
}

// NewSelector starts with the cursor on index def.
func NewSelector(placeholder string, choices []string, def int) Selector {
	if def < 0 || def >= len(choices) {
		def = 0
	}
	return Selector{
		placeholder: placeholder,
		options:     choices,
		keys:        defaultKeyMap(),
		cursor:      def,
		checked:     -1,
	}
}

// Choice returns the selected index, or -1 when the selector was left
// without a choice.
func (m Selector) Choice() int {
	return m.checked
}

func (m Selector) Init() tea.Cmd {
	return nil
}

func (m Selector) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(keyMsg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(keyMsg, m.keys.Down):
		if m.cursor < len(m.options)-1 {
			m.cursor++
		}
	case key.Matches(keyMsg, m.keys.Select):
		if len(m.options) > 0 {
			m.checked = m.cursor
		}
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.Quit):
		return m, tea.Quit
	}
	return m, nil
}

func (m Selector) View() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n", m.placeholder)
	for i, choice := range m.options {
		checked := "[ ]"
		if m.checked == i {
			checked = "[x]"
		}
		line := fmt.Sprintf("%s %s", checked, choice)
		if m.cursor == i {
			line = activeStyle.Render(line)
		}
		b.WriteString(line + "\n")
	}
	b.WriteString("\n" + hintStyle.Render("Press q to quit.") + "\n")
	return b.String()
}
