package bubble_tea

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// TextInput asks for a single line. Enter submits only once validate
// accepts the value; Esc or ctrl+c leaves without a value.
type TextInput struct {
	prompt    string
	ti        textinput.Model
	validate  func(string) error
	err       error
	submitted bool
	cancel    key.Binding
	submit    key.Binding
}

func NewTextInput(prompt, initial string, validate func(string) error) *TextInput {
	ti := textinput.New()
	ti.SetValue(initial)
	ti.CharLimit = 256
	ti.Width = 40
	ti.Focus()
	return &TextInput{
		prompt:   prompt,
		ti:       ti,
		validate: validate,
		cancel:   key.NewBinding(key.WithKeys("esc", "ctrl+c")),
		submit:   key.NewBinding(key.WithKeys("enter")),
	}
}

func (m *TextInput) Value() string {
	return m.ti.Value()
}

func (m *TextInput) Submitted() bool {
	return m.submitted
}

func (m *TextInput) Init() tea.Cmd {
	return textinput.Blink
}

func (m *TextInput) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, m.cancel):
			return m, tea.Quit
		case key.Matches(keyMsg, m.submit):
			if m.validate != nil {
				if m.err = m.validate(m.ti.Value()); m.err != nil {
					return m, nil
				}
			}
			m.submitted = true
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.ti, cmd = m.ti.Update(msg)
	return m, cmd
}

func (m *TextInput) View() string {
	view := m.prompt + "\n" + m.ti.View() + "\n"
	if m.err != nil {
		view += errorStyle.Render(m.err.Error()) + "\n"
	}
	return view
}
