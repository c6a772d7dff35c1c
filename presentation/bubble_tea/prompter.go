package bubble_tea

import (
	"errors"
	"io"

	tea "github.com/charmbracelet/bubbletea"
)

var ErrCancelled = errors.New("cancelled by user")

// Prompter runs selectors and text inputs as short-lived programs.
type Prompter struct {
	options []tea.ProgramOption
}

// NewPrompter renders to out, which is usually stderr so stdout stays free.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{options: []tea.ProgramOption{tea.WithInput(in), tea.WithOutput(out)}}
}

func (p *Prompter) Select(title string, options []string, def int) (int, error) {
	final, err := tea.NewProgram(NewSelector(title, options, def), p.options...).Run()
	if err != nil {
		return -1, err
	}
	selector, ok := final.(Selector)
	if !ok || selector.Choice() < 0 {
		return -1, ErrCancelled
	}
	return selector.Choice(), nil
}

func (p *Prompter) Input(title, initial string, validate func(string) error) (string, error) {
	final, err := tea.NewProgram(NewTextInput(title, initial, validate), p.options...).Run()
	if err != nil {
		return "", err
	}
	input, ok := final.(*TextInput)
	if !ok || !input.Submitted() {
		return "", ErrCancelled
	}
	return input.Value(), nil
}
