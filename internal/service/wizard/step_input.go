package wizard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// InputStep reads one free-form value. An empty answer keeps the default.
type InputStep struct {
	input    textinput.Model
	title    string
	envKey   string
	def      string
	validate func(string) error
	err      error
}

func NewInputStep(title, envKey, def string, validate func(string) error) Step {
	input := textinput.New()
	input.Placeholder = def
	input.CharLimit = 64
	input.Width = 40
	input.Focus()

	return &InputStep{
		input:    input,
		title:    title,
		envKey:   envKey,
		def:      def,
		validate: validate,
	}
}

func (s *InputStep) Init() tea.Cmd {
	return textinput.Blink
}

func (s *InputStep) Update(msg tea.Msg, state *State) (Step, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.String() == "enter" {
		value := strings.TrimSpace(s.input.Value())
		if value == "" {
			value = s.def
		}
		if s.validate != nil {
			if err := s.validate(value); err != nil {
				s.err = err
				return s, nil
			}
		}
		state.EnvVars[s.envKey] = value
		return nil, nil
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	s.err = nil
	return s, cmd
}

func (s *InputStep) View(state *State) string {
	view := fmt.Sprintf("%s\n\n%s\n\n", s.title, s.input.View())
	if s.err != nil {
		view += errorStyle.Render(s.err.Error()) + "\n\n"
	}
	return view + "(press enter to confirm, empty keeps the default)\n"
}
