package wizard

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

type Choice struct {
	Label string
	Value string
}

// ChoiceStep picks one value from a fixed list.
type ChoiceStep struct {
	title   string
	envKey  string
	choices []Choice
	cursor  int
}

func NewChoiceStep(title, envKey string, choices []Choice) Step {
	return &ChoiceStep{
		title:   title,
		envKey:  envKey,
		choices: choices,
	}
}

func (s *ChoiceStep) Init() tea.Cmd {
	return nil
}

func (s *ChoiceStep) Update(msg tea.Msg, state *State) (Step, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if s.cursor > 0 {
				s.cursor--
			}
		case "down", "j":
			if s.cursor < len(s.choices)-1 {
				s.cursor++
			}
		case "enter":
			state.EnvVars[s.envKey] = s.choices[s.cursor].Value
			return nil, nil
		}
	}
	return s, nil
}

func (s *ChoiceStep) View(state *State) string {
	var b strings.Builder
	b.WriteString(s.title + "\n\n")
	for i, choice := range s.choices {
		if s.cursor == i {
			b.WriteString(selStyle.Render(fmt.Sprintf("> %s", choice.Label)) + "\n")
		} else {
			b.WriteString(itemStyle.Render(fmt.Sprintf("  %s", choice.Label)) + "\n")
		}
	}
	b.WriteString("\n(press ctrl+c to quit)\n")
	return b.String()
}
