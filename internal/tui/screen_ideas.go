package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
)

// ideasModel asks the assistant for secure storage ideas on a topic.
type ideasModel struct {
	topicInput textinput.Model
	result     string
	busy       bool
	enabled    bool
}

func newIdeasModel(enabled bool) ideasModel {
	topic := textinput.New()
	topic.Placeholder = "e.g. travel documents"
	topic.CharLimit = 120
	topic.Width = 40
	topic.Focus()
	return ideasModel{topicInput: topic, enabled: enabled}
}

func (m ideasModel) View() string {
	out := titleStyle.Render("Storage Ideas") + "\n\n"
	if !m.enabled {
		out += "The assistant is disabled. Set an API key to enable it.\n"
		out += "\n" + helpStyle.Render("esc back")
		return out
	}

	out += "Topic: [" + m.topicInput.View() + "]\n"
	switch {
	case m.busy:
		out += "\nThinking...\n"
	case m.result != "":
		out += "\n" + m.result + "\n"
	}
	out += "\n" + helpStyle.Render("enter ask  esc back")
	return out
}
