package chat

import (
	"github.com/google/uuid"
	"github.com/sandevgo/chatlog/internal/core"
)

const (
	ComponentPlaceholder = "placeholder"
	ComponentLoading     = "loading-spinner"
	ComponentSeparator   = "history-separator"
)

// Widgets produces the transient system entries of the host UI.
type Widgets struct{}

func NewWidgets() *Widgets {
	return &Widgets{}
}

func (w *Widgets) LoadingMessage() core.Message {
	return systemMessage(ComponentLoading)
}

func (w *Widgets) SeparatorMessage() core.Message {
	return systemMessage(ComponentSeparator)
}

// Placeholder is the leading entry a fresh conversation starts with. The
// history loader replaces it with the loading indicator.
func (w *Widgets) Placeholder() core.Message {
	return systemMessage(ComponentPlaceholder)
}

func systemMessage(component string) core.Message {
	return core.Message{
		ID:        uuid.NewString(),
		Sender:    core.SenderSystem,
		Component: component,
	}
}
