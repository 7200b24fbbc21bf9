package core

import "context"

// Storage is a string key-value medium. Get reports ok=false for a missing key.
type Storage interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}

// Renderer turns rich content into a markup string.
type Renderer interface {
	Render(nodes []Node) (string, error)
}

// MessageList is the live conversation. Update swaps the list for the value
// fn computes from the current one, atomically with respect to other updates.
type MessageList interface {
	Update(fn func(old []Message) []Message)
}

// InputControl toggles the text input area of the host.
type InputControl interface {
	SetTextAreaDisabled(disabled bool)
}

// Command is a slash command of an interactive host. args is the raw text
// after the command name.
type Command interface {
	Name() string
	Description() string
	Execute(ctx context.Context, args string) (string, error)
}
