package chat

import (
	"slices"
	"sync"

	"github.com/google/uuid"
	"github.com/sandevgo/chatlog/internal/core"
)

var (
	_ core.MessageList  = (*Conversation)(nil)
	_ core.InputControl = (*Conversation)(nil)
)

// Conversation is the live message list of a host together with its text
// area state.
type Conversation struct {
	mu            sync.Mutex
	messages      []core.Message
	inputDisabled bool
}

func NewConversation(initial ...core.Message) *Conversation {
	c := &Conversation{}
	for _, m := range initial {
		c.messages = append(c.messages, withID(m))
	}
	return c
}

// Append adds msg at the tail and returns it with its ID set.
func (c *Conversation) Append(msg core.Message) core.Message {
	msg = withID(msg)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.messages = append(c.messages, msg)
	return msg
}

// Update replaces the list with fn's result. fn gets a copy, so it may
// reslice or modify it freely.
func (c *Conversation) Update(fn func(old []core.Message) []core.Message) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.messages = fn(slices.Clone(c.messages))
}

// Messages returns a snapshot of the list.
func (c *Conversation) Messages() []core.Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.messages)
}

func (c *Conversation) SetTextAreaDisabled(disabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.inputDisabled = disabled
}

func (c *Conversation) TextAreaDisabled() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inputDisabled
}

func withID(m core.Message) core.Message {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return m
}
