package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/sandevgo/chatlog/internal/service/chat"
	"github.com/sandevgo/chatlog/internal/service/history"
)

// LoadCommand restores the stored history into the conversation.
type LoadCommand struct {
	loader    *history.Loader
	formatter *ResponseFormatter
}

func NewLoadCommand(loader *history.Loader) *LoadCommand {
	return &LoadCommand{loader: loader, formatter: NewResponseFormatter()}
}

func (c *LoadCommand) Name() string {
	return "load"
}

func (c *LoadCommand) Description() string {
	return "Restore stored history"
}

func (c *LoadCommand) Execute(ctx context.Context, args string) (string, error) {
	if err := c.loader.Load(ctx); err != nil {
		return "", err
	}
	return c.formatter.Label("History", c.loader.State().String()), nil
}

// ShowCommand prints the live conversation.
type ShowCommand struct {
	conversation *chat.Conversation
	printer      *chat.Printer
}

func NewShowCommand(conversation *chat.Conversation, printer *chat.Printer) *ShowCommand {
	return &ShowCommand{conversation: conversation, printer: printer}
}

func (c *ShowCommand) Name() string {
	return "show"
}

func (c *ShowCommand) Description() string {
	return "Print the conversation"
}

func (c *ShowCommand) Execute(ctx context.Context, args string) (string, error) {
	var sb strings.Builder
	if err := c.printer.Print(&sb, c.conversation.Messages()); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// ClearCommand removes the stored history. The live conversation is kept.
type ClearCommand struct {
	session   *history.Session
	formatter *ResponseFormatter
}

func NewClearCommand(session *history.Session) *ClearCommand {
	return &ClearCommand{session: session, formatter: NewResponseFormatter()}
}

func (c *ClearCommand) Name() string {
	return "clear"
}

func (c *ClearCommand) Description() string {
	return "Remove stored history"
}

func (c *ClearCommand) Execute(ctx context.Context, args string) (string, error) {
	if err := c.session.Clear(ctx); err != nil {
		return "", fmt.Errorf("failed to clear history: %w", err)
	}
	return c.formatter.Success("stored history removed"), nil
}
