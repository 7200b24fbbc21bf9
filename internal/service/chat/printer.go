package chat

import (
	"fmt"
	"io"
	"strings"

	"github.com/sandevgo/chatlog/internal/core"
	"github.com/sandevgo/chatlog/internal/service/ui"
	"github.com/sandevgo/chatlog/pkg/conv"
)

// Printer writes conversation entries as terminal lines. Rich content is
// rendered back to markup and flattened to text.
type Printer struct {
	renderer core.Renderer
	colored  bool
}

func NewPrinter(renderer core.Renderer, colored bool) *Printer {
	return &Printer{renderer: renderer, colored: colored}
}

func (p *Printer) Print(w io.Writer, msgs []core.Message) error {
	for _, msg := range msgs {
		line, err := p.format(msg)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// PrintPersisted writes stored entries without decoding them.
func (p *Printer) PrintPersisted(w io.Writer, window []core.PersistedMessage) error {
	for _, entry := range window {
		text := entry.Content
		if entry.Type == core.ContentObject {
			flat, err := conv.HTMLToText(entry.Content)
			if err != nil {
				return fmt.Errorf("failed to convert stored markup: %w", err)
			}
			text = flat
		}
		if _, err := fmt.Fprintln(w, p.prefix(entry.Sender)+indent(text)); err != nil {
			return err
		}
	}
	return nil
}

func (p *Printer) format(msg core.Message) (string, error) {
	if msg.Sender.IsSystem() {
		return p.style(msg.Sender, fmt.Sprintf("--- %s ---", msg.Component)), nil
	}
	if !msg.IsRich() {
		return p.prefix(msg.Sender) + indent(msg.Text), nil
	}

	markup, err := p.renderer.Render(msg.Rich)
	if err != nil {
		return "", fmt.Errorf("failed to render message %s: %w", msg.ID, err)
	}
	text, err := conv.HTMLToText(markup)
	if err != nil {
		return "", fmt.Errorf("failed to convert message %s: %w", msg.ID, err)
	}
	return p.prefix(msg.Sender) + indent(text), nil
}

func (p *Printer) prefix(sender core.Sender) string {
	return p.style(sender, string(sender)+">") + " "
}

func (p *Printer) style(sender core.Sender, s string) string {
	if !p.colored {
		return s
	}
	return ui.SenderStyle(sender).Render(s)
}

func indent(text string) string {
	return strings.ReplaceAll(text, "\n", "\n   ")
}
