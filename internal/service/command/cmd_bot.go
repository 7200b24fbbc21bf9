package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/sandevgo/chatlog/internal/core"
	"github.com/sandevgo/chatlog/pkg/conv"
)

type Reconstructor interface {
	Reconstruct(markup string) ([]core.Node, error)
}

// BotCommand adds a rich bot message authored in markdown.
type BotCommand struct {
	recorder      *Recorder
	reconstructor Reconstructor
	formatter     *ResponseFormatter
}

func NewBotCommand(recorder *Recorder, reconstructor Reconstructor) *BotCommand {
	return &BotCommand{
		recorder:      recorder,
		reconstructor: reconstructor,
		formatter:     NewResponseFormatter(),
	}
}

func (c *BotCommand) Name() string {
	return "bot"
}

func (c *BotCommand) Description() string {
	return "Add a bot message written in markdown"
}

func (c *BotCommand) Execute(ctx context.Context, args string) (string, error) {
	if args == "" {
		return c.formatter.Usage("/bot <markdown>"), nil
	}

	msg, err := RichMessage(c.reconstructor, core.SenderBot, args)
	if err != nil {
		return "", err
	}
	if _, err := c.recorder.Record(ctx, msg); err != nil {
		return "", fmt.Errorf("failed to save bot message: %w", err)
	}
	return "", nil
}

// RichMessage renders md and rebuilds it as rich content from sender.
func RichMessage(reconstructor Reconstructor, sender core.Sender, md string) (core.Message, error) {
	if reconstructor == nil {
		return core.Message{}, errors.New("no markup reconstructor")
	}
	nodes, err := reconstructor.Reconstruct(conv.MarkdownToHTML([]byte(md)))
	if err != nil {
		return core.Message{}, fmt.Errorf("failed to build rich message: %w", err)
	}
	if nodes == nil {
		nodes = []core.Node{}
	}
	return core.Message{Sender: sender, Rich: nodes}, nil
}
