// Package codec converts messages between their live and persisted forms.
package codec

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/sandevgo/chatlog/internal/core"
)

type Reconstructor interface {
	Reconstruct(markup string) ([]core.Node, error)
}

type Codec struct {
	renderer      core.Renderer
	reconstructor Reconstructor
	newID         func() string
}

func NewCodec(renderer core.Renderer, reconstructor Reconstructor) *Codec {
	return &Codec{
		renderer:      renderer,
		reconstructor: reconstructor,
		newID:         uuid.NewString,
	}
}

// Encode renders rich content to markup and tags it as an object; text is
// stored verbatim.
func (c *Codec) Encode(msg core.Message) (core.PersistedMessage, error) {
	if !msg.IsRich() {
		return core.PersistedMessage{
			Content: msg.Text,
			Type:    core.ContentString,
			Sender:  msg.Sender,
		}, nil
	}

	markup, err := c.renderer.Render(msg.Rich)
	if err != nil {
		return core.PersistedMessage{}, fmt.Errorf("failed to render rich content: %w", err)
	}
	return core.PersistedMessage{
		Content: markup,
		Type:    core.ContentObject,
		Sender:  msg.Sender,
	}, nil
}

// Decode rebuilds a live message. Any type other than object, including a
// missing one, is read as plain text. The message gets a fresh ID.
func (c *Codec) Decode(p core.PersistedMessage) (core.Message, error) {
	msg := core.Message{
		ID:     c.newID(),
		Sender: p.Sender,
	}

	if p.Type != core.ContentObject {
		msg.Text = p.Content
		return msg, nil
	}

	nodes, err := c.reconstructor.Reconstruct(p.Content)
	if err != nil {
		return core.Message{}, fmt.Errorf("failed to reconstruct markup: %w", err)
	}
	if nodes == nil {
		nodes = []core.Node{}
	}
	msg.Rich = nodes
	return msg, nil
}

// EncodeAll encodes msgs in order, stopping at the first failure.
func (c *Codec) EncodeAll(msgs []core.Message) ([]core.PersistedMessage, error) {
	out := make([]core.PersistedMessage, 0, len(msgs))
	for _, m := range msgs {
		p, err := c.Encode(m)
		if err != nil {
			return nil, fmt.Errorf("message %s: %w", m.ID, err)
		}
		out = append(out, p)
	}
	return out, nil
}

// DecodeAll decodes persisted in order, stopping at the first failure.
func (c *Codec) DecodeAll(persisted []core.PersistedMessage) ([]core.Message, error) {
	out := make([]core.Message, 0, len(persisted))
	for _, p := range persisted {
		m, err := c.Decode(p)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}
