package command

import (
	"context"

	"github.com/sandevgo/chatlog/internal/core"
	"github.com/sandevgo/chatlog/internal/service/chat"
	"github.com/sandevgo/chatlog/internal/service/history"
	"github.com/sandevgo/chatlog/pkg/log"
)

// Recorder appends messages to the live conversation and saves the history
// after each one.
type Recorder struct {
	session      *history.Session
	conversation *chat.Conversation
}

func NewRecorder(session *history.Session, conversation *chat.Conversation) *Recorder {
	return &Recorder{session: session, conversation: conversation}
}

func (r *Recorder) Record(ctx context.Context, msg core.Message) (core.Message, error) {
	msg = r.conversation.Append(msg)
	log.FromCtx(ctx).Debug().Str("id", msg.ID).Str("sender", string(msg.Sender)).Msg("message added")
	return msg, r.session.Save(ctx, r.conversation.Messages())
}
