package command

import (
	"github.com/sandevgo/chatlog/internal/core"
	"github.com/sandevgo/chatlog/internal/service/chat"
	"github.com/sandevgo/chatlog/internal/service/history"
)

func NewCommands(
	recorder *Recorder,
	session *history.Session,
	conversation *chat.Conversation,
	loader *history.Loader,
	reconstructor Reconstructor,
	printer *chat.Printer,
) []core.Command {
	return []core.Command{
		NewBotCommand(recorder, reconstructor),
		NewLoadCommand(loader),
		NewShowCommand(conversation, printer),
		NewClearCommand(session),
	}
}
