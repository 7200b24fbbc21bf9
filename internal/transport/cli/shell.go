package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/sandevgo/chatlog/internal/core"
	"github.com/sandevgo/chatlog/internal/service/command"
)

const cmdExit = "exit"

// Shell interprets the lines of an interactive session. Slash commands go
// to the router, anything else is recorded as a user message.
type Shell struct {
	router   *command.Router
	recorder *command.Recorder
}

func NewShell(router *command.Router, recorder *command.Recorder) *Shell {
	return &Shell{
		router:   router,
		recorder: recorder,
	}
}

// Exec runs one input line. It reports whether the session should end.
func (s *Shell) Exec(ctx context.Context, line string, out io.Writer) (bool, error) {
	line = strings.TrimSpace(line)
	switch line {
	case "":
		return false, nil
	case cmdExit:
		return true, nil
	}

	if reply, ok := s.router.Execute(ctx, line); ok {
		if reply != "" {
			fmt.Fprint(out, reply)
		}
		return false, nil
	}

	_, err := s.recorder.Record(ctx, core.Message{Sender: core.SenderUser, Text: line})
	return false, err
}
