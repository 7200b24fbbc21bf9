package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/chzyer/readline"
	"github.com/sandevgo/chatlog/internal/config"
	"github.com/sandevgo/chatlog/pkg/log"
)

// ReadLine hosts a Shell on an interactive terminal.
type ReadLine struct {
	shell *Shell
	rl    *readline.Instance
	// waits for deferred history tasks on shutdown
	drain func()
}

func NewReadLine(shell *Shell, cfg *config.AppConfig, drain func()) (*ReadLine, error) {
	// Ensure runtime directory exists
	if err := os.MkdirAll(cfg.RuntimePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create runtime directory: %w", err)
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          ">>> ",
		HistoryFile:     filepath.Join(cfg.RuntimePath, "input_history"),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, err
	}

	return &ReadLine{
		shell: shell,
		rl:    rl,
		drain: drain,
	}, nil
}

func (r *ReadLine) Start(ctx context.Context) error {
	logger := log.FromCtx(ctx)
	logger.Info().Msg("chat started. Type '/help' for commands, 'exit' to quit.")

	for {
		// Check context before blocking read
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		line, err := r.rl.Readline()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) {
				if len(line) == 0 {
					return nil // Exit on Ctrl+C
				}
				continue
			} else if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		quit, err := r.shell.Exec(ctx, line, r.rl.Stdout())
		if err != nil {
			logger.Error().Err(err).Msg("command failed")
			fmt.Fprintf(r.rl.Stdout(), "Error: %v\n", err)
		}
		if quit {
			return nil
		}
	}
}

func (r *ReadLine) Shutdown(ctx context.Context) error {
	if r.drain != nil {
		r.drain()
	}
	if r.rl != nil {
		return r.rl.Close()
	}
	return nil
}
