package history

import (
	"context"
	"fmt"

	"github.com/sandevgo/chatlog/internal/core"
	"github.com/sandevgo/chatlog/pkg/log"
)

// Save persists live against the session baseline. Every save in a session
// pads from the same baseline, so repeated saves never duplicate entries.
func (s *Session) Save(ctx context.Context, live []core.Message) error {
	previous, _ := s.snapshot()
	return s.Write(ctx, live, previous)
}

// Write merges the new messages of live into previous and stores the result
// under the session key. previous that cannot be decoded counts as empty.
// Errors from the storage medium are returned as is.
func (s *Session) Write(ctx context.Context, live []core.Message, previous string) error {
	if s.cfg.Disabled {
		return nil
	}
	logger := log.FromCtx(ctx)

	old, err := ParseWindow(previous)
	if err != nil {
		logger.Warn().Err(err).Str("key", s.cfg.StorageKey).Msg("ignoring unreadable chat history")
		old = nil
	}

	// Restored entries sit at the head of live once loaded; skip them.
	offset := 0
	if s.Loaded() {
		offset = len(old)
	}

	batch := collectBatch(live, offset, s.cfg.MaxEntries)
	encoded, err := s.codec.EncodeAll(batch)
	if err != nil {
		return fmt.Errorf("failed to encode chat history: %w", err)
	}

	window := mergeWindow(old, encoded, s.cfg.MaxEntries)
	value, err := FormatWindow(window)
	if err != nil {
		return err
	}

	if err := s.store.Set(ctx, s.cfg.StorageKey, value); err != nil {
		return err
	}

	logger.Debug().
		Int("new", len(encoded)).
		Int("stored", len(window)).
		Int("offset", offset).
		Msg("chat history written")
	return nil
}
