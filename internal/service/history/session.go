// Package history keeps a bounded window of the conversation in storage and
// restores it into a live conversation.
package history

import (
	"context"
	"fmt"
	"sync"

	"github.com/sandevgo/chatlog/internal/config"
	"github.com/sandevgo/chatlog/internal/core"
	"github.com/sandevgo/chatlog/pkg/log"
)

type Codec interface {
	EncodeAll(msgs []core.Message) ([]core.PersistedMessage, error)
	DecodeAll(persisted []core.PersistedMessage) ([]core.Message, error)
}

// Session is the per-conversation history context. It owns the settings,
// the "history loaded" flag and the baseline: the stored window as it was
// when the session was opened.
type Session struct {
	cfg   config.HistoryConfig
	store core.Storage
	codec Codec

	mu          sync.Mutex
	loaded      bool
	baseline    string
	hasBaseline bool
}

// NewSession opens a session and snapshots the stored window under
// cfg.StorageKey.
func NewSession(ctx context.Context, cfg *config.HistoryConfig, store core.Storage, codec Codec) (*Session, error) {
	raw, ok, err := store.Get(ctx, cfg.StorageKey)
	if err != nil {
		return nil, fmt.Errorf("failed to read chat history: %w", err)
	}

	log.FromCtx(ctx).Debug().
		Str("key", cfg.StorageKey).
		Bool("found", ok).
		Int("max_entries", cfg.MaxEntries).
		Msg("history session opened")

	return &Session{
		cfg:         *cfg,
		store:       store,
		codec:       codec,
		baseline:    raw,
		hasBaseline: ok,
	}, nil
}

// Disabled reports whether writes are turned off for this session.
func (s *Session) Disabled() bool {
	return s.cfg.Disabled
}

// Loaded reports whether a load has been attempted in this session.
func (s *Session) Loaded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loaded
}

func (s *Session) markLoaded() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loaded = true
}

func (s *Session) snapshot() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.baseline, s.hasBaseline
}

// Clear removes the stored window and forgets the baseline.
func (s *Session) Clear(ctx context.Context) error {
	if err := s.store.Remove(ctx, s.cfg.StorageKey); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.baseline, s.hasBaseline = "", false
	return nil
}

// Stored reads the window currently in storage, which may be newer than the
// baseline.
func (s *Session) Stored(ctx context.Context) (string, bool, error) {
	return s.store.Get(ctx, s.cfg.StorageKey)
}
