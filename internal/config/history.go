package config

import (
	"context"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/chatlog/pkg/log"
)

const (
	StorageLocal   = "local"
	StorageSession = "session"
)

// HistoryConfig is fixed for the lifetime of a history session.
type HistoryConfig struct {
	StorageKey  string        `env:"CHAT_HISTORY_STORAGE_KEY" envDefault:"rcb-history"`
	MaxEntries  int           `env:"CHAT_HISTORY_MAX_ENTRIES" envDefault:"30"`
	Disabled    bool          `env:"CHAT_HISTORY_DISABLED" envDefault:"false"`
	StorageType string        `env:"CHAT_HISTORY_STORAGE_TYPE" envDefault:"local"`
	LoadDelay   time.Duration `env:"CHAT_HISTORY_LOAD_DELAY" envDefault:"500ms"`
}

func NewHistoryConfig(ctx context.Context) *HistoryConfig {
	c := &HistoryConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse History config")
	}
	if err := c.Validate(); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("invalid History config")
	}
	return c
}

func (c HistoryConfig) Validate() error {
	if c.StorageKey == "" {
		return fmt.Errorf("storage key must not be empty")
	}
	if c.MaxEntries < 1 {
		return fmt.Errorf("max entries must be positive, got %d", c.MaxEntries)
	}
	if c.StorageType != StorageLocal && c.StorageType != StorageSession {
		return fmt.Errorf("unknown storage type %q", c.StorageType)
	}
	if c.LoadDelay < 0 {
		return fmt.Errorf("load delay must not be negative")
	}
	return nil
}
