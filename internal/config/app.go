package config

import (
	"context"
	"path/filepath"

	"github.com/caarlos0/env/v9"
	"github.com/sandevgo/chatlog/pkg/log"
)

type AppConfig struct {
	RuntimePath string `env:"CHATLOG_RUNTIME_PATH"`

	// Input area state restored once history has been reconciled
	ChatInputDisabled bool `env:"CHAT_INPUT_DISABLED" envDefault:"false"`
}

func NewAppConfig(ctx context.Context) *AppConfig {
	c := &AppConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse App config")
	}
	if c.RuntimePath == "" {
		c.RuntimePath = GetRuntimePath()
	}
	return c
}

func (c AppConfig) GetRuntimePath() string {
	return c.RuntimePath
}

func (c AppConfig) GetDatabasePath() string {
	return filepath.Join(c.RuntimePath, "chatlog.db")
}

func (c AppConfig) GetEnvPath() string {
	return filepath.Join(c.RuntimePath, ".env")
}
