package config

import (
	"context"

	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/chatlog/pkg/log"
)

// StyleConfig carries the theme values re-applied to reconstructed markup.
// Empty colors fall back to PrimaryColor.
type StyleConfig struct {
	ShowAvatar         bool   `env:"BOT_BUBBLE_SHOW_AVATAR" envDefault:"false"`
	OptionColor        string `env:"BOT_OPTION_COLOR"`
	CheckboxRowColor   string `env:"BOT_CHECKBOX_ROW_COLOR"`
	CheckboxNextColor  string `env:"BOT_CHECKBOX_NEXT_COLOR"`
	PrimaryColor       string `env:"THEME_PRIMARY_COLOR" envDefault:"#42b0c5"`
	ActionDisabledIcon string `env:"THEME_ACTION_DISABLED_ICON" envDefault:"action_disabled.png"`
}

func NewStyleConfig(ctx context.Context) *StyleConfig {
	c := &StyleConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse Style config")
	}
	return c
}
