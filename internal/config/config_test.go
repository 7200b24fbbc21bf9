package config

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHistoryConfig_Defaults(t *testing.T) {
	cfg := NewHistoryConfig(context.Background())

	assert.Equal(t, "rcb-history", cfg.StorageKey)
	assert.Equal(t, 30, cfg.MaxEntries)
	assert.False(t, cfg.Disabled)
	assert.Equal(t, StorageLocal, cfg.StorageType)
	assert.Equal(t, 500*time.Millisecond, cfg.LoadDelay)
}

func TestNewHistoryConfig_FromEnv(t *testing.T) {
	t.Setenv("CHAT_HISTORY_STORAGE_KEY", "custom")
	t.Setenv("CHAT_HISTORY_MAX_ENTRIES", "3")
	t.Setenv("CHAT_HISTORY_DISABLED", "true")
	t.Setenv("CHAT_HISTORY_STORAGE_TYPE", "session")
	t.Setenv("CHAT_HISTORY_LOAD_DELAY", "0s")

	cfg := NewHistoryConfig(context.Background())

	assert.Equal(t, "custom", cfg.StorageKey)
	assert.Equal(t, 3, cfg.MaxEntries)
	assert.True(t, cfg.Disabled)
	assert.Equal(t, StorageSession, cfg.StorageType)
	assert.Zero(t, cfg.LoadDelay)
}

func TestHistoryConfig_Validate(t *testing.T) {
	valid := HistoryConfig{StorageKey: "k", MaxEntries: 1, StorageType: StorageLocal}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(c *HistoryConfig)
	}{
		{"empty key", func(c *HistoryConfig) { c.StorageKey = "" }},
		{"zero entries", func(c *HistoryConfig) { c.MaxEntries = 0 }},
		{"unknown storage", func(c *HistoryConfig) { c.StorageType = "cookie" }},
		{"negative delay", func(c *HistoryConfig) { c.LoadDelay = -time.Second }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid
			tt.mutate(&c)
			assert.Error(t, c.Validate())
		})
	}
}

func TestNewStyleConfig(t *testing.T) {
	t.Setenv("BOT_BUBBLE_SHOW_AVATAR", "true")
	t.Setenv("BOT_OPTION_COLOR", "#111111")

	cfg := NewStyleConfig(context.Background())

	assert.True(t, cfg.ShowAvatar)
	assert.Equal(t, "#111111", cfg.OptionColor)
	assert.Empty(t, cfg.CheckboxRowColor)
	assert.Equal(t, "#42b0c5", cfg.PrimaryColor)
}

func TestAppConfig_Paths(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("CHATLOG_RUNTIME_PATH", dir)

	cfg := NewAppConfig(context.Background())

	assert.Equal(t, dir, cfg.GetRuntimePath())
	assert.Equal(t, filepath.Join(dir, "chatlog.db"), cfg.GetDatabasePath())
	assert.Equal(t, filepath.Join(dir, ".env"), cfg.GetEnvPath())
}

func TestGetRuntimePath_RelativeUsesHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("CHATLOG_RUNTIME_PATH", "rel")

	assert.Equal(t, filepath.Join(home, "rel"), GetRuntimePath())
}
