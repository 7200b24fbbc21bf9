package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/sandevgo/chatlog/internal/config"
	"github.com/sandevgo/chatlog/internal/core"
	"github.com/sandevgo/chatlog/internal/service/codec"
	"github.com/sandevgo/chatlog/internal/service/history"
	"github.com/sandevgo/chatlog/internal/service/markup"
	"github.com/sandevgo/chatlog/internal/service/style"
	"github.com/sandevgo/chatlog/internal/storage/memory"
	"github.com/sandevgo/chatlog/internal/storage/sqlite"
	"github.com/sandevgo/chatlog/pkg/log"
)

// App bundles everything a command needs to work on the stored history.
type App struct {
	AppCfg     *config.AppConfig
	HistoryCfg *config.HistoryConfig
	StyleCfg   *config.StyleConfig

	Renderer      *markup.Renderer
	Reconstructor *markup.Reconstructor
	Session       *history.Session

	close func() error
}

func (a *App) Close() error {
	if a.close != nil {
		return a.close()
	}
	return nil
}

func NewApp(ctx context.Context) (*App, error) {
	// init env
	if err := initEnv(ctx, config.GetRuntimePath()); err != nil {
		return nil, fmt.Errorf("failed to init env: %w", err)
	}

	// 1. Configuration
	app := &App{
		AppCfg:     config.NewAppConfig(ctx),
		HistoryCfg: config.NewHistoryConfig(ctx),
		StyleCfg:   config.NewStyleConfig(ctx),
	}

	// 2. Storage
	store, closeFn, err := initStorage(ctx, app.AppCfg, app.HistoryCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}
	app.close = closeFn

	// 3. Codec
	app.Renderer = markup.NewRenderer()
	app.Reconstructor = markup.NewReconstructor(style.NewEngine(app.StyleCfg))
	c := codec.NewCodec(app.Renderer, app.Reconstructor)

	// 4. Session
	app.Session, err = history.NewSession(ctx, app.HistoryCfg, store, c)
	if err != nil {
		app.Close()
		return nil, err
	}
	return app, nil
}

func initStorage(ctx context.Context, appCfg *config.AppConfig, histCfg *config.HistoryConfig) (core.Storage, func() error, error) {
	logger := log.FromCtx(ctx)

	if histCfg.StorageType == config.StorageSession {
		logger.Debug().Msg("using in-memory history storage")
		return memory.NewStore(), nil, nil
	}

	db, err := sqlite.NewDB(ctx, appCfg.GetDatabasePath())
	if err != nil {
		return nil, nil, err
	}
	return sqlite.NewStore(db), db.Close, nil
}

func initEnv(ctx context.Context, runtimePath string) error {
	logger := log.FromCtx(ctx)
	envFile := filepath.Join(runtimePath, ".env")

	if _, err := os.Stat(envFile); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	if err := godotenv.Load(envFile); err != nil {
		logger.Warn().Err(err).Str("path", envFile).Msg("failed to load .env file")
		return err
	}

	logger.Debug().Str("path", envFile).Msg("loaded .env file")
	return nil
}
