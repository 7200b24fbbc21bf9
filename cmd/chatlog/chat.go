package main

import (
	"github.com/sandevgo/chatlog/internal/service/chat"
	"github.com/sandevgo/chatlog/internal/service/command"
	"github.com/sandevgo/chatlog/internal/service/history"
	"github.com/sandevgo/chatlog/internal/transport/cli"
	"github.com/sandevgo/chatlog/pkg/log"
	"github.com/sandevgo/chatlog/pkg/srv"
	"github.com/spf13/cobra"
)

var chatSkipLoad bool

var chatCmd = &cobra.Command{
	Use:          "chat",
	Short:        "Start an interactive conversation backed by the stored history",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, flushLog := setupLogger(cmd.Context())
		defer flushLog()
		logger := log.FromCtx(ctx)

		app, err := NewApp(ctx)
		if err != nil {
			return err
		}

		// Live conversation
		widgets := chat.NewWidgets()
		conversation := chat.NewConversation(widgets.Placeholder())
		scheduler := history.NewTimerScheduler()
		loader := history.NewLoader(app.Session, conversation, conversation, widgets, scheduler, app.AppCfg.ChatInputDisabled)

		// Slash commands
		recorder := command.NewRecorder(app.Session, conversation)
		router := command.New(command.NewCommands(
			recorder,
			app.Session,
			conversation,
			loader,
			app.Reconstructor,
			chat.NewPrinter(app.Renderer, true),
		))

		rl, err := cli.NewReadLine(cli.NewShell(router, recorder), app.AppCfg, scheduler.Wait)
		if err != nil {
			app.Close()
			return err
		}

		if !chatSkipLoad {
			if err := loader.Load(ctx); err != nil {
				logger.Warn().Err(err).Msg("failed to load history")
			}
		}

		return srv.Run(ctx, srv.NewCleanup(app.Close), rl)
	},
}

func init() {
	chatCmd.Flags().BoolVar(&chatSkipLoad, "no-load", false, "start without restoring stored history")
	rootCmd.AddCommand(chatCmd)
}
