package main

import (
	"slices"

	"github.com/sandevgo/chatlog/internal/core"
	"github.com/sandevgo/chatlog/internal/service/chat"
	"github.com/sandevgo/chatlog/internal/service/history"
	"github.com/sandevgo/chatlog/pkg/log"
	"github.com/spf13/cobra"
)

var showRaw bool

var showCmd = &cobra.Command{
	Use:          "show",
	Short:        "Restore the stored history and print it",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, flushLog := setupLogger(cmd.Context())
		defer flushLog()

		app, err := NewApp(ctx)
		if err != nil {
			return err
		}
		defer app.Close()

		printer := chat.NewPrinter(app.Renderer, true)
		if showRaw {
			raw, _, err := app.Session.Stored(ctx)
			if err != nil {
				return err
			}
			window, err := history.ParseWindow(raw)
			if err != nil {
				return err
			}
			return printer.PrintPersisted(cmd.OutOrStdout(), window)
		}

		widgets := chat.NewWidgets()
		conversation := chat.NewConversation(widgets.Placeholder())
		scheduler := history.NewTimerScheduler()
		loader := history.NewLoader(app.Session, conversation, conversation, widgets, scheduler, app.AppCfg.ChatInputDisabled)

		if err := loader.Load(ctx); err != nil {
			return err
		}
		scheduler.Wait()

		log.FromCtx(ctx).Debug().Stringer("state", loader.State()).Msg("history load finished")
		msgs := slices.DeleteFunc(conversation.Messages(), func(m core.Message) bool {
			return m.Component == chat.ComponentPlaceholder
		})
		return printer.Print(cmd.OutOrStdout(), msgs)
	},
}

func init() {
	showCmd.Flags().BoolVar(&showRaw, "raw", false, "print stored entries without restoring them")
	rootCmd.AddCommand(showCmd)
}
