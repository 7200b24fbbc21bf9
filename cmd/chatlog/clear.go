package main

import (
	"github.com/sandevgo/chatlog/pkg/log"
	"github.com/spf13/cobra"
)

var clearCmd = &cobra.Command{
	Use:          "clear",
	Short:        "Remove the stored history",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, flushLog := setupLogger(cmd.Context())
		defer flushLog()

		app, err := NewApp(ctx)
		if err != nil {
			return err
		}
		defer app.Close()

		if err := app.Session.Clear(ctx); err != nil {
			return err
		}

		log.FromCtx(ctx).Info().Str("key", app.HistoryCfg.StorageKey).Msg("history cleared")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(clearCmd)
}
