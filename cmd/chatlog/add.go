package main

import (
	"fmt"

	"github.com/sandevgo/chatlog/internal/core"
	"github.com/sandevgo/chatlog/internal/service/chat"
	"github.com/sandevgo/chatlog/internal/service/command"
	"github.com/sandevgo/chatlog/pkg/log"
	"github.com/spf13/cobra"
)

var (
	addSender   string
	addText     string
	addMarkdown string
)

var addCmd = &cobra.Command{
	Use:          "add",
	Short:        "Append one message to the stored history",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, flushLog := setupLogger(cmd.Context())
		defer flushLog()

		sender := core.Sender(addSender)
		if sender != core.SenderUser && sender != core.SenderBot {
			return fmt.Errorf("sender must be %q or %q, got %q", core.SenderUser, core.SenderBot, addSender)
		}

		app, err := NewApp(ctx)
		if err != nil {
			return err
		}
		defer app.Close()

		logger := log.FromCtx(ctx)
		if app.Session.Disabled() {
			logger.Warn().Msg("chat history is disabled, message not stored")
			return nil
		}

		msg := core.Message{Sender: sender, Text: addText}
		if cmd.Flags().Changed("markdown") {
			msg, err = command.RichMessage(app.Reconstructor, sender, addMarkdown)
			if err != nil {
				return err
			}
		}

		conversation := chat.NewConversation()
		conversation.Append(msg)
		if err := app.Session.Save(ctx, conversation.Messages()); err != nil {
			return fmt.Errorf("failed to save message: %w", err)
		}

		logger.Info().Str("sender", addSender).Msg("message stored")
		return nil
	},
}

func init() {
	addCmd.Flags().StringVarP(&addSender, "sender", "s", string(core.SenderUser), "message sender (user|bot)")
	addCmd.Flags().StringVarP(&addText, "text", "t", "", "plain text content")
	addCmd.Flags().StringVarP(&addMarkdown, "markdown", "m", "", "markdown content, stored as rich markup")
	addCmd.MarkFlagsMutuallyExclusive("text", "markdown")
	addCmd.MarkFlagsOneRequired("text", "markdown")
	rootCmd.AddCommand(addCmd)
}
