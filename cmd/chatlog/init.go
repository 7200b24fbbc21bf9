package main

import (
	"fmt"
	"os"

	"github.com/sandevgo/chatlog/internal/config"
	"github.com/sandevgo/chatlog/internal/service/wizard"
	"github.com/sandevgo/chatlog/pkg/env"
	"github.com/sandevgo/chatlog/pkg/log"
	"github.com/spf13/cobra"
)

var (
	initForce       bool
	initInteractive bool
)

var initCmd = &cobra.Command{
	Use:          "init",
	Short:        "Write the effective settings to the runtime .env file",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, flushLog := setupLogger(cmd.Context())
		defer flushLog()
		logger := log.FromCtx(ctx)

		if err := initEnv(ctx, config.GetRuntimePath()); err != nil {
			return err
		}

		// answers override the environment for this run
		if initInteractive {
			state, err := wizard.Run()
			if err != nil {
				return err
			}
			for key, value := range state.EnvVars {
				if err := os.Setenv(key, value); err != nil {
					return fmt.Errorf("failed to apply %s: %w", key, err)
				}
			}
		}

		appCfg := config.NewAppConfig(ctx)
		histCfg := config.NewHistoryConfig(ctx)
		styleCfg := config.NewStyleConfig(ctx)

		envPath := appCfg.GetEnvPath()
		if _, err := os.Stat(envPath); err == nil && !initForce {
			return fmt.Errorf("%s already exists, use --force to overwrite", envPath)
		}

		content, err := env.MarshalEnv(appCfg, histCfg, styleCfg)
		if err != nil {
			return fmt.Errorf("failed to marshal settings: %w", err)
		}

		if err := os.MkdirAll(appCfg.GetRuntimePath(), 0755); err != nil {
			return fmt.Errorf("failed to create runtime directory: %w", err)
		}
		if err := os.WriteFile(envPath, []byte(content), 0600); err != nil {
			return fmt.Errorf("failed to write %s: %w", envPath, err)
		}

		logger.Info().Msgf("initialized runtime directory at: %s", appCfg.GetRuntimePath())
		return nil
	},
}

func init() {
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite an existing .env file")
	initCmd.Flags().BoolVarP(&initInteractive, "interactive", "i", false, "ask for the settings instead of taking them from the environment")
	rootCmd.AddCommand(initCmd)
}
