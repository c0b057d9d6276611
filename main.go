package main

import (
	"ChallengeWizard/internal/adapters/app"
	"ChallengeWizard/internal/adapters/app/service_provider"
	"ChallengeWizard/internal/adapters/config"
	"ChallengeWizard/internal/adapters/logger"
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	configPath string

	cfg config.Config
	log *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "challengewizard",
	Short: "Challenge creation wizard service",
	Long: `Serves the challenge creation wizard over HTTP and, when a bot token
is configured, over Telegram. Settings come from an optional YAML file
and environment variables.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		log, err = logger.New(cfg.LogLevel, cfg.Env)
		if err != nil {
			return err
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if log != nil {
			_ = log.Sync()
		}
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API and the Telegram bot",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer cancel()

		a, err := app.New(ctx, cfg, log)
		if err != nil {
			return err
		}
		return a.Start(ctx)
	},
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create the challenge store schema and exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		return service_provider.Migrate(cmd.Context(), cfg, log)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", os.Getenv("CONFIG_PATH"), "path to a YAML config file")
	rootCmd.AddCommand(serveCmd, migrateCmd)
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
