package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/yourusername/voice-assistant/config"
	"github.com/yourusername/voice-assistant/internal/infrastructure/logging"
)

var (
	// Global flags
	userID   string
	logLevel string

	cfg    *config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "assistant",
	Short: "Personal voice assistant command engine",
	Long: `assistant turns free-form utterances into structured commands using Gemini,
executes them and keeps a per-user conversation history.

Run "assistant serve" to start the HTTP API and the Telegram bot.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("config yuklanmadi: %w", err)
		}
		if logLevel != "" {
			cfg.LogLevel = logLevel
		}

		logger, err = logging.New(cfg.LogLevel)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&userID, "user", "u", "cli", "User ID whose history and profile are used")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Override LOG_LEVEL (debug, info, warn, error)")

	rootCmd.AddCommand(serveCmd, askCmd, historyCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
