package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/yourusername/voice-assistant/internal/delivery/api"
	"github.com/yourusername/voice-assistant/internal/delivery/telegram"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API and, if TELEGRAM_BOT_TOKEN is set, the Telegram bot",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := newApp(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer a.Close()

	// Bot goroutine lar ishga tushishidan oldin yaratiladi
	bot, err := newBot(a)
	if err != nil {
		return err
	}

	handler := api.NewHandler(a.assistant, a.history, a.profiles, a.code, logger.Named("api"))
	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           api.NewServer(handler),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", zap.String("addr", cfg.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if bot != nil {
		g.Go(func() error {
			if err := bot.Start(gctx); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("shutdown complete")
	return nil
}

// newBot token bo'lmasa nil qaytaradi
func newBot(a *app) (*telegram.BotHandler, error) {
	if cfg.TelegramToken == "" {
		logger.Info("TELEGRAM_BOT_TOKEN not set, telegram bot disabled")
		return nil, nil
	}
	return telegram.NewBotHandler(cfg.TelegramToken, a.assistant, a.history, a.profiles, a.code, logger.Named("telegram"))
}
