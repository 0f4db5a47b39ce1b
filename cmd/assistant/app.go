package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"go.uber.org/zap"

	"github.com/yourusername/voice-assistant/config"
	"github.com/yourusername/voice-assistant/internal/domain/repository"
	"github.com/yourusername/voice-assistant/internal/infrastructure/excel"
	"github.com/yourusername/voice-assistant/internal/infrastructure/gemini"
	"github.com/yourusername/voice-assistant/internal/infrastructure/storage"
	"github.com/yourusername/voice-assistant/internal/infrastructure/youtube"
	"github.com/yourusername/voice-assistant/internal/usecase"
)

// app barcha qatlamlar bir joyda ulangan holati
type app struct {
	assistant usecase.AssistantUseCase
	history   usecase.HistoryUseCase
	profiles  usecase.ProfileUseCase
	code      usecase.CodeUseCase

	closers []func() error
}

// newApp konfiguratsiya asosida repository, client va usecase larni yaratish
func newApp(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*app, error) {
	a := &app{}

	historyRepo, profileRepo, err := a.openStorage(cfg)
	if err != nil {
		return nil, err
	}

	geminiClient, err := gemini.NewClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		a.Close()
		return nil, err
	}
	a.closers = append(a.closers, geminiClient.Close)

	// Kalit bo'lmasa dispatcher doim qidiruv URL ini qaytaradi
	var videos repository.VideoRepository
	if cfg.YouTubeAPIKey != "" {
		videos, err = youtube.NewVideoClient(ctx, cfg.YouTubeAPIKey)
		if err != nil {
			a.Close()
			return nil, err
		}
	} else {
		logger.Info("YOUTUBE_API_KEY not set, video requests use search links")
	}

	seed := uint64(time.Now().UnixNano())
	rnd := rand.New(rand.NewPCG(seed, seed>>1))

	dispatcher := usecase.NewDispatcher(videos, time.Now, rnd, logger.Named("dispatcher"),
		usecase.WithVideoTimeout(cfg.VideoTimeout))
	recorder := usecase.NewExchangeRecorder(historyRepo, time.Now)

	a.assistant = usecase.NewAssistantUseCase(
		geminiClient,
		historyRepo,
		dispatcher,
		recorder,
		usecase.AssistantOptions{
			ContextWindowSize: cfg.ContextWindowSize,
			NLUTimeout:        cfg.NLUTimeout,
		},
		logger.Named("assistant"),
	)
	a.history = usecase.NewHistoryUseCase(historyRepo, excel.NewHistorySheet())
	a.profiles = usecase.NewProfileUseCase(profileRepo)
	a.code = usecase.NewCodeUseCase(geminiClient, logger.Named("code"))

	return a, nil
}

func (a *app) openStorage(cfg *config.Config) (repository.HistoryRepository, repository.ProfileRepository, error) {
	switch cfg.HistoryBackend {
	case config.BackendMemory:
		return storage.NewMemoryHistoryRepository(cfg.MaxHistorySize), storage.NewMemoryProfileRepository(), nil
	case config.BackendSQLite:
		db, err := storage.OpenSQLite(cfg.HistoryDBPath)
		if err != nil {
			return nil, nil, err
		}
		a.closers = append(a.closers, db.Close)
		return storage.NewSQLiteHistoryRepository(db, cfg.MaxHistorySize), storage.NewSQLiteProfileRepository(db), nil
	default:
		return nil, nil, fmt.Errorf("unknown history backend %q", cfg.HistoryBackend)
	}
}

// Close ochilgan resurslarni teskari tartibda yopish
func (a *app) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}
