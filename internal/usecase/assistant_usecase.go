package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/yourusername/voice-assistant/internal/domain/entity"
	"github.com/yourusername/voice-assistant/internal/domain/repository"
)

// NLUFailureResponse NLU ishlamay qolganda beriladigan javob
const NLUFailureResponse = "Sorry, I couldn't process that right now."

var ErrEmptyUtterance = errors.New("command is required")

// AssistantUseCase so'rovni buyruqqa aylantirib bajaruvchi engine
type AssistantUseCase interface {
	Resolve(ctx context.Context, userID, utterance string, profile entity.AssistantProfile) (entity.DispatchResult, error)
}

// AssistantOptions engine sozlamalari
type AssistantOptions struct {
	ContextWindowSize int
	NLUTimeout        time.Duration
}

type assistantUseCase struct {
	nluRepo     repository.NLURepository
	historyRepo repository.HistoryRepository
	dispatcher  *Dispatcher
	recorder    *ExchangeRecorder
	opts        AssistantOptions
	logger      *zap.Logger
}

// NewAssistantUseCase yangi AssistantUseCase yaratish
func NewAssistantUseCase(
	nluRepo repository.NLURepository,
	historyRepo repository.HistoryRepository,
	dispatcher *Dispatcher,
	recorder *ExchangeRecorder,
	opts AssistantOptions,
	logger *zap.Logger,
) AssistantUseCase {
	if opts.ContextWindowSize <= 0 {
		opts.ContextWindowSize = DefaultContextWindowSize
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &assistantUseCase{
		nluRepo:     nluRepo,
		historyRepo: historyRepo,
		dispatcher:  dispatcher,
		recorder:    recorder,
		opts:        opts,
		logger:      logger,
	}
}

// Resolve foydalanuvchi so'rovini qayta ishlash. Faqat bo'sh so'rov xato qaytaradi,
// tashqi xizmatlardagi nosozliklar javob ichida yumshatiladi.
func (u *assistantUseCase) Resolve(ctx context.Context, userID, utterance string, profile entity.AssistantProfile) (entity.DispatchResult, error) {
	utterance = strings.TrimSpace(utterance)
	if utterance == "" {
		return entity.DispatchResult{}, ErrEmptyUtterance
	}
	log := u.logger.With(zap.String("user_id", userID))

	// Kontekst NLU chaqiruvidan oldin o'qiladi
	history, err := u.historyRepo.List(ctx, userID)
	if err != nil {
		log.Warn("failed to load history, continuing without context", zap.Error(err))
		history = nil
	}
	contextText := BuildContextWindow(history, u.opts.ContextWindowSize)
	prompt := ComposePrompt(contextText, utterance, profile)

	raw, err := u.infer(ctx, prompt)
	if err != nil {
		log.Warn("nlu inference failed", zap.Error(err))
		return entity.DispatchResult{
			Type:      entity.CommandGeneral,
			UserInput: utterance,
			Response:  NLUFailureResponse,
		}, nil
	}

	cmd, parsed := ExtractCommand(raw, utterance)
	if !parsed {
		log.Warn("nlu did not return json, wrapping response", zap.String("raw", truncateString(raw, 200)))
	}

	result := u.dispatcher.Dispatch(ctx, cmd)

	// Javob tayyor bo'lgandan keyin yoziladi; xatolik javobga ta'sir qilmaydi
	if ctx.Err() == nil {
		if err := u.recorder.Record(ctx, userID, utterance, result); err != nil {
			log.Warn("failed to record exchange", zap.Error(err))
		}
	}

	return result, nil
}

func (u *assistantUseCase) infer(ctx context.Context, prompt string) (string, error) {
	// AI so'rovlarini osilib qolmasligi uchun timeout
	if u.opts.NLUTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, u.opts.NLUTimeout)
		defer cancel()
	}
	return u.nluRepo.Infer(ctx, prompt)
}

func truncateString(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}
