package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/yourusername/voice-assistant/internal/domain/entity"
	"github.com/yourusername/voice-assistant/internal/domain/repository"
)

var (
	ErrInvalidExchange = errors.New("user input and assistant response required")
	ErrNoExchanges     = errors.New("no exchanges found in excel file")
	ErrInvalidSheet    = errors.New("invalid history spreadsheet")
)

// HistoryUseCase tarix bilan bog'liq business logic
type HistoryUseCase interface {
	// GetHistory foydalanuvchi tarixini olish
	GetHistory(ctx context.Context, userID string) ([]entity.Exchange, error)

	// AddHistory tarixga qo'lda yozuv qo'shish
	AddHistory(ctx context.Context, userID, question, answer string) error

	// ClearHistory foydalanuvchi tarixini tozalash
	ClearHistory(ctx context.Context, userID string) error

	// ExportHistory tarixni xlsx faylga aylantirish
	ExportHistory(ctx context.Context, userID string) ([]byte, error)

	// ImportHistory xlsx fayldan tarixni yuklash, qo'shilgan yozuvlar sonini qaytaradi
	ImportHistory(ctx context.Context, userID string, data []byte, filename string) (int, error)
}

type historyUseCase struct {
	historyRepo repository.HistoryRepository
	sheet       repository.HistorySheet
	now         func() time.Time
}

// NewHistoryUseCase yangi HistoryUseCase yaratish
func NewHistoryUseCase(historyRepo repository.HistoryRepository, sheet repository.HistorySheet) HistoryUseCase {
	return &historyUseCase{
		historyRepo: historyRepo,
		sheet:       sheet,
		now:         time.Now,
	}
}

// GetHistory foydalanuvchi tarixini olish
func (u *historyUseCase) GetHistory(ctx context.Context, userID string) ([]entity.Exchange, error) {
	return u.historyRepo.List(ctx, userID)
}

// AddHistory tarixga yozuv qo'shish
func (u *historyUseCase) AddHistory(ctx context.Context, userID, question, answer string) error {
	exchange := entity.Exchange{
		ID:        uuid.New().String(),
		UserID:    userID,
		Question:  strings.TrimSpace(question),
		Answer:    strings.TrimSpace(answer),
		Timestamp: u.now(),
	}
	if !exchange.IsValid() {
		return ErrInvalidExchange
	}

	if err := u.historyRepo.Append(ctx, exchange); err != nil {
		return fmt.Errorf("failed to add history: %w", err)
	}
	return nil
}

// ClearHistory foydalanuvchi tarixini tozalash
func (u *historyUseCase) ClearHistory(ctx context.Context, userID string) error {
	return u.historyRepo.Clear(ctx, userID)
}

// ExportHistory tarixni Excel ga eksport qilish
func (u *historyUseCase) ExportHistory(ctx context.Context, userID string) ([]byte, error) {
	history, err := u.historyRepo.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get history: %w", err)
	}

	data, err := u.sheet.Export(ctx, history)
	if err != nil {
		return nil, fmt.Errorf("failed to export history: %w", err)
	}
	return data, nil
}

// ImportHistory Excel fayldan tarixni yuklash
func (u *historyUseCase) ImportHistory(ctx context.Context, userID string, data []byte, filename string) (int, error) {
	exchanges, err := u.sheet.ParseFromBytes(ctx, data, filename)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidSheet, err)
	}

	if len(exchanges) == 0 {
		return 0, ErrNoExchanges
	}

	imported := 0
	for _, ex := range exchanges {
		ex.ID = uuid.New().String()
		ex.UserID = userID
		if ex.Timestamp.IsZero() {
			ex.Timestamp = u.now()
		}
		if err := u.historyRepo.Append(ctx, ex); err != nil {
			return imported, fmt.Errorf("failed to import exchange: %w", err)
		}
		imported++
	}

	return imported, nil
}
