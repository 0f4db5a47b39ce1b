package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/yourusername/voice-assistant/internal/domain/entity"
	"github.com/yourusername/voice-assistant/internal/domain/repository"
)

// ExchangeRecorder natijani tarixga yozish
type ExchangeRecorder struct {
	historyRepo repository.HistoryRepository
	now         func() time.Time
}

// NewExchangeRecorder yangi ExchangeRecorder yaratish
func NewExchangeRecorder(historyRepo repository.HistoryRepository, now func() time.Time) *ExchangeRecorder {
	if now == nil {
		now = time.Now
	}
	return &ExchangeRecorder{historyRepo: historyRepo, now: now}
}

// Record asl so'rov va javobni saqlash
func (r *ExchangeRecorder) Record(ctx context.Context, userID, utterance string, result entity.DispatchResult) error {
	exchange := entity.Exchange{
		ID:        uuid.New().String(),
		UserID:    userID,
		Question:  utterance, // Original text
		Answer:    result.Response,
		Timestamp: r.now(),
	}

	if err := r.historyRepo.Append(ctx, exchange); err != nil {
		return fmt.Errorf("failed to save exchange: %w", err)
	}
	return nil
}
