package repository

import (
	"context"

	"github.com/yourusername/voice-assistant/internal/domain/entity"
)

// HistoryRepository foydalanuvchi savol-javob tarixi bilan ishlash uchun interface
type HistoryRepository interface {
	// Append yangi yozuvni tarix oxiriga qo'shish
	Append(ctx context.Context, exchange entity.Exchange) error

	// List foydalanuvchi tarixini eski->yangi tartibda olish
	List(ctx context.Context, userID string) ([]entity.Exchange, error)

	// Clear foydalanuvchi tarixini tozalash
	Clear(ctx context.Context, userID string) error
}
