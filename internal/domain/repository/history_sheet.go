package repository

import (
	"context"

	"github.com/yourusername/voice-assistant/internal/domain/entity"
)

// HistorySheet tarixni Excel faylga yozish va o'qish uchun interface
type HistorySheet interface {
	// Export tarixni xlsx baytlariga aylantirish
	Export(ctx context.Context, exchanges []entity.Exchange) ([]byte, error)

	// ParseFromBytes xlsx baytlaridan yozuvlarni o'qish
	ParseFromBytes(ctx context.Context, data []byte, filename string) ([]entity.Exchange, error)
}
