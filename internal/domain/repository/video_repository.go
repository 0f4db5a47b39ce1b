package repository

import (
	"context"

	"github.com/yourusername/voice-assistant/internal/domain/entity"
)

// VideoRepository video qidiruv provayderi
type VideoRepository interface {
	// Search so'rov bo'yicha maxResults tagacha video topish
	Search(ctx context.Context, query string, maxResults int) ([]entity.Video, error)
}
