package storage

import (
	"context"
	"sync"

	"github.com/yourusername/voice-assistant/internal/domain/entity"
	"github.com/yourusername/voice-assistant/internal/domain/repository"
)

type memoryHistoryRepository struct {
	mu      sync.RWMutex
	history map[string][]entity.Exchange
	maxSize int
}

// NewMemoryHistoryRepository in-memory history repository yaratish
func NewMemoryHistoryRepository(maxSize int) repository.HistoryRepository {
	return &memoryHistoryRepository{
		history: make(map[string][]entity.Exchange),
		maxSize: maxSize,
	}
}

// Append yozuvni saqlash
func (m *memoryHistoryRepository) Append(ctx context.Context, exchange entity.Exchange) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	list := m.history[exchange.UserID]

	// Vaqt tamg'alari kamaymasligi kerak
	if n := len(list); n > 0 && exchange.Timestamp.Before(list[n-1].Timestamp) {
		exchange.Timestamp = list[n-1].Timestamp
	}

	list = append(list, exchange)

	// Maksimal hajmni nazorat qilish
	if m.maxSize > 0 && len(list) > m.maxSize {
		list = append([]entity.Exchange(nil), list[len(list)-m.maxSize:]...)
	}
	m.history[exchange.UserID] = list

	return nil
}

// List foydalanuvchi tarixini olish
func (m *memoryHistoryRepository) List(ctx context.Context, userID string) ([]entity.Exchange, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	list := m.history[userID]
	out := make([]entity.Exchange, len(list))
	copy(out, list)
	return out, nil
}

// Clear foydalanuvchi tarixini tozalash
func (m *memoryHistoryRepository) Clear(ctx context.Context, userID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.history, userID)
	return nil
}
