package storage

import (
	"context"
	"sync"
	"time"

	"github.com/yourusername/voice-assistant/internal/domain/entity"
	"github.com/yourusername/voice-assistant/internal/domain/repository"
)

type memoryProfileRepository struct {
	mu       sync.RWMutex
	profiles map[string]entity.AssistantProfile
}

// NewMemoryProfileRepository in-memory profile repository yaratish
func NewMemoryProfileRepository() repository.ProfileRepository {
	return &memoryProfileRepository{
		profiles: make(map[string]entity.AssistantProfile),
	}
}

// Save profilni saqlash
func (m *memoryProfileRepository) Save(ctx context.Context, profile entity.AssistantProfile) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if profile.UpdatedAt.IsZero() {
		profile.UpdatedAt = time.Now()
	}
	m.profiles[profile.UserID] = profile
	return nil
}

// Get profilni olish
func (m *memoryProfileRepository) Get(ctx context.Context, userID string) (*entity.AssistantProfile, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	profile, exists := m.profiles[userID]
	if !exists {
		return nil, repository.ErrProfileNotFound
	}
	return &profile, nil
}
