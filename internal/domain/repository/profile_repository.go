package repository

import (
	"context"
	"errors"

	"github.com/yourusername/voice-assistant/internal/domain/entity"
)

// ErrProfileNotFound profil hali saqlanmagan
var ErrProfileNotFound = errors.New("profile not found")

// ProfileRepository yordamchi profillari bilan ishlash uchun interface
type ProfileRepository interface {
	// Save profilni saqlash (mavjud bo'lsa almashtiriladi)
	Save(ctx context.Context, profile entity.AssistantProfile) error

	// Get profilni olish, yo'q bo'lsa ErrProfileNotFound
	Get(ctx context.Context, userID string) (*entity.AssistantProfile, error)
}
